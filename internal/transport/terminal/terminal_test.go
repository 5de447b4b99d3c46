package terminal

import (
	"testing"

	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

func TestKeyToEvent(t *testing.T) {
	cases := []struct {
		name string
		ev   termbox.Event
		want usecase.Event
	}{
		{name: "Arrow up", ev: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowUp}, want: usecase.Move(entity.Up)},
		{name: "Arrow down", ev: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowDown}, want: usecase.Move(entity.Down)},
		{name: "Arrow left", ev: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}, want: usecase.Move(entity.Left)},
		{name: "Arrow right", ev: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowRight}, want: usecase.Move(entity.Right)},
		{name: "Space places", ev: termbox.Event{Type: termbox.EventKey, Key: termbox.KeySpace}, want: usecase.Event{Kind: usecase.EventPlace}},
		{name: "Esc exits", ev: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, want: usecase.Event{Kind: usecase.EventExit}},
		{name: "Ctrl-C exits", ev: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlC}, want: usecase.Event{Kind: usecase.EventExit}},
		{name: "Lower o", ev: termbox.Event{Type: termbox.EventKey, Ch: 'o'}, want: usecase.Event{Kind: usecase.EventSelectO}},
		{name: "Upper O", ev: termbox.Event{Type: termbox.EventKey, Ch: 'O'}, want: usecase.Event{Kind: usecase.EventSelectO}},
		{name: "Restart", ev: termbox.Event{Type: termbox.EventKey, Ch: 'r'}, want: usecase.Event{Kind: usecase.EventRestart}},
		{name: "Any other key", ev: termbox.Event{Type: termbox.EventKey, Ch: 'q'}, want: usecase.Event{Kind: usecase.EventSelectX}},
		{name: "Enter", ev: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}, want: usecase.Event{Kind: usecase.EventSelectX}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KeyToEvent(tc.ev))
		})
	}
}

func snapshotFor(board []entity.Symbol) entity.Snapshot {
	return entity.Snapshot{
		Board:    board,
		Size:     entity.BoardSize,
		Player:   entity.X,
		Opponent: entity.O,
		Cursor:   entity.Position{Row: 0, Col: 1},
		Result:   entity.NoResult(),
	}
}

func TestBoardFrame(t *testing.T) {
	board := []entity.Symbol{
		entity.X, entity.Empty, entity.O,
		entity.Empty, entity.X, entity.Empty,
		entity.O, entity.Empty, entity.Empty,
	}

	t.Run("Draws the legend and the board rows", func(t *testing.T) {
		// When: laying out a running game
		lines := boardFrame(snapshotFor(board))

		// Then: the legend names both symbols and the board follows it
		require.Len(t, lines, 9+entity.BoardSize)
		assert.Equal(t, "You: X", lines[0].String())
		assert.Equal(t, "AI: O", lines[1].String())
		assert.Equal(t, "> [Space] to put X", lines[4].String())
		assert.Equal(t, "X - O ", lines[9].String())
		assert.Equal(t, "- X - ", lines[10].String())
		assert.Equal(t, "O - - ", lines[11].String())
		assert.Equal(t, 6, lines[9].Width())
	})

	t.Run("Highlights the cursor cell in blue", func(t *testing.T) {
		lines := boardFrame(snapshotFor(board))

		cursorCell := lines[9][2]
		assert.Equal(t, "-", cursorCell.text)
		assert.Equal(t, termbox.ColorBlue, cursorCell.bg)
		assert.Equal(t, termbox.ColorDefault, lines[9][0].bg)
	})

	t.Run("Rejected placement turns the highlight red", func(t *testing.T) {
		snapshot := snapshotFor(board)
		snapshot.Rejected = true

		lines := boardFrame(snapshot)

		assert.Equal(t, termbox.ColorRed, lines[9][2].bg)
	})

	t.Run("Finished game appends a colored message", func(t *testing.T) {
		cases := []struct {
			result entity.Result
			color  termbox.Attribute
		}{
			{result: entity.WinResult(entity.X), color: termbox.ColorGreen},
			{result: entity.WinResult(entity.O), color: termbox.ColorRed},
			{result: entity.DrawResult(), color: termbox.ColorBlue},
		}

		for _, tc := range cases {
			snapshot := snapshotFor(board)
			snapshot.Result = tc.result
			snapshot.Message = "game over"

			lines := boardFrame(snapshot)

			last := lines[len(lines)-1]
			require.Len(t, last, 1)
			assert.Equal(t, "game over", last.String())
			assert.Equal(t, tc.color|termbox.AttrBold, last[0].fg)
		}
	})
}

func TestGreetingFrame(t *testing.T) {
	lines := greetingFrame()

	require.Len(t, lines, 3)
	assert.Equal(t, "Welcome to tic-tac-toe game!", lines[0].String())
	assert.Equal(t, "Press any key to play with Xs or [O] key to play with Os.", lines[2].String())
}
