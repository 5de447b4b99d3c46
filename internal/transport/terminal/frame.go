package terminal

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type segment struct {
	text string
	fg   termbox.Attribute
	bg   termbox.Attribute
}

type line []segment

func plain(text string) segment {
	return segment{text: text, fg: termbox.ColorDefault, bg: termbox.ColorDefault}
}

func bold(text string) segment {
	return segment{text: text, fg: termbox.ColorDefault | termbox.AttrBold, bg: termbox.ColorDefault}
}

// String returns the visible text of the line.
func (that line) String() string {
	var sb strings.Builder
	for _, seg := range that {
		sb.WriteString(seg.text)
	}

	return sb.String()
}

// Width is the number of terminal columns the line occupies.
func (that line) Width() int {
	return runewidth.StringWidth(that.String())
}

func greetingFrame() []line {
	return []line{
		{segment{text: "Welcome to tic-tac-toe game!", fg: termbox.ColorBlue | termbox.AttrBold, bg: termbox.ColorDefault}},
		{plain("Game starts with Xs turn.")},
		{plain("Press "), bold("any key"), plain(" to play with Xs or "), bold("[O] key"), plain(" to play with Os.")},
	}
}

// boardFrame lays out the legend, the board with the cursor highlight, and the result line.
func boardFrame(snapshot entity.Snapshot) []line {
	lines := []line{
		{plain("You: " + snapshot.Player.String())},
		{plain("AI: " + snapshot.Opponent.String())},
		{plain("Controls:")},
		{plain("> "), bold("Arrow keys"), plain(" to move")},
		{plain("> "), bold("[Space]"), plain(" to put " + snapshot.Player.String())},
		{plain("> "), bold("[R]"), plain(" to start over")},
		{plain("> "), bold("[Esc]"), plain(" to exit game")},
		{plain(fmt.Sprintf("Score: %d won, %d lost, %d drawn", snapshot.Score.Wins, snapshot.Score.Losses, snapshot.Score.Draws))},
		{},
	}

	highlight := termbox.ColorBlue
	if snapshot.Rejected {
		highlight = termbox.ColorRed
	}

	for row := range snapshot.Size {
		var boardLine line
		for col := range snapshot.Size {
			pos := entity.Position{Row: row, Col: col}
			cell := plain(snapshot.Cell(pos).String())
			if pos == snapshot.Cursor {
				cell.bg = highlight
			}

			boardLine = append(boardLine, cell, plain(" "))
		}

		lines = append(lines, boardLine)
	}

	if snapshot.Result.IsTerminal() {
		lines = append(lines, line{resultSegment(snapshot)})
	}

	return lines
}

func resultSegment(snapshot entity.Snapshot) segment {
	color := termbox.ColorBlue
	if snapshot.Result.Kind == entity.Win {
		color = termbox.ColorRed
		if snapshot.Result.Winner == snapshot.Player {
			color = termbox.ColorGreen
		}
	}

	return segment{text: snapshot.Message, fg: color | termbox.AttrBold, bg: termbox.ColorDefault}
}
