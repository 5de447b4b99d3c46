package terminal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// Terminal draws snapshots with termbox and turns key presses into logical events.
type Terminal struct {
	logger *slog.Logger
}

// Open - takes over the terminal. Close must be called to restore it.
func Open(logger *slog.Logger) (*Terminal, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize terminal: %w", err)
	}

	termbox.SetInputMode(termbox.InputEsc)

	return &Terminal{logger: logger.With("component", "terminal")}, nil
}

func (that *Terminal) Close() {
	termbox.Close()
}

func (that *Terminal) Greeting() error {
	return draw(greetingFrame())
}

func (that *Terminal) Render(snapshot entity.Snapshot) error {
	return draw(boardFrame(snapshot))
}

// Next - blocks until a key press or resize arrives. Cancelling ctx interrupts the poll.
func (that *Terminal) Next(ctx context.Context) (usecase.Event, error) {
	stop := context.AfterFunc(ctx, termbox.Interrupt)
	defer stop()

	for {
		ev := termbox.PollEvent()

		switch ev.Type {
		case termbox.EventKey:
			event := KeyToEvent(ev)
			that.logger.Debug("key pressed", "event", event.Kind.String())
			return event, nil
		case termbox.EventResize:
			return usecase.Event{Kind: usecase.EventNone}, nil
		case termbox.EventError:
			return usecase.Event{}, fmt.Errorf("terminal input failed: %w", ev.Err)
		case termbox.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return usecase.Event{}, err
			}
		}
	}
}

// KeyToEvent maps a termbox key event to a logical event.
// Keys without a binding select X, matching the "any key" prompt.
func KeyToEvent(ev termbox.Event) usecase.Event {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return usecase.Move(entity.Up)
	case termbox.KeyArrowDown:
		return usecase.Move(entity.Down)
	case termbox.KeyArrowLeft:
		return usecase.Move(entity.Left)
	case termbox.KeyArrowRight:
		return usecase.Move(entity.Right)
	case termbox.KeySpace:
		return usecase.Event{Kind: usecase.EventPlace}
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return usecase.Event{Kind: usecase.EventExit}
	}

	switch ev.Ch {
	case ' ':
		return usecase.Event{Kind: usecase.EventPlace}
	case 'o', 'O':
		return usecase.Event{Kind: usecase.EventSelectO}
	case 'r', 'R':
		return usecase.Event{Kind: usecase.EventRestart}
	default:
		return usecase.Event{Kind: usecase.EventSelectX}
	}
}

func draw(lines []line) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return fmt.Errorf("could not clear terminal: %w", err)
	}

	for y, l := range lines {
		x := 0
		for _, seg := range l {
			for _, r := range seg.text {
				termbox.SetCell(x, y, r, seg.fg, seg.bg)
				x += runewidth.RuneWidth(r)
			}
		}
	}

	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("could not flush terminal: %w", err)
	}

	return nil
}
