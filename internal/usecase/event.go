package usecase

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

// EventKind is a logical key press, already decoupled from the terminal.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventMove
	EventPlace
	EventSelectX
	EventSelectO
	EventRestart
	EventExit
)

type Event struct {
	Kind      EventKind
	Direction entity.Direction
}

func Move(direction entity.Direction) Event {
	return Event{Kind: EventMove, Direction: direction}
}

func (that EventKind) String() string {
	switch that {
	case EventMove:
		return "move"
	case EventPlace:
		return "place"
	case EventSelectX:
		return "select-x"
	case EventSelectO:
		return "select-o"
	case EventRestart:
		return "restart"
	case EventExit:
		return "exit"
	default:
		return "none"
	}
}
