package entity

// ResultKind tells whether a game is still running or how it ended.
type ResultKind uint8

const (
	NoneYet ResultKind = iota
	Win
	Draw
)

// Result is the outcome of a winner check. Winner is set only for Win.
type Result struct {
	Kind   ResultKind
	Winner Symbol
}

func NoResult() Result {
	return Result{Kind: NoneYet}
}

func WinResult(winner Symbol) Result {
	return Result{Kind: Win, Winner: winner}
}

func DrawResult() Result {
	return Result{Kind: Draw}
}

func (that Result) IsTerminal() bool {
	return that.Kind != NoneYet
}

// Position is a row/column pair on the board.
type Position struct {
	Row int
	Col int
}

// Index - returns the row-major index of the position on a board of the given size.
func (that Position) Index(size int) int {
	return that.Row*size + that.Col
}

func (that Position) InBounds(size int) bool {
	return that.Row >= 0 && that.Row < size && that.Col >= 0 && that.Col < size
}

// PositionFromIndex is the inverse of Position.Index.
func PositionFromIndex(index, size int) Position {
	return Position{Row: index / size, Col: index % size}
}

type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (that Direction) String() string {
	switch that {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Score counts finished games of one process run.
type Score struct {
	Wins   int
	Losses int
	Draws  int
}

// Snapshot is everything a renderer needs to draw one frame.
type Snapshot struct {
	Board    []Symbol
	Size     int
	Player   Symbol
	Opponent Symbol
	Turn     int
	Cursor   Position
	Rejected bool
	Result   Result
	Message  string
	Score    Score
}

// Cell returns the symbol under the given position of the snapshot board.
func (that Snapshot) Cell(pos Position) Symbol {
	return that.Board[pos.Index(that.Size)]
}
