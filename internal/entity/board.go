package entity

// Mark is the content of a single board cell.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X" // human
	PlayerO   Mark = "O" // opponent bot
)

// Opponent returns the mark that moves after m.
func (m Mark) Opponent() Mark {
	if m == PlayerX {
		return PlayerO
	}
	return PlayerX
}

const BoardSize = 9

// Board is a 3x3 grid stored row by row. It is a value type: assigning a board copies it.
type Board [BoardSize]Mark

// WinLines are checked in this order by Evaluate.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Outcome int

const (
	InProgress Outcome = iota
	Win
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Result of evaluating a board. Winner and Line are only set for Win.
type Result struct {
	Outcome Outcome
	Winner  Mark
	Line    [3]int
}

func (r Result) IsTerminal() bool {
	return r.Outcome != InProgress
}

// Evaluate reports the first complete line, a draw when the board is full, or InProgress.
func Evaluate(board Board) Result {
	for _, line := range WinLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != EmptyCell && a == b && b == c {
			return Result{Outcome: Win, Winner: a, Line: line}
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return Result{Outcome: InProgress}
	}

	return Result{Outcome: Draw}
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

// EmptyCells returns the indices of empty cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}
	return cells
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}
