package entity

import "fmt"

const BoardSize = 9

type Mark uint8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Opponent - returns the other player's mark, Empty stays Empty.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	switch string(text) {
	case "X":
		*that = PlayerX
	case "O":
		*that = PlayerO
	case "":
		*that = Empty
	default:
		return fmt.Errorf("unknown mark %q", text)
	}

	return nil
}

// Board is stored row-major: 0-1-2 / 3-4-5 / 6-7-8.
type Board [BoardSize]Mark

// WinCombos - rows, columns, diagonals. The order is canonical: the first completed line decides the winner.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

var Corners = [4]int{0, 2, 6, 8}

const Center = 4

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

// Swap - relabels the board, X becomes O and O becomes X.
func (that Board) Swap() Board {
	for i, cell := range that {
		that[i] = cell.Opponent()
	}

	return that
}

type Outcome uint8

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

func (that Outcome) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Outcome) UnmarshalText(text []byte) error {
	for _, outcome := range []Outcome{InProgress, XWins, OWins, Draw} {
		if outcome.String() == string(text) {
			*that = outcome
			return nil
		}
	}

	return fmt.Errorf("unknown outcome %q", text)
}

func (that Outcome) IsFinished() bool {
	return that != InProgress
}

// Winner - returns the winning mark, Empty for a draw or a game in progress.
func (that Outcome) Winner() Mark {
	switch that {
	case XWins:
		return PlayerX
	case OWins:
		return PlayerO
	default:
		return Empty
	}
}

// WinsFor - the outcome in which mark has completed a line.
func WinsFor(mark Mark) Outcome {
	switch mark {
	case PlayerX:
		return XWins
	case PlayerO:
		return OWins
	default:
		return InProgress
	}
}
