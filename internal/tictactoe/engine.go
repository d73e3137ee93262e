package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Random is the source used to break ties between equally good cells.
type Random interface {
	Intn(n int) int
}

// Outcome - derives the game status from the board.
func Outcome(board entity.Board) entity.Outcome {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.Empty && a == b && b == c {
			return entity.WinsFor(a)
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return entity.InProgress
	}

	return entity.Draw
}

// ApplyMove - returns a copy of the board with mark placed at cell. The input board is never changed.
func ApplyMove(board entity.Board, cell int, mark entity.Mark) (entity.Board, error) {
	if err := validateMove(board, cell, mark); err != nil {
		return board, fmt.Errorf("invalid turn: %w", err)
	}

	board[cell] = mark

	return board, nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, cell int, mark entity.Mark) error {
	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if mark != entity.PlayerX && mark != entity.PlayerO {
		return apperror.ErrInvalidMark
	}

	if Outcome(board).IsFinished() {
		return apperror.ErrGameFinished
	}

	if board[cell] != entity.Empty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// EmptyCells - indexes of the free cells in ascending order.
func EmptyCells(board entity.Board) []int {
	cells := make([]int, 0, entity.BoardSize)
	for i, cell := range board {
		if cell == entity.Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

// ChooseHeuristicMove - greedy one-ply choice: win, block, center, random corner, random cell.
func ChooseHeuristicMove(board entity.Board, own, opponent entity.Mark, rnd Random) (int, error) {
	available := EmptyCells(board)
	if len(available) == 0 || Outcome(board).IsFinished() {
		return 0, apperror.ErrNoAvailableMoves
	}

	if cell, ok := completingCell(board, available, own); ok {
		return cell, nil
	}

	if cell, ok := completingCell(board, available, opponent); ok {
		return cell, nil
	}

	if board[entity.Center] == entity.Empty {
		return entity.Center, nil
	}

	corners := make([]int, 0, len(entity.Corners))
	for _, corner := range entity.Corners {
		if board[corner] == entity.Empty {
			corners = append(corners, corner)
		}
	}

	if len(corners) > 0 {
		return corners[rnd.Intn(len(corners))], nil
	}

	return available[rnd.Intn(len(available))], nil
}

// completingCell - the lowest free cell that makes mark win when filled.
func completingCell(board entity.Board, available []int, mark entity.Mark) (int, bool) {
	want := entity.WinsFor(mark)
	if want == entity.InProgress {
		return 0, false
	}

	for _, cell := range available {
		test := board
		test[cell] = mark
		if Outcome(test) == want {
			return cell, true
		}
	}

	return 0, false
}
