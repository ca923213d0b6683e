package game

import (
	"errors"
	"fmt"
)

// Cell represents the state of a single square: empty or owned by one of the players.
type Cell uint8

// Outcome describes how a board stands from the console game's point of view.
type Outcome string

const (
	// Cell states
	Empty    Cell = 0
	Human    Cell = 1
	Computer Cell = 2

	// Game outcomes
	InProgress   Outcome = "in_progress"
	HumanWins    Outcome = "human_wins"
	ComputerWins Outcome = "computer_wins"
	Draw         Outcome = "draw"

	// Board boundaries
	BorderMin = 0
	BorderMax = 2

	// Linear cell addressing, row-major
	MinIndex = 1
	MaxIndex = 9
	Center   = 5
)

var (
	ErrInvalidIndex = errors.New("cell index out of range")
	ErrCellOccupied = errors.New("cell already occupied")
	ErrInvalidCell  = errors.New("invalid cell value")
)

// Board is a 3x3 grid. It is a value type: assigning a Board copies every cell.
type Board [3][3]Cell

// Opponent returns the other player. Empty has no opponent and is returned unchanged.
func (c Cell) Opponent() Cell {
	switch c {
	case Human:
		return Computer
	case Computer:
		return Human
	default:
		return Empty
	}
}

// ToRowCol converts a 1-9 cell index into row and column coordinates.
// The index must already be in range.
func ToRowCol(index int) (row, col int) {
	return (index - 1) / 3, (index - 1) % 3
}

// ToIndex is the inverse of ToRowCol.
func ToIndex(row, col int) int {
	return row*3 + col + 1
}

// Cell returns the state of the cell at index. The index must already be in range.
func (b Board) Cell(index int) Cell {
	row, col := ToRowCol(index)
	return b[row][col]
}

// IsValidMove reports whether index addresses an empty cell.
func IsValidMove(board Board, index int) bool {
	if index < MinIndex || index > MaxIndex {
		return false
	}
	return board.Cell(index) == Empty
}

// ValidateMove is IsValidMove with a reason attached.
func ValidateMove(board Board, index int) error {
	if index < MinIndex || index > MaxIndex {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	if board.Cell(index) != Empty {
		return fmt.Errorf("%w: %d", ErrCellOccupied, index)
	}
	return nil
}

// ApplyMove marks the cell at index for player without any checks.
// Callers must validate the move first.
func ApplyMove(board *Board, index int, player Cell) {
	row, col := ToRowCol(index)
	board[row][col] = player
}

// ValidMoves returns the empty cell indexes in ascending order.
func ValidMoves(board Board) []int {
	moves := make([]int, 0, MaxIndex)
	for i := MinIndex; i <= MaxIndex; i++ {
		if IsValidMove(board, i) {
			moves = append(moves, i)
		}
	}
	return moves
}

// CheckWinner returns the player owning a complete line, or Empty if there is none.
func CheckWinner(board Board) Cell {
	// Rows and columns
	for i := range [3]int{} {
		if board[i][0] != Empty && board[i][0] == board[i][1] && board[i][1] == board[i][2] {
			return board[i][0]
		}
		if board[0][i] != Empty && board[0][i] == board[1][i] && board[1][i] == board[2][i] {
			return board[0][i]
		}
	}

	// Diagonals
	if board[0][0] != Empty && board[0][0] == board[1][1] && board[1][1] == board[2][2] {
		return board[0][0]
	}
	if board[0][2] != Empty && board[0][2] == board[1][1] && board[1][1] == board[2][0] {
		return board[0][2]
	}

	return Empty
}

// IsBoardFull checks if no empty cell is left.
func IsBoardFull(board Board) bool {
	for r := range [3]int{} {
		for c := range [3]int{} {
			if board[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

// IsGameOver reports whether someone has won or the board is full.
func IsGameOver(board Board) bool {
	return CheckWinner(board) != Empty || IsBoardFull(board)
}

// GetOutcome classifies the board. A win takes priority over a full board.
func GetOutcome(board Board) Outcome {
	switch CheckWinner(board) {
	case Human:
		return HumanWins
	case Computer:
		return ComputerWins
	}
	if IsBoardFull(board) {
		return Draw
	}
	return InProgress
}
