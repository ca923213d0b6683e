package game

import "fmt"

// String renders a cell the way the console prints it.
func (c Cell) String() string {
	switch c {
	case Human:
		return "X"
	case Computer:
		return "O"
	default:
		return " "
	}
}

// ParseBoard builds a board from nine row-major cell values (0 empty, 1 human, 2 computer).
func ParseBoard(cells []int) (Board, error) {
	var board Board
	if len(cells) != MaxIndex {
		return board, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidCell, MaxIndex, len(cells))
	}
	for i, v := range cells {
		if v < int(Empty) || v > int(Computer) {
			return board, fmt.Errorf("%w: %d at index %d", ErrInvalidCell, v, i+1)
		}
		ApplyMove(&board, i+1, Cell(v))
	}
	return board, nil
}

// Flatten is the inverse of ParseBoard.
func (b Board) Flatten() []int {
	cells := make([]int, 0, MaxIndex)
	for r := range [3]int{} {
		for c := range [3]int{} {
			cells = append(cells, int(b[r][c]))
		}
	}
	return cells
}

// Rows converts the board to a slice of rows for rendering.
func (b Board) Rows() [][]Cell {
	rows := make([][]Cell, 3)
	for i := range [3]int{} {
		rows[i] = make([]Cell, 3)
		copy(rows[i], b[i][:])
	}
	return rows
}
