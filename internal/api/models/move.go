package models

import "ctchen222/tictactoe/internal/game"

// MoveRequest asks the computer for a move on the given board.
// Board holds the nine cells in row-major order, 0 empty, 1 human, 2 computer.
// Player is the side to move and defaults to the computer.
type MoveRequest struct {
	Board  []int     `json:"board" validate:"required,len=9,dive,cell"`
	Player game.Cell `json:"player" validate:"omitempty,oneof=1 2"`
}

// MoveResponse describes the chosen move. Board and Outcome reflect the board
// after the move is applied; Row and Col are zero-based.
type MoveResponse struct {
	Move      int          `json:"move"`
	Row       int          `json:"row"`
	Col       int          `json:"col"`
	Heuristic string       `json:"heuristic"`
	Nodes     int          `json:"nodes"`
	Board     []int        `json:"board"`
	Outcome   game.Outcome `json:"outcome"`
}
