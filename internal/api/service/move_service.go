package service

import (
	"context"
	"ctchen222/tictactoe/internal/api/models"
	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/game"
	"fmt"
)

//go:generate mockgen -source=move_service.go -destination=mocks/mock_move_service.go -package=mocks

// Decider picks a move for the player to move on a board.
type Decider interface {
	Decide(ctx context.Context, board game.Board, player game.Cell) (bot.Decision, error)
}

// MoveService defines the interface for the stateless move endpoint.
type MoveService interface {
	NextMove(ctx context.Context, req *models.MoveRequest) (*models.MoveResponse, error)
}

type moveService struct {
	decider Decider
}

// NewMoveService creates a new MoveService.
func NewMoveService(decider Decider) MoveService {
	return &moveService{decider: decider}
}

// NextMove decides a move for req.Player and returns the board with the move applied.
func (s *moveService) NextMove(ctx context.Context, req *models.MoveRequest) (*models.MoveResponse, error) {
	board, err := game.ParseBoard(req.Board)
	if err != nil {
		return nil, fmt.Errorf("invalid board: %w", err)
	}

	player := req.Player
	if player == game.Empty {
		player = game.Computer
	}

	decision, err := s.decider.Decide(ctx, board, player)
	if err != nil {
		return nil, err
	}

	game.ApplyMove(&board, decision.Move, player)
	row, col := game.ToRowCol(decision.Move)

	return &models.MoveResponse{
		Move:      decision.Move,
		Row:       row,
		Col:       col,
		Heuristic: string(decision.Heuristic),
		Nodes:     decision.Nodes,
		Board:     board.Flatten(),
		Outcome:   game.GetOutcome(board),
	}, nil
}
