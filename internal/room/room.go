package room

import (
	"context"
	"ctchen222/tictactoe/internal/game"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=room.go -destination=mocks/mock_room.go -package=mocks

var tracer = otel.Tracer("room")

// ErrMalformedInput marks input that could not be parsed as a cell number.
// Terminals return errors matching it when the player should simply be asked again.
var ErrMalformedInput = errors.New("malformed input")

// Terminal is the player-facing side of a game: it shows the board, reads the
// human's moves and reports results.
type Terminal interface {
	ShowBoard(board game.Board) error
	ReadMove(ctx context.Context) (int, error)
	Reject(reason error) error
	Announce(outcome game.Outcome) error
}

// MoveCalculator defines an interface for an agent that can calculate a game move.
type MoveCalculator interface {
	CalculateNextMove(ctx context.Context, board game.Board, player game.Cell) (int, error)
}

// Room is a single human versus computer game.
type Room struct {
	ID             string
	board          game.Board
	terminal       Terminal
	moveCalculator MoveCalculator
}

// NewRoom creates a game room with an empty board.
func NewRoom(id string, terminal Terminal, calculator MoveCalculator) *Room {
	return &Room{
		ID:             id,
		terminal:       terminal,
		moveCalculator: calculator,
	}
}

// Board returns a copy of the current board.
func (r *Room) Board() game.Board {
	return r.board
}

// Run plays one game to the end. The computer opens in the center, then the
// human and the computer alternate until someone wins or the board is full.
func (r *Room) Run(ctx context.Context) (game.Outcome, error) {
	ctx, span := tracer.Start(ctx, "room.Run", trace.WithAttributes(
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	slog.InfoContext(ctx, "Game started", "room.id", r.ID)
	game.ApplyMove(&r.board, game.Center, game.Computer)

	for {
		if err := r.terminal.ShowBoard(r.board); err != nil {
			return r.fail(ctx, span, fmt.Errorf("failed to show board: %w", err))
		}

		move, err := r.readHumanMove(ctx)
		if err != nil {
			return r.fail(ctx, span, err)
		}
		game.ApplyMove(&r.board, move, game.Human)
		slog.DebugContext(ctx, "Human moved", "room.id", r.ID, "move", move)

		if game.IsGameOver(r.board) {
			return r.finish(ctx, span)
		}

		move, err = r.computerMove(ctx)
		if err != nil {
			return r.fail(ctx, span, err)
		}
		game.ApplyMove(&r.board, move, game.Computer)
		slog.DebugContext(ctx, "Computer moved", "room.id", r.ID, "move", move)

		if game.IsGameOver(r.board) {
			return r.finish(ctx, span)
		}
	}
}

// readHumanMove asks until the terminal produces a legal move.
// Illegal cells and unparsable input are reported back and the board is shown again.
func (r *Room) readHumanMove(ctx context.Context) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		move, err := r.terminal.ReadMove(ctx)
		if err == nil {
			err = game.ValidateMove(r.board, move)
		}

		switch {
		case err == nil:
			return move, nil
		case errors.Is(err, ErrMalformedInput),
			errors.Is(err, game.ErrInvalidIndex),
			errors.Is(err, game.ErrCellOccupied):
			slog.DebugContext(ctx, "Rejected human input", "room.id", r.ID, "error", err)
			if err := r.terminal.Reject(err); err != nil {
				return 0, fmt.Errorf("failed to report rejected move: %w", err)
			}
			if err := r.terminal.ShowBoard(r.board); err != nil {
				return 0, fmt.Errorf("failed to show board: %w", err)
			}
		default:
			return 0, fmt.Errorf("failed to read move: %w", err)
		}
	}
}

func (r *Room) computerMove(ctx context.Context) (int, error) {
	ctx, span := tracer.Start(ctx, "room.computerMove", trace.WithAttributes(
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	move, err := r.moveCalculator.CalculateNextMove(ctx, r.board, game.Computer)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Move calculation failed")
		return move, fmt.Errorf("computer could not move: %w", err)
	}

	if err := game.ValidateMove(r.board, move); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Illegal computer move")
		return move, fmt.Errorf("computer chose an illegal move: %w", err)
	}

	span.SetAttributes(attribute.Int("move", move))
	return move, nil
}

func (r *Room) finish(ctx context.Context, span trace.Span) (game.Outcome, error) {
	outcome := game.GetOutcome(r.board)
	span.SetAttributes(attribute.String("game.outcome", string(outcome)))
	slog.InfoContext(ctx, "Game finished", "room.id", r.ID, "outcome", outcome)

	if err := r.terminal.ShowBoard(r.board); err != nil {
		return outcome, fmt.Errorf("failed to show board: %w", err)
	}
	if err := r.terminal.Announce(outcome); err != nil {
		return outcome, fmt.Errorf("failed to announce result: %w", err)
	}
	return outcome, nil
}

func (r *Room) fail(ctx context.Context, span trace.Span, err error) (game.Outcome, error) {
	slog.ErrorContext(ctx, "Game aborted", "room.id", r.ID, "error", err)
	span.RecordError(err)
	span.SetStatus(codes.Error, "Game aborted")
	return game.InProgress, err
}
