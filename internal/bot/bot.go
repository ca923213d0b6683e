package bot

import (
	"context"
	"ctchen222/tictactoe/internal/game"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("bot")
	meter  = otel.Meter("bot")
)

var (
	ErrGameOver        = errors.New("game is already over")
	ErrInvalidPlayer   = errors.New("player to move must be human or computer")
	ErrNoMoveAvailable = errors.New("no move available")
)

// Decision is the outcome of one move calculation.
type Decision struct {
	Move      int
	Heuristic Heuristic
	// Nodes counts every node in the tree, root included.
	Nodes int
	// Options is the number of legal moves at the root.
	Options int
	Depth   int
}

// Bot is the computer opponent. It builds a fresh decision tree for every
// calculation and keeps nothing between calls.
type Bot struct {
	treeNodes metric.Int64Histogram
	moves     metric.Int64Counter
}

// NewBot creates a Bot and registers its instruments with the global meter provider.
func NewBot() (*Bot, error) {
	treeNodes, err := meter.Int64Histogram("bot.tree.nodes",
		metric.WithDescription("Number of nodes in the decision tree built for a move"),
		metric.WithUnit("{node}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tree size histogram: %w", err)
	}

	moves, err := meter.Int64Counter("bot.moves",
		metric.WithDescription("Moves chosen by the computer, by heuristic"),
		metric.WithUnit("{move}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create move counter: %w", err)
	}

	return &Bot{treeNodes: treeNodes, moves: moves}, nil
}

// CalculateNextMove returns the cell the bot plays for player on board.
func (b *Bot) CalculateNextMove(ctx context.Context, board game.Board, player game.Cell) (int, error) {
	decision, err := b.Decide(ctx, board, player)
	if err != nil {
		return NoMove, err
	}
	return decision.Move, nil
}

// Decide builds the decision tree for board and selects a move for player.
func (b *Bot) Decide(ctx context.Context, board game.Board, player game.Cell) (Decision, error) {
	ctx, span := tracer.Start(ctx, "bot.Decide", trace.WithAttributes(
		attribute.Int("player", int(player)),
	))
	defer span.End()

	if player != game.Human && player != game.Computer {
		err := fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid player")
		return Decision{Move: NoMove, Heuristic: HeuristicNone}, err
	}

	if outcome := game.GetOutcome(board); outcome != game.InProgress {
		err := fmt.Errorf("%w: %s", ErrGameOver, outcome)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Game already over")
		return Decision{Move: NoMove, Heuristic: HeuristicNone}, err
	}

	root := BuildTree(board, player)
	move, heuristic := chooseBestMove(root)
	decision := Decision{
		Move:      move,
		Heuristic: heuristic,
		Nodes:     root.Size(),
		Options:   len(root.Children),
		Depth:     root.Depth(),
	}

	span.SetAttributes(
		attribute.Int("tree.nodes", decision.Nodes),
		attribute.Int("tree.children", decision.Options),
		attribute.Int("move", move),
		attribute.String("heuristic", string(heuristic)),
	)
	b.treeNodes.Record(ctx, int64(decision.Nodes))

	if move == NoMove {
		span.RecordError(ErrNoMoveAvailable)
		span.SetStatus(codes.Error, "Search exhausted")
		return decision, ErrNoMoveAvailable
	}

	b.moves.Add(ctx, 1, metric.WithAttributes(attribute.String("heuristic", string(heuristic))))
	slog.DebugContext(ctx, "Bot chose move", "move", move, "heuristic", heuristic, "tree.nodes", decision.Nodes)

	return decision, nil
}
