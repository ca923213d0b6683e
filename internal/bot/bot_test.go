package bot

import (
	"context"
	"ctchen222/tictactoe/internal/game"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBot(t *testing.T) *Bot {
	t.Helper()
	b, err := NewBot()
	require.NoError(t, err)
	return b
}

func TestBot_CalculateNextMove(t *testing.T) {
	b := newTestBot(t)
	board := mustParse(t, 1, 1, 0, 0, 2, 0, 0, 2, 0)

	move, err := b.CalculateNextMove(context.Background(), board, game.Computer)
	require.NoError(t, err)
	assert.Equal(t, 3, move)
}

func TestBot_Decide(t *testing.T) {
	b := newTestBot(t)
	board := mustParse(t, 1, 1, 0, 2, 2, 0, 0, 0, 0)

	decision, err := b.Decide(context.Background(), board, game.Computer)
	require.NoError(t, err)
	assert.Equal(t, 6, decision.Move)
	assert.Equal(t, HeuristicWin, decision.Heuristic)

	root := BuildTree(board, game.Computer)
	assert.Equal(t, root.Size(), decision.Nodes)
	assert.Equal(t, 5, decision.Options)
	assert.Equal(t, root.Depth(), decision.Depth)
}

func TestBot_Decide_DoesNotMutateBoard(t *testing.T) {
	b := newTestBot(t)
	board := centerOpening()
	game.ApplyMove(&board, 1, game.Human)
	before := board

	_, err := b.Decide(context.Background(), board, game.Computer)
	require.NoError(t, err)
	assert.Equal(t, before, board)
}

func TestBot_Decide_Errors(t *testing.T) {
	b := newTestBot(t)

	tests := []struct {
		name    string
		board   []int
		player  game.Cell
		wantErr error
	}{
		{
			name:    "Empty is not a player",
			board:   []int{0, 0, 0, 0, 2, 0, 0, 0, 0},
			player:  game.Empty,
			wantErr: ErrInvalidPlayer,
		},
		{
			name:    "Board already won",
			board:   []int{2, 2, 2, 1, 1, 0, 0, 0, 0},
			player:  game.Human,
			wantErr: ErrGameOver,
		},
		{
			name:    "Board already drawn",
			board:   []int{1, 2, 1, 1, 2, 2, 2, 1, 1},
			player:  game.Computer,
			wantErr: ErrGameOver,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := b.Decide(context.Background(), mustParse(t, tt.board...), tt.player)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, NoMove, decision.Move)
		})
	}
}
