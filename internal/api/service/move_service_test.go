package service

import (
	"context"
	"ctchen222/tictactoe/internal/api/models"
	"ctchen222/tictactoe/internal/api/service/mocks"
	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/game"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMoveService_NextMove(t *testing.T) {
	ctrl := gomock.NewController(t)
	decider := mocks.NewMockDecider(ctrl)

	cells := []int{1, 1, 0, 2, 2, 0, 0, 0, 0}
	board, err := game.ParseBoard(cells)
	require.NoError(t, err)

	decider.EXPECT().Decide(gomock.Any(), board, game.Computer).
		Return(bot.Decision{Move: 6, Heuristic: bot.HeuristicWin, Nodes: 42}, nil)

	resp, err := NewMoveService(decider).NextMove(context.Background(), &models.MoveRequest{Board: cells})
	require.NoError(t, err)

	assert.Equal(t, &models.MoveResponse{
		Move:      6,
		Row:       1,
		Col:       2,
		Heuristic: "win",
		Nodes:     42,
		Board:     []int{1, 1, 0, 2, 2, 2, 0, 0, 0},
		Outcome:   game.ComputerWins,
	}, resp)
}

func TestMoveService_NextMove_HumanToMove(t *testing.T) {
	ctrl := gomock.NewController(t)
	decider := mocks.NewMockDecider(ctrl)

	decider.EXPECT().Decide(gomock.Any(), gomock.Any(), game.Human).
		Return(bot.Decision{Move: 1, Heuristic: bot.HeuristicSearch, Nodes: 3}, nil)

	resp, err := NewMoveService(decider).NextMove(context.Background(), &models.MoveRequest{
		Board:  []int{0, 0, 0, 0, 2, 0, 0, 0, 0},
		Player: game.Human,
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0, 0, 2, 0, 0, 0, 0}, resp.Board)
	assert.Equal(t, game.InProgress, resp.Outcome)
}

func TestMoveService_NextMove_Errors(t *testing.T) {
	t.Run("Invalid board", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		decider := mocks.NewMockDecider(ctrl)

		_, err := NewMoveService(decider).NextMove(context.Background(), &models.MoveRequest{Board: []int{7}})
		assert.ErrorIs(t, err, game.ErrInvalidCell)
	})

	t.Run("Decider error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		decider := mocks.NewMockDecider(ctrl)
		decider.EXPECT().Decide(gomock.Any(), gomock.Any(), game.Computer).
			Return(bot.Decision{Move: bot.NoMove}, bot.ErrGameOver)

		_, err := NewMoveService(decider).NextMove(context.Background(), &models.MoveRequest{
			Board: []int{2, 2, 2, 1, 1, 0, 0, 0, 0},
		})
		assert.ErrorIs(t, err, bot.ErrGameOver)
	})
}

func TestMoveService_NextMove_RealBot(t *testing.T) {
	b, err := bot.NewBot()
	require.NoError(t, err)

	resp, err := NewMoveService(b).NextMove(context.Background(), &models.MoveRequest{
		Board: []int{1, 1, 0, 0, 2, 0, 0, 2, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Move)
	assert.Equal(t, "block", resp.Heuristic)
	assert.Equal(t, bot.BuildTree(game.Board{{1, 1, 0}, {0, 2, 0}, {0, 2, 0}}, game.Computer).Size(), resp.Nodes)
}
