package main

import (
	"bytes"
	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/game"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(append(args, "--color=false"))
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	return out.String(), err
}

func TestTreeCommand(t *testing.T) {
	out, err := execute(t, "", "tree", "--board", "110020020", "--player", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "| X | X |   |")
	assert.Contains(t, out, "move:      3 (row 1, col 3)")
	assert.Contains(t, out, "heuristic: block")
	assert.Contains(t, out, "options:   5")
}

func TestTreeCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "Too few digits", args: []string{"tree", "--board", "1200"}},
		{name: "Not a digit", args: []string{"tree", "--board", "0000x0000"}},
		{name: "Unknown mark", args: []string{"tree", "--board", "000030000"}, wantErr: game.ErrInvalidCell},
		{name: "Finished game", args: []string{"tree", "--board", "222110000"}, wantErr: bot.ErrGameOver},
		{name: "Unknown player", args: []string{"tree", "--player", "0"}, wantErr: bot.ErrInvalidPlayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestPlayCommand(t *testing.T) {
	// Lines are tried in order; occupied cells are re-prompted, so this always
	// has a free cell left for the human until the game ends.
	input := "1\n2\n3\n4\n5\n6\n7\n8\n9\n"

	for _, args := range [][]string{{"play"}, {}} {
		out, err := execute(t, input, args...)
		require.NoError(t, err)

		assert.Contains(t, out, "Welcome to tic-tac-toe!")
		assert.Contains(t, out, "|   | O |   |")
		assert.True(t,
			strings.Contains(out, "You win!") ||
				strings.Contains(out, "The computer wins!") ||
				strings.Contains(out, "It's a draw!"),
			"no result announced:\n%s", out)
	}
}

func TestPlayCommand_InputClosed(t *testing.T) {
	_, err := execute(t, "1\n", "play")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestParseBoardFlag(t *testing.T) {
	cells, err := parseBoardFlag("120000002")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0, 0, 0, 0, 0, 0, 2}, cells)
}
