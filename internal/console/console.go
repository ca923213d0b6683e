package console

import (
	"bufio"
	"context"
	"ctchen222/tictactoe/internal/game"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const ruleLine = "-------------"

const (
	msgWelcome  = "Welcome to tic-tac-toe! You are X, the computer is O."
	msgPrompt   = "Your turn. Enter a cell number (1-9):"
	msgInvalid  = "Invalid move. Try again."
	msgHumanWin = "You win!"
	msgCPUWin   = "The computer wins!"
	msgDraw     = "It's a draw!"
)

type line struct {
	text string
	err  error
}

// Console is a line-oriented terminal for one game. It implements room.Terminal.
type Console struct {
	in       io.Reader
	out      io.Writer
	color    bool
	lines    chan line
	start    sync.Once
	human    lipgloss.Style
	computer lipgloss.Style
	rule     lipgloss.Style
}

// Option configures a Console.
type Option func(*Console)

// WithColor enables or disables colored marks. Color is still dropped when the
// output is not a terminal that supports it.
func WithColor(enabled bool) Option {
	return func(c *Console) {
		c.color = enabled
	}
}

// New creates a Console reading moves from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:    in,
		out:   out,
		color: true,
		lines: make(chan line),
	}
	for _, opt := range opts {
		opt(c)
	}

	renderer := lipgloss.NewRenderer(out)
	if !c.color {
		renderer.SetColorProfile(termenv.Ascii)
	}
	c.human = renderer.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	c.computer = renderer.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	c.rule = renderer.NewStyle().Foreground(lipgloss.Color("241"))

	return c
}

// Welcome prints the greeting shown once before the first board.
func (c *Console) Welcome() error {
	_, err := fmt.Fprintln(c.out, msgWelcome)
	return err
}

// ShowBoard prints the board as a 3x3 grid with a rule line around every row.
func (c *Console) ShowBoard(board game.Board) error {
	var b strings.Builder
	b.WriteString(c.rule.Render(ruleLine))
	b.WriteString("\n")
	for _, row := range board.Rows() {
		b.WriteString("|")
		for _, cell := range row {
			b.WriteString(" ")
			b.WriteString(c.mark(cell))
			b.WriteString(" |")
		}
		b.WriteString("\n")
		b.WriteString(c.rule.Render(ruleLine))
		b.WriteString("\n")
	}

	_, err := io.WriteString(c.out, b.String())
	return err
}

func (c *Console) mark(cell game.Cell) string {
	switch cell {
	case game.Human:
		return c.human.Render(cell.String())
	case game.Computer:
		return c.computer.Render(cell.String())
	default:
		return cell.String()
	}
}

// ReadMove prompts for and reads one line. It returns an *InputFormatError when
// the line is not a number; range and occupancy are left to the caller.
func (c *Console) ReadMove(ctx context.Context) (int, error) {
	c.start.Do(func() { go c.scan() })

	if _, err := fmt.Fprintln(c.out, msgPrompt); err != nil {
		return 0, err
	}

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return 0, io.ErrUnexpectedEOF
		}
		if l.err != nil {
			return 0, l.err
		}

		input := strings.TrimSpace(l.text)
		move, err := strconv.Atoi(input)
		if err != nil {
			return 0, &InputFormatError{Input: input, Err: err}
		}
		return move, nil
	}
}

// scan feeds input lines to ReadMove. Stdin reads cannot be interrupted, so the
// scanner lives in its own goroutine and ReadMove waits on it or the context.
func (c *Console) scan() {
	defer close(c.lines)

	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		c.lines <- line{text: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		c.lines <- line{err: fmt.Errorf("failed to read input: %w", err)}
	}
}

// Reject tells the player why the last input was not accepted.
func (c *Console) Reject(reason error) error {
	msg := msgInvalid
	var formatErr *InputFormatError
	if errors.As(reason, &formatErr) {
		msg = fmt.Sprintf("%q is not a cell number. Try again.", formatErr.Input)
	}
	_, err := fmt.Fprintln(c.out, msg)
	return err
}

// Announce prints the final result.
func (c *Console) Announce(outcome game.Outcome) error {
	var msg string
	switch outcome {
	case game.HumanWins:
		msg = msgHumanWin
	case game.ComputerWins:
		msg = msgCPUWin
	case game.Draw:
		msg = msgDraw
	default:
		return fmt.Errorf("cannot announce unfinished game: %s", outcome)
	}
	_, err := fmt.Fprintln(c.out, msg)
	return err
}
