package console

import (
	"ctchen222/tictactoe/internal/room"
	"fmt"
)

// InputFormatError is returned by ReadMove when a line is not a whole number.
// It matches room.ErrMalformedInput so the game asks again instead of aborting.
type InputFormatError struct {
	Input string
	Err   error
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("invalid input %q: %v", e.Input, e.Err)
}

func (e *InputFormatError) Unwrap() []error {
	return []error{room.ErrMalformedInput, e.Err}
}
