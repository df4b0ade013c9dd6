package core

import (
	"errors"
	"fmt"
)

// Error kinds raised by the engine.
//
// ErrOutOfBounds and ErrEmptyCell are programming-contract violations and are
// raised as panics carrying an error that wraps them. ErrInvalidCommand is
// returned for rejected commands; the rejection never changes board state.
// ErrConfiguration is returned when a board cannot be built from its config.
var (
	ErrOutOfBounds    = errors.New("hexic: coordinate out of bounds")
	ErrEmptyCell      = errors.New("hexic: empty cell compared during match scan")
	ErrInvalidCommand = errors.New("hexic: invalid command")
	ErrConfiguration  = errors.New("hexic: configuration error")

	// ErrSessionOver is returned for commands issued after a bomb expired.
	ErrSessionOver = fmt.Errorf("%w: session is over", ErrInvalidCommand)
)

func outOfBounds(what string, x, y, w, h int) error {
	return fmt.Errorf("%w: %s (%d,%d) outside %dx%d", ErrOutOfBounds, what, x, y, w, h)
}

func invalidCommand(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidCommand, fmt.Sprintf(format, args...))
}

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
