package rand

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is returned when a length, count or bound is negative, or
	// when a max bound is lower than its min bound.
	ErrOutOfRange = errors.New("argument out of range")
	// ErrInvalidComposition is returned when a composition selects no characters.
	ErrInvalidComposition = errors.New("invalid string composition")
	// ErrClosed is returned, or raised as a panic by operations without an
	// error result, when a secure generator is used after Close.
	ErrClosed = errors.New("generator is closed")
)
