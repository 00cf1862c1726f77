// Package argcheck validates arguments and returns wrapped sentinel errors
// naming the offending argument.
package argcheck

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrNil is returned for a nil argument.
	ErrNil = errors.New("argument is nil")
	// ErrEmpty is returned for an empty string, slice or UUID.
	ErrEmpty = errors.New("argument is empty")
	// ErrBlank is returned for a string made only of white space.
	ErrBlank = errors.New("argument is blank")
)

// NotNil returns ErrNil when p is nil.
func NotNil[T any](p *T, name string) error {
	if p == nil {
		return errors.Wrap(ErrNil, name)
	}
	return nil
}

// NotEmptyUUID returns ErrEmpty when id is the nil UUID.
func NotEmptyUUID(id uuid.UUID, name string) error {
	if id == uuid.Nil {
		return errors.Wrapf(ErrEmpty, "%s is an empty uuid", name)
	}
	return nil
}

// NotEmpty returns ErrEmpty when s has no elements.
func NotEmpty[T any](s []T, name string) error {
	if len(s) == 0 {
		return errors.Wrapf(ErrEmpty, "%s is an empty sequence", name)
	}
	return nil
}

// NotEmptyString returns ErrEmpty when s is "".
func NotEmptyString(s, name string) error {
	if s == "" {
		return errors.Wrapf(ErrEmpty, "%s is an empty string", name)
	}
	return nil
}

// NotBlank returns ErrEmpty for "" and ErrBlank when s holds only white space.
func NotBlank(s, name string) error {
	if err := NotEmptyString(s, name); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		return errors.Wrapf(ErrBlank, "%s is comprised of white space", name)
	}
	return nil
}
