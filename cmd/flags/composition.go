package flags

import (
	"github.com/prysmaticlabs/kit/crypto/rand"
)

// CompositionValue is a cli.Generic holding a string composition such as
// "AlphaNumeric" or "Digit|Symbol".
type CompositionValue struct {
	Composition rand.Composition
}

// Set parses value with rand.ParseComposition.
func (c *CompositionValue) Set(value string) error {
	parsed, err := rand.ParseComposition(value)
	if err != nil {
		return err
	}
	c.Composition = parsed
	return nil
}

func (c *CompositionValue) String() string {
	if c == nil {
		return ""
	}
	return c.Composition.String()
}

// Get returns the parsed composition, satisfying flag.Getter.
func (c *CompositionValue) Get() interface{} {
	return c.Composition
}
