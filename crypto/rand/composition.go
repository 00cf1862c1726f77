package rand

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Composition selects the character classes used to generate random strings
// and characters. Values combine with bitwise or.
type Composition uint8

// Character classes. The derived values are unions of the base classes.
const (
	None            Composition = 0x00
	LowercaseLetter Composition = 0x01
	UppercaseLetter Composition = 0x02
	Digit           Composition = 0x04
	Symbol          Composition = 0x08
	PunctuationMark Composition = 0x10
	WhiteSpace      Composition = 0x20

	Letter                 = LowercaseLetter | UppercaseLetter
	AlphaNumeric           = Letter | Digit
	AlphaNumericWhiteSpace = AlphaNumeric | WhiteSpace
	All                    = LowercaseLetter | UppercaseLetter | Digit | Symbol | PunctuationMark | WhiteSpace
)

// baseCompositions lists the base classes in pool order.
var baseCompositions = []Composition{
	LowercaseLetter,
	UppercaseLetter,
	Digit,
	Symbol,
	PunctuationMark,
	WhiteSpace,
}

var compositionNames = map[Composition]string{
	None:                   "None",
	LowercaseLetter:        "LowercaseLetter",
	UppercaseLetter:        "UppercaseLetter",
	Digit:                  "Digit",
	Symbol:                 "Symbol",
	PunctuationMark:        "PunctuationMark",
	WhiteSpace:             "WhiteSpace",
	Letter:                 "Letter",
	AlphaNumeric:           "AlphaNumeric",
	AlphaNumericWhiteSpace: "AlphaNumericWhiteSpace",
	All:                    "All",
}

// Has reports whether every class in other is also selected by c.
func (c Composition) Has(other Composition) bool {
	return c&other == other
}

// String returns the name of c, or the names of its base classes joined by
// "|" when c is not a named value.
func (c Composition) String() string {
	if name, ok := compositionNames[c]; ok {
		return name
	}
	var parts []string
	for _, base := range baseCompositions {
		if c&base != 0 {
			parts = append(parts, compositionNames[base])
		}
	}
	if unknown := c &^ All; unknown != 0 {
		parts = append(parts, fmt.Sprintf("0x%02X", uint8(unknown)))
	}
	return strings.Join(parts, "|")
}

// ParseComposition parses the text produced by String for known classes.
// Names are matched case-insensitively and may be joined by "|" or ",". A
// field may also be a numeric value such as "12" or "0x0C".
func ParseComposition(s string) (Composition, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' })
	if len(fields) == 0 {
		return None, errors.Wrapf(ErrInvalidComposition, "empty composition %q", s)
	}
	var c Composition
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if v, err := strconv.ParseInt(f, 0, 64); err == nil {
			value, err := CompositionOf(v)
			if err != nil {
				return None, err
			}
			c |= value
			continue
		}
		found := false
		for value, name := range compositionNames {
			if strings.EqualFold(name, f) {
				c |= value
				found = true
				break
			}
		}
		if !found {
			return None, errors.Wrapf(ErrInvalidComposition, "unknown composition %q", f)
		}
	}
	return c, nil
}

// CompositionOf converts an integer to a Composition. Values selecting bits
// outside All are rejected.
func CompositionOf(v int64) (Composition, error) {
	if v < 0 || v&^int64(All) != 0 {
		return None, errors.Wrapf(ErrInvalidComposition, "value %#x selects unknown classes", v)
	}
	return Composition(v), nil
}

// CompositionNames returns the names accepted by ParseComposition, in
// ascending order of value.
func CompositionNames() []string {
	names := make([]string, 0, len(compositionNames))
	for c := Composition(0); c <= All; c++ {
		if name, ok := compositionNames[c]; ok {
			names = append(names, name)
		}
	}
	return names
}
