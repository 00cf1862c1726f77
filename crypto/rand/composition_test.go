package rand

import (
	"testing"

	"github.com/prysmaticlabs/kit/testing/assert"
	"github.com/prysmaticlabs/kit/testing/require"
)

func TestComposition_DerivedValues(t *testing.T) {
	assert.Equal(t, Composition(0x03), Letter)
	assert.Equal(t, Composition(0x07), AlphaNumeric)
	assert.Equal(t, Composition(0x27), AlphaNumericWhiteSpace)
	assert.Equal(t, Composition(0x3F), All)
}

func TestComposition_Has(t *testing.T) {
	assert.Equal(t, true, AlphaNumeric.Has(Digit))
	assert.Equal(t, true, AlphaNumeric.Has(Letter))
	assert.Equal(t, false, Letter.Has(AlphaNumeric))
	assert.Equal(t, true, None.Has(None))
}

func TestComposition_String(t *testing.T) {
	tests := []struct {
		c    Composition
		want string
	}{
		{c: None, want: "None"},
		{c: Digit, want: "Digit"},
		{c: AlphaNumeric, want: "AlphaNumeric"},
		{c: Digit | Symbol, want: "Digit|Symbol"},
		{c: UppercaseLetter | WhiteSpace, want: "UppercaseLetter|WhiteSpace"},
		{c: Digit | 0x40, want: "Digit|0x40"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.String())
		})
	}
}

func TestParseComposition(t *testing.T) {
	tests := []struct {
		input string
		want  Composition
	}{
		{input: "Digit", want: Digit},
		{input: "alphanumeric", want: AlphaNumeric},
		{input: "Digit|Symbol", want: Digit | Symbol},
		{input: "lowercaseletter, punctuationmark", want: LowercaseLetter | PunctuationMark},
		{input: "All", want: All},
		{input: "None", want: None},
		{input: "12", want: Digit | Symbol},
		{input: "0x3F", want: All},
		{input: "Letter|4", want: AlphaNumeric},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseComposition(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestParseComposition_Invalid(t *testing.T) {
	_, err := ParseComposition("")
	require.ErrorIs(t, err, ErrInvalidComposition)
	_, err = ParseComposition("Digit|Emoji")
	require.ErrorIs(t, err, ErrInvalidComposition)
	assert.ErrorContains(t, "Emoji", err)
	_, err = ParseComposition("0x40")
	require.ErrorIs(t, err, ErrInvalidComposition)
	_, err = ParseComposition("Digit|-1")
	require.ErrorIs(t, err, ErrInvalidComposition)
}

func TestCompositionOf(t *testing.T) {
	for v := int64(0); v <= int64(All); v++ {
		c, err := CompositionOf(v)
		require.NoError(t, err)
		assert.Equal(t, Composition(v), c)
	}
	for _, v := range []int64{-1, 0x40, 0x7F, 256} {
		_, err := CompositionOf(v)
		assert.ErrorIs(t, err, ErrInvalidComposition, "value %d", v)
	}
}

func TestParseComposition_RoundTrip(t *testing.T) {
	for c := None; c <= All; c++ {
		parsed, err := ParseComposition(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}

func TestCompositionNames(t *testing.T) {
	names := CompositionNames()
	require.Equal(t, 11, len(names))
	assert.Equal(t, "None", names[0])
	assert.Equal(t, "All", names[len(names)-1])
}
