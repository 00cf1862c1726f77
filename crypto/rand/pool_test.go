package rand

import (
	"strings"
	"testing"

	"github.com/prysmaticlabs/kit/testing/assert"
	"github.com/prysmaticlabs/kit/testing/require"
)

func TestPool_LiteralClasses(t *testing.T) {
	tests := []struct {
		c    Composition
		want string
	}{
		{c: LowercaseLetter, want: "abcdefghijklmnopqrstuvqxyz"},
		{c: UppercaseLetter, want: "ABCDEFGHIJKLMNOPQRSTUVQXYZ"},
		{c: Digit, want: "0123456789"},
		{c: Symbol, want: "$+<=>^`|~"},
		{c: PunctuationMark, want: `!"#%&'()*,-./:;?@[\]{}`},
		{c: WhiteSpace, want: "      "},
	}
	for _, tt := range tests {
		t.Run(tt.c.String(), func(t *testing.T) {
			p, err := Pool(tt.c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestPool_Sizes(t *testing.T) {
	tests := []struct {
		c    Composition
		size int
	}{
		{c: LowercaseLetter, size: 26},
		{c: Symbol, size: 9},
		{c: PunctuationMark, size: 22},
		{c: WhiteSpace, size: 6},
		{c: Letter, size: 52},
		{c: AlphaNumeric, size: 62},
		{c: AlphaNumericWhiteSpace, size: 68},
		{c: All, size: 99},
	}
	for _, tt := range tests {
		t.Run(tt.c.String(), func(t *testing.T) {
			p, err := Pool(tt.c)
			require.NoError(t, err)
			assert.Equal(t, tt.size, len([]rune(p)))
		})
	}
}

func TestPool_LetterHasNoW(t *testing.T) {
	p, err := Pool(Letter)
	require.NoError(t, err)
	assert.Equal(t, false, strings.ContainsAny(p, "wW"))
	assert.Equal(t, 2, strings.Count(p, "q"))
	assert.Equal(t, 2, strings.Count(p, "Q"))
}

func TestPool_ConcatenationOrder(t *testing.T) {
	p, err := Pool(WhiteSpace | Digit | LowercaseLetter)
	require.NoError(t, err)
	assert.Equal(t, "abcdefghijklmnopqrstuvqxyz0123456789      ", p)
}

func TestPool_InvalidComposition(t *testing.T) {
	_, err := Pool(None)
	require.ErrorIs(t, err, ErrInvalidComposition)
	_, err = Pool(0x40)
	require.ErrorIs(t, err, ErrInvalidComposition)
}

func TestPool_IgnoresUnknownBits(t *testing.T) {
	p, err := Pool(Digit | 0x80)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", p)
}

func TestPool_Memoized(t *testing.T) {
	c := Symbol | WhiteSpace
	first, err := pool(c)
	require.NoError(t, err)
	assert.Equal(t, true, pools.Contains(c))

	second, err := pool(c)
	require.NoError(t, err)
	assert.Equal(t, &first[0], &second[0], "pool was rebuilt instead of served from cache")
}
