package rand

import (
	"fmt"
	"math"
	"testing"

	"github.com/prysmaticlabs/kit/testing/assert"
	"github.com/prysmaticlabs/kit/testing/require"
)

// scriptedSource replays fixed integers and bytes and records every call made
// against it.
type scriptedSource struct {
	ints  []int
	bytes []byte
	calls []string
}

func (s *scriptedSource) next() int {
	if len(s.ints) == 0 {
		panic("scripted source ran out of integers")
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func (s *scriptedSource) Int() int {
	s.calls = append(s.calls, "Int")
	return s.next()
}

func (s *scriptedSource) Intn(n int) (int, error) {
	s.calls = append(s.calls, fmt.Sprintf("Intn(%d)", n))
	return s.next(), nil
}

func (s *scriptedSource) IntRange(min, max int) (int, error) {
	s.calls = append(s.calls, fmt.Sprintf("IntRange(%d,%d)", min, max))
	return min + s.next(), nil
}

func (s *scriptedSource) Fill(p []byte) {
	s.calls = append(s.calls, fmt.Sprintf("Fill(%d)", len(p)))
	n := copy(p, s.bytes)
	s.bytes = s.bytes[n:]
}

func TestNextBool(t *testing.T) {
	src := &scriptedSource{ints: []int{1, 0}}
	assert.Equal(t, true, nextBool(src))
	assert.Equal(t, false, nextBool(src))
	assert.DeepEqual(t, []string{"Intn(2)", "Intn(2)"}, src.calls)
}

func TestNextByte(t *testing.T) {
	src := &scriptedSource{bytes: []byte{0xAB}}
	assert.Equal(t, byte(0xAB), nextByte(src))
	assert.DeepEqual(t, []string{"Fill(1)"}, src.calls)
}

func TestNextBytes(t *testing.T) {
	src := &scriptedSource{bytes: []byte{1, 2, 3}}
	b, err := nextBytes(src, 3)
	require.NoError(t, err)
	assert.DeepEqual(t, []byte{1, 2, 3}, b)

	b, err = nextBytes(src, 0)
	require.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 0, len(b))
	assert.DeepEqual(t, []string{"Fill(3)"}, src.calls, "empty request must not touch the source")

	_, err = nextBytes(src, -1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestNextShort(t *testing.T) {
	src := &scriptedSource{ints: []int{math.MaxInt16}}
	assert.Equal(t, int16(math.MaxInt16), nextShort(src))
	assert.DeepEqual(t, []string{"IntRange(0,32768)"}, src.calls)
}

func TestNextLong(t *testing.T) {
	src := &scriptedSource{
		bytes: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
		ints:  []int{0x7F},
	}
	assert.Equal(t, int64(0x7F07060504030201), nextLong(src, src))
	assert.DeepEqual(t, []string{"Fill(7)", "IntRange(0,128)"}, src.calls)
}

func TestNextLong_NeverNegative(t *testing.T) {
	src := &scriptedSource{
		bytes: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		ints:  []int{longTopByteBound - 1},
	}
	assert.Equal(t, int64(math.MaxInt64), nextLong(src, src))
}

func TestNextDecimal(t *testing.T) {
	src := &scriptedSource{ints: []int{1, 2, 3, 28}}
	d := nextDecimal(src)
	assert.DeepEqual(t, Decimal{Lo: 1, Mid: 2, Hi: 3, Scale: 28}, d)
	assert.DeepEqual(t, []string{"Int", "Int", "Int", "IntRange(0,29)"}, src.calls)
}

func TestNextDouble(t *testing.T) {
	tests := []struct {
		v    int
		want float64
	}{
		{v: 0, want: 0},
		{v: math.MaxInt32, want: 1},
		{v: math.MaxInt32 / 2, want: float64(math.MaxInt32/2) / math.MaxInt32},
	}
	for _, tt := range tests {
		src := &scriptedSource{ints: []int{tt.v}}
		assert.Equal(t, tt.want, nextDouble(src))
	}
}

func TestNextString(t *testing.T) {
	src := &scriptedSource{ints: []int{0, 9, 5}}
	s, err := nextString(src, 3, Digit)
	require.NoError(t, err)
	assert.Equal(t, "095", s)
	assert.DeepEqual(t, []string{"IntRange(0,10)", "IntRange(0,10)", "IntRange(0,10)"}, src.calls)
}

func TestNextString_ZeroLengthSkipsComposition(t *testing.T) {
	src := &scriptedSource{}
	s, err := nextString(src, 0, None)
	require.NoError(t, err)
	assert.Equal(t, "", s)
	assert.Equal(t, 0, len(src.calls))
}

func TestNextString_Errors(t *testing.T) {
	src := &scriptedSource{}
	_, err := nextString(src, -1, Digit)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = nextString(src, 1, None)
	require.ErrorIs(t, err, ErrInvalidComposition)
}

func TestNextChar(t *testing.T) {
	src := &scriptedSource{ints: []int{3}}
	c, err := nextChar(src, Symbol)
	require.NoError(t, err)
	assert.Equal(t, '=', c)

	_, err = nextChar(src, None)
	require.ErrorIs(t, err, ErrInvalidComposition)
}

func TestNextStringRange(t *testing.T) {
	src := &scriptedSource{ints: []int{1, 0, 1, 2}}
	s, err := nextStringRange(src, 2, 5, LowercaseLetter)
	require.NoError(t, err)
	assert.Equal(t, "abc", s)
	assert.Equal(t, "IntRange(2,5)", src.calls[0])
}

func TestNextStringRange_Errors(t *testing.T) {
	src := &scriptedSource{}
	_, err := nextStringRange(src, -1, 5, Digit)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 0, len(src.calls))
}

func TestMustHelpers_Panic(t *testing.T) {
	g := NewDeterministicGeneratorWithSeed(1)
	assert.Panics(t, func() { mustIntn(g, -1) })
	assert.Panics(t, func() { mustIntRange(g, 2, 1) })
}
