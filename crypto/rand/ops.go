package rand

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/kit/container/slice"
)

// IntSource is the bounded-integer primitive a generator supplies to the
// shared derivation functions.
type IntSource interface {
	// Int returns a non-negative integer below 2^31.
	Int() int
	// Intn returns an integer in [0, n). It returns 0 when n is 0 and
	// ErrOutOfRange when n is negative.
	Intn(n int) (int, error)
	// IntRange returns an integer in [min, max). It returns min when
	// min == max and ErrOutOfRange when max < min.
	IntRange(min, max int) (int, error)
}

// ByteSource is the byte primitive a generator supplies to the shared
// derivation functions.
type ByteSource interface {
	// Fill overwrites p with random bytes.
	Fill(p []byte)
}

const (
	shortBound = math.MaxInt16 + 1
	// longTopByteBound keeps the most significant byte of a generated long
	// in [0, 127] so the result is never negative. It is ceil(255 / 2).
	longTopByteBound = (math.MaxUint8 + 1) / 2
	maxDecimalScale  = 28
)

func nextBool(ints IntSource) bool {
	return mustIntn(ints, 2) == 1
}

func nextByte(bytes ByteSource) byte {
	var b [1]byte
	bytes.Fill(b[:])
	return b[0]
}

func nextBytes(bytes ByteSource, length int) ([]byte, error) {
	if length < 0 {
		return nil, errors.Wrapf(ErrOutOfRange, "length %d must be greater than or equal to 0", length)
	}
	b := make([]byte, length)
	if length > 0 {
		bytes.Fill(b)
	}
	return b, nil
}

func nextShort(ints IntSource) int16 {
	return int16(mustIntRange(ints, 0, shortBound))
}

// nextLong reads seven random bytes plus a top byte below 128 as a
// little-endian int64. The result is non-negative but not uniform over the
// int64 range.
func nextLong(bytes ByteSource, ints IntSource) int64 {
	var b [8]byte
	bytes.Fill(b[:7])
	b[7] = byte(mustIntRange(ints, 0, longTopByteBound))
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func nextDecimal(ints IntSource) Decimal {
	lo := uint32(ints.Int())
	mid := uint32(ints.Int())
	hi := uint32(ints.Int())
	scale := uint8(mustIntRange(ints, 0, maxDecimalScale+1))
	return Decimal{Lo: lo, Mid: mid, Hi: hi, Scale: scale}
}

// nextDouble returns a value in [0, 1]. Both ends are reachable.
func nextDouble(ints IntSource) float64 {
	return float64(ints.Int()) / math.MaxInt32
}

func nextChar(ints IntSource, c Composition) (rune, error) {
	s, err := nextString(ints, 1, c)
	if err != nil {
		return 0, err
	}
	return []rune(s)[0], nil
}

// nextString draws length characters from the pool of c. A zero length
// returns the empty string without validating c.
func nextString(ints IntSource, length int, c Composition) (string, error) {
	if length < 0 {
		return "", errors.Wrapf(ErrOutOfRange, "length %d must be greater than or equal to 0", length)
	}
	if length == 0 {
		return "", nil
	}
	p, err := pool(c)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		r, err := slice.RandomRef(p, ints)
		if err != nil {
			return "", err
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// nextStringRange draws a length in [minLength, maxLength) and then a string
// of that length. maxLength is exclusive; equal bounds give exactly minLength
// characters.
func nextStringRange(ints IntSource, minLength, maxLength int, c Composition) (string, error) {
	if minLength < 0 {
		return "", errors.Wrapf(ErrOutOfRange, "min length %d must be greater than or equal to 0", minLength)
	}
	length, err := ints.IntRange(minLength, maxLength)
	if err != nil {
		return "", err
	}
	return nextString(ints, length, c)
}

func mustIntn(ints IntSource, n int) int {
	v, err := ints.Intn(n)
	if err != nil {
		panic(err)
	}
	return v
}

func mustIntRange(ints IntSource, min, max int) int {
	v, err := ints.IntRange(min, max)
	if err != nil {
		panic(err)
	}
	return v
}
