package rand

import (
	"math"
	mrand "math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/kit/encoding/uuidutil"
)

// DeterministicGenerator is a seedable pseudo-random generator. Two
// generators created with the same seed return identical values as long as
// their methods are called in the same order. It is not safe for concurrent
// use and must not be used for anything security sensitive.
type DeterministicGenerator struct {
	r    *mrand.Rand
	seed int64
}

var (
	_ IntSource  = (*DeterministicGenerator)(nil)
	_ ByteSource = (*DeterministicGenerator)(nil)
)

// NewDeterministicGenerator returns a generator seeded from the hash of a
// fresh random UUID. Unlike a clock based seed, generators created in quick
// succession get different seeds.
func NewDeterministicGenerator() *DeterministicGenerator {
	return NewDeterministicGeneratorWithSeed(int64(uuidutil.Hash(uuid.New())))
}

// NewDeterministicGeneratorWithSeed returns a generator seeded with seed.
func NewDeterministicGeneratorWithSeed(seed int64) *DeterministicGenerator {
	log.WithField("seed", seed).Debug("Created deterministic generator")
	return &DeterministicGenerator{
		r:    mrand.New(mrand.NewSource(seed)),
		seed: seed,
	}
}

// NewDeterministicGeneratorWithTimeSeed returns a generator seeded with the
// current time. Generators created within the clock resolution of each other
// share a seed and produce the same values.
func NewDeterministicGeneratorWithTimeSeed() *DeterministicGenerator {
	return NewDeterministicGeneratorWithSeed(time.Now().UnixNano())
}

// Seed returns the seed the generator was created with.
func (g *DeterministicGenerator) Seed() int64 {
	return g.seed
}

// Int returns a non-negative integer below 2^31.
func (g *DeterministicGenerator) Int() int {
	return int(g.r.Int31())
}

// Intn returns an integer in [0, n). n == 0 returns 0.
func (g *DeterministicGenerator) Intn(n int) (int, error) {
	switch {
	case n < 0:
		return 0, errors.Wrapf(ErrOutOfRange, "max value %d must be greater than or equal to 0", n)
	case n == 0:
		return 0, nil
	default:
		return g.r.Intn(n), nil
	}
}

// IntRange returns an integer in [min, max). min == max returns min.
func (g *DeterministicGenerator) IntRange(min, max int) (int, error) {
	if max < min {
		return 0, errors.Wrapf(ErrOutOfRange, "max value %d must be greater than or equal to min value %d", max, min)
	}
	if min < 0 && max > math.MaxInt+min {
		return 0, errors.Wrapf(ErrOutOfRange, "range [%d, %d) is too wide", min, max)
	}
	v, err := g.Intn(max - min)
	if err != nil {
		return 0, err
	}
	return min + v, nil
}

// Fill overwrites p with random bytes.
func (g *DeterministicGenerator) Fill(p []byte) {
	// (*math/rand.Rand).Read always fills p and returns a nil error.
	_, _ = g.r.Read(p)
}

// Shuffle pseudo-randomizes the order of n elements using swap.
func (g *DeterministicGenerator) Shuffle(n int, swap func(i, j int)) {
	g.r.Shuffle(n, swap)
}

// NextBool returns true or false with equal probability.
func (g *DeterministicGenerator) NextBool() bool {
	return nextBool(g)
}

// NextByte returns a random byte.
func (g *DeterministicGenerator) NextByte() byte {
	return nextByte(g)
}

// NextBytes returns length random bytes.
func (g *DeterministicGenerator) NextBytes(length int) ([]byte, error) {
	return nextBytes(g, length)
}

// NextShort returns an int16 in [0, 32767].
func (g *DeterministicGenerator) NextShort() int16 {
	return nextShort(g)
}

// NextLong returns a non-negative int64.
func (g *DeterministicGenerator) NextLong() int64 {
	return nextLong(g, g)
}

// NextDecimal returns a positive Decimal with a scale in [0, 28].
func (g *DeterministicGenerator) NextDecimal() Decimal {
	return nextDecimal(g)
}

// NextDouble returns a float64 in [0, 1].
func (g *DeterministicGenerator) NextDouble() float64 {
	return nextDouble(g)
}

// NextChar returns a character from the pool of c.
func (g *DeterministicGenerator) NextChar(c Composition) (rune, error) {
	return nextChar(g, c)
}

// NextString returns length characters drawn from the pool of c.
func (g *DeterministicGenerator) NextString(length int, c Composition) (string, error) {
	return nextString(g, length, c)
}

// NextStringRange returns a string drawn from the pool of c whose length is in
// [minLength, maxLength). The upper bound is exclusive.
func (g *DeterministicGenerator) NextStringRange(minLength, maxLength int, c Composition) (string, error) {
	return nextStringRange(g, minLength, maxLength, c)
}
