package rand

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/kit/runtime/lifecycle"
)

// secureBufferSize is the number of entropy bytes fetched per refill.
const secureBufferSize = 1024

// SecureGenerator produces random values from a cryptographically secure
// entropy source. Integers are read from an internal buffer that is refilled
// a kilobyte at a time; byte requests go straight to the source.
//
// A SecureGenerator owns its source and must be closed. It is not safe for
// concurrent use.
type SecureGenerator struct {
	src      EntropySource
	buf      [secureBufferSize]byte
	offset   int
	disposer lifecycle.Disposer
}

var (
	_ IntSource  = (*SecureGenerator)(nil)
	_ ByteSource = (*SecureGenerator)(nil)
	_ io.Closer  = (*SecureGenerator)(nil)
)

// NewSecureGenerator returns a generator backed by the operating system
// CSPRNG.
func NewSecureGenerator() *SecureGenerator {
	return NewSecureGeneratorWithSource(SystemEntropy())
}

// NewSecureGeneratorWithSource returns a generator reading from src. The
// generator takes ownership of src and closes it on Close.
func NewSecureGeneratorWithSource(src EntropySource) *SecureGenerator {
	if src == nil {
		src = SystemEntropy()
	}
	log.Debug("Created secure generator")
	return &SecureGenerator{
		src:    src,
		offset: secureBufferSize,
	}
}

// Close releases the entropy source. Calling Close more than once has no
// further effect.
func (g *SecureGenerator) Close() error {
	return g.disposer.Dispose(func() error {
		log.Debug("Closing secure generator")
		return g.src.Close()
	})
}

// Int returns a non-negative integer below 2^31 read from the buffer.
func (g *SecureGenerator) Int() int {
	g.mustBeOpen()
	if g.offset >= len(g.buf) {
		g.refill()
	}
	v := binary.LittleEndian.Uint32(g.buf[g.offset:]) & math.MaxInt32
	g.offset += 4
	return int(v)
}

// Intn returns Int() % n for n > 0 and 0 for n == 0. The modulo reduction is
// slightly biased towards small values when n does not divide 2^31.
func (g *SecureGenerator) Intn(n int) (int, error) {
	if err := g.checkOpen(); err != nil {
		return 0, err
	}
	switch {
	case n < 0:
		return 0, errors.Wrapf(ErrOutOfRange, "max value %d must be greater than or equal to 0", n)
	case n == 0:
		return 0, nil
	default:
		return g.Int() % n, nil
	}
}

// IntRange returns min + Intn(max-min).
func (g *SecureGenerator) IntRange(min, max int) (int, error) {
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

// Fill overwrites p with bytes read directly from the entropy source.
func (g *SecureGenerator) Fill(p []byte) {
	g.mustBeOpen()
	secureDirectReads.Inc()
	mustReadFull(g.src, p)
}

// NextBool returns true or false with equal probability.
func (g *SecureGenerator) NextBool() bool {
	return nextBool(g)
}

// NextByte returns a random byte.
func (g *SecureGenerator) NextByte() byte {
	return nextByte(g)
}

// NextBytes returns length bytes read directly from the entropy source.
func (g *SecureGenerator) NextBytes(length int) ([]byte, error) {
	if err := g.checkOpen(); err != nil {
		return nil, err
	}
	return nextBytes(g, length)
}

// NextShort returns an int16 in [0, 32767].
func (g *SecureGenerator) NextShort() int16 {
	return nextShort(g)
}

// NextLong returns a non-negative int64.
func (g *SecureGenerator) NextLong() int64 {
	return nextLong(g, g)
}

// NextDecimal returns a positive Decimal with a scale in [0, 28].
func (g *SecureGenerator) NextDecimal() Decimal {
	return nextDecimal(g)
}

// NextDouble returns a float64 in [0, 1].
func (g *SecureGenerator) NextDouble() float64 {
	return nextDouble(g)
}

// NextChar returns a character from the pool of c.
func (g *SecureGenerator) NextChar(c Composition) (rune, error) {
	if err := g.checkOpen(); err != nil {
		return 0, err
	}
	return nextChar(g, c)
}

// NextString returns length characters drawn from the pool of c.
func (g *SecureGenerator) NextString(length int, c Composition) (string, error) {
	if err := g.checkOpen(); err != nil {
		return "", err
	}
	return nextString(g, length, c)
}

// NextStringRange returns a string drawn from the pool of c whose length is in
// [minLength, maxLength). The upper bound is exclusive.
func (g *SecureGenerator) NextStringRange(minLength, maxLength int, c Composition) (string, error) {
	if err := g.checkOpen(); err != nil {
		return "", err
	}
	return nextStringRange(g, minLength, maxLength, c)
}

func (g *SecureGenerator) refill() {
	mustReadFull(g.src, g.buf[:])
	g.offset = 0
	secureBufferRefills.Inc()
	log.Trace("Refilled secure generator buffer")
}

// Closed reports whether Close has been called.
func (g *SecureGenerator) Closed() bool {
	return g.disposer.Disposed()
}

func (g *SecureGenerator) checkOpen() error {
	if g.Closed() {
		return ErrClosed
	}
	return nil
}

func (g *SecureGenerator) mustBeOpen() {
	if g.Closed() {
		panic(ErrClosed)
	}
}

// mustReadFull fills p from r. A failing entropy source leaves no safe way
// to continue, so the error is raised as a panic.
func mustReadFull(r io.Reader, p []byte) {
	if _, err := io.ReadFull(r, p); err != nil {
		panic(errors.Wrap(err, "could not read from entropy source"))
	}
}
