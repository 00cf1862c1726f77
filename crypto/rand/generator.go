package rand

// Generator is the typed-value vocabulary shared by DeterministicGenerator
// and SecureGenerator. Both derive every value through the same functions,
// so for equal primitive draws they return equal values.
type Generator interface {
	IntSource
	ByteSource
	NextBool() bool
	NextByte() byte
	NextBytes(length int) ([]byte, error)
	NextShort() int16
	NextLong() int64
	NextDecimal() Decimal
	NextDouble() float64
	NextChar(c Composition) (rune, error)
	NextString(length int, c Composition) (string, error)
	NextStringRange(minLength, maxLength int, c Composition) (string, error)
}

var (
	_ Generator = (*DeterministicGenerator)(nil)
	_ Generator = (*SecureGenerator)(nil)
)
