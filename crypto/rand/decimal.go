package rand

import (
	"math/big"
	"strings"
)

// Decimal is a 96-bit fixed-point number: an unsigned coefficient split into
// three 32-bit words, a sign and a power-of-ten scale. Its value is
// (-1)^Negative * (Hi<<64 | Mid<<32 | Lo) / 10^Scale.
type Decimal struct {
	Lo, Mid, Hi uint32
	Negative    bool
	// Scale is the number of decimal places, from 0 to 28.
	Scale uint8
}

// Coefficient returns the unscaled, unsigned 96-bit integer.
func (d Decimal) Coefficient() *big.Int {
	c := new(big.Int).SetUint64(uint64(d.Hi))
	c.Lsh(c, 32)
	c.Or(c, new(big.Int).SetUint64(uint64(d.Mid)))
	c.Lsh(c, 32)
	c.Or(c, new(big.Int).SetUint64(uint64(d.Lo)))
	return c
}

// Rat returns the exact value of d.
func (d Decimal) Rat() *big.Rat {
	num := d.Coefficient()
	if d.Negative {
		num.Neg(num)
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Scale)), nil)
	return new(big.Rat).SetFrac(num, den)
}

// Float64 returns the nearest float64 to d.
func (d Decimal) Float64() float64 {
	f, _ := d.Rat().Float64()
	return f
}

// String renders d exactly, keeping the trailing zeros implied by Scale:
// a coefficient of 1500 with scale 3 prints as "1.500".
func (d Decimal) String() string {
	digits := d.Coefficient().String()
	scale := int(d.Scale)
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	var sb strings.Builder
	if d.Negative && d.Coefficient().Sign() != 0 {
		sb.WriteByte('-')
	}
	point := len(digits) - scale
	sb.WriteString(digits[:point])
	if scale > 0 {
		sb.WriteByte('.')
		sb.WriteString(digits[point:])
	}
	return sb.String()
}
