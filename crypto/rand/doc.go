// Package rand generates typed random values: booleans, bytes, integers,
// fixed-point decimals, doubles and strings drawn from configurable
// character classes.
//
// Two generators are provided. DeterministicGenerator is seedable and
// reproducible; SecureGenerator reads from a cryptographically secure
// entropy source through a 1 KiB buffer and must be closed. Both reduce every
// value to the IntSource and ByteSource primitives, so the derivation rules
// are identical for both:
//
//	g := rand.NewDeterministicGeneratorWithSeed(42)
//	s, err := g.NextString(8, rand.AlphaNumeric)
//
// Neither generator is safe for concurrent use. Give each goroutine its own.
package rand
