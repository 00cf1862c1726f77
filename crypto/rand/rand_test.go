package rand

import (
	"testing"
)

func TestNewSecureGenerator(t *testing.T) {
	// Make sure that generation works, no panics.
	randGen := NewSecureGenerator()
	defer func() {
		_ = randGen.Close()
	}()
	smokeTest(t, randGen)
}

func TestNewDeterministicGenerator(t *testing.T) {
	// Make sure that generation works, no panics.
	smokeTest(t, NewDeterministicGenerator())
	smokeTest(t, NewDeterministicGeneratorWithTimeSeed())
}

func smokeTest(t *testing.T, randGen Generator) {
	_ = randGen.Int()
	_ = randGen.NextBool()
	_ = randGen.NextByte()
	_ = randGen.NextShort()
	_ = randGen.NextLong()
	_ = randGen.NextDecimal()
	_ = randGen.NextDouble()
	if _, err := randGen.Intn(32); err != nil {
		t.Fatal(err)
	}
	if _, err := randGen.NextString(32, All); err != nil {
		t.Fatal(err)
	}
}
