package rand

import (
	crand "crypto/rand"
	"io"
)

// EntropySource supplies the bytes of a SecureGenerator. Read must fill p
// with cryptographically secure random bytes. Close releases the source; a
// SecureGenerator calls it exactly once.
type EntropySource interface {
	io.Reader
	io.Closer
}

type systemEntropy struct{}

func (systemEntropy) Read(p []byte) (int, error) {
	return crand.Read(p)
}

func (systemEntropy) Close() error {
	return nil
}

// SystemEntropy returns the operating system CSPRNG as an EntropySource.
// Closing it is a no-op.
func SystemEntropy() EntropySource {
	return systemEntropy{}
}
