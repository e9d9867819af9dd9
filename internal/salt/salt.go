package salt

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// DefaultLength is the salt size in bytes before hex encoding.
const DefaultLength = 16

// ErrInsufficientEntropy means the secure random source could not be read.
var ErrInsufficientEntropy = errors.New("insufficient entropy: secure random source unavailable")

// Generate returns lengthBytes of cryptographically secure random data as a
// hex string of 2*lengthBytes characters. There is no fallback to a seeded
// generator: a predictable salt would void the salting guarantee, so an
// unreadable entropy source is a hard failure.
func Generate(lengthBytes int) (string, error) {
	if lengthBytes <= 0 {
		lengthBytes = DefaultLength
	}
	buf := make([]byte, lengthBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInsufficientEntropy, err)
	}
	return hex.EncodeToString(buf), nil
}
