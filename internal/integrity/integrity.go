package integrity

import (
	"os"
	"strings"

	"edu/hashlab/internal/hashes"
)

// Checksum reads the whole file and digests its contents under algo.
func Checksum(path, algo string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return hashes.Digest(algo, data)
}

// Verify recomputes the file's digest and compares it to expected,
// case-insensitively. The current digest is returned either way so callers
// can show the mismatch.
func Verify(path, algo, expected string) (bool, string, error) {
	current, err := Checksum(path, algo)
	if err != nil {
		return false, "", err
	}
	return strings.EqualFold(current, expected), current, nil
}
