package hashes

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownAlgorithm is returned when a digest is requested under a name
// that was never registered.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

type Digester interface {
	Name() string
	Sum(data []byte) []byte
	Size() int
}

// The registry is built once in init() and never mutated afterwards.
var registry = map[string]Digester{}

func register(d Digester) { registry[d.Name()] = d }

func get(name string) (Digester, error) {
	if d, ok := registry[name]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
}

// Digest hashes data under the named algorithm and returns the lowercase hex
// encoding. Output length is fixed per algorithm; callers must not assume a
// common length across algorithms.
func Digest(name string, data []byte) (string, error) {
	d, err := get(name)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(d.Sum(data)), nil
}

// Size returns the digest length in bytes for the named algorithm.
func Size(name string) (int, error) {
	d, err := get(name)
	if err != nil {
		return 0, err
	}
	return d.Size(), nil
}

func List() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
