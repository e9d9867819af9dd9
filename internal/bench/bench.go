package bench

import (
	"time"

	"edu/hashlab/internal/credential"
	"edu/hashlab/internal/hashes"
	"edu/hashlab/internal/salt"
)

// Measurement is one timed run of repeated digest calls.
type Measurement struct {
	Algorithm    string
	Iterations   int
	Elapsed      time.Duration
	HashesPerSec float64
}

// Run times iterations digest calls over the same input under one
// algorithm.
func Run(algo string, input []byte, iterations int) (Measurement, error) {
	if iterations <= 0 {
		iterations = 1
	}
	if _, err := hashes.Size(algo); err != nil {
		return Measurement{}, err
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		_, _ = hashes.Digest(algo, input)
	}
	elapsed := time.Since(start)
	return Measurement{
		Algorithm:    algo,
		Iterations:   iterations,
		Elapsed:      elapsed,
		HashesPerSec: rate(iterations, elapsed),
	}, nil
}

// RunAll measures every registered algorithm, in hashes.List order.
func RunAll(input []byte, iterations int) ([]Measurement, error) {
	out := make([]Measurement, 0, len(hashes.List()))
	for _, algo := range hashes.List() {
		m, err := Run(algo, input, iterations)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// RunSalted times the full credential-hashing path: password plus one fresh
// salt, hashed iterations times. This is the authentication-cost view rather
// than the raw-digest view.
func RunSalted(algo, password string, iterations int) (Measurement, error) {
	if iterations <= 0 {
		iterations = 1
	}
	slt, err := salt.Generate(salt.DefaultLength)
	if err != nil {
		return Measurement{}, err
	}
	if _, err := credential.Hash(password, algo, slt); err != nil {
		return Measurement{}, err
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		_, _ = credential.Hash(password, algo, slt)
	}
	elapsed := time.Since(start)
	return Measurement{
		Algorithm:    algo,
		Iterations:   iterations,
		Elapsed:      elapsed,
		HashesPerSec: rate(iterations, elapsed),
	}, nil
}

// Fastest returns the index of the quickest measurement, or -1 when empty.
func Fastest(ms []Measurement) int {
	best := -1
	for i, m := range ms {
		if best < 0 || m.Elapsed < ms[best].Elapsed {
			best = i
		}
	}
	return best
}

func rate(iterations int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(iterations) / elapsed.Seconds()
}
