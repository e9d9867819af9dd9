package avalanche

import (
	"edu/hashlab/internal/hashes"
)

// Comparison holds both digests and the percentage of hex positions where
// they disagree.
type Comparison struct {
	DigestA     string
	DigestB     string
	DiffPercent float64
}

// Compare digests both inputs under the same algorithm and measures
// positional hex-character disagreement. A given algorithm always produces
// digests of one fixed length, so the positional walk is well-defined.
//
// Hex-character granularity is a coarse proxy for bit-level diffusion: each
// character covers four bits, so a differing character can hide partial bit
// agreement. Kept deliberately; counting bits instead would shift the
// reported percentages.
func Compare(textA, textB, algo string) (Comparison, error) {
	da, err := hashes.Digest(algo, []byte(textA))
	if err != nil {
		return Comparison{}, err
	}
	db, err := hashes.Digest(algo, []byte(textB))
	if err != nil {
		return Comparison{}, err
	}

	diff := 0
	for i := range da {
		if da[i] != db[i] {
			diff++
		}
	}
	return Comparison{
		DigestA:     da,
		DigestB:     db,
		DiffPercent: 100 * float64(diff) / float64(len(da)),
	}, nil
}
