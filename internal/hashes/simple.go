package hashes

import (
	"crypto/sha512"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	sha256simd "github.com/minio/sha256-simd"
)

type simpleDigester struct{ algo string }

func (s simpleDigester) Name() string { return s.algo }

func (s simpleDigester) Sum(b []byte) []byte {
	switch s.algo {
	case "sha256":
		// sha256-simd
		v := sha256simd.Sum256(b)
		return v[:]
	case "sha512":
		v := sha512.Sum512(b)
		return v[:]
	case "sha3-512":
		v := sha3.Sum512(b)
		return v[:]
	case "blake2b":
		v := blake2b.Sum512(b)
		return v[:]
	default:
		return nil
	}
}

func (s simpleDigester) Size() int {
	switch s.algo {
	case "sha256":
		return 32
	case "sha512", "sha3-512", "blake2b":
		return 64
	default:
		return 0
	}
}

func init() {
	register(simpleDigester{"sha256"})
	register(simpleDigester{"sha512"})
	register(simpleDigester{"sha3-512"})
	register(simpleDigester{"blake2b"})
}
