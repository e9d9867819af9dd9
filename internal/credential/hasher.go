package credential

import (
	"edu/hashlab/internal/hashes"
)

// Hash derives the stored digest for a password. When a salt is present its
// hex text is appended after the password bytes, never in front; an empty
// salt means no salting at all. The caller is responsible for supplying the
// same algorithm and salt at verification time as at enrollment time.
//
// Deterministic by construction. That determinism is exactly the weakness
// the unsalted enrollment path demonstrates.
func Hash(password, algo, salt string) (string, error) {
	material := make([]byte, 0, len(password)+len(salt))
	material = append(material, password...)
	material = append(material, salt...)
	return hashes.Digest(algo, material)
}
