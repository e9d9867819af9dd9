package credential

import (
	"errors"
	"fmt"

	"edu/hashlab/internal/salt"
)

// ErrNotFound is returned by Lookup for a user that was never enrolled.
var ErrNotFound = errors.New("user not enrolled")

// Credential is one stored user record. Immutable once enrolled; the
// plaintext password is not retained.
type Credential struct {
	UserID    string
	Digest    string
	Salt      string // empty when enrolled without salting
	Algorithm string
}

// Store is an in-memory stand-in for a user database. It has a single
// logical owner; a host sharing it across goroutines must serialize Enroll
// itself.
type Store struct {
	users map[string]Credential
}

func NewStore() *Store {
	return &Store{users: map[string]Credential{}}
}

// Enroll hashes the password, with a fresh salt when useSalt is set, and
// records the credential. Each salted enrollment draws its own salt; salts
// are never reused across credentials. Re-enrolling a userID overwrites the
// previous record.
func (s *Store) Enroll(userID, password, algo string, useSalt bool) (Credential, error) {
	var slt string
	if useSalt {
		var err error
		slt, err = salt.Generate(salt.DefaultLength)
		if err != nil {
			return Credential{}, err
		}
	}
	digest, err := Hash(password, algo, slt)
	if err != nil {
		return Credential{}, err
	}
	c := Credential{UserID: userID, Digest: digest, Salt: slt, Algorithm: algo}
	s.users[userID] = c
	return c, nil
}

func (s *Store) Lookup(userID string) (Credential, error) {
	if c, ok := s.users[userID]; ok {
		return c, nil
	}
	return Credential{}, fmt.Errorf("%w: %s", ErrNotFound, userID)
}

func (s *Store) Len() int { return len(s.users) }
