package attack

import (
	"encoding/json"
	"os"
	"strings"
	"sync"
	"time"

	"edu/hashlab/internal/credential"
)

type Options struct {
	Workers int
	LogPath string
	Event   func(event string, kv map[string]any)
}

type Result struct {
	Found    bool          `json:"found"`
	Password string        `json:"password"`
	Tried    uint64        `json:"tried"`
	Duration time.Duration `json:"duration_ns"`
}

// Simulator replays a candidate dictionary against stored credentials. It
// models an attacker who knows the stored digest, the algorithm, and the
// salt, but not the plaintext.
type Simulator struct {
	opts    Options
	logMu   sync.Mutex
	logFile *os.File
}

func New(opts Options) *Simulator {
	s := &Simulator{opts: opts}
	if opts.LogPath != "" {
		if f, err := os.Create(opts.LogPath); err == nil {
			s.logFile = f
		}
	}
	return s
}

func (s *Simulator) Close() error {
	if s.logFile != nil {
		return s.logFile.Close()
	}
	return nil
}

func (s *Simulator) logEvent(event string, kv map[string]any) {
	rec := map[string]any{"ts": time.Now().Format(time.RFC3339Nano), "event": event}
	for k, v := range kv {
		rec[k] = v
	}
	if s.logFile != nil {
		b, _ := json.Marshal(rec)
		s.logMu.Lock()
		_, _ = s.logFile.Write(append(b, '\n'))
		s.logMu.Unlock()
	}
	if s.opts.Event != nil {
		s.opts.Event(event, rec)
	}
}

// Attempt replays the dictionary against one credential, in order, stopping
// at the first candidate whose digest reproduces the stored one. The
// attacker always hashes with the credential's own algorithm and salt:
// knowing a unique per-user salt does not protect a single target from
// brute force, it only stops a precomputed table from being amortized
// across users that share no salt.
func (s *Simulator) Attempt(cred credential.Credential, dictionary []string) (Result, error) {
	start := time.Now()
	res := Result{}
	s.logEvent("start", map[string]any{
		"user":       cred.UserID,
		"algo":       cred.Algorithm,
		"salted":     cred.Salt != "",
		"candidates": len(dictionary),
	})

	for _, cand := range dictionary {
		digest, err := credential.Hash(cand, cred.Algorithm, cred.Salt)
		if err != nil {
			return res, err
		}
		res.Tried++
		if strings.EqualFold(digest, cred.Digest) {
			res.Found = true
			res.Password = cand
			s.logEvent("found", map[string]any{"candidate": cand, "tried": res.Tried})
			break
		}
	}

	res.Duration = time.Since(start)
	s.logEvent("done", map[string]any{
		"found":       res.Found,
		"tried":       res.Tried,
		"duration_ms": res.Duration.Milliseconds(),
	})
	return res, nil
}
