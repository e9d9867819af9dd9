package attack

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"edu/hashlab/internal/credential"
	"edu/hashlab/internal/hashes"
)

// AttemptParallel shards the dictionary across workers and reports the
// first match any worker finds. When several candidates reproduce the
// digest the reported one is not deterministic; callers that need
// dictionary-order semantics use Attempt.
func (s *Simulator) AttemptParallel(ctx context.Context, cred credential.Credential, dictionary []string) (Result, error) {
	start := time.Now()
	res := Result{}

	if _, err := hashes.Size(cred.Algorithm); err != nil {
		return res, err
	}

	workers := s.opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	s.logEvent("start", map[string]any{
		"user":       cred.UserID,
		"algo":       cred.Algorithm,
		"salted":     cred.Salt != "",
		"candidates": len(dictionary),
		"workers":    workers,
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workChan := make(chan string, workers*8)
	var tried uint64
	var found atomic.Bool
	var plaintext atomic.Value

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case cand, ok := <-workChan:
					if !ok {
						return
					}
					if found.Load() {
						continue
					}
					// Algorithm validated above; Hash cannot fail here.
					digest, _ := credential.Hash(cand, cred.Algorithm, cred.Salt)
					atomic.AddUint64(&tried, 1)
					if digest == cred.Digest {
						plaintext.Store(cand)
						found.Store(true)
						cancel()
						s.logEvent("found", map[string]any{"candidate": cand, "tried": atomic.LoadUint64(&tried)})
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(workChan)
		for _, cand := range dictionary {
			select {
			case workChan <- cand:
			case <-ctx.Done():
				return
			}
			if found.Load() {
				return
			}
		}
	}()

	wg.Wait()

	res.Duration = time.Since(start)
	res.Tried = atomic.LoadUint64(&tried)
	if v := plaintext.Load(); v != nil {
		res.Found = true
		res.Password = v.(string)
	}
	s.logEvent("done", map[string]any{
		"found":       res.Found,
		"tried":       res.Tried,
		"duration_ms": res.Duration.Milliseconds(),
	})
	if err := ctx.Err(); err != nil && !res.Found {
		return res, err
	}
	return res, nil
}
