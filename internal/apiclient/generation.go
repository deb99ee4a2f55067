package apiclient

import (
	"sync"
	"sync/atomic"
)

// Generation issues fetch tokens. Only a response carrying the most
// recently issued token may replace the collection; older ones are stale.
type Generation struct {
	latest atomic.Uint64
	commit sync.Mutex
}

// Next issues a new token, making every earlier token stale.
func (g *Generation) Next() uint64 {
	return g.latest.Add(1)
}

// IsLatest reports whether token is the most recently issued one.
func (g *Generation) IsLatest(token uint64) bool {
	return g.latest.Load() == token
}

// Commit runs apply if token is still the latest, holding a lock so no other
// commit of g interleaves between the check and apply. It reports whether
// apply ran. Once a newer token has committed, an older one never can.
func (g *Generation) Commit(token uint64, apply func() error) (bool, error) {
	g.commit.Lock()
	defer g.commit.Unlock()
	if !g.IsLatest(token) {
		return false, nil
	}
	return true, apply()
}
