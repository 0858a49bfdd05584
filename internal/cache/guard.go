package cache

import (
	"sync"

	"github.com/alexanderramin/dayplan/internal/domain"
)

// Guard keeps a result from an older request from overwriting the cache
// after a newer request has started.
type Guard struct {
	mu     sync.Mutex
	latest uint64
}

// Ticket identifies one request issued by a Guard.
type Ticket struct {
	guard *Guard
	seq   uint64
}

// Begin issues a ticket that supersedes every earlier one.
func (g *Guard) Begin() Ticket {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.latest++
	return Ticket{guard: g, seq: g.latest}
}

// Current reports whether no newer ticket has been issued.
func (t Ticket) Current() bool {
	if t.guard == nil {
		return false
	}
	t.guard.mu.Lock()
	defer t.guard.mu.Unlock()
	return t.guard.latest == t.seq
}

// Commit writes result under key if the ticket is still current. A stale
// commit does nothing and returns false. The check and the write happen
// under the guard's lock, so Begin cannot slip in between.
func (t Ticket) Commit(store Store, key string, result domain.AnalysisResult) bool {
	if t.guard == nil {
		return false
	}
	t.guard.mu.Lock()
	defer t.guard.mu.Unlock()
	if t.guard.latest != t.seq {
		return false
	}
	store.Set(key, result)
	return true
}
