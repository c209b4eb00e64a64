package server

import (
	"sort"
	"sync"

	"github.com/matzehuels/rackroom/pkg/ladder"
	"github.com/matzehuels/rackroom/pkg/plan"
)

// planState is one room with its ladders and the lock that serializes
// access to them. The engine itself is lock-free; holding mu for the
// whole operation is what makes each mutation atomic under concurrent
// API requests.
type planState struct {
	mu      sync.Mutex
	room    *plan.Room
	ladders []*ladder.Ladder
}

// findLadder returns the ladder with the given id, or nil.
// Callers must hold mu.
func (p *planState) findLadder(id string) *ladder.Ladder {
	for _, l := range p.ladders {
		if l.ID() == id {
			return l
		}
	}
	return nil
}

// removeLadder deletes the ladder with the given id, reporting whether
// it existed. Callers must hold mu.
func (p *planState) removeLadder(id string) bool {
	for i, l := range p.ladders {
		if l.ID() == id {
			p.ladders = append(p.ladders[:i], p.ladders[i+1:]...)
			return true
		}
	}
	return false
}

// registry holds the in-memory rooms the server is currently editing.
// It is an embedding concern: the engine never sees it.
type registry struct {
	mu    sync.RWMutex
	plans map[string]*planState
}

func newRegistry() *registry {
	return &registry{plans: make(map[string]*planState)}
}

// get returns the state for a room, or false if not present.
func (r *registry) get(roomID string) (*planState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plans[roomID]
	return p, ok
}

// put registers a room, reporting false if the id is already taken.
func (r *registry) put(roomID string, p *planState) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.plans[roomID]; exists {
		return false
	}
	r.plans[roomID] = p
	return true
}

// replace registers a room, overwriting any existing state. Used by
// plan import, where replacing the working copy is the point.
func (r *registry) replace(roomID string, p *planState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[roomID] = p
}

// remove deletes a room, reporting whether it existed.
func (r *registry) remove(roomID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[roomID]; !ok {
		return false
	}
	delete(r.plans, roomID)
	return true
}

// ids returns all registered room ids, sorted.
func (r *registry) ids() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.plans))
	for id := range r.plans {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
