package panel

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrViewNotFound is returned for ids that are not view ids at all.
var ErrViewNotFound = errors.New("view not found")

type entry struct {
	mu       sync.Mutex
	view     *View
	lastSeen time.Time
}

// Registry holds the views that have received at least one event. Page loads
// only mint an id; the view behind it is created on first use, so a reload
// never leaves state behind. At most maxViews views are held, the least
// recently used one is dropped to make room.
type Registry struct {
	mu       sync.RWMutex
	views    map[string]*entry
	maxViews int
	now      func() time.Time
}

// NewRegistry creates an empty registry holding at most maxViews views.
// A non-positive maxViews disables the cap.
func NewRegistry(maxViews int) *Registry {
	return &Registry{
		views:    make(map[string]*entry),
		maxViews: maxViews,
		now:      time.Now,
	}
}

// Mint returns a fresh view id without storing anything.
func (r *Registry) Mint() string {
	return uuid.NewString()
}

// Do runs fn with exclusive access to the view identified by id. An unknown
// but well-formed id gets a new view in its initial state.
func (r *Registry) Do(id string, fn func(v *View)) error {
	e, err := r.acquire(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSeen = r.now()
	fn(e.view)
	return nil
}

func (r *Registry) acquire(id string) (*entry, error) {
	r.mu.RLock()
	e, ok := r.views[id]
	r.mu.RUnlock()
	if ok {
		return e, nil
	}

	if err := uuid.Validate(id); err != nil {
		return nil, ErrViewNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.views[id]; ok {
		return e, nil
	}
	if r.maxViews > 0 && len(r.views) >= r.maxViews {
		r.dropOldestLocked()
	}
	e = &entry{view: NewView(), lastSeen: r.now()}
	r.views[id] = e
	return e, nil
}

// dropOldestLocked removes the least recently used view. r.mu must be held.
func (r *Registry) dropOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, e := range r.views {
		e.mu.Lock()
		seen := e.lastSeen
		e.mu.Unlock()
		if oldestID == "" || seen.Before(oldest) {
			oldestID, oldest = id, seen
		}
	}
	delete(r.views, oldestID)
}

// EvictIdle removes views untouched for longer than ttl and returns how many were removed.
func (r *Registry) EvictIdle(ttl time.Duration) int {
	cutoff := r.now().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, e := range r.views {
		e.mu.Lock()
		idle := e.lastSeen.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(r.views, id)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of stored views.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.views)
}
