// SPDX-License-Identifier: MIT
//
// Package registry assigns and exposes sequential bus indices.
//
// A Registry maps a bus name to the index most recently assigned to that name
// and owns the monotonic counter that produces indices. Indices are handed out
// in construction order (0, 1, 2, ...) and are never reused until Reset.
//
// Shadowing:
//
//	Registering a name that is already present overwrites the name entry
//	("last write wins"). The earlier index is not recycled: the bus object
//	that owns it keeps it, but it can no longer be reached by name.
//
// Concurrency:
//
//	The counter and the name map form one unit guarded by a single mutex;
//	every Register call is one critical section.
//
// Errors:
//
//	None. Lookup on an unknown name reports (0, false).
package registry

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridtopo/internal/logging"
)

// Observer receives registry events. It is the hook used by metric
// collectors; implementations must be safe for concurrent use.
//
// Calls are made with the registry lock held, so one registry's events
// arrive in the order they took effect. An Observer must not call back into
// the Registry that notifies it.
type Observer interface {
	ObserveRegistration(index int, shadowed bool)
	ObserveReset()
}

// Option configures a Registry before first use.
type Option func(r *Registry)

// WithLogger routes registry events to log.
func WithLogger(log logging.Logger) Option {
	if log == nil {
		panic("registry: WithLogger(nil)")
	}
	return func(r *Registry) { r.log = log }
}

// WithObserver attaches an Observer notified on every Register and Reset.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("registry: WithObserver(nil)")
	}
	return func(r *Registry) { r.observer = o }
}

// Registry is a scenario-scoped bus index space.
// mu guards id, next and index together.
type Registry struct {
	mu sync.Mutex

	id    uuid.UUID      // session identity, renewed on Reset
	next  int            // next index to hand out
	index map[string]int // bus name → most recently assigned index

	log      logging.Logger
	observer Observer
}

// New returns an empty Registry whose counter starts at 0.
// Complexity: O(len(opts)).
func New(opts ...Option) *Registry {
	r := &Registry{
		id:    uuid.New(),
		index: make(map[string]int),
		log:   logging.Noop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(logging.String("registry", r.id.String()))

	return r
}

// Register assigns the next index to name and returns it.
//
// Implementation:
//   - Stage 1: Under mu, take the counter value and advance it.
//   - Stage 2: Overwrite name → index, remembering whether name was present.
//   - Stage 3: Notify the observer before releasing mu; log after.
//
// Register always succeeds; the empty name is an ordinary key.
// Complexity: O(1) amortized.
func (r *Registry) Register(name string) int {
	r.mu.Lock()
	idx := r.next
	r.next++
	prev, shadowed := r.index[name]
	r.index[name] = idx
	if r.observer != nil {
		r.observer.ObserveRegistration(idx, shadowed)
	}
	r.mu.Unlock()

	if shadowed {
		r.log.Warn("bus name shadowed",
			logging.String("bus", name),
			logging.Int("previous_index", prev),
			logging.Int("index", idx))
	} else {
		r.log.Debug("bus registered", logging.String("bus", name), logging.Int("index", idx))
	}

	return idx
}

// Lookup returns the last index registered under name.
// The boolean is false when name was never registered since the last Reset.
// Complexity: O(1).
func (r *Registry) Lookup(name string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx, ok := r.index[name]

	return idx, ok
}

// Reset clears every name and rewinds the counter to 0 under a new session ID.
// Bus objects created before the reset keep their indices; those indices now
// collide with the new index space, so a reset should only separate
// independent scenarios.
func (r *Registry) Reset() {
	r.mu.Lock()
	dropped := len(r.index)
	r.id = uuid.New()
	r.next = 0
	clear(r.index)
	if r.observer != nil {
		r.observer.ObserveReset()
	}
	r.mu.Unlock()

	r.log.Info("bus registry reset", logging.Int("dropped_names", dropped))
}

// ID returns the identity of the current index space.
func (r *Registry) ID() uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.id
}

// Len returns the number of distinct names currently reachable by Lookup.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.index)
}

// Next returns the index the following Register call will assign, which is
// also the size of the index space. Next() >= Len(); the difference is the
// number of shadowed registrations.
func (r *Registry) Next() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.next
}

// Names returns the reachable names sorted ascending.
// Complexity: O(n log n).
func (r *Registry) Names() []string {
	r.mu.Lock()
	names := make([]string, 0, len(r.index))
	for name := range r.index {
		names = append(names, name)
	}
	r.mu.Unlock()
	slices.Sort(names)

	return names
}

// Snapshot returns a copy of the name → index map.
func (r *Registry) Snapshot() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]int, len(r.index))
	for name, idx := range r.index {
		out[name] = idx
	}

	return out
}

// NameAt returns the name currently reaching index. Shadowed and
// out-of-range indices report ("", false).
// Complexity: O(n).
func (r *Registry) NameAt(index int) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= r.next {
		return "", false
	}
	for name, idx := range r.index {
		if idx == index {
			return name, true
		}
	}

	return "", false
}
