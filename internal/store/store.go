// Package store holds the single authoritative session state and applies the
// discrete action algebra that mutates it. Dispatch is synchronous and total:
// every action maps the current state to exactly one next state, unknown
// actions are no-ops, and actions are applied in dispatch order.
package store

import (
	"sync"

	"github.com/evanqhuang/resume-tailor/internal/types"
)

// SessionState is the complete observable state of one tailoring session.
// The document and analysis start absent and are only ever replaced through
// actions.
type SessionState struct {
	Resume    *types.Resume
	Analysis  *types.JobAnalysis
	IsLoading bool
	Err       string
}

// Subscriber receives the new state snapshot after each dispatch.
type Subscriber func(SessionState)

// Store owns the live SessionState. Components never keep private copies;
// they read the current snapshot and dispatch actions. The mutex serializes
// writes, so each dispatch is atomic with respect to the next.
type Store struct {
	mu    sync.Mutex
	state SessionState
	subs  map[int]Subscriber
	nextID int
}

// New creates a store with an empty session: no document, no analysis, not
// loading, no error.
func New() *Store {
	return &Store{subs: make(map[int]Subscriber)}
}

// State returns the current snapshot.
func (s *Store) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies one action and synchronously notifies subscribers with the
// resulting snapshot. It never fails.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state = reduce(s.state, action)
	next := s.state
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}

// Subscribe registers a subscriber and returns a function that removes it.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
