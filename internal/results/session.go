package results

import (
	"context"
	"sync"
)

// Session serializes the view of repeated fetches. Every Fetch is tagged
// with a generation; a result only commits when no newer fetch has started,
// so a slow response for an earlier document can never overwrite the view
// of a later one. Late results are dropped, never an error.
type Session struct {
	fetcher *Fetcher

	mu    sync.Mutex
	gen   uint64
	state State
}

func NewSession(client Getter) *Session {
	return &Session{fetcher: New(client)}
}

// Fetch runs one retrieval and returns its terminal state. The session state
// only advances when this call is still the latest one.
func (s *Session) Fetch(ctx context.Context, id string) State {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state = State{Status: StatusLoading}
	s.mu.Unlock()

	st := s.fetcher.Fetch(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.gen {
		s.state = st
	}
	return st
}

// State returns the committed view.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
