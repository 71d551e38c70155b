package connection

import (
	"sync"
	"time"
)

// State tracks requests that are still in flight
type State struct {
	inFlight map[string]time.Time // placeholder id -> send time
	mu       sync.RWMutex
}

// NewState creates an empty in-flight tracker
func NewState() *State {
	return &State{
		inFlight: make(map[string]time.Time),
	}
}

func (s *State) begin(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight[id] = time.Now()
}

// finish removes the request and returns how long it took
func (s *State) finish(id string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	started, ok := s.inFlight[id]
	if !ok {
		return 0
	}
	delete(s.inFlight, id)
	return time.Since(started)
}

// InFlight returns the number of unanswered requests
func (s *State) InFlight() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.inFlight)
}
