package cubie

import "sync"

// Shared guards a State for use from multiple goroutines.
// Each call holds the lock for its whole duration, so readers never see a
// half-applied move.
type Shared struct {
	mu    sync.Mutex
	state State
}

// NewShared creates a guarded solved cube.
func NewShared() *Shared {
	return &Shared{state: Solved()}
}

// Apply applies moves in order as one atomic update.
func (s *Shared) Apply(moves ...Move) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Apply(moves...)
}

// Randomize scrambles the cube under the lock.
func (s *Shared) Randomize(depth int, src Source) Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Randomize(depth, src)
}

// IsSolved returns true if the cube is solved.
func (s *Shared) IsSolved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsSolved()
}

// Snapshot returns a copy of the current state.
func (s *Shared) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
