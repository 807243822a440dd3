package cubie

// Tracker wraps a State and counts moves, reporting each return to solved.
type Tracker struct {
	state          State
	moves          int
	solvedCallback func(moves int)
}

// NewTracker creates a new tracker starting from a solved state.
func NewTracker() *Tracker {
	return &Tracker{state: Solved()}
}

// SetSolvedCallback sets a callback that fires whenever a move brings the
// cube back to solved. It receives the total move count so far.
func (t *Tracker) SetSolvedCallback(cb func(moves int)) {
	t.solvedCallback = cb
}

// Reset resets the tracker to a solved cube and zero moves.
func (t *Tracker) Reset() {
	t.state = Solved()
	t.moves = 0
}

// ApplyMove applies a move and checks for a return to solved.
func (t *Tracker) ApplyMove(m Move) {
	t.state.applyMove(m)
	t.moves++
	if t.solvedCallback != nil && t.state.IsSolved() {
		t.solvedCallback(t.moves)
	}
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// MoveCount returns the moves applied since the last reset.
func (t *Tracker) MoveCount() int {
	return t.moves
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.state.IsSolved()
}

// State returns a copy of the tracked state.
func (t *Tracker) State() State {
	return t.state
}
