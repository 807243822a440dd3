package cubie

// CycleResult reports how long a sequence took to bring a solved cube back
// to solved.
type CycleResult struct {
	Sequence    Sequence
	Repetitions int  // Full passes of Sequence applied
	Moves       int  // Repetitions * len(Sequence)
	Solved      bool // False when the cap or context stopped the search
}

// CycleOrder repeats seq on a solved cube until it is solved again.
//
// Solved state is checked only after whole repetitions. The search stops
// with ErrCapExceeded once the move count passes the cap, or with the
// context's error if it is cancelled; the partial result is returned in
// both cases.
func CycleOrder(seq Sequence, opts ...Option) (CycleResult, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	result := CycleResult{Sequence: seq}
	if len(seq) == 0 {
		return result, ErrEmptySequence
	}

	tracker := NewTracker()
	for {
		if err := cfg.ctx.Err(); err != nil {
			return result, err
		}

		tracker.ApplyMoves(seq)
		result.Repetitions++
		result.Moves = tracker.MoveCount()

		if cfg.progress != nil {
			cfg.progress(result.Repetitions, result.Moves)
		}

		if tracker.IsSolved() {
			result.Solved = true
			return result, nil
		}
		if result.Moves > cfg.moveCap {
			return result, ErrCapExceeded
		}
	}
}
