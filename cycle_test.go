package cubie

import (
	"context"
	"errors"
	"testing"
)

func TestCycleOrderRDLU(t *testing.T) {
	res, err := CycleOrder(RDLU)
	if err != nil {
		t.Fatalf("CycleOrder: %v", err)
	}
	if !res.Solved {
		t.Fatal("RDLU should return to solved")
	}
	if res.Repetitions != 105 {
		t.Errorf("Repetitions = %d, want 105", res.Repetitions)
	}
	if res.Moves != 420 {
		t.Errorf("Moves = %d, want 420", res.Moves)
	}
}

func TestCycleOrderKnownSequences(t *testing.T) {
	tests := []struct {
		seq  Sequence
		want int
	}{
		{Sequence{UPlus}, 4},
		{Sequence{B2}, 2},
		{Sequence{UPlus, DMinus}, 4},
		{Commutator, 6},
		{Sequence{RPlus, UPlus}, 63},
		{Sequence{RPlus, BPlus}, 105},
	}

	for _, tt := range tests {
		t.Run(tt.seq.String(), func(t *testing.T) {
			res, err := CycleOrder(tt.seq)
			if err != nil {
				t.Fatalf("CycleOrder: %v", err)
			}
			if res.Repetitions != tt.want {
				t.Errorf("Repetitions = %d, want %d", res.Repetitions, tt.want)
			}
		})
	}
}

func TestCycleOrderCap(t *testing.T) {
	res, err := CycleOrder(RDLU, WithMoveCap(100))
	if !errors.Is(err, ErrCapExceeded) {
		t.Fatalf("err = %v, want ErrCapExceeded", err)
	}
	if res.Solved {
		t.Error("Result should not be solved")
	}
	// The cap is checked after whole repetitions: 26*4 = 104 > 100.
	if res.Repetitions != 26 || res.Moves != 104 {
		t.Errorf("stopped at %d reps / %d moves, want 26 / 104", res.Repetitions, res.Moves)
	}
}

func TestCycleOrderEmpty(t *testing.T) {
	_, err := CycleOrder(nil)
	if !errors.Is(err, ErrEmptySequence) {
		t.Errorf("err = %v, want ErrEmptySequence", err)
	}
}

func TestCycleOrderProgress(t *testing.T) {
	var calls, lastMoves int
	res, err := CycleOrder(Commutator, WithProgress(func(reps, moves int) {
		calls++
		lastMoves = moves
		if moves != reps*len(Commutator) {
			t.Errorf("progress moves %d != reps %d * %d", moves, reps, len(Commutator))
		}
	}))
	if err != nil {
		t.Fatalf("CycleOrder: %v", err)
	}
	if calls != res.Repetitions {
		t.Errorf("progress called %d times, want %d", calls, res.Repetitions)
	}
	if lastMoves != res.Moves {
		t.Errorf("last progress moves %d, want %d", lastMoves, res.Moves)
	}
}

func TestCycleOrderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	res, err := CycleOrder(RDLU, WithContext(ctx), WithProgress(func(reps, moves int) {
		if reps == 10 {
			cancel()
		}
	}))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if res.Repetitions != 10 {
		t.Errorf("Repetitions = %d, want 10", res.Repetitions)
	}
}

func TestTrackerCountsAndCallback(t *testing.T) {
	tr := NewTracker()
	if !tr.IsSolved() {
		t.Error("New tracker should start solved")
	}

	var solvedAt []int
	tr.SetSolvedCallback(func(moves int) {
		solvedAt = append(solvedAt, moves)
	})

	tr.ApplyMoves([]Move{RPlus, RMinus, UPlus, U2, UPlus})

	if tr.MoveCount() != 5 {
		t.Errorf("MoveCount = %d, want 5", tr.MoveCount())
	}
	if len(solvedAt) != 2 || solvedAt[0] != 2 || solvedAt[1] != 5 {
		t.Errorf("solved callbacks at %v, want [2 5]", solvedAt)
	}

	tr.ApplyMove(BPlus)
	if tr.IsSolved() {
		t.Error("Tracker should not be solved after move")
	}
	st := tr.State()
	if st.EdgeFlip() != 0 {
		t.Error("Tracked state should keep even flip")
	}

	tr.Reset()
	if !tr.IsSolved() || tr.MoveCount() != 0 {
		t.Error("Tracker should be solved with zero moves after reset")
	}
}
