package cubie

import (
	"math/rand/v2"
	"sync"
	"testing"
)

func TestMoveString(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{UPlus, "U+"},
		{DMinus, "D-"},
		{R2, "R2"},
		{LMinus, "L-"},
		{BPlus, "B+"},
	}
	for _, tt := range tests {
		if got := tt.move.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}

	if got := RDLU.String(); got != "R+ D+ L+ U+" {
		t.Errorf("RDLU.String() = %q", got)
	}
	if got := (Sequence{}).String(); got != "" {
		t.Errorf("empty sequence String() = %q", got)
	}
}

func TestMoveInverse(t *testing.T) {
	if UPlus.Inverse() != UMinus {
		t.Error("U+ inverse should be U-")
	}
	if BMinus.Inverse() != BPlus {
		t.Error("B- inverse should be B+")
	}
	if R2.Inverse() != R2 {
		t.Error("R2 should be its own inverse")
	}

	inv := Commutator.Inverse()
	if got := inv.String(); got != "U+ R+ U- R-" {
		t.Errorf("Commutator inverse = %q", got)
	}
}

func TestUnknownFaceIsIgnored(t *testing.T) {
	s := New()
	s.Apply(Move{Face: 'F', Turn: CW})
	if !s.IsSolved() {
		t.Error("A face without a generator should not change the state")
	}
	if Face('F').String() != "?" {
		t.Error("F should not be a known face")
	}
}

func TestSharedConcurrentApply(t *testing.T) {
	sh := NewShared()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				// Each batch is the identity, so any snapshot taken between
				// batches must be solved.
				sh.Apply(RPlus, BPlus, BMinus, RMinus)
				snap := sh.Snapshot()
				if !snap.IsSolved() {
					t.Errorf("snapshot saw a partial batch: %s", snap.Debug())
					return
				}
			}
		}()
	}
	wg.Wait()

	if !sh.IsSolved() {
		t.Error("Shared cube should be solved after identity batches")
	}

	applied := sh.Randomize(30, rand.New(rand.NewPCG(5, 6)))
	sh.Apply(applied.Inverse()...)
	if !sh.IsSolved() {
		t.Error("Shared cube should be solved after undoing its scramble")
	}
}
