package cubie

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestRandomStatesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	s := New()
	for i := 0; i < 500; i++ {
		m := Generators[rng.IntN(len(Generators))]
		s.Apply(m)
		if err := s.Validate(); err != nil {
			t.Fatalf("after %d moves (last %v): %v", i+1, m, err)
		}
	}
}

func TestEveryMoveKeepsInvariants(t *testing.T) {
	all := []Move{
		UPlus, UMinus, U2, DPlus, DMinus, D2, RPlus, RMinus, R2,
		LPlus, LMinus, L2, BPlus, BMinus, B2,
	}
	for _, m := range all {
		s := New()
		s.Apply(m)
		if err := s.Validate(); err != nil {
			t.Errorf("%v: %v", m, err)
		}
		if s.CornerTwist() != 0 {
			t.Errorf("%v: twist sum %d", m, s.CornerTwist())
		}
		if s.EdgeFlip() != 0 {
			t.Errorf("%v: flip sum %d", m, s.EdgeFlip())
		}
	}
}

func TestQuarterTurnIsOddOnBothSets(t *testing.T) {
	for _, m := range Generators {
		s := New()
		s.Apply(m)
		if s.CornerParity() != 1 || s.EdgeParity() != 1 {
			t.Errorf("%v: corner parity %d, edge parity %d, want 1 and 1",
				m, s.CornerParity(), s.EdgeParity())
		}
	}
}

func TestValidateRejectsBadStates(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*State)
		want   error
	}{
		{
			name:   "duplicate corner",
			modify: func(s *State) { s.CornerPosition[1] = 0 },
			want:   ErrNotPermutation,
		},
		{
			name:   "edge out of range",
			modify: func(s *State) { s.EdgePosition[11] = 12 },
			want:   ErrNotPermutation,
		},
		{
			name:   "corner twist too large",
			modify: func(s *State) { s.CornerOrientation[0] = 3 },
			want:   ErrOrientationRange,
		},
		{
			name:   "edge flip too large",
			modify: func(s *State) { s.EdgeOrientation[4] = 2 },
			want:   ErrOrientationRange,
		},
		{
			name:   "single twisted corner",
			modify: func(s *State) { s.CornerOrientation[5] = 1 },
			want:   ErrCornerTwist,
		},
		{
			name:   "single flipped edge",
			modify: func(s *State) { s.EdgeOrientation[7] = 1 },
			want:   ErrEdgeFlip,
		},
		{
			name: "swapped corners only",
			modify: func(s *State) {
				s.CornerPosition[0], s.CornerPosition[1] = s.CornerPosition[1], s.CornerPosition[0]
			},
			want: ErrParity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			tt.modify(s)
			err := s.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestHandBuiltStateIsNotSolved(t *testing.T) {
	s := New()
	s.CornerOrientation[2] = 1
	if s.IsSolved() {
		t.Error("A twisted corner should not count as solved")
	}
}
