package cubie

import "fmt"

// Validate checks the state against the invariants of a reachable cube.
// States produced by applying moves to a solved cube always pass; states
// assembled by hand may not.
func (s *State) Validate() error {
	if err := checkPermutation("corner", s.CornerPosition[:]); err != nil {
		return err
	}
	if err := checkPermutation("edge", s.EdgePosition[:]); err != nil {
		return err
	}

	for slot, o := range s.CornerOrientation {
		if o > 2 {
			return fmt.Errorf("corner slot %d has twist %d: %w", slot, o, ErrOrientationRange)
		}
	}
	for slot, o := range s.EdgeOrientation {
		if o > 1 {
			return fmt.Errorf("edge slot %d has flip %d: %w", slot, o, ErrOrientationRange)
		}
	}

	if twist := s.CornerTwist(); twist != 0 {
		return fmt.Errorf("twist sum is %d mod 3: %w", twist, ErrCornerTwist)
	}
	if s.EdgeFlip() != 0 {
		return ErrEdgeFlip
	}
	if s.CornerParity() != s.EdgeParity() {
		return ErrParity
	}

	return nil
}

// CornerTwist returns the sum of corner orientations mod 3.
func (s *State) CornerTwist() int {
	sum := 0
	for _, o := range s.CornerOrientation {
		sum += int(o)
	}
	return sum % 3
}

// EdgeFlip returns the sum of edge orientations mod 2.
func (s *State) EdgeFlip() int {
	sum := 0
	for _, o := range s.EdgeOrientation {
		sum += int(o)
	}
	return sum % 2
}

// CornerParity returns 0 for an even corner permutation and 1 for odd.
func (s *State) CornerParity() int {
	return parity(s.CornerPosition[:])
}

// EdgeParity returns 0 for an even edge permutation and 1 for odd.
func (s *State) EdgeParity() int {
	return parity(s.EdgePosition[:])
}

// checkPermutation reports values out of range or repeated.
func checkPermutation(kind string, perm []uint8) error {
	seen := make([]bool, len(perm))
	for slot, p := range perm {
		if int(p) >= len(perm) {
			return fmt.Errorf("%s slot %d holds piece %d: %w", kind, slot, p, ErrNotPermutation)
		}
		if seen[p] {
			return fmt.Errorf("%s piece %d appears twice: %w", kind, p, ErrNotPermutation)
		}
		seen[p] = true
	}
	return nil
}

// parity counts inversions. perm must be a valid permutation.
func parity(perm []uint8) int {
	inversions := 0
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				inversions++
			}
		}
	}
	return inversions % 2
}
