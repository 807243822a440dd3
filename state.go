package cubie

import "fmt"

const (
	// NumCorners is the number of corner slots.
	NumCorners = 8
	// NumEdges is the number of edge slots.
	NumEdges = 12
)

// State represents a 3x3 cube at cubie level.
//
// Position arrays map slot -> piece: CornerPosition[s] is the corner piece
// currently sitting in slot s. Orientation arrays hold the twist (mod 3) or
// flip (mod 2) of the piece in each slot.
//
// Corner slots 0-3 are the top layer, 4-7 the bottom layer. Edge slots 0-3
// are the top layer, 4-7 the bottom layer and 8-11 the middle layer.
type State struct {
	CornerPosition    [NumCorners]uint8
	CornerOrientation [NumCorners]uint8
	EdgePosition      [NumEdges]uint8
	EdgeOrientation   [NumEdges]uint8
}

// Solved returns the solved state value.
func Solved() State {
	return State{
		CornerPosition: [NumCorners]uint8{0, 1, 2, 3, 4, 5, 6, 7},
		EdgePosition:   [NumEdges]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	}
}

// New creates a solved cube.
func New() *State {
	s := Solved()
	return &s
}

// Clone creates an independent copy of the state.
func (s *State) Clone() *State {
	clone := *s
	return &clone
}

// Reset returns the state to solved.
func (s *State) Reset() {
	*s = Solved()
}

// IsSolved returns true if the cube is in the solved state.
func (s *State) IsSolved() bool {
	return *s == Solved()
}

// Equal reports whether two states are structurally identical.
func (s *State) Equal(o *State) bool {
	return *s == *o
}

// Debug returns a simple debug string.
func (s *State) Debug() string {
	return fmt.Sprintf("Solved: %v Twist: %d Flip: %d", s.IsSolved(), s.CornerTwist(), s.EdgeFlip())
}

// Slot sets touched by each generator, listed in cycle order.
var (
	uCorners = [4]int{0, 1, 2, 3}
	uEdges   = [4]int{0, 1, 2, 3}

	dCorners = [4]int{4, 5, 6, 7}
	dEdges   = [4]int{4, 5, 6, 7}

	rCorners = [4]int{1, 2, 6, 5}
	rEdges   = [4]int{1, 9, 5, 8}

	lCorners = [4]int{0, 3, 7, 4}
	lEdges   = [4]int{3, 11, 7, 10}

	bCorners = [4]int{2, 3, 7, 6}
	bEdges   = [4]int{2, 10, 6, 9}
)

// Corner twist added per slot after the cycle. Alternate corners twist in
// opposite senses; each pattern sums to 0 mod 3.
var (
	rTwist = [4]uint8{1, 2, 1, 2}
	lTwist = [4]uint8{2, 1, 2, 1}
	bTwist = [4]uint8{1, 2, 1, 2}
)

// UPlus turns the top layer a quarter turn.
func (s *State) UPlus() {
	s.turnCorners(uCorners)
	s.turnEdges(uEdges)
}

// UMinus undoes UPlus.
func (s *State) UMinus() {
	s.UPlus()
	s.UPlus()
	s.UPlus()
}

// DPlus turns the bottom layer a quarter turn.
func (s *State) DPlus() {
	s.turnCorners(dCorners)
	s.turnEdges(dEdges)
}

// DMinus undoes DPlus.
func (s *State) DMinus() {
	s.DPlus()
	s.DPlus()
	s.DPlus()
}

// RPlus turns the right layer a quarter turn, twisting its corners.
func (s *State) RPlus() {
	s.turnCorners(rCorners)
	twist(&s.CornerOrientation, rCorners, rTwist)
	s.turnEdges(rEdges)
}

// RMinus undoes RPlus.
func (s *State) RMinus() {
	s.RPlus()
	s.RPlus()
	s.RPlus()
}

// LPlus turns the left layer a quarter turn, twisting its corners.
func (s *State) LPlus() {
	s.turnCorners(lCorners)
	twist(&s.CornerOrientation, lCorners, lTwist)
	s.turnEdges(lEdges)
}

// LMinus undoes LPlus.
func (s *State) LMinus() {
	s.LPlus()
	s.LPlus()
	s.LPlus()
}

// BPlus turns the back layer a quarter turn. It is the only generator
// that flips edges.
func (s *State) BPlus() {
	s.turnCorners(bCorners)
	twist(&s.CornerOrientation, bCorners, bTwist)
	s.turnEdges(bEdges)
	flip(&s.EdgeOrientation, bEdges)
}

// BMinus undoes BPlus.
func (s *State) BMinus() {
	s.BPlus()
	s.BPlus()
	s.BPlus()
}

// turnCorners moves corner pieces and their orientation around a cycle.
func (s *State) turnCorners(slots [4]int) {
	cycle4(s.CornerPosition[:], slots)
	cycle4(s.CornerOrientation[:], slots)
}

// turnEdges moves edge pieces and their orientation around a cycle.
func (s *State) turnEdges(slots [4]int) {
	cycle4(s.EdgePosition[:], slots)
	cycle4(s.EdgeOrientation[:], slots)
}

// cycle4 moves the value at slots[0] to slots[1], slots[1] to slots[2],
// slots[2] to slots[3] and slots[3] back to slots[0].
func cycle4[T any](arr []T, slots [4]int) {
	a, b, c, d := slots[0], slots[1], slots[2], slots[3]
	temp := arr[a]
	arr[a] = arr[d]
	arr[d] = arr[c]
	arr[c] = arr[b]
	arr[b] = temp
}

// twist adds a per-slot delta to corner orientation, mod 3.
func twist(ori *[NumCorners]uint8, slots [4]int, deltas [4]uint8) {
	for i, slot := range slots {
		ori[slot] = (ori[slot] + deltas[i]) % 3
	}
}

// flip toggles edge orientation at each slot.
func flip(ori *[NumEdges]uint8, slots [4]int) {
	for _, slot := range slots {
		ori[slot] ^= 1
	}
}
