package cubie

import "strings"

// Face identifies a layer that has a generator.
// There is no front face generator.
type Face byte

const (
	FaceU Face = 'U' // Up
	FaceD Face = 'D' // Down
	FaceR Face = 'R' // Right
	FaceL Face = 'L' // Left
	FaceB Face = 'B' // Back
)

// Faces lists every face with a generator.
var Faces = []Face{FaceU, FaceD, FaceR, FaceL, FaceB}

func (f Face) String() string {
	switch f {
	case FaceU, FaceD, FaceR, FaceL, FaceB:
		return string(rune(f))
	default:
		return "?"
	}
}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Quarter turn, the "plus" generator
	CCW    Turn = -1 // Inverse quarter turn, the "minus" generator
	Double Turn = 2  // Half turn
)

// Move is a single face turn.
type Move struct {
	Face Face
	Turn Turn
}

// String returns the operator name: U+, U-, U2.
func (m Move) String() string {
	suffix := ""
	switch m.Turn {
	case CW:
		suffix = "+"
	case CCW:
		suffix = "-"
	case Double:
		suffix = "2"
	}
	return m.Face.String() + suffix
}

// Inverse returns the move that undoes m.
// U+ becomes U-, U- becomes U+, U2 stays U2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// QuarterTurns returns how many generator applications the move costs.
func (m Move) QuarterTurns() int {
	switch m.Turn {
	case CW:
		return 1
	case Double:
		return 2
	case CCW:
		return 3
	default:
		return 0
	}
}

// Apply applies moves in order.
func (s *State) Apply(moves ...Move) {
	for _, m := range moves {
		s.applyMove(m)
	}
}

func (s *State) applyMove(m Move) {
	var plus func()
	switch m.Face {
	case FaceU:
		plus = s.UPlus
	case FaceD:
		plus = s.DPlus
	case FaceR:
		plus = s.RPlus
	case FaceL:
		plus = s.LPlus
	case FaceB:
		plus = s.BPlus
	default:
		return
	}
	for i := m.QuarterTurns(); i > 0; i-- {
		plus()
	}
}

// Sequence is an ordered list of moves.
type Sequence []Move

// Inverse returns the sequence that undoes seq.
func (seq Sequence) Inverse() Sequence {
	inv := make(Sequence, len(seq))
	for i, m := range seq {
		inv[len(seq)-1-i] = m.Inverse()
	}
	return inv
}

// String returns the move names separated by spaces.
func (seq Sequence) String() string {
	if len(seq) == 0 {
		return ""
	}

	parts := make([]string, len(seq))
	for i, m := range seq {
		parts[i] = m.String()
	}

	return strings.Join(parts, " ")
}
