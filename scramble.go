package cubie

// Source supplies uniform random integers in [0, n).
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Randomize applies depth generators chosen uniformly from Generators and
// returns them in the order applied.
func (s *State) Randomize(depth int, src Source) Sequence {
	if depth <= 0 {
		return nil
	}

	applied := make(Sequence, 0, depth)
	for i := 0; i < depth; i++ {
		m := Generators[src.IntN(len(Generators))]
		s.applyMove(m)
		applied = append(applied, m)
	}
	return applied
}
