// Package cubie models a 3x3 Rubik's cube at cubie level: the position and
// orientation of its 8 corners and 12 edges.
//
// # Features
//
//   - Solved-state construction and check
//   - Quarter-turn generators for the U, D, R, L and B faces, with inverses
//     and half turns
//   - Invariant validation (permutations, twist and flip sums, parity)
//   - Seeded random scrambles
//   - Cycle-order harness for repeated sequences
//
// # Quick Start
//
//	s := cubie.New()
//
//	// Apply generators directly
//	s.RPlus()
//	s.RMinus()
//
//	// Or as move values
//	s.Apply(cubie.RPlus, cubie.DPlus, cubie.LPlus, cubie.UPlus)
//
//	fmt.Println("Solved:", s.IsSolved())
//
// # Generators
//
// Only five faces have generators. There is no front-face turn:
//
//	cubie.UPlus, cubie.UMinus, cubie.U2
//	cubie.DPlus, cubie.DMinus, cubie.D2
//	cubie.RPlus, cubie.RMinus, cubie.R2
//	cubie.LPlus, cubie.LMinus, cubie.L2
//	cubie.BPlus, cubie.BMinus, cubie.B2
//
// R and L twist corners, B twists corners and flips edges, U and D only
// permute.
//
// # Cycle Order
//
//	res, err := cubie.CycleOrder(cubie.RDLU)
//	// res.Repetitions == 105
package cubie
