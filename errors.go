package cubie

import "errors"

// Sentinel errors for the cubie package.
var (
	// Invariant errors, returned by Validate
	ErrNotPermutation   = errors.New("cubie: position array is not a permutation")
	ErrOrientationRange = errors.New("cubie: orientation out of range")
	ErrCornerTwist      = errors.New("cubie: corner twist sum not divisible by 3")
	ErrEdgeFlip         = errors.New("cubie: edge flip sum not even")
	ErrParity           = errors.New("cubie: corner and edge permutation parity differ")

	// Cycle harness errors
	ErrEmptySequence = errors.New("cubie: empty move sequence")
	ErrCapExceeded   = errors.New("cubie: move cap exceeded before returning to solved")
)
