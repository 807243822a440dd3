package cubie

// Predefined moves for convenience.
//
// Example:
//
//	s.Apply(cubie.RPlus, cubie.DPlus, cubie.LPlus, cubie.UPlus)
var (
	// Up face moves
	UPlus  = Move{Face: FaceU, Turn: CW}
	UMinus = Move{Face: FaceU, Turn: CCW}
	U2     = Move{Face: FaceU, Turn: Double}

	// Down face moves
	DPlus  = Move{Face: FaceD, Turn: CW}
	DMinus = Move{Face: FaceD, Turn: CCW}
	D2     = Move{Face: FaceD, Turn: Double}

	// Right face moves
	RPlus  = Move{Face: FaceR, Turn: CW}
	RMinus = Move{Face: FaceR, Turn: CCW}
	R2     = Move{Face: FaceR, Turn: Double}

	// Left face moves
	LPlus  = Move{Face: FaceL, Turn: CW}
	LMinus = Move{Face: FaceL, Turn: CCW}
	L2     = Move{Face: FaceL, Turn: Double}

	// Back face moves
	BPlus  = Move{Face: FaceB, Turn: CW}
	BMinus = Move{Face: FaceB, Turn: CCW}
	B2     = Move{Face: FaceB, Turn: Double}
)

// Generators lists the ten quarter-turn operators in randomizer order.
var Generators = [10]Move{
	RPlus, RMinus,
	LPlus, LMinus,
	UPlus, UMinus,
	DPlus, DMinus,
	BPlus, BMinus,
}

// RDLU is the R+ D+ L+ U+ sequence. Repeated 105 times it returns to solved.
var RDLU = Sequence{RPlus, DPlus, LPlus, UPlus}

// Commutator is R+ U+ R- U-, which has order 6.
var Commutator = Sequence{RPlus, UPlus, RMinus, UMinus}

// NamedSequences maps the sequence names accepted by the CLI.
var NamedSequences = map[string]Sequence{
	"rdlu":       RDLU,
	"commutator": Commutator,
}
