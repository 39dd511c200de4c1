package engine

// Masks holds the geometry lookup tables the evaluator depends on.
// A Masks value is filled once by NewMasks and is read-only afterwards,
// so one instance can be shared by any number of goroutines.
type Masks struct {
	Files         [8]Bitboard
	Ranks         [8]Bitboard
	NeighborFiles [8]Bitboard

	// PawnAdvance[rank][color] is every pawn rank strictly ahead of rank
	// in color's direction of travel.
	PawnAdvance [8][2]Bitboard

	// PassedPawn[sq][color] is the forward cone an enemy pawn must be
	// absent from for a pawn on sq to be passed.
	PassedPawn [64][2]Bitboard

	KingRing      [64]Bitboard
	KnightAttacks [64]Bitboard
}

// NewMasks computes every table. Order matters: the passed pawn cones are
// built from the rank, file and neighbor-file tables.
func NewMasks() *Masks {
	m := &Masks{}
	m.initFilesAndRanks()
	m.initNeighborFiles()
	m.initPawnAdvance()
	m.initPassedPawns()
	m.initKingRings()
	m.initKnightAttacks()
	return m
}

func (m *Masks) initFilesAndRanks() {
	for i := 0; i < 8; i++ {
		m.Files[i] = FileA << uint(i)
		m.Ranks[i] = Bitboard(0xFF) << uint(8*i)
	}
}

// Out-of-range neighbors clip to the edge file itself, so the a-file
// mask never picks up the h-file and vice versa.
func (m *Masks) initNeighborFiles() {
	for f := 0; f < 8; f++ {
		m.NeighborFiles[f] = m.Files[f] | m.Files[Max(0, f-1)] | m.Files[Min(7, f+1)]
	}
}

// Pawns only ever stand on ranks 2-7 (indices 1..6), so the advance
// masks stop there.
func (m *Masks) initPawnAdvance() {
	for r := 0; r < 8; r++ {
		var w, b Bitboard
		for j := 6; j > r; j-- {
			w |= m.Ranks[j]
		}
		for j := 1; j < r; j++ {
			b |= m.Ranks[j]
		}
		m.PawnAdvance[r][White] = w
		m.PawnAdvance[r][Black] = b
	}
}

func (m *Masks) initPassedPawns() {
	for sq := Square(0); sq < 64; sq++ {
		neighbors := m.NeighborFiles[sq.File()]
		m.PassedPawn[sq][White] = m.PawnAdvance[sq.Rank()][White] & neighbors
		m.PassedPawn[sq][Black] = m.PawnAdvance[sq.Rank()][Black] & neighbors
	}
}

func (m *Masks) initKingRings() {
	for sq := Square(0); sq < 64; sq++ {
		m.KingRing[sq] = kingRing(SquareBB(sq))
	}
}

func (m *Masks) initKnightAttacks() {
	for sq := Square(0); sq < 64; sq++ {
		k := SquareBB(sq)
		m.KnightAttacks[sq] = ((k &^ FileH) << 17) | ((k &^ FileA) << 15) |
			((k &^ FileGH) << 10) | ((k &^ FileAB) << 6) |
			((k &^ FileA) >> 17) | ((k &^ FileH) >> 15) |
			((k &^ FileAB) >> 10) | ((k &^ FileGH) >> 6)
	}
}

// kingRing returns the up to eight squares around k. Vertical shifts fall
// off the board on their own; sideways and diagonal shifts clear the file
// they would wrap from before shifting.
func kingRing(k Bitboard) Bitboard {
	cardinals := (k << 8) | (k >> 8) | ((k &^ FileH) << 1) | ((k &^ FileA) >> 1)
	diagonals := ((k &^ FileH) << 9) | ((k &^ FileA) << 7) |
		((k &^ FileH) >> 7) | ((k &^ FileA) >> 9)
	return cardinals | diagonals
}
