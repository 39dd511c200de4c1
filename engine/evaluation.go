package engine

import "fmt"

// Evaluator scores positions. It holds no per-call state, so one value may
// be used from several goroutines at once as long as each call gets its
// own Snapshot.
type Evaluator struct {
	masks   *Masks
	attacks SliderAttacks
}

func NewEvaluator(masks *Masks, attacks SliderAttacks) *Evaluator {
	return &Evaluator{masks: masks, attacks: attacks}
}

// Evaluate scores b with the default tables and dragontoothmg slider attacks.
func Evaluate(b Snapshot, side Color) int {
	return defaultEvaluator.Evaluate(b, side)
}

// =============================================================================
// MAIN EVALUATION
// =============================================================================

// Evaluate returns the static score of b, positive when side stands better.
// The score is built from White's point of view and flipped for Black.
func (e *Evaluator) Evaluate(b Snapshot, side Color) int {
	phase := GamePhase(b)
	white := b.Occupancy(White)
	black := b.Occupancy(Black)

	// Material
	score := 0
	for pt := Pawn; pt < King; pt++ {
		value := Tapered(PieceValueMG[pt], PieceValueEG[pt], phase)
		pieces := b.Pieces(pt)
		score += (pieces&white).Count()*value - (pieces&black).Count()*value
	}

	// Flat piece-square total, kept up to date by the board
	score += b.PSQT()

	// King placement
	kings := b.Pieces(King)
	wKingSq := kingSquare(kings&white, White)
	bKingSq := kingSquare(kings&black, Black)
	score += kingSquareValue(White, wKingSq, phase) - kingSquareValue(Black, bKingSq, phase)

	// Pawn structure
	pawns := b.Pieces(Pawn)
	wPawns := pawns & white
	bPawns := pawns & black
	score += e.evaluatePawns(b, wPawns, bPawns, White, phase)
	score -= e.evaluatePawns(b, bPawns, wPawns, Black, phase)

	// Mobility area: not attacked by enemy pawns and not blocked by our own pieces
	wSafe := ^allPawnAttacks(bPawns, Black) &^ white
	bSafe := ^allPawnAttacks(wPawns, White) &^ black

	wKingRing := e.masks.KingRing[wKingSq]
	bKingRing := e.masks.KingRing[bKingSq]

	knights := b.Pieces(Knight)
	bishops := b.Pieces(Bishop)
	rooks := b.Pieces(Rook)
	queens := b.Pieces(Queen)

	score += e.evaluateKnights(knights&white, wSafe, bKingRing)
	score += e.evaluateBishops(b, bishops&white, wSafe, bKingRing, White)
	score += e.evaluateRooks(b, rooks&white, wSafe, bKingRing, White)
	score += e.evaluateQueens(b, queens&white, wSafe, bKingRing, White)

	score -= e.evaluateKnights(knights&black, bSafe, wKingRing)
	score -= e.evaluateBishops(b, bishops&black, bSafe, wKingRing, Black)
	score -= e.evaluateRooks(b, rooks&black, bSafe, wKingRing, Black)
	score -= e.evaluateQueens(b, queens&black, bSafe, wKingRing, Black)

	if side == Black {
		return -score
	}
	return score
}

// kingSquare locates the single king in kings. A side without a king is a
// corrupt board, not a position to score.
func kingSquare(kings Bitboard, c Color) Square {
	if kings.Count() != 1 {
		panic(fmt.Sprintf("engine: %v has %d kings", c, kings.Count()))
	}
	return kings.Lsb()
}
