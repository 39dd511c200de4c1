package engine

// pawnAttacks returns the squares attacked by pawns of color c, split by
// capture direction. The file a pawn would wrap from is cleared first.
func pawnAttacks(pawns Bitboard, c Color) (west, east Bitboard) {
	if c == White {
		return (pawns &^ FileA) << 7, (pawns &^ FileH) << 9
	}
	return (pawns &^ FileA) >> 9, (pawns &^ FileH) >> 7
}

func allPawnAttacks(pawns Bitboard, c Color) Bitboard {
	west, east := pawnAttacks(pawns, c)
	return west | east
}

// evaluatePawns scores one side's pawn structure from that side's view.
func (e *Evaluator) evaluatePawns(b Snapshot, pawns, enemyPawns Bitboard, side Color, phase float64) (score int) {
	// Supported: each defending diagonal counts on its own.
	west, east := pawnAttacks(pawns, side)
	score += ((pawns & west).Count() + (pawns & east).Count()) * SupportedPawnBonus

	// Phalanx: a side-by-side pair is seen from both pawns.
	left := (pawns &^ FileA) >> 1
	right := (pawns &^ FileH) << 1
	score += ((pawns & left).Count() + (pawns & right).Count()) * PhalanxPawnBonus

	empty := b.Empty()
	for x := pawns; x != 0; x &= x - 1 {
		sq := x.Lsb()
		rank := e.passedRank(sq, enemyPawns, side)
		if rank == 0 {
			continue
		}
		bonus := Tapered(PassedPawnBonusMG[rank], PassedPawnBonusEG[rank], phase)
		if !empty.Has(pawnPush(sq, side)) {
			bonus = int(float64(bonus) * PassedBlockReduction)
		}
		score += bonus
	}
	return score
}

// passedRank returns the pawn's rank counted from its own side (1..6) when
// no enemy pawn can stop it, and 0 otherwise.
func (e *Evaluator) passedRank(sq Square, enemyPawns Bitboard, side Color) int {
	if e.masks.PassedPawn[sq][side]&enemyPawns != 0 {
		return 0
	}
	if side == White {
		return sq.Rank()
	}
	return 7 - sq.Rank()
}

func pawnPush(sq Square, side Color) Square {
	if side == White {
		return sq + 8
	}
	return sq - 8
}
