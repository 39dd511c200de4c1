package engine

// kingPressure scores how hard one piece's attack set hits the enemy king
// ring: a per-square bonus plus a one-off bonus for being an attacker at all.
func kingPressure(attacks, enemyKingRing Bitboard, pt PieceType) int {
	hits := (attacks & enemyKingRing).Count()
	return hits*KingAttackBonus + boolToInt(hits > 0)*KingAttackerBonus[pt]
}

func (e *Evaluator) evaluateKnights(pieces, safeSquares, enemyKingRing Bitboard) (score int) {
	for x := pieces; x != 0; x &= x - 1 {
		attacks := e.masks.KnightAttacks[x.Lsb()]
		score += KnightMobility[(attacks & safeSquares).Count()]
		score += kingPressure(attacks, enemyKingRing, Knight)
	}
	return score
}

func (e *Evaluator) evaluateBishops(b Snapshot, pieces, safeSquares, enemyKingRing Bitboard, side Color) (score int) {
	for x := pieces; x != 0; x &= x - 1 {
		attacks := e.attacks.BishopAttacks(b, side, x.Lsb())
		score += BishopMobility[(attacks & safeSquares).Count()]
		score += kingPressure(attacks, enemyKingRing, Bishop)
	}
	if pieces.Count() >= 2 {
		score += BishopPairBonus
	}
	return score
}

func (e *Evaluator) evaluateRooks(b Snapshot, pieces, safeSquares, enemyKingRing Bitboard, side Color) (score int) {
	for x := pieces; x != 0; x &= x - 1 {
		sq := x.Lsb()
		attacks := e.attacks.RookAttacks(b, side, sq)
		score += RookMobility[(attacks & safeSquares).Count()]
		score += kingPressure(attacks, enemyKingRing, Rook)
		score += RookFileBonus[e.fileOpenness(b, sq.File(), side)]
	}
	return score
}

func (e *Evaluator) evaluateQueens(b Snapshot, pieces, safeSquares, enemyKingRing Bitboard, side Color) (score int) {
	for x := pieces; x != 0; x &= x - 1 {
		attacks := e.attacks.QueenAttacks(b, side, x.Lsb())
		score += QueenMobility[(attacks & safeSquares).Count()]
		score += kingPressure(attacks, enemyKingRing, Queen)
	}
	return score
}

// fileOpenness is 2 for an open file, 1 for a file holding pawns of one
// color only, and 0 when both colors have a pawn on it.
func (e *Evaluator) fileOpenness(b Snapshot, file int, side Color) int {
	filePawns := e.masks.Files[file] & b.Pieces(Pawn)
	own := filePawns & b.Occupancy(side)
	enemy := filePawns & b.Occupancy(side.Other())
	return boolToInt(own == 0) + boolToInt(enemy == 0)
}
