package engine

import "github.com/dylhunn/dragontoothmg"

// MagicAttacks generates slider attacks with dragontoothmg's magic
// bitboard tables. Attack sets do not depend on the mover's color; the
// evaluator removes its own pieces through the safe-square mask.
type MagicAttacks struct{}

func occupiedExcept(b Snapshot, sq Square) uint64 {
	return uint64(^b.Empty() &^ SquareBB(sq))
}

func (MagicAttacks) BishopAttacks(b Snapshot, _ Color, sq Square) Bitboard {
	return Bitboard(dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), occupiedExcept(b, sq)))
}

func (MagicAttacks) RookAttacks(b Snapshot, _ Color, sq Square) Bitboard {
	return Bitboard(dragontoothmg.CalculateRookMoveBitboard(uint8(sq), occupiedExcept(b, sq)))
}

func (MagicAttacks) QueenAttacks(b Snapshot, _ Color, sq Square) Bitboard {
	occupied := occupiedExcept(b, sq)
	return Bitboard(dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), occupied) |
		dragontoothmg.CalculateRookMoveBitboard(uint8(sq), occupied))
}
