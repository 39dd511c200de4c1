package engine

import "fmt"

// Piece base values (midgame/endgame), indexed by PieceType.
var PieceValueMG = [7]int{
	NoPiece: 0, Pawn: 88, Knight: 316, Bishop: 331, Rook: 494, Queen: 993, King: 0,
}
var PieceValueEG = [7]int{
	NoPiece: 0, Pawn: 111, Knight: 305, Bishop: 333, Rook: 535, Queen: 963, King: 0,
}

// MaterialSum is the midgame material of the starting position, both sides.
var MaterialSum = 16*PieceValueMG[Pawn] + 4*PieceValueMG[Knight] + 4*PieceValueMG[Bishop] +
	4*PieceValueMG[Rook] + 2*PieceValueMG[Queen]

// Flat piece-square tables from White's point of view, a1 first.
// Black reads them through Square.Flip. The king is tapered and lives
// in KingPSQT_MG / KingPSQT_EG instead.
var PSQT = [7][64]int{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	Rook: {
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
}

var KingPSQT_MG = [64]int{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}
var KingPSQT_EG = [64]int{
	-50, -30, -30, -30, -30, -30, -30, -50,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-50, -40, -30, -20, -20, -30, -40, -50,
}

// Mobility tables, indexed by the number of safe squares attacked.
var (
	KnightMobility = [9]int{-25, -12, -4, 1, 6, 10, 14, 17, 20}
	BishopMobility = [14]int{-25, -15, -6, 0, 5, 10, 14, 18, 21, 24, 26, 28, 30, 32}
	RookMobility   = [15]int{-20, -12, -6, -2, 1, 4, 7, 10, 13, 16, 18, 20, 22, 24, 26}
	QueenMobility  = [28]int{
		-15, -10, -6, -3, -1, 1, 3, 5, 7, 9,
		11, 13, 14, 15, 16, 17, 18, 19, 20, 21,
		22, 23, 24, 25, 26, 27, 28, 29,
	}
)

var (
	// Per attacked king-ring square.
	KingAttackBonus = 8
	// Flat bonus once a piece hits the enemy king ring at all.
	KingAttackerBonus = [7]int{Knight: 12, Bishop: 10, Rook: 16, Queen: 24}

	BishopPairBonus = 30

	// Indexed by (no own pawn on file) + (no enemy pawn on file).
	RookFileBonus = [3]int{0, 12, 25}

	SupportedPawnBonus = 8
	PhalanxPawnBonus   = 5

	// Indexed by relative rank; entry 0 is "not passed".
	PassedPawnBonusMG = [7]int{0, 5, 8, 14, 26, 46, 75}
	PassedPawnBonusEG = [7]int{0, 10, 16, 28, 50, 85, 130}

	PassedBlockReduction = 0.5
)

// PieceSquareValue returns the flat table entry for a piece of color c on sq,
// from c's own point of view. The king has no flat entry. An unknown piece
// type means the board handed us a corrupt mailbox.
func PieceSquareValue(pt PieceType, c Color, sq Square) int {
	if c == Black {
		sq = sq.Flip()
	}
	switch pt {
	case Pawn, Knight, Bishop, Rook, Queen:
		return PSQT[pt][sq]
	default:
		panic(fmt.Sprintf("engine: no flat piece-square entry for %v", pt))
	}
}

// kingSquareValue is the tapered king table entry for color c.
func kingSquareValue(c Color, sq Square, phase float64) int {
	if c == Black {
		sq = sq.Flip()
	}
	return Tapered(KingPSQT_MG[sq], KingPSQT_EG[sq], phase)
}

// Params is a snapshot of the tuned constants, for export and calibration.
type Params struct {
	PieceValueMG         [7]int     `json:"piece_value_mg"`
	PieceValueEG         [7]int     `json:"piece_value_eg"`
	MaterialSum          int        `json:"material_sum"`
	PSQT                 [7][64]int `json:"psqt"`
	KingPSQTMG           [64]int    `json:"king_psqt_mg"`
	KingPSQTEG           [64]int    `json:"king_psqt_eg"`
	KnightMobility       []int      `json:"knight_mobility"`
	BishopMobility       []int      `json:"bishop_mobility"`
	RookMobility         []int      `json:"rook_mobility"`
	QueenMobility        []int      `json:"queen_mobility"`
	KingAttackBonus      int        `json:"king_attack_bonus"`
	KingAttackerBonus    [7]int     `json:"king_attacker_bonus"`
	BishopPairBonus      int        `json:"bishop_pair_bonus"`
	RookFileBonus        [3]int     `json:"rook_file_bonus"`
	SupportedPawnBonus   int        `json:"supported_pawn_bonus"`
	PhalanxPawnBonus     int        `json:"phalanx_pawn_bonus"`
	PassedPawnBonusMG    [7]int     `json:"passed_pawn_bonus_mg"`
	PassedPawnBonusEG    [7]int     `json:"passed_pawn_bonus_eg"`
	PassedBlockReduction float64    `json:"passed_block_reduction"`
}

// Parameters copies the current constants.
func Parameters() Params {
	return Params{
		PieceValueMG:         PieceValueMG,
		PieceValueEG:         PieceValueEG,
		MaterialSum:          MaterialSum,
		PSQT:                 PSQT,
		KingPSQTMG:           KingPSQT_MG,
		KingPSQTEG:           KingPSQT_EG,
		KnightMobility:       append([]int(nil), KnightMobility[:]...),
		BishopMobility:       append([]int(nil), BishopMobility[:]...),
		RookMobility:         append([]int(nil), RookMobility[:]...),
		QueenMobility:        append([]int(nil), QueenMobility[:]...),
		KingAttackBonus:      KingAttackBonus,
		KingAttackerBonus:    KingAttackerBonus,
		BishopPairBonus:      BishopPairBonus,
		RookFileBonus:        RookFileBonus,
		SupportedPawnBonus:   SupportedPawnBonus,
		PhalanxPawnBonus:     PhalanxPawnBonus,
		PassedPawnBonusMG:    PassedPawnBonusMG,
		PassedPawnBonusEG:    PassedPawnBonusEG,
		PassedBlockReduction: PassedBlockReduction,
	}
}
