package engine

import (
	"fmt"
	"math/bits"
)

// Bitboard is a set of squares, one bit per square.
// Bit index = rank*8 + file (little-endian rank-file mapping):
//
//	56  57  58  59  60  61  62  63
//	...
//	8   9   10  11  12  13  14  15
//	0   1   2   3   4   5   6   7
type Bitboard uint64

// Edge masks. Any shift that moves a square sideways must clear the
// edge it would otherwise wrap from.
const (
	FileA  Bitboard = 0x0101010101010101
	FileB  Bitboard = 0x0202020202020202
	FileG  Bitboard = 0x4040404040404040
	FileH  Bitboard = 0x8080808080808080
	FileAB          = FileA | FileB
	FileGH          = FileG | FileH
)

func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

func (b Bitboard) Has(sq Square) bool { return b&SquareBB(sq) != 0 }

// Lsb returns the lowest set square. Undefined for an empty set.
func (b Bitboard) Lsb() Square { return Square(bits.TrailingZeros64(uint64(b))) }

// SquareBB returns the single-square bitboard for sq.
func SquareBB(sq Square) Bitboard { return Bitboard(1) << uint(sq) }

// Square is a board index 0..63 (a1 = 0, h8 = 63).
type Square int

func (sq Square) Rank() int { return int(sq) >> 3 }
func (sq Square) File() int { return int(sq) & 7 }

// Flip mirrors the square vertically (a1 <-> a8).
func (sq Square) Flip() Square { return sq ^ 56 }

func (sq Square) String() string {
	if sq < 0 || sq > 63 {
		return fmt.Sprintf("Square(%d)", int(sq))
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// Color is one of the two players. Empty squares are not a color; see Snapshot.Empty.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType values match dragontoothmg's Piece constants.
// Every type below King has a finite material value.
type PieceType uint8

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceNames = [7]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (pt PieceType) String() string {
	if int(pt) < len(pieceNames) {
		return pieceNames[pt]
	}
	return fmt.Sprintf("PieceType(%d)", uint8(pt))
}

// Snapshot is the read-only view of a position the evaluator consumes.
// The evaluator never mutates it and never keeps it past a call.
type Snapshot interface {
	// Pieces returns the squares holding pt, both colors combined.
	Pieces(pt PieceType) Bitboard
	// Occupancy returns the squares holding a piece of color c.
	Occupancy(c Color) Bitboard
	// Empty returns the unoccupied squares.
	Empty() Bitboard
	// PieceAt is the mailbox lookup; empty squares report NoPiece.
	PieceAt(sq Square) (PieceType, Color)
	// PSQT is the running flat piece-square total, White minus Black,
	// maintained by the board as moves are made and unmade.
	PSQT() int
}

// SliderAttacks generates attack sets for sliding pieces. The result
// includes the first blocker in every direction, whatever its color.
type SliderAttacks interface {
	BishopAttacks(b Snapshot, side Color, sq Square) Bitboard
	RookAttacks(b Snapshot, side Color, sq Square) Bitboard
	QueenAttacks(b Snapshot, side Color, sq Square) Bitboard
}
