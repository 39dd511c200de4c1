package engine

import (
	"strings"
	"testing"
)

// testBoard is a minimal Snapshot built straight from a FEN placement, so
// the evaluator can be tested without the position package.
type testBoard struct {
	pieces  [7]Bitboard
	colors  [2]Bitboard
	mailbox [64]struct {
		pt PieceType
		c  Color
	}
	psqt int
}

func (b *testBoard) Pieces(pt PieceType) Bitboard { return b.pieces[pt] }
func (b *testBoard) Occupancy(c Color) Bitboard  { return b.colors[c] }
func (b *testBoard) Empty() Bitboard             { return ^(b.colors[White] | b.colors[Black]) }
func (b *testBoard) PSQT() int                   { return b.psqt }

func (b *testBoard) PieceAt(sq Square) (PieceType, Color) {
	return b.mailbox[sq].pt, b.mailbox[sq].c
}

func (b *testBoard) put(sq Square, pt PieceType, c Color) {
	b.pieces[pt] |= SquareBB(sq)
	b.colors[c] |= SquareBB(sq)
	b.mailbox[sq].pt = pt
	b.mailbox[sq].c = c
}

func (b *testBoard) recomputePSQT() {
	b.psqt = 0
	for sq := Square(0); sq < 64; sq++ {
		pt, c := b.PieceAt(sq)
		if pt == NoPiece || pt == King {
			continue
		}
		if c == White {
			b.psqt += PieceSquareValue(pt, c, sq)
		} else {
			b.psqt -= PieceSquareValue(pt, c, sq)
		}
	}
}

// mirrored swaps colors and flips every square vertically.
func (b *testBoard) mirrored() *testBoard {
	m := &testBoard{}
	for sq := Square(0); sq < 64; sq++ {
		if pt, c := b.PieceAt(sq); pt != NoPiece {
			m.put(sq.Flip(), pt, c.Other())
		}
	}
	m.recomputePSQT()
	return m
}

var fenPieces = map[rune]PieceType{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// newTestBoard reads the placement field of fen; the other fields are ignored.
func newTestBoard(t testing.TB, fen string) *testBoard {
	t.Helper()
	b := &testBoard{}
	placement := strings.Fields(fen)[0]
	rank, file := 7, 0
	for _, ch := range placement {
		switch {
		case ch == '/':
			rank, file = rank-1, 0
		case ch >= '1' && ch <= '8':
			file += int(ch - '0')
		default:
			pt, ok := fenPieces[ch|0x20]
			if !ok {
				t.Fatalf("bad piece %q in %q", ch, fen)
			}
			c := Black
			if ch < 'a' {
				c = White
			}
			b.put(Square(rank*8+file), pt, c)
			file++
		}
	}
	b.recomputePSQT()
	return b
}

func square(coord string) Square {
	if len(coord) != 2 {
		panic("invalid coordinate")
	}
	file := int(coord[0] - 'a')
	rank := int(coord[1] - '1')
	return Square(rank*8 + file)
}

func squares(coords ...string) (bb Bitboard) {
	for _, c := range coords {
		bb |= SquareBB(square(c))
	}
	return bb
}

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var testFENs = []string{
	startFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"6k1/4q1p1/4n3/8/2B5/8/8/6K1 w - - 0 1",
	"8/8/4k3/3pP3/8/8/8/6K1 w - d6 0 1",
	"2kr3r/ppp2ppp/2n5/8/1b1P4/2N2B2/PPP2PPP/R3K2R b KQ - 3 12",
	"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
}
