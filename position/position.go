// Package position adapts a dragontoothmg board into the read-only snapshot
// the evaluator consumes, and keeps the flat piece-square total up to date
// as moves are made and unmade.
package position

import (
	"errors"
	"fmt"

	"chess-eval/engine"

	"github.com/dylhunn/dragontoothmg"
)

const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	ErrInvalidFEN  = errors.New("invalid FEN")
	ErrIllegalMove = errors.New("illegal move")
)

type occupant struct {
	pt engine.PieceType
	c  engine.Color
}

// state is everything derived from the board, saved and restored as a unit.
type state struct {
	pieces  [7]engine.Bitboard
	colors  [2]engine.Bitboard
	mailbox [64]occupant
	psqt    int
}

// Position is a board plus the derived views engine.Snapshot asks for.
type Position struct {
	board dragontoothmg.Board
	state
}

var _ engine.Snapshot = (*Position)(nil)

// FromFEN validates fen and builds a position from it.
func FromFEN(fen string) (p *Position, err error) {
	normalized, err := normalizeFEN(fen)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, fmt.Errorf("%w: %q: %v", ErrInvalidFEN, fen, r)
		}
	}()
	p = &Position{board: dragontoothmg.ParseFen(normalized)}
	p.loadBitboards()
	p.psqt = p.Recompute()
	return p, nil
}

// Start returns the initial position.
func Start() *Position {
	p, err := FromFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Position) Pieces(pt engine.PieceType) engine.Bitboard { return p.pieces[pt] }
func (p *Position) Occupancy(c engine.Color) engine.Bitboard  { return p.colors[c] }
func (p *Position) Empty() engine.Bitboard                     { return ^(p.colors[engine.White] | p.colors[engine.Black]) }
func (p *Position) PSQT() int                                  { return p.psqt }

func (p *Position) PieceAt(sq engine.Square) (engine.PieceType, engine.Color) {
	o := p.mailbox[sq]
	return o.pt, o.c
}

func (p *Position) SideToMove() engine.Color {
	if p.board.Wtomove {
		return engine.White
	}
	return engine.Black
}

func (p *Position) FEN() string { return p.board.ToFen() }

func (p *Position) LegalMoves() []dragontoothmg.Move { return p.board.GenerateLegalMoves() }

// Apply plays a move given in long algebraic notation (e2e4, e7e8q).
// The returned function takes it back.
func (p *Position) Apply(uci string) (undo func(), err error) {
	moves := p.board.GenerateLegalMoves()
	for i := range moves {
		if moves[i].String() == uci {
			return p.ApplyMove(moves[i]), nil
		}
	}
	return nil, fmt.Errorf("%w: %s in %s", ErrIllegalMove, uci, p.FEN())
}

// ApplyMove plays a legal move produced by LegalMoves. Only the squares
// whose occupant changed are re-scored in the piece-square total.
func (p *Position) ApplyMove(m dragontoothmg.Move) (undo func()) {
	saved := p.state
	unapply := p.board.Apply(m)
	p.loadBitboards()

	changed := (p.colors[engine.White] ^ saved.colors[engine.White]) |
		(p.colors[engine.Black] ^ saved.colors[engine.Black])
	for pt := engine.Pawn; pt <= engine.King; pt++ {
		changed |= p.pieces[pt] ^ saved.pieces[pt]
	}
	for x := changed; x != 0; x &= x - 1 {
		sq := x.Lsb()
		p.psqt += squareValue(p.mailbox[sq], sq) - squareValue(saved.mailbox[sq], sq)
	}

	return func() {
		unapply()
		p.state = saved
	}
}

// Recompute sums the flat piece-square tables from scratch.
func (p *Position) Recompute() (total int) {
	for sq := engine.Square(0); sq < 64; sq++ {
		total += squareValue(p.mailbox[sq], sq)
	}
	return total
}

// squareValue is the signed (White positive) flat table entry for o on sq.
func squareValue(o occupant, sq engine.Square) int {
	if o.pt == engine.NoPiece || o.pt == engine.King {
		return 0
	}
	v := engine.PieceSquareValue(o.pt, o.c, sq)
	if o.c == engine.Black {
		return -v
	}
	return v
}

func (p *Position) loadBitboards() {
	p.pieces = [7]engine.Bitboard{}
	p.mailbox = [64]occupant{}
	p.colors[engine.White] = p.load(&p.board.White, engine.White)
	p.colors[engine.Black] = p.load(&p.board.Black, engine.Black)
}

func (p *Position) load(bb *dragontoothmg.Bitboards, c engine.Color) engine.Bitboard {
	byType := [...]struct {
		pt engine.PieceType
		bb uint64
	}{
		{engine.Pawn, bb.Pawns},
		{engine.Knight, bb.Knights},
		{engine.Bishop, bb.Bishops},
		{engine.Rook, bb.Rooks},
		{engine.Queen, bb.Queens},
		{engine.King, bb.Kings},
	}
	for _, t := range byType {
		squares := engine.Bitboard(t.bb)
		p.pieces[t.pt] |= squares
		for x := squares; x != 0; x &= x - 1 {
			p.mailbox[x.Lsb()] = occupant{t.pt, c}
		}
	}
	return engine.Bitboard(bb.All)
}

// Mirror returns the color-flipped position: ranks reversed, White and
// Black swapped, side to move swapped.
func (p *Position) Mirror() (*Position, error) {
	fen, err := MirrorFEN(p.FEN())
	if err != nil {
		return nil, err
	}
	return FromFEN(fen)
}
