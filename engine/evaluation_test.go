package engine

import (
	"strings"
	"sync"
	"testing"
)

func TestStartPositionIsBalanced(t *testing.T) {
	b := newTestBoard(t, startFEN)
	if b.PSQT() != 0 {
		t.Fatalf("start PSQT = %d, want 0", b.PSQT())
	}
	if got := Evaluate(b, White); got != 0 {
		t.Fatalf("Evaluate(start, White) = %d, want 0", got)
	}
	if got := Evaluate(b, Black); got != 0 {
		t.Fatalf("Evaluate(start, Black) = %d, want 0", got)
	}
}

func TestSideSymmetry(t *testing.T) {
	for _, fen := range testFENs {
		b := newTestBoard(t, fen)
		w, bl := Evaluate(b, White), Evaluate(b, Black)
		if w != -bl {
			t.Errorf("%s: white %d, black %d", fen, w, bl)
		}
	}
}

func TestMirrorSymmetry(t *testing.T) {
	for _, fen := range testFENs {
		b := newTestBoard(t, fen)
		m := b.mirrored()
		if w, mb := Evaluate(b, White), Evaluate(m, Black); w != mb {
			t.Errorf("%s: white view %d, mirrored black view %d", fen, w, mb)
		}
		if bl, mw := Evaluate(b, Black), Evaluate(m, White); bl != mw {
			t.Errorf("%s: black view %d, mirrored white view %d", fen, bl, mw)
		}
	}
}

func TestExtraPawnFavorsOwner(t *testing.T) {
	b := newTestBoard(t, "4k3/ppp5/8/8/8/8/PPP4P/4K3 w - - 0 1")
	phase := GamePhase(b)
	w := Evaluate(b, White)
	if floor := int(float64(PieceValueMG[Pawn]) * phase); w < floor {
		t.Fatalf("extra pawn scored %d, want at least %d", w, floor)
	}
	if bl := Evaluate(b, Black); bl != -w {
		t.Fatalf("black view %d, want %d", bl, -w)
	}

	// The same imbalance in the middlegame.
	b = newTestBoard(t, "rnbqkbnr/1ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if phase := GamePhase(b); phase >= 1 || phase < 0.95 {
		t.Fatalf("phase a pawn short of the start = %v", phase)
	}
	if w := Evaluate(b, White); w <= 0 {
		t.Fatalf("White a pawn up scored %d", w)
	}
}

func TestMaterialDominatesQuietPosition(t *testing.T) {
	up := newTestBoard(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	if Evaluate(up, White) < PieceValueEG[Queen]/2 {
		t.Fatalf("queen up scored only %d", Evaluate(up, White))
	}
	if Evaluate(up, Black) > -PieceValueEG[Queen]/2 {
		t.Fatalf("queen down scored %d for the loser", Evaluate(up, Black))
	}
}

// Totals below are traced term by term with the default tables. Phase is
// the remaining material over MaterialSum, and Tapered truncates toward zero.
func TestEvaluateKnownTotals(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		// Rook 532, mobility 10 squares (e1 is ours) 18, open file 25.
		// The kings sit on mirrored squares and cancel.
		{"lone rook", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", 575},
		// Knight 305, pawn -109, knight square 20, black passer on d6 -15.
		// The d6 pawn covers c5, so 7 of the knight's 8 squares are safe: 17.
		{"knight beside pawn cover", "k7/8/3p4/8/4N3/8/8/7K w - - 0 1", 218},
		// Queen 966, queen square -10, 20 safe squares 22. b7 and b8 are in
		// the black king ring: 2*8 + 24.
		{"queen on enemy king ring", "k7/8/8/8/8/8/8/1Q5K w - - 0 1", 1018},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, tt.fen)
			if got := Evaluate(b, White); got != tt.want {
				t.Errorf("Evaluate(%s, White) = %d, want %d", tt.fen, got, tt.want)
			}
			if got := Evaluate(b, Black); got != -tt.want {
				t.Errorf("Evaluate(%s, Black) = %d, want %d", tt.fen, got, -tt.want)
			}
		})
	}
}

func TestMobilitySkipsPawnCoveredSquares(t *testing.T) {
	covered := newTestBoard(t, "k7/8/3p4/8/4N3/8/8/7K w - - 0 1")
	if !allPawnAttacks(covered.Pieces(Pawn), Black).Has(square("c5")) {
		t.Fatalf("d6 pawn should cover c5")
	}
	// Moving the pawn to d7 frees c5 but also changes the pawn's own terms,
	// so compare only the knight's share of the score.
	free := newTestBoard(t, "k7/3p4/8/8/4N3/8/8/7K w - - 0 1")
	knightShare := func(b *testBoard) int {
		phase := GamePhase(b)
		white, black := b.Occupancy(White), b.Occupancy(Black)
		pawns := b.Pieces(Pawn)
		rest := Tapered(PieceValueMG[Knight], PieceValueEG[Knight], phase) -
			Tapered(PieceValueMG[Pawn], PieceValueEG[Pawn], phase) + b.PSQT() +
			kingSquareValue(White, square("h1"), phase) - kingSquareValue(Black, square("a8"), phase) -
			defaultEvaluator.evaluatePawns(b, pawns&black, pawns&white, Black, phase)
		return Evaluate(b, White) - rest
	}
	if got := knightShare(covered); got != KnightMobility[7] {
		t.Errorf("knight next to covered c5 scored %d, want KnightMobility[7] = %d", got, KnightMobility[7])
	}
	if got := knightShare(free); got != KnightMobility[8] {
		t.Errorf("knight with all squares free scored %d, want KnightMobility[8] = %d", got, KnightMobility[8])
	}
}

func TestKingPressureTargetsEnemyKing(t *testing.T) {
	// The same queen, once next to the black king ring and once next to
	// its own. Only the first earns king pressure.
	near := newTestBoard(t, "k7/8/8/8/8/8/8/1Q5K w - - 0 1")
	own := newTestBoard(t, "4k3/8/8/8/8/8/8/1QK5 w - - 0 1")
	if !DefaultMasks().KingRing[square("c1")].Has(square("b1")) {
		t.Fatalf("b1 should be in the c1 king ring")
	}
	pressure := func(b *testBoard, enemyKing Square) int {
		attacks := MagicAttacks{}.QueenAttacks(b, White, square("b1"))
		return (attacks&DefaultMasks().KingRing[enemyKing]).Count()*KingAttackBonus +
			boolToInt(attacks&DefaultMasks().KingRing[enemyKing] != 0)*KingAttackerBonus[Queen]
	}
	if got := pressure(near, square("a8")); got != 2*KingAttackBonus+KingAttackerBonus[Queen] {
		t.Fatalf("queen on b1 against a8 pressure = %d", got)
	}
	if got := pressure(own, square("e8")); got != 0 {
		t.Fatalf("queen on b1 against e8 pressure = %d", got)
	}
	// With the white king on c1 the queen keeps 15 safe squares, and
	// the e8 king ring is out of its reach.
	baseScore := func(b *testBoard, wk, bk string) int {
		phase := GamePhase(b)
		return Tapered(PieceValueMG[Queen], PieceValueEG[Queen], phase) + b.PSQT() +
			kingSquareValue(White, square(wk), phase) - kingSquareValue(Black, square(bk), phase)
	}
	if got, want := Evaluate(own, White), baseScore(own, "c1", "e8")+QueenMobility[15]; got != want {
		t.Errorf("queen beside its own king scored %d, want %d", got, want)
	}
	if got, want := Evaluate(near, White), baseScore(near, "h1", "a8")+QueenMobility[20]+
		2*KingAttackBonus+KingAttackerBonus[Queen]; got != want {
		t.Errorf("queen against the black king ring scored %d, want %d", got, want)
	}
}

func TestEvaluatePanicsWithoutKing(t *testing.T) {
	b := newTestBoard(t, "8/8/8/8/8/8/8/4K3 w - - 0 1")
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic for a board without a black king")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "black has 0 kings") {
			t.Fatalf("unexpected panic %v", r)
		}
	}()
	Evaluate(b, White)
}

func TestPieceSquareValuePanicsOnKing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for a king flat lookup")
		}
	}()
	PieceSquareValue(King, White, square("e1"))
}

func TestPieceSquareValueMirrorsBlack(t *testing.T) {
	for pt := Pawn; pt < King; pt++ {
		for sq := Square(0); sq < 64; sq++ {
			if PieceSquareValue(pt, White, sq) != PieceSquareValue(pt, Black, sq.Flip()) {
				t.Fatalf("%v on %v is not mirrored for black", pt, sq)
			}
		}
	}
}

// countingAttacks records how often the evaluator asks for slider attacks.
type countingAttacks struct {
	MagicAttacks
	mu    sync.Mutex
	calls map[PieceType]int
}

func (c *countingAttacks) record(pt PieceType) {
	c.mu.Lock()
	c.calls[pt]++
	c.mu.Unlock()
}

func (c *countingAttacks) BishopAttacks(b Snapshot, side Color, sq Square) Bitboard {
	c.record(Bishop)
	return c.MagicAttacks.BishopAttacks(b, side, sq)
}

func (c *countingAttacks) RookAttacks(b Snapshot, side Color, sq Square) Bitboard {
	c.record(Rook)
	return c.MagicAttacks.RookAttacks(b, side, sq)
}

func (c *countingAttacks) QueenAttacks(b Snapshot, side Color, sq Square) Bitboard {
	c.record(Queen)
	return c.MagicAttacks.QueenAttacks(b, side, sq)
}

func TestEvaluatorUsesInjectedAttacks(t *testing.T) {
	attacks := &countingAttacks{calls: map[PieceType]int{}}
	e := NewEvaluator(NewMasks(), attacks)
	b := newTestBoard(t, testFENs[1])

	if got, want := e.Evaluate(b, White), Evaluate(b, White); got != want {
		t.Fatalf("injected evaluator scored %d, default %d", got, want)
	}
	want := map[PieceType]int{
		Bishop: b.Pieces(Bishop).Count(),
		Rook:   b.Pieces(Rook).Count(),
		Queen:  b.Pieces(Queen).Count(),
	}
	for pt, n := range want {
		if attacks.calls[pt] != n {
			t.Errorf("%v attacks requested %d times, want %d", pt, attacks.calls[pt], n)
		}
	}
}

func TestConcurrentEvaluation(t *testing.T) {
	boards := make([]*testBoard, len(testFENs))
	want := make([]int, len(testFENs))
	for i, fen := range testFENs {
		boards[i] = newTestBoard(t, fen)
		want[i] = Evaluate(boards[i], White)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 8*len(boards))
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				for i, b := range boards {
					if got := Evaluate(b, White); got != want[i] {
						errs <- testFENs[i]
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for fen := range errs {
		t.Errorf("concurrent evaluation of %s differs from sequential", fen)
	}
}
