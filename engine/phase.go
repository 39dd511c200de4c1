package engine

// GamePhase estimates how much non-royal material is left: 1 with the full
// starting material (or more, after promotions), 0 with bare kings.
func GamePhase(b Snapshot) float64 {
	material := 0
	for sq := Square(0); sq < 64; sq++ {
		if pt, _ := b.PieceAt(sq); pt != NoPiece && pt < King {
			material += PieceValueMG[pt]
		}
	}
	return Min(1.0, float64(material)/float64(MaterialSum))
}

// Tapered blends a midgame and an endgame value by phase.
func Tapered(mg, eg int, phase float64) int {
	return int(float64(eg) + float64(mg-eg)*phase)
}
