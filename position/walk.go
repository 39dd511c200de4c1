package position

// Walk visits every node of the legal move tree rooted at p, down to depth
// plies, and returns the number of leaves (the perft count). visit sees each
// node once, the root included, and must not keep it. p is restored before
// Walk returns.
func (p *Position) Walk(depth int, visit func(*Position)) (leaves uint64) {
	if visit != nil {
		visit(p)
	}
	if depth == 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 && visit == nil {
		return uint64(len(moves))
	}
	for _, m := range moves {
		undo := p.ApplyMove(m)
		leaves += p.Walk(depth-1, visit)
		undo()
	}
	return leaves
}

// Clone returns an independent copy of p.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}
