package model

var (
	promotionChoices = []PieceType{Queen, Rook, Bishop, Knight}
	noPromotion      = []PieceType{Queen}
)

// Perft counts the leaf nodes of the legal move tree depth plies deep. Each promotion
// piece counts as a separate move. The board is restored before Perft returns.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	return b.perft(depth)
}

// PerftDivide returns Perft(depth-1) below every root move, keyed by from-to square names
// with a promotion suffix, e.g. "e2e4" or "b7b8n".
func PerftDivide(b *Board, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	b.eachMove(func(slot int, to Position, promotion PieceType, promotes bool) {
		key := b.pieces[slot].Position.String() + to.String()
		if promotes {
			key += promotionSuffix(promotion)
		}
		out[key] = b.perftMove(slot, to, promotion, depth)
	})
	return out
}

func (b *Board) perft(depth int) uint64 {
	var nodes uint64
	b.eachMove(func(slot int, to Position, promotion PieceType, _ bool) {
		nodes += b.perftMove(slot, to, promotion, depth)
	})
	return nodes
}

// eachMove calls fn for every legal move of the side to move, once per promotion piece.
func (b *Board) eachMove(fn func(slot int, to Position, promotion PieceType, promotes bool)) {
	side := b.live[b.turn.index()]
	slots := make([]int, len(side))
	copy(slots, side)
	for _, slot := range slots {
		var scratch [32]Position
		for _, to := range b.legalTargets(slot, scratch[:0]) {
			p := &b.pieces[slot]
			promotes := p.Type == Pawn && to.Rank == p.Color.promotionRank()
			choices := noPromotion
			if promotes {
				choices = promotionChoices
			}
			for _, promotion := range choices {
				fn(slot, to, promotion, promotes)
			}
		}
	}
}

func (b *Board) perftMove(slot int, to Position, promotion PieceType, depth int) uint64 {
	if depth == 1 {
		return 1
	}
	u := b.makeMove(slot, to, promotion)
	mark := b.history.record(slot, u.from)
	b.turn = b.turn.Opponent()

	nodes := b.perft(depth - 1)

	b.turn = b.turn.Opponent()
	b.history.rewind(slot, mark)
	b.unmakeMove(u)
	return nodes
}

func promotionSuffix(t PieceType) string {
	switch t {
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	}
	return ""
}
