package model

// MoveHistory counts moves per piece and remembers the most recently moved one.
// Counts are indexed by arena slot, so a piece keeps its count through promotion.
type MoveHistory struct {
	counts    [maxPieces]int
	lastMoved int
	lastFrom  Position
	plies     []Ply
}

// historyMark is what record overwrites; rewind puts it back.
type historyMark struct {
	lastMoved int
	lastFrom  Position
}

func newMoveHistory() MoveHistory {
	return MoveHistory{lastMoved: noPiece}
}

func (h *MoveHistory) record(slot int, from Position) historyMark {
	mark := historyMark{lastMoved: h.lastMoved, lastFrom: h.lastFrom}
	h.counts[slot]++
	h.lastMoved = slot
	h.lastFrom = from
	return mark
}

// rewind reverses record. Only perft's make/unmake walk uses it; accepted moves are never rewound.
func (h *MoveHistory) rewind(slot int, mark historyMark) {
	h.counts[slot]--
	h.lastMoved = mark.lastMoved
	h.lastFrom = mark.lastFrom
}

func (h *MoveHistory) count(slot int) int {
	return h.counts[slot]
}
