package model

import "fmt"

// undo holds everything makeMove changed so unmakeMove can restore the board exactly.
type undo struct {
	slot       int
	from, to   Position
	captured   int
	capturedAt Position
	liveIndex  int
	rook       int
	rookFrom   Position
	rookTo     Position
	promoted   bool
}

// makeMove relocates the piece in slot to `to`, performing any capture, en passant removal,
// castling rook move or promotion the move implies. It does not touch the turn or history.
func (b *Board) makeMove(slot int, to Position, promotion PieceType) undo {
	p := &b.pieces[slot]
	from := p.Position
	u := undo{slot: slot, from: from, to: to, captured: noPiece, rook: noPiece}

	capturedAt := to
	if p.Type == Pawn && to.File != from.File && b.empty(to) {
		capturedAt = Position{Rank: from.Rank, File: to.File}
	}
	if victim := b.squares[capturedAt.index()]; victim != noPiece {
		u.captured = victim
		u.capturedAt = capturedAt
		u.liveIndex = b.removeLive(victim)
		b.squares[capturedAt.index()] = noPiece
	}

	if p.Type == King && abs(to.File-from.File) == 2 {
		side := castleSides[0]
		if to.File < from.File {
			side = castleSides[1]
		}
		u.rookFrom = Position{Rank: from.Rank, File: side.rookFile}
		u.rookTo = Position{Rank: from.Rank, File: side.rookTo}
		u.rook = b.squares[u.rookFrom.index()]
		b.squares[u.rookFrom.index()] = noPiece
		b.squares[u.rookTo.index()] = u.rook
		b.pieces[u.rook].Position = u.rookTo
	}

	b.squares[from.index()] = noPiece
	b.squares[to.index()] = slot
	p.Position = to
	if p.Type == Pawn && to.Rank == p.Color.promotionRank() {
		p.Type = promotion
		u.promoted = true
	}
	return u
}

func (b *Board) unmakeMove(u undo) {
	p := &b.pieces[u.slot]
	if u.promoted {
		p.Type = Pawn
	}
	p.Position = u.from
	b.squares[u.to.index()] = noPiece
	b.squares[u.from.index()] = u.slot

	if u.rook != noPiece {
		b.squares[u.rookTo.index()] = noPiece
		b.squares[u.rookFrom.index()] = u.rook
		b.pieces[u.rook].Position = u.rookFrom
	}
	if u.captured != noPiece {
		b.squares[u.capturedAt.index()] = u.captured
		b.restoreLive(u.captured, u.liveIndex)
	}
}

func (b *Board) inCheck(c Color) bool {
	k := b.kings[c.index()]
	if k == noPiece || b.squares[b.pieces[k].Position.index()] != k {
		panic(fmt.Sprintf("model: %s king missing from the board", c))
	}
	return b.attacked(b.pieces[k].Position, c.Opponent())
}

// attacked reports whether any live piece of color by attacks target.
func (b *Board) attacked(target Position, by Color) bool {
	for _, slot := range b.live[by.index()] {
		if b.attacks(slot, target) {
			return true
		}
	}
	return false
}

// exposesKing makes the move, tests the mover's king and unmakes it.
func (b *Board) exposesKing(slot int, to Position) bool {
	c := b.pieces[slot].Color
	u := b.makeMove(slot, to, Queen)
	exposed := b.inCheck(c)
	b.unmakeMove(u)
	return exposed
}

// legalTargets appends to dst the destinations of the piece in slot that leave its king safe.
// Squares holding a king are never destinations.
func (b *Board) legalTargets(slot int, dst []Position) []Position {
	var scratch [32]Position
	for _, target := range b.paths(slot, scratch[:0]) {
		if occupant := b.squares[target.index()]; occupant != noPiece && b.pieces[occupant].Type == King {
			continue
		}
		if !b.exposesKing(slot, target) {
			dst = append(dst, target)
		}
	}
	return dst
}

// LegalMoves returns the squares p can legally move to. The result depends only on the
// current position, not on whose turn it is; it is empty for a piece not on this board.
func (b *Board) LegalMoves(p Piece) PositionSet {
	slot := b.resolve(p)
	if slot == noPiece {
		return PositionSet{}
	}
	var scratch [32]Position
	return newPositionSet(b.legalTargets(slot, scratch[:0]))
}

func (b *Board) hasLegalMove(c Color) bool {
	var scratch [32]Position
	for _, slot := range b.live[c.index()] {
		if len(b.legalTargets(slot, scratch[:0])) > 0 {
			return true
		}
	}
	return false
}
