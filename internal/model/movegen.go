package model

var (
	rookDirs   = [...]Position{{Rank: 1, File: 0}, {Rank: -1, File: 0}, {Rank: 0, File: 1}, {Rank: 0, File: -1}}
	bishopDirs = [...]Position{{Rank: 1, File: 1}, {Rank: 1, File: -1}, {Rank: -1, File: 1}, {Rank: -1, File: -1}}
	kingDirs   = [...]Position{
		{Rank: 1, File: 0}, {Rank: -1, File: 0}, {Rank: 0, File: 1}, {Rank: 0, File: -1},
		{Rank: 1, File: 1}, {Rank: 1, File: -1}, {Rank: -1, File: 1}, {Rank: -1, File: -1},
	}
	knightDirs = [...]Position{
		{Rank: 2, File: 1}, {Rank: 2, File: -1}, {Rank: -2, File: 1}, {Rank: -2, File: -1},
		{Rank: 1, File: 2}, {Rank: 1, File: -2}, {Rank: -1, File: 2}, {Rank: -1, File: -2},
	}
)

type castleSide struct {
	rookFile   int
	kingTo     int
	rookTo     int
	betweenLow int // first file strictly between king and rook
	betweenTop int // last file strictly between king and rook
}

var castleSides = [...]castleSide{
	{rookFile: 7, kingTo: 6, rookTo: 5, betweenLow: 5, betweenTop: 6},
	{rookFile: 0, kingTo: 2, rookTo: 3, betweenLow: 1, betweenTop: 3},
}

const kingHomeFile = 4

// Paths returns the squares p could move to ignoring whether the move would leave its own
// king in check. It is empty for a piece not on this board.
func (b *Board) Paths(p Piece) PositionSet {
	slot := b.resolve(p)
	if slot == noPiece {
		return PositionSet{}
	}
	var scratch [32]Position
	return newPositionSet(b.paths(slot, scratch[:0]))
}

// paths appends the pseudo-legal destinations of the piece in slot to dst.
func (b *Board) paths(slot int, dst []Position) []Position {
	p := &b.pieces[slot]
	switch p.Type {
	case Pawn:
		return b.pawnPaths(slot, dst)
	case Knight:
		return b.stepPaths(p, knightDirs[:], dst)
	case Bishop:
		return b.slidePaths(p, bishopDirs[:], dst)
	case Rook:
		return b.slidePaths(p, rookDirs[:], dst)
	case Queen:
		return b.slidePaths(p, kingDirs[:], dst)
	case King:
		dst = b.stepPaths(p, kingDirs[:], dst)
		return b.castlePaths(slot, dst)
	}
	panic("model: unknown piece type " + string(p.Type))
}

func (b *Board) stepPaths(p *Piece, dirs []Position, dst []Position) []Position {
	for _, dir := range dirs {
		target := p.Position.add(dir)
		if target.Valid() && b.colorOn(target) != p.Color {
			dst = append(dst, target)
		}
	}
	return dst
}

func (b *Board) slidePaths(p *Piece, dirs []Position, dst []Position) []Position {
	for _, dir := range dirs {
		for target := p.Position.add(dir); target.Valid(); target = target.add(dir) {
			occupant := b.colorOn(target)
			if occupant != p.Color {
				dst = append(dst, target)
			}
			if occupant != None {
				break
			}
		}
	}
	return dst
}

func (b *Board) pawnPaths(slot int, dst []Position) []Position {
	p := &b.pieces[slot]
	dir := p.Color.pawnDirection()

	one := Position{Rank: p.Position.Rank + dir, File: p.Position.File}
	if one.Valid() && b.empty(one) {
		dst = append(dst, one)
		two := Position{Rank: one.Rank + dir, File: one.File}
		if p.Position.Rank == p.Color.pawnHomeRank() && b.empty(two) {
			dst = append(dst, two)
		}
	}

	for _, df := range [...]int{-1, 1} {
		target := Position{Rank: p.Position.Rank + dir, File: p.Position.File + df}
		if !target.Valid() {
			continue
		}
		if occupant := b.colorOn(target); occupant != None {
			if occupant != p.Color {
				dst = append(dst, target)
			}
		} else if b.enPassantVictim(slot, target) != noPiece {
			dst = append(dst, target)
		}
	}
	return dst
}

// enPassantVictim returns the pawn the pawn in slot would capture by moving diagonally to the
// empty square target, or noPiece. The victim must stand beside the mover, be the last piece
// moved, and have just made its two-square first move.
func (b *Board) enPassantVictim(slot int, target Position) int {
	p := &b.pieces[slot]
	beside := Position{Rank: p.Position.Rank, File: target.File}
	v := b.squares[beside.index()]
	if v == noPiece || v != b.history.lastMoved {
		return noPiece
	}
	victim := &b.pieces[v]
	if victim.Type != Pawn || victim.Color == p.Color {
		return noPiece
	}
	if b.history.count(v) != 1 ||
		victim.Position.Rank != victim.Color.doubleAdvanceRank() ||
		b.history.lastFrom.Rank != victim.Color.pawnHomeRank() {
		return noPiece
	}
	return v
}

func (b *Board) castlePaths(slot int, dst []Position) []Position {
	k := &b.pieces[slot]
	home := Position{Rank: k.Color.backRank(), File: kingHomeFile}
	if b.history.count(slot) != 0 || k.Position != home || b.inCheck(k.Color) {
		return dst
	}
	for _, side := range castleSides {
		r := b.squares[Position{Rank: home.Rank, File: side.rookFile}.index()]
		if r == noPiece {
			continue
		}
		rook := &b.pieces[r]
		if rook.Type != Rook || rook.Color != k.Color || b.history.count(r) != 0 {
			continue
		}
		clear := true
		for f := side.betweenLow; f <= side.betweenTop; f++ {
			if !b.empty(Position{Rank: home.Rank, File: f}) {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		// The king may not pass through or land on an attacked square.
		pass := Position{Rank: home.Rank, File: side.rookTo}
		to := Position{Rank: home.Rank, File: side.kingTo}
		if b.exposesKing(slot, pass) || b.exposesKing(slot, to) {
			continue
		}
		dst = append(dst, to)
	}
	return dst
}

// colorOn is ColorAt without the bounds check.
func (b *Board) colorOn(p Position) Color {
	slot := b.squares[p.index()]
	if slot == noPiece {
		return None
	}
	return b.pieces[slot].Color
}

// attacks reports whether the piece in slot attacks target. Pawns attack the two squares
// diagonally ahead whether or not anything stands there.
func (b *Board) attacks(slot int, target Position) bool {
	p := &b.pieces[slot]
	dr, df := target.Rank-p.Position.Rank, target.File-p.Position.File
	switch p.Type {
	case Pawn:
		return dr == p.Color.pawnDirection() && abs(df) == 1
	case Knight:
		return (abs(dr) == 1 && abs(df) == 2) || (abs(dr) == 2 && abs(df) == 1)
	case King:
		return max(abs(dr), abs(df)) == 1
	case Bishop:
		return dr != 0 && abs(dr) == abs(df) && b.rayClear(p.Position, target)
	case Rook:
		return (dr == 0) != (df == 0) && b.rayClear(p.Position, target)
	case Queen:
		return (dr != 0 && abs(dr) == abs(df) || (dr == 0) != (df == 0)) && b.rayClear(p.Position, target)
	}
	return false
}

// rayClear reports whether every square strictly between from and to on a line is empty.
func (b *Board) rayClear(from, to Position) bool {
	step := Position{Rank: sign(to.Rank - from.Rank), File: sign(to.File - from.File)}
	for sq := from.add(step); sq != to; sq = sq.add(step) {
		if !b.empty(sq) {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
