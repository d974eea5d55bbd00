package model

import (
	"fmt"
	"slices"
)

const (
	maxPiecesPerSide = 16
	maxPieces        = 2 * maxPiecesPerSide
	noPiece          = -1
)

// Board is the authoritative state of one game: pieces, whose turn it is and the move history.
//
// Pieces live in a fixed arena and every square holds an arena slot or noPiece, so legality
// checks can make and unmake moves in place. A Board is not safe for concurrent use; see Game.
type Board struct {
	pieces  [maxPieces]Piece
	count   int
	squares [64]int
	live    [2][]int
	kings   [2]int
	turn    Color
	history MoveHistory

	// hasMoves caches whether the side to move has at least one legal move.
	hasMoves bool

	setup     []Placement
	setupTurn Color
}

// NewBoard returns the standard initial position with White to move.
func NewBoard() *Board {
	b, err := newBoardFrom(White, standardPlacements())
	if err != nil {
		panic(fmt.Sprintf("model: initial position rejected: %v", err))
	}
	return b
}

// NewCustomBoard builds a board from arbitrary placements. Every placed piece starts with a
// move count of zero, so castling is available wherever king and rook stand on their home squares.
func NewCustomBoard(turn Color, placements ...Placement) (*Board, error) {
	if turn != White && turn != Black {
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidPlacement, turn)
	}
	return newBoardFrom(turn, placements)
}

func newBoardFrom(turn Color, placements []Placement) (*Board, error) {
	b := &Board{
		turn:      turn,
		history:   newMoveHistory(),
		kings:     [2]int{noPiece, noPiece},
		setup:     slices.Clone(placements),
		setupTurn: turn,
	}
	for i := range b.squares {
		b.squares[i] = noPiece
	}
	for _, pl := range placements {
		if err := b.place(pl); err != nil {
			return nil, err
		}
	}
	for _, c := range [...]Color{White, Black} {
		if b.kings[c.index()] == noPiece {
			return nil, fmt.Errorf("%w: %s has none", ErrKingCount, c)
		}
	}
	if b.inCheck(turn.Opponent()) {
		return nil, ErrOpponentInCheck
	}
	b.hasMoves = b.hasLegalMove(turn)
	return b, nil
}

func (b *Board) place(pl Placement) error {
	if !pl.Type.valid() || (pl.Color != White && pl.Color != Black) || !pl.Position.Valid() {
		return fmt.Errorf("%w: %s %q at %s", ErrInvalidPlacement, pl.Color, pl.Type, pl.Position)
	}
	if b.squares[pl.Position.index()] != noPiece {
		return fmt.Errorf("square %s: %w", pl.Position, ErrSquareOccupied)
	}
	if pl.Type == Pawn && (pl.Position.Rank == 0 || pl.Position.Rank == 7) {
		return fmt.Errorf("square %s: %w", pl.Position, ErrPawnOnBackRank)
	}
	side := pl.Color.index()
	if len(b.live[side]) == maxPiecesPerSide {
		return fmt.Errorf("%s: %w", pl.Color, ErrTooManyPieces)
	}
	if pl.Type == King && b.kings[side] != noPiece {
		return fmt.Errorf("%w: %s has more than one", ErrKingCount, pl.Color)
	}

	slot := b.count
	b.count++
	b.pieces[slot] = Piece{Type: pl.Type, Color: pl.Color, Position: pl.Position, ref: slot + 1}
	b.squares[pl.Position.index()] = slot
	b.live[side] = append(b.live[side], slot)
	if pl.Type == King {
		b.kings[side] = slot
	}
	return nil
}

// removeLive drops slot from its side's live list and returns the index it held there.
func (b *Board) removeLive(slot int) int {
	side := b.pieces[slot].Color.index()
	i := slices.Index(b.live[side], slot)
	if i < 0 {
		panic(fmt.Sprintf("model: %s missing from live pieces", b.pieces[slot]))
	}
	b.live[side] = slices.Delete(b.live[side], i, i+1)
	return i
}

func (b *Board) restoreLive(slot, at int) {
	side := b.pieces[slot].Color.index()
	b.live[side] = slices.Insert(b.live[side], at, slot)
}

// resolve maps a Piece value back to its arena slot, or noPiece when the value is zero,
// captured, or no longer describes what stands on its square.
func (b *Board) resolve(p Piece) int {
	if p.ref < 1 || p.ref > b.count {
		return noPiece
	}
	slot := p.ref - 1
	cur := b.pieces[slot]
	if !cur.Equal(p) || b.squares[cur.Position.index()] != slot {
		return noPiece
	}
	return slot
}

func (b *Board) empty(p Position) bool {
	return b.squares[p.index()] == noPiece
}

// PieceAt returns the piece on pos. It panics when pos is off the board.
func (b *Board) PieceAt(pos Position) (Piece, bool) {
	pos.mustBeValid()
	slot := b.squares[pos.index()]
	if slot == noPiece {
		return Piece{}, false
	}
	return b.pieces[slot], true
}

// IsEmpty reports whether pos holds no piece. It panics when pos is off the board.
func (b *Board) IsEmpty(pos Position) bool {
	pos.mustBeValid()
	return b.empty(pos)
}

// ColorAt returns the color of the piece on pos, or None for an empty square.
func (b *Board) ColorAt(pos Position) Color {
	pos.mustBeValid()
	slot := b.squares[pos.index()]
	if slot == noPiece {
		return None
	}
	return b.pieces[slot].Color
}

func (b *Board) Turn() Color {
	return b.turn
}

// Pieces returns the live pieces of c in placement order.
func (b *Board) Pieces(c Color) []Piece {
	out := make([]Piece, 0, len(b.live[c.index()]))
	for _, slot := range b.live[c.index()] {
		out = append(out, b.pieces[slot])
	}
	return out
}

func (b *Board) King(c Color) Piece {
	return b.pieces[b.kings[c.index()]]
}

// MoveCount returns how many times p has moved, or zero for a piece not on this board.
func (b *Board) MoveCount(p Piece) int {
	slot := b.resolve(p)
	if slot == noPiece {
		return 0
	}
	return b.history.count(slot)
}

// LastMoved returns the piece that made the most recent move.
func (b *Board) LastMoved() (Piece, bool) {
	if b.history.lastMoved == noPiece {
		return Piece{}, false
	}
	return b.pieces[b.history.lastMoved], true
}

// Plies returns the accepted moves in order.
func (b *Board) Plies() []Ply {
	return slices.Clone(b.history.plies)
}

// IsInCheck reports whether the king of c is attacked.
func (b *Board) IsInCheck(c Color) bool {
	return b.inCheck(c)
}

func (b *Board) IsCheckmate() bool {
	return !b.hasMoves && b.inCheck(b.turn)
}

func (b *Board) IsStalemate() bool {
	return !b.hasMoves && !b.inCheck(b.turn)
}

// IsOver reports whether the side to move has no legal move left.
func (b *Board) IsOver() bool {
	return !b.hasMoves
}

// MovePiece plays p to target, promoting to a queen when a pawn reaches the last rank.
// It reports false and leaves the board untouched when the move is not legal.
func (b *Board) MovePiece(p Piece, target Position) bool {
	_, err := b.TryMove(p, target, Queen)
	return err == nil
}

// TryMove plays p to target and returns the resulting ply, or the reason it was rejected.
// promotion chooses the piece a pawn becomes on the last rank; empty means queen.
// A target off the board panics.
func (b *Board) TryMove(p Piece, target Position, promotion PieceType) (Ply, error) {
	target.mustBeValid()
	slot := b.resolve(p)
	if slot == noPiece {
		return Ply{}, ErrNoPiece
	}
	if !b.hasMoves {
		return Ply{}, ErrGameOver
	}
	if p.Color != b.turn {
		return Ply{}, ErrNotYourTurn
	}
	if target == p.Position {
		return Ply{}, ErrSameSquare
	}
	if promotion == "" {
		promotion = Queen
	}
	if !promotion.promotable() {
		return Ply{}, fmt.Errorf("%w: %q", ErrInvalidPromotion, promotion)
	}
	var scratch [32]Position
	if !slices.Contains(b.legalTargets(slot, scratch[:0]), target) {
		return Ply{}, fmt.Errorf("%w: %s to %s", ErrIllegalMove, p, target)
	}
	return b.apply(slot, target, promotion), nil
}

// apply commits a move already known to be legal.
func (b *Board) apply(slot int, to Position, promotion PieceType) Ply {
	before := b.pieces[slot]
	u := b.makeMove(slot, to, promotion)
	b.history.record(slot, u.from)

	ply := Ply{Piece: before, From: u.from, To: to}
	if u.captured != noPiece {
		captured := b.pieces[u.captured]
		ply.CapturedPiece = &captured
		ply.EnPassant = u.capturedAt != to
	}
	if u.rook != noPiece {
		ply.CastleRookMove = &CastleRookMove{From: u.rookFrom, To: u.rookTo}
	}
	if u.promoted {
		ply.Promotion = promotion
	}

	b.turn = b.turn.Opponent()
	ply.Check = b.inCheck(b.turn)
	b.history.plies = append(b.history.plies, ply)
	b.hasMoves = b.hasLegalMove(b.turn)
	return ply
}

// Undo takes back the last accepted move by rebuilding the board from its starting
// placements and replaying every earlier move. It reports false at the starting position.
func (b *Board) Undo() bool {
	n := len(b.history.plies)
	if n == 0 {
		return false
	}
	replayed, err := newBoardFrom(b.setupTurn, b.setup)
	if err != nil {
		panic(fmt.Sprintf("model: starting placements no longer valid: %v", err))
	}
	for _, ply := range b.history.plies[:n-1] {
		slot := replayed.squares[ply.From.index()]
		promotion := ply.Promotion
		if promotion == "" {
			promotion = Queen
		}
		replayed.apply(slot, ply.To, promotion)
	}
	*b = *replayed
	return true
}
