package model

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (t PieceType) valid() bool {
	switch t {
	case King, Queen, Rook, Bishop, Knight, Pawn:
		return true
	}
	return false
}

// promotable reports whether a pawn may be promoted to t.
func (t PieceType) promotable() bool {
	switch t {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

// Piece is a snapshot of a piece on a Board. The zero Piece refers to no piece.
type Piece struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	Position Position  `json:"position"`

	// ref is the arena slot plus one on the board that handed out this value.
	ref int
}

// Exists reports whether p was obtained from a board rather than being the zero Piece.
func (p Piece) Exists() bool {
	return p.ref != 0
}

// Equal reports whether p and o are the same kind of piece of the same color on the same square.
func (p Piece) Equal(o Piece) bool {
	return p.Type == o.Type && p.Color == o.Color && p.Position == o.Position
}

func (p Piece) String() string {
	return p.Color.String() + " " + string(p.Type) + " " + p.Position.String()
}

// Placement puts one piece on a square when building a custom board.
type Placement struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	Position Position  `json:"position"`
}

func standardPlacements() []Placement {
	backRow := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	placements := make([]Placement, 0, 2*maxPiecesPerSide)
	for _, c := range [...]Color{White, Black} {
		for file, t := range backRow {
			placements = append(placements, Placement{Type: t, Color: c, Position: Position{Rank: c.backRank(), File: file}})
		}
		for file := 0; file < 8; file++ {
			placements = append(placements, Placement{Type: Pawn, Color: c, Position: Position{Rank: c.pawnHomeRank(), File: file}})
		}
	}
	return placements
}
