package model

// MoveRequest is a move as submitted by a client. An empty Promotion means queen.
type MoveRequest struct {
	From      Position  `json:"from"`
	To        Position  `json:"to"`
	Promotion PieceType `json:"promotion"`
}

type CastleRookMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// Ply is the record of one accepted move.
type Ply struct {
	Piece          Piece           `json:"piece"` // as it stood before the move
	From           Position        `json:"from"`
	To             Position        `json:"to"`
	CapturedPiece  *Piece          `json:"capturedPiece"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
	Promotion      PieceType       `json:"promotion"`
	EnPassant      bool            `json:"enPassant"`
	Check          bool            `json:"check"`
}

type SimpleMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}
