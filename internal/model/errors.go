package model

import "errors"

// Move rejections. None of them changes the board.
var (
	ErrNoPiece          = errors.New("no piece at square")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrSameSquare       = errors.New("target is the piece's own square")
	ErrIllegalMove      = errors.New("illegal move")
	ErrInvalidPromotion = errors.New("invalid promotion piece")
	ErrGameOver         = errors.New("game is over")
	ErrNothingToUndo    = errors.New("nothing to undo")
)

// Setup errors returned by NewCustomBoard.
var (
	ErrInvalidPlacement = errors.New("invalid placement")
	ErrSquareOccupied   = errors.New("square already occupied")
	ErrTooManyPieces    = errors.New("too many pieces for one side")
	ErrKingCount        = errors.New("each side needs exactly one king")
	ErrPawnOnBackRank   = errors.New("pawn on first or last rank")
	ErrOpponentInCheck  = errors.New("side not to move is in check")
)
