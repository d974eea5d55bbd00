package model

import (
	"errors"
	"sync"
)

// Game guards one Board with a mutex so a concurrent host can share it. Every legality
// check and every move runs with the lock held, so nothing observes a board mid-simulation.
type Game struct {
	ID    string
	mu    sync.Mutex
	board *Board
	sound string
}

type GameState struct {
	ID             string         `json:"id"`
	Sound          string         `json:"sound"`
	Board          [8][8]*Piece   `json:"board"`
	ToMove         Color          `json:"toMove"`
	MoveHistory    []Ply          `json:"moveHistory"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	IsCheck        bool           `json:"isCheck"`
	LastMove       *SimpleMove    `json:"lastMove"`
	Resolve        *string        `json:"resolve"`
}

// CapturedPieces lists the pieces each side has taken.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

func NewGame(id string) *Game {
	return NewGameFromBoard(id, NewBoard())
}

func NewGameFromBoard(id string, b *Board) *Game {
	return &Game{
		ID:    id,
		board: b,
	}
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state()
}

func (g *Game) state() GameState {
	b := g.board
	state := GameState{
		ID:          g.ID,
		Sound:       g.sound,
		ToMove:      b.Turn(),
		MoveHistory: b.Plies(),
		CapturedPieces: CapturedPieces{
			White: make([]Piece, 0),
			Black: make([]Piece, 0),
		},
		IsCheck: b.IsInCheck(b.Turn()),
	}
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if p, ok := b.PieceAt(Position{Rank: rank, File: file}); ok {
				state.Board[rank][file] = &p
			}
		}
	}
	for _, ply := range state.MoveHistory {
		if ply.CapturedPiece == nil {
			continue
		}
		switch ply.Piece.Color {
		case White:
			state.CapturedPieces.White = append(state.CapturedPieces.White, *ply.CapturedPiece)
		case Black:
			state.CapturedPieces.Black = append(state.CapturedPieces.Black, *ply.CapturedPiece)
		}
	}
	if n := len(state.MoveHistory); n > 0 {
		last := state.MoveHistory[n-1]
		state.LastMove = &SimpleMove{From: last.From, To: last.To}
	}
	switch {
	case b.IsCheckmate():
		result := "checkmate"
		state.Resolve = &result
	case b.IsStalemate():
		result := "stalemate"
		state.Resolve = &result
	}
	return state
}

// LegalMoves returns the sorted legal destinations of the piece on pos.
func (g *Game) LegalMoves(pos Position) ([]Position, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.board.PieceAt(pos)
	if !ok {
		return nil, ErrNoPiece
	}
	return g.board.LegalMoves(p).Sorted(), nil
}

func (g *Game) MakeMove(move MoveRequest) (Ply, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.board.PieceAt(move.From)
	if !ok {
		return Ply{}, ErrNoPiece
	}
	ply, err := g.board.TryMove(p, move.To, move.Promotion)
	if err != nil {
		return Ply{}, err
	}

	switch {
	case ply.Check:
		g.sound = "check"
	case ply.CastleRookMove != nil:
		g.sound = "castle"
	case ply.CapturedPiece != nil:
		g.sound = "capture"
	default:
		g.sound = "move"
	}
	return ply, nil
}

func (g *Game) Undo() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.board.Undo() {
		return ErrNothingToUndo
	}
	g.sound = ""
	return nil
}

// IsOver reports whether the game has reached checkmate or stalemate.
func (g *Game) IsOver() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.IsOver()
}

// IsRuleRejection reports whether err is a move the rules refused, as opposed to a fault.
func IsRuleRejection(err error) bool {
	for _, target := range []error{ErrNoPiece, ErrNotYourTurn, ErrSameSquare, ErrIllegalMove, ErrGameOver, ErrNothingToUndo} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
