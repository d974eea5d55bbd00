package service

import (
	"errors"
	"fmt"

	"github.com/benbeisheim/chess-backend/internal/model"
)

// ErrInvalidSquare is returned for client coordinates outside the board.
var ErrInvalidSquare = errors.New("square out of range")

// GameService checks client input before it reaches the engine, which treats bad
// coordinates as programmer errors.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) NewGame() string {
	return gs.gameManager.NewGame()
}

func (gs *GameService) GetGameState() model.GameState {
	return gs.gameManager.GetGameState()
}

func (gs *GameService) LegalMoves(pos model.Position) ([]model.Position, error) {
	if err := checkSquare(pos); err != nil {
		return nil, err
	}
	return gs.gameManager.LegalMoves(pos)
}

func (gs *GameService) HandleMove(move model.MoveRequest) error {
	if err := checkSquare(move.From); err != nil {
		return err
	}
	if err := checkSquare(move.To); err != nil {
		return err
	}
	if err := gs.gameManager.MakeMove(move); err != nil {
		return fmt.Errorf("move %s-%s: %w", move.From, move.To, err)
	}
	return nil
}

func (gs *GameService) Undo() error {
	return gs.gameManager.Undo()
}

func (gs *GameService) RegisterObserver(clientID string, ch chan string) {
	gs.gameManager.RegisterObserver(clientID, ch)
}

func (gs *GameService) UnregisterObserver(clientID string, ch chan string) {
	gs.gameManager.UnregisterObserver(clientID, ch)
}

func checkSquare(pos model.Position) error {
	if !pos.Valid() {
		return fmt.Errorf("%w: rank=%d file=%d", ErrInvalidSquare, pos.Rank, pos.File)
	}
	return nil
}
