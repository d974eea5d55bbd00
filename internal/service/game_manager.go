package service

import (
	"encoding/json"
	"sync"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// GameManager owns the one current game and the observers that receive its state.
type GameManager struct {
	game      *model.Game
	observers map[string]chan string
	mu        sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		game:      model.NewGame(uuid.New().String()),
		observers: make(map[string]chan string),
	}
}

// NewGame replaces the current game with a fresh one and returns its id.
func (gm *GameManager) NewGame() string {
	gm.mu.Lock()
	gm.game = model.NewGame(uuid.New().String())
	id := gm.game.ID
	gm.mu.Unlock()

	log.Infof("started game %s", id)
	gm.broadcastState()
	return id
}

func (gm *GameManager) current() *model.Game {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return gm.game
}

func (gm *GameManager) GetGameState() model.GameState {
	return gm.current().GetState()
}

func (gm *GameManager) LegalMoves(pos model.Position) ([]model.Position, error) {
	return gm.current().LegalMoves(pos)
}

func (gm *GameManager) MakeMove(move model.MoveRequest) error {
	game := gm.current()
	ply, err := game.MakeMove(move)
	if err != nil {
		return err
	}
	log.Debugf("game %s: %s %s-%s", game.ID, ply.Piece.Type, ply.From, ply.To)
	if game.IsOver() {
		log.Infof("game %s is over", game.ID)
	}
	gm.broadcastState()
	return nil
}

func (gm *GameManager) Undo() error {
	game := gm.current()
	if err := game.Undo(); err != nil {
		return err
	}
	log.Debugf("game %s: took back a move", game.ID)
	gm.broadcastState()
	return nil
}

// RegisterObserver subscribes ch to state updates under clientID and queues the current
// state on it. A channel already registered for clientID is closed and replaced.
func (gm *GameManager) RegisterObserver(clientID string, ch chan string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	log.Debugf("registering observer %s", clientID)

	if existing, ok := gm.observers[clientID]; ok {
		delete(gm.observers, clientID)
		close(existing)
	}
	gm.observers[clientID] = ch

	select {
	case ch <- stateMessage(gm.game.GetState()):
	default:
		log.Warnf("observer %s has no room for the initial state", clientID)
	}
}

// UnregisterObserver removes and closes ch if it is still the channel registered for clientID.
func (gm *GameManager) UnregisterObserver(clientID string, ch chan string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if current, ok := gm.observers[clientID]; ok && current == ch {
		log.Debugf("unregistering observer %s", clientID)
		delete(gm.observers, clientID)
		close(ch)
	}
}

func (gm *GameManager) broadcastState() {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	msg := stateMessage(gm.game.GetState())
	for clientID, ch := range gm.observers {
		select {
		case ch <- msg:
		default:
			log.Warnf("observer %s is not keeping up, dropped a state update", clientID)
		}
	}
}

func stateMessage(state model.GameState) string {
	return mustJSON(ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: json.RawMessage(mustJSON(state)),
	})
}

// mustJSON marshals values whose types are known to encode.
func mustJSON(v interface{}) string {
	bytes, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(bytes)
}
