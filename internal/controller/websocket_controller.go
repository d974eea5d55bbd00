package controller

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/benbeisheim/chess-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

const observerBuffer = 16

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// connWriter serialises writes from the state pump and the read loop onto one connection.
type connWriter struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (w *connWriter) writeText(msg string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteMessage(websocket.TextMessage, []byte(msg))
}

func (w *connWriter) writeMessage(msgType ws.MessageType, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg, err := json.Marshal(ws.Message{Type: msgType, Payload: raw})
	if err != nil {
		return err
	}
	return w.writeText(string(msg))
}

// HandleConnection pushes every state change to the client and applies the messages it sends.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	clientID, _ := c.Locals("wsClientID").(string)
	w := &connWriter{conn: c}

	updates := make(chan string, observerBuffer)
	wsc.gameService.RegisterObserver(clientID, updates)

	pumpDone := make(chan struct{})
	go func() {
		defer close(pumpDone)
		for msg := range updates {
			if err := w.writeText(msg); err != nil {
				log.Warnf("write to %s failed: %v", clientID, err)
				return
			}
		}
	}()

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("read from %s ended: %v", clientID, err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Debugf("parse error from %s: %v", clientID, err)
			wsc.sendError(w, "malformed message")
			continue
		}
		if err := wsc.handleMessage(w, msg); err != nil {
			log.Debugf("message %s from %s refused: %v", msg.Type, clientID, err)
			wsc.sendError(w, err.Error())
		}
	}

	wsc.gameService.UnregisterObserver(clientID, updates)
	<-pumpDone
}

func (wsc *WebSocketController) handleMessage(w *connWriter, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		return wsc.gameService.HandleMove(move)

	case ws.MessageTypeUndo:
		return wsc.gameService.Undo()

	case ws.MessageTypeNewGame:
		wsc.gameService.NewGame()
		return nil

	case ws.MessageTypeLegalMoves:
		var from model.Position
		if err := json.Unmarshal(msg.Payload, &from); err != nil {
			return err
		}
		moves, err := wsc.gameService.LegalMoves(from)
		if err != nil {
			return err
		}
		return w.writeMessage(ws.MessageTypeLegalMoves, legalMovesReply{From: from, Moves: moves})

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(w *connWriter, errorMsg string) {
	if err := w.writeMessage(ws.MessageTypeError, ws.ErrorPayload{Error: errorMsg}); err != nil {
		log.Warnf("sending error message failed: %v", err)
	}
}
