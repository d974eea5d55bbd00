package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages exchanged over the game socket
type MessageType string

const (
	MessageTypeMove       MessageType = "move"
	MessageTypeUndo       MessageType = "undo"
	MessageTypeNewGame    MessageType = "newGame"
	MessageTypeLegalMoves MessageType = "legalMoves"
	MessageTypeGameState  MessageType = "gameState"
	MessageTypeError      MessageType = "error"
)

// Message is the envelope for every websocket message
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ErrorPayload carries the reason a client message was refused
type ErrorPayload struct {
	Error string `json:"error"`
}
