package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient is a connected rider UI session
type WebSocketClient struct {
	RiderID string
	Conn    *websocket.Conn
}

// WebSocketClaims are the JWT claims carried by UI connections
type WebSocketClaims struct {
	RiderID string `json:"rider_id"`
	jwt.RegisteredClaims
}
