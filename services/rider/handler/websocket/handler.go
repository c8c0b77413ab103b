package websocket

import (
	"github.com/delivermi/rider-app/internal/pkg/constants"
	"github.com/delivermi/rider-app/internal/pkg/logger"
	"github.com/delivermi/rider-app/internal/pkg/models"
	pkgws "github.com/delivermi/rider-app/internal/pkg/websocket"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// WebSocketHandler pushes reconciled ride state and notifications to
// connected rider UI sessions. It implements rider.Dispatcher so the
// use case layer never touches the transport.
type WebSocketHandler struct {
	manager *pkgws.Manager
	// snapshot returns the current reconciled state for the initial push
	// on connect. Set after the use case is constructed.
	snapshot func() models.RideSnapshot
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(manager *pkgws.Manager) *WebSocketHandler {
	return &WebSocketHandler{manager: manager}
}

// SetSnapshotSource wires the reconciled-state source used for the
// initial push when a UI session connects
func (h *WebSocketHandler) SetSnapshotSource(snapshot func() models.RideSnapshot) {
	h.snapshot = snapshot
}

// HandleWebSocket upgrades and serves one rider UI connection
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

func (h *WebSocketHandler) handleClient(client *models.WebSocketClient, conn *websocket.Conn) error {
	client.Conn = conn
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.RiderID)

	logger.Info("Rider UI connected",
		logger.String("rider_id", client.RiderID))

	if h.snapshot != nil {
		if err := h.manager.SendMessage(conn, constants.EventRideState, h.snapshot()); err != nil {
			logger.Warn("Failed to push initial ride state",
				logger.String("rider_id", client.RiderID),
				logger.Err(err))
		}
	}

	// The UI never sends application messages; the read loop only
	// detects disconnects and answers control frames.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			logger.Info("Rider UI disconnected",
				logger.String("rider_id", client.RiderID))
			return nil
		}
	}
}

// PublishSnapshot pushes a reconciled snapshot change to every connected
// UI session. A known rider position also goes out on its own event so
// the map layer can animate without re-rendering the ride card.
func (h *WebSocketHandler) PublishSnapshot(snapshot models.RideSnapshot) {
	h.broadcast(constants.EventRideState, snapshot)
	if snapshot.RiderLocation != nil {
		h.broadcast(constants.EventRiderMoved, *snapshot.RiderLocation)
	}
}

// Dispatch delivers a user-facing notification to the rider UI
func (h *WebSocketHandler) Dispatch(n models.Notification) {
	logger.Info("Dispatching notification",
		logger.String("type", string(n.Type)),
		logger.String("title", n.Title),
		logger.String("ride_id", n.RideID))
	h.broadcast(constants.EventNotification, n)
}

func (h *WebSocketHandler) broadcast(event string, data interface{}) {
	for _, client := range h.manager.Clients() {
		h.manager.NotifyClient(client.RiderID, event, data)
	}
}
