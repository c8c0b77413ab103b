package handler

import (
	httphandler "github.com/delivermi/rider-app/services/rider/handler/http"
	wshandler "github.com/delivermi/rider-app/services/rider/handler/websocket"
	"github.com/labstack/echo/v4"
)

// Handler aggregates the rider service handlers
type Handler struct {
	rideHandler *httphandler.RideHandler
	wsHandler   *wshandler.WebSocketHandler
}

// NewHandler creates a new handler aggregator
func NewHandler(rideHandler *httphandler.RideHandler, wsHandler *wshandler.WebSocketHandler) *Handler {
	return &Handler{
		rideHandler: rideHandler,
		wsHandler:   wsHandler,
	}
}

// RegisterRoutes registers the rider API routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	rides := e.Group("/rides")
	rides.POST("", h.rideHandler.RequestRide)
	rides.POST("/:id/cancel", h.rideHandler.CancelRide)
	rides.POST("/:id/accept-offer", h.rideHandler.AcceptOffer)
	rides.POST("/:id/fare", h.rideHandler.AdjustFare)
	rides.POST("/:id/rating", h.rideHandler.RateRide)

	state := e.Group("/state")
	state.GET("", h.rideHandler.GetState)
	state.POST("/clear", h.rideHandler.ClearStuckRide)

	chat := e.Group("/chat")
	chat.POST("/open", h.rideHandler.OpenChat)
	chat.POST("/close", h.rideHandler.CloseChat)

	e.GET("/ws", h.wsHandler.HandleWebSocket)
}
