package http

import (
	"errors"
	"net/http"

	"github.com/delivermi/rider-app/internal/pkg/logger"
	"github.com/delivermi/rider-app/internal/pkg/models"
	"github.com/delivermi/rider-app/internal/utils"
	"github.com/delivermi/rider-app/services/rider"
	"github.com/labstack/echo/v4"
)

// RideHandler handles HTTP requests for the rider booking surface
type RideHandler struct {
	riderUC rider.RiderUC
}

// NewRideHandler creates a new ride handler
func NewRideHandler(riderUC rider.RiderUC) *RideHandler {
	return &RideHandler{
		riderUC: riderUC,
	}
}

// RequestRide handles booking form submissions
func (h *RideHandler) RequestRide(c echo.Context) error {
	var req models.RideRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for ride request",
			logger.Err(err),
			logger.String("endpoint", "RequestRide"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.PickupAddress == "" || req.DropoffAddress == "" {
		return utils.BadRequestResponse(c, "Pickup and dropoff addresses are required")
	}
	if req.Fare <= 0 {
		return utils.BadRequestResponse(c, "Fare must be positive")
	}

	ride, err := h.riderUC.RequestRide(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to request ride", logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "Failed to request ride")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride requested successfully", ride)
}

// CancelRide cancels the active ride with a reason
func (h *RideHandler) CancelRide(c echo.Context) error {
	rideID := c.Param("id")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.riderUC.CancelRide(c.Request().Context(), rideID, body.Reason); err != nil {
		logger.Error("Failed to cancel ride",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "Failed to cancel ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled successfully", nil)
}

// AcceptOffer accepts a rider's counter-offer on the active ride
func (h *RideHandler) AcceptOffer(c echo.Context) error {
	rideID := c.Param("id")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var body struct {
		RiderID string `json:"rider_id"`
	}
	if err := c.Bind(&body); err != nil || body.RiderID == "" {
		return utils.BadRequestResponse(c, "Invalid offer payload")
	}

	ride, err := h.riderUC.AcceptOffer(c.Request().Context(), rideID, body.RiderID)
	if err != nil {
		logger.Error("Failed to accept offer",
			logger.String("ride_id", rideID),
			logger.String("offer_rider_id", body.RiderID),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "Failed to accept offer")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Offer accepted successfully", ride)
}

// AdjustFare changes the offered fare on the active ride
func (h *RideHandler) AdjustFare(c echo.Context) error {
	rideID := c.Param("id")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var body struct {
		Amount float64 `json:"amount"`
	}
	if err := c.Bind(&body); err != nil || body.Amount <= 0 {
		return utils.BadRequestResponse(c, "Invalid fare amount")
	}

	ride, err := h.riderUC.AdjustFare(c.Request().Context(), rideID, body.Amount)
	if err != nil {
		logger.Error("Failed to adjust fare",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "Failed to adjust fare")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fare adjusted successfully", ride)
}

// RateRide submits the post-completion rating
func (h *RideHandler) RateRide(c echo.Context) error {
	rideID := c.Param("id")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var body struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid rating payload")
	}
	if body.Rating < 1 || body.Rating > 5 {
		return utils.BadRequestResponse(c, "Rating must be between 1 and 5")
	}

	if err := h.riderUC.RateRide(c.Request().Context(), rideID, body.Rating, body.Comment); err != nil {
		logger.Error("Failed to rate ride",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "Failed to rate ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride rated successfully", nil)
}

// GetState returns the reconciled ride snapshot
func (h *RideHandler) GetState(c echo.Context) error {
	snapshot := h.riderUC.Snapshot()
	return utils.SuccessResponse(c, http.StatusOK, "Ride state retrieved", snapshot)
}

// ClearStuckRide manually clears the tracked ride as a last resort
func (h *RideHandler) ClearStuckRide(c echo.Context) error {
	if err := h.riderUC.ClearStuckRide(c.Request().Context()); err != nil {
		if errors.Is(err, rider.ErrNoActiveRide) {
			return utils.BadRequestResponse(c, "No active ride to clear")
		}
		logger.Error("Failed to clear stuck ride", logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to clear stuck ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Stuck ride cleared", nil)
}

// OpenChat marks the chat UI visible and zeroes the unread badge
func (h *RideHandler) OpenChat(c echo.Context) error {
	if err := h.riderUC.OpenChat(c.Request().Context()); err != nil {
		logger.Error("Failed to open chat", logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to open chat")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Chat opened", nil)
}

// CloseChat marks the chat UI hidden
func (h *RideHandler) CloseChat(c echo.Context) error {
	h.riderUC.CloseChat()
	return utils.SuccessResponse(c, http.StatusOK, "Chat closed", nil)
}
