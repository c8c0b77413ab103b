package rider

import (
	"context"

	"github.com/delivermi/rider-app/internal/pkg/models"
)

//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks

// RiderUC defines the rider-facing use case operations
type RiderUC interface {
	// Resume re-adopts a persisted ride reference after a restart.
	Resume(ctx context.Context) error

	// Booking lifecycle
	RequestRide(ctx context.Context, req *models.RideRequest) (*models.Ride, error)
	CancelRide(ctx context.Context, rideID string, reason string) error
	AcceptOffer(ctx context.Context, rideID string, offerRiderID string) (*models.Ride, error)
	AdjustFare(ctx context.Context, rideID string, amount float64) (*models.Ride, error)
	RateRide(ctx context.Context, rideID string, rating int, comment string) error

	// Reconciled state
	Snapshot() models.RideSnapshot
	ClearStuckRide(ctx context.Context) error

	// Chat visibility
	OpenChat(ctx context.Context) error
	CloseChat()

	// Shutdown stops polling loops and subscriptions without clearing state.
	Shutdown()
}
