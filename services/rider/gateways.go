package rider

import (
	"context"

	"github.com/delivermi/rider-app/internal/pkg/models"
)

//go:generate mockgen -source=gateways.go -destination=mocks/mock_gateways.go -package=mocks

// RideServiceGW defines the operations exposed by the remote ride service.
// GetRide returns (nil, nil) when the ride does not exist; access violations
// are reported as ErrPermissionDenied.
type RideServiceGW interface {
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
	ListMyRides(ctx context.Context) ([]*models.Ride, error)
	RequestRide(ctx context.Context, req *models.RideRequest) (*models.Ride, error)
	CancelRide(ctx context.Context, rideID string, reason string) error
	AcceptOffer(ctx context.Context, rideID string, offerRiderID string) (*models.Ride, error)
	AdjustFare(ctx context.Context, rideID string, amount float64) (*models.Ride, error)
	RateRide(ctx context.Context, rideID string, rating int, comment string) error
}

// Subscription is a handle to an open push subscription
type Subscription interface {
	Unsubscribe() error
}

// RealtimeGW defines the push-style subscriptions on the realtime backend
type RealtimeGW interface {
	SubscribeRideDoc(rideID string, handler func(models.RideDocEvent)) (Subscription, error)
	SubscribeRiderLocation(riderID string, handler func(models.RiderLocationEvent)) (Subscription, error)
	SubscribeMessages(rideID string, handler func(models.ChatEvent)) (Subscription, error)
}

// Dispatcher delivers user-facing notifications to the rider's UI
type Dispatcher interface {
	Dispatch(n models.Notification)
}
