package rider

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// StateRepo is the durable key-value persistence for client-side ride state.
// Writes happen synchronously in the reconciler's mutation path so a restart
// mid-transition resumes the correct polling target.
type StateRepo interface {
	// ActiveRideID returns the persisted ride reference, or "" when none.
	ActiveRideID(ctx context.Context) (string, error)
	SetActiveRideID(ctx context.Context, rideID string) error
	ClearActiveRideID(ctx context.Context) error

	// SeenMessageCount tracks the last-seen chat message count per ride.
	SeenMessageCount(ctx context.Context, rideID string) (int, error)
	SetSeenMessageCount(ctx context.Context, rideID string, count int) error
}
