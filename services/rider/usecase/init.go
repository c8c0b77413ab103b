package usecase

import (
	"context"
	"fmt"

	"github.com/delivermi/rider-app/internal/pkg/logger"
	"github.com/delivermi/rider-app/internal/pkg/models"
	"github.com/delivermi/rider-app/services/rider"
)

// riderUC implements the rider.RiderUC interface
type riderUC struct {
	cfg        *models.Config
	repo       rider.StateRepo
	ridesGW    rider.RideServiceGW
	reconciler *Reconciler
	notifier   *Notifier
}

// NewRiderUC creates the rider use case. publish receives every reconciled
// snapshot change and may be nil.
func NewRiderUC(
	cfg *models.Config,
	repo rider.StateRepo,
	ridesGW rider.RideServiceGW,
	realtimeGW rider.RealtimeGW,
	dispatcher rider.Dispatcher,
	publish func(models.RideSnapshot),
) (rider.RiderUC, error) {
	notifier := NewNotifier(repo, dispatcher, cfg.Rider.ID)
	reconciler := NewReconciler(cfg.Reconciler, repo, ridesGW, realtimeGW, notifier, publish)

	return &riderUC{
		cfg:        cfg,
		repo:       repo,
		ridesGW:    ridesGW,
		reconciler: reconciler,
		notifier:   notifier,
	}, nil
}

// Resume re-adopts a persisted ride reference after a restart
func (uc *riderUC) Resume(ctx context.Context) error {
	rideID, err := uc.repo.ActiveRideID(ctx)
	if err != nil {
		return fmt.Errorf("failed to read persisted ride reference: %w", err)
	}
	if rideID == "" {
		return nil
	}

	logger.Info("Resuming persisted ride reference", logger.String("ride_id", rideID))
	return uc.reconciler.Track(ctx, rideID)
}

// RequestRide books a new ride and starts tracking it
func (uc *riderUC) RequestRide(ctx context.Context, req *models.RideRequest) (*models.Ride, error) {
	ride, err := uc.ridesGW.RequestRide(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to request ride: %w", err)
	}

	if err := uc.reconciler.Track(ctx, ride.ID); err != nil {
		// The ride exists remotely; tracking will resume via the
		// my-rides cross-check even if persistence failed here.
		logger.Error("Failed to start tracking new ride",
			logger.String("ride_id", ride.ID),
			logger.Err(err))
	}

	return ride, nil
}

// CancelRide cancels the ride remotely, then drops local state
func (uc *riderUC) CancelRide(ctx context.Context, rideID string, reason string) error {
	if err := uc.ridesGW.CancelRide(ctx, rideID, reason); err != nil {
		return fmt.Errorf("failed to cancel ride: %w", err)
	}

	uc.reconciler.ClearAfterCancel(rideID)
	return nil
}

// AcceptOffer accepts a rider's counter-offer
func (uc *riderUC) AcceptOffer(ctx context.Context, rideID string, offerRiderID string) (*models.Ride, error) {
	ride, err := uc.ridesGW.AcceptOffer(ctx, rideID, offerRiderID)
	if err != nil {
		return nil, fmt.Errorf("failed to accept offer: %w", err)
	}

	uc.reconciler.AdoptMutationResult(ride)
	return ride, nil
}

// AdjustFare changes the offered fare on a requested ride
func (uc *riderUC) AdjustFare(ctx context.Context, rideID string, amount float64) (*models.Ride, error) {
	ride, err := uc.ridesGW.AdjustFare(ctx, rideID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust fare: %w", err)
	}

	uc.reconciler.AdoptMutationResult(ride)
	return ride, nil
}

// RateRide submits the post-completion rating and finishes the teardown
func (uc *riderUC) RateRide(ctx context.Context, rideID string, rating int, comment string) error {
	if err := uc.ridesGW.RateRide(ctx, rideID, rating, comment); err != nil {
		return fmt.Errorf("failed to rate ride: %w", err)
	}

	uc.reconciler.FinishRating()
	return nil
}

// Snapshot returns the reconciled ride state
func (uc *riderUC) Snapshot() models.RideSnapshot {
	return uc.reconciler.Snapshot()
}

// ClearStuckRide drops the tracked ride on explicit user request
func (uc *riderUC) ClearStuckRide(ctx context.Context) error {
	return uc.reconciler.ClearStuck(ctx)
}

// OpenChat marks the chat UI visible and zeroes the unread badge
func (uc *riderUC) OpenChat(ctx context.Context) error {
	if err := uc.notifier.ChatOpened(ctx); err != nil {
		return err
	}
	uc.reconciler.publishNow()
	return nil
}

// CloseChat marks the chat UI hidden
func (uc *riderUC) CloseChat() {
	uc.notifier.ChatClosed()
}

// Shutdown stops reconciliation without clearing persisted state
func (uc *riderUC) Shutdown() {
	uc.reconciler.Shutdown()
}
