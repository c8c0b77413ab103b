package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// KVStore is the narrow durable key-value contract the state repository
// needs. Production uses the Redis client; tests substitute an in-memory map.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

// StateRepo persists the client-side ride state: the active ride reference
// and the per-ride last-seen chat message count. Keys are namespaced by the
// rider identity so instances sharing a store do not collide.
type StateRepo struct {
	kv      KVStore
	riderID string
}

// NewStateRepo creates a new state repository for the given rider identity
func NewStateRepo(kv KVStore, riderID string) *StateRepo {
	return &StateRepo{
		kv:      kv,
		riderID: riderID,
	}
}

func (r *StateRepo) activeRideKey() string {
	return fmt.Sprintf("rider:%s:active_ride", r.riderID)
}

func (r *StateRepo) seenCountKey(rideID string) string {
	return fmt.Sprintf("rider:%s:ride:%s:seen_messages", r.riderID, rideID)
}

// ActiveRideID returns the persisted ride reference, or "" when none
func (r *StateRepo) ActiveRideID(ctx context.Context) (string, error) {
	rideID, err := r.kv.Get(ctx, r.activeRideKey())
	if err != nil {
		return "", fmt.Errorf("failed to read active ride reference: %w", err)
	}
	return rideID, nil
}

// SetActiveRideID persists the ride reference
func (r *StateRepo) SetActiveRideID(ctx context.Context, rideID string) error {
	if err := r.kv.Set(ctx, r.activeRideKey(), rideID, 0); err != nil {
		return fmt.Errorf("failed to persist active ride reference: %w", err)
	}
	return nil
}

// ClearActiveRideID removes the persisted ride reference
func (r *StateRepo) ClearActiveRideID(ctx context.Context) error {
	if err := r.kv.Delete(ctx, r.activeRideKey()); err != nil {
		return fmt.Errorf("failed to clear active ride reference: %w", err)
	}
	return nil
}

// SeenMessageCount returns the last-seen chat message count for a ride,
// zero when never recorded
func (r *StateRepo) SeenMessageCount(ctx context.Context, rideID string) (int, error) {
	raw, err := r.kv.Get(ctx, r.seenCountKey(rideID))
	if err != nil {
		return 0, fmt.Errorf("failed to read seen message count: %w", err)
	}
	if raw == "" {
		return 0, nil
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("corrupt seen message count %q: %w", raw, err)
	}
	return count, nil
}

// SetSeenMessageCount persists the last-seen chat message count for a ride
func (r *StateRepo) SetSeenMessageCount(ctx context.Context, rideID string, count int) error {
	if err := r.kv.Set(ctx, r.seenCountKey(rideID), strconv.Itoa(count), 0); err != nil {
		return fmt.Errorf("failed to persist seen message count: %w", err)
	}
	return nil
}
