package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/delivermi/rider-app/internal/pkg/logger"
	"github.com/delivermi/rider-app/internal/pkg/models"
	"github.com/delivermi/rider-app/services/rider"
)

// Reconciler merges three asynchronous sources - the polled ride query, the
// push ride-document subscription and the polled my-rides list - into one
// authoritative ride snapshot, and decides when a persisted ride reference is
// a zombie that must be cleared.
//
// State deletion contract: local state is never deleted because of a read
// failure. Deletion happens only on (a) a push-confirmed terminal status,
// (b) cross-validated absence from the my-rides list, (c) an identity or
// permission mismatch, or (d) an explicit user action.
type Reconciler struct {
	mu       sync.Mutex
	cfg      models.ReconcilerConfig
	repo     rider.StateRepo
	rides    rider.RideServiceGW
	realtime rider.RealtimeGW
	notifier *Notifier
	publish  func(models.RideSnapshot)
	now      func() time.Time

	// gen guards every asynchronous callback: results fired for an older
	// reference are discarded instead of overwriting newer state.
	gen       uint64
	rideID    string
	trackedAt time.Time

	snapshot      *models.Ride
	riderLoc      *models.RiderLocation
	validated     bool
	missingPolls  int
	myRides       []*models.Ride
	listLoaded    bool
	ratingPending bool

	cancelLoops context.CancelFunc
	docSub      rider.Subscription
	msgSub      rider.Subscription
	locSub      rider.Subscription
	locRiderID  string
	graceTimer  *time.Timer
}

// NewReconciler creates a ride state reconciler. publish receives every
// reconciled snapshot change and may be nil.
func NewReconciler(
	cfg models.ReconcilerConfig,
	repo rider.StateRepo,
	rides rider.RideServiceGW,
	realtime rider.RealtimeGW,
	notifier *Notifier,
	publish func(models.RideSnapshot),
) *Reconciler {
	return &Reconciler{
		cfg:      cfg,
		repo:     repo,
		rides:    rides,
		realtime: realtime,
		notifier: notifier,
		publish:  publish,
		now:      time.Now,
	}
}

// Track persists the ride reference and starts reconciliation loops for it,
// tearing down any loops for a previously tracked ride first.
func (r *Reconciler) Track(ctx context.Context, rideID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.repo.SetActiveRideID(ctx, rideID); err != nil {
		return fmt.Errorf("failed to persist ride reference: %w", err)
	}

	r.resetLocked()
	r.rideID = rideID
	r.trackedAt = r.now()

	logger.Info("Tracking ride", logger.String("ride_id", rideID))
	r.startLoopsLocked(r.gen, rideID)
	r.publishLocked()
	return nil
}

// Snapshot returns a read-only copy of the reconciled state
func (r *Reconciler) Snapshot() models.RideSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buildSnapshotLocked()
}

// ClearStuck drops the tracked ride on explicit user request
func (r *Reconciler) ClearStuck(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rideID == "" {
		return rider.ErrNoActiveRide
	}

	logger.Warn("Manually clearing stuck ride", logger.String("ride_id", r.rideID))
	r.clearLocked(&models.Notification{
		Type:  models.NotificationRideCleared,
		Title: "Ride cleared",
		Body:  "We cleared a stuck ride for you. You can book again.",
	})
	return nil
}

// ClearAfterCancel drops local state once a cancel mutation succeeded
func (r *Reconciler) ClearAfterCancel(rideID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rideID == "" || r.rideID != rideID {
		return
	}
	r.clearLocked(nil)
}

// AdoptMutationResult merges an updated ride returned by a successful
// mutation (accept-offer, adjust-fare). Ranked like a poll response.
func (r *Reconciler) AdoptMutationResult(ride *models.Ride) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ride == nil || r.rideID == "" || ride.ID != r.rideID {
		return
	}
	r.adoptLocked(SourcePoll, ride)
}

// FinishRating ends the post-completion flow and clears the retained snapshot
func (r *Reconciler) FinishRating() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.ratingPending {
		return
	}
	r.clearLocked(nil)
}

// Shutdown stops loops and subscriptions without clearing persisted state
func (r *Reconciler) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teardownLocked()
}

// publishNow re-emits the current snapshot, e.g. after the unread count
// changed without a ride update.
func (r *Reconciler) publishNow() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.publishLocked()
}

// --- loop wiring ---

func (r *Reconciler) startLoopsLocked(gen uint64, rideID string) {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancelLoops = cancel

	go r.pollLoop(ctx, gen, rideID)
	go r.listLoop(ctx, gen)

	docSub, err := r.realtime.SubscribeRideDoc(rideID, func(ev models.RideDocEvent) {
		r.applyDocEvent(gen, ev)
	})
	if err != nil {
		logger.Warn("Failed to open ride document subscription",
			logger.String("ride_id", rideID),
			logger.Err(err))
	} else {
		r.docSub = docSub
	}

	msgSub, err := r.realtime.SubscribeMessages(rideID, func(ev models.ChatEvent) {
		r.applyChatEvent(gen, ev)
	})
	if err != nil {
		logger.Warn("Failed to open message subscription",
			logger.String("ride_id", rideID),
			logger.Err(err))
	} else {
		r.msgSub = msgSub
	}
}

func (r *Reconciler) pollLoop(ctx context.Context, gen uint64, rideID string) {
	r.pollOnce(ctx, gen, rideID)

	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.pollOnce(ctx, gen, rideID)
		}
	}
}

func (r *Reconciler) pollOnce(ctx context.Context, gen uint64, rideID string) {
	ride, err := r.rides.GetRide(ctx, rideID)
	r.applyPollResult(gen, ride, err)
}

func (r *Reconciler) listLoop(ctx context.Context, gen uint64) {
	r.listOnce(ctx, gen)

	ticker := time.NewTicker(r.cfg.ListInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.listOnce(ctx, gen)
		}
	}
}

func (r *Reconciler) listOnce(ctx context.Context, gen uint64) {
	rides, err := r.rides.ListMyRides(ctx)
	r.applyListResult(gen, rides, err)
}

// --- state transitions ---

// applyPollResult folds one polled ride-status response into state
func (r *Reconciler) applyPollResult(gen uint64, ride *models.Ride, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen || r.rideID == "" {
		// Late result for an old reference; discard.
		return
	}

	if err != nil {
		if errors.Is(err, rider.ErrPermissionDenied) {
			// An identity mismatch is definitive; it never counts as a
			// missing poll and needs no cross-validation.
			r.permissionDeniedLocked("poll")
			return
		}
		logger.Warn("Ride poll failed",
			logger.String("ride_id", r.rideID),
			logger.Int("missing_polls", r.missingPolls+1),
			logger.Err(err))
		r.missingPolls++
		r.crossCheckLocked()
		return
	}

	if ride == nil {
		logger.Warn("Ride poll returned no data",
			logger.String("ride_id", r.rideID),
			logger.Int("missing_polls", r.missingPolls+1))
		r.missingPolls++
		r.crossCheckLocked()
		return
	}

	r.missingPolls = 0
	r.validated = true
	r.adoptLocked(SourcePoll, ride)
}

// applyListResult folds one my-rides list response into state
func (r *Reconciler) applyListResult(gen uint64, rides []*models.Ride, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen || r.rideID == "" {
		return
	}

	if err != nil {
		logger.Warn("My-rides list query failed", logger.Err(err))
		return
	}

	r.myRides = rides
	r.listLoaded = true
	r.crossCheckLocked()
}

// applyDocEvent folds one push subscription event into state. The push
// channel is the only trusted trigger for end-of-ride teardown.
func (r *Reconciler) applyDocEvent(gen uint64, ev models.RideDocEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen || r.rideID == "" {
		return
	}

	if ev.PermissionDenied {
		r.permissionDeniedLocked("subscription")
		return
	}

	if !ev.Exists {
		// A transient read failure must never erase an active ride.
		logger.Warn("Ride document briefly missing, keeping snapshot",
			logger.String("ride_id", r.rideID))
		return
	}

	r.adoptLocked(SourcePush, ev.Ride)

	if r.snapshot != nil && r.snapshot.Status.IsTerminal() {
		r.beginTeardownLocked()
	}
}

// applyChatEvent forwards a chat thread update to the notifier
func (r *Reconciler) applyChatEvent(gen uint64, ev models.ChatEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen || r.rideID == "" {
		return
	}

	r.notifier.ObserveMessages(context.Background(), ev.RideID, ev.Messages)
	r.publishLocked()
}

// applyLocationEvent replaces the rider's live location wholesale
func (r *Reconciler) applyLocationEvent(gen uint64, ev models.RiderLocationEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen || r.rideID == "" {
		return
	}

	loc := ev.Location
	r.riderLoc = &loc
	r.publishLocked()
}

// adoptLocked merges an incoming payload and republishes
func (r *Reconciler) adoptLocked(src Source, ride *models.Ride) {
	r.snapshot = mergeSnapshot(r.snapshot, src, ride)
	r.ensureRiderLocationLocked()
	r.notifier.ObserveRide(r.snapshot)
	r.publishLocked()
}

// permissionDeniedLocked handles an identity mismatch reported by any read
// channel. A reference younger than PermissionGrace is assumed to be an ACL
// propagation race right after ride creation and waits it out; an older one
// belongs to someone else and clears immediately.
func (r *Reconciler) permissionDeniedLocked(channel string) {
	age := r.now().Sub(r.trackedAt)
	if age < r.cfg.PermissionGrace {
		logger.Warn("Permission denied on ride read, waiting for propagation",
			logger.String("ride_id", r.rideID),
			logger.String("channel", channel),
			logger.Duration("reference_age", age))
		return
	}

	logger.Warn("Permission denied past grace period, clearing foreign ride reference",
		logger.String("ride_id", r.rideID),
		logger.String("channel", channel))
	r.clearLocked(&models.Notification{
		Type:  models.NotificationRideCleared,
		Title: "Ride cleared",
		Body:  "We cleared a stuck ride for you. You can book again.",
	})
}

// crossCheckLocked consults the my-rides list once the missing-poll counter
// reaches the threshold. Clearing requires cross-validated absence; a list
// that has not loaded yet defers the decision.
func (r *Reconciler) crossCheckLocked() {
	if r.missingPolls < r.cfg.MissingPollThreshold {
		return
	}
	if !r.listLoaded {
		return
	}

	for _, ride := range r.myRides {
		if ride != nil && ride.ID == r.rideID && !ride.Status.IsTerminal() {
			// The direct query is failing for an unrelated reason; the
			// list confirms the ride is alive. Use it as a fallback.
			logger.Info("My-rides list confirmed active ride, adopting as fallback",
				logger.String("ride_id", r.rideID))
			r.missingPolls = 0
			r.adoptLocked(SourceList, ride)
			return
		}
	}

	logger.Warn("Ride reference absent from my-rides list, clearing zombie state",
		logger.String("ride_id", r.rideID))
	r.clearLocked(&models.Notification{
		Type:  models.NotificationRideCleared,
		Title: "Ride cleared",
		Body:  "We cleared a stuck ride for you. You can book again.",
	})
}

// beginTeardownLocked handles a push-confirmed terminal status. COMPLETED
// with an assigned rider retains state for the rating flow; everything else
// clears immediately.
func (r *Reconciler) beginTeardownLocked() {
	if r.graceTimer != nil || r.ratingPending {
		return
	}

	if r.snapshot.Status == models.RideStatusCompleted && r.snapshot.Rider != nil {
		r.ratingPending = true
		r.notifier.RatingPrompt(r.snapshot)

		gen := r.gen
		r.graceTimer = time.AfterFunc(r.cfg.CompletionGrace, func() {
			r.onCompletionGrace(gen)
		})
		r.publishLocked()
		return
	}

	r.clearLocked(nil)
}

// onCompletionGrace clears retained post-completion state once the rating
// flow timed out without being dismissed
func (r *Reconciler) onCompletionGrace(gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen {
		return
	}

	logger.Info("Completion grace elapsed, clearing ride state",
		logger.String("ride_id", r.rideID))
	r.clearLocked(nil)
}

// clearLocked performs the full local-state teardown and returns the UI to
// the booking entry state. Clearing bumps the generation, so any in-flight
// async result for the old reference is discarded.
func (r *Reconciler) clearLocked(notice *models.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.repo.ClearActiveRideID(ctx); err != nil {
		logger.Error("Failed to clear persisted ride reference", logger.Err(err))
	}

	r.resetLocked()

	if notice != nil {
		r.notifier.Dispatch(*notice)
	}
	r.publishLocked()
}

// resetLocked tears down loops and zeroes all transient reconciliation state
func (r *Reconciler) resetLocked() {
	r.teardownLocked()

	r.gen++
	r.rideID = ""
	r.trackedAt = time.Time{}
	r.snapshot = nil
	r.riderLoc = nil
	r.validated = false
	r.missingPolls = 0
	r.myRides = nil
	r.listLoaded = false
	r.ratingPending = false

	r.notifier.Reset()
}

// teardownLocked stops the previous poll loops and push subscriptions before
// new ones start, so two reconciliation loops never race on shared state
func (r *Reconciler) teardownLocked() {
	if r.cancelLoops != nil {
		r.cancelLoops()
		r.cancelLoops = nil
	}
	if r.docSub != nil {
		if err := r.docSub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe ride document", logger.Err(err))
		}
		r.docSub = nil
	}
	if r.msgSub != nil {
		if err := r.msgSub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe messages", logger.Err(err))
		}
		r.msgSub = nil
	}
	r.dropLocationSubLocked()
	if r.graceTimer != nil {
		r.graceTimer.Stop()
		r.graceTimer = nil
	}
}

// ensureRiderLocationLocked opens or replaces the rider location subscription
// to follow the currently assigned rider
func (r *Reconciler) ensureRiderLocationLocked() {
	if r.snapshot == nil || r.snapshot.Rider == nil {
		r.dropLocationSubLocked()
		return
	}

	riderID := r.snapshot.Rider.ID
	if r.locSub != nil && r.locRiderID == riderID {
		return
	}
	r.dropLocationSubLocked()

	gen := r.gen
	locSub, err := r.realtime.SubscribeRiderLocation(riderID, func(ev models.RiderLocationEvent) {
		r.applyLocationEvent(gen, ev)
	})
	if err != nil {
		logger.Warn("Failed to open rider location subscription",
			logger.String("rider_id", riderID),
			logger.Err(err))
		return
	}
	r.locSub = locSub
	r.locRiderID = riderID
}

func (r *Reconciler) dropLocationSubLocked() {
	if r.locSub != nil {
		if err := r.locSub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe rider location", logger.Err(err))
		}
		r.locSub = nil
	}
	r.locRiderID = ""
	r.riderLoc = nil
}

// --- snapshot projection ---

func (r *Reconciler) buildSnapshotLocked() models.RideSnapshot {
	var loc *models.RiderLocation
	if r.riderLoc != nil {
		locCopy := *r.riderLoc
		loc = &locCopy
	}

	return models.RideSnapshot{
		Ride:          copyRide(r.snapshot),
		RiderLocation: loc,
		Validated:     r.validated,
		Unread:        r.notifier.Unread(),
		RatingPending: r.ratingPending,
		UpdatedAt:     r.now(),
	}
}

func (r *Reconciler) publishLocked() {
	if r.publish == nil {
		return
	}
	r.publish(r.buildSnapshotLocked())
}
