package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/delivermi/rider-app/internal/pkg/logger"
	"github.com/delivermi/rider-app/internal/pkg/models"
	"github.com/delivermi/rider-app/services/rider"
)

// statusNotice is the fixed user-facing text for a status transition
type statusNotice struct {
	title string
	body  string
}

// statusNotices maps ride statuses to transition alerts. REQUESTED is the
// initial state and deliberately unmapped; unmapped statuses never notify.
var statusNotices = map[models.RideStatus]statusNotice{
	models.RideStatusAccepted:         {"Rider on the way", "A rider accepted your request and is heading to your pickup point."},
	models.RideStatusArrivedAtPickup:  {"Rider arrived", "Your rider is waiting at the pickup point."},
	models.RideStatusPickedUp:         {"Trip started", "Enjoy your ride."},
	models.RideStatusArrivedAtDropoff: {"Almost there", "You are arriving at your destination."},
	models.RideStatusCompleted:        {"Trip completed", "Thanks for riding with DeliverMi."},
	models.RideStatusCancelled:        {"Ride cancelled", "Your ride was cancelled."},
}

// Notifier translates snapshot changes into user-facing alerts. Each channel
// (status, chat, counter-offers) holds its own last-observed value and emits
// at most one notification per transition.
type Notifier struct {
	mu         sync.Mutex
	repo       rider.StateRepo
	dispatcher rider.Dispatcher
	selfID     string
	now        func() time.Time

	rideID string

	hasPrevStatus bool
	prevStatus    models.RideStatus

	offerBaseline bool
	offerCount    int

	msgBaseline  bool
	lastMsgTotal int
	unread       int
	chatOpen     bool
}

// NewNotifier creates a notification dispatcher for the given rider identity.
// selfID is used to suppress alerts for the user's own chat messages.
func NewNotifier(repo rider.StateRepo, dispatcher rider.Dispatcher, selfID string) *Notifier {
	return &Notifier{
		repo:       repo,
		dispatcher: dispatcher,
		selfID:     selfID,
		now:        time.Now,
	}
}

// Reset drops all per-ride channel state. Called when the tracked ride
// reference changes or is cleared.
func (n *Notifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.rideID = ""
	n.hasPrevStatus = false
	n.prevStatus = ""
	n.offerBaseline = false
	n.offerCount = 0
	n.msgBaseline = false
	n.lastMsgTotal = 0
	n.unread = 0
	n.chatOpen = false
}

// ObserveRide feeds a reconciled snapshot through the status and offer
// channels. The first observation establishes baselines without notifying.
func (n *Notifier) ObserveRide(ride *models.Ride) {
	if ride == nil {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.rideID = ride.ID
	n.observeStatusLocked(ride)
	n.observeOffersLocked(ride)
}

func (n *Notifier) observeStatusLocked(ride *models.Ride) {
	status := ride.Status
	// Previous status updates unconditionally, including on first observation.
	defer func() {
		n.prevStatus = status
		n.hasPrevStatus = true
	}()

	if !n.hasPrevStatus {
		return
	}
	if status == n.prevStatus {
		return
	}

	notice, ok := statusNotices[status]
	if !ok {
		return
	}

	n.dispatchLocked(models.Notification{
		Type:   models.NotificationStatusChange,
		Title:  notice.title,
		Body:   notice.body,
		RideID: ride.ID,
		Sound:  true,
	})
}

func (n *Notifier) observeOffersLocked(ride *models.Ride) {
	// Offers are already deduplicated per rider by the merge.
	count := len(ride.Offers)
	defer func() {
		n.offerCount = count
		n.offerBaseline = true
	}()

	if !n.offerBaseline {
		// Historical offers present at load time must not alert.
		return
	}
	if count <= n.offerCount {
		return
	}

	n.dispatchLocked(models.Notification{
		Type:   models.NotificationCounterOffer,
		Title:  "New price offer",
		Body:   fmt.Sprintf("You have %d pending offer(s) from riders.", count),
		RideID: ride.ID,
		Sound:  true,
	})
}

// ObserveMessages processes a full chat thread update and returns the unread
// count. An alert fires only on a distinct increase in message count while the
// chat is closed and the newest message is not the user's own.
func (n *Notifier) ObserveMessages(ctx context.Context, rideID string, msgs []models.ChatMessage) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.rideID = rideID
	total := len(msgs)
	prevTotal := n.lastMsgTotal
	hadBaseline := n.msgBaseline
	defer func() {
		n.lastMsgTotal = total
		n.msgBaseline = true
	}()

	if n.chatOpen {
		if err := n.repo.SetSeenMessageCount(ctx, rideID, total); err != nil {
			logger.Error("Failed to persist seen message count",
				logger.String("ride_id", rideID),
				logger.Err(err))
		}
		n.unread = 0
		return 0
	}

	seen, err := n.repo.SeenMessageCount(ctx, rideID)
	if err != nil {
		logger.Error("Failed to read seen message count",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return n.unread
	}

	unread := total - seen
	if unread < 0 {
		unread = 0
	}
	n.unread = unread

	if hadBaseline && total > prevTotal {
		newest := msgs[total-1]
		if newest.SenderID != n.selfID {
			n.dispatchLocked(models.Notification{
				Type:   models.NotificationChatMessage,
				Title:  "New message",
				Body:   newest.Text,
				RideID: rideID,
				Sound:  true,
				Unread: unread,
			})
		}
	}

	return unread
}

// ChatOpened marks the chat UI visible: unread drops to zero and the seen
// count is persisted so a reload does not resurrect the badge.
func (n *Notifier) ChatOpened(ctx context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.chatOpen = true
	n.unread = 0

	if n.rideID == "" {
		return nil
	}
	if err := n.repo.SetSeenMessageCount(ctx, n.rideID, n.lastMsgTotal); err != nil {
		return fmt.Errorf("failed to persist seen message count: %w", err)
	}
	return nil
}

// ChatClosed marks the chat UI hidden
func (n *Notifier) ChatClosed() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.chatOpen = false
}

// Unread returns the current unread chat message count
func (n *Notifier) Unread() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.unread
}

// RatingPrompt surfaces the post-completion rating request
func (n *Notifier) RatingPrompt(ride *models.Ride) {
	n.mu.Lock()
	defer n.mu.Unlock()

	body := "How was your trip?"
	if ride.Rider != nil {
		body = fmt.Sprintf("How was your trip with %s?", ride.Rider.FullName)
	}

	n.dispatchLocked(models.Notification{
		Type:   models.NotificationRatingPrompt,
		Title:  "Rate your ride",
		Body:   body,
		RideID: ride.ID,
	})
}

// Dispatch emits an arbitrary notification through the configured dispatcher
func (n *Notifier) Dispatch(notification models.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.dispatchLocked(notification)
}

func (n *Notifier) dispatchLocked(notification models.Notification) {
	if n.dispatcher == nil {
		return
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = n.now()
	}
	n.dispatcher.Dispatch(notification)
}
