package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/delivermi/rider-app/internal/pkg/models"
	"github.com/delivermi/rider-app/services/rider/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingDispatcher records notifications in order for assertions
type capturingDispatcher struct {
	notifications []models.Notification
}

func (d *capturingDispatcher) Dispatch(n models.Notification) {
	d.notifications = append(d.notifications, n)
}

func TestNotifier_StatusTransitionDispatchesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStateRepo(ctrl)
	dispatcher := &capturingDispatcher{}
	notifier := NewNotifier(repo, dispatcher, "user-1")

	ride := &models.Ride{ID: "ride-1", Status: models.RideStatusRequested}

	// First observation establishes the baseline silently.
	notifier.ObserveRide(ride)
	assert.Empty(t, dispatcher.notifications)

	ride.Status = models.RideStatusAccepted
	notifier.ObserveRide(ride)
	require.Len(t, dispatcher.notifications, 1)
	assert.Equal(t, models.NotificationStatusChange, dispatcher.notifications[0].Type)
	assert.Equal(t, "Rider on the way", dispatcher.notifications[0].Title)
	assert.True(t, dispatcher.notifications[0].Sound)
	assert.False(t, dispatcher.notifications[0].CreatedAt.IsZero())

	// Re-observing the same status must not re-alert.
	notifier.ObserveRide(ride)
	notifier.ObserveRide(ride)
	assert.Len(t, dispatcher.notifications, 1)
}

func TestNotifier_EveryLifecycleTransitionAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStateRepo(ctrl)
	dispatcher := &capturingDispatcher{}
	notifier := NewNotifier(repo, dispatcher, "user-1")

	ride := &models.Ride{ID: "ride-1", Status: models.RideStatusRequested}
	notifier.ObserveRide(ride)

	sequence := []models.RideStatus{
		models.RideStatusAccepted,
		models.RideStatusArrivedAtPickup,
		models.RideStatusPickedUp,
		models.RideStatusArrivedAtDropoff,
		models.RideStatusCompleted,
	}
	for _, status := range sequence {
		ride.Status = status
		notifier.ObserveRide(ride)
	}

	require.Len(t, dispatcher.notifications, len(sequence))
	assert.Equal(t, "Trip completed", dispatcher.notifications[len(sequence)-1].Title)
}

func TestNotifier_TransitionToUnmappedStatusIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStateRepo(ctrl)
	dispatcher := &capturingDispatcher{}
	notifier := NewNotifier(repo, dispatcher, "user-1")

	ride := &models.Ride{ID: "ride-1", Status: models.RideStatusAccepted}
	notifier.ObserveRide(ride)

	ride.Status = models.RideStatusRequested
	notifier.ObserveRide(ride)

	assert.Empty(t, dispatcher.notifications)
}

func TestNotifier_HistoricalOffersDoNotAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStateRepo(ctrl)
	dispatcher := &capturingDispatcher{}
	notifier := NewNotifier(repo, dispatcher, "user-1")

	ride := &models.Ride{
		ID:     "ride-1",
		Status: models.RideStatusRequested,
		Offers: []models.CounterOffer{
			{RiderID: "driver-1", Amount: 20000},
			{RiderID: "driver-2", Amount: 21000},
		},
	}

	// Offers already present at load time are history, not news.
	notifier.ObserveRide(ride)
	assert.Empty(t, dispatcher.notifications)
}

func TestNotifier_OfferCountIncreaseAlertsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStateRepo(ctrl)
	dispatcher := &capturingDispatcher{}
	notifier := NewNotifier(repo, dispatcher, "user-1")

	ride := &models.Ride{ID: "ride-1", Status: models.RideStatusRequested}
	notifier.ObserveRide(ride)

	ride.Offers = []models.CounterOffer{{RiderID: "driver-1", Amount: 20000}}
	notifier.ObserveRide(ride)
	require.Len(t, dispatcher.notifications, 1)
	assert.Equal(t, models.NotificationCounterOffer, dispatcher.notifications[0].Type)

	// Same count again, no repeat.
	notifier.ObserveRide(ride)
	assert.Len(t, dispatcher.notifications, 1)

	// A withdrawn offer lowers the watermark; no alert either.
	ride.Offers = nil
	notifier.ObserveRide(ride)
	assert.Len(t, dispatcher.notifications, 1)

	// Next increase from the lowered watermark alerts again.
	ride.Offers = []models.CounterOffer{{RiderID: "driver-3", Amount: 23000}}
	notifier.ObserveRide(ride)
	assert.Len(t, dispatcher.notifications, 2)
}

func TestNotifier_UnreadDerivedFromPersistedSeenCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStateRepo(ctrl)
	dispatcher := &capturingDispatcher{}
	notifier := NewNotifier(repo, dispatcher, "user-1")

	msgs := []models.ChatMessage{
		{ID: "m1", SenderID: "driver-1", Text: "otw"},
		{ID: "m2", SenderID: "user-1", Text: "ok"},
		{ID: "m3", SenderID: "driver-1", Text: "5 min"},
		{ID: "m4", SenderID: "driver-1", Text: "in front"},
		{ID: "m5", SenderID: "driver-1", Text: "grey car"},
	}

	// Two messages were seen before the restart; the badge must survive it.
	repo.EXPECT().SeenMessageCount(gomock.Any(), "ride-1").Return(2, nil)

	unread := notifier.ObserveMessages(context.Background(), "ride-1", msgs)

	assert.Equal(t, 3, unread)
	assert.Equal(t, 3, notifier.Unread())
	// First observation is a baseline, not a new-message event.
	assert.Empty(t, dispatcher.notifications)
}

func TestNotifier_NewForeignMessageAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStateRepo(ctrl)
	dispatcher := &capturingDispatcher{}
	notifier := NewNotifier(repo, dispatcher, "user-1")

	repo.EXPECT().SeenMessageCount(gomock.Any(), "ride-1").Return(0, nil).Times(2)

	msgs := []models.ChatMessage{{ID: "m1", SenderID: "driver-1", Text: "otw"}}
	notifier.ObserveMessages(context.Background(), "ride-1", msgs)
	assert.Empty(t, dispatcher.notifications)

	msgs = append(msgs, models.ChatMessage{ID: "m2", SenderID: "driver-1", Text: "arrived"})
	unread := notifier.ObserveMessages(context.Background(), "ride-1", msgs)

	assert.Equal(t, 2, unread)
	require.Len(t, dispatcher.notifications, 1)
	assert.Equal(t, models.NotificationChatMessage, dispatcher.notifications[0].Type)
	assert.Equal(t, "arrived", dispatcher.notifications[0].Body)
	assert.Equal(t, 2, dispatcher.notifications[0].Unread)
}

func TestNotifier_OwnMessageDoesNotAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStateRepo(ctrl)
	dispatcher := &capturingDispatcher{}
	notifier := NewNotifier(repo, dispatcher, "user-1")

	repo.EXPECT().SeenMessageCount(gomock.Any(), "ride-1").Return(0, nil).Times(2)

	msgs := []models.ChatMessage{{ID: "m1", SenderID: "driver-1", Text: "otw"}}
	notifier.ObserveMessages(context.Background(), "ride-1", msgs)

	msgs = append(msgs, models.ChatMessage{ID: "m2", SenderID: "user-1", Text: "ok, waiting"})
	notifier.ObserveMessages(context.Background(), "ride-1", msgs)

	assert.Empty(t, dispatcher.notifications)
}

func TestNotifier_RedeliveredThreadDoesNotReAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStateRepo(ctrl)
	dispatcher := &capturingDispatcher{}
	notifier := NewNotifier(repo, dispatcher, "user-1")

	repo.EXPECT().SeenMessageCount(gomock.Any(), "ride-1").Return(0, nil).Times(3)

	msgs := []models.ChatMessage{
		{ID: "m1", SenderID: "driver-1", Text: "otw"},
		{ID: "m2", SenderID: "driver-1", Text: "arrived"},
	}
	notifier.ObserveMessages(context.Background(), "ride-1", msgs)
	notifier.ObserveMessages(context.Background(), "ride-1", msgs)
	notifier.ObserveMessages(context.Background(), "ride-1", msgs)

	assert.Empty(t, dispatcher.notifications)
}

func TestNotifier_ChatOpenZeroesAndPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStateRepo(ctrl)
	dispatcher := &capturingDispatcher{}
	notifier := NewNotifier(repo, dispatcher, "user-1")

	repo.EXPECT().SeenMessageCount(gomock.Any(), "ride-1").Return(0, nil)

	msgs := []models.ChatMessage{
		{ID: "m1", SenderID: "driver-1", Text: "otw"},
		{ID: "m2", SenderID: "driver-1", Text: "arrived"},
	}
	notifier.ObserveMessages(context.Background(), "ride-1", msgs)
	assert.Equal(t, 2, notifier.Unread())

	repo.EXPECT().SetSeenMessageCount(gomock.Any(), "ride-1", 2).Return(nil)
	require.NoError(t, notifier.ChatOpened(context.Background()))
	assert.Equal(t, 0, notifier.Unread())

	// While the chat is open every thread update is immediately seen.
	repo.EXPECT().SetSeenMessageCount(gomock.Any(), "ride-1", 3).Return(nil)
	msgs = append(msgs, models.ChatMessage{ID: "m3", SenderID: "driver-1", Text: "grey car"})
	unread := notifier.ObserveMessages(context.Background(), "ride-1", msgs)

	assert.Equal(t, 0, unread)
	assert.Empty(t, dispatcher.notifications)

	// Closed again: new messages count as unread once more.
	notifier.ChatClosed()
	repo.EXPECT().SeenMessageCount(gomock.Any(), "ride-1").Return(3, nil)
	msgs = append(msgs, models.ChatMessage{ID: "m4", SenderID: "driver-1", Text: "here"})
	unread = notifier.ObserveMessages(context.Background(), "ride-1", msgs)

	assert.Equal(t, 1, unread)
	assert.Len(t, dispatcher.notifications, 1)
}

func TestNotifier_SeenCountReadFailureKeepsPriorUnread(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStateRepo(ctrl)
	dispatcher := &capturingDispatcher{}
	notifier := NewNotifier(repo, dispatcher, "user-1")

	repo.EXPECT().SeenMessageCount(gomock.Any(), "ride-1").Return(0, nil)
	msgs := []models.ChatMessage{{ID: "m1", SenderID: "driver-1", Text: "otw"}}
	notifier.ObserveMessages(context.Background(), "ride-1", msgs)
	assert.Equal(t, 1, notifier.Unread())

	repo.EXPECT().SeenMessageCount(gomock.Any(), "ride-1").Return(0, errors.New("redis down"))
	msgs = append(msgs, models.ChatMessage{ID: "m2", SenderID: "driver-1", Text: "arrived"})
	unread := notifier.ObserveMessages(context.Background(), "ride-1", msgs)

	assert.Equal(t, 1, unread)
	assert.Empty(t, dispatcher.notifications)
}

func TestNotifier_RatingPromptNamesRider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStateRepo(ctrl)
	dispatcher := &capturingDispatcher{}
	notifier := NewNotifier(repo, dispatcher, "user-1")

	notifier.RatingPrompt(&models.Ride{
		ID:    "ride-1",
		Rider: &models.RiderSummary{ID: "driver-1", FullName: "Budi"},
	})

	require.Len(t, dispatcher.notifications, 1)
	assert.Equal(t, models.NotificationRatingPrompt, dispatcher.notifications[0].Type)
	assert.Contains(t, dispatcher.notifications[0].Body, "Budi")
}

func TestNotifier_ResetDropsBaselines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStateRepo(ctrl)
	dispatcher := &capturingDispatcher{}
	notifier := NewNotifier(repo, dispatcher, "user-1")

	ride := &models.Ride{ID: "ride-1", Status: models.RideStatusAccepted}
	notifier.ObserveRide(ride)

	notifier.Reset()

	// After a reset the next observation is a baseline again, even with a
	// different status: the transition belongs to a different ride.
	ride = &models.Ride{ID: "ride-2", Status: models.RideStatusPickedUp}
	notifier.ObserveRide(ride)

	assert.Empty(t, dispatcher.notifications)
	assert.Equal(t, 0, notifier.Unread())
}
