package usecase

import (
	"testing"
	"time"

	"github.com/delivermi/rider-app/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSnapshot_NilIncomingKeepsCurrent(t *testing.T) {
	current := &models.Ride{ID: "ride-1", Status: models.RideStatusAccepted}

	merged := mergeSnapshot(current, SourcePoll, nil)

	assert.Same(t, current, merged)
}

func TestMergeSnapshot_FirstPayloadAdoptedWholesale(t *testing.T) {
	incoming := &models.Ride{
		ID:     "ride-1",
		Status: models.RideStatusRequested,
		Fare:   25000,
	}

	merged := mergeSnapshot(nil, SourcePoll, incoming)

	require.NotNil(t, merged)
	assert.Equal(t, "ride-1", merged.ID)
	assert.Equal(t, models.RideStatusRequested, merged.Status)
	assert.NotSame(t, incoming, merged)
}

func TestMergeSnapshot_TerminalStatusProtection(t *testing.T) {
	tests := []struct {
		name       string
		current    models.RideStatus
		source     Source
		incoming   models.RideStatus
		wantStatus models.RideStatus
	}{
		{
			name:       "poll cannot overwrite completed",
			current:    models.RideStatusCompleted,
			source:     SourcePoll,
			incoming:   models.RideStatusPickedUp,
			wantStatus: models.RideStatusCompleted,
		},
		{
			name:       "list cannot overwrite cancelled",
			current:    models.RideStatusCancelled,
			source:     SourceList,
			incoming:   models.RideStatusAccepted,
			wantStatus: models.RideStatusCancelled,
		},
		{
			name:       "push may change terminal status",
			current:    models.RideStatusCompleted,
			source:     SourcePush,
			incoming:   models.RideStatusCancelled,
			wantStatus: models.RideStatusCancelled,
		},
		{
			name:       "poll advances non-terminal status",
			current:    models.RideStatusAccepted,
			source:     SourcePoll,
			incoming:   models.RideStatusPickedUp,
			wantStatus: models.RideStatusPickedUp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := &models.Ride{ID: "ride-1", Status: tt.current}
			incoming := &models.Ride{ID: "ride-1", Status: tt.incoming}

			merged := mergeSnapshot(current, tt.source, incoming)

			require.NotNil(t, merged)
			assert.Equal(t, tt.wantStatus, merged.Status)
		})
	}
}

func TestMergeSnapshot_InvalidStatusKeepsCurrent(t *testing.T) {
	current := &models.Ride{ID: "ride-1", Status: models.RideStatusAccepted}
	incoming := &models.Ride{ID: "ride-1", Status: "BOGUS"}

	merged := mergeSnapshot(current, SourcePoll, incoming)

	require.NotNil(t, merged)
	assert.Equal(t, models.RideStatusAccepted, merged.Status)
}

func TestMergeSnapshot_PartialDocumentFallsBack(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	current := &models.Ride{
		ID:        "ride-1",
		Status:    models.RideStatusAccepted,
		Rider:     &models.RiderSummary{ID: "driver-1", FullName: "Budi"},
		CreatedAt: createdAt,
	}
	incoming := &models.Ride{ID: "ride-1", Status: models.RideStatusPickedUp}

	merged := mergeSnapshot(current, SourcePush, incoming)

	require.NotNil(t, merged)
	require.NotNil(t, merged.Rider)
	assert.Equal(t, "driver-1", merged.Rider.ID)
	assert.Equal(t, createdAt, merged.CreatedAt)
}

func TestDedupOffers_KeepsLatestPerRider(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	offers := []models.CounterOffer{
		{RiderID: "driver-1", Amount: 20000, CreatedAt: base},
		{RiderID: "driver-2", Amount: 22000, CreatedAt: base.Add(1 * time.Minute)},
		{RiderID: "driver-1", Amount: 18000, CreatedAt: base.Add(2 * time.Minute)},
	}

	deduped := dedupOffers(offers)

	require.Len(t, deduped, 2)
	assert.Equal(t, "driver-2", deduped[0].RiderID)
	assert.Equal(t, "driver-1", deduped[1].RiderID)
	assert.Equal(t, float64(18000), deduped[1].Amount)
}

func TestDedupOffers_EmptyInput(t *testing.T) {
	assert.Nil(t, dedupOffers(nil))
	assert.Nil(t, dedupOffers([]models.CounterOffer{}))
}

func TestCopyRide_DeepCopiesMutableFields(t *testing.T) {
	original := &models.Ride{
		ID:     "ride-1",
		Status: models.RideStatusAccepted,
		Rider:  &models.RiderSummary{ID: "driver-1"},
		Offers: []models.CounterOffer{{RiderID: "driver-2", Amount: 15000}},
	}

	clone := copyRide(original)

	require.NotNil(t, clone)
	clone.Rider.ID = "mutated"
	clone.Offers[0].Amount = 0

	assert.Equal(t, "driver-1", original.Rider.ID)
	assert.Equal(t, float64(15000), original.Offers[0].Amount)
}

func TestCopyRide_Nil(t *testing.T) {
	assert.Nil(t, copyRide(nil))
}
