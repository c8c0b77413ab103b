package usecase

import (
	"sort"

	"github.com/delivermi/rider-app/internal/pkg/models"
)

// Source identifies which channel produced a ride payload. Precedence only
// matters for terminal status: a snapshot that went terminal through the push
// channel is never overwritten by a lower-ranked source.
type Source int

const (
	SourcePoll Source = iota
	SourcePush
	SourceList
)

func (s Source) String() string {
	switch s {
	case SourcePoll:
		return "poll"
	case SourcePush:
		return "push"
	case SourceList:
		return "list"
	}
	return "unknown"
}

// mergeSnapshot folds an incoming ride payload into the current snapshot and
// returns a fresh copy. Most-recent-write-wins for non-terminal fields; once
// the current snapshot is terminal, only the push source may change status.
// Counter-offers are deduplicated per offering rider, keeping the most recent.
func mergeSnapshot(current *models.Ride, src Source, incoming *models.Ride) *models.Ride {
	if incoming == nil {
		return current
	}

	merged := *incoming
	merged.Offers = dedupOffers(incoming.Offers)

	if current != nil {
		if current.Status.IsTerminal() && src != SourcePush {
			merged.Status = current.Status
		} else if !incoming.Status.IsValid() {
			merged.Status = current.Status
		}
		// Partial documents may omit slow-changing fields.
		if merged.Rider == nil {
			merged.Rider = current.Rider
		}
		if merged.CreatedAt.IsZero() {
			merged.CreatedAt = current.CreatedAt
		}
	}

	return &merged
}

// dedupOffers keeps only the most recent offer per rider, ordered oldest first
func dedupOffers(offers []models.CounterOffer) []models.CounterOffer {
	if len(offers) == 0 {
		return nil
	}

	latest := make(map[string]models.CounterOffer, len(offers))
	for _, offer := range offers {
		existing, ok := latest[offer.RiderID]
		if !ok || offer.CreatedAt.After(existing.CreatedAt) {
			latest[offer.RiderID] = offer
		}
	}

	deduped := make([]models.CounterOffer, 0, len(latest))
	for _, offer := range latest {
		deduped = append(deduped, offer)
	}
	sort.Slice(deduped, func(i, j int) bool {
		if deduped[i].CreatedAt.Equal(deduped[j].CreatedAt) {
			return deduped[i].RiderID < deduped[j].RiderID
		}
		return deduped[i].CreatedAt.Before(deduped[j].CreatedAt)
	})

	return deduped
}

// copyRide returns a defensive copy for read-only consumers
func copyRide(ride *models.Ride) *models.Ride {
	if ride == nil {
		return nil
	}

	clone := *ride
	if ride.Rider != nil {
		riderCopy := *ride.Rider
		clone.Rider = &riderCopy
	}
	if len(ride.Offers) > 0 {
		clone.Offers = make([]models.CounterOffer, len(ride.Offers))
		copy(clone.Offers, ride.Offers)
	}

	return &clone
}
