package models

import "time"

// RideStatus represents the lifecycle status of a ride
type RideStatus string

const (
	RideStatusRequested        RideStatus = "REQUESTED"
	RideStatusAccepted         RideStatus = "ACCEPTED"
	RideStatusArrivedAtPickup  RideStatus = "ARRIVED_AT_PICKUP"
	RideStatusPickedUp         RideStatus = "PICKED_UP"
	RideStatusArrivedAtDropoff RideStatus = "ARRIVED_AT_DROPOFF"
	RideStatusCompleted        RideStatus = "COMPLETED"
	RideStatusCancelled        RideStatus = "CANCELLED"
)

// IsTerminal reports whether no further transitions follow this status
func (s RideStatus) IsTerminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// IsValid reports whether the status is one of the enumerated lifecycle values
func (s RideStatus) IsValid() bool {
	switch s {
	case RideStatusRequested, RideStatusAccepted, RideStatusArrivedAtPickup,
		RideStatusPickedUp, RideStatusArrivedAtDropoff, RideStatusCompleted,
		RideStatusCancelled:
		return true
	}
	return false
}

// Ride represents a ride record as reported by the ride service
type Ride struct {
	ID             string         `json:"id"`
	Status         RideStatus     `json:"status"`
	Pickup         Location       `json:"pickup"`
	Dropoff        Location       `json:"dropoff"`
	PickupAddress  string         `json:"pickup_address"`
	DropoffAddress string         `json:"dropoff_address"`
	Fare           float64        `json:"fare"`
	DistanceKm     float64        `json:"distance_km"`
	DurationMin    float64        `json:"duration_min"`
	Rider          *RiderSummary  `json:"rider,omitempty"`
	Offers         []CounterOffer `json:"offers,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// RiderSummary identifies the rider (driver) assigned to a ride
type RiderSummary struct {
	ID       string  `json:"id"`
	FullName string  `json:"full_name"`
	Phone    string  `json:"phone"`
	Plate    string  `json:"plate"`
	Rating   float64 `json:"rating"`
}

// CounterOffer is a rider-submitted price offer on a requested ride
type CounterOffer struct {
	RiderID   string    `json:"rider_id"`
	RiderName string    `json:"rider_name"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// RideRequest carries the booking form input for a new ride
type RideRequest struct {
	Pickup         Location `json:"pickup"`
	Dropoff        Location `json:"dropoff"`
	PickupAddress  string   `json:"pickup_address"`
	DropoffAddress string   `json:"dropoff_address"`
	Fare           float64  `json:"fare"`
	DistanceKm     float64  `json:"distance_km"`
	DurationMin    float64  `json:"duration_min"`
	PaymentMethod  string   `json:"payment_method"`
}

// RideSnapshot is the reconciled, best-known view of the active ride.
// Owned exclusively by the reconciler; consumers receive copies.
type RideSnapshot struct {
	Ride          *Ride          `json:"ride"`
	RiderLocation *RiderLocation `json:"rider_location,omitempty"`
	Validated     bool           `json:"validated"`
	Unread        int            `json:"unread"`
	RatingPending bool           `json:"rating_pending"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
