package models

// RideDocEvent is one push update from the ride document subscription.
// Exists is false when the backend reports the document as missing; that is
// treated as a transient condition by the reconciler, never as deletion.
type RideDocEvent struct {
	Ride             *Ride `json:"ride,omitempty"`
	Exists           bool  `json:"exists"`
	PermissionDenied bool  `json:"permission_denied"`
}

// RiderLocationEvent is one push update from the rider location subscription
type RiderLocationEvent struct {
	RiderID  string        `json:"rider_id"`
	Location RiderLocation `json:"location"`
}

// ChatEvent is one push update from the message collection subscription.
// Messages is the full ordered thread, not a delta.
type ChatEvent struct {
	RideID   string        `json:"ride_id"`
	Messages []ChatMessage `json:"messages"`
}
