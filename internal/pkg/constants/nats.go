package constants

// NATS subject prefixes for the realtime backend. Each document stream is a
// subject with the entity identifier appended.
const (
	// Ride document updates, one subject per ride: ride.doc.<ride_id>
	SubjectRideDocPrefix = "ride.doc."

	// Rider GPS updates, one subject per rider: rider.location.<rider_id>
	SubjectRiderLocationPrefix = "rider.location."

	// Ride chat threads, one subject per ride: ride.messages.<ride_id>
	SubjectRideMessagesPrefix = "ride.messages."
)
