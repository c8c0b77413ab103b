package constants

// WebSocket events pushed to the rider UI
const (
	EventRideState    = "ride_state"
	EventRiderMoved   = "rider_moved"
	EventNotification = "notification"
	EventError        = "error"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "INVALID_FORMAT"
	ErrorUnauthorized  = "UNAUTHORIZED"
	ErrorInternal      = "INTERNAL_ERROR"
)
