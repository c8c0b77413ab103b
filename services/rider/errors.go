package rider

import "errors"

// ErrPermissionDenied indicates the ride reference does not belong to the
// current authenticated identity. Treated as definitive, not transient.
var ErrPermissionDenied = errors.New("permission denied")

// ErrNoActiveRide indicates an operation that requires a tracked ride was
// invoked while none is active.
var ErrNoActiveRide = errors.New("no active ride")
