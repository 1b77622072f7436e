package utils

// Application Constants
const (
	AppName    = "WildRydes"
	AppVersion = "1.0.0"

	// Request correlation
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"

	// Caller identity
	CallerIdentityKey = "caller_identity"
	GuestRiderPrefix  = "guest-"

	// Ride ID generation
	RideIDRandomBytes = 16

	// Error messages
	ErrBodyRequired     = "Request body is required"
	ErrPickupRequired   = "PickupLocation is required"
	ErrCoordinateTypes  = "PickupLocation must include valid Latitude and Longitude numbers"
	ErrLatitudeRange    = "Latitude must be between -90 and 90"
	ErrLongitudeRange   = "Longitude must be between -180 and 180"
	ErrDuplicateRide    = "Duplicate ride request"
	ErrStorageThrottled = "Service temporarily unavailable"
	ErrStorageConfig    = "Database configuration error"
	ErrRideProcessing   = "Failed to process ride request"
)
