package types

// PermissionStatus represents the device location permission state
type PermissionStatus string

const (
	PermissionGranted       PermissionStatus = "GRANTED"
	PermissionDenied        PermissionStatus = "DENIED"
	PermissionDeniedForever PermissionStatus = "DENIED_FOREVER"
)

// Usable reports whether the permission allows a location fetch
func (p PermissionStatus) Usable() bool {
	return p == PermissionGranted
}

// String returns the string representation of the permission status
func (p PermissionStatus) String() string {
	return string(p)
}

// LocationOutcome classifies the result of a location resolution so that
// callers can branch on kind instead of matching display strings
type LocationOutcome string

const (
	// OutcomeResolved means a fresh or cached position was resolved to an address
	OutcomeResolved LocationOutcome = "RESOLVED"
	// OutcomeDenied means location services are off or permission was refused
	OutcomeDenied LocationOutcome = "DENIED"
	// OutcomeTimeout means the fetch timed out and no last-known position was available
	OutcomeTimeout LocationOutcome = "TIMEOUT"
	// OutcomeUnavailable means the fetch failed for any other reason
	OutcomeUnavailable LocationOutcome = "UNAVAILABLE"
)

// String returns the string representation of the outcome
func (o LocationOutcome) String() string {
	return string(o)
}

// Accuracy is the requested precision of a device position fetch
type Accuracy string

const (
	AccuracyHigh   Accuracy = "HIGH"
	AccuracyMedium Accuracy = "MEDIUM"
)

// String returns the string representation of the accuracy
func (a Accuracy) String() string {
	return string(a)
}
