package interfaces

import (
	"context"

	"github.com/lifeline-app/lifeline/pkg/domain/model"
	"github.com/lifeline-app/lifeline/pkg/domain/types"
)

// LocationSource abstracts the platform geolocation capability.
//
// Current must honor the deadline of the passed context; the caller
// distinguishes a timeout from other failures via context.DeadlineExceeded.
type LocationSource interface {
	// ServiceEnabled reports whether location services are enabled at the OS level
	ServiceEnabled(ctx context.Context) bool

	// Permission returns the current location permission state
	Permission(ctx context.Context) (types.PermissionStatus, error)

	// RequestPermission asks the user for location permission and returns the
	// resulting state. Called at most once per resolution attempt.
	RequestPermission(ctx context.Context) (types.PermissionStatus, error)

	// Current fetches a fresh device position with the requested accuracy
	Current(ctx context.Context, accuracy types.Accuracy) (model.Position, error)

	// LastKnown returns the most recent cached device position without a
	// fresh fetch, or nil when none is available
	LastKnown(ctx context.Context) (*model.Position, error)
}
