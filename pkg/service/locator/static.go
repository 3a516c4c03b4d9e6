package locator

import (
	"context"
	"sync"
	"time"

	"github.com/lifeline-app/lifeline/pkg/domain/interfaces"
	"github.com/lifeline-app/lifeline/pkg/domain/model"
	"github.com/lifeline-app/lifeline/pkg/domain/types"
)

// Reported horizontal accuracy in meters per requested precision
const (
	highAccuracyMeters   = 10.0
	mediumAccuracyMeters = 50.0
)

// Static is a LocationSource with fixed coordinates. It stands in for a
// platform geolocation capability on hosts that have none, with a
// configurable permission state so the permission flow stays exercisable.
type Static struct {
	lat            float64
	lng            float64
	enabled        bool
	grantOnRequest bool

	mu         sync.Mutex
	permission types.PermissionStatus
	lastKnown  *model.Position
}

var _ interfaces.LocationSource = &Static{}

// Option configures the static location source
type Option func(*Static)

// WithPermission sets the initial permission state
func WithPermission(status types.PermissionStatus) Option {
	return func(s *Static) {
		s.permission = status
	}
}

// WithServiceDisabled simulates location services being off at the OS level
func WithServiceDisabled() Option {
	return func(s *Static) {
		s.enabled = false
	}
}

// WithDenyRequests makes permission requests fail, keeping the denied state
func WithDenyRequests() Option {
	return func(s *Static) {
		s.grantOnRequest = false
	}
}

// New creates a static location source at the given coordinates. By default
// the service is enabled and permission is granted on request.
func New(lat, lng float64, opts ...Option) *Static {
	s := &Static{
		lat:            lat,
		lng:            lng,
		enabled:        true,
		grantOnRequest: true,
		permission:     types.PermissionGranted,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ServiceEnabled reports the configured OS-level service state
func (s *Static) ServiceEnabled(ctx context.Context) bool {
	return s.enabled
}

// Permission returns the current permission state
func (s *Static) Permission(ctx context.Context) (types.PermissionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.permission, nil
}

// RequestPermission grants permission unless requests are configured to be
// denied or the state is permanently denied
func (s *Static) RequestPermission(ctx context.Context) (types.PermissionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.permission == types.PermissionDeniedForever {
		return s.permission, nil
	}
	if s.grantOnRequest {
		s.permission = types.PermissionGranted
	}
	return s.permission, nil
}

// Current returns the fixed position, recording it as last known
func (s *Static) Current(ctx context.Context, accuracy types.Accuracy) (model.Position, error) {
	if err := ctx.Err(); err != nil {
		return model.Position{}, err
	}

	meters := mediumAccuracyMeters
	if accuracy == types.AccuracyHigh {
		meters = highAccuracyMeters
	}

	pos := model.Position{
		Latitude:  s.lat,
		Longitude: s.lng,
		Accuracy:  meters,
		Timestamp: time.Now().UTC(),
	}

	s.mu.Lock()
	s.lastKnown = &pos
	s.mu.Unlock()

	return pos, nil
}

// LastKnown returns the most recently fetched position, or nil before any fetch
func (s *Static) LastKnown(ctx context.Context) (*model.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastKnown == nil {
		return nil, nil
	}
	pos := *s.lastKnown
	return &pos, nil
}
