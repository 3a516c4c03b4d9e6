package maps

import (
	"context"
	"runtime"

	"github.com/lifeline-app/lifeline/pkg/domain/interfaces"
	"github.com/lifeline-app/lifeline/pkg/domain/model"
	"github.com/lifeline-app/lifeline/pkg/utils/logging"
)

// Service selects and launches a map URI for a position. OS-restricted
// candidates are skipped on other systems; the first launchable candidate is
// launched and its outcome decides the overall result.
type Service struct {
	launcher interfaces.Launcher
	goos     string
}

// Option configures the map service
type Option func(*Service)

// WithGOOS overrides the detected OS (tests only)
func WithGOOS(goos string) Option {
	return func(s *Service) {
		s.goos = goos
	}
}

// New creates a map service on top of the given launcher
func New(launcher interfaces.Launcher, opts ...Option) *Service {
	s := &Service{
		launcher: launcher,
		goos:     runtime.GOOS,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open launches the best available map URI at the given position and reports
// whether a launch succeeded. Launch failures are logged, never propagated.
func (s *Service) Open(ctx context.Context, pos model.Position) bool {
	for _, candidate := range Candidates(pos.Latitude, pos.Longitude) {
		if candidate.GOOS != "" && candidate.GOOS != s.goos {
			continue
		}
		if !s.launcher.CanLaunch(ctx, candidate.URI) {
			continue
		}

		if err := s.launcher.Launch(ctx, candidate.URI); err != nil {
			logging.From(ctx).Warn("failed to launch map URI",
				"uri", candidate.URI, "error", err.Error())
			return false
		}

		logging.From(ctx).Info("opened location in map", "uri", candidate.URI)
		return true
	}

	logging.From(ctx).Warn("no launchable map URI on this host")
	return false
}
