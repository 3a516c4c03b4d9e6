package usecase

import (
	"context"
	"time"

	"github.com/lifeline-app/lifeline/pkg/domain/interfaces"
	"github.com/lifeline-app/lifeline/pkg/domain/model"
	"github.com/lifeline-app/lifeline/pkg/service/advisor"
)

// MapOpener launches an external map application at a position
type MapOpener interface {
	Open(ctx context.Context, pos model.Position) bool
}

type UseCases struct {
	repo interfaces.Repository

	source    interfaces.LocationSource
	geocoder  interfaces.Geocoder
	opener    MapOpener
	assets    interfaces.AssetStore
	guidePath string
	advisor   advisor.Service
	now       func() time.Time

	Location *LocationUseCase
	Guide    *GuideUseCase
}

type Option func(*UseCases)

// WithLocationSource sets the platform geolocation capability
func WithLocationSource(source interfaces.LocationSource) Option {
	return func(uc *UseCases) {
		uc.source = source
	}
}

// WithGeocoder sets the reverse-geocoding capability. Without one, resolved
// addresses degrade to raw coordinate strings.
func WithGeocoder(geocoder interfaces.Geocoder) Option {
	return func(uc *UseCases) {
		uc.geocoder = geocoder
	}
}

// WithMapOpener sets the external map launch capability
func WithMapOpener(opener MapOpener) Option {
	return func(uc *UseCases) {
		uc.opener = opener
	}
}

// WithAssets sets the asset store and document path of the bundled guide dataset
func WithAssets(store interfaces.AssetStore, path string) Option {
	return func(uc *UseCases) {
		uc.assets = store
		uc.guidePath = path
	}
}

// WithAdvisor sets the LLM-backed guidance capability. Without one, advice
// degrades to static guidance built from the condition record.
func WithAdvisor(svc advisor.Service) Option {
	return func(uc *UseCases) {
		uc.advisor = svc
	}
}

// WithClock overrides the time source (tests only)
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Location = newLocationUseCase(uc.source, uc.geocoder, uc.opener, uc.now)
	uc.Guide = newGuideUseCase(repo, uc.assets, uc.guidePath, uc.advisor)

	return uc
}
