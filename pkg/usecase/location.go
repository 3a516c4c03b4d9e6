package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/lifeline-app/lifeline/pkg/domain/interfaces"
	"github.com/lifeline-app/lifeline/pkg/domain/model"
	"github.com/lifeline-app/lifeline/pkg/domain/types"
	"github.com/lifeline-app/lifeline/pkg/utils/logging"
)

const (
	// cacheTTL is the freshness window of a resolved location
	cacheTTL = 60 * time.Second
	// fetchTimeout bounds a high-accuracy position fetch
	fetchTimeout = 15 * time.Second
	// mapFetchTimeout bounds the medium-accuracy fetch used for map launches
	mapFetchTimeout = 10 * time.Second
)

// noGeocoderMarker annotates addresses resolved without a geocoding capability
const noGeocoderMarker = " (no geocoder)"

// LocationUseCase resolves the device position to a human-readable address
// and opens external map applications. All public operations degrade to typed
// outcomes; they never return an error.
type LocationUseCase struct {
	source   interfaces.LocationSource
	geocoder interfaces.Geocoder
	opener   MapOpener
	now      func() time.Time

	// cacheMu guards the three cache fields, which are only valid together.
	// It is never held across a blocking call.
	cacheMu    sync.Mutex
	cachedPos  *model.Position
	cachedAddr string
	cachedAt   time.Time

	fetchGroup singleflight.Group
}

func newLocationUseCase(source interfaces.LocationSource, geocoder interfaces.Geocoder, opener MapOpener, now func() time.Time) *LocationUseCase {
	return &LocationUseCase{
		source:   source,
		geocoder: geocoder,
		opener:   opener,
		now:      now,
	}
}

// ResolvePermission runs the full permission sequence: service-enabled check,
// permission read, and a single request when denied. It returns whether a
// location fetch is currently allowed.
func (uc *LocationUseCase) ResolvePermission(ctx context.Context) bool {
	if uc.source == nil {
		logging.From(ctx).Warn("no location source configured")
		return false
	}

	if !uc.source.ServiceEnabled(ctx) {
		logging.From(ctx).Warn("location services are disabled")
		return false
	}

	status, err := uc.source.Permission(ctx)
	if err != nil {
		logging.From(ctx).Warn("failed to read location permission", "error", err.Error())
		return false
	}

	switch status {
	case types.PermissionDeniedForever:
		return false
	case types.PermissionDenied:
		status, err = uc.source.RequestPermission(ctx)
		if err != nil {
			logging.From(ctx).Warn("location permission request failed", "error", err.Error())
			return false
		}
	}

	return status.Usable()
}

// CurrentLocation resolves the current device location to an address. A
// cached result under 60 seconds old is returned without a device call;
// otherwise a fresh high-accuracy fetch runs with a 15-second timeout,
// falling back to the last-known position (marked stale) on timeout.
// Concurrent calls share a single in-flight fetch.
func (uc *LocationUseCase) CurrentLocation(ctx context.Context) model.LocationResult {
	if !uc.ResolvePermission(ctx) {
		return model.Denied()
	}

	if pos, addr, ok := uc.freshCache(); ok {
		logging.From(ctx).Debug("location cache hit", "address", addr)
		return model.Resolved(pos, addr)
	}

	result, _, shared := uc.fetchGroup.Do("current", func() (any, error) {
		return uc.fetchAndCache(ctx), nil
	})
	if shared {
		logging.From(ctx).Debug("location fetch shared with concurrent caller")
	}

	return result.(model.LocationResult)
}

func (uc *LocationUseCase) fetchAndCache(ctx context.Context) model.LocationResult {
	fetchID := uuid.Must(uuid.NewV7()).String()
	logger := logging.From(ctx).With("fetch_id", fetchID)

	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	pos, err := uc.source.Current(fetchCtx, types.AccuracyHigh)
	if err == nil {
		addr := uc.resolveAddress(ctx, pos)
		uc.storeCache(pos, addr)
		logger.Info("location resolved", "address", addr)
		return model.Resolved(pos, addr)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		logger.Warn("location fetch timed out, trying last known position")

		last, lastErr := uc.source.LastKnown(ctx)
		if lastErr != nil {
			logger.Warn("last known position lookup failed", "error", lastErr.Error())
		}
		if last != nil {
			addr := uc.resolveAddress(ctx, *last)
			return model.ResolvedStale(*last, addr)
		}
		return model.Timeout()
	}

	logger.Warn("location fetch failed", "error", err.Error())
	return model.Unavailable()
}

// resolveAddress reverse-geocodes a position, degrading to the raw coordinate
// string on any failure or empty result. Geocode errors are logged, never
// propagated.
func (uc *LocationUseCase) resolveAddress(ctx context.Context, pos model.Position) string {
	fallback := pos.Coordinates()

	if uc.geocoder == nil {
		return fallback + noGeocoderMarker
	}

	placemarks, err := uc.geocoder.ReverseGeocode(ctx, pos.Latitude, pos.Longitude)
	if err != nil {
		logging.From(ctx).Warn("reverse geocoding failed", "error", err.Error())
		return fallback
	}

	for _, pm := range placemarks {
		if addr := pm.Format(); addr != "" {
			return addr
		}
	}

	return fallback
}

// OpenInMap opens an external map application at the device position. It
// prefers the cached position regardless of freshness; otherwise it re-checks
// permission and fetches with medium accuracy and a 10-second timeout,
// falling back to the last-known position.
func (uc *LocationUseCase) OpenInMap(ctx context.Context) bool {
	pos := uc.cachedPosition()

	if pos == nil {
		if !uc.ResolvePermission(ctx) {
			return false
		}

		fetchCtx, cancel := context.WithTimeout(ctx, mapFetchTimeout)
		fetched, err := uc.source.Current(fetchCtx, types.AccuracyMedium)
		cancel()

		if err == nil {
			pos = &fetched
		} else {
			logging.From(ctx).Warn("position fetch for map failed, trying last known",
				"error", err.Error())
			last, lastErr := uc.source.LastKnown(ctx)
			if lastErr != nil {
				logging.From(ctx).Warn("last known position lookup failed", "error", lastErr.Error())
			}
			pos = last
		}
	}

	if pos == nil {
		logging.From(ctx).Warn("no position available to open in map")
		return false
	}

	if uc.opener == nil {
		logging.From(ctx).Warn("no map opener configured")
		return false
	}

	return uc.opener.Open(ctx, *pos)
}

// freshCache returns the cached position and address while the cache is
// under the freshness window
func (uc *LocationUseCase) freshCache() (model.Position, string, bool) {
	uc.cacheMu.Lock()
	defer uc.cacheMu.Unlock()

	if uc.cachedPos == nil {
		return model.Position{}, "", false
	}
	if uc.now().Sub(uc.cachedAt) >= cacheTTL {
		return model.Position{}, "", false
	}

	return *uc.cachedPos, uc.cachedAddr, true
}

// cachedPosition returns the cached position without a freshness check
func (uc *LocationUseCase) cachedPosition() *model.Position {
	uc.cacheMu.Lock()
	defer uc.cacheMu.Unlock()

	if uc.cachedPos == nil {
		return nil
	}
	pos := *uc.cachedPos
	return &pos
}

func (uc *LocationUseCase) storeCache(pos model.Position, addr string) {
	uc.cacheMu.Lock()
	defer uc.cacheMu.Unlock()

	uc.cachedPos = &pos
	uc.cachedAddr = addr
	uc.cachedAt = uc.now()
}
