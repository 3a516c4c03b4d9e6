package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lifeline-app/lifeline/pkg/domain/interfaces"
	"github.com/lifeline-app/lifeline/pkg/service/geocode"
	"github.com/lifeline-app/lifeline/pkg/service/locator"
	"github.com/lifeline-app/lifeline/pkg/utils/logging"
)

// Locator holds CLI flags for the location source and geocoder
type Locator struct {
	latitude       float64
	longitude      float64
	geocodeEnabled bool
	geocodeBaseURL string
	userAgent      string
}

// Flags returns CLI flags for location configuration
func (l *Locator) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.FloatFlag{
			Name:        "lat",
			Usage:       "Static latitude of this device",
			Sources:     cli.EnvVars("LIFELINE_LAT"),
			Destination: &l.latitude,
		},
		&cli.FloatFlag{
			Name:        "lng",
			Usage:       "Static longitude of this device",
			Sources:     cli.EnvVars("LIFELINE_LNG"),
			Destination: &l.longitude,
		},
		&cli.BoolFlag{
			Name:        "geocode",
			Usage:       "Enable reverse geocoding of resolved positions",
			Value:       true,
			Sources:     cli.EnvVars("LIFELINE_GEOCODE"),
			Destination: &l.geocodeEnabled,
		},
		&cli.StringFlag{
			Name:        "geocode-base-url",
			Usage:       "Reverse geocoding endpoint (self-hosted Nominatim)",
			Sources:     cli.EnvVars("LIFELINE_GEOCODE_BASE_URL"),
			Destination: &l.geocodeBaseURL,
		},
		&cli.StringFlag{
			Name:        "geocode-user-agent",
			Usage:       "User-Agent sent to the geocoding service",
			Value:       "lifeline",
			Sources:     cli.EnvVars("LIFELINE_GEOCODE_USER_AGENT"),
			Destination: &l.userAgent,
		},
	}
}

// SetDefaultPosition overrides the coordinates unless flags already set them.
// Used when a profile file supplies the device position.
func (l *Locator) SetDefaultPosition(lat, lng float64) {
	if l.latitude == 0 && l.longitude == 0 {
		l.latitude = lat
		l.longitude = lng
	}
}

// Configure builds the location source and, when enabled, the geocoder
func (l *Locator) Configure(ctx context.Context) (interfaces.LocationSource, interfaces.Geocoder, error) {
	source := locator.New(l.latitude, l.longitude)
	logging.From(ctx).Info("Using static location source",
		"lat", l.latitude, "lng", l.longitude)

	if !l.geocodeEnabled {
		logging.From(ctx).Info("Reverse geocoding disabled, addresses degrade to raw coordinates")
		return source, nil, nil
	}

	var opts []geocode.Option
	if l.geocodeBaseURL != "" {
		opts = append(opts, geocode.WithBaseURL(l.geocodeBaseURL))
	}

	geocoder, err := geocode.New(l.userAgent, opts...)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to initialize geocoder")
	}

	return source, geocoder, nil
}
