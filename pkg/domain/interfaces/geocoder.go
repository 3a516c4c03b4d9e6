package interfaces

import (
	"context"

	"github.com/lifeline-app/lifeline/pkg/domain/model"
)

// Geocoder abstracts the reverse-geocoding capability
type Geocoder interface {
	// ReverseGeocode resolves a coordinate pair into address-component
	// records, ordered most-specific first. An empty slice is a valid result.
	ReverseGeocode(ctx context.Context, lat, lng float64) ([]model.Placemark, error)
}
