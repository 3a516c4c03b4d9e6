package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/lifeline-app/lifeline/pkg/domain/types"
)

// Position is a device position reported by a location source. Accuracy is
// the reported horizontal accuracy in meters; it is carried for diagnostics
// and not otherwise interpreted.
type Position struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
	Timestamp time.Time
}

// Coordinates formats the position as a raw coordinate string with
// 5 decimal places, the fallback representation when no address is available.
func (p Position) Coordinates() string {
	return fmt.Sprintf("Lat: %.5f, Lon: %.5f", p.Latitude, p.Longitude)
}

// Placemark is one address-component record returned by reverse geocoding
type Placemark struct {
	Street    string
	Locality  string
	AdminArea string
	Country   string
}

// Format joins the non-empty address components in order. It returns an
// empty string when every component is empty.
func (p Placemark) Format() string {
	parts := make([]string, 0, 4)
	for _, part := range []string{p.Street, p.Locality, p.AdminArea, p.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

// LocationResult is the outcome of a location resolution. Callers branch on
// Outcome; String renders the human-readable form shown to users.
type LocationResult struct {
	Outcome  types.LocationOutcome
	Address  string
	Position *Position
	Stale    bool
}

// Fixed display strings for degraded outcomes
const (
	msgDenied      = "Location access denied."
	msgTimeout     = "Unable to get location (timeout)."
	msgUnavailable = "Unable to determine location."
	staleMarker    = " (stale)"
)

// Resolved builds a successful result for the given position and address
func Resolved(pos Position, address string) LocationResult {
	p := pos
	return LocationResult{
		Outcome:  types.OutcomeResolved,
		Address:  address,
		Position: &p,
	}
}

// ResolvedStale builds a result from a last-known position after a fetch timeout
func ResolvedStale(pos Position, address string) LocationResult {
	r := Resolved(pos, address)
	r.Stale = true
	return r
}

// Denied builds a result for a failed permission check
func Denied() LocationResult {
	return LocationResult{Outcome: types.OutcomeDenied}
}

// Timeout builds a result for a fetch timeout with no usable fallback
func Timeout() LocationResult {
	return LocationResult{Outcome: types.OutcomeTimeout}
}

// Unavailable builds a result for any other fetch failure
func Unavailable() LocationResult {
	return LocationResult{Outcome: types.OutcomeUnavailable}
}

// String renders the result as the display string consumed by presentation
// code. Degraded outcomes map to fixed sentences; stale results carry a
// trailing marker.
func (r LocationResult) String() string {
	switch r.Outcome {
	case types.OutcomeResolved:
		if r.Stale {
			return r.Address + staleMarker
		}
		return r.Address
	case types.OutcomeDenied:
		return msgDenied
	case types.OutcomeTimeout:
		return msgTimeout
	default:
		return msgUnavailable
	}
}
