package maps

import "fmt"

// Candidate is one map URI with an optional OS restriction. A candidate with
// a non-empty GOOS is only considered when running natively on that OS.
type Candidate struct {
	URI  string
	GOOS string
}

// Candidates builds the map URIs for a coordinate pair in priority order:
// the native Apple Maps URI, the Google Maps web URI, then a generic geo URI.
func Candidates(lat, lng float64) []Candidate {
	return []Candidate{
		{
			URI:  fmt.Sprintf("maps://?q=%f,%f", lat, lng),
			GOOS: "darwin",
		},
		{
			URI: fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%f,%f", lat, lng),
		},
		{
			URI: fmt.Sprintf("geo:%f,%f", lat, lng),
		},
	}
}
