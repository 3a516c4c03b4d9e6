package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// Profile is an optional TOML file describing the deployment region:
// the device's default position and the local emergency dial number.
type Profile struct {
	Region          string  `toml:"region"`
	EmergencyNumber string  `toml:"emergency_number"`
	Latitude        float64 `toml:"latitude"`
	Longitude       float64 `toml:"longitude"`
}

// Validate checks if the Profile is usable
func (p *Profile) Validate() error {
	if p.Region == "" {
		return goerr.New("profile region is required")
	}
	if p.EmergencyNumber == "" {
		return goerr.New("profile emergency number is required", goerr.V("region", p.Region))
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return goerr.New("profile latitude out of range", goerr.V("latitude", p.Latitude))
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return goerr.New("profile longitude out of range", goerr.V("longitude", p.Longitude))
	}
	return nil
}

// LoadProfile loads a deployment profile from a TOML file
func LoadProfile(path string) (*Profile, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read profile file", goerr.V("path", path))
	}

	var profile Profile
	if err := toml.Unmarshal(data, &profile); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML profile", goerr.V("path", path))
	}

	if err := profile.Validate(); err != nil {
		return nil, goerr.Wrap(err, "profile validation failed", goerr.V("path", path))
	}

	return &profile, nil
}
