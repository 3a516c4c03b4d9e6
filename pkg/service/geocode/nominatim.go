package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/lifeline-app/lifeline/pkg/domain/interfaces"
	"github.com/lifeline-app/lifeline/pkg/domain/model"
	"github.com/lifeline-app/lifeline/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Nominatim is a reverse-geocoding client for the OSM Nominatim API
type Nominatim struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

var _ interfaces.Geocoder = &Nominatim{}

// Option configures the Nominatim client
type Option func(*Nominatim)

// WithBaseURL overrides the API endpoint (used for self-hosted instances and tests)
func WithBaseURL(baseURL string) Option {
	return func(c *Nominatim) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Nominatim) {
		c.httpClient = client
	}
}

// New creates a Nominatim reverse-geocoding client. The Nominatim usage
// policy requires an identifying User-Agent, so userAgent must not be empty.
func New(userAgent string, opts ...Option) (*Nominatim, error) {
	if userAgent == "" {
		return nil, goerr.New("geocoder user agent is required")
	}

	c := &Nominatim{
		baseURL:   defaultBaseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// reverseResponse mirrors the fields of a jsonv2 reverse result that we use
type reverseResponse struct {
	Address struct {
		HouseNumber string `json:"house_number"`
		Road        string `json:"road"`
		Village     string `json:"village"`
		Town        string `json:"town"`
		City        string `json:"city"`
		State       string `json:"state"`
		Country     string `json:"country"`
	} `json:"address"`
}

// ReverseGeocode resolves a coordinate pair to address components. A
// coordinate that maps to no known address yields an empty slice, not an error.
func (c *Nominatim) ReverseGeocode(ctx context.Context, lat, lng float64) ([]model.Placemark, error) {
	endpoint := fmt.Sprintf("%s/reverse?%s", c.baseURL, url.Values{
		"format": []string{"jsonv2"},
		"lat":    []string{fmt.Sprintf("%f", lat)},
		"lon":    []string{fmt.Sprintf("%f", lng)},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build reverse geocode request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "reverse geocode request failed",
			goerr.V("lat", lat), goerr.V("lng", lng))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("unexpected reverse geocode status",
			goerr.V("status", resp.StatusCode))
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, goerr.Wrap(err, "failed to decode reverse geocode response")
	}

	placemark := model.Placemark{
		Street:    street(body.Address.Road, body.Address.HouseNumber),
		Locality:  firstNonEmpty(body.Address.City, body.Address.Town, body.Address.Village),
		AdminArea: body.Address.State,
		Country:   body.Address.Country,
	}
	if placemark.Format() == "" {
		return []model.Placemark{}, nil
	}

	return []model.Placemark{placemark}, nil
}

func street(road, houseNumber string) string {
	if road == "" {
		return ""
	}
	if houseNumber == "" {
		return road
	}
	return road + " " + houseNumber
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
