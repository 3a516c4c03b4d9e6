package http

import (
	"net/http"
)

type locationResponse struct {
	Outcome string `json:"outcome"`
	Address string `json:"address,omitempty"`
	Display string `json:"display"`
	Stale   bool   `json:"stale,omitempty"`
}

// getLocation resolves the device location. The operation never fails; every
// degraded outcome is a 200 with its outcome kind.
func (s *Server) getLocation(w http.ResponseWriter, r *http.Request) {
	result := s.uc.Location.CurrentLocation(r.Context())

	writeJSON(w, r, http.StatusOK, locationResponse{
		Outcome: result.Outcome.String(),
		Address: result.Address,
		Display: result.String(),
		Stale:   result.Stale,
	})
}

type openMapResponse struct {
	Opened bool `json:"opened"`
}

func (s *Server) openInMap(w http.ResponseWriter, r *http.Request) {
	opened := s.uc.Location.OpenInMap(r.Context())
	writeJSON(w, r, http.StatusOK, openMapResponse{Opened: opened})
}
