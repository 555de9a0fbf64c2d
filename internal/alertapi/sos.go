package alertapi

import (
	"encoding/json"
	"net/http"

	"github.com/linnemanlabs/lifeline/internal/alerts"
)

type sosRequest struct {
	Notes string  `json:"notes"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// handleSubmitSOS records a one-tap emergency alert. No classification
// runs; the alert is stamped with the most severe level immediately.
func (a *API) handleSubmitSOS(w http.ResponseWriter, r *http.Request) {
	var req sosRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			a.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
	}

	loc := a.resolveLocation(alerts.Location{Lat: req.Lat, Lng: req.Lng})
	rec, err := a.svc.SubmitSOS(r.Context(), req.Notes, loc)
	if err != nil {
		a.logger.Error(r.Context(), err, "sos submission failed")
		a.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to record alert"})
		return
	}

	a.writeJSON(w, http.StatusCreated, rec)
}
