package alertapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/linnemanlabs/lifeline/internal/alerts"
	"github.com/linnemanlabs/lifeline/internal/triage"
)

type triageRequest struct {
	Symptoms string  `json:"symptoms"`
	Notes    string  `json:"notes"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Persist  bool    `json:"persist"`
}

type triageResponse struct {
	Result *triage.Result `json:"result"`
	Alert  *alerts.Record `json:"alert,omitempty"`
}

// handleTriage classifies a symptom description and optionally records
// the outcome as an alert.
func (a *API) handleTriage(w http.ResponseWriter, r *http.Request) {
	var req triageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	loc := a.resolveLocation(alerts.Location{Lat: req.Lat, Lng: req.Lng})
	result, rec, err := a.svc.SubmitTriage(r.Context(), req.Symptoms, req.Notes, loc, req.Persist)
	if err != nil {
		if errors.Is(err, alerts.ErrEmptySymptoms) {
			a.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "symptoms required"})
			return
		}
		a.logger.Error(r.Context(), err, "triage submission failed")
		a.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to record alert"})
		return
	}

	status := http.StatusOK
	if rec != nil {
		status = http.StatusCreated
	}
	a.writeJSON(w, status, triageResponse{Result: result, Alert: rec})
}
