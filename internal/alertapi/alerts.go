package alertapi

import (
	"net/http"

	"github.com/linnemanlabs/lifeline/internal/alerts"
)

type listAlertsResponse struct {
	Alerts []alerts.Record `json:"alerts"`
	Count  int             `json:"count"`
}

// handleListAlerts returns every recorded alert, most recent first, for
// the responder dashboard.
func (a *API) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	recs, err := a.svc.List(r.Context())
	if err != nil {
		a.logger.Error(r.Context(), err, "listing alerts failed")
		a.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list alerts"})
		return
	}
	if recs == nil {
		recs = []alerts.Record{}
	}
	a.writeJSON(w, http.StatusOK, listAlertsResponse{Alerts: recs, Count: len(recs)})
}
