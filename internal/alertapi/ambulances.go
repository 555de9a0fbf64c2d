package alertapi

import (
	"net/http"

	"github.com/linnemanlabs/lifeline/internal/roster"
)

type listAmbulancesResponse struct {
	Ambulances []roster.Ambulance `json:"ambulances"`
}

// handleListAmbulances returns the simulated ambulance roster.
func (a *API) handleListAmbulances(w http.ResponseWriter, _ *http.Request) {
	a.writeJSON(w, http.StatusOK, listAmbulancesResponse{Ambulances: roster.List()})
}
