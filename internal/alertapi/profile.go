package alertapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/linnemanlabs/lifeline/internal/profile"
)

// handleGetProfile returns the stored emergency profile. A 404 means no
// profile has been saved yet.
func (a *API) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, ok, err := a.profiles.Get(r.Context())
	if err != nil {
		a.logger.Error(r.Context(), err, "loading profile failed")
		a.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load profile"})
		return
	}
	if !ok {
		a.writeJSON(w, http.StatusNotFound, map[string]string{"error": "no profile saved"})
		return
	}
	a.writeJSON(w, http.StatusOK, p)
}

// handleSaveProfile replaces the emergency profile wholesale.
func (a *API) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var p profile.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		a.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(p.FullName) == "" {
		a.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "full_name required"})
		return
	}
	if err := a.profiles.Save(r.Context(), p); err != nil {
		a.logger.Error(r.Context(), err, "saving profile failed")
		a.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save profile"})
		return
	}
	a.writeJSON(w, http.StatusOK, p)
}
