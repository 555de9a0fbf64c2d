// Package alertapi exposes the HTTP surface of lifeline: SOS and triage
// submission, the dashboard alert feed, the emergency profile, and the
// simulated ambulance roster.
package alertapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/linnemanlabs/go-core/log"
	"github.com/linnemanlabs/go-core/xerrors"

	"github.com/linnemanlabs/lifeline/internal/alerts"
	"github.com/linnemanlabs/lifeline/internal/profile"
	"github.com/linnemanlabs/lifeline/internal/triage"
)

// AlertService defines the business operations alertapi needs.
type AlertService interface {
	SubmitSOS(ctx context.Context, notes string, loc alerts.Location) (*alerts.Record, error)
	SubmitTriage(ctx context.Context, symptoms, notes string, loc alerts.Location, persist bool) (*triage.Result, *alerts.Record, error)
	List(ctx context.Context) ([]alerts.Record, error)
}

// API holds dependencies for HTTP handlers.
type API struct {
	logger     log.Logger
	svc        AlertService
	profiles   profile.Store
	defaultLoc alerts.Location
}

// New creates a new API handler. defaultLoc substitutes for submissions
// that carry no location (stubbed geolocation).
func New(logger log.Logger, svc AlertService, profiles profile.Store, defaultLoc alerts.Location) *API {
	if logger == nil {
		logger = log.Nop()
	}
	if svc == nil {
		panic(xerrors.New("alert service is required"))
	}
	if profiles == nil {
		panic(xerrors.New("profile store is required"))
	}
	return &API{
		logger:     logger,
		svc:        svc,
		profiles:   profiles,
		defaultLoc: defaultLoc,
	}
}

// RegisterRoutes attaches API endpoints to the router.
func (a *API) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sos", a.handleSubmitSOS)
		r.Post("/triage", a.handleTriage)
		r.Get("/alerts", a.handleListAlerts)
		r.Get("/ambulances", a.handleListAmbulances)
		r.Get("/profile", a.handleGetProfile)
		r.Put("/profile", a.handleSaveProfile)
	})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// resolveLocation substitutes the configured stub when the caller supplied
// no coordinates.
func (a *API) resolveLocation(loc alerts.Location) alerts.Location {
	if loc.IsZero() {
		return a.defaultLoc
	}
	return loc
}
