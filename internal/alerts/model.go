package alerts

import (
	"time"

	"github.com/linnemanlabs/lifeline/internal/triage"
)

// Location is a latitude/longitude pair. In the absence of real
// geolocation it carries a configured stub.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsZero reports whether no location was supplied.
func (l Location) IsZero() bool {
	return l.Lat == 0 && l.Lng == 0
}

// Record is one entry in the append-only alert log. The store assigns ID
// and CreatedAt on insert; both are immutable afterwards, and ID order is
// the sole ordering key for the dashboard.
type Record struct {
	ID           int64             `json:"id"`
	SubmissionID string            `json:"submission_id"`
	CreatedAt    time.Time         `json:"created_at"`
	Location     Location          `json:"location"`
	Level        triage.Level      `json:"triage_level"`
	Provenance   triage.Provenance `json:"provenance,omitempty"`
	Notes        string            `json:"notes,omitempty"`
}
