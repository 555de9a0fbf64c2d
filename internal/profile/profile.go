// Package profile holds the single emergency profile record: identity and
// medical details shown to responders alongside an alert. There is exactly
// one profile and saves overwrite it wholesale; its persistence never
// contends with the alert log.
package profile

import "context"

// Profile is the single-row emergency profile.
type Profile struct {
	FullName              string `json:"full_name"`
	Age                   int    `json:"age"`
	BloodGroup            string `json:"blood_group"`
	Language              string `json:"language"`
	Allergies             string `json:"allergies"`
	Conditions            string `json:"conditions"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
}

// Store is the persistence interface for the profile record.
type Store interface {
	// Get returns the profile and whether one has been saved.
	Get(ctx context.Context) (Profile, bool, error)

	// Save replaces the profile wholesale.
	Save(ctx context.Context, p Profile) error
}
