// Package roster serves the simulated ambulance roster shown on the map.
// The list is static, pending a real dispatch integration; nothing in the
// triage or alert paths depends on its contents.
package roster

// Status is an ambulance's availability.
type Status string

const (
	StatusAvailable Status = "available"
	StatusBusy      Status = "busy"
)

// Ambulance is one roster entry.
type Ambulance struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Status Status  `json:"status"`
}

var ambulances = []Ambulance{
	{ID: 1, Name: "Ambulance A", Lat: 28.6139, Lng: 77.2090, Status: StatusAvailable},
	{ID: 2, Name: "Ambulance B", Lat: 28.6200, Lng: 77.2150, Status: StatusBusy},
	{ID: 3, Name: "Ambulance C", Lat: 28.6250, Lng: 77.2000, Status: StatusAvailable},
}

// List returns a copy of the roster.
func List() []Ambulance {
	out := make([]Ambulance, len(ambulances))
	copy(out, ambulances)
	return out
}
