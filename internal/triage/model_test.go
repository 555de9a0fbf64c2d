package triage

import "testing"

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     string
		want   Level
		wantOK bool
	}{
		{"exact critical", "Critical", LevelCritical, true},
		{"exact urgent", "Urgent", LevelUrgent, true},
		{"exact non-urgent", "Non-Urgent", LevelNonUrgent, true},
		{"lowercase", "critical", LevelCritical, true},
		{"uppercase", "URGENT", LevelUrgent, true},
		{"surrounding whitespace", "  Non-Urgent\n", LevelNonUrgent, true},
		{"empty", "", "", false},
		{"prose around level", "The level is Critical.", "", false},
		{"missing hyphen", "non urgent", "", false},
		{"unknown word", "severe", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseLevel(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseLevel(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
