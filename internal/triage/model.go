package triage

import "strings"

// Level is the urgency assigned to a symptom report.
type Level string

const (
	// LevelCritical means immediate, life-threatening danger
	LevelCritical Level = "Critical"

	// LevelUrgent means prompt attention required, not immediately life-threatening
	LevelUrgent Level = "Urgent"

	// LevelNonUrgent means can safely wait for routine care
	LevelNonUrgent Level = "Non-Urgent"
)

// Provenance records which classification path produced a level.
type Provenance string

const (
	// ProvenanceAI means the external AI classifier answered in time with a valid level
	ProvenanceAI Provenance = "ai"

	// ProvenanceFallback means the AI path failed and the rule-based classifier decided
	ProvenanceFallback Provenance = "fallback"

	// ProvenanceStub means no classification ran; the level is a conservative default
	ProvenanceStub Provenance = "stub"
)

// Result is the outcome of a triage decision. It is ephemeral: the caller
// either discards it or folds it into an alert record.
type Result struct {
	Level      Level      `json:"triage_level"`
	Provenance Provenance `json:"provenance"`
}

// ParseLevel maps free text onto a Level, tolerating surrounding whitespace
// and any casing. Anything that is not exactly one of the three recognized
// level names is a parse failure.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return LevelCritical, true
	case "urgent":
		return LevelUrgent, true
	case "non-urgent":
		return LevelNonUrgent, true
	}
	return "", false
}
