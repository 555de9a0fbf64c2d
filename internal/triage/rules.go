package triage

import "strings"

// Keyword tables for the rule-based classifier, checked in precedence order.
// Matching is case-insensitive substring containment; the first matching
// tier wins regardless of what else the text contains.
var (
	criticalKeywords = []string{"bleeding", "unconscious", "heart"}
	urgentKeywords   = []string{"pain", "fever"}
)

// ClassifyRules assigns a triage level from symptom text using keyword
// heuristics. It is total and deterministic: every input, including the
// empty string, gets a level, and no error path exists. This is both the
// default behavior of the symptom-checker page and the fallback that keeps
// triage available when the AI classifier is down.
func ClassifyRules(symptoms string) Level {
	s := strings.ToLower(symptoms)

	for _, kw := range criticalKeywords {
		if strings.Contains(s, kw) {
			return LevelCritical
		}
	}
	for _, kw := range urgentKeywords {
		if strings.Contains(s, kw) {
			return LevelUrgent
		}
	}
	return LevelNonUrgent
}
