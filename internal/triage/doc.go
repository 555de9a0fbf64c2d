// Package triage provides the classification core of lifeline: the triage
// level domain model, the deterministic rule-based classifier, and the
// Engine that prefers an external AI classifier but falls back to the rules
// whenever the AI path is unavailable.
package triage
