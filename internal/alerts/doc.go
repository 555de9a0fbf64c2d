// Package alerts provides lifeline's append-only alert log: the record
// model, the Store persistence interface, and the ingestion Service that
// turns SOS and triage submissions into recorded alerts.
package alerts
