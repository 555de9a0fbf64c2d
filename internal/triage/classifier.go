package triage

import (
	"context"
	"errors"
)

// ErrClassifierUnavailable is the single failure condition of the AI
// classification path. Network errors, timeouts, non-2xx responses, and
// responses that do not parse to a recognized level all collapse into it;
// the Engine recovers from all of them the same way.
var ErrClassifierUnavailable = errors.New("classifier unavailable")

// Classifier is the interface for an external symptom classifier.
// Implementations must return one of the three recognized levels or an
// error wrapping ErrClassifierUnavailable, and must bound their own
// latency so a hung backend cannot stall the calling request.
type Classifier interface {
	Classify(ctx context.Context, symptoms string) (Level, error)
}
