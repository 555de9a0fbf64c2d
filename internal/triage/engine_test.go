package triage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/linnemanlabs/go-core/log"
)

// mockClassifier returns a fixed level or error.
type mockClassifier struct {
	mu    sync.Mutex
	level Level
	err   error
	calls int
}

func (m *mockClassifier) Classify(_ context.Context, _ string) (Level, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.level, nil
}

func TestDecide_AISuccess(t *testing.T) {
	t.Parallel()

	// The AI says Non-Urgent even though the rules would say Critical;
	// a successful AI answer wins.
	c := &mockClassifier{level: LevelNonUrgent}
	engine := NewEngine(c, log.Nop(), EngineHooks{})

	r := engine.Decide(context.Background(), "severe bleeding")

	if r.Level != LevelNonUrgent {
		t.Errorf("level = %q, want %q", r.Level, LevelNonUrgent)
	}
	if r.Provenance != ProvenanceAI {
		t.Errorf("provenance = %q, want %q", r.Provenance, ProvenanceAI)
	}
}

func TestDecide_FallbackOnClassifierError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		symptoms string
		err      error
		want     Level
	}{
		{"timeout", "severe chest pain and bleeding", fmt.Errorf("%w: %w", ErrClassifierUnavailable, context.DeadlineExceeded), LevelCritical},
		{"network error", "high fever", fmt.Errorf("%w: connection refused", ErrClassifierUnavailable), LevelUrgent},
		{"malformed response", "mild headache", fmt.Errorf("%w: unrecognized level %q", ErrClassifierUnavailable, "maybe urgent"), LevelNonUrgent},
		{"plain error", "unconscious", errors.New("boom"), LevelCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			engine := NewEngine(&mockClassifier{err: tt.err}, log.Nop(), EngineHooks{})
			r := engine.Decide(context.Background(), tt.symptoms)

			if r.Provenance != ProvenanceFallback {
				t.Errorf("provenance = %q, want %q", r.Provenance, ProvenanceFallback)
			}
			if r.Level != tt.want {
				t.Errorf("level = %q, want %q", r.Level, tt.want)
			}
			if r.Level != ClassifyRules(tt.symptoms) {
				t.Errorf("fallback level %q disagrees with ClassifyRules(%q) = %q", r.Level, tt.symptoms, ClassifyRules(tt.symptoms))
			}
		})
	}
}

func TestDecide_NilClassifier(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil, log.Nop(), EngineHooks{})
	r := engine.Decide(context.Background(), "severe chest pain and bleeding")

	if r.Level != LevelCritical {
		t.Errorf("level = %q, want %q", r.Level, LevelCritical)
	}
	if r.Provenance != ProvenanceFallback {
		t.Errorf("provenance = %q, want %q", r.Provenance, ProvenanceFallback)
	}
}

func TestDecide_HooksCalled(t *testing.T) {
	t.Parallel()

	var (
		mu          sync.Mutex
		decisions   int
		lastLevel   string
		lastProv    string
		lastSeconds float64
		failures    int
	)

	hooks := EngineHooks{
		OnDecision: func(level, provenance string, seconds float64) {
			mu.Lock()
			defer mu.Unlock()
			decisions++
			lastLevel = level
			lastProv = provenance
			lastSeconds = seconds
		},
		OnClassifierFailure: func() {
			mu.Lock()
			defer mu.Unlock()
			failures++
		},
	}

	engine := NewEngine(&mockClassifier{err: errors.New("down")}, log.Nop(), hooks)
	engine.Decide(context.Background(), "fever")

	mu.Lock()
	defer mu.Unlock()

	if decisions != 1 {
		t.Errorf("decision hook calls = %d, want 1", decisions)
	}
	if lastLevel != string(LevelUrgent) {
		t.Errorf("hook level = %q, want %q", lastLevel, LevelUrgent)
	}
	if lastProv != string(ProvenanceFallback) {
		t.Errorf("hook provenance = %q, want %q", lastProv, ProvenanceFallback)
	}
	if lastSeconds < 0 {
		t.Errorf("hook seconds = %f, want >= 0", lastSeconds)
	}
	if failures != 1 {
		t.Errorf("failure hook calls = %d, want 1", failures)
	}
}

func TestDecide_HooksNotRequiredOnSuccess(t *testing.T) {
	t.Parallel()

	var failures int
	hooks := EngineHooks{
		OnClassifierFailure: func() { failures++ },
	}

	engine := NewEngine(&mockClassifier{level: LevelUrgent}, log.Nop(), hooks)
	engine.Decide(context.Background(), "fever")

	if failures != 0 {
		t.Errorf("failure hook calls = %d, want 0", failures)
	}
}

func TestDecide_CreatesSpan(t *testing.T) {
	// Not parallel: swaps the global OTel tracer provider.

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	engine := NewEngine(nil, log.Nop(), EngineHooks{})
	engine.Decide(context.Background(), "bleeding")

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	s := spans[0]
	if s.Name != "triage.decide" {
		t.Errorf("span name = %q, want %q", s.Name, "triage.decide")
	}

	attrs := make(map[string]any)
	for _, a := range s.Attributes {
		attrs[string(a.Key)] = a.Value.AsInterface()
	}
	if v := attrs["lifeline.triage.level"]; v != string(LevelCritical) {
		t.Errorf("lifeline.triage.level = %v, want %q", v, LevelCritical)
	}
	if v := attrs["lifeline.triage.provenance"]; v != string(ProvenanceFallback) {
		t.Errorf("lifeline.triage.provenance = %v, want %q", v, ProvenanceFallback)
	}
}
