package triage

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/linnemanlabs/go-core/log"
)

var tracer = otel.Tracer("github.com/linnemanlabs/lifeline/internal/triage")

// EngineHooks are optional callbacks for metrics instrumentation. Nil
// hooks are skipped.
type EngineHooks struct {
	// OnDecision fires once per decision with the final level, its
	// provenance, and the total decision duration in seconds.
	OnDecision func(level, provenance string, seconds float64)

	// OnClassifierFailure fires when the AI path fails and the rules take over.
	OnClassifierFailure func()
}

// Engine decides triage levels, preferring the AI classifier and falling
// back to the rule-based classifier on any AI failure. The fallback always
// succeeds, so Decide never compounds failures: the caller always gets a
// level.
type Engine struct {
	classifier Classifier // nil means AI disabled, rules only
	logger     log.Logger
	hooks      EngineHooks
}

// NewEngine creates a triage engine. classifier may be nil, in which case
// every decision takes the rule-based path with fallback provenance.
func NewEngine(classifier Classifier, logger log.Logger, hooks EngineHooks) *Engine {
	if logger == nil {
		logger = log.Nop()
	}
	return &Engine{
		classifier: classifier,
		logger:     logger,
		hooks:      hooks,
	}
}

// Decide classifies non-empty symptom text. Callers must reject empty
// symptoms before invoking it; Decide itself assumes there is something to
// classify. The AI path is best-effort: its failure is absorbed here and
// observable only through provenance, logs, and metrics.
func (e *Engine) Decide(ctx context.Context, symptoms string) Result {
	ctx, span := tracer.Start(ctx, "triage.decide")
	defer span.End()

	start := time.Now()
	result := e.decide(ctx, symptoms)

	span.SetAttributes(
		attribute.String("lifeline.triage.level", string(result.Level)),
		attribute.String("lifeline.triage.provenance", string(result.Provenance)),
	)

	if e.hooks.OnDecision != nil {
		e.hooks.OnDecision(string(result.Level), string(result.Provenance), time.Since(start).Seconds())
	}

	return result
}

func (e *Engine) decide(ctx context.Context, symptoms string) Result {
	if e.classifier == nil {
		return Result{Level: ClassifyRules(symptoms), Provenance: ProvenanceFallback}
	}

	level, err := e.classifier.Classify(ctx, symptoms)
	if err != nil {
		e.logger.Warn(ctx, "ai classification failed, using rule-based fallback", "error", err)
		if e.hooks.OnClassifierFailure != nil {
			e.hooks.OnClassifierFailure()
		}
		return Result{Level: ClassifyRules(symptoms), Provenance: ProvenanceFallback}
	}

	return Result{Level: level, Provenance: ProvenanceAI}
}
