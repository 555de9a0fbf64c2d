package alerts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/linnemanlabs/go-core/log"
	"github.com/linnemanlabs/lifeline/internal/triage"
)

// ErrEmptySymptoms is returned when a triage submission carries no symptom
// text. The submission is rejected before any classification attempt and
// has no side effects.
var ErrEmptySymptoms = errors.New("symptoms required")

// Notifier delivers best-effort notifications for recorded alerts.
type Notifier interface {
	Send(ctx context.Context, r *Record) error
}

// Service is the business boundary for alert ingestion. It validates
// submissions, runs the triage decision, and appends exactly one record
// per accepted submission. Classification failures are absorbed by the
// engine; persistence failures are the only ones that fail a submission.
type Service struct {
	store    Store
	engine   *triage.Engine
	logger   log.Logger
	metrics  *Metrics
	notifier Notifier
}

// NewService creates a new ingestion service. metrics and notifier may be nil.
func NewService(store Store, engine *triage.Engine, logger log.Logger, metrics *Metrics, notifier Notifier) *Service {
	if logger == nil {
		logger = log.Nop()
	}
	return &Service{
		store:    store,
		engine:   engine,
		logger:   logger,
		metrics:  metrics,
		notifier: notifier,
	}
}

// SubmitSOS records a raw SOS button press. No symptom text is available,
// so no classification runs: the level is stamped Critical with stub
// provenance, the conservative worst-case-until-triaged default.
func (s *Service) SubmitSOS(ctx context.Context, notes string, loc Location) (*Record, error) {
	rec := Record{
		SubmissionID: ulid.Make().String(),
		Location:     loc,
		Level:        triage.LevelCritical,
		Provenance:   triage.ProvenanceStub,
		Notes:        notes,
	}

	stored, err := s.record(ctx, "sos", rec)
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// SubmitTriage classifies symptom text and, when persist is set, records
// the outcome as an alert. Empty symptoms reject the submission with
// ErrEmptySymptoms and no side effects. The triage result is always
// returned on success; the record is nil unless persisted.
func (s *Service) SubmitTriage(ctx context.Context, symptoms, notes string, loc Location, persist bool) (*triage.Result, *Record, error) {
	if strings.TrimSpace(symptoms) == "" {
		if s.metrics != nil {
			s.metrics.SubmitsTotal.WithLabelValues("triage", "rejected").Inc()
		}
		return nil, nil, ErrEmptySymptoms
	}

	result := s.engine.Decide(ctx, symptoms)

	if !persist {
		if s.metrics != nil {
			s.metrics.SubmitsTotal.WithLabelValues("triage", "ok").Inc()
		}
		return &result, nil, nil
	}

	rec := Record{
		SubmissionID: ulid.Make().String(),
		Location:     loc,
		Level:        result.Level,
		Provenance:   result.Provenance,
		Notes:        notes,
	}

	stored, err := s.record(ctx, "triage", rec)
	if err != nil {
		return nil, nil, err
	}
	return &result, stored, nil
}

// List returns the alert log, most-recent-first.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.store.ListAll(ctx)
}

// record appends a single alert and dispatches the notifier. A store
// failure fails the whole submission with no partial state.
func (s *Service) record(ctx context.Context, kind string, rec Record) (*Record, error) {
	stored, err := s.store.Append(ctx, rec)
	if err != nil {
		if s.metrics != nil {
			s.metrics.SubmitsTotal.WithLabelValues(kind, "error").Inc()
		}
		return nil, fmt.Errorf("append alert: %w", err)
	}

	if s.metrics != nil {
		s.metrics.SubmitsTotal.WithLabelValues(kind, "ok").Inc()
		s.metrics.RecordedTotal.WithLabelValues(string(stored.Level)).Inc()
	}

	s.logger.Info(ctx, "alert recorded",
		"alert_id", stored.ID,
		"submission_id", stored.SubmissionID,
		"kind", kind,
		"level", stored.Level,
		"provenance", stored.Provenance,
	)

	// notification is best-effort and never blocks or fails the submission
	if s.notifier != nil {
		go s.notify(context.WithoutCancel(ctx), &stored)
	}

	return &stored, nil
}

func (s *Service) notify(ctx context.Context, rec *Record) {
	if err := s.notifier.Send(ctx, rec); err != nil {
		s.logger.Warn(ctx, "alert notification failed", "alert_id", rec.ID, "error", err)
	}
}
