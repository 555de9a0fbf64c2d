// Package pgstore provides a PostgreSQL implementation of alerts.Store.
package pgstore

import (
	"context"
	_ "embed"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linnemanlabs/lifeline/internal/alerts"
	"github.com/linnemanlabs/lifeline/internal/triage"
)

var tracer = otel.Tracer("github.com/linnemanlabs/lifeline/internal/alerts/pgstore")

//go:embed schema.sql
var schema string

// Store persists the alert log in PostgreSQL. The BIGSERIAL key gives
// strictly increasing ids and the single-statement insert keeps appends
// atomic without an explicit transaction.
type Store struct {
	pool *pgxpool.Pool
}

// New applies the schema and returns a ready Store. The pool is owned by
// the caller.
func New(ctx context.Context, pool *pgxpool.Pool) (*Store, error) {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{pool: pool}, nil
}

const alertColumns = `id, submission_id, created_at, lat, lng, triage_level, provenance, notes`

// Append inserts a record and returns it with the database-assigned id and
// timestamp.
func (s *Store) Append(ctx context.Context, r alerts.Record) (alerts.Record, error) {
	ctx, span := tracer.Start(ctx, "pgstore.Append", trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation.name", "INSERT"),
	))
	defer span.End()

	query := `INSERT INTO alerts (submission_id, lat, lng, triage_level, provenance, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := s.pool.QueryRow(ctx, query,
		r.SubmissionID, r.Location.Lat, r.Location.Lng, string(r.Level), string(r.Provenance), r.Notes,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return alerts.Record{}, fmt.Errorf("insert alert: %w", err)
	}

	return r, nil
}

// ListAll returns every alert, most-recent-first.
func (s *Store) ListAll(ctx context.Context) ([]alerts.Record, error) {
	ctx, span := tracer.Start(ctx, "pgstore.ListAll", trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation.name", "SELECT"),
	))
	defer span.End()

	query := `SELECT ` + alertColumns + ` FROM alerts ORDER BY id DESC`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("query alerts: %w", err)
	}
	defer rows.Close()

	var out []alerts.Record
	for rows.Next() {
		var (
			r          alerts.Record
			level      string
			provenance string
		)
		if err := rows.Scan(
			&r.ID, &r.SubmissionID, &r.CreatedAt,
			&r.Location.Lat, &r.Location.Lng,
			&level, &provenance, &r.Notes,
		); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		r.Level = triage.Level(level)
		r.Provenance = triage.Provenance(provenance)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("iterate alerts: %w", err)
	}

	return out, nil
}
