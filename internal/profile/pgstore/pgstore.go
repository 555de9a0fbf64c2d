// Package pgstore provides a PostgreSQL implementation of profile.Store.
package pgstore

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linnemanlabs/lifeline/internal/profile"
)

var tracer = otel.Tracer("github.com/linnemanlabs/lifeline/internal/profile/pgstore")

//go:embed schema.sql
var schema string

// Store persists the single-row profile in PostgreSQL. The fixed primary
// key makes Save an upsert on one row, independent of the alert log's write
// path.
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

// Get retrieves the profile. Returns ok=false when none has been saved.
func (s *Store) Get(ctx context.Context) (profile.Profile, bool, error) {
	ctx, span := tracer.Start(ctx, "pgstore.Get", trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation.name", "SELECT"),
	))
	defer span.End()

	var p profile.Profile
	err := s.pool.QueryRow(ctx,
		`SELECT full_name, age, blood_group, language, allergies, conditions,
			emergency_contact_name, emergency_contact_phone
		 FROM profile WHERE id = 1`,
	).Scan(
		&p.FullName, &p.Age, &p.BloodGroup, &p.Language, &p.Allergies, &p.Conditions,
		&p.EmergencyContactName, &p.EmergencyContactPhone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, false, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return profile.Profile{}, false, fmt.Errorf("select profile: %w", err)
	}

	return p, true, nil
}

// Save overwrites the profile wholesale via upsert on the fixed row.
func (s *Store) Save(ctx context.Context, p profile.Profile) error {
	ctx, span := tracer.Start(ctx, "pgstore.Save", trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation.name", "UPSERT"),
	))
	defer span.End()

	query := `INSERT INTO profile (
		id, full_name, age, blood_group, language, allergies, conditions,
		emergency_contact_name, emergency_contact_phone
	) VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO UPDATE SET
		full_name               = EXCLUDED.full_name,
		age                     = EXCLUDED.age,
		blood_group             = EXCLUDED.blood_group,
		language                = EXCLUDED.language,
		allergies               = EXCLUDED.allergies,
		conditions              = EXCLUDED.conditions,
		emergency_contact_name  = EXCLUDED.emergency_contact_name,
		emergency_contact_phone = EXCLUDED.emergency_contact_phone`

	_, err := s.pool.Exec(ctx, query,
		p.FullName, p.Age, p.BloodGroup, p.Language, p.Allergies, p.Conditions,
		p.EmergencyContactName, p.EmergencyContactPhone,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
