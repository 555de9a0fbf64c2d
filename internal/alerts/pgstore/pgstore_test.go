package pgstore_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linnemanlabs/lifeline/internal/alerts"
	"github.com/linnemanlabs/lifeline/internal/alerts/pgstore"
	"github.com/linnemanlabs/lifeline/internal/triage"
)

func openStore(t *testing.T) *pgstore.Store {
	t.Helper()
	dsn := os.Getenv("LIFELINE_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("LIFELINE_TEST_DATABASE_URL not set, skipping integration test")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("pgxpool.New: %v", err)
	}
	t.Cleanup(pool.Close)
	s, err := pgstore.New(ctx, pool)
	if err != nil {
		t.Fatalf("pgstore.New: %v", err)
	}
	return s
}

func TestAppendAndListAll(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	first, err := s.Append(ctx, alerts.Record{
		SubmissionID: "01JTEST-PG-1",
		Location:     alerts.Location{Lat: 28.61, Lng: 77.2},
		Level:        triage.LevelCritical,
		Provenance:   triage.ProvenanceStub,
		Notes:        "integration sos",
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if first.ID == 0 {
		t.Error("expected non-zero assigned id")
	}
	if first.CreatedAt.IsZero() {
		t.Error("expected CreatedAt from the database")
	}

	second, err := s.Append(ctx, alerts.Record{
		SubmissionID: "01JTEST-PG-2",
		Level:        triage.LevelUrgent,
		Provenance:   triage.ProvenanceFallback,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if second.ID <= first.ID {
		t.Errorf("ids not increasing: %d then %d", first.ID, second.ID)
	}

	listed, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(listed) < 2 {
		t.Fatalf("listed = %d, want >= 2", len(listed))
	}
	for i := 1; i < len(listed); i++ {
		if listed[i-1].ID <= listed[i].ID {
			t.Fatalf("not most-recent-first at index %d: %d then %d", i, listed[i-1].ID, listed[i].ID)
		}
	}

	var found bool
	for _, r := range listed {
		if r.ID == first.ID {
			found = true
			if r.Level != triage.LevelCritical {
				t.Errorf("level = %q, want %q", r.Level, triage.LevelCritical)
			}
			if r.Provenance != triage.ProvenanceStub {
				t.Errorf("provenance = %q, want %q", r.Provenance, triage.ProvenanceStub)
			}
			if r.Notes != "integration sos" {
				t.Errorf("notes = %q, want %q", r.Notes, "integration sos")
			}
		}
	}
	if !found {
		t.Error("appended record not visible in ListAll")
	}
}

func TestAppend_ConcurrentDistinctIDs(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	const n = 10
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := s.Append(ctx, alerts.Record{
				SubmissionID: fmt.Sprintf("01JTEST-CONC-%d", i),
				Level:        triage.LevelNonUrgent,
			})
			if err != nil {
				t.Errorf("Append: %v", err)
				return
			}
			ids <- r.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Errorf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Errorf("distinct ids = %d, want %d", len(seen), n)
	}
}
