package memstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/linnemanlabs/lifeline/internal/alerts"
	"github.com/linnemanlabs/lifeline/internal/triage"
)

func TestAppend_AssignsIDAndTimestamp(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	r, err := s.Append(ctx, alerts.Record{
		SubmissionID: "01JTEST",
		Level:        triage.LevelCritical,
		Provenance:   triage.ProvenanceStub,
		Notes:        "sos",
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if r.ID != 1 {
		t.Errorf("ID = %d, want 1", r.ID)
	}
	if r.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if r.Level != triage.LevelCritical {
		t.Errorf("Level = %q, want %q", r.Level, triage.LevelCritical)
	}
}

func TestListAll_MostRecentFirst(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	for i := range 5 {
		if _, err := s.Append(ctx, alerts.Record{Notes: fmt.Sprintf("n-%d", i), Level: triage.LevelNonUrgent}); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	got, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	for i, r := range got {
		wantID := int64(5 - i)
		if r.ID != wantID {
			t.Errorf("got[%d].ID = %d, want %d", i, r.ID, wantID)
		}
	}
}

func TestListAll_Empty(t *testing.T) {
	t.Parallel()

	s := New()
	got, err := s.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestListAll_SnapshotIsACopy(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()
	if _, err := s.Append(ctx, alerts.Record{Notes: "original", Level: triage.LevelUrgent}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	first, _ := s.ListAll(ctx)
	first[0].Notes = "mutated"

	second, _ := s.ListAll(ctx)
	if second[0].Notes != "original" {
		t.Errorf("store record mutated through snapshot: notes = %q", second[0].Notes)
	}
}

func TestAppend_ConcurrentIDsDistinctAndContiguous(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 10, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			s := New()
			ctx := context.Background()

			ids := make(chan int64, n)
			var wg sync.WaitGroup
			for i := range n {
				wg.Add(1)
				go func() {
					defer wg.Done()
					r, err := s.Append(ctx, alerts.Record{
						Notes: fmt.Sprintf("worker-%d", i),
						Level: triage.LevelNonUrgent,
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

			seen := make(map[int64]bool, n)
			for id := range ids {
				if seen[id] {
					t.Errorf("duplicate id %d", id)
				}
				seen[id] = true
			}
			if len(seen) != n {
				t.Fatalf("distinct ids = %d, want %d", len(seen), n)
			}
			// contiguous from 1, no gaps
			for want := int64(1); want <= int64(n); want++ {
				if !seen[want] {
					t.Errorf("missing id %d", want)
				}
			}
		})
	}
}

func TestListAll_NoTornReadsDuringAppends(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range 200 {
			_, _ = s.Append(ctx, alerts.Record{
				SubmissionID: fmt.Sprintf("sub-%d", i),
				Level:        triage.LevelUrgent,
				Notes:        "filled",
			})
		}
	}()

	for {
		select {
		case <-done:
			return
		default:
		}
		got, err := s.ListAll(ctx)
		if err != nil {
			t.Fatalf("ListAll: %v", err)
		}
		for i, r := range got {
			// every visible record is fully formed
			if r.ID == 0 || r.CreatedAt.IsZero() || r.Level == "" || r.SubmissionID == "" {
				t.Fatalf("torn record at index %d: %+v", i, r)
			}
			// descending ids with no reordering
			if i > 0 && got[i-1].ID != r.ID+1 {
				t.Fatalf("ids not contiguous descending: %d then %d", got[i-1].ID, r.ID)
			}
		}
	}
}
