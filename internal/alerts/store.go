package alerts

import "context"

// Store is the persistence interface for the alert log. The log is
// append-only: records are never updated or deleted.
type Store interface {
	// Append durably inserts a record, assigning a strictly increasing ID
	// and the insert timestamp. It is atomic with respect to concurrent
	// callers: no two appends share an ID and no partial record is ever
	// visible to a reader. The returned record carries the assigned fields.
	Append(ctx context.Context, r Record) (Record, error)

	// ListAll returns a snapshot of every record, most-recent-first
	// (descending ID). It need not be linearizable with concurrent
	// appends, but must never expose a torn record.
	ListAll(ctx context.Context) ([]Record, error)
}
