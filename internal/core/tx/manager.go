// Package tx provides transaction management abstractions.
// Domain services depend on these interfaces, not on concrete database
// implementations.
package tx

import (
	"context"
)

// Manager defines the contract for transaction management.
// Implementations handle BEGIN, COMMIT, ROLLBACK, and nested transaction support.
type Manager interface {
	// RunInTransaction executes fn within a database transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn succeeds, the transaction is committed.
	//
	// Nested calls reuse the existing transaction from context.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SnapshotManager extends Manager with consistent-snapshot reads.
// Report assembly uses a single snapshot so that every table it touches is
// read as of the same moment, even while writers commit concurrently.
type SnapshotManager interface {
	Manager

	// ReadOnly executes fn in a read-only transaction.
	// Attempts to modify data will fail.
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error

	// Snapshot executes fn in a read-only REPEATABLE READ transaction.
	// All statements inside fn observe the same database snapshot.
	Snapshot(ctx context.Context, fn func(ctx context.Context) error) error
}
