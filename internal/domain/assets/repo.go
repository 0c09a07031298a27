package assets

import (
	"context"
	"time"

	"fiskal/internal/core/id"
)

// Repository defines the interface for asset transaction storage.
type Repository interface {
	Create(ctx context.Context, tr *Transaction) error
	GetByID(ctx context.Context, trID id.ID) (*Transaction, error)
	Delete(ctx context.Context, trID id.ID) error

	// ListByPeriod returns transactions ordered by date then id for the
	// date range (inclusive).
	ListByPeriod(ctx context.Context, orgID id.ID, from, to time.Time) ([]*Transaction, error)
}
