package journal

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fiskal/internal/core/id"
)

// AccountTurnover aggregates posted movement per account over a date range.
type AccountTurnover struct {
	AccountCode string          `db:"account_code"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
}

// Repository defines the interface for journal storage.
//
// Create and Update persist the entry together with its lines in one
// transaction. Delete removes the entry and cascades to its lines
// explicitly; there is no orphaned-line state.
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	GetByID(ctx context.Context, entryID id.ID) (*Entry, error)
	Update(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, entryID id.ID) error

	// SetPosted flips the posted flag.
	SetPosted(ctx context.Context, entryID id.ID, posted bool) error

	// ListByPeriod returns posted entries with lines, ordered by date then
	// number, for the organization and date range (inclusive).
	ListByPeriod(ctx context.Context, orgID id.ID, from, to time.Time) ([]*Entry, error)

	// TurnoversBetween returns per-account totals for the date range (inclusive).
	TurnoversBetween(ctx context.Context, orgID id.ID, from, to time.Time) ([]AccountTurnover, error)
}
