package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fiskal/internal/core/id"
)

// StockLevel is the derived quantity and value of a product in a warehouse
// at a point in time.
type StockLevel struct {
	ProductID   id.ID           `db:"product_id"`
	ProductCode string          `db:"product_code"`
	Warehouse   string          `db:"warehouse"`
	Unit        string          `db:"unit"`
	Quantity    decimal.Decimal `db:"quantity"`
	Value       decimal.Decimal `db:"value"`
}

// Repository defines the interface for stock movement storage.
type Repository interface {
	Create(ctx context.Context, movement *StockMovement) error
	GetByID(ctx context.Context, movementID id.ID) (*StockMovement, error)
	Delete(ctx context.Context, movementID id.ID) error

	// ListByPeriod returns movements ordered by date then id for the date
	// range (inclusive).
	ListByPeriod(ctx context.Context, orgID id.ID, from, to time.Time) ([]*StockMovement, error)

	// StockAt derives per-product, per-warehouse stock as of the given date
	// (incoming minus outgoing up to and including it).
	StockAt(ctx context.Context, orgID id.ID, at time.Time) ([]StockLevel, error)
}
