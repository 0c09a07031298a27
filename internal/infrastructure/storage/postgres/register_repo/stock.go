// Package register_repo provides PostgreSQL implementations for movement
// registers (stock movements, asset transactions).
package register_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/id"
	"fiskal/internal/domain/inventory"
	"fiskal/internal/infrastructure/storage/postgres"
)

const stockMovementTable = "reg_stock_movements"

// StockRepo implements inventory.Repository.
type StockRepo struct {
	manager *postgres.TxManager
	cols    []string
}

var _ inventory.Repository = (*StockRepo)(nil)

// NewStockRepo creates a new stock movement repository.
func NewStockRepo(manager *postgres.TxManager) *StockRepo {
	return &StockRepo{
		manager: manager,
		cols:    postgres.ExtractDBColumns[inventory.StockMovement](),
	}
}

func (r *StockRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new stock movement.
func (r *StockRepo) Create(ctx context.Context, movement *inventory.StockMovement) error {
	data := postgres.StructToMap(movement)
	filtered := make(map[string]any, len(r.cols))
	for _, col := range r.cols {
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	sql, args, err := r.builder().
		Insert(stockMovementTable).
		SetMap(filtered).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.manager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", stockMovementTable, err)
	}
	return nil
}

// GetByID retrieves a movement by ID.
func (r *StockRepo) GetByID(ctx context.Context, movementID id.ID) (*inventory.StockMovement, error) {
	movement := &inventory.StockMovement{}

	sql, args, err := r.builder().
		Select(r.cols...).
		From(stockMovementTable).
		Where(squirrel.Eq{"id": movementID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.manager.GetQuerier(ctx), movement, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(stockMovementTable, movementID.String())
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return movement, nil
}

// Delete removes a movement.
func (r *StockRepo) Delete(ctx context.Context, movementID id.ID) error {
	sql, args, err := r.builder().
		Delete(stockMovementTable).
		Where(squirrel.Eq{"id": movementID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.manager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete %s: %w", stockMovementTable, err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(stockMovementTable, movementID.String())
	}
	return nil
}

// ListByPeriod returns movements ordered by date then id for the inclusive
// range.
func (r *StockRepo) ListByPeriod(ctx context.Context, orgID id.ID, from, to time.Time) ([]*inventory.StockMovement, error) {
	var movements []*inventory.StockMovement

	sql, args, err := r.builder().
		Select(r.cols...).
		From(stockMovementTable).
		Where(squirrel.Eq{"organization_id": orgID, "deletion_mark": false}).
		Where(squirrel.GtOrEq{"movement_date": from}).
		Where(squirrel.LtOrEq{"movement_date": to}).
		OrderBy("movement_date ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, r.manager.GetQuerier(ctx), &movements, sql, args...); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return movements, nil
}

// StockAt derives per-product, per-warehouse stock as of the given date.
// Incoming movements add, outgoing subtract; rows that net to zero are
// filtered out.
func (r *StockRepo) StockAt(ctx context.Context, orgID id.ID, at time.Time) ([]inventory.StockLevel, error) {
	var levels []inventory.StockLevel

	signCase := `CASE WHEN movement_type IN ('purchase', 'adjustment') THEN 1 ELSE -1 END`

	q := r.builder().
		Select(
			"product_id",
			"product_code",
			"warehouse",
			"MIN(unit) AS unit",
			fmt.Sprintf("COALESCE(SUM(quantity * %s), 0) AS quantity", signCase),
			fmt.Sprintf("COALESCE(SUM(value * %s), 0) AS value", signCase),
		).
		From(stockMovementTable).
		Where(squirrel.Eq{"organization_id": orgID, "deletion_mark": false}).
		Where(squirrel.LtOrEq{"movement_date": at}).
		GroupBy("product_id", "product_code", "warehouse").
		Having(fmt.Sprintf("SUM(quantity * %s) <> 0", signCase)).
		OrderBy("product_code ASC", "warehouse ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, r.manager.GetQuerier(ctx), &levels, sql, args...); err != nil {
		return nil, fmt.Errorf("stock at: %w", err)
	}
	return levels, nil
}
