package register_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/id"
	"fiskal/internal/domain/assets"
	"fiskal/internal/infrastructure/storage/postgres"
)

const assetTransactionTable = "reg_asset_transactions"

// AssetTransactionRepo implements assets.Repository.
type AssetTransactionRepo struct {
	manager *postgres.TxManager
	cols    []string
}

var _ assets.Repository = (*AssetTransactionRepo)(nil)

// NewAssetTransactionRepo creates a new asset transaction repository.
func NewAssetTransactionRepo(manager *postgres.TxManager) *AssetTransactionRepo {
	return &AssetTransactionRepo{
		manager: manager,
		cols:    postgres.ExtractDBColumns[assets.Transaction](),
	}
}

func (r *AssetTransactionRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new asset transaction.
func (r *AssetTransactionRepo) Create(ctx context.Context, tr *assets.Transaction) error {
	data := postgres.StructToMap(tr)
	filtered := make(map[string]any, len(r.cols))
	for _, col := range r.cols {
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	sql, args, err := r.builder().
		Insert(assetTransactionTable).
		SetMap(filtered).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.manager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", assetTransactionTable, err)
	}
	return nil
}

// GetByID retrieves a transaction by ID.
func (r *AssetTransactionRepo) GetByID(ctx context.Context, trID id.ID) (*assets.Transaction, error) {
	tr := &assets.Transaction{}

	sql, args, err := r.builder().
		Select(r.cols...).
		From(assetTransactionTable).
		Where(squirrel.Eq{"id": trID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.manager.GetQuerier(ctx), tr, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(assetTransactionTable, trID.String())
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return tr, nil
}

// Delete removes a transaction.
func (r *AssetTransactionRepo) Delete(ctx context.Context, trID id.ID) error {
	sql, args, err := r.builder().
		Delete(assetTransactionTable).
		Where(squirrel.Eq{"id": trID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.manager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete %s: %w", assetTransactionTable, err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(assetTransactionTable, trID.String())
	}
	return nil
}

// ListByPeriod returns transactions ordered by date then id for the
// inclusive range.
func (r *AssetTransactionRepo) ListByPeriod(ctx context.Context, orgID id.ID, from, to time.Time) ([]*assets.Transaction, error) {
	var trs []*assets.Transaction

	sql, args, err := r.builder().
		Select(r.cols...).
		From(assetTransactionTable).
		Where(squirrel.Eq{"organization_id": orgID, "deletion_mark": false}).
		Where(squirrel.GtOrEq{"transaction_date": from}).
		Where(squirrel.LtOrEq{"transaction_date": to}).
		OrderBy("transaction_date ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, r.manager.GetQuerier(ctx), &trs, sql, args...); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return trs, nil
}
