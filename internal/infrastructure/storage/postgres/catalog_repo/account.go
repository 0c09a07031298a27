package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"fiskal/internal/domain/catalogs/account"
	"fiskal/internal/infrastructure/storage/postgres"
)

const accountTable = "cat_accounts"

// AccountRepo implements account.Repository.
type AccountRepo struct {
	*BaseCatalogRepo[*account.Account]
}

var _ account.Repository = (*AccountRepo)(nil)

// NewAccountRepo creates a new chart-of-accounts repository.
func NewAccountRepo(manager *postgres.TxManager) *AccountRepo {
	return &AccountRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*account.Account](
			manager,
			accountTable,
			postgres.ExtractDBColumns[account.Account](),
			func() *account.Account { return &account.Account{} },
		),
	}
}

// ListAll returns the full chart of accounts ordered by code.
func (r *AccountRepo) ListAll(ctx context.Context) ([]*account.Account, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("code ASC")

	return r.FindMany(ctx, q)
}
