package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"fiskal/internal/domain/catalogs/contraagent"
	"fiskal/internal/infrastructure/storage/postgres"
)

const contraagentTable = "cat_contraagents"

// ContraagentRepo implements contraagent.Repository.
type ContraagentRepo struct {
	*BaseCatalogRepo[*contraagent.Contraagent]
}

var _ contraagent.Repository = (*ContraagentRepo)(nil)

// NewContraagentRepo creates a new contraagent repository.
func NewContraagentRepo(manager *postgres.TxManager) *ContraagentRepo {
	return &ContraagentRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*contraagent.Contraagent](
			manager,
			contraagentTable,
			postgres.ExtractDBColumns[contraagent.Contraagent](),
			func() *contraagent.Contraagent { return &contraagent.Contraagent{} },
		),
	}
}

// ListCustomers returns all rows with the customer role, ordered by code.
func (r *ContraagentRepo) ListCustomers(ctx context.Context) ([]*contraagent.Contraagent, error) {
	return r.listByRole(ctx, "is_customer")
}

// ListSuppliers returns all rows with the supplier role, ordered by code.
func (r *ContraagentRepo) ListSuppliers(ctx context.Context) ([]*contraagent.Contraagent, error) {
	return r.listByRole(ctx, "is_supplier")
}

func (r *ContraagentRepo) listByRole(ctx context.Context, roleCol string) ([]*contraagent.Contraagent, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{roleCol: true, "deletion_mark": false}).
		OrderBy("code ASC")

	return r.FindMany(ctx, q)
}
