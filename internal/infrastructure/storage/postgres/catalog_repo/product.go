package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"fiskal/internal/domain/catalogs/product"
	"fiskal/internal/infrastructure/storage/postgres"
)

const productTable = "cat_products"

// ProductRepo implements product.Repository.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

var _ product.Repository = (*ProductRepo)(nil)

// NewProductRepo creates a new product repository.
func NewProductRepo(manager *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*product.Product](
			manager,
			productTable,
			postgres.ExtractDBColumns[product.Product](),
			func() *product.Product { return &product.Product{} },
		),
	}
}

// ListGoods returns all physical products ordered by code.
func (r *ProductRepo) ListGoods(ctx context.Context) ([]*product.Product, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"is_service": false, "deletion_mark": false}).
		OrderBy("code ASC")

	return r.FindMany(ctx, q)
}
