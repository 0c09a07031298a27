package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"fiskal/internal/domain/catalogs/asset"
	"fiskal/internal/infrastructure/storage/postgres"
)

const assetTable = "cat_assets"

// AssetRepo implements asset.Repository.
type AssetRepo struct {
	*BaseCatalogRepo[*asset.Asset]
}

var _ asset.Repository = (*AssetRepo)(nil)

// NewAssetRepo creates a new fixed-assets repository.
func NewAssetRepo(manager *postgres.TxManager) *AssetRepo {
	return &AssetRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*asset.Asset](
			manager,
			assetTable,
			postgres.ExtractDBColumns[asset.Asset](),
			func() *asset.Asset { return &asset.Asset{} },
		),
	}
}

// ListAll returns all assets ordered by code.
func (r *AssetRepo) ListAll(ctx context.Context) ([]*asset.Asset, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("code ASC")

	return r.FindMany(ctx, q)
}
