package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"fiskal/internal/domain/catalogs/organization"
	"fiskal/internal/infrastructure/storage/postgres"
)

const organizationTable = "cat_organizations"

// OrganizationRepo implements organization.Repository.
type OrganizationRepo struct {
	*BaseCatalogRepo[*organization.Organization]
}

var _ organization.Repository = (*OrganizationRepo)(nil)

// NewOrganizationRepo creates a new organization repository.
func NewOrganizationRepo(manager *postgres.TxManager) *OrganizationRepo {
	return &OrganizationRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*organization.Organization](
			manager,
			organizationTable,
			postgres.ExtractDBColumns[organization.Organization](),
			func() *organization.Organization { return &organization.Organization{} },
		),
	}
}

// GetDefault retrieves the default organization.
func (r *OrganizationRepo) GetDefault(ctx context.Context) (*organization.Organization, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"is_default": true, "deletion_mark": false}).
		Limit(1)

	return r.FindOne(ctx, q)
}
