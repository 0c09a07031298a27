package organization

import (
	"context"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/tx"
	"fiskal/internal/domain"
)

// Service provides business logic for Organization catalog.
type Service struct {
	*domain.CatalogService[*Organization]
	repo Repository
}

// NewService creates a new Organization service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Organization]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "organization",
	})

	// Report endpoints fall back to the default organization, so at most
	// one row may carry the flag.
	guard := singleDefaultGuard(repo)
	base.Hooks().On(domain.BeforeCreate, guard)
	base.Hooks().On(domain.BeforeUpdate, guard)

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}

// singleDefaultGuard rejects a write that would leave two organizations
// marked as default.
func singleDefaultGuard(repo Repository) domain.Hook[*Organization] {
	return func(ctx context.Context, org *Organization) error {
		if !org.IsDefault {
			return nil
		}

		existing, err := repo.GetDefault(ctx)
		if apperror.IsNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		if existing.ID != org.ID {
			return apperror.NewConflict("another organization is already marked as default").
				WithDetail("defaultOrganizationId", existing.ID.String())
		}
		return nil
	}
}

// GetDefault retrieves the default organization.
func (s *Service) GetDefault(ctx context.Context) (*Organization, error) {
	return s.repo.GetDefault(ctx)
}
