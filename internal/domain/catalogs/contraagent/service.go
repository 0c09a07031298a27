package contraagent

import (
	"context"

	"fiskal/internal/core/tx"
	"fiskal/internal/domain"
)

// Service provides business logic for the Contraagent catalog.
type Service struct {
	*domain.CatalogService[*Contraagent]
	repo Repository
}

// NewService creates a new Contraagent service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Contraagent]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "contraagent",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}

// ListCustomers returns all customers.
func (s *Service) ListCustomers(ctx context.Context) ([]*Contraagent, error) {
	return s.repo.ListCustomers(ctx)
}

// ListSuppliers returns all suppliers.
func (s *Service) ListSuppliers(ctx context.Context) ([]*Contraagent, error) {
	return s.repo.ListSuppliers(ctx)
}
