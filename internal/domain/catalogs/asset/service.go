package asset

import (
	"context"

	"fiskal/internal/core/tx"
	"fiskal/internal/domain"
)

// Service provides business logic for the Asset catalog.
type Service struct {
	*domain.CatalogService[*Asset]
	repo Repository
}

// NewService creates a new Asset service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Asset]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "asset",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}

// ListAll returns all assets.
func (s *Service) ListAll(ctx context.Context) ([]*Asset, error) {
	return s.repo.ListAll(ctx)
}
