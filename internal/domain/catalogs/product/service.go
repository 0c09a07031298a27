package product

import (
	"context"

	"fiskal/internal/core/tx"
	"fiskal/internal/domain"
)

// Service provides business logic for the Product catalog.
type Service struct {
	*domain.CatalogService[*Product]
	repo Repository
}

// NewService creates a new Product service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "product",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}

// ListGoods returns all physical products.
func (s *Service) ListGoods(ctx context.Context) ([]*Product, error) {
	return s.repo.ListGoods(ctx)
}
