package account

import (
	"context"

	"fiskal/internal/core/tx"
	"fiskal/internal/domain"
)

// Service provides business logic for the chart of accounts.
type Service struct {
	*domain.CatalogService[*Account]
	repo Repository
}

// NewService creates a new Account service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Account]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "account",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}

// ListAll returns the full chart of accounts.
func (s *Service) ListAll(ctx context.Context) ([]*Account, error) {
	return s.repo.ListAll(ctx)
}
