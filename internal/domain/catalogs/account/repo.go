package account

import (
	"context"

	"fiskal/internal/domain"
)

// Repository defines the interface for account storage.
type Repository interface {
	domain.CatalogRepository[*Account]

	// ListAll returns the full chart of accounts ordered by code.
	ListAll(ctx context.Context) ([]*Account, error)
}
