package asset

import (
	"context"

	"fiskal/internal/domain"
)

// Repository defines the interface for asset storage.
type Repository interface {
	domain.CatalogRepository[*Asset]

	// ListAll returns all assets ordered by code.
	ListAll(ctx context.Context) ([]*Asset, error)
}
