package product

import (
	"context"

	"fiskal/internal/domain"
)

// Repository defines the interface for product storage.
type Repository interface {
	domain.CatalogRepository[*Product]

	// ListGoods returns all physical products ordered by code.
	ListGoods(ctx context.Context) ([]*Product, error)
}
