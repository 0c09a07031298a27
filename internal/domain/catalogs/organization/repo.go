package organization

import (
	"context"

	"fiskal/internal/domain"
)

// Repository defines the interface for organization storage.
type Repository interface {
	domain.CatalogRepository[*Organization]

	GetDefault(ctx context.Context) (*Organization, error)
}
