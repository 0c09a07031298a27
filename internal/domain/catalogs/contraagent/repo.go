package contraagent

import (
	"context"

	"fiskal/internal/domain"
)

// Repository defines the interface for contraagent storage.
type Repository interface {
	domain.CatalogRepository[*Contraagent]

	// ListCustomers returns all rows with the customer role, ordered by code.
	ListCustomers(ctx context.Context) ([]*Contraagent, error)

	// ListSuppliers returns all rows with the supplier role, ordered by code.
	ListSuppliers(ctx context.Context) ([]*Contraagent, error)
}
