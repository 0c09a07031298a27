package inventory

import (
	"context"
	"fmt"
	"time"

	"fiskal/internal/core/id"
	"fiskal/internal/core/tx"
)

// Service provides business logic for stock movements.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new inventory Service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// Create validates and persists a stock movement.
func (s *Service) Create(ctx context.Context, movement *StockMovement) error {
	if err := movement.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, movement); err != nil {
			return fmt.Errorf("create stock movement: %w", err)
		}
		return nil
	})
}

// GetByID loads a stock movement.
func (s *Service) GetByID(ctx context.Context, movementID id.ID) (*StockMovement, error) {
	return s.repo.GetByID(ctx, movementID)
}

// Delete removes a stock movement.
func (s *Service) Delete(ctx context.Context, movementID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, movementID)
	})
}

// ListByPeriod returns movements for the date range.
func (s *Service) ListByPeriod(ctx context.Context, orgID id.ID, from, to time.Time) ([]*StockMovement, error) {
	return s.repo.ListByPeriod(ctx, orgID, from, to)
}

// StockAt derives stock levels as of a date.
func (s *Service) StockAt(ctx context.Context, orgID id.ID, at time.Time) ([]StockLevel, error) {
	return s.repo.StockAt(ctx, orgID, at)
}
