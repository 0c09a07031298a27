package assets

import (
	"context"
	"fmt"
	"time"

	"fiskal/internal/core/id"
	"fiskal/internal/core/tx"
)

// Service provides business logic for asset transactions.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new asset transaction Service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// Create validates and persists an asset transaction.
func (s *Service) Create(ctx context.Context, tr *Transaction) error {
	if err := tr.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, tr); err != nil {
			return fmt.Errorf("create asset transaction: %w", err)
		}
		return nil
	})
}

// GetByID loads an asset transaction.
func (s *Service) GetByID(ctx context.Context, trID id.ID) (*Transaction, error) {
	return s.repo.GetByID(ctx, trID)
}

// Delete removes an asset transaction.
func (s *Service) Delete(ctx context.Context, trID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, trID)
	})
}

// ListByPeriod returns transactions for the date range.
func (s *Service) ListByPeriod(ctx context.Context, orgID id.ID, from, to time.Time) ([]*Transaction, error) {
	return s.repo.ListByPeriod(ctx, orgID, from, to)
}
