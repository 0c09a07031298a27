package journal

import (
	"context"
	"fmt"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/id"
	"fiskal/internal/core/tx"
	"fiskal/pkg/logger"
)

// Service provides business logic for journal entries.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new journal Service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// Create validates and persists a new entry with its lines.
func (s *Service) Create(ctx context.Context, entry *Entry) error {
	if err := entry.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, entry); err != nil {
			return fmt.Errorf("create journal entry: %w", err)
		}
		return nil
	})
}

// GetByID loads an entry with its lines.
func (s *Service) GetByID(ctx context.Context, entryID id.ID) (*Entry, error) {
	return s.repo.GetByID(ctx, entryID)
}

// Update replaces an unposted entry and its lines.
func (s *Service) Update(ctx context.Context, entry *Entry) error {
	if err := entry.Validate(ctx); err != nil {
		return err
	}

	existing, err := s.repo.GetByID(ctx, entry.ID)
	if err != nil {
		return err
	}
	if existing.Posted {
		return apperror.NewBusinessRule(apperror.CodeEntryPosted,
			"posted entries cannot be modified")
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, entry); err != nil {
			return fmt.Errorf("update journal entry: %w", err)
		}
		return nil
	})
}

// Delete removes an unposted entry together with its lines.
func (s *Service) Delete(ctx context.Context, entryID id.ID) error {
	existing, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if existing.Posted {
		return apperror.NewBusinessRule(apperror.CodeEntryPosted,
			"posted entries cannot be deleted; unpost first")
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, entryID); err != nil {
			return fmt.Errorf("delete journal entry: %w", err)
		}
		return nil
	})
}

// Post marks an entry as posted after re-checking the balance invariant.
func (s *Service) Post(ctx context.Context, entryID id.ID) error {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.Posted {
		return apperror.NewBusinessRule(apperror.CodeEntryPosted,
			"entry is already posted")
	}
	if !entry.Balanced() {
		return apperror.NewUnbalancedEntry(
			entry.ID.String(),
			entry.TotalDebit().StringFixed(2),
			entry.TotalCredit().StringFixed(2),
		)
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetPosted(ctx, entryID, true)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "journal entry posted", "entry_id", entryID.String(), "number", entry.Number)
	return nil
}

// Unpost clears the posted flag so the entry can be edited again.
func (s *Service) Unpost(ctx context.Context, entryID id.ID) error {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if !entry.Posted {
		return nil
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetPosted(ctx, entryID, false)
	})
}
