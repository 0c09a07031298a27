// Package document_repo provides PostgreSQL implementations for document
// repositories (journal entries, stock movements, asset transactions).
package document_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/id"
	"fiskal/internal/domain/journal"
	"fiskal/internal/infrastructure/storage/postgres"
)

const (
	journalEntryTable = "doc_journal_entries"
	journalLineTable  = "doc_journal_lines"
)

// JournalRepo implements journal.Repository. Entries and their lines are
// written in one transaction; an entry is never visible without its lines.
type JournalRepo struct {
	manager    *postgres.TxManager
	entryCols  []string
	lineCols   []string
}

var _ journal.Repository = (*JournalRepo)(nil)

// NewJournalRepo creates a new journal repository.
func NewJournalRepo(manager *postgres.TxManager) *JournalRepo {
	return &JournalRepo{
		manager:   manager,
		entryCols: postgres.ExtractDBColumns[journal.Entry](),
		lineCols:  postgres.ExtractDBColumns[journal.Line](),
	}
}

func (r *JournalRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create persists the entry together with its lines.
func (r *JournalRepo) Create(ctx context.Context, entry *journal.Entry) error {
	return r.manager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := r.insertEntry(ctx, entry); err != nil {
			return err
		}
		return r.insertLines(ctx, entry)
	})
}

func (r *JournalRepo) insertEntry(ctx context.Context, entry *journal.Entry) error {
	data := postgres.StructToMap(entry)
	filtered := make(map[string]any, len(r.entryCols))
	for _, col := range r.entryCols {
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	sql, args, err := r.builder().
		Insert(journalEntryTable).
		SetMap(filtered).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert entry: %w", err)
	}

	if _, err := r.manager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", journalEntryTable, err)
	}
	return nil
}

func (r *JournalRepo) insertLines(ctx context.Context, entry *journal.Entry) error {
	if len(entry.Lines) == 0 {
		return nil
	}

	q := r.builder().Insert(journalLineTable).Columns(r.lineCols...)
	for i := range entry.Lines {
		entry.Lines[i].EntryID = entry.ID
		data := postgres.StructToMap(&entry.Lines[i])
		row := make([]any, 0, len(r.lineCols))
		for _, col := range r.lineCols {
			row = append(row, data[col])
		}
		q = q.Values(row...)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}

	if _, err := r.manager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", journalLineTable, err)
	}
	return nil
}

// GetByID retrieves the entry with its lines ordered by line number.
func (r *JournalRepo) GetByID(ctx context.Context, entryID id.ID) (*journal.Entry, error) {
	entry := &journal.Entry{}

	sql, args, err := r.builder().
		Select(r.entryCols...).
		From(journalEntryTable).
		Where(squirrel.Eq{"id": entryID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := r.manager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, entry, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(journalEntryTable, entryID.String())
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}

	lines, err := r.linesFor(ctx, []id.ID{entryID})
	if err != nil {
		return nil, err
	}
	entry.Lines = lines[entryID.String()]

	return entry, nil
}

// Update rewrites the entry and replaces its lines in one transaction, with
// optimistic locking on the entry row.
func (r *JournalRepo) Update(ctx context.Context, entry *journal.Entry) error {
	return r.manager.RunInTransaction(ctx, func(ctx context.Context) error {
		data := postgres.StructToMap(entry)
		filtered := make(map[string]any, len(r.entryCols))
		for _, col := range r.entryCols {
			if col == "id" || col == "version" {
				continue
			}
			if val, ok := data[col]; ok {
				filtered[col] = val
			}
		}

		sql, args, err := r.builder().
			Update(journalEntryTable).
			SetMap(filtered).
			Set("version", squirrel.Expr("version + 1")).
			Where(squirrel.Eq{"id": entry.ID}).
			Where(squirrel.Eq{"version": entry.Version}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build update entry: %w", err)
		}

		result, err := r.manager.GetQuerier(ctx).Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("update %s: %w", journalEntryTable, err)
		}
		if result.RowsAffected() == 0 {
			return apperror.NewConcurrentModification(journalEntryTable, entry.ID.String())
		}

		if err := r.deleteLines(ctx, entry.ID); err != nil {
			return err
		}
		return r.insertLines(ctx, entry)
	})
}

// Delete removes the entry and cascades to its lines explicitly. The lines
// are deleted first so the entry never exists in a half-removed state.
func (r *JournalRepo) Delete(ctx context.Context, entryID id.ID) error {
	return r.manager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := r.deleteLines(ctx, entryID); err != nil {
			return err
		}

		sql, args, err := r.builder().
			Delete(journalEntryTable).
			Where(squirrel.Eq{"id": entryID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build delete entry: %w", err)
		}

		result, err := r.manager.GetQuerier(ctx).Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("delete %s: %w", journalEntryTable, err)
		}
		if result.RowsAffected() == 0 {
			return apperror.NewNotFound(journalEntryTable, entryID.String())
		}
		return nil
	})
}

func (r *JournalRepo) deleteLines(ctx context.Context, entryID id.ID) error {
	sql, args, err := r.builder().
		Delete(journalLineTable).
		Where(squirrel.Eq{"entry_id": entryID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete lines: %w", err)
	}

	if _, err := r.manager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete %s: %w", journalLineTable, err)
	}
	return nil
}

// SetPosted flips the posted flag.
func (r *JournalRepo) SetPosted(ctx context.Context, entryID id.ID, posted bool) error {
	sql, args, err := r.builder().
		Update(journalEntryTable).
		Set("posted", posted).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": entryID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set posted: %w", err)
	}

	result, err := r.manager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("set posted: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(journalEntryTable, entryID.String())
	}
	return nil
}

// ListByPeriod returns posted entries with lines for the inclusive range,
// ordered by date then number for stable report output.
func (r *JournalRepo) ListByPeriod(ctx context.Context, orgID id.ID, from, to time.Time) ([]*journal.Entry, error) {
	var entries []*journal.Entry

	sql, args, err := r.builder().
		Select(r.entryCols...).
		From(journalEntryTable).
		Where(squirrel.Eq{"organization_id": orgID, "posted": true, "deletion_mark": false}).
		Where(squirrel.GtOrEq{"entry_date": from}).
		Where(squirrel.LtOrEq{"entry_date": to}).
		OrderBy("entry_date ASC", "number ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := r.manager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &entries, sql, args...); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	if len(entries) == 0 {
		return entries, nil
	}

	ids := make([]id.ID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}

	lines, err := r.linesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		e.Lines = lines[e.ID.String()]
	}

	return entries, nil
}

// linesFor loads lines for a set of entries in one round trip.
func (r *JournalRepo) linesFor(ctx context.Context, entryIDs []id.ID) (map[string][]journal.Line, error) {
	var lines []journal.Line

	sql, args, err := r.builder().
		Select(r.lineCols...).
		From(journalLineTable).
		Where(squirrel.Eq{"entry_id": entryIDs}).
		OrderBy("entry_id ASC", "line_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := r.manager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("list lines: %w", err)
	}

	byEntry := make(map[string][]journal.Line, len(entryIDs))
	for _, l := range lines {
		key := l.EntryID.String()
		byEntry[key] = append(byEntry[key], l)
	}
	return byEntry, nil
}

// TurnoversBetween returns per-account totals for the inclusive date range.
func (r *JournalRepo) TurnoversBetween(ctx context.Context, orgID id.ID, from, to time.Time) ([]journal.AccountTurnover, error) {
	q := r.turnoverBase(orgID).
		Where(squirrel.GtOrEq{"e.entry_date": from}).
		Where(squirrel.LtOrEq{"e.entry_date": to})
	return r.turnovers(ctx, q)
}

func (r *JournalRepo) turnoverBase(orgID id.ID) squirrel.SelectBuilder {
	return r.builder().
		Select(
			"l.account_code AS account_code",
			"COALESCE(SUM(l.debit), 0) AS debit",
			"COALESCE(SUM(l.credit), 0) AS credit",
		).
		From(journalLineTable + " l").
		Join(journalEntryTable + " e ON e.id = l.entry_id").
		Where(squirrel.Eq{"e.organization_id": orgID, "e.posted": true, "e.deletion_mark": false}).
		GroupBy("l.account_code")
}

func (r *JournalRepo) turnovers(ctx context.Context, q squirrel.SelectBuilder) ([]journal.AccountTurnover, error) {
	var turns []journal.AccountTurnover

	sql, args, err := q.OrderBy("l.account_code ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := r.manager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &turns, sql, args...); err != nil {
		return nil, fmt.Errorf("turnovers: %w", err)
	}
	return turns, nil
}
