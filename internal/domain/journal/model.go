// Package journal provides double-entry journal entries and their lines.
package journal

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/entity"
	"fiskal/internal/core/id"
	"fiskal/internal/core/types"
)

// Entry is a journal entry (one accounting transaction).
type Entry struct {
	entity.BaseDocument

	// OrganizationID scopes the entry to a reporting entity
	OrganizationID id.ID `db:"organization_id" json:"organizationId"`

	// Number is the human-readable document number
	Number string `db:"number" json:"number"`

	// EntryDate is the accounting date
	EntryDate time.Time `db:"entry_date" json:"entryDate"`

	// Description explains the transaction
	Description *string `db:"description" json:"description,omitempty"`

	// SourceDocument references the primary document (invoice number etc.)
	SourceDocument *string `db:"source_document" json:"sourceDocument,omitempty"`

	// Posted entries are immutable and visible to reports
	Posted bool `db:"posted" json:"posted"`

	// Lines are loaded by the repository, never persisted through this struct
	Lines []Line `db:"-" json:"lines"`
}

// Line is one side of a journal entry. Exactly one of Debit and Credit is
// non-zero; both are always >= 0.
type Line struct {
	ID      id.ID `db:"id" json:"id"`
	EntryID id.ID `db:"entry_id" json:"entryId"`

	// LineNumber orders lines within the entry, starting at 1
	LineNumber int `db:"line_number" json:"lineNumber"`

	// AccountID and AccountCode reference the chart of accounts
	AccountID   id.ID  `db:"account_id" json:"accountId"`
	AccountCode string `db:"account_code" json:"accountCode"`

	Debit  decimal.Decimal `db:"debit" json:"debit"`
	Credit decimal.Decimal `db:"credit" json:"credit"`

	// ContraagentID is the subledger partner, when applicable
	ContraagentID *id.ID `db:"contraagent_id" json:"contraagentId,omitempty"`

	// Foreign currency details; CurrencyCode always set (base currency for
	// domestic lines), cross-checked against nomenclature during assembly
	CurrencyCode   string           `db:"currency_code" json:"currencyCode"`
	CurrencyAmount *decimal.Decimal `db:"currency_amount" json:"currencyAmount,omitempty"`
	ExchangeRate   *decimal.Decimal `db:"exchange_rate" json:"exchangeRate,omitempty"`

	// VAT details for tax-relevant lines
	VATRate   *decimal.Decimal `db:"vat_rate" json:"vatRate,omitempty"`
	VATBase   *decimal.Decimal `db:"vat_base" json:"vatBase,omitempty"`
	VATAmount *decimal.Decimal `db:"vat_amount" json:"vatAmount,omitempty"`

	Description *string `db:"description" json:"description,omitempty"`
}

// NewEntry creates a new journal entry.
func NewEntry(organizationID id.ID, number string, entryDate time.Time) *Entry {
	return &Entry{
		BaseDocument:   entity.NewBaseDocument(),
		OrganizationID: organizationID,
		Number:         number,
		EntryDate:      entryDate,
	}
}

// TotalDebit sums the debit side of all lines.
func (e *Entry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit side of all lines.
func (e *Entry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// Balanced reports whether |Σdebit - Σcredit| <= 0.01.
func (e *Entry) Balanced() bool {
	return types.WithinTolerance(e.TotalDebit(), e.TotalCredit())
}

// Validate implements entity.Validatable interface.
func (e *Entry) Validate(ctx context.Context) error {
	if id.IsNil(e.OrganizationID) {
		return apperror.NewValidation("organization is required").
			WithDetail("field", "organizationId")
	}

	if e.Number == "" {
		return apperror.NewValidation("document number is required").
			WithDetail("field", "number")
	}

	if e.EntryDate.IsZero() {
		return apperror.NewValidation("entry date is required").
			WithDetail("field", "entryDate")
	}

	if len(e.Lines) < 2 {
		return apperror.NewValidation("journal entry needs at least two lines").
			WithDetail("field", "lines")
	}

	for i := range e.Lines {
		if err := e.Lines[i].validate(); err != nil {
			return err
		}
	}

	if !e.Balanced() {
		return apperror.NewUnbalancedEntry(
			e.ID.String(),
			e.TotalDebit().StringFixed(2),
			e.TotalCredit().StringFixed(2),
		)
	}

	return nil
}

func (l *Line) validate() error {
	if l.AccountCode == "" {
		return apperror.NewValidation("line account code is required").
			WithDetail("field", "accountCode").
			WithDetail("line", l.LineNumber)
	}

	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		return apperror.NewValidation("line amounts cannot be negative").
			WithDetail("line", l.LineNumber)
	}

	// Debit xor credit
	if l.Debit.IsZero() == l.Credit.IsZero() {
		return apperror.NewValidation("line must have exactly one of debit or credit").
			WithDetail("line", l.LineNumber)
	}

	if l.CurrencyCode == "" {
		return apperror.NewValidation("line currency code is required").
			WithDetail("field", "currencyCode").
			WithDetail("line", l.LineNumber)
	}

	return nil
}
