package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"fiskal/internal/core/id"
	"fiskal/internal/domain/journal"
)

// --- Request DTOs ---

// JournalLineRequest is one line of a journal entry.
type JournalLineRequest struct {
	LineNumber     int              `json:"lineNumber" binding:"required,min=1"`
	AccountID      string           `json:"accountId" binding:"required"`
	AccountCode    string           `json:"accountCode" binding:"required"`
	Debit          decimal.Decimal  `json:"debit"`
	Credit         decimal.Decimal  `json:"credit"`
	ContraagentID  *string          `json:"contraagentId"`
	CurrencyCode   string           `json:"currencyCode" binding:"required"`
	CurrencyAmount *decimal.Decimal `json:"currencyAmount"`
	ExchangeRate   *decimal.Decimal `json:"exchangeRate"`
	VATRate        *decimal.Decimal `json:"vatRate"`
	VATBase        *decimal.Decimal `json:"vatBase"`
	VATAmount      *decimal.Decimal `json:"vatAmount"`
	Description    *string          `json:"description"`
}

func (r *JournalLineRequest) toLine() (journal.Line, error) {
	accountID, err := id.Parse(r.AccountID)
	if err != nil {
		return journal.Line{}, err
	}

	line := journal.Line{
		ID:             id.New(),
		LineNumber:     r.LineNumber,
		AccountID:      accountID,
		AccountCode:    r.AccountCode,
		Debit:          r.Debit,
		Credit:         r.Credit,
		CurrencyCode:   r.CurrencyCode,
		CurrencyAmount: r.CurrencyAmount,
		ExchangeRate:   r.ExchangeRate,
		VATRate:        r.VATRate,
		VATBase:        r.VATBase,
		VATAmount:      r.VATAmount,
		Description:    r.Description,
	}

	if r.ContraagentID != nil && *r.ContraagentID != "" {
		partyID, err := id.Parse(*r.ContraagentID)
		if err != nil {
			return journal.Line{}, err
		}
		line.ContraagentID = &partyID
	}

	return line, nil
}

// CreateJournalEntryRequest is the request body for creating a journal entry.
type CreateJournalEntryRequest struct {
	OrganizationID string               `json:"organizationId" binding:"required"`
	Number         string               `json:"number" binding:"required"`
	EntryDate      time.Time            `json:"entryDate" binding:"required"`
	Description    *string              `json:"description"`
	SourceDocument *string              `json:"sourceDocument"`
	Lines          []JournalLineRequest `json:"lines" binding:"required,min=2"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateJournalEntryRequest) ToEntity() (*journal.Entry, error) {
	orgID, err := id.Parse(r.OrganizationID)
	if err != nil {
		return nil, err
	}

	entry := journal.NewEntry(orgID, r.Number, r.EntryDate)
	entry.Description = r.Description
	entry.SourceDocument = r.SourceDocument

	entry.Lines = make([]journal.Line, 0, len(r.Lines))
	for i := range r.Lines {
		line, err := r.Lines[i].toLine()
		if err != nil {
			return nil, err
		}
		line.EntryID = entry.ID
		entry.Lines = append(entry.Lines, line)
	}

	return entry, nil
}

// UpdateJournalEntryRequest is the request body for updating an unposted entry.
type UpdateJournalEntryRequest struct {
	Number         string               `json:"number" binding:"required"`
	EntryDate      time.Time            `json:"entryDate" binding:"required"`
	Description    *string              `json:"description"`
	SourceDocument *string              `json:"sourceDocument"`
	Lines          []JournalLineRequest `json:"lines" binding:"required,min=2"`
	Version        int                  `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateJournalEntryRequest) ApplyTo(entry *journal.Entry) error {
	entry.Number = r.Number
	entry.EntryDate = r.EntryDate
	entry.Description = r.Description
	entry.SourceDocument = r.SourceDocument
	entry.Version = r.Version

	entry.Lines = make([]journal.Line, 0, len(r.Lines))
	for i := range r.Lines {
		line, err := r.Lines[i].toLine()
		if err != nil {
			return err
		}
		line.EntryID = entry.ID
		entry.Lines = append(entry.Lines, line)
	}

	return nil
}

// --- Response DTOs ---

// JournalLineResponse is one line of a journal entry.
type JournalLineResponse struct {
	ID             string           `json:"id"`
	LineNumber     int              `json:"lineNumber"`
	AccountID      string           `json:"accountId"`
	AccountCode    string           `json:"accountCode"`
	Debit          decimal.Decimal  `json:"debit"`
	Credit         decimal.Decimal  `json:"credit"`
	ContraagentID  *string          `json:"contraagentId,omitempty"`
	CurrencyCode   string           `json:"currencyCode"`
	CurrencyAmount *decimal.Decimal `json:"currencyAmount,omitempty"`
	ExchangeRate   *decimal.Decimal `json:"exchangeRate,omitempty"`
	VATRate        *decimal.Decimal `json:"vatRate,omitempty"`
	VATBase        *decimal.Decimal `json:"vatBase,omitempty"`
	VATAmount      *decimal.Decimal `json:"vatAmount,omitempty"`
	Description    *string          `json:"description,omitempty"`
}

// JournalEntryResponse is the response body for a journal entry.
type JournalEntryResponse struct {
	ID             string                `json:"id"`
	OrganizationID string                `json:"organizationId"`
	Number         string                `json:"number"`
	EntryDate      time.Time             `json:"entryDate"`
	Description    *string               `json:"description,omitempty"`
	SourceDocument *string               `json:"sourceDocument,omitempty"`
	Posted         bool                  `json:"posted"`
	TotalDebit     decimal.Decimal       `json:"totalDebit"`
	TotalCredit    decimal.Decimal       `json:"totalCredit"`
	Lines          []JournalLineResponse `json:"lines"`
	DeletionMark   bool                  `json:"deletionMark"`
	Version        int                   `json:"version"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// FromJournalEntry creates response DTO from domain entity.
func FromJournalEntry(e *journal.Entry) *JournalEntryResponse {
	lines := make([]JournalLineResponse, 0, len(e.Lines))
	for i := range e.Lines {
		l := e.Lines[i]
		resp := JournalLineResponse{
			ID:             l.ID.String(),
			LineNumber:     l.LineNumber,
			AccountID:      l.AccountID.String(),
			AccountCode:    l.AccountCode,
			Debit:          l.Debit,
			Credit:         l.Credit,
			CurrencyCode:   l.CurrencyCode,
			CurrencyAmount: l.CurrencyAmount,
			ExchangeRate:   l.ExchangeRate,
			VATRate:        l.VATRate,
			VATBase:        l.VATBase,
			VATAmount:      l.VATAmount,
			Description:    l.Description,
		}
		if l.ContraagentID != nil {
			s := l.ContraagentID.String()
			resp.ContraagentID = &s
		}
		lines = append(lines, resp)
	}

	return &JournalEntryResponse{
		ID:             e.ID.String(),
		OrganizationID: e.OrganizationID.String(),
		Number:         e.Number,
		EntryDate:      e.EntryDate,
		Description:    e.Description,
		SourceDocument: e.SourceDocument,
		Posted:         e.Posted,
		TotalDebit:     e.TotalDebit(),
		TotalCredit:    e.TotalCredit(),
		Lines:          lines,
		DeletionMark:   e.DeletionMark,
		Version:        e.Version,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
