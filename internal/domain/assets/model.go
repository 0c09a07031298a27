// Package assets provides fixed-asset transactions.
package assets

import (
	"context"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/entity"
	"fiskal/internal/core/id"
)

// TransactionType classifies an asset transaction. The set is closed: every
// switch over TransactionType must handle all four values.
type TransactionType uint8

const (
	TransactionAcquisition TransactionType = iota + 1
	TransactionDepreciation
	TransactionDisposal
	TransactionRevaluation
)

// String returns the stable wire name of the transaction type.
func (t TransactionType) String() string {
	switch t {
	case TransactionAcquisition:
		return "acquisition"
	case TransactionDepreciation:
		return "depreciation"
	case TransactionDisposal:
		return "disposal"
	case TransactionRevaluation:
		return "revaluation"
	}
	return fmt.Sprintf("TransactionType(%d)", uint8(t))
}

// ParseTransactionType converts a wire name into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch s {
	case "acquisition":
		return TransactionAcquisition, nil
	case "depreciation":
		return TransactionDepreciation, nil
	case "disposal":
		return TransactionDisposal, nil
	case "revaluation":
		return TransactionRevaluation, nil
	}
	return 0, fmt.Errorf("unknown asset transaction type %q", s)
}

// Value implements driver.Valuer (stored as text).
func (t TransactionType) Value() (driver.Value, error) {
	switch t {
	case TransactionAcquisition, TransactionDepreciation, TransactionDisposal, TransactionRevaluation:
		return t.String(), nil
	}
	return nil, fmt.Errorf("invalid asset transaction type %d", uint8(t))
}

// Scan implements sql.Scanner.
func (t *TransactionType) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into assets.TransactionType", src)
	}
	parsed, err := ParseTransactionType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON renders the type as its wire name.
func (t TransactionType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON parses the wire name.
func (t *TransactionType) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("asset transaction type must be a JSON string")
	}
	parsed, err := ParseTransactionType(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Transaction records an event in the life of a fixed asset.
type Transaction struct {
	entity.BaseDocument

	OrganizationID id.ID `db:"organization_id" json:"organizationId"`

	AssetID   id.ID  `db:"asset_id" json:"assetId"`
	AssetCode string `db:"asset_code" json:"assetCode"`

	TransactionType TransactionType `db:"transaction_type" json:"transactionType"`

	TransactionDate time.Time `db:"transaction_date" json:"transactionDate"`

	// Amount is the monetary effect of the transaction
	Amount decimal.Decimal `db:"amount" json:"amount"`

	// Valuations after the transaction
	AcquisitionCost decimal.Decimal `db:"acquisition_cost" json:"acquisitionCost"`
	BookValue       decimal.Decimal `db:"book_value" json:"bookValue"`

	// Counterparty denormalized for the report (acquisitions and disposals)
	SupplierName      *string `db:"supplier_name" json:"supplierName,omitempty"`
	SupplierVATNumber *string `db:"supplier_vat_number" json:"supplierVatNumber,omitempty"`

	// DocumentRef references the source document
	DocumentRef *string `db:"document_ref" json:"documentRef,omitempty"`

	Description *string `db:"description" json:"description,omitempty"`
}

// NewTransaction creates an asset transaction with required fields.
func NewTransaction(orgID, assetID id.ID, txType TransactionType, date time.Time, amount decimal.Decimal) *Transaction {
	return &Transaction{
		BaseDocument:    entity.NewBaseDocument(),
		OrganizationID:  orgID,
		AssetID:         assetID,
		TransactionType: txType,
		TransactionDate: date,
		Amount:          amount,
		AcquisitionCost: decimal.Zero,
		BookValue:       decimal.Zero,
	}
}

// Validate implements entity.Validatable interface.
func (tr *Transaction) Validate(ctx context.Context) error {
	if id.IsNil(tr.OrganizationID) {
		return apperror.NewValidation("organization is required").
			WithDetail("field", "organizationId")
	}
	if id.IsNil(tr.AssetID) {
		return apperror.NewValidation("asset is required").
			WithDetail("field", "assetId")
	}
	if _, err := tr.TransactionType.Value(); err != nil {
		return apperror.NewValidation("invalid asset transaction type").
			WithDetail("field", "transactionType")
	}
	if tr.TransactionDate.IsZero() {
		return apperror.NewValidation("transaction date is required").
			WithDetail("field", "transactionDate")
	}
	return nil
}
