// Package account provides the chart-of-accounts catalog.
package account

import (
	"context"
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/entity"
)

// Type classifies a general ledger account. The set is closed: every switch
// over Type must handle all five values.
type Type uint8

const (
	TypeAsset Type = iota + 1
	TypeLiability
	TypeEquity
	TypeRevenue
	TypeExpense
)

// String returns the stable wire name of the account type.
func (t Type) String() string {
	switch t {
	case TypeAsset:
		return "asset"
	case TypeLiability:
		return "liability"
	case TypeEquity:
		return "equity"
	case TypeRevenue:
		return "revenue"
	case TypeExpense:
		return "expense"
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ParseType converts a wire name into a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "asset":
		return TypeAsset, nil
	case "liability":
		return TypeLiability, nil
	case "equity":
		return TypeEquity, nil
	case "revenue":
		return TypeRevenue, nil
	case "expense":
		return TypeExpense, nil
	}
	return 0, fmt.Errorf("unknown account type %q", s)
}

// Value implements driver.Valuer (stored as text).
func (t Type) Value() (driver.Value, error) {
	switch t {
	case TypeAsset, TypeLiability, TypeEquity, TypeRevenue, TypeExpense:
		return t.String(), nil
	}
	return nil, fmt.Errorf("invalid account type %d", uint8(t))
}

// Scan implements sql.Scanner.
func (t *Type) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into account.Type", src)
	}
	parsed, err := ParseType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON renders the type as its wire name.
func (t Type) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON parses the wire name.
func (t *Type) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("account type must be a JSON string")
	}
	parsed, err := ParseType(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Account represents one row of the chart of accounts.
type Account struct {
	entity.Catalog

	// AccountType classifies the account
	AccountType Type `db:"account_type" json:"accountType"`

	// IsDebitAccount marks accounts with debit nature (assets, expenses)
	IsDebitAccount bool `db:"is_debit_account" json:"isDebitAccount"`

	// OpeningBalance is the signed balance at the start of the fiscal year
	OpeningBalance decimal.Decimal `db:"opening_balance" json:"openingBalance"`

	// TaxpayerAccountCode maps the account into the regulator's taxonomy
	TaxpayerAccountCode *string `db:"taxpayer_account_code" json:"taxpayerAccountCode,omitempty"`
}

// NewAccount creates a new Account with required fields.
func NewAccount(code, name string, accountType Type) *Account {
	a := &Account{
		Catalog:        entity.NewCatalog(code, name),
		AccountType:    accountType,
		OpeningBalance: decimal.Zero,
	}
	a.IsDebitAccount = accountType.debitNature()
	return a
}

func (t Type) debitNature() bool {
	switch t {
	case TypeAsset, TypeExpense:
		return true
	case TypeLiability, TypeEquity, TypeRevenue:
		return false
	}
	return false
}

// Validate implements entity.Validatable interface.
func (a *Account) Validate(ctx context.Context) error {
	if err := a.Catalog.Validate(ctx); err != nil {
		return err
	}

	if _, err := a.AccountType.Value(); err != nil {
		return apperror.NewValidation("invalid account type").
			WithDetail("field", "accountType")
	}

	return nil
}
