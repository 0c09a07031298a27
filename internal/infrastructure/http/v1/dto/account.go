package dto

import (
	"github.com/shopspring/decimal"

	"fiskal/internal/domain/catalogs/account"
)

// --- Request DTOs ---

// CreateAccountRequest is the request body for creating a GL account.
type CreateAccountRequest struct {
	Code                string          `json:"code" binding:"required"`
	Name                string          `json:"name" binding:"required"`
	AccountType         account.Type    `json:"accountType" binding:"required"`
	OpeningBalance      decimal.Decimal `json:"openingBalance"`
	TaxpayerAccountCode *string         `json:"taxpayerAccountCode"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateAccountRequest) ToEntity() *account.Account {
	a := account.NewAccount(r.Code, r.Name, r.AccountType)
	a.OpeningBalance = r.OpeningBalance
	a.TaxpayerAccountCode = r.TaxpayerAccountCode
	return a
}

// UpdateAccountRequest is the request body for updating a GL account.
type UpdateAccountRequest struct {
	Code                string          `json:"code" binding:"required"`
	Name                string          `json:"name" binding:"required"`
	AccountType         account.Type    `json:"accountType" binding:"required"`
	IsDebitAccount      bool            `json:"isDebitAccount"`
	OpeningBalance      decimal.Decimal `json:"openingBalance"`
	TaxpayerAccountCode *string         `json:"taxpayerAccountCode"`
	Version             int             `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateAccountRequest) ApplyTo(a *account.Account) {
	a.Code = r.Code
	a.Name = r.Name
	a.AccountType = r.AccountType
	a.IsDebitAccount = r.IsDebitAccount
	a.OpeningBalance = r.OpeningBalance
	a.TaxpayerAccountCode = r.TaxpayerAccountCode
	a.Version = r.Version
}

// --- Response DTOs ---

// AccountResponse is the response body for a GL account.
type AccountResponse struct {
	ID                  string          `json:"id"`
	Code                string          `json:"code"`
	Name                string          `json:"name"`
	AccountType         account.Type    `json:"accountType"`
	IsDebitAccount      bool            `json:"isDebitAccount"`
	OpeningBalance      decimal.Decimal `json:"openingBalance"`
	TaxpayerAccountCode *string         `json:"taxpayerAccountCode,omitempty"`
	DeletionMark        bool            `json:"deletionMark"`
	Version             int             `json:"version"`
}

// FromAccount creates response DTO from domain entity.
func FromAccount(a *account.Account) *AccountResponse {
	return &AccountResponse{
		ID:                  a.ID.String(),
		Code:                a.Code,
		Name:                a.Name,
		AccountType:         a.AccountType,
		IsDebitAccount:      a.IsDebitAccount,
		OpeningBalance:      a.OpeningBalance,
		TaxpayerAccountCode: a.TaxpayerAccountCode,
		DeletionMark:        a.DeletionMark,
		Version:             a.Version,
	}
}
