package dto

import (
	"github.com/shopspring/decimal"

	"fiskal/internal/domain/catalogs/contraagent"
)

// --- Request DTOs ---

// CreateContraagentRequest is the request body for creating a contraagent.
type CreateContraagentRequest struct {
	Code                 string          `json:"code"`
	Name                 string          `json:"name" binding:"required"`
	IsCustomer           bool            `json:"isCustomer"`
	IsSupplier           bool            `json:"isSupplier"`
	RegistrationNumber   *string         `json:"registrationNumber"`
	VATNumber            *string         `json:"vatNumber"`
	Street               *string         `json:"street"`
	City                 *string         `json:"city"`
	PostalCode           *string         `json:"postalCode"`
	Region               *string         `json:"region"`
	CountryCode          string          `json:"countryCode" binding:"required"`
	IBAN                 *string         `json:"iban"`
	RelatedParty         bool            `json:"relatedParty"`
	SelfBillingIndicator bool            `json:"selfBillingIndicator"`
	OpeningDebitBalance  decimal.Decimal `json:"openingDebitBalance"`
	OpeningCreditBalance decimal.Decimal `json:"openingCreditBalance"`
	ClosingDebitBalance  decimal.Decimal `json:"closingDebitBalance"`
	ClosingCreditBalance decimal.Decimal `json:"closingCreditBalance"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateContraagentRequest) ToEntity() *contraagent.Contraagent {
	c := contraagent.NewContraagent(r.Code, r.Name, r.CountryCode, r.IsCustomer, r.IsSupplier)
	c.RegistrationNumber = r.RegistrationNumber
	c.VATNumber = r.VATNumber
	c.Street = r.Street
	c.City = r.City
	c.PostalCode = r.PostalCode
	c.Region = r.Region
	c.IBAN = r.IBAN
	c.RelatedParty = r.RelatedParty
	c.SelfBillingIndicator = r.SelfBillingIndicator
	c.OpeningDebitBalance = r.OpeningDebitBalance
	c.OpeningCreditBalance = r.OpeningCreditBalance
	c.ClosingDebitBalance = r.ClosingDebitBalance
	c.ClosingCreditBalance = r.ClosingCreditBalance
	return c
}

// UpdateContraagentRequest is the request body for updating a contraagent.
type UpdateContraagentRequest struct {
	Code                 string          `json:"code"`
	Name                 string          `json:"name" binding:"required"`
	IsCustomer           bool            `json:"isCustomer"`
	IsSupplier           bool            `json:"isSupplier"`
	RegistrationNumber   *string         `json:"registrationNumber"`
	VATNumber            *string         `json:"vatNumber"`
	Street               *string         `json:"street"`
	City                 *string         `json:"city"`
	PostalCode           *string         `json:"postalCode"`
	Region               *string         `json:"region"`
	CountryCode          string          `json:"countryCode" binding:"required"`
	IBAN                 *string         `json:"iban"`
	RelatedParty         bool            `json:"relatedParty"`
	SelfBillingIndicator bool            `json:"selfBillingIndicator"`
	OpeningDebitBalance  decimal.Decimal `json:"openingDebitBalance"`
	OpeningCreditBalance decimal.Decimal `json:"openingCreditBalance"`
	ClosingDebitBalance  decimal.Decimal `json:"closingDebitBalance"`
	ClosingCreditBalance decimal.Decimal `json:"closingCreditBalance"`
	Version              int             `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateContraagentRequest) ApplyTo(c *contraagent.Contraagent) {
	c.Code = r.Code
	c.Name = r.Name
	c.IsCustomer = r.IsCustomer
	c.IsSupplier = r.IsSupplier
	c.RegistrationNumber = r.RegistrationNumber
	c.VATNumber = r.VATNumber
	c.Street = r.Street
	c.City = r.City
	c.PostalCode = r.PostalCode
	c.Region = r.Region
	c.CountryCode = r.CountryCode
	c.IBAN = r.IBAN
	c.RelatedParty = r.RelatedParty
	c.SelfBillingIndicator = r.SelfBillingIndicator
	c.OpeningDebitBalance = r.OpeningDebitBalance
	c.OpeningCreditBalance = r.OpeningCreditBalance
	c.ClosingDebitBalance = r.ClosingDebitBalance
	c.ClosingCreditBalance = r.ClosingCreditBalance
	c.Version = r.Version
}

// --- Response DTOs ---

// ContraagentResponse is the response body for a contraagent.
type ContraagentResponse struct {
	ID                   string          `json:"id"`
	Code                 string          `json:"code"`
	Name                 string          `json:"name"`
	IsCustomer           bool            `json:"isCustomer"`
	IsSupplier           bool            `json:"isSupplier"`
	RegistrationNumber   *string         `json:"registrationNumber,omitempty"`
	VATNumber            *string         `json:"vatNumber,omitempty"`
	Street               *string         `json:"street,omitempty"`
	City                 *string         `json:"city,omitempty"`
	PostalCode           *string         `json:"postalCode,omitempty"`
	Region               *string         `json:"region,omitempty"`
	CountryCode          string          `json:"countryCode"`
	IBAN                 *string         `json:"iban,omitempty"`
	RelatedParty         bool            `json:"relatedParty"`
	SelfBillingIndicator bool            `json:"selfBillingIndicator"`
	OpeningDebitBalance  decimal.Decimal `json:"openingDebitBalance"`
	OpeningCreditBalance decimal.Decimal `json:"openingCreditBalance"`
	ClosingDebitBalance  decimal.Decimal `json:"closingDebitBalance"`
	ClosingCreditBalance decimal.Decimal `json:"closingCreditBalance"`
	DeletionMark         bool            `json:"deletionMark"`
	Version              int             `json:"version"`
}

// FromContraagent creates response DTO from domain entity.
func FromContraagent(c *contraagent.Contraagent) *ContraagentResponse {
	return &ContraagentResponse{
		ID:                   c.ID.String(),
		Code:                 c.Code,
		Name:                 c.Name,
		IsCustomer:           c.IsCustomer,
		IsSupplier:           c.IsSupplier,
		RegistrationNumber:   c.RegistrationNumber,
		VATNumber:            c.VATNumber,
		Street:               c.Street,
		City:                 c.City,
		PostalCode:           c.PostalCode,
		Region:               c.Region,
		CountryCode:          c.CountryCode,
		IBAN:                 c.IBAN,
		RelatedParty:         c.RelatedParty,
		SelfBillingIndicator: c.SelfBillingIndicator,
		OpeningDebitBalance:  c.OpeningDebitBalance,
		OpeningCreditBalance: c.OpeningCreditBalance,
		ClosingDebitBalance:  c.ClosingDebitBalance,
		ClosingCreditBalance: c.ClosingCreditBalance,
		DeletionMark:         c.DeletionMark,
		Version:              c.Version,
	}
}
