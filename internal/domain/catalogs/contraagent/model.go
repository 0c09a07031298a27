// Package contraagent provides the unified customer/supplier catalog.
// One row can act as both customer and supplier; the report splits it into
// the respective master-file sections by the role flags.
package contraagent

import (
	"context"

	"github.com/shopspring/decimal"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/entity"
)

// Contraagent represents a business partner.
type Contraagent struct {
	entity.Catalog

	// Role flags; at least one must be set
	IsCustomer bool `db:"is_customer" json:"isCustomer"`
	IsSupplier bool `db:"is_supplier" json:"isSupplier"`

	// RegistrationNumber is the partner's company registration (EIK or foreign)
	RegistrationNumber *string `db:"registration_number" json:"registrationNumber,omitempty"`

	// VATNumber is the partner's VAT registration
	VATNumber *string `db:"vat_number" json:"vatNumber,omitempty"`

	// Address
	Street     *string `db:"street" json:"street,omitempty"`
	City       *string `db:"city" json:"city,omitempty"`
	PostalCode *string `db:"postal_code" json:"postalCode,omitempty"`
	Region     *string `db:"region" json:"region,omitempty"`

	// CountryCode is ISO 3166-1 alpha-2, cross-checked against nomenclature
	CountryCode string `db:"country_code" json:"countryCode"`

	// IBAN of the partner's bank account, if known
	IBAN *string `db:"iban" json:"iban,omitempty"`

	// RelatedParty marks transactions subject to transfer-pricing disclosure
	RelatedParty bool `db:"related_party" json:"relatedParty"`

	// SelfBillingIndicator marks self-billed invoicing agreements
	SelfBillingIndicator bool `db:"self_billing_indicator" json:"selfBillingIndicator"`

	// Subledger balances carried in the master files
	OpeningDebitBalance  decimal.Decimal `db:"opening_debit_balance" json:"openingDebitBalance"`
	OpeningCreditBalance decimal.Decimal `db:"opening_credit_balance" json:"openingCreditBalance"`
	ClosingDebitBalance  decimal.Decimal `db:"closing_debit_balance" json:"closingDebitBalance"`
	ClosingCreditBalance decimal.Decimal `db:"closing_credit_balance" json:"closingCreditBalance"`
}

// NewContraagent creates a new Contraagent with required fields.
func NewContraagent(code, name, countryCode string, isCustomer, isSupplier bool) *Contraagent {
	return &Contraagent{
		Catalog:              entity.NewCatalog(code, name),
		IsCustomer:           isCustomer,
		IsSupplier:           isSupplier,
		CountryCode:          countryCode,
		OpeningDebitBalance:  decimal.Zero,
		OpeningCreditBalance: decimal.Zero,
		ClosingDebitBalance:  decimal.Zero,
		ClosingCreditBalance: decimal.Zero,
	}
}

// Validate implements entity.Validatable interface.
func (c *Contraagent) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !c.IsCustomer && !c.IsSupplier {
		return apperror.NewValidation("contraagent must be a customer, a supplier, or both").
			WithDetail("field", "isCustomer")
	}

	if len(c.CountryCode) != 2 {
		return apperror.NewValidation("country code must be ISO 3166-1 alpha-2").
			WithDetail("field", "countryCode")
	}

	return nil
}
