// Package organization provides the Organization catalog.
// The organization is the reporting entity whose books the regulatory
// files describe.
package organization

import (
	"context"
	"regexp"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/entity"
)

var (
	digitsOnlyRE = regexp.MustCompile(`^\d+$`)
	emailRE      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Organization represents the legal entity that owns the books.
type Organization struct {
	entity.Catalog

	// EIK is the unified identification code from the commercial register
	EIK string `db:"eik" json:"eik"`

	// VATNumber is the VAT registration number (may be empty if not registered)
	VATNumber *string `db:"vat_number" json:"vatNumber,omitempty"`

	// Registered address
	Street     *string `db:"street" json:"street,omitempty"`
	Building   *string `db:"building" json:"building,omitempty"`
	City       string  `db:"city" json:"city"`
	PostalCode *string `db:"postal_code" json:"postalCode,omitempty"`
	Region     *string `db:"region" json:"region,omitempty"`

	// CountryCode is the ISO 3166-1 alpha-2 country of registration
	CountryCode string `db:"country_code" json:"countryCode"`

	// Contact details
	Phone   *string `db:"phone" json:"phone,omitempty"`
	Email   *string `db:"email" json:"email,omitempty"`
	Website *string `db:"website" json:"website,omitempty"`

	// Legal representative declared in the report header
	RepresentativeName       *string `db:"representative_name" json:"representativeName,omitempty"`
	RepresentativePersonalID *string `db:"representative_personal_id" json:"representativePersonalId,omitempty"`

	// IBAN is the primary bank account
	IBAN *string `db:"iban" json:"iban,omitempty"`

	// BaseCurrencyCode is the accounting currency (ISO 4217)
	BaseCurrencyCode string `db:"base_currency_code" json:"baseCurrencyCode"`

	// TaxAccountingBasis distinguishes commercial from other bases ("A", "P", ...)
	TaxAccountingBasis string `db:"tax_accounting_basis" json:"taxAccountingBasis"`

	// FiscalYearStartMonth is 1 for calendar-year filers
	FiscalYearStartMonth int `db:"fiscal_year_start_month" json:"fiscalYearStartMonth"`

	// IsDefault indicates the organization used when none is specified
	IsDefault bool `db:"is_default" json:"isDefault"`
}

// NewOrganization creates a new Organization with required fields.
func NewOrganization(code, name, eik, city, countryCode string) *Organization {
	return &Organization{
		Catalog:              entity.NewCatalog(code, name),
		EIK:                  eik,
		City:                 city,
		CountryCode:          countryCode,
		BaseCurrencyCode:     "BGN",
		TaxAccountingBasis:   "A",
		FiscalYearStartMonth: 1,
	}
}

// Validate implements entity.Validatable interface.
func (o *Organization) Validate(ctx context.Context) error {
	if err := o.Catalog.Validate(ctx); err != nil {
		return err
	}

	if o.EIK == "" || !digitsOnlyRE.MatchString(o.EIK) {
		return apperror.NewValidation("EIK must contain only digits").
			WithDetail("field", "eik")
	}
	if len(o.EIK) != 9 && len(o.EIK) != 13 {
		return apperror.NewValidation("EIK must be 9 or 13 digits").
			WithDetail("field", "eik")
	}

	if o.City == "" {
		return apperror.NewValidation("city is required").
			WithDetail("field", "city")
	}

	if len(o.CountryCode) != 2 {
		return apperror.NewValidation("country code must be ISO 3166-1 alpha-2").
			WithDetail("field", "countryCode")
	}

	if len(o.BaseCurrencyCode) != 3 {
		return apperror.NewValidation("currency code must be ISO 4217").
			WithDetail("field", "baseCurrencyCode")
	}

	if o.FiscalYearStartMonth < 1 || o.FiscalYearStartMonth > 12 {
		return apperror.NewValidation("fiscal year start month must be in [1,12]").
			WithDetail("field", "fiscalYearStartMonth")
	}

	if o.Email != nil && *o.Email != "" && !emailRE.MatchString(*o.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	return nil
}

// RegistrationNumber returns the EIK padded to the 12 positions the
// report header requires.
func (o *Organization) RegistrationNumber() string {
	eik := o.EIK
	for len(eik) < 12 {
		eik = "0" + eik
	}
	return eik
}
