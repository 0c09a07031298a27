// Package asset provides the fixed-assets catalog.
package asset

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/entity"
)

// Asset represents a depreciable fixed asset.
type Asset struct {
	entity.Catalog

	// AccountCode is the GL account the asset is carried on
	AccountCode string `db:"account_code" json:"accountCode"`

	// AcquisitionDate is when the asset entered the books
	AcquisitionDate time.Time `db:"acquisition_date" json:"acquisitionDate"`

	// AcquisitionCost is the historical cost
	AcquisitionCost decimal.Decimal `db:"acquisition_cost" json:"acquisitionCost"`

	// BookValue is the current carrying amount
	BookValue decimal.Decimal `db:"book_value" json:"bookValue"`

	// DepreciationMethod ("linear" is the only method in use)
	DepreciationMethod string `db:"depreciation_method" json:"depreciationMethod"`

	// AccumulatedDepreciation since acquisition
	AccumulatedDepreciation decimal.Decimal `db:"accumulated_depreciation" json:"accumulatedDepreciation"`

	// DepreciationForPeriod is the charge for the reported fiscal year
	DepreciationForPeriod decimal.Decimal `db:"depreciation_for_period" json:"depreciationForPeriod"`

	// UsefulLifeMonths drives the depreciation schedule
	UsefulLifeMonths int `db:"useful_life_months" json:"usefulLifeMonths"`

	// TaxCategory is the statutory depreciation category
	TaxCategory *string `db:"tax_category" json:"taxCategory,omitempty"`
}

// NewAsset creates a new Asset with required fields.
func NewAsset(code, name, accountCode string, acquisitionDate time.Time, cost decimal.Decimal) *Asset {
	return &Asset{
		Catalog:                 entity.NewCatalog(code, name),
		AccountCode:             accountCode,
		AcquisitionDate:         acquisitionDate,
		AcquisitionCost:         cost,
		BookValue:               cost,
		DepreciationMethod:      "linear",
		AccumulatedDepreciation: decimal.Zero,
		DepreciationForPeriod:   decimal.Zero,
	}
}

// Validate implements entity.Validatable interface.
func (a *Asset) Validate(ctx context.Context) error {
	if err := a.Catalog.Validate(ctx); err != nil {
		return err
	}

	if a.AccountCode == "" {
		return apperror.NewValidation("account code is required").
			WithDetail("field", "accountCode")
	}

	if a.AcquisitionCost.IsNegative() {
		return apperror.NewValidation("acquisition cost cannot be negative").
			WithDetail("field", "acquisitionCost")
	}

	if a.BookValue.IsNegative() {
		return apperror.NewValidation("book value cannot be negative").
			WithDetail("field", "bookValue")
	}

	if a.UsefulLifeMonths < 0 {
		return apperror.NewValidation("useful life cannot be negative").
			WithDetail("field", "usefulLifeMonths")
	}

	return nil
}
