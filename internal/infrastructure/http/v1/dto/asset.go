package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"fiskal/internal/domain/catalogs/asset"
)

// --- Request DTOs ---

// CreateAssetRequest is the request body for creating a fixed asset.
type CreateAssetRequest struct {
	Code                    string          `json:"code"`
	Name                    string          `json:"name" binding:"required"`
	AccountCode             string          `json:"accountCode" binding:"required"`
	AcquisitionDate         time.Time       `json:"acquisitionDate" binding:"required"`
	AcquisitionCost         decimal.Decimal `json:"acquisitionCost"`
	BookValue               *decimal.Decimal `json:"bookValue"`
	DepreciationMethod      string          `json:"depreciationMethod"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	DepreciationForPeriod   decimal.Decimal `json:"depreciationForPeriod"`
	UsefulLifeMonths        int             `json:"usefulLifeMonths"`
	TaxCategory             *string         `json:"taxCategory"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateAssetRequest) ToEntity() *asset.Asset {
	a := asset.NewAsset(r.Code, r.Name, r.AccountCode, r.AcquisitionDate, r.AcquisitionCost)
	if r.BookValue != nil {
		a.BookValue = *r.BookValue
	}
	if r.DepreciationMethod != "" {
		a.DepreciationMethod = r.DepreciationMethod
	}
	a.AccumulatedDepreciation = r.AccumulatedDepreciation
	a.DepreciationForPeriod = r.DepreciationForPeriod
	a.UsefulLifeMonths = r.UsefulLifeMonths
	a.TaxCategory = r.TaxCategory
	return a
}

// UpdateAssetRequest is the request body for updating a fixed asset.
type UpdateAssetRequest struct {
	Code                    string          `json:"code"`
	Name                    string          `json:"name" binding:"required"`
	AccountCode             string          `json:"accountCode" binding:"required"`
	AcquisitionDate         time.Time       `json:"acquisitionDate" binding:"required"`
	AcquisitionCost         decimal.Decimal `json:"acquisitionCost"`
	BookValue               decimal.Decimal `json:"bookValue"`
	DepreciationMethod      string          `json:"depreciationMethod"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	DepreciationForPeriod   decimal.Decimal `json:"depreciationForPeriod"`
	UsefulLifeMonths        int             `json:"usefulLifeMonths"`
	TaxCategory             *string         `json:"taxCategory"`
	Version                 int             `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateAssetRequest) ApplyTo(a *asset.Asset) {
	a.Code = r.Code
	a.Name = r.Name
	a.AccountCode = r.AccountCode
	a.AcquisitionDate = r.AcquisitionDate
	a.AcquisitionCost = r.AcquisitionCost
	a.BookValue = r.BookValue
	a.DepreciationMethod = r.DepreciationMethod
	a.AccumulatedDepreciation = r.AccumulatedDepreciation
	a.DepreciationForPeriod = r.DepreciationForPeriod
	a.UsefulLifeMonths = r.UsefulLifeMonths
	a.TaxCategory = r.TaxCategory
	a.Version = r.Version
}

// --- Response DTOs ---

// AssetResponse is the response body for a fixed asset.
type AssetResponse struct {
	ID                      string          `json:"id"`
	Code                    string          `json:"code"`
	Name                    string          `json:"name"`
	AccountCode             string          `json:"accountCode"`
	AcquisitionDate         time.Time       `json:"acquisitionDate"`
	AcquisitionCost         decimal.Decimal `json:"acquisitionCost"`
	BookValue               decimal.Decimal `json:"bookValue"`
	DepreciationMethod      string          `json:"depreciationMethod"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	DepreciationForPeriod   decimal.Decimal `json:"depreciationForPeriod"`
	UsefulLifeMonths        int             `json:"usefulLifeMonths"`
	TaxCategory             *string         `json:"taxCategory,omitempty"`
	DeletionMark            bool            `json:"deletionMark"`
	Version                 int             `json:"version"`
}

// FromAsset creates response DTO from domain entity.
func FromAsset(a *asset.Asset) *AssetResponse {
	return &AssetResponse{
		ID:                      a.ID.String(),
		Code:                    a.Code,
		Name:                    a.Name,
		AccountCode:             a.AccountCode,
		AcquisitionDate:         a.AcquisitionDate,
		AcquisitionCost:         a.AcquisitionCost,
		BookValue:               a.BookValue,
		DepreciationMethod:      a.DepreciationMethod,
		AccumulatedDepreciation: a.AccumulatedDepreciation,
		DepreciationForPeriod:   a.DepreciationForPeriod,
		UsefulLifeMonths:        a.UsefulLifeMonths,
		TaxCategory:             a.TaxCategory,
		DeletionMark:            a.DeletionMark,
		Version:                 a.Version,
	}
}
