package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"fiskal/internal/core/id"
	"fiskal/internal/domain/assets"
)

// --- Request DTOs ---

// CreateAssetTransactionRequest is the request body for an asset transaction.
type CreateAssetTransactionRequest struct {
	OrganizationID    string                 `json:"organizationId" binding:"required"`
	AssetID           string                 `json:"assetId" binding:"required"`
	AssetCode         string                 `json:"assetCode" binding:"required"`
	TransactionType   assets.TransactionType `json:"transactionType" binding:"required"`
	TransactionDate   time.Time              `json:"transactionDate" binding:"required"`
	Amount            decimal.Decimal        `json:"amount"`
	AcquisitionCost   decimal.Decimal        `json:"acquisitionCost"`
	BookValue         decimal.Decimal        `json:"bookValue"`
	SupplierName      *string                `json:"supplierName"`
	SupplierVATNumber *string                `json:"supplierVatNumber"`
	DocumentRef       *string                `json:"documentRef"`
	Description       *string                `json:"description"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateAssetTransactionRequest) ToEntity() (*assets.Transaction, error) {
	orgID, err := id.Parse(r.OrganizationID)
	if err != nil {
		return nil, err
	}
	assetID, err := id.Parse(r.AssetID)
	if err != nil {
		return nil, err
	}

	tr := assets.NewTransaction(orgID, assetID, r.TransactionType, r.TransactionDate, r.Amount)
	tr.AssetCode = r.AssetCode
	tr.AcquisitionCost = r.AcquisitionCost
	tr.BookValue = r.BookValue
	tr.SupplierName = r.SupplierName
	tr.SupplierVATNumber = r.SupplierVATNumber
	tr.DocumentRef = r.DocumentRef
	tr.Description = r.Description
	return tr, nil
}

// --- Response DTOs ---

// AssetTransactionResponse is the response body for an asset transaction.
type AssetTransactionResponse struct {
	ID                string                 `json:"id"`
	OrganizationID    string                 `json:"organizationId"`
	AssetID           string                 `json:"assetId"`
	AssetCode         string                 `json:"assetCode"`
	TransactionType   assets.TransactionType `json:"transactionType"`
	TransactionDate   time.Time              `json:"transactionDate"`
	Amount            decimal.Decimal        `json:"amount"`
	AcquisitionCost   decimal.Decimal        `json:"acquisitionCost"`
	BookValue         decimal.Decimal        `json:"bookValue"`
	SupplierName      *string                `json:"supplierName,omitempty"`
	SupplierVATNumber *string                `json:"supplierVatNumber,omitempty"`
	DocumentRef       *string                `json:"documentRef,omitempty"`
	Description       *string                `json:"description,omitempty"`
	Version           int                    `json:"version"`
	CreatedAt         time.Time              `json:"createdAt"`
}

// FromAssetTransaction creates response DTO from domain entity.
func FromAssetTransaction(tr *assets.Transaction) *AssetTransactionResponse {
	return &AssetTransactionResponse{
		ID:                tr.ID.String(),
		OrganizationID:    tr.OrganizationID.String(),
		AssetID:           tr.AssetID.String(),
		AssetCode:         tr.AssetCode,
		TransactionType:   tr.TransactionType,
		TransactionDate:   tr.TransactionDate,
		Amount:            tr.Amount,
		AcquisitionCost:   tr.AcquisitionCost,
		BookValue:         tr.BookValue,
		SupplierName:      tr.SupplierName,
		SupplierVATNumber: tr.SupplierVATNumber,
		DocumentRef:       tr.DocumentRef,
		Description:       tr.Description,
		Version:           tr.Version,
		CreatedAt:         tr.CreatedAt,
	}
}
