package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"fiskal/internal/core/id"
	"fiskal/internal/domain/inventory"
)

// --- Request DTOs ---

// CreateStockMovementRequest is the request body for recording a movement.
type CreateStockMovementRequest struct {
	OrganizationID string                 `json:"organizationId" binding:"required"`
	ProductID      string                 `json:"productId" binding:"required"`
	ProductCode    string                 `json:"productCode" binding:"required"`
	Warehouse      string                 `json:"warehouse" binding:"required"`
	MovementType   inventory.MovementType `json:"movementType" binding:"required"`
	Quantity       decimal.Decimal        `json:"quantity"`
	Unit           string                 `json:"unit" binding:"required"`
	MovementDate   time.Time              `json:"movementDate" binding:"required"`
	UnitPrice      decimal.Decimal        `json:"unitPrice"`
	Value          decimal.Decimal        `json:"value"`
	DocumentRef    *string                `json:"documentRef"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateStockMovementRequest) ToEntity() (*inventory.StockMovement, error) {
	orgID, err := id.Parse(r.OrganizationID)
	if err != nil {
		return nil, err
	}
	productID, err := id.Parse(r.ProductID)
	if err != nil {
		return nil, err
	}

	m := inventory.NewStockMovement(orgID, productID, r.MovementType, r.Quantity, r.MovementDate)
	m.ProductCode = r.ProductCode
	m.Warehouse = r.Warehouse
	m.Unit = r.Unit
	m.UnitPrice = r.UnitPrice
	m.Value = r.Value
	m.DocumentRef = r.DocumentRef
	return m, nil
}

// PeriodFilterRequest selects documents by organization and date range.
type PeriodFilterRequest struct {
	OrganizationID string `form:"organizationId" binding:"required"`
	From           string `form:"from" binding:"required"`
	To             string `form:"to" binding:"required"`
}

// StockLevelsRequest selects stock levels as of a date.
type StockLevelsRequest struct {
	OrganizationID string `form:"organizationId" binding:"required"`
	At             string `form:"at" binding:"required"`
}

// --- Response DTOs ---

// StockMovementResponse is the response body for a stock movement.
type StockMovementResponse struct {
	ID             string                 `json:"id"`
	OrganizationID string                 `json:"organizationId"`
	ProductID      string                 `json:"productId"`
	ProductCode    string                 `json:"productCode"`
	Warehouse      string                 `json:"warehouse"`
	MovementType   inventory.MovementType `json:"movementType"`
	Quantity       decimal.Decimal        `json:"quantity"`
	Unit           string                 `json:"unit"`
	MovementDate   time.Time              `json:"movementDate"`
	UnitPrice      decimal.Decimal        `json:"unitPrice"`
	Value          decimal.Decimal        `json:"value"`
	DocumentRef    *string                `json:"documentRef,omitempty"`
	Version        int                    `json:"version"`
	CreatedAt      time.Time              `json:"createdAt"`
}

// FromStockMovement creates response DTO from domain entity.
func FromStockMovement(m *inventory.StockMovement) *StockMovementResponse {
	return &StockMovementResponse{
		ID:             m.ID.String(),
		OrganizationID: m.OrganizationID.String(),
		ProductID:      m.ProductID.String(),
		ProductCode:    m.ProductCode,
		Warehouse:      m.Warehouse,
		MovementType:   m.MovementType,
		Quantity:       m.Quantity,
		Unit:           m.Unit,
		MovementDate:   m.MovementDate,
		UnitPrice:      m.UnitPrice,
		Value:          m.Value,
		DocumentRef:    m.DocumentRef,
		Version:        m.Version,
		CreatedAt:      m.CreatedAt,
	}
}

// StockLevelResponse is one row of derived stock.
type StockLevelResponse struct {
	ProductID   string          `json:"productId"`
	ProductCode string          `json:"productCode"`
	Warehouse   string          `json:"warehouse"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	Value       decimal.Decimal `json:"value"`
}

// FromStockLevel creates response DTO from a derived stock row.
func FromStockLevel(l inventory.StockLevel) StockLevelResponse {
	return StockLevelResponse{
		ProductID:   l.ProductID.String(),
		ProductCode: l.ProductCode,
		Warehouse:   l.Warehouse,
		Unit:        l.Unit,
		Quantity:    l.Quantity,
		Value:       l.Value,
	}
}
