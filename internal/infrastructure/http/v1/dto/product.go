package dto

import (
	"fiskal/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Code          string  `json:"code"`
	Name          string  `json:"name" binding:"required"`
	CommodityCode *string `json:"commodityCode"`
	BaseUnit      string  `json:"baseUnit" binding:"required"`
	IsService     bool    `json:"isService"`
	Description   *string `json:"description"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	p := product.NewProduct(r.Code, r.Name, r.BaseUnit)
	p.CommodityCode = r.CommodityCode
	p.IsService = r.IsService
	p.Description = r.Description
	return p
}

// UpdateProductRequest is the request body for updating a product.
type UpdateProductRequest struct {
	Code          string  `json:"code"`
	Name          string  `json:"name" binding:"required"`
	CommodityCode *string `json:"commodityCode"`
	BaseUnit      string  `json:"baseUnit" binding:"required"`
	IsService     bool    `json:"isService"`
	Description   *string `json:"description"`
	Version       int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) {
	p.Code = r.Code
	p.Name = r.Name
	p.CommodityCode = r.CommodityCode
	p.BaseUnit = r.BaseUnit
	p.IsService = r.IsService
	p.Description = r.Description
	p.Version = r.Version
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	CommodityCode *string `json:"commodityCode,omitempty"`
	BaseUnit      string  `json:"baseUnit"`
	IsService     bool    `json:"isService"`
	Description   *string `json:"description,omitempty"`
	DeletionMark  bool    `json:"deletionMark"`
	Version       int     `json:"version"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:            p.ID.String(),
		Code:          p.Code,
		Name:          p.Name,
		CommodityCode: p.CommodityCode,
		BaseUnit:      p.BaseUnit,
		IsService:     p.IsService,
		Description:   p.Description,
		DeletionMark:  p.DeletionMark,
		Version:       p.Version,
	}
}
