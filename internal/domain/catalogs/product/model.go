// Package product provides the goods and services catalog.
package product

import (
	"context"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/entity"
)

// Product represents a traded good or a service.
type Product struct {
	entity.Catalog

	// CommodityCode is the NC8/TARIC classification, cross-checked against
	// the tariff nomenclature for the report year
	CommodityCode *string `db:"commodity_code" json:"commodityCode,omitempty"`

	// BaseUnit is the unit-of-measure code (PCE, KGM, MTR, LTR)
	BaseUnit string `db:"base_unit" json:"baseUnit"`

	// IsService distinguishes services from physical goods; services never
	// appear in physical stock or movement-of-goods sections
	IsService bool `db:"is_service" json:"isService"`

	// Description is a free-form note
	Description *string `db:"description" json:"description,omitempty"`
}

// NewProduct creates a new Product with required fields.
func NewProduct(code, name, baseUnit string) *Product {
	return &Product{
		Catalog:  entity.NewCatalog(code, name),
		BaseUnit: baseUnit,
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.BaseUnit == "" {
		return apperror.NewValidation("base unit is required").
			WithDetail("field", "baseUnit")
	}

	if p.IsService && p.CommodityCode != nil && *p.CommodityCode != "" {
		return apperror.NewValidation("services cannot carry a commodity code").
			WithDetail("field", "commodityCode")
	}

	return nil
}

// IsPhysical reports whether the product occupies stock.
func (p *Product) IsPhysical() bool {
	return !p.IsService
}
