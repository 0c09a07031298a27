package dto

import (
	"fiskal/internal/domain/catalogs/organization"
)

// --- Request DTOs ---

// CreateOrganizationRequest is the request body for creating an organization.
type CreateOrganizationRequest struct {
	Code                     string  `json:"code"`
	Name                     string  `json:"name" binding:"required"`
	EIK                      string  `json:"eik" binding:"required"`
	VATNumber                *string `json:"vatNumber"`
	Street                   *string `json:"street"`
	Building                 *string `json:"building"`
	City                     string  `json:"city" binding:"required"`
	PostalCode               *string `json:"postalCode"`
	Region                   *string `json:"region"`
	CountryCode              string  `json:"countryCode" binding:"required"`
	Phone                    *string `json:"phone"`
	Email                    *string `json:"email"`
	Website                  *string `json:"website"`
	RepresentativeName       *string `json:"representativeName"`
	RepresentativePersonalID *string `json:"representativePersonalId"`
	IBAN                     *string `json:"iban"`
	BaseCurrencyCode         string  `json:"baseCurrencyCode"`
	TaxAccountingBasis       string  `json:"taxAccountingBasis"`
	FiscalYearStartMonth     int     `json:"fiscalYearStartMonth"`
	IsDefault                bool    `json:"isDefault"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateOrganizationRequest) ToEntity() *organization.Organization {
	o := organization.NewOrganization(r.Code, r.Name, r.EIK, r.City, r.CountryCode)
	o.VATNumber = r.VATNumber
	o.Street = r.Street
	o.Building = r.Building
	o.PostalCode = r.PostalCode
	o.Region = r.Region
	o.Phone = r.Phone
	o.Email = r.Email
	o.Website = r.Website
	o.RepresentativeName = r.RepresentativeName
	o.RepresentativePersonalID = r.RepresentativePersonalID
	o.IBAN = r.IBAN
	if r.BaseCurrencyCode != "" {
		o.BaseCurrencyCode = r.BaseCurrencyCode
	}
	if r.TaxAccountingBasis != "" {
		o.TaxAccountingBasis = r.TaxAccountingBasis
	}
	if r.FiscalYearStartMonth != 0 {
		o.FiscalYearStartMonth = r.FiscalYearStartMonth
	}
	o.IsDefault = r.IsDefault
	return o
}

// UpdateOrganizationRequest is the request body for updating an organization.
type UpdateOrganizationRequest struct {
	Code                     string  `json:"code"`
	Name                     string  `json:"name" binding:"required"`
	EIK                      string  `json:"eik" binding:"required"`
	VATNumber                *string `json:"vatNumber"`
	Street                   *string `json:"street"`
	Building                 *string `json:"building"`
	City                     string  `json:"city" binding:"required"`
	PostalCode               *string `json:"postalCode"`
	Region                   *string `json:"region"`
	CountryCode              string  `json:"countryCode" binding:"required"`
	Phone                    *string `json:"phone"`
	Email                    *string `json:"email"`
	Website                  *string `json:"website"`
	RepresentativeName       *string `json:"representativeName"`
	RepresentativePersonalID *string `json:"representativePersonalId"`
	IBAN                     *string `json:"iban"`
	BaseCurrencyCode         string  `json:"baseCurrencyCode" binding:"required"`
	TaxAccountingBasis       string  `json:"taxAccountingBasis" binding:"required"`
	FiscalYearStartMonth     int     `json:"fiscalYearStartMonth" binding:"required"`
	IsDefault                bool    `json:"isDefault"`
	Version                  int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateOrganizationRequest) ApplyTo(o *organization.Organization) {
	o.Code = r.Code
	o.Name = r.Name
	o.EIK = r.EIK
	o.VATNumber = r.VATNumber
	o.Street = r.Street
	o.Building = r.Building
	o.City = r.City
	o.PostalCode = r.PostalCode
	o.Region = r.Region
	o.CountryCode = r.CountryCode
	o.Phone = r.Phone
	o.Email = r.Email
	o.Website = r.Website
	o.RepresentativeName = r.RepresentativeName
	o.RepresentativePersonalID = r.RepresentativePersonalID
	o.IBAN = r.IBAN
	o.BaseCurrencyCode = r.BaseCurrencyCode
	o.TaxAccountingBasis = r.TaxAccountingBasis
	o.FiscalYearStartMonth = r.FiscalYearStartMonth
	o.IsDefault = r.IsDefault
	o.Version = r.Version
}

// --- Response DTOs ---

// OrganizationResponse is the response body for an organization.
type OrganizationResponse struct {
	ID                       string  `json:"id"`
	Code                     string  `json:"code"`
	Name                     string  `json:"name"`
	EIK                      string  `json:"eik"`
	VATNumber                *string `json:"vatNumber,omitempty"`
	Street                   *string `json:"street,omitempty"`
	Building                 *string `json:"building,omitempty"`
	City                     string  `json:"city"`
	PostalCode               *string `json:"postalCode,omitempty"`
	Region                   *string `json:"region,omitempty"`
	CountryCode              string  `json:"countryCode"`
	Phone                    *string `json:"phone,omitempty"`
	Email                    *string `json:"email,omitempty"`
	Website                  *string `json:"website,omitempty"`
	RepresentativeName       *string `json:"representativeName,omitempty"`
	RepresentativePersonalID *string `json:"representativePersonalId,omitempty"`
	IBAN                     *string `json:"iban,omitempty"`
	BaseCurrencyCode         string  `json:"baseCurrencyCode"`
	TaxAccountingBasis       string  `json:"taxAccountingBasis"`
	FiscalYearStartMonth     int     `json:"fiscalYearStartMonth"`
	IsDefault                bool    `json:"isDefault"`
	DeletionMark             bool    `json:"deletionMark"`
	Version                  int     `json:"version"`
}

// FromOrganization creates response DTO from domain entity.
func FromOrganization(o *organization.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:                       o.ID.String(),
		Code:                     o.Code,
		Name:                     o.Name,
		EIK:                      o.EIK,
		VATNumber:                o.VATNumber,
		Street:                   o.Street,
		Building:                 o.Building,
		City:                     o.City,
		PostalCode:               o.PostalCode,
		Region:                   o.Region,
		CountryCode:              o.CountryCode,
		Phone:                    o.Phone,
		Email:                    o.Email,
		Website:                  o.Website,
		RepresentativeName:       o.RepresentativeName,
		RepresentativePersonalID: o.RepresentativePersonalID,
		IBAN:                     o.IBAN,
		BaseCurrencyCode:         o.BaseCurrencyCode,
		TaxAccountingBasis:       o.TaxAccountingBasis,
		FiscalYearStartMonth:     o.FiscalYearStartMonth,
		IsDefault:                o.IsDefault,
		DeletionMark:             o.DeletionMark,
		Version:                  o.Version,
	}
}
