package handlers

import (
	"fiskal/internal/domain/catalogs/organization"
	"fiskal/internal/infrastructure/http/v1/dto"
)

// OrganizationHTTPHandler aliases the generic handler to keep signatures short.
type OrganizationHTTPHandler = CatalogHandler[
	*organization.Organization,
	dto.CreateOrganizationRequest,
	dto.UpdateOrganizationRequest,
]

// NewOrganizationHandler wires the organization catalog into the generic handler.
func NewOrganizationHandler(
	base *BaseHandler,
	service *organization.Service,
) *OrganizationHTTPHandler {
	config := CatalogHandlerConfig[
		*organization.Organization,
		dto.CreateOrganizationRequest,
		dto.UpdateOrganizationRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "organization",

		MapCreateDTO: func(req dto.CreateOrganizationRequest) *organization.Organization {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateOrganizationRequest, existing *organization.Organization) *organization.Organization {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *organization.Organization) any {
			return dto.FromOrganization(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
