package handlers

import (
	"fiskal/internal/domain/catalogs/contraagent"
	"fiskal/internal/infrastructure/http/v1/dto"
)

// ContraagentHTTPHandler aliases the generic handler to keep signatures short.
type ContraagentHTTPHandler = CatalogHandler[
	*contraagent.Contraagent,
	dto.CreateContraagentRequest,
	dto.UpdateContraagentRequest,
]

// NewContraagentHandler wires the contraagent catalog into the generic handler.
func NewContraagentHandler(
	base *BaseHandler,
	service *contraagent.Service,
) *ContraagentHTTPHandler {
	config := CatalogHandlerConfig[
		*contraagent.Contraagent,
		dto.CreateContraagentRequest,
		dto.UpdateContraagentRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "contraagent",

		MapCreateDTO: func(req dto.CreateContraagentRequest) *contraagent.Contraagent {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateContraagentRequest, existing *contraagent.Contraagent) *contraagent.Contraagent {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *contraagent.Contraagent) any {
			return dto.FromContraagent(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
