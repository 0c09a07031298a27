package handlers

import (
	"fiskal/internal/domain/catalogs/account"
	"fiskal/internal/infrastructure/http/v1/dto"
)

// AccountHTTPHandler aliases the generic handler to keep signatures short.
type AccountHTTPHandler = CatalogHandler[
	*account.Account,
	dto.CreateAccountRequest,
	dto.UpdateAccountRequest,
]

// NewAccountHandler wires the chart of accounts into the generic handler.
func NewAccountHandler(
	base *BaseHandler,
	service *account.Service,
) *AccountHTTPHandler {
	config := CatalogHandlerConfig[
		*account.Account,
		dto.CreateAccountRequest,
		dto.UpdateAccountRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "account",

		MapCreateDTO: func(req dto.CreateAccountRequest) *account.Account {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateAccountRequest, existing *account.Account) *account.Account {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *account.Account) any {
			return dto.FromAccount(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
