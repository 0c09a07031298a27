package handlers

import (
	"fiskal/internal/domain/catalogs/asset"
	"fiskal/internal/infrastructure/http/v1/dto"
)

// AssetHTTPHandler aliases the generic handler to keep signatures short.
type AssetHTTPHandler = CatalogHandler[
	*asset.Asset,
	dto.CreateAssetRequest,
	dto.UpdateAssetRequest,
]

// NewAssetHandler wires the fixed-assets catalog into the generic handler.
func NewAssetHandler(
	base *BaseHandler,
	service *asset.Service,
) *AssetHTTPHandler {
	config := CatalogHandlerConfig[
		*asset.Asset,
		dto.CreateAssetRequest,
		dto.UpdateAssetRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "asset",

		MapCreateDTO: func(req dto.CreateAssetRequest) *asset.Asset {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateAssetRequest, existing *asset.Asset) *asset.Asset {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *asset.Asset) any {
			return dto.FromAsset(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
