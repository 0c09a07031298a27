package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/id"
	"fiskal/internal/domain/assets"
	"fiskal/internal/infrastructure/http/v1/dto"
)

// AssetTransactionHandler handles HTTP requests for asset transactions.
type AssetTransactionHandler struct {
	*BaseHandler
	service *assets.Service
}

// NewAssetTransactionHandler creates a new asset transaction handler.
func NewAssetTransactionHandler(base *BaseHandler, service *assets.Service) *AssetTransactionHandler {
	return &AssetTransactionHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Create handles POST /registers/asset-transactions
func (h *AssetTransactionHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateAssetTransactionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	tr, err := req.ToEntity()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format").WithDetail("error", err.Error()))
		return
	}

	if err := h.service.Create(ctx, tr); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromAssetTransaction(tr))
}

// Get handles GET /registers/asset-transactions/:id
func (h *AssetTransactionHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	trID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	tr, err := h.service.GetByID(ctx, trID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromAssetTransaction(tr))
}

// Delete handles DELETE /registers/asset-transactions/:id
func (h *AssetTransactionHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	trID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, trID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List handles GET /registers/asset-transactions?organizationId&from&to
func (h *AssetTransactionHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, from, to, ok := parsePeriod(c)
	if !ok {
		h.Error(c, apperror.NewValidation("organizationId, from and to are required (dates as YYYY-MM-DD)"))
		return
	}

	trs, err := h.service.ListByPeriod(ctx, orgID, from, to)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(trs))
	for i, tr := range trs {
		items[i] = dto.FromAssetTransaction(tr)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: int64(len(items)),
	})
}
