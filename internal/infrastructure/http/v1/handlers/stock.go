package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/id"
	"fiskal/internal/domain/inventory"
	"fiskal/internal/infrastructure/http/v1/dto"
)

// StockHandler handles HTTP requests for stock movements and levels.
type StockHandler struct {
	*BaseHandler
	service *inventory.Service
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(base *BaseHandler, service *inventory.Service) *StockHandler {
	return &StockHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Create handles POST /registers/stock/movements
func (h *StockHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateStockMovementRequest
	if !h.BindJSON(c, &req) {
		return
	}

	movement, err := req.ToEntity()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format").WithDetail("error", err.Error()))
		return
	}

	if err := h.service.Create(ctx, movement); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromStockMovement(movement))
}

// Get handles GET /registers/stock/movements/:id
func (h *StockHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	movementID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	movement, err := h.service.GetByID(ctx, movementID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromStockMovement(movement))
}

// Delete handles DELETE /registers/stock/movements/:id
func (h *StockHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	movementID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, movementID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List handles GET /registers/stock/movements?organizationId&from&to
func (h *StockHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, from, to, ok := parsePeriod(c)
	if !ok {
		h.Error(c, apperror.NewValidation("organizationId, from and to are required (dates as YYYY-MM-DD)"))
		return
	}

	movements, err := h.service.ListByPeriod(ctx, orgID, from, to)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(movements))
	for i, m := range movements {
		items[i] = dto.FromStockMovement(m)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: int64(len(items)),
	})
}

// Levels handles GET /registers/stock/levels?organizationId&at
func (h *StockHandler) Levels(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.StockLevelsRequest
	if !h.BindQuery(c, &req) {
		return
	}

	orgID, err := id.Parse(req.OrganizationID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid organizationId format"))
		return
	}

	at, err := time.Parse("2006-01-02", req.At)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid at date, expected YYYY-MM-DD"))
		return
	}

	levels, err := h.service.StockAt(ctx, orgID, at)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.StockLevelResponse, 0, len(levels))
	for _, l := range levels {
		items = append(items, dto.FromStockLevel(l))
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
