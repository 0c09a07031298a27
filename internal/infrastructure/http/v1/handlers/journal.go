package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/id"
	"fiskal/internal/domain/journal"
	"fiskal/internal/infrastructure/http/v1/dto"
)

// JournalHandler handles HTTP requests for journal entries.
type JournalHandler struct {
	*BaseHandler
	service *journal.Service
}

// NewJournalHandler creates a new journal handler.
func NewJournalHandler(base *BaseHandler, service *journal.Service) *JournalHandler {
	return &JournalHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Create handles POST /journal
func (h *JournalHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateJournalEntryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entry, err := req.ToEntity()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format").WithDetail("error", err.Error()))
		return
	}

	if err := h.service.Create(ctx, entry); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromJournalEntry(entry))
}

// Get handles GET /journal/:id
func (h *JournalHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	entryID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	entry, err := h.service.GetByID(ctx, entryID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromJournalEntry(entry))
}

// Update handles PUT /journal/:id
func (h *JournalHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	entryID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateJournalEntryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(ctx, entryID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := req.ApplyTo(existing); err != nil {
		h.Error(c, apperror.NewValidation("invalid id format").WithDetail("error", err.Error()))
		return
	}

	if err := h.service.Update(ctx, existing); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromJournalEntry(existing))
}

// Delete handles DELETE /journal/:id
func (h *JournalHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	entryID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, entryID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Post handles POST /journal/:id/post
func (h *JournalHandler) Post(c *gin.Context) {
	ctx := c.Request.Context()

	entryID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Post(ctx, entryID); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "entry posted")
}

// Unpost handles POST /journal/:id/unpost
func (h *JournalHandler) Unpost(c *gin.Context) {
	ctx := c.Request.Context()

	entryID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Unpost(ctx, entryID); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "entry unposted")
}

// parsePeriod parses an inclusive ISO date range from query parameters.
func parsePeriod(c *gin.Context) (orgID id.ID, from, to time.Time, ok bool) {
	var req dto.PeriodFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return orgID, from, to, false
	}

	orgID, err := id.Parse(req.OrganizationID)
	if err != nil {
		return orgID, from, to, false
	}

	from, err = time.Parse("2006-01-02", req.From)
	if err != nil {
		return orgID, from, to, false
	}

	to, err = time.Parse("2006-01-02", req.To)
	if err != nil {
		return orgID, from, to, false
	}

	return orgID, from, to, true
}
