package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/id"
	"fiskal/internal/domain/catalogs/organization"
	"fiskal/internal/domain/saft"
	"fiskal/internal/infrastructure/http/v1/dto"
)

// SaftHandler handles the audit file download.
type SaftHandler struct {
	*BaseHandler
	service *saft.Service
	orgs    *organization.Service
}

// NewSaftHandler creates a new audit file handler.
func NewSaftHandler(base *BaseHandler, service *saft.Service, orgs *organization.Service) *SaftHandler {
	return &SaftHandler{
		BaseHandler: base,
		service:     service,
		orgs:        orgs,
	}
}

// Generate handles GET /reports/saft.
// The file is compiled synchronously and returned as an XML attachment;
// gzip=true compresses the payload for large periods.
func (h *SaftHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SaftReportRequest
	if !h.BindQuery(c, &req) {
		return
	}

	reportType, err := saft.ParseReportType(req.ReportType)
	if err != nil {
		h.Error(c, apperror.NewInvalidReportType(req.ReportType))
		return
	}

	orgID, err := h.resolveOrganization(c, req.OrganizationID)
	if err != nil {
		h.Error(c, err)
		return
	}

	file, err := h.service.Generate(ctx, saft.Request{
		OrganizationID: orgID,
		Type:           reportType,
		Year:           req.Year,
		Month:          req.Month,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	if req.Gzip {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(file.Data); err != nil {
			h.Error(c, apperror.NewInternal(err))
			return
		}
		if err := zw.Close(); err != nil {
			h.Error(c, apperror.NewInternal(err))
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.gz", file.Name))
		c.Data(http.StatusOK, "application/gzip", buf.Bytes())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// resolveOrganization parses the organizationId parameter, falling back to
// the default organization when it is omitted.
func (h *SaftHandler) resolveOrganization(c *gin.Context, raw string) (id.ID, error) {
	if raw == "" {
		org, err := h.orgs.GetDefault(c.Request.Context())
		if err != nil {
			return id.Nil(), err
		}
		return org.ID, nil
	}

	orgID, err := id.Parse(raw)
	if err != nil {
		return id.Nil(), apperror.NewValidation("invalid organizationId format")
	}
	return orgID, nil
}
