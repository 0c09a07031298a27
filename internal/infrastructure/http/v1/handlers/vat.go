package handlers

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/flate"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/id"
	"fiskal/internal/domain/catalogs/organization"
	"fiskal/internal/domain/vat"
	"fiskal/internal/infrastructure/http/v1/dto"
)

// VATHandler handles the VAT register export.
type VATHandler struct {
	*BaseHandler
	service *vat.Service
	orgs    *organization.Service
}

// NewVATHandler creates a new VAT register handler.
func NewVATHandler(base *BaseHandler, service *vat.Service, orgs *organization.Service) *VATHandler {
	return &VATHandler{
		BaseHandler: base,
		service:     service,
		orgs:        orgs,
	}
}

// Export handles GET /reports/vat-registers.
// The three register files are bundled into one ZIP archive, the layout
// the declaration portal accepts.
func (h *VATHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.VATRegistersRequest
	if !h.BindQuery(c, &req) {
		return
	}

	orgID, err := h.resolveOrganization(c, req.OrganizationID)
	if err != nil {
		h.Error(c, err)
		return
	}

	registers, err := h.service.Build(ctx, orgID, req.Year, req.Month)
	if err != nil {
		h.Error(c, err)
		return
	}

	files, err := h.service.Encode(registers)
	if err != nil {
		h.Error(c, err)
		return
	}

	archive, err := zipFiles(files)
	if err != nil {
		h.Error(c, apperror.NewInternal(err))
		return
	}

	name := fmt.Sprintf("dds_%04d_%02d.zip", req.Year, req.Month)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", name))
	c.Data(http.StatusOK, "application/zip", archive)
}

func (h *VATHandler) resolveOrganization(c *gin.Context, raw string) (id.ID, error) {
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

// zipFiles packs the register files into one deflate-compressed archive.
func zipFiles(files []vat.File) ([]byte, error) {
	var buf bytes.Buffer

	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	for _, f := range files {
		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", f.Name, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}
