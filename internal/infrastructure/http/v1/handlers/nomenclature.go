package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fiskal/internal/core/apperror"
	"fiskal/internal/domain/nomenclature"
)

// NomenclatureHandler handles lookups in the reference tables.
type NomenclatureHandler struct {
	*BaseHandler
	service *nomenclature.Service
}

// NewNomenclatureHandler creates a new nomenclature handler.
func NewNomenclatureHandler(base *BaseHandler, service *nomenclature.Service) *NomenclatureHandler {
	return &NomenclatureHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetCountry handles GET /nomenclature/countries/:code
func (h *NomenclatureHandler) GetCountry(c *gin.Context) {
	country, err := h.service.CountryByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, country)
}

// GetIBANFormat handles GET /nomenclature/iban-formats/:country
func (h *NomenclatureHandler) GetIBANFormat(c *gin.Context) {
	format, err := h.service.IBANFormatByCountry(c.Request.Context(), c.Param("country"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, format)
}

// GetTariffCode handles GET /nomenclature/tariff-codes/:code?year=2024
// Year defaults to the current year when omitted.
func (h *NomenclatureHandler) GetTariffCode(c *gin.Context) {
	year := time.Now().Year()
	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid year"))
			return
		}
		year = parsed
	}

	code, err := h.service.TariffCode(c.Request.Context(), c.Param("code"), year)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, code)
}

// GetCurrency handles GET /nomenclature/currencies/:code
func (h *NomenclatureHandler) GetCurrency(c *gin.Context) {
	currency, err := h.service.CurrencyByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, currency)
}
