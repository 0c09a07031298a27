package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fiskal/internal/core/id"
	"fiskal/internal/domain/assets"
	"fiskal/internal/domain/catalogs/account"
	"fiskal/internal/domain/catalogs/asset"
	"fiskal/internal/domain/catalogs/contraagent"
	"fiskal/internal/domain/catalogs/organization"
	"fiskal/internal/domain/catalogs/product"
	"fiskal/internal/domain/inventory"
	"fiskal/internal/domain/journal"
	"fiskal/internal/domain/saft"
	"fiskal/internal/infrastructure/http/v1/middleware"
)

// stubReportStore serves just enough data for an empty but valid audit file.
type stubReportStore struct {
	org           *organization.Organization
	snapshotCalls int
}

func (s *stubReportStore) Snapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	s.snapshotCalls++
	return fn(ctx)
}

func (s *stubReportStore) Organization(ctx context.Context, orgID id.ID) (*organization.Organization, error) {
	return s.org, nil
}

func (s *stubReportStore) Accounts(ctx context.Context) ([]*account.Account, error) {
	return nil, nil
}

func (s *stubReportStore) Customers(ctx context.Context) ([]*contraagent.Contraagent, error) {
	return nil, nil
}

func (s *stubReportStore) Suppliers(ctx context.Context) ([]*contraagent.Contraagent, error) {
	return nil, nil
}

func (s *stubReportStore) Products(ctx context.Context) ([]*product.Product, error) {
	return nil, nil
}

func (s *stubReportStore) Assets(ctx context.Context) ([]*asset.Asset, error) {
	return nil, nil
}

func (s *stubReportStore) PostedEntries(ctx context.Context, orgID id.ID, from, to time.Time) ([]*journal.Entry, error) {
	return nil, nil
}

func (s *stubReportStore) TurnoversBetween(ctx context.Context, orgID id.ID, from, to time.Time) ([]journal.AccountTurnover, error) {
	return nil, nil
}

func (s *stubReportStore) StockLevels(ctx context.Context, orgID id.ID, at time.Time) ([]inventory.StockLevel, error) {
	return nil, nil
}

func (s *stubReportStore) StockMovements(ctx context.Context, orgID id.ID, from, to time.Time) ([]*inventory.StockMovement, error) {
	return nil, nil
}

func (s *stubReportStore) AssetTransactions(ctx context.Context, orgID id.ID, from, to time.Time) ([]*assets.Transaction, error) {
	return nil, nil
}

func (s *stubReportStore) CountryCodes(ctx context.Context) (map[string]struct{}, error) {
	return map[string]struct{}{"BG": {}}, nil
}

func (s *stubReportStore) CurrencyCodes(ctx context.Context) (map[string]struct{}, error) {
	return map[string]struct{}{"BGN": {}}, nil
}

func (s *stubReportStore) TariffCodes(ctx context.Context, year int) (map[string]struct{}, error) {
	return map[string]struct{}{}, nil
}

func newSaftTestRouter(store saft.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	service := saft.NewService(store).WithClock(func() time.Time {
		return time.Date(2024, time.April, 15, 10, 30, 0, 0, time.UTC)
	})
	handler := NewSaftHandler(NewBaseHandler(), service, nil)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/reports/saft", handler.Generate)
	return router
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Code
}

func TestSaftEndpointMonthly(t *testing.T) {
	store := &stubReportStore{org: organization.NewOrganization("ORG", "Тест ЕООД", "123456789", "София", "BG")}
	router := newSaftTestRouter(store)

	url := "/reports/saft?organizationId=" + store.org.ID.String() + "&report_type=monthly&year=2024&month=4"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/xml", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=saft_monthly.xml", w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "<nsSAFT:AuditFile")
	assert.Contains(t, w.Body.String(), "<nsSAFT:HeaderComment>M</nsSAFT:HeaderComment>")
}

func TestSaftEndpointGzip(t *testing.T) {
	store := &stubReportStore{org: organization.NewOrganization("ORG", "Тест ЕООД", "123456789", "София", "BG")}
	router := newSaftTestRouter(store)

	url := "/reports/saft?organizationId=" + store.org.ID.String() + "&report_type=annual&year=2024&gzip=true"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/gzip", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=saft_annual.xml.gz", w.Header().Get("Content-Disposition"))

	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<nsSAFT:HeaderComment>A</nsSAFT:HeaderComment>")
}

func TestSaftEndpointInvalidReportType(t *testing.T) {
	store := &stubReportStore{org: organization.NewOrganization("ORG", "Тест ЕООД", "123456789", "София", "BG")}
	router := newSaftTestRouter(store)

	url := "/reports/saft?organizationId=" + store.org.ID.String() + "&report_type=weekly&year=2024"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REPORT_TYPE", errorCode(t, w.Body.Bytes()))
	assert.Equal(t, 0, store.snapshotCalls, "bad requests must be rejected before touching the database")
}

func TestSaftEndpointMissingPeriod(t *testing.T) {
	store := &stubReportStore{org: organization.NewOrganization("ORG", "Тест ЕООД", "123456789", "София", "BG")}
	router := newSaftTestRouter(store)

	url := "/reports/saft?organizationId=" + store.org.ID.String() + "&report_type=monthly&year=2024"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_PERIOD", errorCode(t, w.Body.Bytes()))
	assert.Equal(t, 0, store.snapshotCalls)
}

func TestSaftEndpointMissingReportType(t *testing.T) {
	store := &stubReportStore{org: organization.NewOrganization("ORG", "Тест ЕООД", "123456789", "София", "BG")}
	router := newSaftTestRouter(store)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/saft?year=2024", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w.Body.Bytes()))
}
