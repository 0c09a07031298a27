package saft

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/id"
	"fiskal/internal/domain/assets"
	"fiskal/internal/domain/catalogs/account"
	"fiskal/internal/domain/catalogs/asset"
	"fiskal/internal/domain/catalogs/contraagent"
	"fiskal/internal/domain/catalogs/organization"
	"fiskal/internal/domain/catalogs/product"
	"fiskal/internal/domain/inventory"
	"fiskal/internal/domain/journal"
)

// fakeStore serves canned data and counts snapshot usage.
type fakeStore struct {
	org       *organization.Organization
	accounts  []*account.Account
	customers []*contraagent.Contraagent
	suppliers []*contraagent.Contraagent
	products  []*product.Product
	assetRows []*asset.Asset

	entries      []*journal.Entry
	periodStart  time.Time
	openingTurns []journal.AccountTurnover
	periodTurns  []journal.AccountTurnover

	stockLevels []inventory.StockLevel
	movements   []*inventory.StockMovement
	assetTxs    []*assets.Transaction

	countries  map[string]struct{}
	currencies map[string]struct{}
	tariffs    map[string]struct{}

	snapshotCalls int
	failSnapshots int
}

func (f *fakeStore) Snapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	f.snapshotCalls++
	if f.failSnapshots > 0 {
		f.failSnapshots--
		return errors.New("connection reset by peer")
	}
	return fn(ctx)
}

func (f *fakeStore) Organization(ctx context.Context, orgID id.ID) (*organization.Organization, error) {
	return f.org, nil
}

func (f *fakeStore) Accounts(ctx context.Context) ([]*account.Account, error) {
	return f.accounts, nil
}

func (f *fakeStore) Customers(ctx context.Context) ([]*contraagent.Contraagent, error) {
	return f.customers, nil
}

func (f *fakeStore) Suppliers(ctx context.Context) ([]*contraagent.Contraagent, error) {
	return f.suppliers, nil
}

func (f *fakeStore) Products(ctx context.Context) ([]*product.Product, error) {
	return f.products, nil
}

func (f *fakeStore) Assets(ctx context.Context) ([]*asset.Asset, error) {
	return f.assetRows, nil
}

func (f *fakeStore) PostedEntries(ctx context.Context, orgID id.ID, from, to time.Time) ([]*journal.Entry, error) {
	return f.entries, nil
}

func (f *fakeStore) TurnoversBetween(ctx context.Context, orgID id.ID, from, to time.Time) ([]journal.AccountTurnover, error) {
	if !f.periodStart.IsZero() && to.Before(f.periodStart) {
		return f.openingTurns, nil
	}
	return f.periodTurns, nil
}

func (f *fakeStore) StockLevels(ctx context.Context, orgID id.ID, at time.Time) ([]inventory.StockLevel, error) {
	return f.stockLevels, nil
}

func (f *fakeStore) StockMovements(ctx context.Context, orgID id.ID, from, to time.Time) ([]*inventory.StockMovement, error) {
	return f.movements, nil
}

func (f *fakeStore) AssetTransactions(ctx context.Context, orgID id.ID, from, to time.Time) ([]*assets.Transaction, error) {
	return f.assetTxs, nil
}

func (f *fakeStore) CountryCodes(ctx context.Context) (map[string]struct{}, error) {
	return f.countries, nil
}

func (f *fakeStore) CurrencyCodes(ctx context.Context) (map[string]struct{}, error) {
	return f.currencies, nil
}

func (f *fakeStore) TariffCodes(ctx context.Context, year int) (map[string]struct{}, error) {
	return f.tariffs, nil
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, time.April, 15, 10, 30, 0, 0, time.UTC)
	}
}

func newTestStore() *fakeStore {
	org := organization.NewOrganization("ORG", "Демо ЕООД", "123456789", "София", "BG")
	vat := "BG123456789"
	org.VATNumber = &vat
	rep := "Иван Петров"
	org.RepresentativeName = &rep

	customer := contraagent.NewContraagent("C001", "Клиент АД", "BG", true, false)
	custReg := "200100200"
	customer.RegistrationNumber = &custReg
	customer.OpeningDebitBalance = decimal.RequireFromString("100.00")
	customer.ClosingDebitBalance = decimal.RequireFromString("220.00")

	supplier := contraagent.NewContraagent("S001", "Доставчик ООД", "BG", false, true)

	prod := product.NewProduct("P001", "Болт M8", "PCE")
	cc := "73181500"
	prod.CommodityCode = &cc

	acc411 := account.NewAccount("411", "Клиенти", account.TypeAsset)
	acc411.OpeningBalance = decimal.RequireFromString("100.00")
	acc702 := account.NewAccount("702", "Приходи от продажби", account.TypeRevenue)

	return &fakeStore{
		org:       org,
		accounts:  []*account.Account{acc411, acc702},
		customers: []*contraagent.Contraagent{customer},
		suppliers: []*contraagent.Contraagent{supplier},
		products:  []*product.Product{prod},
		countries: map[string]struct{}{"BG": {}, "DE": {}},
		currencies: map[string]struct{}{
			"BGN": {}, "EUR": {},
		},
		tariffs: map[string]struct{}{"73181500": {}},
	}
}

func balancedEntry(orgID id.ID, customer *contraagent.Contraagent) *journal.Entry {
	e := journal.NewEntry(orgID, "DOC-1", time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC))
	desc := "Продажба на стоки"
	e.Description = &desc
	e.Posted = true

	rate := decimal.RequireFromString("20")
	base := decimal.RequireFromString("100.00")
	vat := decimal.RequireFromString("20.00")
	custID := customer.ID

	e.Lines = []journal.Line{
		{
			ID:            id.New(),
			EntryID:       e.ID,
			LineNumber:    1,
			AccountCode:   "411",
			Debit:         decimal.RequireFromString("120.00"),
			ContraagentID: &custID,
			CurrencyCode:  "BGN",
		},
		{
			ID:           id.New(),
			EntryID:      e.ID,
			LineNumber:   2,
			AccountCode:  "702",
			Credit:       decimal.RequireFromString("120.00"),
			CurrencyCode: "BGN",
			VATRate:      &rate,
			VATBase:      &base,
			VATAmount:    &vat,
		},
	}
	return e
}

func monthlyRequest(orgID id.ID) Request {
	return Request{OrganizationID: orgID, Type: ReportMonthly, Year: 2024, Month: 4}
}

func TestGenerateValidatesBeforeDataAccess(t *testing.T) {
	store := newTestStore()
	svc := NewService(store).WithClock(fixedClock())

	_, err := svc.Generate(context.Background(), Request{
		OrganizationID: store.org.ID,
		Type:           ReportType(42),
		Year:           2024,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeInvalidReportType))
	assert.Equal(t, 0, store.snapshotCalls, "validation must run before any data access")

	_, err = svc.Generate(context.Background(), Request{
		OrganizationID: store.org.ID,
		Type:           ReportMonthly,
		Year:           2024,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeMissingPeriod))
	assert.Equal(t, 0, store.snapshotCalls)
}

func TestGenerateMonthly(t *testing.T) {
	store := newTestStore()
	store.periodStart = time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	store.openingTurns = []journal.AccountTurnover{
		{AccountCode: "411", Debit: decimal.RequireFromString("50.00")},
	}
	store.periodTurns = []journal.AccountTurnover{
		{AccountCode: "411", Debit: decimal.RequireFromString("120.00")},
		{AccountCode: "702", Credit: decimal.RequireFromString("120.00")},
	}
	store.entries = []*journal.Entry{balancedEntry(store.org.ID, store.customers[0])}

	svc := NewService(store).WithClock(fixedClock())

	file, err := svc.Generate(context.Background(), monthlyRequest(store.org.ID))
	require.NoError(t, err)

	assert.Equal(t, "saft_monthly.xml", file.Name)
	assert.Equal(t, "application/xml", file.ContentType)

	xml := string(file.Data)
	assert.Contains(t, xml, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, xml, "<nsSAFT:AuditFileVersion>1.0.1</nsSAFT:AuditFileVersion>")
	assert.Contains(t, xml, "<nsSAFT:HeaderComment>M</nsSAFT:HeaderComment>")
	assert.Contains(t, xml, "<nsSAFT:RegistrationNumber>000123456789</nsSAFT:RegistrationNumber>")

	// 411 opens at 100.00 stored plus 50.00 turnover, closes 120.00 higher
	assert.Contains(t, xml, "<nsSAFT:OpeningDebitBalance>150.00</nsSAFT:OpeningDebitBalance>")
	assert.Contains(t, xml, "<nsSAFT:ClosingDebitBalance>270.00</nsSAFT:ClosingDebitBalance>")

	assert.Contains(t, xml, "<nsSAFT:NumberOfEntries>1</nsSAFT:NumberOfEntries>")
	assert.Contains(t, xml, "<nsSAFT:TotalDebit>120.00</nsSAFT:TotalDebit>")
	assert.Contains(t, xml, "<nsSAFT:CustomerID>200100200</nsSAFT:CustomerID>")
	assert.Contains(t, xml, "<nsSAFT:TaxPercentage>20.00</nsSAFT:TaxPercentage>")
	assert.Contains(t, xml, "<nsSAFT:ProductCommodityCode>73181500</nsSAFT:ProductCommodityCode>")

	// the entry bills a customer with VAT, so it surfaces as a sales invoice
	assert.Contains(t, xml, "<nsSAFT:InvoiceNo>DOC-1</nsSAFT:InvoiceNo>")
	assert.Contains(t, xml, "<nsSAFT:InvoiceType>01</nsSAFT:InvoiceType>")
	assert.Contains(t, xml, "<nsSAFT:DebitCreditIndicator>C</nsSAFT:DebitCreditIndicator>")
	assert.Contains(t, xml, "<nsSAFT:NetTotal>100.00</nsSAFT:NetTotal>")
	assert.Contains(t, xml, "<nsSAFT:GrossTotal>120.00</nsSAFT:GrossTotal>")
}

func TestGenerateMonthlySalesInvoices(t *testing.T) {
	store := newTestStore()
	store.entries = []*journal.Entry{balancedEntry(store.org.ID, store.customers[0])}

	svc := NewService(store).WithClock(fixedClock())

	file, err := svc.Generate(context.Background(), monthlyRequest(store.org.ID))
	require.NoError(t, err)

	xml := string(file.Data)
	assert.Contains(t, xml, "<nsSAFT:SalesInvoices>")
	assert.Contains(t, xml, "<nsSAFT:InvoiceNo>DOC-1</nsSAFT:InvoiceNo>")
	// invoice totals: base 100.00 plus 20% VAT, debit and credit both gross
	assert.Contains(t, xml, "<nsSAFT:TotalDebit>120.00</nsSAFT:TotalDebit>")
	assert.Contains(t, xml, "<nsSAFT:TotalCredit>120.00</nsSAFT:TotalCredit>")
	assert.Contains(t, xml, "<nsSAFT:TaxBase>100.00</nsSAFT:TaxBase>")
	assert.Contains(t, xml, "<nsSAFT:InvoiceLineAmount>120.00</nsSAFT:InvoiceLineAmount>")
	// customer identity comes from the receivable line's party
	assert.Contains(t, xml, "<nsSAFT:Name>Клиент АД</nsSAFT:Name>")
}

func TestGenerateMonthlyNoVATEntriesEmptySalesInvoices(t *testing.T) {
	store := newTestStore()
	entry := balancedEntry(store.org.ID, store.customers[0])
	entry.Lines[1].VATRate = nil
	entry.Lines[1].VATBase = nil
	entry.Lines[1].VATAmount = nil
	store.entries = []*journal.Entry{entry}

	svc := NewService(store).WithClock(fixedClock())

	file, err := svc.Generate(context.Background(), monthlyRequest(store.org.ID))
	require.NoError(t, err)

	xml := string(file.Data)
	assert.Contains(t, xml, "<nsSAFT:SalesInvoices>")
	assert.Contains(t, xml, "<nsSAFT:NumberOfEntries>0</nsSAFT:NumberOfEntries>")
	assert.NotContains(t, xml, "<nsSAFT:Invoice>")
}

func TestGenerateIsDeterministic(t *testing.T) {
	store := newTestStore()
	store.periodStart = time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	store.entries = []*journal.Entry{balancedEntry(store.org.ID, store.customers[0])}

	svc := NewService(store).WithClock(fixedClock())
	req := monthlyRequest(store.org.ID)

	first, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Data, second.Data, "same request and state must yield byte-identical output")
}

func TestGenerateUnbalancedEntry(t *testing.T) {
	store := newTestStore()
	entry := balancedEntry(store.org.ID, store.customers[0])
	entry.Lines[1].Credit = decimal.RequireFromString("119.98")
	store.entries = []*journal.Entry{entry}

	svc := NewService(store).WithClock(fixedClock())

	_, err := svc.Generate(context.Background(), monthlyRequest(store.org.ID))
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeUnbalancedEntry))

	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "120.00", appErr.Details["debit"])
	assert.Equal(t, "119.98", appErr.Details["credit"])
}

func TestGenerateEntryWithinTolerance(t *testing.T) {
	store := newTestStore()
	entry := balancedEntry(store.org.ID, store.customers[0])
	entry.Lines[1].Credit = decimal.RequireFromString("119.99")
	store.entries = []*journal.Entry{entry}

	svc := NewService(store).WithClock(fixedClock())

	_, err := svc.Generate(context.Background(), monthlyRequest(store.org.ID))
	assert.NoError(t, err, "0.01 divergence is within rounding tolerance")
}

func TestGenerateUnknownCountry(t *testing.T) {
	store := newTestStore()
	store.customers[0].CountryCode = "XX"

	svc := NewService(store).WithClock(fixedClock())

	_, err := svc.Generate(context.Background(), monthlyRequest(store.org.ID))
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeUnknownReferenceCode))

	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "XX", appErr.Details["code"])
	assert.Equal(t, "country", appErr.Details["table"])
}

func TestGenerateUnknownCurrency(t *testing.T) {
	store := newTestStore()
	entry := balancedEntry(store.org.ID, store.customers[0])
	entry.Lines[0].CurrencyCode = "XXX"
	store.entries = []*journal.Entry{entry}

	svc := NewService(store).WithClock(fixedClock())

	_, err := svc.Generate(context.Background(), monthlyRequest(store.org.ID))
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeUnknownReferenceCode))

	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "currency", appErr.Details["table"])
}

func TestGenerateUnknownTariffCode(t *testing.T) {
	store := newTestStore()
	bad := "99999999"
	store.products[0].CommodityCode = &bad

	svc := NewService(store).WithClock(fixedClock())

	_, err := svc.Generate(context.Background(), monthlyRequest(store.org.ID))
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeUnknownReferenceCode))

	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "tariff_code", appErr.Details["table"])
}

func TestGenerateUnknownAccountCode(t *testing.T) {
	store := newTestStore()
	entry := balancedEntry(store.org.ID, store.customers[0])
	entry.Lines[1].AccountCode = "999"
	store.entries = []*journal.Entry{entry}

	svc := NewService(store).WithClock(fixedClock())

	_, err := svc.Generate(context.Background(), monthlyRequest(store.org.ID))
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeUnknownReferenceCode))

	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "account", appErr.Details["table"])
}

func TestGenerateAnnual(t *testing.T) {
	store := newTestStore()
	a := asset.NewAsset("A001", "Сървър", "205",
		time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC),
		decimal.RequireFromString("6000.00"))
	a.UsefulLifeMonths = 60
	a.AccumulatedDepreciation = decimal.RequireFromString("2400.00")
	a.DepreciationForPeriod = decimal.RequireFromString("1200.00")
	a.BookValue = decimal.RequireFromString("3600.00")
	store.assetRows = []*asset.Asset{a}

	supplierName := "Доставчик ООД"
	tr := assets.NewTransaction(store.org.ID, a.ID, assets.TransactionDepreciation,
		time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		decimal.RequireFromString("1200.00"))
	tr.AssetCode = "A001"
	tr.SupplierName = &supplierName
	store.assetTxs = []*assets.Transaction{tr}

	svc := NewService(store).WithClock(fixedClock())

	file, err := svc.Generate(context.Background(), Request{
		OrganizationID: store.org.ID, Type: ReportAnnual, Year: 2024,
	})
	require.NoError(t, err)

	assert.Equal(t, "saft_annual.xml", file.Name)
	xml := string(file.Data)
	assert.Contains(t, xml, "<nsSAFT:HeaderComment>A</nsSAFT:HeaderComment>")
	assert.Contains(t, xml, "<nsSAFT:AssetID>A001</nsSAFT:AssetID>")
	assert.Contains(t, xml, "<nsSAFT:AssetLifeYear>5.00</nsSAFT:AssetLifeYear>")
	assert.Contains(t, xml, "<nsSAFT:DepreciationPercentage>20.00</nsSAFT:DepreciationPercentage>")
	// book value before this year's charge
	assert.Contains(t, xml, "<nsSAFT:BookValueBegin>4800.00</nsSAFT:BookValueBegin>")
	assert.Contains(t, xml, "<nsSAFT:NumberOfAssetTransactions>1</nsSAFT:NumberOfAssetTransactions>")
	assert.Contains(t, xml, "<nsSAFT:SelectionStartDate>2024-01-01</nsSAFT:SelectionStartDate>")
	assert.Contains(t, xml, "<nsSAFT:SelectionEndDate>2024-12-31</nsSAFT:SelectionEndDate>")
}

func TestGenerateOnDemandEmpty(t *testing.T) {
	store := newTestStore()
	store.products = nil

	svc := NewService(store).WithClock(fixedClock())

	file, err := svc.Generate(context.Background(), Request{
		OrganizationID: store.org.ID, Type: ReportOnDemand, Year: 2024,
	})
	require.NoError(t, err)

	assert.Equal(t, "saft_on_demand.xml", file.Name)
	xml := string(file.Data)
	assert.Contains(t, xml, "<nsSAFT:HeaderComment>D</nsSAFT:HeaderComment>")
	assert.Contains(t, xml, "<nsSAFT:NumberOfMovementLines>0</nsSAFT:NumberOfMovementLines>")
	// fiscal year start through the clock's today
	assert.Contains(t, xml, "<nsSAFT:SelectionStartDate>2024-01-01</nsSAFT:SelectionStartDate>")
	assert.Contains(t, xml, "<nsSAFT:SelectionEndDate>2024-04-15</nsSAFT:SelectionEndDate>")
}

func TestGenerateOnDemandMovements(t *testing.T) {
	store := newTestStore()
	m1 := inventory.NewStockMovement(store.org.ID, store.products[0].ID,
		inventory.MovementPurchase, decimal.RequireFromString("10"),
		time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC))
	m1.ProductCode = "P001"
	m1.Warehouse = "WH1"
	m1.Unit = "PCE"
	m2 := inventory.NewStockMovement(store.org.ID, store.products[0].ID,
		inventory.MovementSale, decimal.RequireFromString("4"),
		time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC))
	m2.ProductCode = "P001"
	m2.Warehouse = "WH1"
	m2.Unit = "PCE"
	store.movements = []*inventory.StockMovement{m1, m2}
	store.stockLevels = []inventory.StockLevel{{
		ProductID:   store.products[0].ID,
		ProductCode: "P001",
		Warehouse:   "WH1",
		Unit:        "PCE",
		Quantity:    decimal.RequireFromString("6"),
		Value:       decimal.RequireFromString("30.00"),
	}}

	svc := NewService(store).WithClock(fixedClock())

	file, err := svc.Generate(context.Background(), Request{
		OrganizationID: store.org.ID, Type: ReportOnDemand, Year: 2024,
	})
	require.NoError(t, err)

	xml := string(file.Data)
	assert.Contains(t, xml, "<nsSAFT:NumberOfMovementLines>2</nsSAFT:NumberOfMovementLines>")
	assert.Contains(t, xml, "<nsSAFT:TotalQuantityReceived>10.00</nsSAFT:TotalQuantityReceived>")
	assert.Contains(t, xml, "<nsSAFT:TotalQuantityIssued>4.00</nsSAFT:TotalQuantityIssued>")
	assert.Contains(t, xml, "<nsSAFT:StockAccountID>302</nsSAFT:StockAccountID>")
	assert.Contains(t, xml, "<nsSAFT:UnitPrice>5.00</nsSAFT:UnitPrice>")
}

func TestGenerateRetriesTransientFailures(t *testing.T) {
	store := newTestStore()
	store.failSnapshots = 1

	svc := NewService(store).WithClock(fixedClock())

	_, err := svc.Generate(context.Background(), monthlyRequest(store.org.ID))
	require.NoError(t, err)
	assert.Equal(t, 2, store.snapshotCalls)
}

func TestGenerateGivesUpAfterRetries(t *testing.T) {
	store := newTestStore()
	store.failSnapshots = 10

	svc := NewService(store).WithClock(fixedClock())

	start := time.Now()
	_, err := svc.Generate(context.Background(), monthlyRequest(store.org.ID))
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeUnavailable))
	assert.Equal(t, generateAttempts, store.snapshotCalls)
	// backoff runs between attempts only, never after the last one
	assert.Less(t, elapsed, 5*retryBackoff)
}

func TestGenerateDoesNotRetryDataErrors(t *testing.T) {
	store := newTestStore()
	store.customers[0].CountryCode = "XX"

	svc := NewService(store).WithClock(fixedClock())

	_, err := svc.Generate(context.Background(), monthlyRequest(store.org.ID))
	require.Error(t, err)
	assert.Equal(t, 1, store.snapshotCalls, "integrity errors must not be retried")
}

// Every report variant must serialize to XML a standard parser accepts
// end to end, not just to byte soup that happens to contain the right
// substrings.
func TestGenerateOutputIsWellFormedXML(t *testing.T) {
	store := newTestStore()
	store.periodStart = time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	store.entries = []*journal.Entry{balancedEntry(store.org.ID, store.customers[0])}

	a := asset.NewAsset("A001", "Сървър", "205",
		time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC),
		decimal.RequireFromString("6000.00"))
	a.UsefulLifeMonths = 60
	a.BookValue = decimal.RequireFromString("3600.00")
	store.assetRows = []*asset.Asset{a}

	tr := assets.NewTransaction(store.org.ID, a.ID, assets.TransactionDepreciation,
		time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		decimal.RequireFromString("1200.00"))
	tr.AssetCode = "A001"
	store.assetTxs = []*assets.Transaction{tr}

	m := inventory.NewStockMovement(store.org.ID, store.products[0].ID,
		inventory.MovementPurchase, decimal.RequireFromString("10"),
		time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC))
	m.ProductCode = "P001"
	m.Warehouse = "WH1"
	m.Unit = "PCE"
	store.movements = []*inventory.StockMovement{m}

	svc := NewService(store).WithClock(fixedClock())

	requests := []Request{
		monthlyRequest(store.org.ID),
		{OrganizationID: store.org.ID, Type: ReportAnnual, Year: 2024},
		{OrganizationID: store.org.ID, Type: ReportOnDemand, Year: 2024},
	}

	for _, req := range requests {
		t.Run(req.Type.String(), func(t *testing.T) {
			file, err := svc.Generate(context.Background(), req)
			require.NoError(t, err)

			dec := xml.NewDecoder(bytes.NewReader(file.Data))
			var elements int
			for {
				tok, err := dec.Token()
				if err == io.EOF {
					break
				}
				require.NoError(t, err)
				if _, ok := tok.(xml.StartElement); ok {
					elements++
				}
			}
			assert.Greater(t, elements, 10)
		})
	}
}
