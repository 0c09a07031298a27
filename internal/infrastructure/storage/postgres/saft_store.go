package postgres

import (
	"context"
	"time"

	"fiskal/internal/core/id"
	"fiskal/internal/domain"
	"fiskal/internal/domain/assets"
	"fiskal/internal/domain/catalogs/account"
	"fiskal/internal/domain/catalogs/asset"
	"fiskal/internal/domain/catalogs/contraagent"
	"fiskal/internal/domain/catalogs/organization"
	"fiskal/internal/domain/catalogs/product"
	"fiskal/internal/domain/inventory"
	"fiskal/internal/domain/journal"
	"fiskal/internal/domain/nomenclature"
	"fiskal/internal/domain/saft"
)

// ReportStore bundles the repositories the report assembler reads from.
// Snapshot opens a repeatable-read read-only transaction and stores it in
// the context; every repository call inside the callback picks it up through
// the TxManager, so all reads observe one database snapshot.
type ReportStore struct {
	manager *TxManager

	orgs     organization.Repository
	accounts account.Repository
	parties  contraagent.Repository
	products product.Repository
	assets   asset.Repository

	journals  journal.Repository
	stock     inventory.Repository
	assetTxs  assets.Repository
	reference nomenclature.Repository
}

var _ saft.Store = (*ReportStore)(nil)

// NewReportStore creates a new ReportStore.
func NewReportStore(
	manager *TxManager,
	orgs organization.Repository,
	accounts account.Repository,
	parties contraagent.Repository,
	products product.Repository,
	assetCatalog asset.Repository,
	journals journal.Repository,
	stock inventory.Repository,
	assetTxs assets.Repository,
	reference nomenclature.Repository,
) *ReportStore {
	return &ReportStore{
		manager:   manager,
		orgs:      orgs,
		accounts:  accounts,
		parties:   parties,
		products:  products,
		assets:    assetCatalog,
		journals:  journals,
		stock:     stock,
		assetTxs:  assetTxs,
		reference: reference,
	}
}

// Snapshot runs fn inside one consistent read transaction.
func (s *ReportStore) Snapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.manager.Snapshot(ctx, fn)
}

// Organization loads the reporting entity.
func (s *ReportStore) Organization(ctx context.Context, orgID id.ID) (*organization.Organization, error) {
	return s.orgs.GetByID(ctx, orgID)
}

// Accounts loads the full chart of accounts.
func (s *ReportStore) Accounts(ctx context.Context) ([]*account.Account, error) {
	return s.accounts.ListAll(ctx)
}

// Customers loads all contraagents with the customer role.
func (s *ReportStore) Customers(ctx context.Context) ([]*contraagent.Contraagent, error) {
	return s.parties.ListCustomers(ctx)
}

// Suppliers loads all contraagents with the supplier role.
func (s *ReportStore) Suppliers(ctx context.Context) ([]*contraagent.Contraagent, error) {
	return s.parties.ListSuppliers(ctx)
}

// Products loads the full product catalog.
func (s *ReportStore) Products(ctx context.Context) ([]*product.Product, error) {
	result, err := s.products.List(ctx, listAllFilter())
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

// Assets loads the full fixed-assets catalog.
func (s *ReportStore) Assets(ctx context.Context) ([]*asset.Asset, error) {
	return s.assets.ListAll(ctx)
}

// PostedEntries loads posted journal entries with lines for the range.
func (s *ReportStore) PostedEntries(ctx context.Context, orgID id.ID, from, to time.Time) ([]*journal.Entry, error) {
	return s.journals.ListByPeriod(ctx, orgID, from, to)
}

// TurnoversBetween loads per-account posted totals for the range.
func (s *ReportStore) TurnoversBetween(ctx context.Context, orgID id.ID, from, to time.Time) ([]journal.AccountTurnover, error) {
	return s.journals.TurnoversBetween(ctx, orgID, from, to)
}

// StockLevels derives physical stock as of the date.
func (s *ReportStore) StockLevels(ctx context.Context, orgID id.ID, at time.Time) ([]inventory.StockLevel, error) {
	return s.stock.StockAt(ctx, orgID, at)
}

// StockMovements loads movements for the range.
func (s *ReportStore) StockMovements(ctx context.Context, orgID id.ID, from, to time.Time) ([]*inventory.StockMovement, error) {
	return s.stock.ListByPeriod(ctx, orgID, from, to)
}

// AssetTransactions loads asset transactions for the range.
func (s *ReportStore) AssetTransactions(ctx context.Context, orgID id.ID, from, to time.Time) ([]*assets.Transaction, error) {
	return s.assetTxs.ListByPeriod(ctx, orgID, from, to)
}

// CountryCodes loads the country code set.
func (s *ReportStore) CountryCodes(ctx context.Context) (map[string]struct{}, error) {
	return s.reference.CountryCodes(ctx)
}

// CurrencyCodes loads the currency code set.
func (s *ReportStore) CurrencyCodes(ctx context.Context) (map[string]struct{}, error) {
	return s.reference.CurrencyCodes(ctx)
}

// TariffCodes loads the tariff code set for the year.
func (s *ReportStore) TariffCodes(ctx context.Context, year int) (map[string]struct{}, error) {
	return s.reference.TariffCodes(ctx, year)
}

// listAllFilter requests every non-deleted row ordered by code.
func listAllFilter() domain.ListFilter {
	return domain.ListFilter{OrderBy: "code"}
}
