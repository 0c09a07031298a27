package saft

import (
	"context"
	"time"

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

// Store is the read surface of the assembler. Snapshot runs fn inside one
// repeatable-read read-only transaction; every other method called from
// within fn sees the same database snapshot, so an assembly is internally
// consistent even while writers commit concurrently.
type Store interface {
	Snapshot(ctx context.Context, fn func(ctx context.Context) error) error

	Organization(ctx context.Context, orgID id.ID) (*organization.Organization, error)
	Accounts(ctx context.Context) ([]*account.Account, error)
	Customers(ctx context.Context) ([]*contraagent.Contraagent, error)
	Suppliers(ctx context.Context) ([]*contraagent.Contraagent, error)
	Products(ctx context.Context) ([]*product.Product, error)
	Assets(ctx context.Context) ([]*asset.Asset, error)

	PostedEntries(ctx context.Context, orgID id.ID, from, to time.Time) ([]*journal.Entry, error)
	TurnoversBetween(ctx context.Context, orgID id.ID, from, to time.Time) ([]journal.AccountTurnover, error)

	StockLevels(ctx context.Context, orgID id.ID, at time.Time) ([]inventory.StockLevel, error)
	StockMovements(ctx context.Context, orgID id.ID, from, to time.Time) ([]*inventory.StockMovement, error)
	AssetTransactions(ctx context.Context, orgID id.ID, from, to time.Time) ([]*assets.Transaction, error)

	CountryCodes(ctx context.Context) (map[string]struct{}, error)
	CurrencyCodes(ctx context.Context) (map[string]struct{}, error)
	TariffCodes(ctx context.Context, year int) (map[string]struct{}, error)
}
