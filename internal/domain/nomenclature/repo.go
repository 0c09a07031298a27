package nomenclature

import (
	"context"
)

// Repository defines read access to the reference tables.
type Repository interface {
	// Single-row lookups by natural key. Missing rows map to a not-found error.
	CountryByCode(ctx context.Context, code string) (*Country, error)
	IBANFormatByCountry(ctx context.Context, countryCode string) (*IBANFormat, error)
	TariffCode(ctx context.Context, code string, year int) (*TariffCode, error)
	CurrencyByCode(ctx context.Context, code string) (*Currency, error)

	// Code-set loads used by report cross-validation. One round trip per
	// table instead of one per record.
	CountryCodes(ctx context.Context) (map[string]struct{}, error)
	CurrencyCodes(ctx context.Context) (map[string]struct{}, error)
	TariffCodes(ctx context.Context, year int) (map[string]struct{}, error)
}

// Writer loads reference rows; used only by the seed command.
type Writer interface {
	UpsertCountries(ctx context.Context, rows []Country) error
	UpsertIBANFormats(ctx context.Context, rows []IBANFormat) error
	UpsertTariffCodes(ctx context.Context, rows []TariffCode) error
	UpsertCurrencies(ctx context.Context, rows []Currency) error
}
