// Package nomenclature_repo provides PostgreSQL storage for the reference
// tables: countries, IBAN formats, tariff codes and currencies.
package nomenclature_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"fiskal/internal/core/apperror"
	"fiskal/internal/domain/nomenclature"
	"fiskal/internal/infrastructure/storage/postgres"
)

const (
	countryTable    = "nom_countries"
	ibanFormatTable = "nom_iban_formats"
	tariffCodeTable = "nom_tariff_codes"
	currencyTable   = "nom_currencies"
)

// Repo implements nomenclature.Repository and nomenclature.Writer.
type Repo struct {
	manager *postgres.TxManager
}

var (
	_ nomenclature.Repository = (*Repo)(nil)
	_ nomenclature.Writer     = (*Repo)(nil)
)

// NewRepo creates a new nomenclature repository.
func NewRepo(manager *postgres.TxManager) *Repo {
	return &Repo{manager: manager}
}

func (r *Repo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// CountryByCode returns the country for an ISO alpha-2 code.
func (r *Repo) CountryByCode(ctx context.Context, code string) (*nomenclature.Country, error) {
	row := &nomenclature.Country{}
	err := r.getOne(ctx, row, countryTable,
		postgres.ExtractDBColumns[nomenclature.Country](),
		squirrel.Eq{"code": code}, code)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// IBANFormatByCountry returns the IBAN layout for a country.
func (r *Repo) IBANFormatByCountry(ctx context.Context, countryCode string) (*nomenclature.IBANFormat, error) {
	row := &nomenclature.IBANFormat{}
	err := r.getOne(ctx, row, ibanFormatTable,
		postgres.ExtractDBColumns[nomenclature.IBANFormat](),
		squirrel.Eq{"country_code": countryCode}, countryCode)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// TariffCode returns the NC8 row valid for the given year.
func (r *Repo) TariffCode(ctx context.Context, code string, year int) (*nomenclature.TariffCode, error) {
	row := &nomenclature.TariffCode{}
	err := r.getOne(ctx, row, tariffCodeTable,
		postgres.ExtractDBColumns[nomenclature.TariffCode](),
		squirrel.Eq{"code": code, "year": year}, fmt.Sprintf("%s/%d", code, year))
	if err != nil {
		return nil, err
	}
	return row, nil
}

// CurrencyByCode returns the currency for an ISO 4217 code.
func (r *Repo) CurrencyByCode(ctx context.Context, code string) (*nomenclature.Currency, error) {
	row := &nomenclature.Currency{}
	err := r.getOne(ctx, row, currencyTable,
		postgres.ExtractDBColumns[nomenclature.Currency](),
		squirrel.Eq{"code": code}, code)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repo) getOne(ctx context.Context, dst any, table string, cols []string, where squirrel.Eq, key string) error {
	sql, args, err := r.builder().
		Select(cols...).
		From(table).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.manager.GetQuerier(ctx), dst, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return apperror.NewNotFound(table, key)
		}
		return fmt.Errorf("get %s: %w", table, err)
	}
	return nil
}

// CountryCodes loads the full set of country codes.
func (r *Repo) CountryCodes(ctx context.Context) (map[string]struct{}, error) {
	return r.codeSet(ctx, r.builder().Select("code").From(countryTable))
}

// CurrencyCodes loads the full set of currency codes.
func (r *Repo) CurrencyCodes(ctx context.Context) (map[string]struct{}, error) {
	return r.codeSet(ctx, r.builder().Select("code").From(currencyTable))
}

// TariffCodes loads the set of tariff codes valid for the year.
func (r *Repo) TariffCodes(ctx context.Context, year int) (map[string]struct{}, error) {
	return r.codeSet(ctx, r.builder().
		Select("code").
		From(tariffCodeTable).
		Where(squirrel.Eq{"year": year}))
}

func (r *Repo) codeSet(ctx context.Context, q squirrel.SelectBuilder) (map[string]struct{}, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.manager.GetQuerier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("code set: %w", err)
	}
	defer rows.Close()

	set := make(map[string]struct{})
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan code: %w", err)
		}
		set[code] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("code set: %w", err)
	}
	return set, nil
}

// --- Writer (used by the seed command) ---

// UpsertCountries loads country rows, replacing existing ones by code.
func (r *Repo) UpsertCountries(ctx context.Context, rows []nomenclature.Country) error {
	return upsert(r, ctx, countryTable, []string{"code"}, rows)
}

// UpsertIBANFormats loads IBAN format rows.
func (r *Repo) UpsertIBANFormats(ctx context.Context, rows []nomenclature.IBANFormat) error {
	return upsert(r, ctx, ibanFormatTable, []string{"country_code"}, rows)
}

// UpsertTariffCodes loads tariff code rows, keyed by code and year.
func (r *Repo) UpsertTariffCodes(ctx context.Context, rows []nomenclature.TariffCode) error {
	return upsert(r, ctx, tariffCodeTable, []string{"code", "year"}, rows)
}

// UpsertCurrencies loads currency rows.
func (r *Repo) UpsertCurrencies(ctx context.Context, rows []nomenclature.Currency) error {
	return upsert(r, ctx, currencyTable, []string{"code"}, rows)
}

func upsert[T any](r *Repo, ctx context.Context, table string, keyCols []string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}

	cols := postgres.ExtractDBColumns[T]()

	return r.manager.RunInTransaction(ctx, func(ctx context.Context) error {
		for i := range rows {
			data := postgres.StructToMap(&rows[i])
			filtered := make(map[string]any, len(cols))
			for _, col := range cols {
				if val, ok := data[col]; ok {
					filtered[col] = val
				}
			}

			q := r.builder().
				Insert(table).
				SetMap(filtered).
				Suffix(onConflictUpdate(keyCols, cols))

			sql, args, err := q.ToSql()
			if err != nil {
				return fmt.Errorf("build upsert: %w", err)
			}
			if _, err := r.manager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
				return fmt.Errorf("upsert %s: %w", table, err)
			}
		}
		return nil
	})
}

// onConflictUpdate builds the ON CONFLICT clause updating all non-key columns.
func onConflictUpdate(keyCols, allCols []string) string {
	keys := make(map[string]struct{}, len(keyCols))
	keyList := ""
	for i, k := range keyCols {
		keys[k] = struct{}{}
		if i > 0 {
			keyList += ", "
		}
		keyList += k
	}

	setList := ""
	for _, col := range allCols {
		if _, isKey := keys[col]; isKey {
			continue
		}
		if setList != "" {
			setList += ", "
		}
		setList += fmt.Sprintf("%s = EXCLUDED.%s", col, col)
	}

	return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", keyList, setList)
}
