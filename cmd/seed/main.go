// Package main provides a CLI tool for loading the reference tables and,
// optionally, a demo data set.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fiskal/internal/core/apperror"
	"fiskal/internal/domain/catalogs/account"
	"fiskal/internal/domain/catalogs/contraagent"
	"fiskal/internal/domain/catalogs/organization"
	"fiskal/internal/domain/catalogs/product"
	"fiskal/internal/domain/nomenclature"
	"fiskal/internal/infrastructure/storage/postgres"
	"fiskal/internal/infrastructure/storage/postgres/catalog_repo"
	"fiskal/internal/infrastructure/storage/postgres/nomenclature_repo"
	"fiskal/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txManager := postgres.NewTxManager(pool)

	if err := seedNomenclature(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed nomenclature", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, txManager, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

// seedNomenclature loads the regulator's reference tables. Rows are upserted
// by natural key, so re-running the seeder is safe.
func seedNomenclature(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	repo := nomenclature_repo.NewRepo(txManager)

	countries := []nomenclature.Country{
		{Code: "BG", Code3: "BGR", NumericCode: "100", Name: "Bulgaria", NameBG: "България"},
		{Code: "DE", Code3: "DEU", NumericCode: "276", Name: "Germany", NameBG: "Германия"},
		{Code: "FR", Code3: "FRA", NumericCode: "250", Name: "France", NameBG: "Франция"},
		{Code: "IT", Code3: "ITA", NumericCode: "380", Name: "Italy", NameBG: "Италия"},
		{Code: "ES", Code3: "ESP", NumericCode: "724", Name: "Spain", NameBG: "Испания"},
		{Code: "RO", Code3: "ROU", NumericCode: "642", Name: "Romania", NameBG: "Румъния"},
		{Code: "GR", Code3: "GRC", NumericCode: "300", Name: "Greece", NameBG: "Гърция"},
		{Code: "AT", Code3: "AUT", NumericCode: "040", Name: "Austria", NameBG: "Австрия"},
		{Code: "NL", Code3: "NLD", NumericCode: "528", Name: "Netherlands", NameBG: "Нидерландия"},
		{Code: "BE", Code3: "BEL", NumericCode: "056", Name: "Belgium", NameBG: "Белгия"},
		{Code: "PL", Code3: "POL", NumericCode: "616", Name: "Poland", NameBG: "Полша"},
		{Code: "GB", Code3: "GBR", NumericCode: "826", Name: "United Kingdom", NameBG: "Обединено кралство"},
		{Code: "US", Code3: "USA", NumericCode: "840", Name: "United States", NameBG: "Съединени щати"},
		{Code: "TR", Code3: "TUR", NumericCode: "792", Name: "Turkey", NameBG: "Турция"},
		{Code: "RS", Code3: "SRB", NumericCode: "688", Name: "Serbia", NameBG: "Сърбия"},
		{Code: "MK", Code3: "MKD", NumericCode: "807", Name: "North Macedonia", NameBG: "Северна Македония"},
	}
	if err := repo.UpsertCountries(ctx, countries); err != nil {
		return fmt.Errorf("seed countries: %w", err)
	}
	log.Infow("countries loaded", "count", len(countries))

	ibanFormats := []nomenclature.IBANFormat{
		{CountryCode: "BG", Length: 22, BankCodeFormat: "4a6n8c"},
		{CountryCode: "DE", Length: 22, BankCodeFormat: "18n"},
		{CountryCode: "FR", Length: 27, BankCodeFormat: "10n11c2n"},
		{CountryCode: "IT", Length: 27, BankCodeFormat: "1a10n12c"},
		{CountryCode: "ES", Length: 24, BankCodeFormat: "20n"},
		{CountryCode: "RO", Length: 24, BankCodeFormat: "4a16c"},
		{CountryCode: "GR", Length: 27, BankCodeFormat: "7n16c"},
		{CountryCode: "AT", Length: 20, BankCodeFormat: "16n"},
		{CountryCode: "NL", Length: 18, BankCodeFormat: "4a10n"},
		{CountryCode: "BE", Length: 16, BankCodeFormat: "12n"},
		{CountryCode: "PL", Length: 28, BankCodeFormat: "24n"},
		{CountryCode: "GB", Length: 22, BankCodeFormat: "4a14n"},
	}
	if err := repo.UpsertIBANFormats(ctx, ibanFormats); err != nil {
		return fmt.Errorf("seed iban formats: %w", err)
	}
	log.Infow("iban formats loaded", "count", len(ibanFormats))

	currencies := []nomenclature.Currency{
		{Code: "BGN", Name: "Bulgarian Lev", MinorUnits: 2},
		{Code: "EUR", Name: "Euro", MinorUnits: 2},
		{Code: "USD", Name: "US Dollar", MinorUnits: 2},
		{Code: "GBP", Name: "Pound Sterling", MinorUnits: 2},
		{Code: "CHF", Name: "Swiss Franc", MinorUnits: 2},
		{Code: "RON", Name: "Romanian Leu", MinorUnits: 2},
		{Code: "TRY", Name: "Turkish Lira", MinorUnits: 2},
		{Code: "JPY", Name: "Yen", MinorUnits: 0},
	}
	if err := repo.UpsertCurrencies(ctx, currencies); err != nil {
		return fmt.Errorf("seed currencies: %w", err)
	}
	log.Infow("currencies loaded", "count", len(currencies))

	// Commodity codes are year-scoped; load the current year's set.
	year := time.Now().Year()
	supplUnit := "p/st"
	tariffCodes := []nomenclature.TariffCode{
		{Code: "73181500", Year: year, Description: "Screws and bolts, of iron or steel", SupplementaryUnit: nil},
		{Code: "84713000", Year: year, Description: "Portable automatic data-processing machines", SupplementaryUnit: &supplUnit},
		{Code: "85171200", Year: year, Description: "Telephones for cellular networks", SupplementaryUnit: &supplUnit},
		{Code: "48025510", Year: year, Description: "Paper and paperboard, uncoated", SupplementaryUnit: nil},
		{Code: "94031051", Year: year, Description: "Desks, of metal, for offices", SupplementaryUnit: nil},
		{Code: "39261000", Year: year, Description: "Office or school supplies, of plastics", SupplementaryUnit: nil},
	}
	if err := repo.UpsertTariffCodes(ctx, tariffCodes); err != nil {
		return fmt.Errorf("seed tariff codes: %w", err)
	}
	log.Infow("tariff codes loaded", "count", len(tariffCodes), "year", year)

	return nil
}

// seedDemoData creates a demo organization with a minimal chart of accounts,
// a few trading parties and products. Existing rows are left untouched.
func seedDemoData(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	log.Info("seeding demo data...")

	orgService := organization.NewService(catalog_repo.NewOrganizationRepo(txManager), txManager)
	accountService := account.NewService(catalog_repo.NewAccountRepo(txManager), txManager)
	partyService := contraagent.NewService(catalog_repo.NewContraagentRepo(txManager), txManager)
	productService := product.NewService(catalog_repo.NewProductRepo(txManager), txManager)

	// 1. Organization
	if _, err := orgService.GetByCode(ctx, "ORG-001"); apperror.IsNotFound(err) {
		org := organization.NewOrganization("ORG-001", "Демо ЕООД", "123456789", "София", "BG")
		vatNumber := "BG123456789"
		org.VATNumber = &vatNumber
		org.IsDefault = true

		if err := orgService.Create(ctx, org); err != nil {
			return fmt.Errorf("seed organization: %w", err)
		}
		log.Infow("organization created", "code", org.Code)
	} else if err != nil {
		return fmt.Errorf("check organization: %w", err)
	}

	// 2. Chart of accounts
	accounts := []struct {
		code  string
		name  string
		aType account.Type
	}{
		{"201", "Сгради", account.TypeAsset},
		{"205", "Машини и оборудване", account.TypeAsset},
		{"302", "Материали", account.TypeAsset},
		{"304", "Стоки", account.TypeAsset},
		{"401", "Доставчици", account.TypeLiability},
		{"411", "Клиенти", account.TypeAsset},
		{"4531", "Начислен ДДС за покупките", account.TypeAsset},
		{"4532", "Начислен ДДС за продажбите", account.TypeLiability},
		{"501", "Каса в лева", account.TypeAsset},
		{"503", "Разплащателна сметка", account.TypeAsset},
		{"101", "Основен капитал", account.TypeEquity},
		{"601", "Разходи за материали", account.TypeExpense},
		{"702", "Приходи от продажби на стоки", account.TypeRevenue},
	}

	for _, a := range accounts {
		if _, err := accountService.GetByCode(ctx, a.code); err == nil {
			continue
		} else if !apperror.IsNotFound(err) {
			return fmt.Errorf("check account %s: %w", a.code, err)
		}

		if err := accountService.Create(ctx, account.NewAccount(a.code, a.name, a.aType)); err != nil {
			return fmt.Errorf("seed account %s: %w", a.code, err)
		}
	}
	log.Infow("chart of accounts seeded", "count", len(accounts))

	// 3. Trading parties
	parties := []struct {
		code       string
		name       string
		country    string
		isCustomer bool
		isSupplier bool
		regNumber  string
	}{
		{"C-001", "Клиент АД", "BG", true, false, "200100200"},
		{"C-002", "Kunde GmbH", "DE", true, false, "DE811234567"},
		{"S-001", "Доставчик ООД", "BG", false, true, "131222333"},
		{"CS-001", "Партньор ЕООД", "BG", true, true, "175444555"},
	}

	for _, p := range parties {
		if _, err := partyService.GetByCode(ctx, p.code); err == nil {
			continue
		} else if !apperror.IsNotFound(err) {
			return fmt.Errorf("check contraagent %s: %w", p.code, err)
		}

		party := contraagent.NewContraagent(p.code, p.name, p.country, p.isCustomer, p.isSupplier)
		reg := p.regNumber
		party.RegistrationNumber = &reg

		if err := partyService.Create(ctx, party); err != nil {
			return fmt.Errorf("seed contraagent %s: %w", p.code, err)
		}
	}
	log.Infow("trading parties seeded", "count", len(parties))

	// 4. Products
	products := []struct {
		code          string
		name          string
		unit          string
		commodityCode string
	}{
		{"P-001", "Болт M8", "PCE", "73181500"},
		{"P-002", "Лаптоп 15\"", "PCE", "84713000"},
		{"P-003", "Хартия А4", "PCE", "48025510"},
		{"P-004", "Офис бюро", "PCE", "94031051"},
	}

	for _, p := range products {
		if _, err := productService.GetByCode(ctx, p.code); err == nil {
			continue
		} else if !apperror.IsNotFound(err) {
			return fmt.Errorf("check product %s: %w", p.code, err)
		}

		prod := product.NewProduct(p.code, p.name, p.unit)
		cc := p.commodityCode
		prod.CommodityCode = &cc

		if err := productService.Create(ctx, prod); err != nil {
			return fmt.Errorf("seed product %s: %w", p.code, err)
		}
	}
	log.Infow("products seeded", "count", len(products))

	log.Info("demo data seeded successfully")
	return nil
}
