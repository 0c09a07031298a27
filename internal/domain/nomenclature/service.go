package nomenclature

import (
	"context"
)

// Service exposes nomenclature lookups to handlers and the report compiler.
type Service struct {
	repo Repository
}

// NewService creates a new nomenclature Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CountryByCode returns the country for an ISO alpha-2 code.
func (s *Service) CountryByCode(ctx context.Context, code string) (*Country, error) {
	return s.repo.CountryByCode(ctx, code)
}

// IBANFormatByCountry returns the IBAN layout for a country.
func (s *Service) IBANFormatByCountry(ctx context.Context, countryCode string) (*IBANFormat, error) {
	return s.repo.IBANFormatByCountry(ctx, countryCode)
}

// TariffCode returns the NC8 row valid for the given year.
func (s *Service) TariffCode(ctx context.Context, code string, year int) (*TariffCode, error) {
	return s.repo.TariffCode(ctx, code, year)
}

// CurrencyByCode returns the currency for an ISO 4217 code.
func (s *Service) CurrencyByCode(ctx context.Context, code string) (*Currency, error) {
	return s.repo.CurrencyByCode(ctx, code)
}
