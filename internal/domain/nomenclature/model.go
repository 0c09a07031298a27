// Package nomenclature provides the regulator's reference tables.
// Rows are read-only at runtime and keyed by natural codes; they are loaded
// out of band by the seed command.
package nomenclature

// Country is one row of the ISO 3166 country table.
type Country struct {
	// Code is ISO 3166-1 alpha-2, the primary key
	Code string `db:"code" json:"code"`

	// Code3 is ISO 3166-1 alpha-3
	Code3 string `db:"code3" json:"code3"`

	// NumericCode is ISO 3166-1 numeric
	NumericCode string `db:"numeric_code" json:"numericCode"`

	// Name is the English short name
	Name string `db:"name" json:"name"`

	// NameBG is the Bulgarian name used in the VAT registers
	NameBG string `db:"name_bg" json:"nameBg"`
}

// IBANFormat describes the national IBAN layout of a country.
type IBANFormat struct {
	// CountryCode is ISO 3166-1 alpha-2, the primary key
	CountryCode string `db:"country_code" json:"countryCode"`

	// Length is the total IBAN length for the country
	Length int `db:"length" json:"length"`

	// BankCodeFormat describes the BBAN structure (e.g. "4a6n8c")
	BankCodeFormat string `db:"bank_code_format" json:"bankCodeFormat"`
}

// TariffCode is one row of the NC8/TARIC commodity nomenclature.
// Codes are year-scoped because the combined nomenclature changes annually.
type TariffCode struct {
	// Code is the 8-digit NC8 code
	Code string `db:"code" json:"code"`

	// Year the code is valid for
	Year int `db:"year" json:"year"`

	// Description is the official heading text
	Description string `db:"description" json:"description"`

	// SupplementaryUnit is the statistical unit, if any
	SupplementaryUnit *string `db:"supplementary_unit" json:"supplementaryUnit,omitempty"`
}

// Currency is one row of the ISO 4217 currency table.
type Currency struct {
	// Code is ISO 4217 alpha-3, the primary key
	Code string `db:"code" json:"code"`

	// Name is the English currency name
	Name string `db:"name" json:"name"`

	// MinorUnits is the number of decimal places
	MinorUnits int `db:"minor_units" json:"minorUnits"`
}
