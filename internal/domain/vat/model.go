// Package vat builds the monthly VAT register exports. The registers are
// fixed-width text files in the Windows-1251 encoding: a sales register, a
// purchases register and a summary declaration.
package vat

import (
	"time"

	"github.com/shopspring/decimal"
)

// Register file names mandated by the exchange format.
const (
	SalesFileName       = "PRODAGBI.TXT"
	PurchasesFileName   = "POKUPKI.TXT"
	DeclarationFileName = "DEKLAR.TXT"
)

// Row is one register line, built from a posted journal entry with VAT
// details.
type Row struct {
	// Seq is the 1-based position within the register
	Seq int

	// DocType is the two-digit document type ("01" invoice, "03" credit note)
	DocType string

	// DocNumber is the source document number
	DocNumber string

	// DocDate is the accounting date of the entry
	DocDate time.Time

	// PartnerVAT is the counterparty's VAT or registration number
	PartnerVAT string

	// PartnerName is the counterparty's name
	PartnerName string

	TaxBase   decimal.Decimal
	VATAmount decimal.Decimal
}

// Declaration is the period summary derived from both registers.
type Declaration struct {
	VATNumber string
	Year      int
	Month     int

	SalesBase    decimal.Decimal
	SalesVAT     decimal.Decimal
	PurchaseBase decimal.Decimal
	PurchaseVAT  decimal.Decimal
}

// NetVAT is the amount due (positive) or refundable (negative).
func (d Declaration) NetVAT() decimal.Decimal {
	return d.SalesVAT.Sub(d.PurchaseVAT)
}

// Registers is the complete monthly filing.
type Registers struct {
	Sales       []Row
	Purchases   []Row
	Declaration Declaration
}

// File is one encoded register file.
type File struct {
	Name string
	Data []byte
}
