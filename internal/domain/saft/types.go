// Package saft compiles accounting records into the regulator's standard
// audit file. Generation is split into three stages: the Service validates
// and orchestrates, the Assembler reads a consistent snapshot and builds the
// intermediate document, the Serializer renders deterministic XML.
package saft

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fiskal/internal/core/id"
)

// ReportType selects the report variant. The set is closed: every switch
// over ReportType must handle all three values.
type ReportType uint8

const (
	ReportMonthly ReportType = iota + 1
	ReportAnnual
	ReportOnDemand
)

// String returns the stable wire name of the report type.
func (t ReportType) String() string {
	switch t {
	case ReportMonthly:
		return "monthly"
	case ReportAnnual:
		return "annual"
	case ReportOnDemand:
		return "on_demand"
	}
	return fmt.Sprintf("ReportType(%d)", uint8(t))
}

// ParseReportType converts a wire name into a ReportType.
func ParseReportType(s string) (ReportType, error) {
	switch s {
	case "monthly":
		return ReportMonthly, nil
	case "annual":
		return ReportAnnual, nil
	case "on_demand":
		return ReportOnDemand, nil
	}
	return 0, fmt.Errorf("unknown report type %q", s)
}

func (t ReportType) valid() bool {
	switch t {
	case ReportMonthly, ReportAnnual, ReportOnDemand:
		return true
	}
	return false
}

func (t ReportType) headerComment() string {
	switch t {
	case ReportMonthly:
		return headerCommentMonthly
	case ReportAnnual:
		return headerCommentAnnual
	case ReportOnDemand:
		return headerCommentOnDemand
	}
	return ""
}

// Request identifies one report to generate. Month is meaningful only for
// monthly reports.
type Request struct {
	OrganizationID id.ID
	Type           ReportType
	Year           int
	Month          int
}

// Period is the inclusive date range a report covers.
type Period struct {
	Start time.Time
	End   time.Time
}

// periodFor computes the report period. Monthly covers the calendar month,
// annual the calendar year. On-demand runs from the fiscal-year start of the
// requested year through today.
func periodFor(req Request, fiscalYearStartMonth int, today time.Time) Period {
	switch req.Type {
	case ReportMonthly:
		start := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
		return Period{Start: start, End: start.AddDate(0, 1, -1)}
	case ReportAnnual:
		return Period{
			Start: time.Date(req.Year, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(req.Year, time.December, 31, 0, 0, 0, 0, time.UTC),
		}
	case ReportOnDemand:
		if fiscalYearStartMonth < 1 || fiscalYearStartMonth > 12 {
			fiscalYearStartMonth = 1
		}
		start := time.Date(req.Year, time.Month(fiscalYearStartMonth), 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		return Period{Start: start, End: end}
	}
	return Period{}
}

// File is the fully buffered generation result.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// --- Intermediate document tree ---
//
// The assembler produces a Document; the serializer renders it. Field order
// in these structs is not significant, the serializer fixes element order.

// Document is the root of the audit file.
type Document struct {
	Type   ReportType
	Header Header

	// Exactly one master-files variant is set, matching Type
	MasterMonthly  *MasterFilesMonthly
	MasterAnnual   *MasterFilesAnnual
	MasterOnDemand *MasterFilesOnDemand

	// GeneralLedger is set for monthly reports only
	GeneralLedger *GeneralLedger

	SourceMonthly  *SourceDocumentsMonthly
	SourceAnnual   *SourceDocumentsAnnual
	SourceOnDemand *SourceDocumentsOnDemand
}

// Header mirrors the audit file header.
type Header struct {
	RegionCode  string
	DateCreated time.Time

	Company   Company
	Ownership Ownership

	DefaultCurrencyCode string
	Selection           SelectionCriteria
	HeaderComment       string
	TaxAccountingBasis  string
	TaxEntity           string
}

// Company is the reporting entity block.
type Company struct {
	RegistrationNumber string // EIK padded to 12 positions
	Name               string

	Street     string
	Number     string
	Building   string
	City       string
	PostalCode string
	Region     string
	Country    string

	ContactName string
	Phone       string
	Email       string
	Website     string

	EIK              string
	VATNumber        string
	VerificationDate time.Time

	IBAN string
}

// Ownership is the beneficial owner block.
type Ownership struct {
	OwnerName string
	OwnerEGN  string
}

// SelectionCriteria carries either month/year bounds (monthly) or explicit
// dates (annual and on-demand).
type SelectionCriteria struct {
	PeriodStart     int
	PeriodStartYear int
	PeriodEnd       int
	PeriodEndYear   int

	StartDate time.Time
	EndDate   time.Time
}

// --- Master files ---

type MasterFilesMonthly struct {
	Accounts  []GLAccount
	Customers []Customer
	Suppliers []Supplier
	Products  []Product
}

type MasterFilesAnnual struct {
	Assets []AssetEntry
}

type MasterFilesOnDemand struct {
	Products      []Product
	PhysicalStock []PhysicalStockEntry
}

// GLAccount is one chart-of-accounts row with period balances split into
// debit/credit columns by account nature.
type GLAccount struct {
	AccountID         string
	Description       string
	TaxpayerAccountID string
	AccountType       string
	CreationDate      time.Time
	OpeningDebit      decimal.Decimal
	OpeningCredit     decimal.Decimal
	ClosingDebit      decimal.Decimal
	ClosingCredit     decimal.Decimal
}

// PartyInfo is the shared company structure of customers and suppliers.
type PartyInfo struct {
	RegistrationNumber string // padded EIK, may be empty for foreign parties
	Name               string

	Street     string
	Number     string
	City       string
	PostalCode string
	Country    string

	// Tax registration is emitted when EIK or VAT number present
	EIK       string
	VATNumber string

	IBAN         string
	RelatedParty bool
}

type Customer struct {
	Info                 PartyInfo
	CustomerID           string
	SelfBillingIndicator bool
	AccountID            string
	OpeningDebitBalance  decimal.Decimal
	ClosingDebitBalance  decimal.Decimal
}

type Supplier struct {
	Info                 PartyInfo
	SupplierID           string
	SelfBillingIndicator bool
	AccountID            string
	OpeningCreditBalance decimal.Decimal
	ClosingCreditBalance decimal.Decimal
}

type Product struct {
	ProductCode      string
	GoodsServicesID  string // "G" or "S"
	ProductGroup     string
	Description      string
	CommodityCode    string
	UOMBase          string
	UOMStandard      string
	ConversionFactor decimal.Decimal
}

type PhysicalStockEntry struct {
	WarehouseID    string
	ProductCode    string
	StockAccountID string
	Quantity       decimal.Decimal
	UOM            string
	UnitPrice      decimal.Decimal
	StockValue     decimal.Decimal
}

type AssetEntry struct {
	AssetID         string
	AccountID       string
	Description     string
	Supplier        *AssetSupplier
	PurchaseDate    time.Time
	AcquisitionDate time.Time
	StartUpDate     time.Time

	// ValuationSAP (accounting) figures
	AcquisitionCostBegin decimal.Decimal
	AcquisitionCostEnd   decimal.Decimal
	LifeYears            decimal.Decimal
	BookValueBegin       decimal.Decimal
	DepreciationMethod   string
	DepreciationPercent  decimal.Decimal
	DepreciationPeriod   decimal.Decimal
	AccumulatedDepr      decimal.Decimal
	BookValueEnd         decimal.Decimal

	// ValuationDAP (tax) figures
	TaxCategory      string
	TaxDeprRate      decimal.Decimal
	DeprMonthsInYear int
}

type AssetSupplier struct {
	Name    string
	ID      string
	City    string
	Country string
}

// --- General ledger ---

type GeneralLedger struct {
	NumberOfEntries int
	TotalDebit      decimal.Decimal
	TotalCredit     decimal.Decimal
	Period          int
	PeriodYear      int
	Transactions    []Transaction
}

type Transaction struct {
	TransactionID   string
	Period          int
	PeriodYear      int
	TransactionDate time.Time
	SourceID        string
	TransactionType string
	Description     string
	SystemEntryDate time.Time
	GLPostingDate   time.Time
	Lines           []TransactionLine
}

// TransactionLine carries exactly one of debit or credit.
type TransactionLine struct {
	RecordID          string
	AccountID         string
	SourceDocumentID  string
	CustomerID        string
	SupplierID        string
	Description       string
	IsDebit           bool
	Amount            Amount
	Tax               *TaxInformation
}

// Amount is a monetary figure with its currency leg.
type Amount struct {
	Amount         decimal.Decimal
	CurrencyCode   string
	CurrencyAmount decimal.Decimal
	ExchangeRate   decimal.Decimal
}

type TaxInformation struct {
	TaxCode    string
	Percentage decimal.Decimal
	TaxBase    decimal.Decimal
	TaxAmount  Amount
}

// --- Source documents ---

// SourceDocumentsMonthly carries sales invoices derived from posted journal
// entries that bill a customer with VAT. Totals follow the ledger convention:
// debit and credit both equal the sum of invoice gross totals.
type SourceDocumentsMonthly struct {
	NumberOfEntries int
	TotalDebit      decimal.Decimal
	TotalCredit     decimal.Decimal
	Invoices        []SalesInvoice
}

type SalesInvoice struct {
	InvoiceNo     string
	Customer      InvoiceCustomer
	AccountID     string
	Period        int
	PeriodYear    int
	InvoiceDate   time.Time
	SelfBilling   bool
	SourceID      string
	GLPostingDate time.Time
	TransactionID string
	Lines         []InvoiceLine

	TaxTotals  TaxInformation
	NetTotal   decimal.Decimal
	GrossTotal decimal.Decimal
}

type InvoiceCustomer struct {
	CustomerID string
	Name       string
	Street     string
	City       string
	PostalCode string
	Country    string
}

// InvoiceLine is one taxed revenue line of a sales invoice.
type InvoiceLine struct {
	LineNumber  int
	AccountID   string
	Description string
	Amount      decimal.Decimal
	Tax         TaxInformation
}

type SourceDocumentsAnnual struct {
	AssetTransactions []AssetTransactionEntry
}

type AssetTransactionEntry struct {
	TransactionID   string
	AssetID         string
	TransactionType string
	Description     string
	TransactionDate time.Time
	Supplier        *AssetSupplier
	AcquisitionCost decimal.Decimal
	BookValue       decimal.Decimal
	Amount          decimal.Decimal
}

type SourceDocumentsOnDemand struct {
	Movements             []GoodsMovement
	TotalQuantityIssued   decimal.Decimal
	TotalQuantityReceived decimal.Decimal
}

type GoodsMovement struct {
	MovementID   string
	MovementType string
	MovementDate time.Time
	WarehouseID  string
	ProductCode  string
	Quantity     decimal.Decimal
	UOM          string
	UnitPrice    decimal.Decimal
	Value        decimal.Decimal
	DocumentRef  string
}
