package saft

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"fiskal/internal/core/apperror"
)

const dateLayout = "2006-01-02"

// Serializer renders a Document as the audit file XML. Output is
// deterministic: element order is fixed, decimals are quantized to two
// places, dates are ISO formatted. Serializing the same document twice
// yields byte-identical output.
type Serializer struct{}

// NewSerializer creates a new Serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Serialize renders the document into a byte buffer.
func (s *Serializer) Serialize(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	w := &docWriter{enc: xml.NewEncoder(&buf)}
	w.enc.Indent("", "  ")

	w.open("AuditFile",
		xml.Attr{Name: xml.Name{Local: "xmlns:doc"}, Value: DocNamespace},
		xml.Attr{Name: xml.Name{Local: "xmlns:nsSAFT"}, Value: Namespace},
		xml.Attr{Name: xml.Name{Local: "xmlns:xsi"}, Value: XSINamespace},
	)

	w.writeHeader(doc)
	w.writeMasterFiles(doc)
	if doc.GeneralLedger != nil {
		w.writeGeneralLedger(doc.GeneralLedger)
	}
	w.writeSourceDocuments(doc)

	w.close("AuditFile")

	if w.err != nil {
		return nil, w.err
	}
	if err := w.enc.Flush(); err != nil {
		return nil, apperror.NewInternal(err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// docWriter emits prefixed elements through an xml.Encoder and latches the
// first error. Every text value is checked against the XML 1.0 character
// range before encoding; a bad value surfaces as an encoding error naming
// the element.
type docWriter struct {
	enc *xml.Encoder
	err error
}

func (w *docWriter) open(name string, attrs ...xml.Attr) {
	if w.err != nil {
		return
	}
	start := xml.StartElement{Name: xml.Name{Local: "nsSAFT:" + name}, Attr: attrs}
	if err := w.enc.EncodeToken(start); err != nil {
		w.err = apperror.NewInternal(err)
	}
}

func (w *docWriter) close(name string) {
	if w.err != nil {
		return
	}
	end := xml.EndElement{Name: xml.Name{Local: "nsSAFT:" + name}}
	if err := w.enc.EncodeToken(end); err != nil {
		w.err = apperror.NewInternal(err)
	}
}

// el writes a leaf element with character content.
func (w *docWriter) el(name, value string) {
	if w.err != nil {
		return
	}
	if !validXMLText(value) {
		w.err = apperror.NewEncoding(name)
		return
	}
	w.open(name)
	if w.err == nil && value != "" {
		if err := w.enc.EncodeToken(xml.CharData(value)); err != nil {
			w.err = apperror.NewInternal(err)
		}
	}
	w.close(name)
}

func (w *docWriter) dec(name string, v decimal.Decimal) {
	w.el(name, v.StringFixed(2))
}

func (w *docWriter) date(name string, t time.Time) {
	w.el(name, t.Format(dateLayout))
}

func (w *docWriter) num(name string, n int) {
	w.el(name, strconv.Itoa(n))
}

func (w *docWriter) yesNo(name string, v bool) {
	if v {
		w.el(name, "Y")
	} else {
		w.el(name, "N")
	}
}

// validXMLText reports whether every rune is legal XML 1.0 character data.
func validXMLText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		switch {
		case r == 0x09 || r == 0x0A || r == 0x0D:
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= 0x10FFFF:
		default:
			return false
		}
	}
	return true
}

// --- Header ---

func (w *docWriter) writeHeader(doc *Document) {
	h := doc.Header

	w.open("Header")
	w.el("AuditFileVersion", SchemaVersion)
	w.el("AuditFileCountry", Country)
	w.el("AuditFileRegion", Country+"-"+h.RegionCode)
	w.date("AuditFileDateCreated", h.DateCreated)
	w.el("SoftwareCompanyName", SoftwareCompanyName)
	w.el("SoftwareID", SoftwareID)
	w.el("SoftwareVersion", SoftwareVersion)
	w.writeCompany(h)
	w.writeOwnership(h.Ownership)
	w.el("DefaultCurrencyCode", h.DefaultCurrencyCode)
	w.writeSelection(doc.Type, h.Selection)
	w.el("HeaderComment", h.HeaderComment)
	w.el("TaxAccountingBasis", h.TaxAccountingBasis)
	w.el("TaxEntity", h.TaxEntity)
	w.close("Header")
}

func (w *docWriter) writeCompany(h Header) {
	c := h.Company

	w.open("Company")
	w.el("RegistrationNumber", c.RegistrationNumber)
	w.el("Name", c.Name)

	w.open("Address")
	w.el("StreetName", c.Street)
	w.el("Number", "")
	w.el("AdditionalAddressDetail", "")
	w.el("Building", c.Building)
	w.el("City", c.City)
	w.el("PostalCode", c.PostalCode)
	w.el("Region", c.Region)
	w.el("Country", c.Country)
	w.el("AddressType", "StreetAddress")
	w.close("Address")

	first, last := splitName(c.ContactName)
	w.open("Contact")
	w.open("ContactPerson")
	w.el("Title", "")
	w.el("FirstName", first)
	w.el("Initials", "")
	w.el("LastNamePrefix", "")
	w.el("LastName", last)
	w.el("BirthName", "")
	w.el("Salutation", "")
	w.el("OtherTitles", c.ContactName)
	w.close("ContactPerson")
	w.el("Telephone", c.Phone)
	w.el("Fax", "")
	w.el("Email", c.Email)
	w.el("Website", c.Website)
	w.close("Contact")

	w.open("TaxRegistration")
	w.el("TaxRegistrationNumber", c.EIK)
	w.el("TaxType", taxRegistrationType(c.VATNumber))
	w.el("TaxNumber", c.VATNumber)
	w.el("TaxAuthority", Jurisdiction)
	w.date("TaxVerificationDate", c.VerificationDate)
	w.close("TaxRegistration")

	if c.IBAN != "" {
		w.open("BankAccount")
		w.el("IBANNumber", c.IBAN)
		w.close("BankAccount")
	}
	w.close("Company")
}

func (w *docWriter) writeOwnership(o Ownership) {
	w.open("Ownership")
	w.el("IsPartOfGroup", "1")
	w.el("BeneficialOwnerNameCyrillicBG", o.OwnerName)
	w.el("BeneficialOwnerEGN", o.OwnerEGN)
	w.el("UltimateOwnerNameCyrillicBG", "")
	w.el("UltimateOwnerUICBG", "")
	w.el("UltimateOwnerNameCyrillicForeign", "")
	w.el("UltimateOwnerNameLatinForeign", "")
	w.el("UltimateOwnerCountryForeign", Country)
	w.close("Ownership")
}

func (w *docWriter) writeSelection(t ReportType, sel SelectionCriteria) {
	w.open("SelectionCriteria")
	w.el("TaxReportingJurisdiction", Jurisdiction)
	w.el("CompanyEntity", "")
	switch t {
	case ReportMonthly:
		w.num("PeriodStart", sel.PeriodStart)
		w.num("PeriodStartYear", sel.PeriodStartYear)
		w.num("PeriodEnd", sel.PeriodEnd)
		w.num("PeriodEndYear", sel.PeriodEndYear)
	case ReportAnnual, ReportOnDemand:
		w.date("SelectionStartDate", sel.StartDate)
		w.date("SelectionEndDate", sel.EndDate)
	}
	w.el("DocumentType", "")
	w.el("OtherCriteria", "")
	w.close("SelectionCriteria")
}

func taxRegistrationType(vatNumber string) string {
	if vatNumber != "" {
		return TaxTypeVATRegistered
	}
	return TaxTypeEIKOnly
}

// splitName breaks a full name into first name and the rest.
func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// --- Master files ---

func (w *docWriter) writeMasterFiles(doc *Document) {
	w.open("MasterFiles")
	switch doc.Type {
	case ReportMonthly:
		m := doc.MasterMonthly
		w.writeAccounts(m.Accounts)
		w.writeCustomers(m.Customers)
		w.writeSuppliers(m.Suppliers)
		w.writeTaxTable()
		w.writeUOMTable()
		w.writeProducts(m.Products)
	case ReportAnnual:
		if len(doc.MasterAnnual.Assets) > 0 {
			w.writeAssets(doc.MasterAnnual.Assets)
		}
	case ReportOnDemand:
		m := doc.MasterOnDemand
		w.writeProducts(m.Products)
		if len(m.PhysicalStock) > 0 {
			w.writePhysicalStock(m.PhysicalStock)
		}
	}
	w.close("MasterFiles")
}

func (w *docWriter) writeAccounts(accounts []GLAccount) {
	w.open("GeneralLedgerAccounts")
	for _, a := range accounts {
		w.open("Account")
		w.el("AccountID", a.AccountID)
		w.el("AccountDescription", a.Description)
		w.el("TaxpayerAccountID", a.TaxpayerAccountID)
		w.el("AccountType", a.AccountType)
		w.date("AccountCreationDate", a.CreationDate)
		w.dec("OpeningDebitBalance", a.OpeningDebit)
		w.dec("OpeningCreditBalance", a.OpeningCredit)
		w.dec("ClosingDebitBalance", a.ClosingDebit)
		w.dec("ClosingCreditBalance", a.ClosingCredit)
		w.close("Account")
	}
	w.close("GeneralLedgerAccounts")
}

func (w *docWriter) writeCustomers(customers []Customer) {
	w.open("Customers")
	for _, c := range customers {
		w.open("Customer")
		w.writeParty(c.Info)
		w.el("CustomerID", c.CustomerID)
		w.yesNo("SelfBillingIndicator", c.SelfBillingIndicator)
		w.el("AccountID", c.AccountID)
		w.dec("OpeningDebitBalance", c.OpeningDebitBalance)
		w.dec("ClosingDebitBalance", c.ClosingDebitBalance)
		w.close("Customer")
	}
	w.close("Customers")
}

func (w *docWriter) writeSuppliers(suppliers []Supplier) {
	w.open("Suppliers")
	for _, s := range suppliers {
		w.open("Supplier")
		w.writeParty(s.Info)
		w.el("SupplierID", s.SupplierID)
		w.yesNo("SelfBillingIndicator", s.SelfBillingIndicator)
		w.el("AccountID", s.AccountID)
		w.dec("OpeningCreditBalance", s.OpeningCreditBalance)
		w.dec("ClosingCreditBalance", s.ClosingCreditBalance)
		w.close("Supplier")
	}
	w.close("Suppliers")
}

func (w *docWriter) writeParty(p PartyInfo) {
	w.open("CompanyStructure")
	w.el("RegistrationNumber", p.RegistrationNumber)
	w.el("Name", p.Name)

	w.open("Address")
	w.el("StreetName", p.Street)
	w.el("Number", "")
	w.el("City", p.City)
	w.el("PostalCode", p.PostalCode)
	w.el("Country", p.Country)
	w.el("AddressType", "StreetAddress")
	w.close("Address")

	if p.EIK != "" || p.VATNumber != "" {
		w.open("TaxRegistration")
		w.el("TaxRegistrationNumber", p.EIK)
		w.el("TaxType", taxRegistrationType(p.VATNumber))
		w.el("TaxNumber", p.VATNumber)
		w.el("TaxAuthority", Jurisdiction)
		w.close("TaxRegistration")
	}

	if p.IBAN != "" {
		w.open("BankAccount")
		w.el("IBANNumber", p.IBAN)
		w.close("BankAccount")
	}

	w.yesNo("RelatedParty", p.RelatedParty)
	w.close("CompanyStructure")
}

// vatCodes are the statutory VAT rates reported in the tax table.
var vatCodes = []struct {
	code        string
	description string
	detail      string
	percentage  string
}{
	{"20", "ДДС 20%", "Стандартна ставка", "20.00"},
	{"9", "ДДС 9%", "Намалена ставка", "9.00"},
	{"0", "ДДС 0%", "Нулева ставка", "0.00"},
}

func (w *docWriter) writeTaxTable() {
	w.open("TaxTable")
	for _, c := range vatCodes {
		w.open("TaxTableEntry")
		w.el("TaxType", "VAT")
		w.el("Description", c.description)
		w.open("TaxCodeDetails")
		w.el("TaxCode", c.code)
		w.el("Description", c.detail)
		w.el("TaxPercentage", c.percentage)
		w.el("Country", Country)
		w.close("TaxCodeDetails")
		w.close("TaxTableEntry")
	}
	w.close("TaxTable")
}

// uomCodes are the units of measure used across the catalogs.
var uomCodes = []struct {
	code        string
	description string
}{
	{"PCE", "Брой"},
	{"KGM", "Килограм"},
	{"MTR", "Метър"},
	{"LTR", "Литър"},
}

func (w *docWriter) writeUOMTable() {
	w.open("UOMTable")
	for _, u := range uomCodes {
		w.open("UOMTableEntry")
		w.el("UnitOfMeasure", u.code)
		w.el("Description", u.description)
		w.close("UOMTableEntry")
	}
	w.close("UOMTable")
}

func (w *docWriter) writeProducts(products []Product) {
	w.open("Products")
	for _, p := range products {
		w.open("Product")
		w.el("ProductCode", p.ProductCode)
		w.el("GoodsServicesID", p.GoodsServicesID)
		w.el("ProductGroup", p.ProductGroup)
		w.el("Description", p.Description)
		w.el("ProductCommodityCode", p.CommodityCode)
		w.el("UOMBase", p.UOMBase)
		w.el("UOMStandard", p.UOMStandard)
		w.dec("UOMToUOMBaseConversionFactor", p.ConversionFactor)
		w.close("Product")
	}
	w.close("Products")
}

func (w *docWriter) writePhysicalStock(stock []PhysicalStockEntry) {
	w.open("PhysicalStock")
	for _, e := range stock {
		w.open("PhysicalStockEntry")
		w.el("WarehouseID", e.WarehouseID)
		w.el("ProductCode", e.ProductCode)
		w.el("StockAccountID", e.StockAccountID)
		w.dec("Quantity", e.Quantity)
		w.el("UOMPhysicalStock", e.UOM)
		w.dec("UnitPrice", e.UnitPrice)
		w.dec("StockValue", e.StockValue)
		w.close("PhysicalStockEntry")
	}
	w.close("PhysicalStock")
}

func (w *docWriter) writeAssets(entries []AssetEntry) {
	w.open("Assets")
	for _, a := range entries {
		w.open("Asset")
		w.el("AssetID", a.AssetID)
		w.el("AccountID", a.AccountID)
		w.el("Description", a.Description)
		if a.Supplier != nil {
			w.writeAssetSupplier("AssetSupplier", a.Supplier)
		}
		w.date("PurchaseOrderDate", a.PurchaseDate)
		w.date("DateOfAcquisition", a.AcquisitionDate)
		w.date("StartUpDate", a.StartUpDate)

		w.open("Valuations")
		w.open("ValuationSAP")
		w.el("ValuationClass", a.AccountID)
		w.dec("AcquisitionAndProductionCostsBegin", a.AcquisitionCostBegin)
		w.dec("AcquisitionAndProductionCostsEnd", a.AcquisitionCostEnd)
		w.el("InvestmentSupport", "0.00")
		w.dec("AssetLifeYear", a.LifeYears)
		w.el("AssetAddition", "0.00")
		w.el("Transfers", "0.00")
		w.el("AssetDisposal", "0.00")
		w.dec("BookValueBegin", a.BookValueBegin)
		w.el("DepreciationMethod", a.DepreciationMethod)
		w.dec("DepreciationPercentage", a.DepreciationPercent)
		w.dec("DepreciationForPeriod", a.DepreciationPeriod)
		w.el("AppreciationForPeriod", "0.00")
		w.dec("AccumulatedDepreciation", a.AccumulatedDepr)
		w.dec("BookValueEnd", a.BookValueEnd)
		w.close("ValuationSAP")

		w.open("ValuationDAP")
		w.el("ValuationClass", a.TaxCategory)
		w.el("CategoryTaxDepreciable", "ДМА")
		w.dec("TaxDepreciableValue", a.AcquisitionCostEnd)
		w.dec("AccruedTaxDepreciation", a.AccumulatedDepr)
		w.dec("TaxValueAsset", a.BookValueEnd)
		w.dec("AnnualTaxDepreciationRate", a.TaxDeprRate)
		w.el("MonthChangeAssetValue", "0")
		w.el("MonthSuspensionResumptionAccrual", "0")
		w.el("MonthWriteOffAccounting", "0")
		w.el("MonthWriteOffTax", "0")
		w.num("NumberMonthsDepreciationDuring", a.DeprMonthsInYear)
		w.dec("DepreciationForPeriod", a.DepreciationPeriod)
		w.dec("AccumulatedDepreciation", a.AccumulatedDepr)
		w.dec("TaxValueEndPeriod", a.BookValueEnd)
		w.close("ValuationDAP")
		w.close("Valuations")

		w.close("Asset")
	}
	w.close("Assets")
}

func (w *docWriter) writeAssetSupplier(name string, s *AssetSupplier) {
	w.open(name)
	w.el("SupplierName", s.Name)
	w.el("SupplierID", s.ID)
	w.open("PostalAddress")
	w.el("City", s.City)
	w.el("Country", s.Country)
	w.close("PostalAddress")
	w.close(name)
}

// --- General ledger ---

func (w *docWriter) writeGeneralLedger(gl *GeneralLedger) {
	w.open("GeneralLedgerEntries")
	w.num("NumberOfEntries", gl.NumberOfEntries)
	w.dec("TotalDebit", gl.TotalDebit)
	w.dec("TotalCredit", gl.TotalCredit)

	w.open("Journal")
	w.el("JournalID", "GJ")
	w.el("Description", "Главен журнал")
	w.el("Type", "GJ")
	if len(gl.Transactions) == 0 {
		w.writeEmptyTransaction(gl)
	}
	for _, tx := range gl.Transactions {
		w.writeTransaction(tx)
	}
	w.close("Journal")

	w.close("GeneralLedgerEntries")
}

// writeEmptyTransaction keeps the journal schema-valid for periods with no
// posted entries.
func (w *docWriter) writeEmptyTransaction(gl *GeneralLedger) {
	w.open("Transaction")
	w.el("TransactionID", "0")
	w.num("Period", gl.Period)
	w.num("PeriodYear", gl.PeriodYear)
	w.date("TransactionDate", time.Date(gl.PeriodYear, time.Month(gl.Period), 1, 0, 0, 0, 0, time.UTC))
	w.el("SourceID", "system")
	w.el("TransactionType", "N")
	w.el("Description", "Няма записи за периода")
	w.date("SystemEntryDate", time.Date(gl.PeriodYear, time.Month(gl.Period), 1, 0, 0, 0, 0, time.UTC))
	w.date("GLPostingDate", time.Date(gl.PeriodYear, time.Month(gl.Period), 1, 0, 0, 0, 0, time.UTC))

	w.open("Line")
	w.el("RecordID", "0")
	w.el("AccountID", "100")
	w.el("Description", "Няма записи")
	w.open("DebitAmount")
	w.el("Amount", "0.00")
	w.el("CurrencyCode", "BGN")
	w.el("CurrencyAmount", "0.00")
	w.el("ExchangeRate", "1.00")
	w.close("DebitAmount")
	w.close("Line")

	w.close("Transaction")
}

func (w *docWriter) writeTransaction(tx Transaction) {
	w.open("Transaction")
	w.el("TransactionID", tx.TransactionID)
	w.num("Period", tx.Period)
	w.num("PeriodYear", tx.PeriodYear)
	w.date("TransactionDate", tx.TransactionDate)
	w.el("SourceID", tx.SourceID)
	w.el("TransactionType", tx.TransactionType)
	w.el("Description", tx.Description)
	w.date("SystemEntryDate", tx.SystemEntryDate)
	w.date("GLPostingDate", tx.GLPostingDate)
	for _, l := range tx.Lines {
		w.writeLine(l)
	}
	w.close("Transaction")
}

func (w *docWriter) writeLine(l TransactionLine) {
	w.open("Line")
	w.el("RecordID", l.RecordID)
	w.el("AccountID", l.AccountID)
	if l.SourceDocumentID != "" {
		w.el("SourceDocumentID", l.SourceDocumentID)
	}
	if l.CustomerID != "" {
		w.el("CustomerID", l.CustomerID)
	}
	if l.SupplierID != "" {
		w.el("SupplierID", l.SupplierID)
	}
	w.el("Description", l.Description)

	side := "CreditAmount"
	if l.IsDebit {
		side = "DebitAmount"
	}
	w.writeAmount(side, l.Amount)

	if l.Tax != nil {
		w.open("TaxInformation")
		w.el("TaxType", "VAT")
		w.el("TaxCode", l.Tax.TaxCode)
		w.dec("TaxPercentage", l.Tax.Percentage)
		w.dec("TaxBase", l.Tax.TaxBase)
		w.writeAmount("TaxAmount", l.Tax.TaxAmount)
		w.close("TaxInformation")
	}
	w.close("Line")
}

func (w *docWriter) writeAmount(name string, a Amount) {
	w.open(name)
	w.dec("Amount", a.Amount)
	w.el("CurrencyCode", a.CurrencyCode)
	w.dec("CurrencyAmount", a.CurrencyAmount)
	w.dec("ExchangeRate", a.ExchangeRate)
	w.close(name)
}

// --- Source documents ---

func (w *docWriter) writeSourceDocuments(doc *Document) {
	switch doc.Type {
	case ReportMonthly:
		if doc.SourceMonthly != nil {
			w.open("SourceDocuments")
			w.writeSalesInvoices(doc.SourceMonthly)
			w.close("SourceDocuments")
		}
	case ReportAnnual:
		if doc.SourceAnnual != nil && len(doc.SourceAnnual.AssetTransactions) > 0 {
			w.open("SourceDocuments")
			w.writeAssetTransactions(doc.SourceAnnual.AssetTransactions)
			w.close("SourceDocuments")
		}
	case ReportOnDemand:
		if doc.SourceOnDemand != nil {
			w.open("SourceDocuments")
			w.writeMovementOfGoods(doc.SourceOnDemand)
			w.close("SourceDocuments")
		}
	}
}

func (w *docWriter) writeSalesInvoices(src *SourceDocumentsMonthly) {
	w.open("SalesInvoices")
	w.num("NumberOfEntries", src.NumberOfEntries)
	w.dec("TotalDebit", src.TotalDebit)
	w.dec("TotalCredit", src.TotalCredit)
	for _, inv := range src.Invoices {
		w.writeSalesInvoice(inv)
	}
	w.close("SalesInvoices")
}

func (w *docWriter) writeSalesInvoice(inv SalesInvoice) {
	w.open("Invoice")
	w.el("InvoiceNo", inv.InvoiceNo)
	w.open("CustomerInfo")
	w.el("CustomerID", inv.Customer.CustomerID)
	w.el("Name", inv.Customer.Name)
	w.open("BillingAddress")
	if inv.Customer.Street != "" {
		w.el("StreetName", inv.Customer.Street)
	}
	w.el("City", inv.Customer.City)
	if inv.Customer.PostalCode != "" {
		w.el("PostalCode", inv.Customer.PostalCode)
	}
	w.el("Country", inv.Customer.Country)
	w.close("BillingAddress")
	w.close("CustomerInfo")
	w.el("AccountID", inv.AccountID)
	w.num("Period", inv.Period)
	w.num("PeriodYear", inv.PeriodYear)
	w.date("InvoiceDate", inv.InvoiceDate)
	w.el("InvoiceType", "01")
	w.yesNo("SelfBillingIndicator", inv.SelfBilling)
	w.el("SourceID", inv.SourceID)
	w.date("GLPostingDate", inv.GLPostingDate)
	w.el("TransactionID", inv.TransactionID)
	for _, l := range inv.Lines {
		w.writeInvoiceLine(l)
	}
	w.open("InvoiceDocumentTotals")
	w.open("TaxInformationTotals")
	w.el("TaxType", "VAT")
	w.el("TaxCode", inv.TaxTotals.TaxCode)
	w.dec("TaxPercentage", inv.TaxTotals.Percentage)
	w.dec("TaxBase", inv.TaxTotals.TaxBase)
	w.writeAmount("TaxAmount", inv.TaxTotals.TaxAmount)
	w.close("TaxInformationTotals")
	w.dec("NetTotal", inv.NetTotal)
	w.dec("GrossTotal", inv.GrossTotal)
	w.close("InvoiceDocumentTotals")
	w.close("Invoice")
}

func (w *docWriter) writeInvoiceLine(l InvoiceLine) {
	w.open("InvoiceLine")
	w.num("LineNumber", l.LineNumber)
	w.el("AccountID", l.AccountID)
	w.el("Description", l.Description)
	w.dec("InvoiceLineAmount", l.Amount)
	w.el("DebitCreditIndicator", "C")
	w.open("TaxInformation")
	w.el("TaxType", "VAT")
	w.el("TaxCode", l.Tax.TaxCode)
	w.dec("TaxPercentage", l.Tax.Percentage)
	w.dec("TaxBase", l.Tax.TaxBase)
	w.writeAmount("TaxAmount", l.Tax.TaxAmount)
	w.close("TaxInformation")
	w.close("InvoiceLine")
}

func (w *docWriter) writeAssetTransactions(entries []AssetTransactionEntry) {
	w.open("AssetTransactions")
	w.num("NumberOfAssetTransactions", len(entries))
	for _, tr := range entries {
		w.open("AssetTransaction")
		w.el("AssetTransactionID", tr.TransactionID)
		w.el("AssetID", tr.AssetID)
		w.el("AssetTransactionType", tr.TransactionType)
		w.el("Description", tr.Description)
		w.date("AssetTransactionDate", tr.TransactionDate)
		if tr.Supplier != nil {
			w.open("AssetSupplierCustomer")
			w.el("SupplierCustomerName", tr.Supplier.Name)
			w.el("SupplierCustomerID", tr.Supplier.ID)
			w.open("PostalAddress")
			w.el("City", tr.Supplier.City)
			w.el("Country", tr.Supplier.Country)
			w.close("PostalAddress")
			w.close("AssetSupplierCustomer")
		}
		w.el("TransactionID", tr.TransactionID)
		w.open("AssetTransactionValuations")
		w.open("AssetTransactionValuation")
		w.dec("AcquisitionAndProductionCostsOnTransaction", tr.AcquisitionCost)
		w.dec("BookValueOnTransaction", tr.BookValue)
		w.dec("AssetTransactionAmount", tr.Amount)
		w.close("AssetTransactionValuation")
		w.close("AssetTransactionValuations")
		w.close("AssetTransaction")
	}
	w.close("AssetTransactions")
}

func (w *docWriter) writeMovementOfGoods(src *SourceDocumentsOnDemand) {
	w.open("MovementOfGoods")
	w.num("NumberOfMovementLines", len(src.Movements))
	w.dec("TotalQuantityIssued", src.TotalQuantityIssued)
	w.dec("TotalQuantityReceived", src.TotalQuantityReceived)
	for _, m := range src.Movements {
		w.open("StockMovement")
		w.el("MovementReference", m.MovementID)
		w.date("MovementDate", m.MovementDate)
		w.el("MovementType", m.MovementType)
		if m.DocumentRef != "" {
			w.el("SourceDocumentID", m.DocumentRef)
		}
		w.open("Line")
		w.el("WarehouseID", m.WarehouseID)
		w.el("ProductCode", m.ProductCode)
		w.dec("Quantity", m.Quantity)
		w.el("UnitOfMeasure", m.UOM)
		w.dec("UnitPrice", m.UnitPrice)
		w.dec("MovementValue", m.Value)
		w.close("Line")
		w.close("StockMovement")
	}
	w.close("MovementOfGoods")
}
