package saft

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fiskal/internal/core/apperror"
	"fiskal/internal/domain/assets"
	"fiskal/internal/domain/catalogs/asset"
	"fiskal/internal/domain/catalogs/contraagent"
	"fiskal/internal/domain/catalogs/organization"
	"fiskal/internal/domain/journal"
)

var (
	hundred         = decimal.NewFromInt(100)
	one             = decimal.NewFromInt(1)
	defaultLifeYear = decimal.NewFromInt(5)
)

// Assembler builds the intermediate document from a consistent snapshot of
// the books. All reads happen inside one Store.Snapshot call, so the
// resulting document describes a single point in time.
type Assembler struct {
	store Store
}

// NewAssembler creates a new Assembler.
func NewAssembler(store Store) *Assembler {
	return &Assembler{store: store}
}

// Assemble reads the books and builds the document for the request.
// The request must already be validated; today anchors the on-demand period
// end and the creation date in the header.
func (a *Assembler) Assemble(ctx context.Context, req Request, today time.Time) (*Document, error) {
	var doc *Document

	err := a.store.Snapshot(ctx, func(ctx context.Context) error {
		org, err := a.store.Organization(ctx, req.OrganizationID)
		if err != nil {
			return err
		}

		period := periodFor(req, org.FiscalYearStartMonth, today)

		countries, err := a.store.CountryCodes(ctx)
		if err != nil {
			return err
		}
		currencies, err := a.store.CurrencyCodes(ctx)
		if err != nil {
			return err
		}
		tariffs, err := a.store.TariffCodes(ctx, req.Year)
		if err != nil {
			return err
		}

		if _, ok := countries[org.CountryCode]; !ok {
			return apperror.NewUnknownReferenceCode(org.CountryCode, "country")
		}

		b := &builder{
			assembler:  a,
			req:        req,
			org:        org,
			period:     period,
			today:      today,
			countries:  countries,
			currencies: currencies,
			tariffs:    tariffs,
		}

		doc, err = b.build(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// builder carries the per-assembly state so the section builders stay small.
type builder struct {
	assembler *Assembler
	req       Request
	org       *organization.Organization
	period    Period
	today     time.Time

	countries  map[string]struct{}
	currencies map[string]struct{}
	tariffs    map[string]struct{}
}

func (b *builder) store() Store { return b.assembler.store }

func (b *builder) build(ctx context.Context) (*Document, error) {
	doc := &Document{
		Type:   b.req.Type,
		Header: b.buildHeader(),
	}

	switch b.req.Type {
	case ReportMonthly:
		master, err := b.buildMasterMonthly(ctx)
		if err != nil {
			return nil, err
		}
		entries, err := b.store().PostedEntries(ctx, b.org.ID, b.period.Start, b.period.End)
		if err != nil {
			return nil, err
		}
		parties, err := b.partyIndex(ctx)
		if err != nil {
			return nil, err
		}
		ledger, err := b.buildLedger(entries, parties, master)
		if err != nil {
			return nil, err
		}
		doc.MasterMonthly = master
		doc.GeneralLedger = ledger
		doc.SourceMonthly = b.buildSourceMonthly(entries, parties)

	case ReportAnnual:
		master, source, err := b.buildAnnual(ctx)
		if err != nil {
			return nil, err
		}
		doc.MasterAnnual = master
		doc.SourceAnnual = source

	case ReportOnDemand:
		master, source, err := b.buildOnDemand(ctx)
		if err != nil {
			return nil, err
		}
		doc.MasterOnDemand = master
		doc.SourceOnDemand = source
	}

	return doc, nil
}

func (b *builder) buildHeader() Header {
	org := b.org

	region := deref(org.Region)
	if region == "" {
		region = DefaultRegionCode
	}

	h := Header{
		RegionCode:  region,
		DateCreated: b.today,
		Company: Company{
			RegistrationNumber: org.RegistrationNumber(),
			Name:               org.Name,
			Street:             deref(org.Street),
			Building:           deref(org.Building),
			City:               org.City,
			PostalCode:         deref(org.PostalCode),
			Region:             region,
			Country:            org.CountryCode,
			ContactName:        deref(org.RepresentativeName),
			Phone:              deref(org.Phone),
			Email:              deref(org.Email),
			Website:            deref(org.Website),
			EIK:                org.EIK,
			VATNumber:          deref(org.VATNumber),
			VerificationDate:   b.today,
			IBAN:               deref(org.IBAN),
		},
		Ownership: Ownership{
			OwnerName: deref(org.RepresentativeName),
			OwnerEGN:  deref(org.RepresentativePersonalID),
		},
		DefaultCurrencyCode: org.BaseCurrencyCode,
		HeaderComment:       b.req.Type.headerComment(),
		TaxAccountingBasis:  org.TaxAccountingBasis,
		TaxEntity:           org.Name,
	}

	switch b.req.Type {
	case ReportMonthly:
		h.Selection = SelectionCriteria{
			PeriodStart:     b.req.Month,
			PeriodStartYear: b.req.Year,
			PeriodEnd:       b.req.Month,
			PeriodEndYear:   b.req.Year,
		}
	case ReportAnnual, ReportOnDemand:
		h.Selection = SelectionCriteria{
			StartDate: b.period.Start,
			EndDate:   b.period.End,
		}
	}

	return h
}

// --- Monthly ---

func (b *builder) buildMasterMonthly(ctx context.Context) (*MasterFilesMonthly, error) {
	accounts, err := b.buildAccounts(ctx)
	if err != nil {
		return nil, err
	}

	customers, err := b.buildCustomers(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := b.buildSuppliers(ctx)
	if err != nil {
		return nil, err
	}

	products, err := b.buildProducts(ctx)
	if err != nil {
		return nil, err
	}

	return &MasterFilesMonthly{
		Accounts:  accounts,
		Customers: customers,
		Suppliers: suppliers,
		Products:  products,
	}, nil
}

// buildAccounts computes per-account opening and closing balances. The
// opening balance is the stored fiscal-year-start balance plus posted
// turnover from the fiscal year start up to the day before the period; the
// closing balance adds the period turnover on top.
func (b *builder) buildAccounts(ctx context.Context) ([]GLAccount, error) {
	accounts, err := b.store().Accounts(ctx)
	if err != nil {
		return nil, err
	}

	fyStart := b.fiscalYearStart()

	opening := map[string]journal.AccountTurnover{}
	if b.period.Start.After(fyStart) {
		turns, err := b.store().TurnoversBetween(ctx, b.org.ID, fyStart, b.period.Start.AddDate(0, 0, -1))
		if err != nil {
			return nil, err
		}
		for _, t := range turns {
			opening[t.AccountCode] = t
		}
	}

	periodTurns, err := b.store().TurnoversBetween(ctx, b.org.ID, b.period.Start, b.period.End)
	if err != nil {
		return nil, err
	}
	period := map[string]journal.AccountTurnover{}
	for _, t := range periodTurns {
		period[t.AccountCode] = t
	}

	out := make([]GLAccount, 0, len(accounts))
	for _, acc := range accounts {
		open := acc.OpeningBalance.Add(naturalMovement(opening[acc.Code], acc.IsDebitAccount))
		closing := open.Add(naturalMovement(period[acc.Code], acc.IsDebitAccount))

		row := GLAccount{
			AccountID:         acc.Code,
			Description:       acc.Name,
			TaxpayerAccountID: deref(acc.TaxpayerAccountCode),
			AccountType:       "Bifunctional",
			CreationDate:      b.period.Start,
		}
		row.OpeningDebit, row.OpeningCredit = splitBalance(open, acc.IsDebitAccount)
		row.ClosingDebit, row.ClosingCredit = splitBalance(closing, acc.IsDebitAccount)
		out = append(out, row)
	}
	return out, nil
}

// naturalMovement orients a debit/credit turnover pair into the account's
// natural direction (debit minus credit for debit-nature accounts).
func naturalMovement(t journal.AccountTurnover, debitNature bool) decimal.Decimal {
	if debitNature {
		return t.Debit.Sub(t.Credit)
	}
	return t.Credit.Sub(t.Debit)
}

// splitBalance spreads a naturally-signed balance over the debit and credit
// columns. A negative balance flips to the opposite column.
func splitBalance(balance decimal.Decimal, debitNature bool) (debit, credit decimal.Decimal) {
	switch {
	case debitNature && !balance.IsNegative():
		return balance, decimal.Zero
	case debitNature:
		return decimal.Zero, balance.Neg()
	case !balance.IsNegative():
		return decimal.Zero, balance
	default:
		return balance.Neg(), decimal.Zero
	}
}

func (b *builder) buildCustomers(ctx context.Context) ([]Customer, error) {
	rows, err := b.store().Customers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Customer, 0, len(rows))
	for _, c := range rows {
		info, err := b.buildParty(c)
		if err != nil {
			return nil, err
		}
		out = append(out, Customer{
			Info:                 info,
			CustomerID:           partyID(c),
			SelfBillingIndicator: c.SelfBillingIndicator,
			AccountID:            CustomerAccountID,
			OpeningDebitBalance:  c.OpeningDebitBalance,
			ClosingDebitBalance:  c.ClosingDebitBalance,
		})
	}
	return out, nil
}

func (b *builder) buildSuppliers(ctx context.Context) ([]Supplier, error) {
	rows, err := b.store().Suppliers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Supplier, 0, len(rows))
	for _, c := range rows {
		info, err := b.buildParty(c)
		if err != nil {
			return nil, err
		}
		out = append(out, Supplier{
			Info:                 info,
			SupplierID:           partyID(c),
			SelfBillingIndicator: c.SelfBillingIndicator,
			AccountID:            SupplierAccountID,
			OpeningCreditBalance: c.OpeningCreditBalance,
			ClosingCreditBalance: c.ClosingCreditBalance,
		})
	}
	return out, nil
}

func (b *builder) buildParty(c *contraagent.Contraagent) (PartyInfo, error) {
	if _, ok := b.countries[c.CountryCode]; !ok {
		return PartyInfo{}, apperror.NewUnknownReferenceCode(c.CountryCode, "country")
	}

	return PartyInfo{
		RegistrationNumber: padRegistration(deref(c.RegistrationNumber)),
		Name:               c.Name,
		Street:             deref(c.Street),
		City:               deref(c.City),
		PostalCode:         deref(c.PostalCode),
		Country:            c.CountryCode,
		EIK:                deref(c.RegistrationNumber),
		VATNumber:          deref(c.VATNumber),
		IBAN:               deref(c.IBAN),
		RelatedParty:       c.RelatedParty,
	}, nil
}

func partyID(c *contraagent.Contraagent) string {
	if rn := deref(c.RegistrationNumber); rn != "" {
		return rn
	}
	return c.Code
}

func padRegistration(eik string) string {
	if eik == "" {
		return ""
	}
	for len(eik) < 12 {
		eik = "0" + eik
	}
	return eik
}

func (b *builder) buildProducts(ctx context.Context) ([]Product, error) {
	rows, err := b.store().Products(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Product, 0, len(rows))
	for _, p := range rows {
		commodity := deref(p.CommodityCode)
		if commodity != "" {
			if _, ok := b.tariffs[commodity]; !ok {
				return nil, apperror.NewUnknownReferenceCode(commodity, "tariff_code")
			}
		}

		goodsServices := "G"
		group := "Стоки"
		if p.IsService {
			goodsServices = "S"
			group = "Услуги"
		}

		out = append(out, Product{
			ProductCode:      p.Code,
			GoodsServicesID:  goodsServices,
			ProductGroup:     group,
			Description:      p.Name,
			CommodityCode:    commodity,
			UOMBase:          p.BaseUnit,
			UOMStandard:      p.BaseUnit,
			ConversionFactor: one,
		})
	}
	return out, nil
}

func (b *builder) buildLedger(
	entries []*journal.Entry,
	parties map[string]*contraagent.Contraagent,
	master *MasterFilesMonthly,
) (*GeneralLedger, error) {
	accountCodes := make(map[string]struct{}, len(master.Accounts))
	for _, a := range master.Accounts {
		accountCodes[a.AccountID] = struct{}{}
	}

	ledger := &GeneralLedger{
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
		Period:      b.req.Month,
		PeriodYear:  b.req.Year,
	}

	for _, e := range entries {
		debit := e.TotalDebit()
		credit := e.TotalCredit()
		if !e.Balanced() {
			return nil, apperror.NewUnbalancedEntry(e.ID.String(), debit.StringFixed(2), credit.StringFixed(2))
		}

		tx := Transaction{
			TransactionID:   e.ID.String(),
			Period:          b.req.Month,
			PeriodYear:      b.req.Year,
			TransactionDate: e.EntryDate,
			SourceID:        sourceID(e),
			TransactionType: "N",
			Description:     deref(e.Description),
			SystemEntryDate: e.CreatedAt,
			GLPostingDate:   e.EntryDate,
		}

		for i := range e.Lines {
			line, err := b.buildLine(&e.Lines[i], e, accountCodes, parties)
			if err != nil {
				return nil, err
			}
			tx.Lines = append(tx.Lines, line)
		}

		ledger.Transactions = append(ledger.Transactions, tx)
		ledger.TotalDebit = ledger.TotalDebit.Add(debit)
		ledger.TotalCredit = ledger.TotalCredit.Add(credit)
	}

	ledger.NumberOfEntries = len(ledger.Transactions)
	return ledger, nil
}

// buildSourceMonthly derives the sales-invoice section from the period's
// posted entries. An entry becomes an invoice when it bills a customer and
// carries at least one VAT line.
func (b *builder) buildSourceMonthly(
	entries []*journal.Entry,
	parties map[string]*contraagent.Contraagent,
) *SourceDocumentsMonthly {
	src := &SourceDocumentsMonthly{
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for _, e := range entries {
		inv, ok := b.buildSalesInvoice(e, parties)
		if !ok {
			continue
		}
		src.Invoices = append(src.Invoices, inv)
		src.TotalDebit = src.TotalDebit.Add(inv.GrossTotal)
		src.TotalCredit = src.TotalCredit.Add(inv.GrossTotal)
	}

	src.NumberOfEntries = len(src.Invoices)
	return src
}

// buildSalesInvoice reduces one journal entry to an invoice. The customer
// comes from the receivable line, the taxed amounts from the VAT lines; the
// two may sit on different lines of the same entry.
func (b *builder) buildSalesInvoice(
	e *journal.Entry,
	parties map[string]*contraagent.Contraagent,
) (SalesInvoice, bool) {
	var customer *contraagent.Contraagent
	for i := range e.Lines {
		l := &e.Lines[i]
		if l.ContraagentID == nil {
			continue
		}
		if p, ok := parties[l.ContraagentID.String()]; ok && p.IsCustomer {
			customer = p
			break
		}
	}
	if customer == nil {
		return SalesInvoice{}, false
	}

	inv := SalesInvoice{
		InvoiceNo:     e.Number,
		AccountID:     CustomerAccountID,
		Period:        b.req.Month,
		PeriodYear:    b.req.Year,
		InvoiceDate:   e.EntryDate,
		SelfBilling:   customer.SelfBillingIndicator,
		SourceID:      sourceID(e),
		GLPostingDate: e.EntryDate,
		TransactionID: e.ID.String(),
		Customer: InvoiceCustomer{
			CustomerID: partyID(customer),
			Name:       customer.Name,
			Street:     deref(customer.Street),
			City:       deref(customer.City),
			PostalCode: deref(customer.PostalCode),
			Country:    customer.CountryCode,
		},
		NetTotal: decimal.Zero,
	}

	vat := decimal.Zero
	for i := range e.Lines {
		l := &e.Lines[i]
		if l.VATAmount == nil || !(*l.VATAmount).IsPositive() {
			continue
		}
		rate := decimal.Zero
		if l.VATRate != nil {
			rate = *l.VATRate
		}
		base := decimal.Zero
		if l.VATBase != nil {
			base = *l.VATBase
		}
		inv.Lines = append(inv.Lines, InvoiceLine{
			LineNumber:  len(inv.Lines) + 1,
			AccountID:   l.AccountCode,
			Description: lineDescription(l, e),
			Amount:      base.Add(*l.VATAmount),
			Tax: TaxInformation{
				TaxCode:    rate.StringFixed(0),
				Percentage: rate,
				TaxBase:    base,
				TaxAmount:  b.buildAmount(*l.VATAmount, l),
			},
		})
		inv.NetTotal = inv.NetTotal.Add(base)
		vat = vat.Add(*l.VATAmount)
	}
	if len(inv.Lines) == 0 {
		return SalesInvoice{}, false
	}

	first := inv.Lines[0].Tax
	inv.TaxTotals = TaxInformation{
		TaxCode:    first.TaxCode,
		Percentage: first.Percentage,
		TaxBase:    inv.NetTotal,
		TaxAmount: Amount{
			Amount:         vat,
			CurrencyCode:   first.TaxAmount.CurrencyCode,
			CurrencyAmount: vat,
			ExchangeRate:   one,
		},
	}
	inv.GrossTotal = inv.NetTotal.Add(vat)
	return inv, true
}

func (b *builder) buildLine(
	l *journal.Line,
	e *journal.Entry,
	accountCodes map[string]struct{},
	parties map[string]*contraagent.Contraagent,
) (TransactionLine, error) {
	if _, ok := accountCodes[l.AccountCode]; !ok {
		return TransactionLine{}, apperror.NewUnknownReferenceCode(l.AccountCode, "account")
	}
	if _, ok := b.currencies[l.CurrencyCode]; !ok {
		return TransactionLine{}, apperror.NewUnknownReferenceCode(l.CurrencyCode, "currency")
	}

	isDebit := !l.Debit.IsZero()
	amount := l.Credit
	if isDebit {
		amount = l.Debit
	}

	line := TransactionLine{
		RecordID:         l.ID.String(),
		AccountID:        l.AccountCode,
		SourceDocumentID: deref(e.SourceDocument),
		Description:      lineDescription(l, e),
		IsDebit:          isDebit,
		Amount:           b.buildAmount(amount, l),
	}

	if l.ContraagentID != nil {
		if party, ok := parties[l.ContraagentID.String()]; ok {
			if party.IsCustomer {
				line.CustomerID = partyID(party)
			} else {
				line.SupplierID = partyID(party)
			}
		}
	}

	if l.VATAmount != nil && (*l.VATAmount).IsPositive() {
		rate := decimal.Zero
		if l.VATRate != nil {
			rate = *l.VATRate
		}
		base := decimal.Zero
		if l.VATBase != nil {
			base = *l.VATBase
		}
		line.Tax = &TaxInformation{
			TaxCode:    rate.StringFixed(0),
			Percentage: rate,
			TaxBase:    base,
			TaxAmount:  b.buildAmount(*l.VATAmount, l),
		}
	}

	return line, nil
}

func (b *builder) buildAmount(amount decimal.Decimal, l *journal.Line) Amount {
	out := Amount{
		Amount:         amount,
		CurrencyCode:   l.CurrencyCode,
		CurrencyAmount: amount,
		ExchangeRate:   one,
	}
	if l.CurrencyAmount != nil {
		out.CurrencyAmount = *l.CurrencyAmount
	}
	if l.ExchangeRate != nil {
		out.ExchangeRate = *l.ExchangeRate
	}
	return out
}

func lineDescription(l *journal.Line, e *journal.Entry) string {
	if d := deref(l.Description); d != "" {
		return d
	}
	return deref(e.Description)
}

func sourceID(e *journal.Entry) string {
	if e.CreatedBy != "" {
		return e.CreatedBy
	}
	return "system"
}

func (b *builder) partyIndex(ctx context.Context) (map[string]*contraagent.Contraagent, error) {
	customers, err := b.store().Customers(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := b.store().Suppliers(ctx)
	if err != nil {
		return nil, err
	}

	idx := make(map[string]*contraagent.Contraagent, len(customers)+len(suppliers))
	for _, c := range customers {
		idx[c.ID.String()] = c
	}
	for _, c := range suppliers {
		idx[c.ID.String()] = c
	}
	return idx, nil
}

// --- Annual ---

func (b *builder) buildAnnual(ctx context.Context) (*MasterFilesAnnual, *SourceDocumentsAnnual, error) {
	rows, err := b.store().Assets(ctx)
	if err != nil {
		return nil, nil, err
	}
	txs, err := b.store().AssetTransactions(ctx, b.org.ID, b.period.Start, b.period.End)
	if err != nil {
		return nil, nil, err
	}

	acquisitions := map[string]*assets.Transaction{}
	for _, tr := range txs {
		if tr.TransactionType == assets.TransactionAcquisition {
			acquisitions[tr.AssetCode] = tr
		}
	}

	master := &MasterFilesAnnual{Assets: make([]AssetEntry, 0, len(rows))}
	for _, a := range rows {
		master.Assets = append(master.Assets, b.buildAsset(a, acquisitions[a.Code]))
	}

	source := &SourceDocumentsAnnual{
		AssetTransactions: make([]AssetTransactionEntry, 0, len(txs)),
	}
	for _, tr := range txs {
		source.AssetTransactions = append(source.AssetTransactions, AssetTransactionEntry{
			TransactionID:   tr.ID.String(),
			AssetID:         tr.AssetCode,
			TransactionType: tr.TransactionType.String(),
			Description:     deref(tr.Description),
			TransactionDate: tr.TransactionDate,
			Supplier:        txSupplier(tr),
			AcquisitionCost: tr.AcquisitionCost,
			BookValue:       tr.BookValue,
			Amount:          tr.Amount,
		})
	}

	return master, source, nil
}

func (b *builder) buildAsset(a *asset.Asset, acq *assets.Transaction) AssetEntry {
	lifeYears := defaultLifeYear
	if a.UsefulLifeMonths > 0 {
		lifeYears = decimal.NewFromInt(int64(a.UsefulLifeMonths)).Div(decimal.NewFromInt(12)).Round(2)
	}
	rate := decimal.Zero
	if lifeYears.IsPositive() {
		rate = hundred.Div(lifeYears).Round(2)
	}

	taxCategory := deref(a.TaxCategory)
	if taxCategory == "" {
		taxCategory = "V"
	}

	entry := AssetEntry{
		AssetID:              a.Code,
		AccountID:            a.AccountCode,
		Description:          a.Name,
		Supplier:             txSupplier(acq),
		PurchaseDate:         a.AcquisitionDate,
		AcquisitionDate:      a.AcquisitionDate,
		StartUpDate:          a.AcquisitionDate,
		AcquisitionCostBegin: a.AcquisitionCost,
		AcquisitionCostEnd:   a.AcquisitionCost,
		LifeYears:            lifeYears,
		BookValueBegin:       a.BookValue.Add(a.DepreciationForPeriod),
		DepreciationMethod:   a.DepreciationMethod,
		DepreciationPercent:  rate,
		DepreciationPeriod:   a.DepreciationForPeriod,
		AccumulatedDepr:      a.AccumulatedDepreciation,
		BookValueEnd:         a.BookValue,
		TaxCategory:          taxCategory,
		TaxDeprRate:          rate,
		DeprMonthsInYear:     12,
	}
	if entry.AccountID == "" {
		entry.AccountID = AssetAccountID
	}
	return entry
}

func txSupplier(tr *assets.Transaction) *AssetSupplier {
	if tr == nil || tr.SupplierName == nil || *tr.SupplierName == "" {
		return nil
	}
	return &AssetSupplier{
		Name:    *tr.SupplierName,
		ID:      deref(tr.SupplierVATNumber),
		Country: Country,
	}
}

// --- On demand ---

func (b *builder) buildOnDemand(ctx context.Context) (*MasterFilesOnDemand, *SourceDocumentsOnDemand, error) {
	products, err := b.buildProducts(ctx)
	if err != nil {
		return nil, nil, err
	}

	levels, err := b.store().StockLevels(ctx, b.org.ID, b.period.End)
	if err != nil {
		return nil, nil, err
	}

	master := &MasterFilesOnDemand{
		Products:      products,
		PhysicalStock: make([]PhysicalStockEntry, 0, len(levels)),
	}
	for _, lv := range levels {
		unitPrice := decimal.Zero
		if lv.Quantity.IsPositive() {
			unitPrice = lv.Value.Div(lv.Quantity).Round(2)
		}
		master.PhysicalStock = append(master.PhysicalStock, PhysicalStockEntry{
			WarehouseID:    lv.Warehouse,
			ProductCode:    lv.ProductCode,
			StockAccountID: StockAccountID,
			Quantity:       lv.Quantity,
			UOM:            lv.Unit,
			UnitPrice:      unitPrice,
			StockValue:     lv.Value,
		})
	}

	movements, err := b.store().StockMovements(ctx, b.org.ID, b.period.Start, b.period.End)
	if err != nil {
		return nil, nil, err
	}

	source := &SourceDocumentsOnDemand{
		Movements:             make([]GoodsMovement, 0, len(movements)),
		TotalQuantityIssued:   decimal.Zero,
		TotalQuantityReceived: decimal.Zero,
	}
	for _, m := range movements {
		source.Movements = append(source.Movements, GoodsMovement{
			MovementID:   m.ID.String(),
			MovementType: m.MovementType.String(),
			MovementDate: m.MovementDate,
			WarehouseID:  m.Warehouse,
			ProductCode:  m.ProductCode,
			Quantity:     m.Quantity,
			UOM:          m.Unit,
			UnitPrice:    m.UnitPrice,
			Value:        m.Value,
			DocumentRef:  deref(m.DocumentRef),
		})
		if m.MovementType.IsOutgoing() {
			source.TotalQuantityIssued = source.TotalQuantityIssued.Add(m.Quantity)
		} else {
			source.TotalQuantityReceived = source.TotalQuantityReceived.Add(m.Quantity)
		}
	}

	return master, source, nil
}

// fiscalYearStart returns the most recent fiscal year start on or before the
// period start.
func (b *builder) fiscalYearStart() time.Time {
	month := b.org.FiscalYearStartMonth
	if month < 1 || month > 12 {
		month = 1
	}
	start := time.Date(b.period.Start.Year(), time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	if start.After(b.period.Start) {
		start = start.AddDate(-1, 0, 0)
	}
	return start
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
