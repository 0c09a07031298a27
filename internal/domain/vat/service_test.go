package vat

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/id"
	"fiskal/internal/domain/catalogs/contraagent"
	"fiskal/internal/domain/catalogs/organization"
	"fiskal/internal/domain/journal"
)

func testEntryWithVAT(orgID id.ID, partner *contraagent.Contraagent, base, vat string) *journal.Entry {
	e := journal.NewEntry(orgID, "F-0001", time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC))
	e.Posted = true

	taxBase := decimal.RequireFromString(base)
	taxAmount := decimal.RequireFromString(vat)
	rate := decimal.RequireFromString("20")
	partnerID := partner.ID

	e.Lines = []journal.Line{
		{
			ID:            id.New(),
			EntryID:       e.ID,
			LineNumber:    1,
			AccountCode:   "411",
			Debit:         taxBase.Add(taxAmount),
			ContraagentID: &partnerID,
			CurrencyCode:  "BGN",
			VATRate:       &rate,
			VATBase:       &taxBase,
			VATAmount:     &taxAmount,
		},
		{
			ID:           id.New(),
			EntryID:      e.ID,
			LineNumber:   2,
			AccountCode:  "702",
			Credit:       taxBase.Add(taxAmount),
			CurrencyCode: "BGN",
		},
	}
	return e
}

func TestAssembleSplitsByRole(t *testing.T) {
	org := organization.NewOrganization("ORG", "Демо ЕООД", "123456789", "София", "BG")
	vatNum := "BG123456789"
	org.VATNumber = &vatNum

	customer := contraagent.NewContraagent("C001", "Клиент АД", "BG", true, false)
	custVAT := "BG200100200"
	customer.VATNumber = &custVAT
	supplier := contraagent.NewContraagent("S001", "Доставчик ООД", "BG", false, true)

	parties := map[string]*contraagent.Contraagent{
		customer.ID.String(): customer,
		supplier.ID.String(): supplier,
	}

	entries := []*journal.Entry{
		testEntryWithVAT(org.ID, customer, "100.00", "20.00"),
		testEntryWithVAT(org.ID, supplier, "50.00", "10.00"),
	}

	svc := &Service{}
	regs := svc.assemble(org, entries, parties, 2024, 3)

	require.Len(t, regs.Sales, 1)
	require.Len(t, regs.Purchases, 1)

	assert.Equal(t, 1, regs.Sales[0].Seq)
	assert.Equal(t, "BG200100200", regs.Sales[0].PartnerVAT)
	assert.Equal(t, "100.00", regs.Sales[0].TaxBase.StringFixed(2))

	assert.Equal(t, "BG123456789", regs.Declaration.VATNumber)
	assert.Equal(t, "20.00", regs.Declaration.SalesVAT.StringFixed(2))
	assert.Equal(t, "10.00", regs.Declaration.PurchaseVAT.StringFixed(2))
	assert.Equal(t, "10.00", regs.Declaration.NetVAT().StringFixed(2))
}

func TestAssembleSkipsLinesWithoutVAT(t *testing.T) {
	org := organization.NewOrganization("ORG", "Демо", "123456789", "София", "BG")
	customer := contraagent.NewContraagent("C001", "Клиент", "BG", true, false)

	e := journal.NewEntry(org.ID, "F-0002", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	e.Lines = []journal.Line{
		{ID: id.New(), LineNumber: 1, AccountCode: "501", Debit: decimal.RequireFromString("10"), CurrencyCode: "BGN"},
		{ID: id.New(), LineNumber: 2, AccountCode: "702", Credit: decimal.RequireFromString("10"), CurrencyCode: "BGN"},
	}

	svc := &Service{}
	regs := svc.assemble(org, []*journal.Entry{e},
		map[string]*contraagent.Contraagent{customer.ID.String(): customer}, 2024, 3)

	assert.Empty(t, regs.Sales)
	assert.Empty(t, regs.Purchases)
	assert.Equal(t, "0.00", regs.Declaration.SalesVAT.StringFixed(2))
}

func TestEncodeRowsFixedWidth(t *testing.T) {
	rows := []Row{{
		Seq:         1,
		DocType:     "01",
		DocNumber:   "F-0001",
		DocDate:     time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
		PartnerVAT:  "BG200100200",
		PartnerName: "Клиент АД",
		TaxBase:     decimal.RequireFromString("100.00"),
		VATAmount:   decimal.RequireFromString("20.00"),
	}}

	data, err := encodeRows(rows)
	require.NoError(t, err)

	// CP-1251 is single-byte, so the line length equals the field widths
	// plus CRLF.
	lineWidth := widthSeq + widthType + widthNumber + widthDate + widthVAT + widthName + 2*widthAmount
	require.Len(t, data, lineWidth+2)

	assert.Equal(t, byte('\r'), data[len(data)-2])
	assert.Equal(t, byte('\n'), data[len(data)-1])

	// seq right-aligned in its field
	assert.Equal(t, "              1", string(data[:widthSeq]))
	// date in DD/MM/YYYY
	assert.Contains(t, string(data[:widthSeq+widthType+widthNumber+widthDate]), "12/03/2024")

	// "К" (U+041A) is 0xCA in Windows-1251
	assert.Contains(t, string(data), string([]byte{0xCA}))
}

func TestEncodeDeclaration(t *testing.T) {
	d := Declaration{
		VATNumber:    "BG123456789",
		Year:         2024,
		Month:        3,
		SalesBase:    decimal.RequireFromString("100.00"),
		SalesVAT:     decimal.RequireFromString("20.00"),
		PurchaseBase: decimal.RequireFromString("50.00"),
		PurchaseVAT:  decimal.RequireFromString("10.00"),
	}

	data, err := encodeDeclaration(d)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "BG123456789")
	assert.Contains(t, text, "202403")
	assert.True(t, strings.HasSuffix(text, "\r\n"))
}

func TestEncodeRejectsUnmappableRunes(t *testing.T) {
	rows := []Row{{
		Seq:         1,
		DocType:     "01",
		PartnerName: "未対応",
		TaxBase:     decimal.Zero,
		VATAmount:   decimal.Zero,
	}}

	_, err := encodeRows(rows)
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeEncoding))
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "   ab", padLeft("ab", 5))
	assert.Equal(t, "abcde", padRight("abcdefg", 5))
	// rune-aware, not byte-aware
	assert.Equal(t, "Клие", padRight("Клиент", 4))
}
