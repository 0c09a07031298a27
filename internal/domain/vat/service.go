package vat

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/id"
	"fiskal/internal/core/tx"
	"fiskal/pkg/logger"

	"fiskal/internal/domain/catalogs/contraagent"
	"fiskal/internal/domain/catalogs/organization"
	"fiskal/internal/domain/journal"
)

// Field widths of the exchange format.
const (
	widthSeq    = 15
	widthType   = 2
	widthNumber = 20
	widthDate   = 10
	widthVAT    = 15
	widthName   = 50
	widthAmount = 15
)

// Service builds and encodes the monthly VAT registers.
type Service struct {
	orgs     organization.Repository
	journals journal.Repository
	parties  contraagent.Repository
	manager  tx.SnapshotManager
}

// NewService creates a new VAT register Service.
func NewService(
	orgs organization.Repository,
	journals journal.Repository,
	parties contraagent.Repository,
	manager tx.SnapshotManager,
) *Service {
	return &Service{orgs: orgs, journals: journals, parties: parties, manager: manager}
}

// Build assembles the registers for the month from posted journal entries.
// Sales rows come from VAT lines tied to customers, purchase rows from VAT
// lines tied to suppliers. Reads run in one snapshot.
func (s *Service) Build(ctx context.Context, orgID id.ID, year, month int) (*Registers, error) {
	if month < 1 || month > 12 {
		return nil, apperror.NewMissingPeriod()
	}

	var regs *Registers
	err := s.manager.Snapshot(ctx, func(ctx context.Context) error {
		org, err := s.orgs.GetByID(ctx, orgID)
		if err != nil {
			return err
		}

		from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, -1)

		entries, err := s.journals.ListByPeriod(ctx, orgID, from, to)
		if err != nil {
			return err
		}

		index, err := s.partyIndex(ctx)
		if err != nil {
			return err
		}

		regs = s.assemble(org, entries, index, year, month)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "vat registers built",
		"year", year,
		"month", month,
		"sales_rows", len(regs.Sales),
		"purchase_rows", len(regs.Purchases),
	)
	return regs, nil
}

func (s *Service) partyIndex(ctx context.Context) (map[string]*contraagent.Contraagent, error) {
	customers, err := s.parties.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := s.parties.ListSuppliers(ctx)
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

func (s *Service) assemble(
	org *organization.Organization,
	entries []*journal.Entry,
	parties map[string]*contraagent.Contraagent,
	year, month int,
) *Registers {
	regs := &Registers{
		Declaration: Declaration{
			VATNumber:    stringOrEmpty(org.VATNumber),
			Year:         year,
			Month:        month,
			SalesBase:    decimal.Zero,
			SalesVAT:     decimal.Zero,
			PurchaseBase: decimal.Zero,
			PurchaseVAT:  decimal.Zero,
		},
	}

	for _, e := range entries {
		for i := range e.Lines {
			l := &e.Lines[i]
			if l.VATAmount == nil || l.ContraagentID == nil {
				continue
			}
			party, ok := parties[l.ContraagentID.String()]
			if !ok {
				continue
			}

			row := Row{
				DocType:     "01",
				DocNumber:   e.Number,
				DocDate:     e.EntryDate,
				PartnerVAT:  partnerVAT(party),
				PartnerName: party.Name,
				TaxBase:     baseOrZero(l.VATBase),
				VATAmount:   *l.VATAmount,
			}

			if party.IsCustomer {
				row.Seq = len(regs.Sales) + 1
				regs.Sales = append(regs.Sales, row)
				regs.Declaration.SalesBase = regs.Declaration.SalesBase.Add(row.TaxBase)
				regs.Declaration.SalesVAT = regs.Declaration.SalesVAT.Add(row.VATAmount)
			} else {
				row.Seq = len(regs.Purchases) + 1
				regs.Purchases = append(regs.Purchases, row)
				regs.Declaration.PurchaseBase = regs.Declaration.PurchaseBase.Add(row.TaxBase)
				regs.Declaration.PurchaseVAT = regs.Declaration.PurchaseVAT.Add(row.VATAmount)
			}
		}
	}

	return regs
}

// Encode renders the three register files in Windows-1251.
func (s *Service) Encode(regs *Registers) ([]File, error) {
	sales, err := encodeRows(regs.Sales)
	if err != nil {
		return nil, err
	}
	purchases, err := encodeRows(regs.Purchases)
	if err != nil {
		return nil, err
	}
	decl, err := encodeDeclaration(regs.Declaration)
	if err != nil {
		return nil, err
	}

	return []File{
		{Name: SalesFileName, Data: sales},
		{Name: PurchasesFileName, Data: purchases},
		{Name: DeclarationFileName, Data: decl},
	}, nil
}

func encodeRows(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	for _, r := range rows {
		line := padLeft(fmt.Sprintf("%d", r.Seq), widthSeq) +
			padRight(r.DocType, widthType) +
			padRight(r.DocNumber, widthNumber) +
			padRight(r.DocDate.Format("02/01/2006"), widthDate) +
			padRight(r.PartnerVAT, widthVAT) +
			padRight(r.PartnerName, widthName) +
			padLeft(r.TaxBase.StringFixed(2), widthAmount) +
			padLeft(r.VATAmount.StringFixed(2), widthAmount)
		buf.WriteString(line)
		buf.WriteString("\r\n")
	}
	return toCP1251(buf.String())
}

func encodeDeclaration(d Declaration) ([]byte, error) {
	line := padRight(d.VATNumber, widthVAT) +
		fmt.Sprintf("%04d%02d", d.Year, d.Month) +
		padLeft(d.SalesBase.StringFixed(2), widthAmount) +
		padLeft(d.SalesVAT.StringFixed(2), widthAmount) +
		padLeft(d.PurchaseBase.StringFixed(2), widthAmount) +
		padLeft(d.PurchaseVAT.StringFixed(2), widthAmount) +
		padLeft(d.NetVAT().StringFixed(2), widthAmount)
	return toCP1251(line + "\r\n")
}

// toCP1251 transcodes the assembled text. A character outside the code page
// is an encoding error, not silent substitution.
func toCP1251(s string) ([]byte, error) {
	out, err := charmap.Windows1251.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, apperror.NewEncoding("register").WithCause(err)
	}
	return out, nil
}

// padRight pads or truncates to the field width, counting characters rather
// than bytes since the text is still UTF-8 at this point.
func padRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func padLeft(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return strings.Repeat(" ", width-len(runes)) + s
}

func partnerVAT(c *contraagent.Contraagent) string {
	if v := stringOrEmpty(c.VATNumber); v != "" {
		return v
	}
	return stringOrEmpty(c.RegistrationNumber)
}

func baseOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
