package saft

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"fiskal/internal/domain/journal"
)

func TestPeriodForMonthly(t *testing.T) {
	req := Request{Type: ReportMonthly, Year: 2024, Month: 2}
	p := periodFor(req, 1, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), p.Start)
	// leap year
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), p.End)

	req.Year = 2023
	p = periodFor(req, 1, time.Now())
	assert.Equal(t, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC), p.End)
}

func TestPeriodForAnnual(t *testing.T) {
	p := periodFor(Request{Type: ReportAnnual, Year: 2024}, 7, time.Now())

	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), p.End)
}

func TestPeriodForOnDemand(t *testing.T) {
	today := time.Date(2024, time.September, 3, 14, 0, 0, 0, time.UTC)

	p := periodFor(Request{Type: ReportOnDemand, Year: 2024}, 7, today)
	assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2024, time.September, 3, 0, 0, 0, 0, time.UTC), p.End)

	// zero fiscal month falls back to January
	p = periodFor(Request{Type: ReportOnDemand, Year: 2024}, 0, today)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), p.Start)
}

func TestSplitBalance(t *testing.T) {
	positive := decimal.RequireFromString("150.00")
	negative := decimal.RequireFromString("-40.00")

	d, c := splitBalance(positive, true)
	assert.Equal(t, "150.00", d.StringFixed(2))
	assert.Equal(t, "0.00", c.StringFixed(2))

	d, c = splitBalance(negative, true)
	assert.Equal(t, "0.00", d.StringFixed(2))
	assert.Equal(t, "40.00", c.StringFixed(2))

	d, c = splitBalance(positive, false)
	assert.Equal(t, "0.00", d.StringFixed(2))
	assert.Equal(t, "150.00", c.StringFixed(2))

	d, c = splitBalance(negative, false)
	assert.Equal(t, "40.00", d.StringFixed(2))
	assert.Equal(t, "0.00", c.StringFixed(2))
}

func TestNaturalMovement(t *testing.T) {
	turn := journal.AccountTurnover{
		Debit:  decimal.RequireFromString("100.00"),
		Credit: decimal.RequireFromString("30.00"),
	}

	assert.Equal(t, "70.00", naturalMovement(turn, true).StringFixed(2))
	assert.Equal(t, "-70.00", naturalMovement(turn, false).StringFixed(2))
}

func TestPartyID(t *testing.T) {
	store := newTestStore()

	c := store.customers[0]
	assert.Equal(t, "200100200", partyID(c))

	c.RegistrationNumber = nil
	assert.Equal(t, "C001", partyID(c))
}

func TestPadRegistration(t *testing.T) {
	assert.Equal(t, "000123456789", padRegistration("123456789"))
	assert.Equal(t, "", padRegistration(""))
	assert.Equal(t, "1234567890123", padRegistration("1234567890123"))
}
