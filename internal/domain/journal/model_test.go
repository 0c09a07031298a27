package journal

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/id"
)

func testEntry(t *testing.T) *Entry {
	t.Helper()
	entry := NewEntry(id.New(), "JE-0001", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
	entry.Lines = []Line{
		{
			ID: id.New(), EntryID: entry.ID, LineNumber: 1,
			AccountID: id.New(), AccountCode: "411",
			Debit: decimal.RequireFromString("120.00"), Credit: decimal.Zero,
			CurrencyCode: "BGN",
		},
		{
			ID: id.New(), EntryID: entry.ID, LineNumber: 2,
			AccountID: id.New(), AccountCode: "702",
			Debit: decimal.Zero, Credit: decimal.RequireFromString("120.00"),
			CurrencyCode: "BGN",
		},
	}
	return entry
}

func TestEntryValidate(t *testing.T) {
	entry := testEntry(t)
	require.NoError(t, entry.Validate(context.Background()))
}

func TestEntryBalancedWithinTolerance(t *testing.T) {
	entry := testEntry(t)

	// One cent of rounding drift is tolerated
	entry.Lines[1].Credit = decimal.RequireFromString("120.01")
	assert.True(t, entry.Balanced())
	assert.NoError(t, entry.Validate(context.Background()))

	// Beyond a cent it is an error
	entry.Lines[1].Credit = decimal.RequireFromString("120.02")
	assert.False(t, entry.Balanced())

	err := entry.Validate(context.Background())
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeUnbalancedEntry))

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "120.00", appErr.Details["debit"])
	assert.Equal(t, "120.02", appErr.Details["credit"])
}

func TestEntryValidateLineRules(t *testing.T) {
	t.Run("debit and credit on same line", func(t *testing.T) {
		entry := testEntry(t)
		entry.Lines[0].Credit = decimal.RequireFromString("1.00")
		err := entry.Validate(context.Background())
		require.Error(t, err)
		assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
	})

	t.Run("negative amount", func(t *testing.T) {
		entry := testEntry(t)
		entry.Lines[0].Debit = decimal.RequireFromString("-120.00")
		err := entry.Validate(context.Background())
		require.Error(t, err)
		assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
	})

	t.Run("missing currency", func(t *testing.T) {
		entry := testEntry(t)
		entry.Lines[0].CurrencyCode = ""
		err := entry.Validate(context.Background())
		require.Error(t, err)
	})

	t.Run("single line", func(t *testing.T) {
		entry := testEntry(t)
		entry.Lines = entry.Lines[:1]
		err := entry.Validate(context.Background())
		require.Error(t, err)
	})
}
