// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// NewMoneyFromString creates a Money value from a string.
// This is the preferred constructor for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// BalanceTolerance is the maximum permitted difference between total debit
// and total credit of a journal entry. Matches NUMERIC(15,2) rounding.
var BalanceTolerance = decimal.RequireFromString("0.01")

// WithinTolerance reports whether |a-b| <= BalanceTolerance.
func WithinTolerance(a, b Money) bool {
	return a.Sub(b).Abs().LessThanOrEqual(BalanceTolerance)
}

// Sum adds a slice of Money values.
func Sum(values ...Money) Money {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
