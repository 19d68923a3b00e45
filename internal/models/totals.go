package models

import (
	"github.com/shopspring/decimal"
)

// Record is one parsed input line.
type Record struct {
	Category Category
	Amount   int64
}

// Totals holds the running sums per category. Individual amounts are bounded
// by int64 at parse time; the sums are kept in arbitrary precision so adding
// many large amounts never wraps around. The zero value is an empty total.
type Totals struct {
	Supply decimal.Decimal
	Buy    decimal.Decimal
}

// NewTotals builds Totals from plain integer sums.
func NewTotals(supply, buy int64) Totals {
	return Totals{
		Supply: decimal.NewFromInt(supply),
		Buy:    decimal.NewFromInt(buy),
	}
}

// Add returns the totals with r applied. Unrecognized records leave the
// totals unchanged.
func (t Totals) Add(r Record) Totals {
	switch r.Category {
	case Supply:
		t.Supply = t.Supply.Add(decimal.NewFromInt(r.Amount))
	case Buy:
		t.Buy = t.Buy.Add(decimal.NewFromInt(r.Amount))
	}
	return t
}

// Result is the balance supply minus buy.
func (t Totals) Result() decimal.Decimal {
	return t.Supply.Sub(t.Buy)
}

// Equal compares totals by value.
func (t Totals) Equal(other Totals) bool {
	return t.Supply.Equal(other.Supply) && t.Buy.Equal(other.Buy)
}
