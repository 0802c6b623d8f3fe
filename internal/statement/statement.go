// Package statement computes running-balance statements over a party's
// ledger entries for a date range.
package statement

import (
	"time"

	"github.com/ledger-statement-service/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// EntryWithBalance is a ledger entry annotated with the running balance
// immediately after the entry is applied.
type EntryWithBalance struct {
	ledger.Entry
	Balance decimal.Decimal `json:"balance"`
}

// Statement is the computed running-balance statement for one party over a
// date range. It is built fresh per request and never mutated afterwards.
//
// Invariant: ClosingBalance equals OpeningBalance plus the sum of
// (credit - debit) over Entries, applied in non-decreasing date order.
type Statement struct {
	Party          *ledger.Party      `json:"party"`
	Entries        []EntryWithBalance `json:"entries"`
	OpeningBalance decimal.Decimal    `json:"opening_balance"`
	ClosingBalance decimal.Decimal    `json:"closing_balance"`
	FromDate       time.Time          `json:"from_date"`
	ToDate         time.Time          `json:"to_date"`
}

// FinancialYearStart returns April 1 of the financial year containing ref:
// April 1 of ref's calendar year when ref falls in April or later, otherwise
// April 1 of the previous calendar year.
func FinancialYearStart(ref time.Time) time.Time {
	year := ref.Year()
	if ref.Month() < time.April {
		year--
	}
	return time.Date(year, time.April, 1, 0, 0, 0, 0, time.UTC)
}

// dateOnly truncates t to day granularity in UTC so range comparisons ignore
// the time component.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
