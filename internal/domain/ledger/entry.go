package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a single immutable transaction record in a party's ledger.
// Debit and credit are independent non-negative amounts: an entry may carry
// either, both, or neither (opening balance markers have neither).
type Entry struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Reference   string          `json:"reference"`
	Particulars string          `json:"particulars"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// Net returns the entry's effect on the running balance: credit minus debit.
func (e Entry) Net() decimal.Decimal {
	return e.Credit.Sub(e.Debit)
}
