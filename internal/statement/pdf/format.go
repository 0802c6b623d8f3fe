package pdf

import (
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout renders dates as DD MMM YYYY, matching the printed statement
// convention.
const dateLayout = "02 Jan 2006"

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// formatAmount renders a zero amount as a dash and anything else with exactly
// two decimal places.
func formatAmount(d decimal.Decimal) string {
	if d.IsZero() {
		return "-"
	}
	return d.StringFixed(2)
}
