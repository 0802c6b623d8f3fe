package static

import (
	"time"

	"github.com/ledger-statement-service/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic("static dataset: bad date " + value)
	}
	return t
}

func amount(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic("static dataset: bad amount " + value)
	}
	return d
}

// seedParties returns the built-in party catalog. The dataset is constructed
// once at startup and treated as read-only afterwards.
func seedParties() []*ledger.Party {
	zero := decimal.Zero
	return []*ledger.Party{
		{
			ID:      "abc-company",
			Name:    "ABC Company Ltd",
			Email:   "accounts@abccompany.test",
			TaxID:   "29ABCDE1234F2Z5",
			Address: "12, MG Road, Bengaluru, Karnataka - 560001",
			Entries: []ledger.Entry{
				{ID: "abc-1", Date: day("2024-04-02"), Reference: "INV-2401", Particulars: "Sales Invoice #INV-2401", Debit: zero, Credit: amount("28650")},
				{ID: "abc-2", Date: day("2024-04-15"), Reference: "RCPT-1460", Particulars: "Receipt via NEFT", Debit: amount("28650"), Credit: zero},
				{ID: "abc-3", Date: day("2024-05-08"), Reference: "INV-2418", Particulars: "Sales Invoice #INV-2418", Debit: zero, Credit: amount("41250")},
				{ID: "abc-4", Date: day("2024-06-30"), Reference: "RCPT-1551", Particulars: "Receipt via RTGS", Debit: amount("20000"), Credit: zero},
				{ID: "abc-5", Date: day("2024-08-03"), Reference: "INV-2452", Particulars: "Sales Invoice #INV-2452", Debit: zero, Credit: amount("19800")},
				{ID: "abc-6", Date: day("2024-09-05"), Reference: "RCPT-1589", Particulars: "Receipt via UPI", Debit: amount("19800"), Credit: zero},
			},
		},
		{
			ID:      "xyz-traders",
			Name:    "XYZ Traders",
			Email:   "finance@xyztraders.test",
			TaxID:   "29XYZDE4567E1Z2",
			Address: "45, Brigade Road, Bengaluru, Karnataka - 560025",
			Entries: []ledger.Entry{
				{ID: "xyz-1", Date: day("2024-04-05"), Reference: "INV-2402", Particulars: "Sales Invoice #INV-2402", Debit: zero, Credit: amount("15800")},
				{ID: "xyz-2", Date: day("2024-04-30"), Reference: "RCPT-1469", Particulars: "Receipt via Cheque", Debit: amount("15800"), Credit: zero},
				{ID: "xyz-3", Date: day("2024-07-19"), Reference: "INV-2436", Particulars: "Sales Invoice #INV-2436", Debit: zero, Credit: amount("22440")},
				{ID: "xyz-4", Date: day("2024-08-12"), Reference: "RCPT-1573", Particulars: "Receipt via Cash", Debit: amount("12000"), Credit: zero},
				{ID: "xyz-5", Date: day("2024-09-30"), Reference: "DRN-0210", Particulars: "Debit Note - Short Supply", Debit: amount("2440"), Credit: zero},
			},
		},
		{
			ID:      "sunrise-enterprises",
			Name:    "Sunrise Enterprises",
			Email:   "info@sunriseenterprises.test",
			TaxID:   "29SUNRI7890N1Z1",
			Address: "301, Indiranagar, Bengaluru, Karnataka - 560038",
			Entries: []ledger.Entry{
				{ID: "sun-1", Date: day("2024-04-01"), Reference: "BAL", Particulars: "Opening Balance", Debit: zero, Credit: amount("10500")},
				{ID: "sun-2", Date: day("2024-05-11"), Reference: "INV-2422", Particulars: "Sales Invoice #INV-2422", Debit: zero, Credit: amount("18360")},
				{ID: "sun-3", Date: day("2024-06-15"), Reference: "RCPT-1520", Particulars: "Receipt via IMPS", Debit: amount("15000"), Credit: zero},
				{ID: "sun-4", Date: day("2024-07-25"), Reference: "INV-2444", Particulars: "Sales Invoice #INV-2444", Debit: zero, Credit: amount("21960")},
				{ID: "sun-5", Date: day("2024-08-18"), Reference: "RCPT-1578", Particulars: "Receipt via Cheque", Debit: amount("20000"), Credit: zero},
			},
		},
	}
}
