package statement

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ledger-statement-service/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// Builder computes statements against a party catalog. It holds no per-call
// state, so a single Builder is safe for concurrent use.
type Builder struct {
	store ledger.PartyStore
	now   func() time.Time
}

// NewBuilder creates a statement builder over the given party catalog.
func NewBuilder(store ledger.PartyStore) *Builder {
	return &Builder{
		store: store,
		now:   time.Now,
	}
}

// NewBuilderWithClock creates a builder with a fixed clock for the default
// date range. Used in tests.
func NewBuilderWithClock(store ledger.PartyStore, now func() time.Time) *Builder {
	return &Builder{
		store: store,
		now:   now,
	}
}

// Build computes the running-balance statement for a party.
//
// A zero from defaults to the start of the current financial year and a zero
// to defaults to today. All date comparisons are at day granularity:
//   - the opening balance accrues entries dated strictly before from,
//   - the statement includes entries with from <= date <= to,
// so an entry dated exactly on from is never double-counted.
//
// A from after to is not an error: the statement is empty and the closing
// balance equals the opening balance.
func (b *Builder) Build(ctx context.Context, partyID string, from, to time.Time) (*Statement, error) {
	party, err := b.store.FindParty(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("build statement: %w", err)
	}

	if from.IsZero() {
		from = FinancialYearStart(b.now())
	}
	if to.IsZero() {
		to = b.now()
	}
	from = dateOnly(from)
	to = dateOnly(to)

	// Stable sort keeps the original relative order of same-day entries.
	entries := make([]ledger.Entry, len(party.Entries))
	copy(entries, party.Entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	opening := decimal.Zero
	for _, entry := range entries {
		if dateOnly(entry.Date).Before(from) {
			opening = opening.Add(entry.Net())
		}
	}

	running := opening
	included := make([]EntryWithBalance, 0, len(entries))
	for _, entry := range entries {
		date := dateOnly(entry.Date)
		if date.Before(from) || date.After(to) {
			continue
		}
		running = running.Add(entry.Net())
		included = append(included, EntryWithBalance{Entry: entry, Balance: running})
	}

	return &Statement{
		Party:          party,
		Entries:        included,
		OpeningBalance: opening,
		ClosingBalance: running,
		FromDate:       from,
		ToDate:         to,
	}, nil
}
