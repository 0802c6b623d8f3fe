// Package postgres provides the PostgreSQL implementation of the party
// catalog for deployments that keep the ledger in a database instead of the
// built-in dataset.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ledger-statement-service/internal/domain/ledger"
	"github.com/ledger-statement-service/internal/platform/persistence"
	"github.com/shopspring/decimal"
)

// PartyStore implements the ledger.PartyStore interface for PostgreSQL
type PartyStore struct {
	querier persistence.Querier // Can be *pgxpool.Pool or pgx.Tx
	logger  *slog.Logger
}

// NewPartyStore creates a new PostgreSQL party store.
// It expects db.Pool() to satisfy persistence.Querier.
func NewPartyStore(logger *slog.Logger, db *persistence.PostgresDB) ledger.PartyStore {
	return &PartyStore{
		querier: db.Pool(),
		logger:  logger,
	}
}

// FindParty retrieves a party and its ledger entries by party ID.
// Returns ledger.ErrPartyNotFound when the party does not exist.
func (s *PartyStore) FindParty(ctx context.Context, id string) (*ledger.Party, error) {
	query := `
		SELECT id, name, email, COALESCE(tax_id, ''), COALESCE(address, '')
		FROM parties
		WHERE id = $1
	`

	var party ledger.Party
	err := s.querier.QueryRow(ctx, query, id).Scan(
		&party.ID,
		&party.Name,
		&party.Email,
		&party.TaxID,
		&party.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledger.ErrPartyNotFound{PartyID: id}
		}
		s.logger.Error("Failed to get party", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get party: %w", err)
	}

	entries, err := s.entriesForParty(ctx, id)
	if err != nil {
		return nil, err
	}
	party.Entries = entries

	return &party, nil
}

// ListParties retrieves every party with its entries.
func (s *PartyStore) ListParties(ctx context.Context) ([]*ledger.Party, error) {
	query := `
		SELECT id, name, email, COALESCE(tax_id, ''), COALESCE(address, '')
		FROM parties
		ORDER BY name
	`

	rows, err := s.querier.Query(ctx, query)
	if err != nil {
		s.logger.Error("Failed to list parties", "error", err)
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	defer rows.Close()

	var parties []*ledger.Party
	for rows.Next() {
		var party ledger.Party
		if err := rows.Scan(&party.ID, &party.Name, &party.Email, &party.TaxID, &party.Address); err != nil {
			return nil, fmt.Errorf("failed to scan party: %w", err)
		}
		parties = append(parties, &party)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read parties: %w", err)
	}

	for _, party := range parties {
		entries, err := s.entriesForParty(ctx, party.ID)
		if err != nil {
			return nil, err
		}
		party.Entries = entries
	}

	return parties, nil
}

// entriesForParty loads a party's ledger entries. Amounts are transferred as
// text to avoid float rounding on numeric columns.
func (s *PartyStore) entriesForParty(ctx context.Context, partyID string) ([]ledger.Entry, error) {
	query := `
		SELECT id, entry_date, reference, particulars, debit::text, credit::text
		FROM ledger_entries
		WHERE party_id = $1
		ORDER BY entry_date, id
	`

	rows, err := s.querier.Query(ctx, query, partyID)
	if err != nil {
		s.logger.Error("Failed to get ledger entries", "party_id", partyID, "error", err)
		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []ledger.Entry
	for rows.Next() {
		var (
			entry  ledger.Entry
			date   time.Time
			debit  string
			credit string
		)
		if err := rows.Scan(&entry.ID, &date, &entry.Reference, &entry.Particulars, &debit, &credit); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entry.Date = date
		if entry.Debit, err = decimal.NewFromString(debit); err != nil {
			return nil, fmt.Errorf("failed to parse debit amount %q: %w", debit, err)
		}
		if entry.Credit, err = decimal.NewFromString(credit); err != nil {
			return nil, fmt.Errorf("failed to parse credit amount %q: %w", credit, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ledger entries: %w", err)
	}

	return entries, nil
}
