// Package static provides the built-in, in-memory party catalog. It stands in
// for a persistent store in deployments that ship with a fixed dataset.
package static

import (
	"context"
	"log/slog"

	"github.com/ledger-statement-service/internal/domain/ledger"
)

// PartyStore implements ledger.PartyStore over an in-memory dataset populated
// once at construction. All reads after that are lock-free.
type PartyStore struct {
	parties []*ledger.Party
	byID    map[string]*ledger.Party
}

// NewPartyStore creates a store seeded with the built-in dataset.
func NewPartyStore(logger *slog.Logger) *PartyStore {
	store := NewPartyStoreWith(seedParties()...)
	logger.Info("Static party catalog loaded", "parties", len(store.parties))
	return store
}

// NewPartyStoreWith creates a store over the given parties. Used in tests.
func NewPartyStoreWith(parties ...*ledger.Party) *PartyStore {
	byID := make(map[string]*ledger.Party, len(parties))
	for _, party := range parties {
		byID[party.ID] = party
	}
	return &PartyStore{
		parties: parties,
		byID:    byID,
	}
}

// FindParty returns the party with the given ID, or ledger.ErrPartyNotFound.
func (s *PartyStore) FindParty(_ context.Context, id string) (*ledger.Party, error) {
	party, ok := s.byID[id]
	if !ok {
		return nil, ledger.ErrPartyNotFound{PartyID: id}
	}
	return party, nil
}

// ListParties returns every party in the catalog.
func (s *PartyStore) ListParties(_ context.Context) ([]*ledger.Party, error) {
	parties := make([]*ledger.Party, len(s.parties))
	copy(parties, s.parties)
	return parties, nil
}
