package service

import (
	"context"

	"github.com/ledger-statement-service/internal/domain/ledger"
)

// PartyServiceImpl implements the PartyService interface
type PartyServiceImpl struct {
	store ledger.PartyStore
}

// NewPartyService creates a new party service
func NewPartyService(store ledger.PartyStore) PartyService {
	return &PartyServiceImpl{store: store}
}

// ListParties returns every party in the catalog
func (s *PartyServiceImpl) ListParties(ctx context.Context) ([]*ledger.Party, error) {
	return s.store.ListParties(ctx)
}
