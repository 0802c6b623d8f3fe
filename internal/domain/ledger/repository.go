package ledger

import "context"

// PartyStore provides read access to the party catalog. Implementations are
// read-only after startup and safe for concurrent use.
type PartyStore interface {
	// FindParty returns the party with the given ID, or ErrPartyNotFound.
	FindParty(ctx context.Context, id string) (*Party, error)

	// ListParties returns every party in the catalog.
	ListParties(ctx context.Context) ([]*Party, error)
}

// ErrPartyNotFound indicates the requested party does not exist in the catalog
type ErrPartyNotFound struct {
	PartyID string
}

func (e ErrPartyNotFound) Error() string {
	return "party not found: " + e.PartyID
}

// Is implements the errors.Is interface for ErrPartyNotFound
func (e ErrPartyNotFound) Is(target error) bool {
	t, ok := target.(ErrPartyNotFound)
	if !ok {
		return false
	}
	// An empty target PartyID matches any ErrPartyNotFound
	if t.PartyID == "" {
		return true
	}
	return e.PartyID == t.PartyID
}
