package static

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/ledger-statement-service/internal/domain/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartyStore_FindParty(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	store := NewPartyStore(logger)
	ctx := context.Background()

	t.Run("ExistingParty", func(t *testing.T) {
		party, err := store.FindParty(ctx, "abc-company")
		require.NoError(t, err)
		assert.Equal(t, "ABC Company Ltd", party.Name)
		assert.Equal(t, "accounts@abccompany.test", party.Email)
		assert.Len(t, party.Entries, 6)
	})

	t.Run("MissingParty", func(t *testing.T) {
		_, err := store.FindParty(ctx, "no-such-party")
		require.Error(t, err)
		assert.ErrorIs(t, err, ledger.ErrPartyNotFound{})
		assert.ErrorIs(t, err, ledger.ErrPartyNotFound{PartyID: "no-such-party"})
	})
}

func TestPartyStore_ListParties(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	store := NewPartyStore(logger)

	parties, err := store.ListParties(context.Background())
	require.NoError(t, err)
	require.Len(t, parties, 3)

	ids := make([]string, 0, len(parties))
	for _, party := range parties {
		ids = append(ids, party.ID)
	}
	assert.ElementsMatch(t, []string{"abc-company", "xyz-traders", "sunrise-enterprises"}, ids)
}
