package donation

import (
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest"
	"github.com/stretchr/testify/require"
)

func TestQueries(t *testing.T) {
	f := newFixture(t)
	log := f.ctrl.events.(*EventLog)
	alice := vaulttest.NewCondition().Address()
	_, err := f.ctrl.Contribute(f.ctx, f.db, alice, testVault, 3000000)
	require.NoError(t, err)

	qr := vault.NewQueryRouter()
	RegisterQuery(qr, f.ctrl, log)

	t.Run("stats", func(t *testing.T) {
		h := qr.Handler("/donation/stats")
		require.NotNil(t, h)
		res, err := h.Query(f.db, vault.KeyQueryMod, []byte(testVault))
		require.NoError(t, err)
		require.Len(t, res, 1)
		var s Stats
		require.NoError(t, s.Unmarshal(res[0].Value))
		require.Equal(t, uint64(3000000), s.TotalContributed)
		require.Equal(t, uint64(3000000), s.Available)
		require.Equal(t, f.admin, s.Admin)

		res, err = h.Query(f.db, vault.KeyQueryMod, []byte("unknown"))
		require.NoError(t, err)
		require.Len(t, res, 0)

		_, err = h.Query(f.db, vault.PrefixQueryMod, nil)
		require.True(t, errors.ErrInput.Is(err))
	})

	t.Run("contributors", func(t *testing.T) {
		h := qr.Handler("/donation/contributors")
		require.NotNil(t, h)
		res, err := h.Query(f.db, vault.PrefixQueryMod, vaultPrefix(testVault))
		require.NoError(t, err)
		require.Len(t, res, 1)
		var c Contributor
		require.NoError(t, c.Unmarshal(res[0].Value))
		require.Equal(t, alice, c.Owner)
		require.Equal(t, Bronze, c.Tier)
	})

	t.Run("vaults", func(t *testing.T) {
		h := qr.Handler("/donation/vaults")
		require.NotNil(t, h)
		res, err := h.Query(f.db, vault.KeyQueryMod, []byte(testVault))
		require.NoError(t, err)
		require.Len(t, res, 1)
		var s State
		require.NoError(t, s.Unmarshal(res[0].Value))
		require.Equal(t, uint64(1), s.UniqueContributors)
	})

	t.Run("events", func(t *testing.T) {
		h := qr.Handler("/donation/events")
		require.NotNil(t, h)
		res, err := h.Query(f.db, vault.PrefixQueryMod, vaultPrefix(testVault))
		require.NoError(t, err)
		require.Len(t, res, 2)
		kinds := make([]string, 0, len(res))
		for _, m := range res {
			var e Event
			require.NoError(t, e.Unmarshal(m.Value))
			kinds = append(kinds, e.Kind())
		}
		require.Equal(t, []string{KindInitialized, KindContributed}, kinds)
	})
}

func TestContributorOfMissingVault(t *testing.T) {
	f := newFixture(t)
	_, err := f.ctrl.Contributor(f.db, "other", vaulttest.NewCondition().Address())
	require.True(t, ErrNotInitialized.Is(err))
	_, err = f.ctrl.Contributors(f.db, "other")
	require.True(t, ErrNotInitialized.Is(err))
}
