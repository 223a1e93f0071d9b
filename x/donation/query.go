package donation

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Stats returns the snapshot of a vault. The store is never written.
func (c *Controller) Stats(db vault.ReadOnlyKVStore, vaultID string) (*Stats, error) {
	state, err := c.states.GetState(db, vaultID)
	if err != nil {
		return nil, err
	}
	available, err := c.reserve.Available(db, vaultID, state)
	if err != nil {
		return nil, errors.Wrap(err, "available balance")
	}
	return &Stats{
		VaultID:            vaultID,
		Admin:              state.Admin,
		TotalContributed:   state.TotalContributed,
		TotalWithdrawn:     state.TotalWithdrawn,
		Balance:            state.Balance(),
		Available:          available,
		ContributionCount:  state.ContributionCount,
		UniqueContributors: state.UniqueContributors,
		MinAmount:          state.MinAmount,
		MaxAmount:          state.MaxAmount,
		Paused:             state.Paused,
	}, nil
}

// Contributor returns the ledger entry of owner in a vault.
func (c *Controller) Contributor(db vault.ReadOnlyKVStore, vaultID string, owner vault.Address) (*Contributor, error) {
	if _, err := c.states.GetState(db, vaultID); err != nil {
		return nil, err
	}
	return c.contributors.GetContributor(db, vaultID, owner)
}

// Contributors returns all ledger entries of a vault.
func (c *Controller) Contributors(db vault.ReadOnlyKVStore, vaultID string) ([]*Contributor, error) {
	if _, err := c.states.GetState(db, vaultID); err != nil {
		return nil, err
	}
	return c.contributors.ByVault(db, vaultID)
}

// StatsQuery serves vault snapshots. Query data is the vault ID.
type StatsQuery struct {
	ctrl *Controller
}

var _ vault.QueryHandler = StatsQuery{}

func (q StatsQuery) Query(db vault.ReadOnlyKVStore, mod string, data []byte) ([]vault.Model, error) {
	if mod != vault.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
	stats, err := q.ctrl.Stats(db, string(data))
	if err != nil {
		if ErrNotInitialized.Is(err) {
			// Return nothing on miss, same as bucket queries.
			return nil, nil
		}
		return nil, err
	}
	raw, err := stats.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal stats")
	}
	return []vault.Model{vault.Pair(data, raw)}, nil
}

// RegisterQuery registers all donation queries.
//
//	/donation/stats         key: vault id
//	/donation/vaults        key: vault id, prefix supported
//	/donation/contributors  key: "<vault id>:<address>", prefix "<vault id>:"
//	/donation/events        prefix "<vault id>:", ordered by sequence
func RegisterQuery(qr vault.QueryRouter, ctrl *Controller, events *EventLog) {
	qr.Register("/donation/stats", StatsQuery{ctrl: ctrl})
	ctrl.states.Register("donation/vaults", qr)
	ctrl.contributors.Register("donation/contributors", qr)
	if events != nil {
		events.bucket.Register("donation/events", qr)
	}
}
