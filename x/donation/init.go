package donation

import (
	"context"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct {
	// Ctrl is used to create the genesis vaults. A default controller
	// is used when nil.
	Ctrl *Controller
}

var _ vault.Initializer = (*Initializer)(nil)

// FromGenesis stores the configuration found under conf.donation and
// creates all vaults declared under donation.vaults. Both are optional.
func (i *Initializer) FromGenesis(opts vault.Options, db vault.KVStore) error {
	switch err := gconf.InitConfig(db, opts, configurationPkg, &Configuration{}); {
	case err == nil, errors.ErrNotFound.Is(err):
	default:
		return errors.Wrap(err, "init configuration")
	}

	var genesis struct {
		Vaults []struct {
			ID        string        `json:"id"`
			Admin     vault.Address `json:"admin"`
			MinAmount uint64        `json:"min_amount"`
			MaxAmount uint64        `json:"max_amount"`
		} `json:"vaults"`
	}
	if err := opts.ReadOptions("donation", &genesis); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	ctrl := i.Ctrl
	if ctrl == nil {
		ctrl = NewController(nil, nil)
	}
	ctx := context.Background()
	for j, v := range genesis.Vaults {
		if _, err := ctrl.Initialize(ctx, db, v.Admin, v.ID, v.MinAmount, v.MaxAmount); err != nil {
			return errors.Wrapf(err, "vault %d", j)
		}
	}
	return nil
}
