package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x/donation"
)

// GenesisVault declares a vault created at genesis.
type GenesisVault struct {
	ID        string        `json:"id"`
	Admin     vault.Address `json:"admin"`
	MinAmount uint64        `json:"min_amount"`
	MaxAmount uint64        `json:"max_amount"`
}

// GenInitOptions returns the app_state section of a genesis file. The
// admin owns the donation configuration and every listed vault.
func GenInitOptions(admin vault.Address, vaults ...GenesisVault) (json.RawMessage, error) {
	if err := admin.Validate(); err != nil {
		return nil, errors.Wrap(err, "admin")
	}
	for i := range vaults {
		if vaults[i].Admin == nil {
			vaults[i].Admin = admin
		}
	}
	state := map[string]interface{}{
		"conf": map[string]interface{}{
			"donation": donation.Configuration{
				Owner:      admin,
				Thresholds: donation.DefaultThresholds,
			},
		},
		"donation": map[string]interface{}{
			"vaults": vaults,
		},
	}
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return raw, nil
}

// AddGenesisOptions sets the app_state of an existing tendermint genesis
// file. Everything else in the file is left untouched.
func AddGenesisOptions(filename string, options json.RawMessage) error {
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	// The tendermint part is not interpreted, so it is kept as raw values.
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis file: %s", err)
	}
	doc["app_state"] = options

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return ioutil.WriteFile(filename, out, 0600)
}
