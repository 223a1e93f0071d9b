package donation

import (
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/gconf"
)

// configurationPkg is the name the configuration is stored under.
const configurationPkg = "donation"

var _ gconf.OwnedConfig = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	return errors.Append(errs, c.Thresholds.Validate())
}

// loadThresholds returns the tier thresholds set at genesis, or the
// defaults when no configuration was stored.
func loadThresholds(db gconf.ReadStore) (Thresholds, error) {
	var conf Configuration
	switch err := gconf.Load(db, configurationPkg, &conf); {
	case err == nil:
		return conf.Thresholds, nil
	case errors.ErrNotFound.Is(err):
		return DefaultThresholds, nil
	default:
		return Thresholds{}, errors.Wrap(err, "load configuration")
	}
}

var _ gconf.PatchMsg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string { return pathUpdateConfiguration }

// Validate accepts only an ownership transfer. Tier thresholds are fixed
// at genesis.
func (m *UpdateConfigurationMsg) Validate() error {
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	var errs error
	if len(m.Patch.Owner) != 0 {
		errs = errors.AppendField(errs, "Patch.Owner", m.Patch.Owner.Validate())
	}
	if m.Patch.Thresholds != (Thresholds{}) {
		errs = errors.AppendField(errs, "Patch.Thresholds",
			errors.Wrap(errors.ErrInput, "thresholds can only be set at genesis"))
	}
	return errs
}

func (m *UpdateConfigurationMsg) ConfigPatch() gconf.OwnedConfig {
	if m.Patch == nil {
		return nil
	}
	return m.Patch
}
