package donation

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

const (
	pathInitialize          = "donation/initialize"
	pathContribute          = "donation/contribute"
	pathWithdraw            = "donation/withdraw"
	pathWithdrawPartial     = "donation/withdraw_partial"
	pathEmergencyWithdraw   = "donation/emergency_withdraw"
	pathPause               = "donation/pause"
	pathUnpause             = "donation/unpause"
	pathUpdateAdmin         = "donation/update_admin"
	pathUpdateLimits        = "donation/update_limits"
	pathUpdateConfiguration = "donation/update_configuration"

	// maxReasonLength limits the emergency withdrawal reason.
	maxReasonLength = 128
)

// Message validation is stateless. Amount rules depend on the vault state
// and are checked by the controller, so that the documented order of
// failures is preserved.

var _ vault.Msg = (*InitializeMsg)(nil)

func (InitializeMsg) Path() string { return pathInitialize }

func (m *InitializeMsg) Validate() error {
	return errors.AppendField(nil, "VaultID", validateVaultID(m.VaultID))
}

var _ vault.Msg = (*ContributeMsg)(nil)

func (ContributeMsg) Path() string { return pathContribute }

func (m *ContributeMsg) Validate() error {
	return errors.AppendField(nil, "VaultID", validateVaultID(m.VaultID))
}

var _ vault.Msg = (*WithdrawMsg)(nil)

func (WithdrawMsg) Path() string { return pathWithdraw }

func (m *WithdrawMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "VaultID", validateVaultID(m.VaultID))
	errs = errors.AppendField(errs, "Recipient", validateRecipient(m.Recipient))
	return errs
}

var _ vault.Msg = (*WithdrawPartialMsg)(nil)

func (WithdrawPartialMsg) Path() string { return pathWithdrawPartial }

func (m *WithdrawPartialMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "VaultID", validateVaultID(m.VaultID))
	errs = errors.AppendField(errs, "Recipient", validateRecipient(m.Recipient))
	return errs
}

var _ vault.Msg = (*EmergencyWithdrawMsg)(nil)

func (EmergencyWithdrawMsg) Path() string { return pathEmergencyWithdraw }

func (m *EmergencyWithdrawMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "VaultID", validateVaultID(m.VaultID))
	errs = errors.AppendField(errs, "Recipient", validateRecipient(m.Recipient))
	if len(m.Reason) > maxReasonLength {
		errs = errors.AppendField(errs, "Reason",
			errors.Wrapf(errors.ErrInput, "longer than %d characters", maxReasonLength))
	}
	return errs
}

var _ vault.Msg = (*PauseMsg)(nil)

func (PauseMsg) Path() string { return pathPause }

func (m *PauseMsg) Validate() error {
	return errors.AppendField(nil, "VaultID", validateVaultID(m.VaultID))
}

var _ vault.Msg = (*UnpauseMsg)(nil)

func (UnpauseMsg) Path() string { return pathUnpause }

func (m *UnpauseMsg) Validate() error {
	return errors.AppendField(nil, "VaultID", validateVaultID(m.VaultID))
}

var _ vault.Msg = (*UpdateAdminMsg)(nil)

func (UpdateAdminMsg) Path() string { return pathUpdateAdmin }

func (m *UpdateAdminMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "VaultID", validateVaultID(m.VaultID))
	errs = errors.AppendField(errs, "NewAdmin", m.NewAdmin.Validate())
	return errs
}

var _ vault.Msg = (*UpdateLimitsMsg)(nil)

func (UpdateLimitsMsg) Path() string { return pathUpdateLimits }

func (m *UpdateLimitsMsg) Validate() error {
	return errors.AppendField(nil, "VaultID", validateVaultID(m.VaultID))
}

func validateRecipient(a vault.Address) error {
	if len(a) == 0 {
		return nil
	}
	return a.Validate()
}
