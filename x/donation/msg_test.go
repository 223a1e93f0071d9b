package donation

import (
	"strings"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestMsgValidate(t *testing.T) {
	addr := vaulttest.NewCondition().Address()

	cases := map[string]struct {
		Msg      vault.Msg
		WantErrs map[string]*errors.Error
	}{
		"valid initialize": {
			Msg:      &InitializeMsg{VaultID: "main", MinAmount: 1, MaxAmount: 2},
			WantErrs: map[string]*errors.Error{"VaultID": nil},
		},
		"initialize limits are not checked statelessly": {
			Msg:      &InitializeMsg{VaultID: "main"},
			WantErrs: map[string]*errors.Error{"VaultID": nil},
		},
		"missing vault id": {
			Msg:      &ContributeMsg{Amount: 5},
			WantErrs: map[string]*errors.Error{"VaultID": errors.ErrInput},
		},
		"vault id cannot contain a colon": {
			Msg:      &PauseMsg{VaultID: "a:b"},
			WantErrs: map[string]*errors.Error{"VaultID": errors.ErrInput},
		},
		"vault id too long": {
			Msg:      &UnpauseMsg{VaultID: strings.Repeat("x", 33)},
			WantErrs: map[string]*errors.Error{"VaultID": errors.ErrInput},
		},
		"zero contribution is checked by the vault": {
			Msg:      &ContributeMsg{VaultID: "main"},
			WantErrs: map[string]*errors.Error{"VaultID": nil},
		},
		"withdraw without recipient": {
			Msg:      &WithdrawMsg{VaultID: "main"},
			WantErrs: map[string]*errors.Error{"VaultID": nil, "Recipient": nil},
		},
		"withdraw to an invalid recipient": {
			Msg:      &WithdrawMsg{VaultID: "main", Recipient: vault.Address("bad")},
			WantErrs: map[string]*errors.Error{"Recipient": errors.ErrInput},
		},
		"partial withdraw to a recipient": {
			Msg:      &WithdrawPartialMsg{VaultID: "main", Amount: 1, Recipient: addr},
			WantErrs: map[string]*errors.Error{"VaultID": nil, "Recipient": nil},
		},
		"emergency reason too long": {
			Msg:      &EmergencyWithdrawMsg{VaultID: "main", Reason: strings.Repeat("x", 129)},
			WantErrs: map[string]*errors.Error{"Reason": errors.ErrInput, "Recipient": nil},
		},
		"emergency with reason": {
			Msg:      &EmergencyWithdrawMsg{VaultID: "main", Reason: "key leaked"},
			WantErrs: map[string]*errors.Error{"Reason": nil},
		},
		"update admin requires new admin": {
			Msg:      &UpdateAdminMsg{VaultID: "main"},
			WantErrs: map[string]*errors.Error{"NewAdmin": errors.ErrInput},
		},
		"update admin": {
			Msg:      &UpdateAdminMsg{VaultID: "main", NewAdmin: addr},
			WantErrs: map[string]*errors.Error{"NewAdmin": nil, "VaultID": nil},
		},
		"update limits": {
			Msg:      &UpdateLimitsMsg{VaultID: "vault-1.b_2", MinAmount: 1, MaxAmount: 2},
			WantErrs: map[string]*errors.Error{"VaultID": nil},
		},
		"configuration patch cannot change thresholds": {
			Msg: &UpdateConfigurationMsg{Patch: &Configuration{
				Thresholds: DefaultThresholds,
			}},
			WantErrs: map[string]*errors.Error{"Patch.Thresholds": errors.ErrInput, "Patch.Owner": nil},
		},
		"configuration patch of the owner only": {
			Msg:      &UpdateConfigurationMsg{Patch: &Configuration{Owner: addr}},
			WantErrs: map[string]*errors.Error{"Patch.Owner": nil, "Patch.Thresholds": nil},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.Msg.Validate()
			for field, want := range tc.WantErrs {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}

func TestUpdateConfigurationMsgWithoutPatch(t *testing.T) {
	msg := &UpdateConfigurationMsg{}
	assert.IsErr(t, errors.ErrEmpty, msg.Validate())
	assert.Nil(t, msg.ConfigPatch())
}

func TestMsgPaths(t *testing.T) {
	paths := make(map[string]bool)
	for _, m := range []vault.Msg{
		&InitializeMsg{}, &ContributeMsg{}, &WithdrawMsg{}, &WithdrawPartialMsg{},
		&EmergencyWithdrawMsg{}, &PauseMsg{}, &UnpauseMsg{}, &UpdateAdminMsg{},
		&UpdateLimitsMsg{}, &UpdateConfigurationMsg{},
	} {
		p := m.Path()
		if !strings.HasPrefix(p, "donation/") {
			t.Errorf("%T: unexpected path %q", m, p)
		}
		if paths[p] {
			t.Errorf("%T: duplicated path %q", m, p)
		}
		paths[p] = true
	}
}
