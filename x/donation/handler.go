package donation

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/gconf"
	"github.com/iov-one/vault/x"
)

const (
	contributeCost = 10
	adminOpCost    = 50
	initializeCost = 100
)

// RegisterRoutes registers handlers for all donation messages.
func RegisterRoutes(r vault.Registry, auth x.Authenticator, ctrl *Controller) {
	r.Handle(pathInitialize, newOpHandler(auth, initializeCost, func() vault.Msg { return &InitializeMsg{} },
		func(ctx vault.Context, db vault.KVStore, caller vault.Address, m vault.Msg) (*Event, error) {
			msg := m.(*InitializeMsg)
			return ctrl.Initialize(ctx, db, caller, msg.VaultID, msg.MinAmount, msg.MaxAmount)
		}))
	r.Handle(pathContribute, newOpHandler(auth, contributeCost, func() vault.Msg { return &ContributeMsg{} },
		func(ctx vault.Context, db vault.KVStore, caller vault.Address, m vault.Msg) (*Event, error) {
			msg := m.(*ContributeMsg)
			return ctrl.Contribute(ctx, db, caller, msg.VaultID, msg.Amount)
		}))
	r.Handle(pathWithdraw, newOpHandler(auth, adminOpCost, func() vault.Msg { return &WithdrawMsg{} },
		func(ctx vault.Context, db vault.KVStore, caller vault.Address, m vault.Msg) (*Event, error) {
			msg := m.(*WithdrawMsg)
			return ctrl.Withdraw(ctx, db, caller, msg.VaultID, msg.Recipient)
		}))
	r.Handle(pathWithdrawPartial, newOpHandler(auth, adminOpCost, func() vault.Msg { return &WithdrawPartialMsg{} },
		func(ctx vault.Context, db vault.KVStore, caller vault.Address, m vault.Msg) (*Event, error) {
			msg := m.(*WithdrawPartialMsg)
			return ctrl.WithdrawPartial(ctx, db, caller, msg.VaultID, msg.Amount, msg.Recipient)
		}))
	r.Handle(pathEmergencyWithdraw, newOpHandler(auth, adminOpCost, func() vault.Msg { return &EmergencyWithdrawMsg{} },
		func(ctx vault.Context, db vault.KVStore, caller vault.Address, m vault.Msg) (*Event, error) {
			msg := m.(*EmergencyWithdrawMsg)
			return ctrl.EmergencyWithdraw(ctx, db, caller, msg.VaultID, msg.Amount, msg.Recipient, msg.Reason)
		}))
	r.Handle(pathPause, newOpHandler(auth, adminOpCost, func() vault.Msg { return &PauseMsg{} },
		func(ctx vault.Context, db vault.KVStore, caller vault.Address, m vault.Msg) (*Event, error) {
			return ctrl.Pause(ctx, db, caller, m.(*PauseMsg).VaultID)
		}))
	r.Handle(pathUnpause, newOpHandler(auth, adminOpCost, func() vault.Msg { return &UnpauseMsg{} },
		func(ctx vault.Context, db vault.KVStore, caller vault.Address, m vault.Msg) (*Event, error) {
			return ctrl.Unpause(ctx, db, caller, m.(*UnpauseMsg).VaultID)
		}))
	r.Handle(pathUpdateAdmin, newOpHandler(auth, adminOpCost, func() vault.Msg { return &UpdateAdminMsg{} },
		func(ctx vault.Context, db vault.KVStore, caller vault.Address, m vault.Msg) (*Event, error) {
			msg := m.(*UpdateAdminMsg)
			return nil, ctrl.UpdateAdmin(ctx, db, caller, msg.VaultID, msg.NewAdmin)
		}))
	r.Handle(pathUpdateLimits, newOpHandler(auth, adminOpCost, func() vault.Msg { return &UpdateLimitsMsg{} },
		func(ctx vault.Context, db vault.KVStore, caller vault.Address, m vault.Msg) (*Event, error) {
			msg := m.(*UpdateLimitsMsg)
			return ctrl.UpdateLimits(ctx, db, caller, msg.VaultID, msg.MinAmount, msg.MaxAmount)
		}))
	r.Handle(pathUpdateConfiguration, gconf.NewUpdateConfigurationHandler(configurationPkg, &Configuration{}, auth))
}

// operation executes a single vault operation on behalf of the caller.
type operation func(ctx vault.Context, db vault.KVStore, caller vault.Address, msg vault.Msg) (*Event, error)

// opHandler adapts an operation to the vault.Handler interface. The caller
// is the main signer of the transaction.
//
// Check executes the whole operation as well, so that the check state
// follows the same rules as the delivery. Both are expected to run inside
// a savepoint.
type opHandler struct {
	auth   x.Authenticator
	cost   int64
	newMsg func() vault.Msg
	run    operation
}

var _ vault.Handler = (*opHandler)(nil)

func newOpHandler(auth x.Authenticator, cost int64, newMsg func() vault.Msg, run operation) *opHandler {
	return &opHandler{
		auth:   auth,
		cost:   cost,
		newMsg: newMsg,
		run:    run,
	}
}

func (h *opHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	if _, err := h.execute(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: h.cost}, nil
}

func (h *opHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	event, err := h.execute(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res := &vault.DeliverResult{}
	if event != nil {
		raw, err := event.Marshal()
		if err != nil {
			return nil, errors.Wrap(err, "marshal event")
		}
		res.Data = raw
		res.Tags = append(res.Tags, Tags(event)...)
	}
	return res, nil
}

func (h *opHandler) execute(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*Event, error) {
	msg := h.newMsg()
	if err := vault.LoadMsg(tx, msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	caller, err := x.MainSignerAddress(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	return h.run(ctx, db, caller, msg)
}
