package donation

import (
	"math/bits"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// defaultReason is used for emergency withdrawals that do not state one.
const defaultReason = "emergency"

// Controller implements all vault operations. Every operation completes
// all of its checks before the first write, so a failed call never leaves
// a partially updated state behind.
type Controller struct {
	states       StateBucket
	contributors ContributorBucket
	reserve      Reserve
	events       EventSink
}

// NewController returns a controller. A nil reserve makes the whole
// balance available and a nil sink defaults to a new EventLog.
func NewController(reserve Reserve, events EventSink) *Controller {
	if reserve == nil {
		reserve = NoReserve{}
	}
	if events == nil {
		events = NewEventLog()
	}
	return &Controller{
		states:       NewStateBucket(),
		contributors: NewContributorBucket(),
		reserve:      reserve,
		events:       events,
	}
}

// Initialize creates a vault administrated by the caller.
func (c *Controller) Initialize(ctx vault.Context, db vault.KVStore, caller vault.Address, vaultID string, min, max uint64) (*Event, error) {
	if err := validateVaultID(vaultID); err != nil {
		return nil, err
	}
	switch err := c.states.Has(db, []byte(vaultID)); {
	case err == nil:
		return nil, errors.Wrapf(ErrAlreadyInitialized, "vault %q", vaultID)
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}
	if err := validateLimits(min, max); err != nil {
		return nil, err
	}
	if err := caller.Validate(); err != nil {
		return nil, errors.Wrap(err, "admin")
	}

	state := &State{
		Admin:     caller,
		MinAmount: min,
		MaxAmount: max,
	}
	if err := c.states.Save(db, vaultID, state); err != nil {
		return nil, errors.Wrap(err, "save state")
	}
	return c.events.Emit(ctx, db, vaultID, &InitializedEvent{
		Admin:     caller,
		MinAmount: min,
		MaxAmount: max,
	})
}

// Contribute adds amount to the vault and to the ledger entry of the
// caller, creating the entry on the first contribution.
func (c *Controller) Contribute(ctx vault.Context, db vault.KVStore, caller vault.Address, vaultID string, amount uint64) (*Event, error) {
	state, err := c.states.GetState(db, vaultID)
	if err != nil {
		return nil, err
	}
	if state.Paused {
		return nil, errors.Wrapf(ErrPaused, "vault %q", vaultID)
	}
	if amount < state.MinAmount {
		return nil, errors.Wrapf(ErrTooSmall, "%d < %d", amount, state.MinAmount)
	}
	if amount > state.MaxAmount {
		return nil, errors.Wrapf(ErrTooLarge, "%d > %d", amount, state.MaxAmount)
	}
	if err := caller.Validate(); err != nil {
		return nil, errors.Wrap(err, "contributor")
	}
	now, err := vault.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "contribution time")
	}
	thresholds, err := loadThresholds(db)
	if err != nil {
		return nil, err
	}

	entry, err := c.contributors.GetContributor(db, vaultID, caller)
	isNew := errors.ErrNotFound.Is(err)
	switch {
	case isNew:
		entry = &Contributor{
			Owner:                 caller,
			FirstContributionTime: vault.AsUnixTime(now),
		}
	case err != nil:
		return nil, errors.Wrap(err, "load contributor")
	}

	// Compute all new values first. Nothing is written unless every
	// counter can be updated.
	entryTotal, err := add(entry.TotalContributed, amount)
	if err != nil {
		return nil, errors.Wrap(err, "contributor total")
	}
	entryCount, err := add(entry.ContributionCount, 1)
	if err != nil {
		return nil, errors.Wrap(err, "contributor count")
	}
	vaultTotal, err := add(state.TotalContributed, amount)
	if err != nil {
		return nil, errors.Wrap(err, "vault total")
	}
	vaultCount, err := add(state.ContributionCount, 1)
	if err != nil {
		return nil, errors.Wrap(err, "vault contribution count")
	}
	unique := state.UniqueContributors
	if isNew {
		if unique, err = add(unique, 1); err != nil {
			return nil, errors.Wrap(err, "unique contributors")
		}
	}

	entry.TotalContributed = entryTotal
	// A tier is never lowered, even if the entry was ranked by other
	// thresholds.
	if tier := thresholds.Classify(entryTotal); tier > entry.Tier {
		entry.Tier = tier
	}
	entry.ContributionCount = entryCount
	entry.LastContributionTime = vault.AsUnixTime(now)
	state.TotalContributed = vaultTotal
	state.ContributionCount = vaultCount
	state.UniqueContributors = unique

	if err := c.contributors.Save(db, vaultID, entry); err != nil {
		return nil, errors.Wrap(err, "save contributor")
	}
	if err := c.states.Save(db, vaultID, state); err != nil {
		return nil, errors.Wrap(err, "save state")
	}
	return c.events.Emit(ctx, db, vaultID, &ContributedEvent{
		Contributor: caller,
		Amount:      amount,
		Total:       entry.TotalContributed,
		Tier:        entry.Tier,
	})
}

// Withdraw moves the whole available balance to the recipient. An empty
// recipient means the admin.
func (c *Controller) Withdraw(ctx vault.Context, db vault.KVStore, caller vault.Address, vaultID string, recipient vault.Address) (*Event, error) {
	return c.withdraw(ctx, db, caller, vaultID, withdrawal{
		all:       true,
		recipient: recipient,
	})
}

// WithdrawPartial moves exactly amount to the recipient.
func (c *Controller) WithdrawPartial(ctx vault.Context, db vault.KVStore, caller vault.Address, vaultID string, amount uint64, recipient vault.Address) (*Event, error) {
	return c.withdraw(ctx, db, caller, vaultID, withdrawal{
		amount:    amount,
		recipient: recipient,
	})
}

// EmergencyWithdraw moves amount, or the whole available balance when
// amount is zero. Unlike other withdrawals it is allowed while the vault
// is paused.
func (c *Controller) EmergencyWithdraw(ctx vault.Context, db vault.KVStore, caller vault.Address, vaultID string, amount uint64, recipient vault.Address, reason string) (*Event, error) {
	if reason == "" {
		reason = defaultReason
	}
	return c.withdraw(ctx, db, caller, vaultID, withdrawal{
		amount:    amount,
		all:       amount == 0,
		emergency: true,
		recipient: recipient,
		reason:    reason,
	})
}

type withdrawal struct {
	amount    uint64
	all       bool
	emergency bool
	recipient vault.Address
	reason    string
}

func (c *Controller) withdraw(ctx vault.Context, db vault.KVStore, caller vault.Address, vaultID string, w withdrawal) (*Event, error) {
	state, err := c.authorize(db, caller, vaultID)
	if err != nil {
		return nil, err
	}
	if state.Paused && !w.emergency {
		return nil, errors.Wrap(ErrPaused, "only emergency withdrawal is allowed")
	}
	if !w.all && w.amount == 0 {
		return nil, errors.Wrap(errors.ErrAmount, "amount must be greater than zero")
	}
	available, err := c.reserve.Available(db, vaultID, state)
	if err != nil {
		return nil, errors.Wrap(err, "available balance")
	}
	amount := w.amount
	if w.all {
		amount = available
	}
	if amount == 0 || amount > available {
		return nil, errors.Wrapf(errors.ErrInsufficientAmount, "requested %d, available %d", amount, available)
	}
	withdrawn, err := add(state.TotalWithdrawn, amount)
	if err != nil {
		return nil, errors.Wrap(err, "total withdrawn")
	}
	recipient := w.recipient
	if len(recipient) == 0 {
		recipient = state.Admin
	}

	state.TotalWithdrawn = withdrawn
	if err := c.states.Save(db, vaultID, state); err != nil {
		return nil, errors.Wrap(err, "save state")
	}

	var payload EventPayload = &WithdrawnEvent{
		Admin:     state.Admin,
		Recipient: recipient,
		Amount:    amount,
	}
	if w.emergency {
		payload = &EmergencyWithdrawnEvent{
			Admin:     state.Admin,
			Recipient: recipient,
			Amount:    amount,
			Reason:    w.reason,
		}
	}
	return c.events.Emit(ctx, db, vaultID, payload)
}

// Pause stops accepting contributions.
func (c *Controller) Pause(ctx vault.Context, db vault.KVStore, caller vault.Address, vaultID string) (*Event, error) {
	return c.setPaused(ctx, db, caller, vaultID, true)
}

// Unpause resumes accepting contributions.
func (c *Controller) Unpause(ctx vault.Context, db vault.KVStore, caller vault.Address, vaultID string) (*Event, error) {
	return c.setPaused(ctx, db, caller, vaultID, false)
}

func (c *Controller) setPaused(ctx vault.Context, db vault.KVStore, caller vault.Address, vaultID string, paused bool) (*Event, error) {
	state, err := c.authorize(db, caller, vaultID)
	if err != nil {
		return nil, err
	}
	if state.Paused == paused {
		if paused {
			return nil, errors.Wrapf(ErrAlreadyPaused, "vault %q", vaultID)
		}
		return nil, errors.Wrapf(ErrNotPaused, "vault %q", vaultID)
	}
	state.Paused = paused
	if err := c.states.Save(db, vaultID, state); err != nil {
		return nil, errors.Wrap(err, "save state")
	}
	return c.events.Emit(ctx, db, vaultID, &PauseChangedEvent{
		Admin:  state.Admin,
		Paused: paused,
	})
}

// UpdateAdmin hands the admin privilege to another address. The caller
// loses it immediately.
func (c *Controller) UpdateAdmin(ctx vault.Context, db vault.KVStore, caller vault.Address, vaultID string, newAdmin vault.Address) error {
	state, err := c.authorize(db, caller, vaultID)
	if err != nil {
		return err
	}
	if err := newAdmin.Validate(); err != nil {
		return errors.Wrap(err, "new admin")
	}
	state.Admin = newAdmin
	if err := c.states.Save(db, vaultID, state); err != nil {
		return errors.Wrap(err, "save state")
	}
	return nil
}

// UpdateLimits replaces the contribution limits.
func (c *Controller) UpdateLimits(ctx vault.Context, db vault.KVStore, caller vault.Address, vaultID string, min, max uint64) (*Event, error) {
	state, err := c.authorize(db, caller, vaultID)
	if err != nil {
		return nil, err
	}
	if err := validateLimits(min, max); err != nil {
		return nil, err
	}
	oldMin, oldMax := state.MinAmount, state.MaxAmount
	state.MinAmount, state.MaxAmount = min, max
	if err := c.states.Save(db, vaultID, state); err != nil {
		return nil, errors.Wrap(err, "save state")
	}
	return c.events.Emit(ctx, db, vaultID, &LimitsUpdatedEvent{
		Admin:        state.Admin,
		OldMinAmount: oldMin,
		OldMaxAmount: oldMax,
		NewMinAmount: min,
		NewMaxAmount: max,
	})
}

// authorize loads the vault state and ensures the caller is its admin.
func (c *Controller) authorize(db vault.ReadOnlyKVStore, caller vault.Address, vaultID string) (*State, error) {
	state, err := c.states.GetState(db, vaultID)
	if err != nil {
		return nil, err
	}
	if len(caller) == 0 || !state.Admin.Equals(caller) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin signature required")
	}
	return state, nil
}

// add returns a + b or ErrOverflow.
func add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, b)
	}
	return sum, nil
}
