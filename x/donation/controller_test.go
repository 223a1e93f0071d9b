package donation

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
)

const testVault = "main"

var blockTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	ctx   vault.Context
	db    vault.CacheableKVStore
	ctrl  *Controller
	admin vault.Address
}

// newFixture returns a vault initialized with min=1_000_000 and
// max=100_000_000_000.
func newFixture(t testing.TB) *fixture {
	t.Helper()
	f := &fixture{
		ctx:   vault.WithBlockTime(context.Background(), blockTime),
		db:    store.MemStore(),
		ctrl:  NewController(NoReserve{}, NewEventLog()),
		admin: vaulttest.NewCondition().Address(),
	}
	if _, err := f.ctrl.Initialize(f.ctx, f.db, f.admin, testVault, 1000000, 100000000000); err != nil {
		t.Fatalf("cannot initialize: %s", err)
	}
	return f
}

func (f *fixture) state(t testing.TB) *State {
	t.Helper()
	s, err := f.ctrl.states.GetState(f.db, testVault)
	if err != nil {
		t.Fatalf("cannot load state: %s", err)
	}
	return s
}

// raw returns the stored bytes of the vault state and of the contributor
// entry, for byte to byte comparison.
func (f *fixture) raw(t testing.TB, owner vault.Address) ([]byte, []byte) {
	t.Helper()
	s, err := f.db.Get([]byte(stateBucketName + ":" + testVault))
	if err != nil {
		t.Fatalf("cannot read state: %s", err)
	}
	c, err := f.db.Get(append([]byte(contributorBucketName+":"), contributorKey(testVault, owner)...))
	if err != nil {
		t.Fatalf("cannot read contributor: %s", err)
	}
	return s, c
}

func TestScenarioFirstContribution(t *testing.T) {
	f := newFixture(t)
	alice := vaulttest.NewCondition().Address()

	_, err := f.ctrl.Contribute(f.ctx, f.db, alice, testVault, 1000000)
	assert.Nil(t, err)

	entry, err := f.ctrl.Contributor(f.db, testVault, alice)
	assert.Nil(t, err)
	assert.Equal(t, Bronze, entry.Tier)
	assert.Equal(t, Classify(entry.TotalContributed), entry.Tier)
	assert.Equal(t, uint64(1), entry.ContributionCount)
	assert.Equal(t, vault.AsUnixTime(blockTime), entry.FirstContributionTime)
	assert.Equal(t, vault.AsUnixTime(blockTime), entry.LastContributionTime)

	s := f.state(t)
	assert.Equal(t, uint64(1000000), s.TotalContributed)
	assert.Equal(t, uint64(1), s.UniqueContributors)
	assert.Equal(t, uint64(1), s.ContributionCount)
}

func TestScenarioSecondContributionUpgradesTier(t *testing.T) {
	f := newFixture(t)
	alice := vaulttest.NewCondition().Address()

	_, err := f.ctrl.Contribute(f.ctx, f.db, alice, testVault, 1000000)
	assert.Nil(t, err)
	later := vault.WithBlockTime(f.ctx, blockTime.Add(time.Hour))
	event, err := f.ctrl.Contribute(later, f.db, alice, testVault, 99000000)
	assert.Nil(t, err)

	entry, err := f.ctrl.Contributor(f.db, testVault, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(100000000), entry.TotalContributed)
	assert.Equal(t, Silver, entry.Tier)
	assert.Equal(t, Classify(entry.TotalContributed), entry.Tier)
	assert.Equal(t, vault.AsUnixTime(blockTime), entry.FirstContributionTime)
	assert.Equal(t, vault.AsUnixTime(blockTime.Add(time.Hour)), entry.LastContributionTime)

	s := f.state(t)
	assert.Equal(t, uint64(2), s.ContributionCount)
	assert.Equal(t, uint64(1), s.UniqueContributors)

	payload, ok := event.Payload().(*ContributedEvent)
	if !ok {
		t.Fatalf("unexpected payload %T", event.Payload())
	}
	assert.Equal(t, uint64(99000000), payload.Amount)
	assert.Equal(t, uint64(100000000), payload.Total)
	assert.Equal(t, Silver, payload.Tier)
}

func TestScenarioContributionTooSmall(t *testing.T) {
	f := newFixture(t)
	alice := vaulttest.NewCondition().Address()

	before := f.state(t)
	_, err := f.ctrl.Contribute(f.ctx, f.db, alice, testVault, 999)
	assert.IsErr(t, ErrTooSmall, err)
	assert.Equal(t, before, f.state(t))

	_, err = f.ctrl.Contributor(f.db, testVault, alice)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestScenarioNonAdminWithdraw(t *testing.T) {
	f := newFixture(t)
	alice := vaulttest.NewCondition().Address()
	_, err := f.ctrl.Contribute(f.ctx, f.db, alice, testVault, 5000000)
	assert.Nil(t, err)

	_, err = f.ctrl.Withdraw(f.ctx, f.db, alice, testVault, nil)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	stats, err := f.ctrl.Stats(f.db, testVault)
	assert.Nil(t, err)
	assert.Equal(t, uint64(5000000), stats.Balance)
	assert.Equal(t, uint64(0), stats.TotalWithdrawn)
}

func TestScenarioPauseAndEmergencyWithdraw(t *testing.T) {
	f := newFixture(t)
	alice := vaulttest.NewCondition().Address()
	bob := vaulttest.NewCondition().Address()
	_, err := f.ctrl.Contribute(f.ctx, f.db, alice, testVault, 7000000)
	assert.Nil(t, err)

	_, err = f.ctrl.Pause(f.ctx, f.db, f.admin, testVault)
	assert.Nil(t, err)

	for _, who := range []vault.Address{alice, bob, f.admin} {
		_, err := f.ctrl.Contribute(f.ctx, f.db, who, testVault, 2000000)
		assert.IsErr(t, ErrPaused, err)
	}
	_, err = f.ctrl.Withdraw(f.ctx, f.db, f.admin, testVault, nil)
	assert.IsErr(t, ErrPaused, err)
	_, err = f.ctrl.WithdrawPartial(f.ctx, f.db, f.admin, testVault, 1, nil)
	assert.IsErr(t, ErrPaused, err)

	event, err := f.ctrl.EmergencyWithdraw(f.ctx, f.db, f.admin, testVault, 0, nil, "")
	assert.Nil(t, err)
	payload, ok := event.Payload().(*EmergencyWithdrawnEvent)
	if !ok {
		t.Fatalf("unexpected payload %T", event.Payload())
	}
	assert.Equal(t, uint64(7000000), payload.Amount)
	assert.Equal(t, defaultReason, payload.Reason)
	assert.Equal(t, f.admin, payload.Recipient)

	s := f.state(t)
	assert.Equal(t, uint64(7000000), s.TotalWithdrawn)
	assert.Equal(t, uint64(0), s.Balance())

	_, err = f.ctrl.Unpause(f.ctx, f.db, f.admin, testVault)
	assert.Nil(t, err)
	_, err = f.ctrl.Contribute(f.ctx, f.db, bob, testVault, 2000000)
	assert.Nil(t, err)
}

func TestInitialize(t *testing.T) {
	admin := vaulttest.NewCondition().Address()

	cases := map[string]struct {
		VaultID string
		Caller  vault.Address
		Min     uint64
		Max     uint64
		WantErr *errors.Error
	}{
		"success": {
			VaultID: "main",
			Caller:  admin,
			Min:     1,
			Max:     2,
		},
		"zero minimum": {
			VaultID: "main",
			Caller:  admin,
			Min:     0,
			Max:     10,
			WantErr: errors.ErrAmount,
		},
		"maximum equal to minimum": {
			VaultID: "main",
			Caller:  admin,
			Min:     10,
			Max:     10,
			WantErr: errors.ErrAmount,
		},
		"maximum below minimum": {
			VaultID: "main",
			Caller:  admin,
			Min:     10,
			Max:     9,
			WantErr: errors.ErrAmount,
		},
		"invalid vault id": {
			VaultID: "a:b",
			Caller:  admin,
			Min:     1,
			Max:     2,
			WantErr: errors.ErrInput,
		},
		"missing caller": {
			VaultID: "main",
			Min:     1,
			Max:     2,
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController(nil, nil)
			event, err := ctrl.Initialize(context.Background(), db, tc.Caller, tc.VaultID, tc.Min, tc.Max)
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.WantErr != nil {
				return
			}
			assert.Equal(t, KindInitialized, event.Kind())
			s, err := ctrl.states.GetState(db, tc.VaultID)
			assert.Nil(t, err)
			assert.Equal(t, &State{Admin: tc.Caller, MinAmount: tc.Min, MaxAmount: tc.Max}, s)
		})
	}
}

func TestInitializeOnlyOnce(t *testing.T) {
	f := newFixture(t)
	before, _ := f.raw(t, nil)

	for _, caller := range []vault.Address{f.admin, vaulttest.NewCondition().Address()} {
		_, err := f.ctrl.Initialize(f.ctx, f.db, caller, testVault, 5, 50)
		assert.IsErr(t, ErrAlreadyInitialized, err)
		// Invalid limits do not change the outcome.
		_, err = f.ctrl.Initialize(f.ctx, f.db, caller, testVault, 0, 0)
		assert.IsErr(t, ErrAlreadyInitialized, err)
	}

	after, _ := f.raw(t, nil)
	if !bytes.Equal(before, after) {
		t.Fatal("state was modified")
	}

	// Other vaults are independent.
	_, err := f.ctrl.Initialize(f.ctx, f.db, f.admin, "second", 5, 50)
	assert.Nil(t, err)
}

func TestNotInitialized(t *testing.T) {
	ctx := vault.WithBlockTime(context.Background(), blockTime)
	db := store.MemStore()
	ctrl := NewController(nil, nil)
	caller := vaulttest.NewCondition().Address()

	_, err := ctrl.Contribute(ctx, db, caller, "nope", 10)
	assert.IsErr(t, ErrNotInitialized, err)
	_, err = ctrl.Withdraw(ctx, db, caller, "nope", nil)
	assert.IsErr(t, ErrNotInitialized, err)
	_, err = ctrl.EmergencyWithdraw(ctx, db, caller, "nope", 0, nil, "")
	assert.IsErr(t, ErrNotInitialized, err)
	_, err = ctrl.Pause(ctx, db, caller, "nope")
	assert.IsErr(t, ErrNotInitialized, err)
	assert.IsErr(t, ErrNotInitialized, ctrl.UpdateAdmin(ctx, db, caller, "nope", caller))
	_, err = ctrl.UpdateLimits(ctx, db, caller, "nope", 1, 2)
	assert.IsErr(t, ErrNotInitialized, err)
	_, err = ctrl.Stats(db, "nope")
	assert.IsErr(t, ErrNotInitialized, err)
}

func TestContributeChecksOrder(t *testing.T) {
	alice := vaulttest.NewCondition().Address()

	cases := map[string]struct {
		Paused  bool
		Amount  uint64
		WantErr *errors.Error
	}{
		"paused wins over too small": {
			Paused:  true,
			Amount:  1,
			WantErr: ErrPaused,
		},
		"paused wins over too large": {
			Paused:  true,
			Amount:  200000000000,
			WantErr: ErrPaused,
		},
		"zero amount is too small": {
			Amount:  0,
			WantErr: ErrTooSmall,
		},
		"too large": {
			Amount:  100000000001,
			WantErr: ErrTooLarge,
		},
		"minimum is inclusive": {
			Amount: 1000000,
		},
		"maximum is inclusive": {
			Amount: 100000000000,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t)
			if tc.Paused {
				_, err := f.ctrl.Pause(f.ctx, f.db, f.admin, testVault)
				assert.Nil(t, err)
			}
			stateBefore, entryBefore := f.raw(t, alice)
			_, err := f.ctrl.Contribute(f.ctx, f.db, alice, testVault, tc.Amount)
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.WantErr != nil {
				stateAfter, entryAfter := f.raw(t, alice)
				if !bytes.Equal(stateBefore, stateAfter) || !bytes.Equal(entryBefore, entryAfter) {
					t.Fatal("failed contribution modified the state")
				}
			}
		})
	}
}

func TestContributeOverflowIsAtomic(t *testing.T) {
	f := newFixture(t)
	alice := vaulttest.NewCondition().Address()
	bob := vaulttest.NewCondition().Address()

	_, err := f.ctrl.UpdateLimits(f.ctx, f.db, f.admin, testVault, 1, ^uint64(0))
	assert.Nil(t, err)
	_, err = f.ctrl.Contribute(f.ctx, f.db, alice, testVault, ^uint64(0)-10)
	assert.Nil(t, err)

	// The vault total would overflow even though bob is a new contributor.
	stateBefore, entryBefore := f.raw(t, bob)
	_, err = f.ctrl.Contribute(f.ctx, f.db, bob, testVault, 11)
	assert.IsErr(t, errors.ErrOverflow, err)
	stateAfter, entryAfter := f.raw(t, bob)
	if !bytes.Equal(stateBefore, stateAfter) {
		t.Fatal("state modified")
	}
	assert.Nil(t, entryBefore)
	assert.Nil(t, entryAfter)

	// The contributor total overflows as well.
	stateBefore, entryBefore = f.raw(t, alice)
	_, err = f.ctrl.Contribute(f.ctx, f.db, alice, testVault, 11)
	assert.IsErr(t, errors.ErrOverflow, err)
	stateAfter, entryAfter = f.raw(t, alice)
	if !bytes.Equal(stateBefore, stateAfter) || !bytes.Equal(entryBefore, entryAfter) {
		t.Fatal("state modified")
	}
}

func TestContributeRequiresBlockTime(t *testing.T) {
	f := newFixture(t)
	_, err := f.ctrl.Contribute(context.Background(), f.db, vaulttest.NewCondition().Address(), testVault, 1000000)
	assert.IsErr(t, errors.ErrHuman, err)
}

func TestUniqueContributors(t *testing.T) {
	f := newFixture(t)
	alice := vaulttest.NewCondition().Address()
	bob := vaulttest.NewCondition().Address()

	for _, who := range []vault.Address{alice, bob, alice, alice, bob} {
		_, err := f.ctrl.Contribute(f.ctx, f.db, who, testVault, 2000000)
		assert.Nil(t, err)
	}

	s := f.state(t)
	assert.Equal(t, uint64(5), s.ContributionCount)
	assert.Equal(t, uint64(2), s.UniqueContributors)
	assert.Equal(t, uint64(10000000), s.TotalContributed)

	all, err := f.ctrl.Contributors(f.db, testVault)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(all))
	var sum uint64
	for _, c := range all {
		sum += c.TotalContributed
		assert.Equal(t, Classify(c.TotalContributed), c.Tier)
	}
	assert.Equal(t, s.TotalContributed, sum)
}

func TestWithdraw(t *testing.T) {
	recipient := vaulttest.NewCondition().Address()

	cases := map[string]struct {
		// Withdraw is called with the fixture, after a contribution of
		// 10_000_000 was made.
		Withdraw      func(f *fixture) (*Event, error)
		Reserve       Reserve
		WantErr       *errors.Error
		WantKind      string
		WantAmount    uint64
		WantRecipient func(f *fixture) vault.Address
	}{
		"withdraw everything": {
			Withdraw: func(f *fixture) (*Event, error) {
				return f.ctrl.Withdraw(f.ctx, f.db, f.admin, testVault, nil)
			},
			WantKind:      KindWithdrawn,
			WantAmount:    10000000,
			WantRecipient: func(f *fixture) vault.Address { return f.admin },
		},
		"withdraw everything to a recipient": {
			Withdraw: func(f *fixture) (*Event, error) {
				return f.ctrl.Withdraw(f.ctx, f.db, f.admin, testVault, recipient)
			},
			WantKind:      KindWithdrawn,
			WantAmount:    10000000,
			WantRecipient: func(*fixture) vault.Address { return recipient },
		},
		"withdraw everything above the reserve": {
			Withdraw: func(f *fixture) (*Event, error) {
				return f.ctrl.Withdraw(f.ctx, f.db, f.admin, testVault, nil)
			},
			Reserve:       MinimumReserve(4000000),
			WantKind:      KindWithdrawn,
			WantAmount:    6000000,
			WantRecipient: func(f *fixture) vault.Address { return f.admin },
		},
		"nothing available": {
			Withdraw: func(f *fixture) (*Event, error) {
				return f.ctrl.Withdraw(f.ctx, f.db, f.admin, testVault, nil)
			},
			Reserve: MinimumReserve(10000000),
			WantErr: errors.ErrInsufficientAmount,
		},
		"partial": {
			Withdraw: func(f *fixture) (*Event, error) {
				return f.ctrl.WithdrawPartial(f.ctx, f.db, f.admin, testVault, 2500000, nil)
			},
			WantKind:      KindWithdrawn,
			WantAmount:    2500000,
			WantRecipient: func(f *fixture) vault.Address { return f.admin },
		},
		"partial of zero": {
			Withdraw: func(f *fixture) (*Event, error) {
				return f.ctrl.WithdrawPartial(f.ctx, f.db, f.admin, testVault, 0, nil)
			},
			WantErr: errors.ErrAmount,
		},
		"partial above balance": {
			Withdraw: func(f *fixture) (*Event, error) {
				return f.ctrl.WithdrawPartial(f.ctx, f.db, f.admin, testVault, 10000001, nil)
			},
			WantErr: errors.ErrInsufficientAmount,
		},
		"partial above available": {
			Withdraw: func(f *fixture) (*Event, error) {
				return f.ctrl.WithdrawPartial(f.ctx, f.db, f.admin, testVault, 9000000, nil)
			},
			Reserve: MinimumReserve(1000001),
			WantErr: errors.ErrInsufficientAmount,
		},
		"partial by non admin": {
			Withdraw: func(f *fixture) (*Event, error) {
				return f.ctrl.WithdrawPartial(f.ctx, f.db, recipient, testVault, 0, nil)
			},
			WantErr: errors.ErrUnauthorized,
		},
		"emergency of an amount": {
			Withdraw: func(f *fixture) (*Event, error) {
				return f.ctrl.EmergencyWithdraw(f.ctx, f.db, f.admin, testVault, 3, recipient, "hack")
			},
			WantKind:      KindEmergencyWithdrawn,
			WantAmount:    3,
			WantRecipient: func(*fixture) vault.Address { return recipient },
		},
		"emergency by non admin": {
			Withdraw: func(f *fixture) (*Event, error) {
				return f.ctrl.EmergencyWithdraw(f.ctx, f.db, recipient, testVault, 0, nil, "")
			},
			WantErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t)
			if tc.Reserve != nil {
				f.ctrl.reserve = tc.Reserve
			}
			_, err := f.ctrl.Contribute(f.ctx, f.db, vaulttest.NewCondition().Address(), testVault, 10000000)
			assert.Nil(t, err)

			before, _ := f.raw(t, nil)
			event, err := tc.Withdraw(f)
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.WantErr != nil {
				after, _ := f.raw(t, nil)
				if !bytes.Equal(before, after) {
					t.Fatal("failed withdrawal modified the state")
				}
				return
			}

			assert.Equal(t, tc.WantKind, event.Kind())
			switch p := event.Payload().(type) {
			case *WithdrawnEvent:
				assert.Equal(t, tc.WantAmount, p.Amount)
				assert.Equal(t, tc.WantRecipient(f), p.Recipient)
			case *EmergencyWithdrawnEvent:
				assert.Equal(t, tc.WantAmount, p.Amount)
				assert.Equal(t, tc.WantRecipient(f), p.Recipient)
			default:
				t.Fatalf("unexpected payload %T", event.Payload())
			}

			s := f.state(t)
			assert.Equal(t, tc.WantAmount, s.TotalWithdrawn)
			if s.TotalWithdrawn > s.TotalContributed {
				t.Fatal("withdrawn more than contributed")
			}
		})
	}
}

func TestConservation(t *testing.T) {
	f := newFixture(t)
	alice := vaulttest.NewCondition().Address()

	steps := []func() error{
		func() error { _, err := f.ctrl.Contribute(f.ctx, f.db, alice, testVault, 3000000); return err },
		func() error {
			_, err := f.ctrl.WithdrawPartial(f.ctx, f.db, f.admin, testVault, 1000000, nil)
			return err
		},
		func() error { _, err := f.ctrl.Withdraw(f.ctx, f.db, f.admin, testVault, nil); return err },
		func() error { _, err := f.ctrl.Withdraw(f.ctx, f.db, f.admin, testVault, nil); return err },
		func() error { _, err := f.ctrl.Contribute(f.ctx, f.db, alice, testVault, 1500000); return err },
		func() error {
			_, err := f.ctrl.EmergencyWithdraw(f.ctx, f.db, f.admin, testVault, 1500001, nil, "")
			return err
		},
		func() error {
			_, err := f.ctrl.EmergencyWithdraw(f.ctx, f.db, f.admin, testVault, 0, nil, "")
			return err
		},
	}
	for i, step := range steps {
		// Failures are expected for some steps, the invariant must hold
		// regardless.
		_ = step()
		s := f.state(t)
		if s.TotalWithdrawn > s.TotalContributed {
			t.Fatalf("step %d: withdrawn %d > contributed %d", i, s.TotalWithdrawn, s.TotalContributed)
		}
	}
	s := f.state(t)
	assert.Equal(t, uint64(4500000), s.TotalContributed)
	assert.Equal(t, uint64(4500000), s.TotalWithdrawn)
}

func TestPauseUnpause(t *testing.T) {
	f := newFixture(t)
	stranger := vaulttest.NewCondition().Address()

	_, err := f.ctrl.Unpause(f.ctx, f.db, f.admin, testVault)
	assert.IsErr(t, ErrNotPaused, err)
	_, err = f.ctrl.Pause(f.ctx, f.db, stranger, testVault)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	event, err := f.ctrl.Pause(f.ctx, f.db, f.admin, testVault)
	assert.Nil(t, err)
	assert.Equal(t, &PauseChangedEvent{Admin: f.admin, Paused: true}, event.Payload())
	assert.Equal(t, true, f.state(t).Paused)

	_, err = f.ctrl.Pause(f.ctx, f.db, f.admin, testVault)
	assert.IsErr(t, ErrAlreadyPaused, err)
	_, err = f.ctrl.Unpause(f.ctx, f.db, stranger, testVault)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	event, err = f.ctrl.Unpause(f.ctx, f.db, f.admin, testVault)
	assert.Nil(t, err)
	assert.Equal(t, &PauseChangedEvent{Admin: f.admin, Paused: false}, event.Payload())
	assert.Equal(t, false, f.state(t).Paused)
}

func TestUpdateAdmin(t *testing.T) {
	f := newFixture(t)
	next := vaulttest.NewCondition().Address()

	assert.IsErr(t, errors.ErrUnauthorized, f.ctrl.UpdateAdmin(f.ctx, f.db, next, testVault, next))
	assert.IsErr(t, errors.ErrInput, f.ctrl.UpdateAdmin(f.ctx, f.db, f.admin, testVault, vault.Address("short")))

	before := f.state(t)
	latest, err := f.ctrl.events.(*EventLog).Latest(f.db, testVault)
	assert.Nil(t, err)

	assert.Nil(t, f.ctrl.UpdateAdmin(f.ctx, f.db, f.admin, testVault, next))

	after := f.state(t)
	assert.Equal(t, next, after.Admin)
	after.Admin = before.Admin
	assert.Equal(t, before, after)

	// No event is emitted.
	latestAfter, err := f.ctrl.events.(*EventLog).Latest(f.db, testVault)
	assert.Nil(t, err)
	assert.Equal(t, latest, latestAfter)

	// The previous admin lost the privilege immediately.
	_, err = f.ctrl.Pause(f.ctx, f.db, f.admin, testVault)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = f.ctrl.Pause(f.ctx, f.db, next, testVault)
	assert.Nil(t, err)
}

func TestUpdateLimits(t *testing.T) {
	f := newFixture(t)
	stranger := vaulttest.NewCondition().Address()

	_, err := f.ctrl.UpdateLimits(f.ctx, f.db, stranger, testVault, 5, 10)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = f.ctrl.UpdateLimits(f.ctx, f.db, f.admin, testVault, 0, 10)
	assert.IsErr(t, errors.ErrAmount, err)
	_, err = f.ctrl.UpdateLimits(f.ctx, f.db, f.admin, testVault, 10, 10)
	assert.IsErr(t, errors.ErrAmount, err)

	event, err := f.ctrl.UpdateLimits(f.ctx, f.db, f.admin, testVault, 5, 10)
	assert.Nil(t, err)
	assert.Equal(t, &LimitsUpdatedEvent{
		Admin:        f.admin,
		OldMinAmount: 1000000,
		OldMaxAmount: 100000000000,
		NewMinAmount: 5,
		NewMaxAmount: 10,
	}, event.Payload())

	s := f.state(t)
	assert.Equal(t, uint64(5), s.MinAmount)
	assert.Equal(t, uint64(10), s.MaxAmount)

	_, err = f.ctrl.Contribute(f.ctx, f.db, stranger, testVault, 11)
	assert.IsErr(t, ErrTooLarge, err)
	_, err = f.ctrl.Contribute(f.ctx, f.db, stranger, testVault, 5)
	assert.Nil(t, err)
}

func TestConfiguredThresholds(t *testing.T) {
	f := newFixture(t)
	alice := vaulttest.NewCondition().Address()

	conf := Configuration{
		Owner:      f.admin,
		Thresholds: Thresholds{Bronze: 1, Silver: 2000000, Gold: 3000000, Platinum: 4000000},
	}
	if err := conf.Validate(); err != nil {
		t.Fatalf("invalid configuration: %s", err)
	}
	raw, err := conf.Marshal()
	assert.Nil(t, err)
	assert.Nil(t, f.db.Set([]byte("_c:"+configurationPkg), raw))

	event, err := f.ctrl.Contribute(f.ctx, f.db, alice, testVault, 3000000)
	assert.Nil(t, err)
	assert.Equal(t, Gold, event.Payload().(*ContributedEvent).Tier)
}

func TestTierIsNeverLowered(t *testing.T) {
	f := newFixture(t)
	alice := vaulttest.NewCondition().Address()

	setThresholds := func(th Thresholds) {
		t.Helper()
		raw, err := (&Configuration{Owner: f.admin, Thresholds: th}).Marshal()
		assert.Nil(t, err)
		assert.Nil(t, f.db.Set([]byte("_c:"+configurationPkg), raw))
	}

	setThresholds(Thresholds{Bronze: 1, Silver: 2000000, Gold: 3000000, Platinum: 4000000})
	_, err := f.ctrl.Contribute(f.ctx, f.db, alice, testVault, 3000000)
	assert.Nil(t, err)

	// The stored value is rewritten directly, bypassing the update
	// handler that refuses it.
	setThresholds(DefaultThresholds)
	event, err := f.ctrl.Contribute(f.ctx, f.db, alice, testVault, 1000000)
	assert.Nil(t, err)
	assert.Equal(t, Gold, event.Payload().(*ContributedEvent).Tier)

	entry, err := f.ctrl.Contributor(f.db, testVault, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(4000000), entry.TotalContributed)
	assert.Equal(t, Gold, entry.Tier)
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	f.ctrl.reserve = MinimumReserve(500000)
	alice := vaulttest.NewCondition().Address()
	_, err := f.ctrl.Contribute(f.ctx, f.db, alice, testVault, 2000000)
	assert.Nil(t, err)
	_, err = f.ctrl.WithdrawPartial(f.ctx, f.db, f.admin, testVault, 1000000, nil)
	assert.Nil(t, err)

	before, _ := f.raw(t, alice)
	stats, err := f.ctrl.Stats(f.db, testVault)
	assert.Nil(t, err)
	after, _ := f.raw(t, alice)
	if !bytes.Equal(before, after) {
		t.Fatal("stats modified the state")
	}

	assert.Equal(t, &Stats{
		VaultID:            testVault,
		Admin:              f.admin,
		TotalContributed:   2000000,
		TotalWithdrawn:     1000000,
		Balance:            1000000,
		Available:          500000,
		ContributionCount:  1,
		UniqueContributors: 1,
		MinAmount:          1000000,
		MaxAmount:          100000000000,
		Paused:             false,
	}, stats)
}
