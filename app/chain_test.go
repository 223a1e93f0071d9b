package app

import (
	"context"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/x/utils"
	"github.com/stretchr/testify/require"
)

// panicHandler panics on every call.
type panicHandler struct{}

func (panicHandler) Check(vault.Context, vault.KVStore, vault.Tx) (*vault.CheckResult, error) {
	panic("check")
}

func (panicHandler) Deliver(vault.Context, vault.KVStore, vault.Tx) (*vault.DeliverResult, error) {
	panic("deliver")
}

func TestChain(t *testing.T) {
	var (
		outer   vaulttest.Decorator
		inner   vaulttest.Decorator
		handler vaulttest.Handler
		skipped *vaulttest.Decorator
	)

	stack := ChainDecorators(
		&outer,
		utils.NewLogging(),
		nil,
		skipped,
	).Chain(
		&inner,
	).WithHandler(&handler)

	ctx := context.Background()
	db := store.MemStore()
	tx := &vaulttest.Tx{}

	_, err := stack.Check(ctx, db, tx)
	require.NoError(t, err)
	_, err = stack.Deliver(ctx, db, tx)
	require.NoError(t, err)

	require.Equal(t, 1, outer.CheckCallCount())
	require.Equal(t, 1, outer.DeliverCallCount())
	require.Equal(t, 2, inner.CallCount())
	require.Equal(t, 2, handler.CallCount())
}

func TestChainStopsOnDecoratorError(t *testing.T) {
	var (
		failing = vaulttest.Decorator{DeliverErr: errors.ErrUnauthorized}
		below   vaulttest.Decorator
		handler vaulttest.Handler
	)
	stack := ChainDecorators(&failing, &below).WithHandler(&handler)

	ctx := context.Background()
	db := store.MemStore()
	tx := &vaulttest.Tx{}

	_, err := stack.Check(ctx, db, tx)
	require.NoError(t, err)
	_, err = stack.Deliver(ctx, db, tx)
	require.True(t, errors.ErrUnauthorized.Is(err))

	require.Equal(t, 1, below.CheckCallCount())
	require.Equal(t, 0, below.DeliverCallCount())
	require.Equal(t, 1, handler.CheckCallCount())
	require.Equal(t, 0, handler.DeliverCallCount())
}

func TestChainRecovery(t *testing.T) {
	var outer vaulttest.Decorator
	stack := ChainDecorators(&outer, utils.NewRecovery()).WithHandler(panicHandler{})

	ctx := context.Background()
	db := store.MemStore()
	tx := &vaulttest.Tx{}

	_, err := stack.Check(ctx, db, tx)
	require.True(t, errors.ErrPanic.Is(err))
	_, err = stack.Deliver(ctx, db, tx)
	require.True(t, errors.ErrPanic.Is(err))

	// the panic is turned into an error before reaching the outer decorator
	require.Equal(t, 2, outer.CallCount())
}

func TestChainDoesNotShareState(t *testing.T) {
	var a, b, c vaulttest.Decorator
	base := ChainDecorators(&a)
	first := base.Chain(&b)
	second := base.Chain(&c)

	require.Len(t, base.chain, 1)
	require.Len(t, first.chain, 2)
	require.Len(t, second.chain, 2)
	require.True(t, first.chain[1] == vault.Decorator(&b))
	require.True(t, second.chain[1] == vault.Decorator(&c))
}
