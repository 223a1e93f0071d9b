package sigs

import (
	"context"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/crypto"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecorator(t *testing.T) {
	const chainID = "vault-decorator"
	ctx := vault.WithChainID(context.Background(), chainID)
	key := crypto.GenPrivKeyEd25519()
	signer := key.PublicKey().Condition()

	calls := map[string]func(vault.KVStore, vault.Tx, *SigCheckHandler) error{
		"check": func(db vault.KVStore, tx vault.Tx, h *SigCheckHandler) error {
			_, err := NewDecorator().Check(ctx, db, tx, h)
			return err
		},
		"deliver": func(db vault.KVStore, tx vault.Tx, h *SigCheckHandler) error {
			_, err := NewDecorator().Deliver(ctx, db, tx, h)
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			h := new(SigCheckHandler)
			tx := NewStdTx([]byte("contribute"))

			err := call(db, tx, h)
			assert.True(t, errors.ErrUnauthorized.Is(err), "unsigned tx")

			err = call(db, &vaulttest.Tx{Msg: &vaulttest.Msg{}}, h)
			assert.True(t, errors.ErrUnauthorized.Is(err), "tx without signature support")

			sig, err := SignTx(key, tx, chainID, 0)
			require.NoError(t, err)
			tx.Signatures = []*StdSignature{sig}
			require.NoError(t, call(db, tx, h))
			assert.Equal(t, []vault.Condition{signer}, h.Signers)

			h.Signers = nil
			err = call(db, tx, h)
			assert.True(t, ErrInvalidSequence.Is(err), "replay")
			assert.Nil(t, h.Signers)
		})
	}
}

func TestDecoratorChargesGas(t *testing.T) {
	const chainID = "vault-gas"
	ctx := vault.WithChainID(context.Background(), chainID)
	tx := NewStdTx([]byte("withdraw"))
	for _, key := range []*crypto.PrivateKey{crypto.GenPrivKeyEd25519(), crypto.GenPrivKeyEd25519()} {
		sig, err := SignTx(key, tx, chainID, 0)
		require.NoError(t, err)
		tx.Signatures = append(tx.Signatures, sig)
	}

	res, err := NewDecorator().Check(ctx, store.MemStore(), tx, new(SigCheckHandler))
	require.NoError(t, err)
	assert.Equal(t, int64(2*signatureVerifyCost), res.GasPayment)
}

func TestAuthenticate(t *testing.T) {
	signer := vaulttest.NewCondition()
	stranger := vaulttest.NewCondition()

	ctx := context.WithValue(context.Background(), signersKey{}, []vault.Condition{signer})
	var auth Authenticate
	assert.True(t, auth.HasAddress(ctx, signer.Address()))
	assert.False(t, auth.HasAddress(ctx, stranger.Address()))
	assert.Nil(t, auth.GetConditions(context.Background()))
}
