package sigs

import (
	"testing"

	"github.com/iov-one/vault/crypto"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSignBytes(t *testing.T) {
	const chainID = "vault-sign-test"
	payload := []byte("contribute main 1000000")

	base, err := BuildSignBytes(payload, chainID, 7)
	require.NoError(t, err)
	assert.Len(t, base, 64)

	again, err := BuildSignBytes(payload, chainID, 7)
	require.NoError(t, err)
	assert.Equal(t, base, again)

	variants := map[string]struct {
		payload []byte
		chainID string
		seq     int64
	}{
		"other payload":  {payload: []byte("contribute main 1000001"), chainID: chainID, seq: 7},
		"other chain":    {payload: payload, chainID: chainID + "x", seq: 7},
		"other sequence": {payload: payload, chainID: chainID, seq: 8},
	}
	for name, v := range variants {
		t.Run(name, func(t *testing.T) {
			got, err := BuildSignBytes(v.payload, v.chainID, v.seq)
			require.NoError(t, err)
			assert.NotEqual(t, base, got)
		})
	}

	_, err = BuildSignBytes(payload, chainID, -1)
	assert.True(t, ErrInvalidSequence.Is(err))
	_, err = BuildSignBytes(payload, "no", 0)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestVerifySignature(t *testing.T) {
	const chainID = "vault-verify-test"
	db := store.MemStore()
	key := crypto.GenPrivKeyEd25519()
	payload := []byte("withdraw main")
	tx := NewStdTx(payload)

	sign := func(seq int64) *StdSignature {
		sig, err := SignTx(key, tx, chainID, seq)
		require.NoError(t, err)
		return sig
	}

	// Ed25519 signatures are deterministic.
	assert.Equal(t, sign(3), sign(3))

	cases := []struct {
		name    string
		sig     *StdSignature
		chainID string
		wantErr *errors.Error
	}{
		{"sequence must start at zero", sign(1), chainID, ErrInvalidSequence},
		{"empty signature", &StdSignature{}, chainID, errors.ErrUnauthorized},
		{"first signature", sign(0), chainID, nil},
		{"replay", sign(0), chainID, ErrInvalidSequence},
		{"next signature", sign(1), chainID, nil},
		{"gap", sign(5), chainID, ErrInvalidSequence},
		{"other chain", sign(2), "vault-other-chain", errors.ErrUnauthorized},
		{"after failures the sequence is unchanged", sign(2), chainID, nil},
	}
	// Steps depend on each other, so they run in order.
	for _, tc := range cases {
		cond, err := verifySignature(db, tc.sig, payload, tc.chainID)
		if !tc.wantErr.Is(err) {
			t.Fatalf("%s: want %v error, got %+v", tc.name, tc.wantErr, err)
		}
		if err == nil {
			assert.Equal(t, key.PublicKey().Condition(), cond, tc.name)
		}
	}

	nonce, err := NextNonce(db, key.PublicKey().Address())
	require.NoError(t, err)
	assert.Equal(t, int64(3), nonce)

	nonce, err = NextNonce(db, crypto.GenPrivKeyEd25519().PublicKey().Address())
	require.NoError(t, err)
	assert.Equal(t, int64(0), nonce)

	forged := sign(3)
	forged.Signature.Ed25519[0] ^= 0xff
	_, err = verifySignature(db, forged, payload, chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestVerifySignatures(t *testing.T) {
	const chainID = "vault-multi-test"
	db := store.MemStore()
	alice := crypto.GenPrivKeyEd25519()
	bert := crypto.GenPrivKeyEd25519()

	tx := NewStdTx([]byte("update admin"))
	other := NewStdTx([]byte("pause"))

	signers, err := verifySignatures(db, tx, chainID)
	require.NoError(t, err)
	assert.Empty(t, signers)

	wrongTx, err := SignTx(alice, other, chainID, 0)
	require.NoError(t, err)
	tx.Signatures = []*StdSignature{wrongTx}
	_, err = verifySignatures(db, tx, chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	a0, err := SignTx(alice, tx, chainID, 0)
	require.NoError(t, err)
	b0, err := SignTx(bert, tx, chainID, 0)
	require.NoError(t, err)
	tx.Signatures = []*StdSignature{a0, b0}
	signers, err = verifySignatures(db, tx, chainID)
	require.NoError(t, err)
	assert.Equal(t, alice.PublicKey().Condition(), signers[0])
	assert.Equal(t, bert.PublicKey().Condition(), signers[1])

	// The whole set is replayed, the first signature already fails.
	_, err = verifySignatures(db, tx, chainID)
	assert.True(t, ErrInvalidSequence.Is(err))
}
