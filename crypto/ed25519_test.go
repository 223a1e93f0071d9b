package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/iov-one/vault/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// First test vector of RFC 8032, section 7.1.
func TestEd25519KnownVector(t *testing.T) {
	seed := mustHex(t, "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	pub := mustHex(t, "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a")
	sig := mustHex(t, "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b")

	key := PrivKeyEd25519FromSeed(seed)
	assert.Equal(t, pub, key.PublicKey().Ed25519)

	got, err := key.Sign(nil)
	require.NoError(t, err)
	assert.Equal(t, sig, got.Ed25519)
	assert.True(t, key.PublicKey().Verify(nil, got))
}

func TestEd25519Verify(t *testing.T) {
	key := GenPrivKeyEd25519()
	msg := []byte("deposit 100")
	sig, err := key.Sign(msg)
	require.NoError(t, err)

	cases := map[string]struct {
		pub  *PublicKey
		msg  []byte
		sig  *Signature
		want bool
	}{
		"valid":           {pub: key.PublicKey(), msg: msg, sig: sig, want: true},
		"other message":   {pub: key.PublicKey(), msg: []byte("deposit 101"), sig: sig},
		"other key":       {pub: GenPrivKeyEd25519().PublicKey(), msg: msg, sig: sig},
		"empty signature": {pub: key.PublicKey(), msg: msg, sig: &Signature{}},
		"nil signature":   {pub: key.PublicKey(), msg: msg},
		"nil key":         {msg: msg, sig: sig},
		"truncated key":   {pub: &PublicKey{Ed25519: key.PublicKey().Ed25519[:16]}, msg: msg, sig: sig},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.pub.Verify(tc.msg, tc.sig))
		})
	}
}

func TestEd25519Condition(t *testing.T) {
	a := GenPrivKeyEd25519().PublicKey()
	b := GenPrivKeyEd25519().PublicKey()

	require.NoError(t, a.Condition().Validate())
	require.NoError(t, a.Address().Validate())
	assert.False(t, a.Condition().Equals(b.Condition()))
	assert.False(t, a.Address().Equals(b.Address()))
	assert.Nil(t, (&PublicKey{}).Condition())
}

func TestInvalidPrivateKey(t *testing.T) {
	for name, key := range map[string]*PrivateKey{
		"nil":       nil,
		"empty":     {},
		"too short": {Ed25519: make([]byte, 32)},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := key.Sign([]byte("x"))
			assert.True(t, errors.ErrInput.Is(err))
			assert.Nil(t, key.PublicKey())
		})
	}
}

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
