package x

import (
	"context"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiAuth(t *testing.T) {
	a := vaulttest.NewCondition()
	b := vaulttest.NewCondition()
	c := vaulttest.NewCondition()

	foo := &vaulttest.CtxAuth{Key: "foo"}
	bar := &vaulttest.CtxAuth{Key: "bar"}
	signed := foo.SetConditions(context.Background(), b, a)

	cases := map[string]struct {
		auth    Authenticator
		want    []vault.Condition
		missing vault.Condition
	}{
		"nothing signed": {
			auth:    ChainAuth(&vaulttest.Auth{}, bar),
			missing: a,
		},
		"single authenticator": {
			auth:    ChainAuth(foo),
			want:    []vault.Condition{b, a},
			missing: c,
		},
		"chain order is kept": {
			auth:    ChainAuth(&vaulttest.Auth{Signer: c}, foo),
			want:    []vault.Condition{c, b, a},
			missing: vaulttest.NewCondition(),
		},
		"duplicates are reported once": {
			auth:    ChainAuth(foo, &vaulttest.Auth{Signers: []vault.Condition{a, c, b}}),
			want:    []vault.Condition{b, a, c},
			missing: vaulttest.NewCondition(),
		},
		"context key mismatch": {
			auth:    ChainAuth(bar),
			missing: b,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := tc.auth.GetConditions(signed)
			assert.Equal(t, tc.want, got)
			for _, cond := range tc.want {
				assert.True(t, tc.auth.HasAddress(signed, cond.Address()))
			}
			assert.False(t, tc.auth.HasAddress(signed, tc.missing.Address()))

			if len(tc.want) == 0 {
				assert.Nil(t, MainSigner(signed, tc.auth))
			} else {
				assert.Equal(t, tc.want[0], MainSigner(signed, tc.auth))
			}
		})
	}
}

func TestMainSignerAddress(t *testing.T) {
	a := vaulttest.NewCondition()

	addr, err := MainSignerAddress(context.Background(), &vaulttest.Auth{Signer: a})
	require.NoError(t, err)
	assert.Equal(t, a.Address(), addr)

	_, err = MainSignerAddress(context.Background(), &vaulttest.Auth{})
	assert.True(t, errors.ErrUnauthorized.Is(err))
}
