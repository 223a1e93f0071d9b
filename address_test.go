package vault_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	raw := vault.Address(bytes.Repeat([]byte{0xab}, vault.AddressLength))
	bech, err := raw.Bech32()
	require.NoError(t, err)
	cond := vault.NewCondition("sigs", "ed25519", []byte{0x01, 0x02})

	cases := map[string]struct {
		input   string
		want    vault.Address
		wantErr *errors.Error
	}{
		"plain hex":          {input: raw.String(), want: raw},
		"lower case hex":     {input: "abababababababababababababababababababab", want: raw},
		"prefixed hex":       {input: "hex:" + raw.String(), want: raw},
		"bech32":             {input: bech, want: raw},
		"condition":          {input: "cond:" + cond.String(), want: cond.Address()},
		"empty":              {input: "", want: nil},
		"empty hex":          {input: "hex:", want: nil},
		"empty condition":    {input: "cond:", want: nil},
		"short hex":          {input: "abab", wantErr: errors.ErrInput},
		"not hex":            {input: "donor", wantErr: errors.ErrInput},
		"broken bech32":      {input: bech + "q", wantErr: errors.ErrInput},
		"malformed cond":     {input: "cond:sigs/0102", wantErr: errors.ErrInput},
		"invalid cond parts": {input: "cond:s/ed25519/0102", wantErr: errors.ErrInput},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := vault.ParseAddress(tc.input)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %v error, got %+v", tc.wantErr, err)
			}
			if err == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestAddressJSON(t *testing.T) {
	addr := vault.NewAddress([]byte("donor"))

	raw, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.Equal(t, `"`+addr.String()+`"`, string(raw))

	var got vault.Address
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.True(t, addr.Equals(got))

	err = json.Unmarshal([]byte(`"0102"`), &got)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestAddressString(t *testing.T) {
	assert.Equal(t, "(nil)", vault.Address(nil).String())
	assert.Equal(t, "0AFF", vault.Address{0x0a, 0xff}.String())

	bech, err := vault.NewAddress([]byte("admin")).Bech32()
	require.NoError(t, err)
	assert.Equal(t, "vault1", bech[:6])
}
