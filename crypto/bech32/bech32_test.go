package bech32

import (
	"testing"

	"github.com/iov-one/vault/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	cases := map[string]struct {
		hrp     string
		payload []byte
		encoded string
	}{
		"text payload": {
			hrp:     "vault",
			payload: []byte("donation-vault"),
			encoded: "vault1v3hkuct5d9hkuttkv96kcaq3wg6tz",
		},
		"address": {
			hrp:     "vault",
			payload: []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19},
			encoded: "vault1qqqsyqcyq5rqwzqfpg9scrgwpugpzysn4wc8rq",
		},
		"other prefix": {
			hrp:     "tiov",
			payload: []byte("test-payload"),
			encoded: "tiov1w3jhxapdwpshjmr0v9jqymqq4y",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			raw, err := Encode(tc.hrp, tc.payload)
			require.NoError(t, err)
			assert.Equal(t, tc.encoded, string(raw))

			hrp, payload, err := Decode(tc.encoded)
			require.NoError(t, err)
			assert.Equal(t, tc.hrp, hrp)
			assert.Equal(t, tc.payload, payload)
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	cases := map[string]string{
		"checksum mismatch": "vault1v3hkuct5d9hkuttkv96kcaq3wg6tq",
		"no separator":      "vaultv3hkuct5d9hkuttkv96kcaq3wg6tz",
		"mixed case":        "Vault1v3hkuct5d9hkuttkv96kcaq3wg6tz",
		"empty":             "",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := Decode(raw)
			assert.True(t, errors.ErrInput.Is(err), "got %+v", err)
		})
	}
}
