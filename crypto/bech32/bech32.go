/*
Package bech32 converts addresses to and from their human readable bech32
form, for example "vault1qqqsyqcyq5rqwzqfpg9scrgwpugpzysn4wc8rq".
*/
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/vault/errors"
)

// Decode returns the human readable part and the 8 bit payload of raw.
// Malformed input is ErrInput.
func Decode(raw string) (hrp string, payload []byte, err error) {
	hrp, data, err := bech32.Decode(raw)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	if payload, err = bech32.ConvertBits(data, 5, 8, false); err != nil {
		return "", nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return hrp, payload, nil
}

// Encode is the inverse of Decode.
func Encode(hrp string, payload []byte) ([]byte, error) {
	data, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	raw, err := bech32.Encode(hrp, data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return []byte(raw), nil
}
