package vault

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/iov-one/vault/crypto/bech32"
	"github.com/iov-one/vault/errors"
)

var (
	// AddressLength is the size of every address. It must not change
	// once a store holds addresses.
	AddressLength = 20

	// AddressHRP is the bech32 human readable part.
	AddressHRP = "vault"
)

// Address identifies an account. It is the truncated sha256 digest of the
// condition that controls it.
type Address []byte

func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	sum := sha256.Sum256(data)
	return Address(sum[:AddressLength])
}

// ParseAddress reads an address in one of the supported notations:
// bech32 ("vault1..."), hex with an optional "hex:" prefix, or a
// condition prefixed with "cond:".
func ParseAddress(s string) (Address, error) {
	var a Address
	if err := a.parseString(s); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Address) parseString(s string) error {
	var raw []byte
	switch {
	case s == "" || s == "hex:" || s == "cond:":
		*a = nil
		return nil
	case strings.HasPrefix(s, "cond:"):
		var c Condition
		if err := c.parseString(s[len("cond:"):]); err != nil {
			return err
		}
		if err := c.Validate(); err != nil {
			return err
		}
		raw = c.Address()
	case strings.HasPrefix(s, AddressHRP+"1"):
		_, payload, err := bech32.Decode(s)
		if err != nil {
			return errors.Wrapf(errors.ErrInput, "bech32 address: %s", err)
		}
		raw = payload
	default:
		b, err := hex.DecodeString(strings.TrimPrefix(s, "hex:"))
		if err != nil {
			return errors.Wrapf(errors.ErrInput, "hex address: %s", err)
		}
		raw = b
	}

	addr := Address(raw)
	if err := addr.Validate(); err != nil {
		return err
	}
	*a = addr
	return nil
}

func (a Address) Equals(other Address) bool {
	return bytes.Equal(a, other)
}

// String returns upper case hex, or "(nil)" for an empty address.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Bech32 returns the address with the AddressHRP prefix.
func (a Address) Bech32() (string, error) {
	enc, err := bech32.Encode(AddressHRP, a)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "bech32: %s", err)
	}
	return string(enc), nil
}

func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInput, "address must be %d bytes, got %d", AddressLength, len(a))
	}
	return nil
}

// MarshalJSON uses upper case hex instead of base64.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToUpper(hex.EncodeToString(a)))
}

func (a *Address) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, "address must be a string")
	}
	return a.parseString(s)
}
