package vaulttest

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/crypto"
)

// NewKey returns a new random ed25519 private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the signature condition of a new random key.
func NewCondition() vault.Condition {
	return NewKey().PublicKey().Condition()
}
