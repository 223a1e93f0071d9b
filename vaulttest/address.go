package vaulttest

import (
	"crypto/rand"
	"testing"

	"github.com/iov-one/vault"
)

// RandomAddr returns a new random address.
func RandomAddr(t testing.TB) vault.Address {
	t.Helper()

	a := make(vault.Address, vault.AddressLength)
	if _, err := rand.Read(a); err != nil {
		t.Fatalf("cannot read random bytes: %s", err)
	}
	return a
}
