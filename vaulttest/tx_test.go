package vaulttest

import (
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

func TestTxMsg(t *testing.T) {
	msg := &Msg{RoutePath: "foo/bar"}
	tx := &Tx{Msg: msg}

	if got := vault.GetPath(tx); got != "foo/bar" {
		t.Fatalf("unexpected path: %q", got)
	}

	broken := &Tx{Err: errors.ErrEmpty}
	if _, err := broken.GetMsg(); !errors.ErrEmpty.Is(err) {
		t.Fatalf("want empty error, got %v", err)
	}
}
