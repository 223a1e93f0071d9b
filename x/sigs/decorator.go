/*
Package sigs verifies the signatures of a transaction and keeps a sequence
per public key so that a signed transaction cannot be replayed.
*/
package sigs

import (
	"context"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x"
)

// signatureVerifyCost is the gas charged on Check for every valid
// signature.
const signatureVerifyCost = 500

// RegisterQuery exposes the signer accounts under "/auth".
func RegisterQuery(qr vault.QueryRouter) {
	NewBucket().Register("auth", qr)
}

// Decorator rejects transactions without a valid signature. Verified
// signers are available to the handlers through Authenticate.
type Decorator struct{}

var _ vault.Decorator = Decorator{}

func NewDecorator() Decorator {
	return Decorator{}
}

func (d Decorator) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	ctx, n, err := d.verify(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res, err := next.Check(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.GasPayment += int64(n) * signatureVerifyCost
	return res, nil
}

func (d Decorator) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	ctx, _, err := d.verify(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

// verify returns a context carrying the signer conditions and the number
// of signatures. A tx that cannot carry signatures is unauthorized.
func (Decorator) verify(ctx vault.Context, db vault.KVStore, tx vault.Tx) (vault.Context, int, error) {
	stx, ok := tx.(SignedTx)
	if !ok {
		return nil, 0, errors.Wrapf(errors.ErrUnauthorized, "%T carries no signatures", tx)
	}
	signers, err := verifySignatures(db, stx, vault.GetChainID(ctx))
	if err != nil {
		return nil, 0, err
	}
	if len(signers) == 0 {
		return nil, 0, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return context.WithValue(ctx, signersKey{}, signers), len(signers), nil
}

type signersKey struct{}

// Authenticate reports the signers verified by the Decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

func (Authenticate) GetConditions(ctx vault.Context) []vault.Condition {
	conds, _ := ctx.Value(signersKey{}).([]vault.Condition)
	return conds
}

func (a Authenticate) HasAddress(ctx vault.Context, addr vault.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
