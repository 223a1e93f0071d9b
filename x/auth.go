package x

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Authenticator tells handlers who signed the current transaction.
// Handlers receive it in their constructor and never look at signatures
// themselves.
type Authenticator interface {
	// GetConditions lists the conditions satisfied by the transaction,
	// main signer first.
	GetConditions(vault.Context) []vault.Condition
	HasAddress(vault.Context, vault.Address) bool
}

// MultiAuth reports the union of several authenticators.
type MultiAuth []Authenticator

var _ Authenticator = MultiAuth(nil)

func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth(impls)
}

// GetConditions keeps the first occurrence of every condition, in the
// order the authenticators were chained.
func (m MultiAuth) GetConditions(ctx vault.Context) []vault.Condition {
	var res []vault.Condition
	for _, impl := range m {
		for _, c := range impl.GetConditions(ctx) {
			if !containsCondition(res, c) {
				res = append(res, c)
			}
		}
	}
	return res
}

func (m MultiAuth) HasAddress(ctx vault.Context, addr vault.Address) bool {
	for _, impl := range m {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first condition or nil for an unsigned
// transaction.
func MainSigner(ctx vault.Context, auth Authenticator) vault.Condition {
	if conds := auth.GetConditions(ctx); len(conds) > 0 {
		return conds[0]
	}
	return nil
}

// MainSignerAddress is MainSigner for callers that require a signature.
func MainSignerAddress(ctx vault.Context, auth Authenticator) (vault.Address, error) {
	signer := MainSigner(ctx, auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "transaction is not signed")
	}
	return signer.Address(), nil
}

func containsCondition(all []vault.Condition, c vault.Condition) bool {
	for _, other := range all {
		if other.Equals(c) {
			return true
		}
	}
	return false
}
