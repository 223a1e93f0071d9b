/*
Package vault defines the interfaces shared by the donation vault
application: storage, transactions, handlers, queries and ABCI results.
It also holds helpers for addresses, conditions and the request context.

The domain logic lives in x/donation. Everything in this package is shared
infrastructure that x/donation, x/sigs and the app package build upon.

Block data travels to handlers through a context.Context. Every value has
a WithXYZ setter and a getter. Values describing the block (header,
height, chain id) can be set only once and a second set panics, so that
no decorator can overwrite what the app put there.
*/
package vault
