package app

import (
	"github.com/iov-one/vault"
)

// ChainInitializers returns an initializer that passes the genesis options
// to every given initializer in order, stopping at the first failure.
func ChainInitializers(inits ...vault.Initializer) vault.Initializer {
	return initializers(inits)
}

type initializers []vault.Initializer

var _ vault.Initializer = initializers(nil)

func (c initializers) FromGenesis(opts vault.Options, kv vault.KVStore) error {
	for _, i := range c {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
