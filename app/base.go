package app

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp is a complete abci.Application. It decodes transactions and
// passes them to the handler on the matching store.
type BaseApp struct {
	*StoreApp
	decoder vault.TxDecoder
	handler vault.Handler
	// debug exposes internal error messages in responses.
	debug bool
}

var _ abci.Application = BaseApp{}

func NewBaseApp(store *StoreApp, decoder vault.TxDecoder, handler vault.Handler, debug bool) BaseApp {
	return BaseApp{StoreApp: store, decoder: decoder, handler: handler, debug: debug}
}

// CheckTx runs the handler on the check store. Changes are dropped on the
// next Commit.
func (b BaseApp) CheckTx(raw []byte) abci.ResponseCheckTx {
	tx, err := b.decode(raw)
	if err != nil {
		return vault.CheckResponse(nil, err, b.debug)
	}
	res, err := b.handler.Check(b.txContext("check_tx", tx), b.CheckStore(), tx)
	return vault.CheckResponse(res, err, b.debug)
}

// DeliverTx runs the handler on the deliver store of the current block.
func (b BaseApp) DeliverTx(raw []byte) abci.ResponseDeliverTx {
	tx, err := b.decode(raw)
	if err != nil {
		return vault.DeliverResponse(nil, err, b.debug)
	}
	res, err := b.handler.Deliver(b.txContext("deliver_tx", tx), b.DeliverStore(), tx)
	return vault.DeliverResponse(res, err, b.debug)
}

func (b BaseApp) txContext(call string, tx vault.Tx) vault.Context {
	return vault.WithLogInfo(b.BlockContext(), "call", call, "path", vault.GetPath(tx))
}

// decode never panics, a broken decoder results in ErrPanic.
func (b BaseApp) decode(raw []byte) (tx vault.Tx, err error) {
	defer errors.Recover(&err)
	return b.decoder(raw)
}
