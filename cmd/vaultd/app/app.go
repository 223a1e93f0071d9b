/*
Package app links together all the various components
to construct the vaultd application.
*/
package app

import (
	"context"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/app"
	"github.com/iov-one/vault/x"
	"github.com/iov-one/vault/x/donation"
	"github.com/iov-one/vault/x/sigs"
	"github.com/iov-one/vault/x/utils"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Name is reported to tendermint in the Info response.
const Name = "vaultd"

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewRecovery(),
		utils.NewLogging(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		utils.NewActionTagger(),
		// on DeliverTx, a failed message still increments the signer
		// sequence
		utils.NewSavepoint().OnDeliver(),
	)
}

// Controller builds the donation controller. Every event is logged before
// it is stored in the event log.
func Controller(minReserve uint64, events *donation.EventLog) *donation.Controller {
	var reserve donation.Reserve = donation.NoReserve{}
	if minReserve > 0 {
		reserve = donation.MinimumReserve(minReserve)
	}
	return donation.NewController(reserve, donation.LogSink{Next: events})
}

// Router returns a router dispatching all donation messages.
func Router(authFn x.Authenticator, ctrl *donation.Controller) *app.Router {
	r := app.NewRouter()
	donation.RegisterRoutes(r, authFn, ctrl)
	return r
}

// QueryRouter returns a default query router, allowing access to "/auth"
// and all "/donation" paths.
func QueryRouter(ctrl *donation.Controller, events *donation.EventLog) vault.QueryRouter {
	r := vault.NewQueryRouter()
	r.RegisterAll(
		sigs.RegisterQuery,
		func(qr vault.QueryRouter) { donation.RegisterQuery(qr, ctrl, events) },
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack(ctrl *donation.Controller) vault.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn, ctrl))
}

// Application constructs the ABCI application on top of the given store.
func Application(c Config, kv vault.CommitKVStore, logger log.Logger) app.BaseApp {
	events := donation.NewEventLog()
	ctrl := Controller(c.MinReserve, events)

	store := app.NewStoreApp(Name, kv, QueryRouter(ctrl, events), context.Background()).
		WithInit(app.ChainInitializers(&donation.Initializer{Ctrl: ctrl})).
		WithLogger(logger)
	return app.NewBaseApp(store, TxDecoder, Stack(ctrl), c.Debug)
}

// GenerateApp opens the database described by c and returns the
// application ready to be served.
func GenerateApp(c Config, logger log.Logger) (abci.Application, error) {
	kv, err := c.CommitStore()
	if err != nil {
		return nil, err
	}
	return Application(c, kv, logger), nil
}
