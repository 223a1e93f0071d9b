package app

import (
	"reflect"

	"github.com/iov-one/vault"
)

// Decorators is an ordered stack of decorators that is not yet bound to a
// final handler.
type Decorators struct {
	chain []vault.Decorator
}

/*
ChainDecorators builds a stack from the given decorators. The first decorator
is the outermost one and sees every transaction before the rest. Nil entries
are skipped so optional decorators can be passed unconditionally.

	app.ChainDecorators(
	  utils.NewRecovery(),
	  utils.NewLogging(),
	  sigs.NewDecorator(),
	  utils.NewSavepoint().OnDeliver(),
	).WithHandler(router)
*/
func ChainDecorators(chain ...vault.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain returns a new stack with the given decorators appended at the bottom.
// The receiver is not modified.
func (d Decorators) Chain(chain ...vault.Decorator) Decorators {
	next := make([]vault.Decorator, 0, len(d.chain)+len(chain))
	next = append(next, d.chain...)
	next = append(next, dropNil(chain)...)
	return Decorators{chain: next}
}

// dropNil returns the decorators that are not nil. A typed nil pointer
// stored in the interface counts as nil too.
func dropNil(ds []vault.Decorator) []vault.Decorator {
	res := make([]vault.Decorator, 0, len(ds))
	for _, d := range ds {
		if d == nil {
			continue
		}
		if v := reflect.ValueOf(d); v.Kind() == reflect.Ptr && v.IsNil() {
			continue
		}
		res = append(res, d)
	}
	return res
}

// WithHandler binds the stack to h and returns a handler that runs every
// decorator, top to bottom, before reaching h.
func (d Decorators) WithHandler(h vault.Handler) vault.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = link{decorator: d.chain[i], next: h}
	}
	return h
}

// link binds a single decorator to the handler below it.
type link struct {
	decorator vault.Decorator
	next      vault.Handler
}

var _ vault.Handler = link{}

func (l link) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	return l.decorator.Check(ctx, db, tx, l.next)
}

func (l link) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	return l.decorator.Deliver(ctx, db, tx, l.next)
}
