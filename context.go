package vault

import (
	"context"
	"regexp"
	"time"

	"github.com/iov-one/vault/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Context carries block data to handlers.
type Context = context.Context

type ctxKey int

const (
	ctxHeader ctxKey = iota
	ctxHeight
	ctxChainID
	ctxBlockTime
	ctxLogger
)

var (
	// DefaultLogger is returned by GetLogger if none was set.
	DefaultLogger = log.NewNopLogger()

	chainIDFormat = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`)
)

// IsValidChainID returns true for 6 to 20 characters long ids made of
// letters, digits, dash and underscore.
func IsValidChainID(id string) bool {
	return chainIDFormat.MatchString(id)
}

// setOnce panics if key is already present in ctx.
func setOnce(ctx Context, key ctxKey, val interface{}, name string) Context {
	if ctx.Value(key) != nil {
		panic(name + " already set")
	}
	return context.WithValue(ctx, key, val)
}

func WithHeader(ctx Context, header abci.Header) Context {
	return setOnce(ctx, ctxHeader, header, "header")
}

func GetHeader(ctx Context) (abci.Header, bool) {
	h, ok := ctx.Value(ctxHeader).(abci.Header)
	return h, ok
}

func WithHeight(ctx Context, height int64) Context {
	return setOnce(ctx, ctxHeight, height, "height")
}

func GetHeight(ctx Context) (int64, bool) {
	h, ok := ctx.Value(ctxHeight).(int64)
	return h, ok
}

// WithChainID panics on an invalid id or if one is already set.
func WithChainID(ctx Context, chainID string) Context {
	if !IsValidChainID(chainID) {
		panic("invalid chain id " + chainID)
	}
	return setOnce(ctx, ctxChainID, chainID, "chain id")
}

// GetChainID panics if no chain id was set. The app always sets it before
// a transaction is processed.
func GetChainID(ctx Context) string {
	id, ok := ctx.Value(ctxChainID).(string)
	if !ok {
		panic("chain id not set")
	}
	return id
}

// WithBlockTime stores t in UTC.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, ctxBlockTime, t.UTC())
}

// BlockTime returns the time of the current block. A missing or zero time
// is a setup bug and reported as ErrHuman.
func BlockTime(ctx Context) (time.Time, error) {
	t, ok := ctx.Value(ctxBlockTime).(time.Time)
	switch {
	case !ok:
		return time.Time{}, errors.Wrap(errors.ErrHuman, "no block time in context")
	case t.IsZero():
		return time.Time{}, errors.Wrap(errors.ErrHuman, "zero block time in context")
	}
	return t, nil
}

func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, ctxLogger, logger)
}

func GetLogger(ctx Context) log.Logger {
	if l, ok := ctx.Value(ctxLogger).(log.Logger); ok {
		return l
	}
	return DefaultLogger
}

// WithLogInfo returns a context whose logger adds keyvals to every entry.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	return WithLogger(ctx, GetLogger(ctx).With(keyvals...))
}
