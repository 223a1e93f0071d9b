package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp implements the state related part of abci.Application: the
// handshake, genesis, queries, block boundaries and commits. BaseApp adds
// transaction processing on top.
//
// Calls that cannot return an error to tendermint (Info, InitChain,
// Commit) panic on failure. The node must not continue with a state it
// could not load or save.
type StoreApp struct {
	name        string
	store       *CommitStore
	initializer vault.Initializer
	queryRouter vault.QueryRouter
	logger      log.Logger

	// chainID is empty until InitChain ran for the first time.
	chainID string

	// baseContext lives as long as the app, blockContext is replaced on
	// every BeginBlock.
	baseContext  vault.Context
	blockContext vault.Context
}

// NewStoreApp loads the chain id and the last committed height from store.
// It panics if they cannot be read.
func NewStoreApp(name string, store vault.CommitKVStore, queryRouter vault.QueryRouter, baseContext vault.Context) *StoreApp {
	s := &StoreApp{
		name:        name,
		store:       NewCommitStore(store),
		queryRouter: queryRouter,
		baseContext: baseContext,
	}
	s = s.WithLogger(log.NewNopLogger())

	chainID, err := loadChainID(s.DeliverStore())
	if err != nil {
		panic(err)
	}
	if chainID != "" {
		s.chainID = chainID
		s.baseContext = vault.WithChainID(s.baseContext, chainID)
	}

	info, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.blockContext = vault.WithHeight(s.baseContext, info.Version)
	return s
}

// WithInit sets the genesis initializer called from InitChain.
func (s *StoreApp) WithInit(init vault.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// WithLogger replaces the logger of the app and of both contexts.
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.logger = logger
	s.baseContext = vault.WithLogger(s.baseContext, logger)
	if s.blockContext != nil {
		s.blockContext = vault.WithLogger(s.blockContext, logger)
	}
	return s
}

func (s *StoreApp) Logger() log.Logger                   { return s.logger }
func (s *StoreApp) GetChainID() string                   { return s.chainID }
func (s *StoreApp) BlockContext() vault.Context          { return s.blockContext }
func (s *StoreApp) DeliverStore() vault.CacheableKVStore { return s.store.DeliverStore() }
func (s *StoreApp) CheckStore() vault.CacheableKVStore   { return s.store.CheckStore() }

// Info reports the last committed height and app hash so that tendermint
// can replay missing blocks.
func (s *StoreApp) Info(abci.RequestInfo) abci.ResponseInfo {
	info, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.logger.Info("handshake", "height", info.Version, "hash", fmt.Sprintf("%X", info.Hash))
	return abci.ResponseInfo{
		Data:             s.name,
		Version:          vault.Version(),
		LastBlockHeight:  info.Version,
		LastBlockAppHash: info.Hash,
	}
}

// SetOption is not supported, all settings come from the node
// configuration and the genesis file.
func (s *StoreApp) SetOption(abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "Not Implemented"}
}

// InitChain runs once per chain. It saves the chain id and hands the
// app_state of the genesis file to the initializer.
func (s *StoreApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := s.initChain(req.ChainId, req.AppStateBytes); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

func (s *StoreApp) initChain(chainID string, appState []byte) error {
	if s.chainID != "" {
		return errors.Wrapf(errors.ErrState, "chain %q already initialized", s.chainID)
	}
	if len(appState) == 0 {
		return errors.Wrap(errors.ErrState, "genesis has no app_state")
	}
	var opts vault.Options
	if err := json.Unmarshal(appState, &opts); err != nil {
		return errors.Wrapf(errors.ErrInput, "app_state: %s", err)
	}

	if err := saveChainID(s.DeliverStore(), chainID); err != nil {
		return err
	}
	s.chainID = chainID
	s.baseContext = vault.WithChainID(s.baseContext, chainID)
	s.blockContext = vault.WithChainID(s.blockContext, chainID)

	if s.initializer == nil {
		return nil
	}
	return s.initializer.FromGenesis(opts, s.DeliverStore())
}

// BeginBlock makes the header, height and time of the block available to
// all of its transactions.
func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	ctx := vault.WithHeader(s.baseContext, req.Header)
	ctx = vault.WithHeight(ctx, req.Header.GetHeight())
	s.blockContext = vault.WithBlockTime(ctx, req.Header.GetTime())
	return abci.ResponseBeginBlock{}
}

// EndBlock does nothing, the validator set never changes.
func (s *StoreApp) EndBlock(abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}

// Commit persists the state of the block and returns the new app hash.
func (s *StoreApp) Commit() abci.ResponseCommit {
	id, err := s.store.Commit()
	if err != nil {
		panic(err)
	}
	s.logger.Debug("commit", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return abci.ResponseCommit{Data: id.Hash}
}

/*
Query reads the last committed state. The request path selects the query
handler, for example "/donation/stats", and may end with "?prefix" to
turn a key lookup into a prefix scan. Historical heights and proofs are
not supported.

The response Key and Value are both encoded ResultSets of equal length,
so that a query can return any number of models.
*/
func (s *StoreApp) Query(req abci.RequestQuery) abci.ResponseQuery {
	path, mod := splitPath(req.Path)
	h := s.queryRouter.Handler(path)
	if h == nil {
		return queryError(errors.Wrapf(errors.ErrNotFound, "query path %q", req.Path))
	}

	info, err := s.store.CommitInfo()
	if err != nil {
		return queryError(err)
	}
	models, err := h.Query(s.store.ReadStore(), mod, req.Data)
	if err != nil {
		return queryError(err)
	}

	keySet, valueSet := SplitModels(models)
	keys, err := EncodeResults(keySet)
	if err != nil {
		return queryError(err)
	}
	values, err := EncodeResults(valueSet)
	if err != nil {
		return queryError(err)
	}
	return abci.ResponseQuery{Height: info.Version, Key: keys, Value: values}
}

// splitPath cuts the query modifier off the path.
func splitPath(full string) (path, mod string) {
	if i := strings.IndexByte(full, '?'); i >= 0 {
		return full[:i], full[i+1:]
	}
	return full, ""
}

func queryError(err error) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, false)
	return abci.ResponseQuery{Code: code, Log: log}
}
