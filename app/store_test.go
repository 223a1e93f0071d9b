package app

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store/iavl"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// genesisWriter copies the "values" genesis section into the store.
type genesisWriter struct{}

func (genesisWriter) FromGenesis(opts vault.Options, kv vault.KVStore) error {
	var values map[string]string
	if err := opts.ReadOptions("values", &values); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	for k, v := range values {
		if err := kv.Set([]byte(k), []byte(v)); err != nil {
			return err
		}
	}
	return nil
}

// keyQuery returns the value stored under the requested key.
type keyQuery struct{}

func (keyQuery) Query(db vault.ReadOnlyKVStore, mod string, data []byte) ([]vault.Model, error) {
	if mod != vault.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod %q", mod)
	}
	v, err := db.Get(data)
	if err != nil || v == nil {
		return nil, err
	}
	return []vault.Model{vault.Pair(data, v)}, nil
}

func newTestStoreApp(db dbm.DB) *StoreApp {
	qr := vault.NewQueryRouter()
	qr.Register("/values", keyQuery{})
	return NewStoreApp("vault-test", iavl.NewCommitStoreFromDB(db, 100), qr, context.Background()).
		WithInit(genesisWriter{})
}

func appState(t *testing.T, values map[string]string) []byte {
	t.Helper()
	raw, err := json.Marshal(map[string]interface{}{"values": values})
	require.NoError(t, err)
	return raw
}

func TestStoreAppLifecycle(t *testing.T) {
	db := dbm.NewMemDB()
	app := newTestStoreApp(db)
	require.Equal(t, "", app.GetChainID())

	app.InitChain(abci.RequestInitChain{
		ChainId:       "test-chain",
		AppStateBytes: appState(t, map[string]string{"alpha": "one"}),
	})
	require.Equal(t, "test-chain", app.GetChainID())

	// genesis state is not visible to queries until committed
	res := app.Query(abci.RequestQuery{Path: "/values", Data: []byte("alpha")})
	require.EqualValues(t, errors.SuccessABCICode, res.Code, res.Log)
	rs, err := DecodeResults(res.Value)
	require.NoError(t, err)
	require.Len(t, rs.Results, 0)

	commit := app.Commit()
	require.NotEmpty(t, commit.Data)

	info := app.Info(abci.RequestInfo{})
	require.Equal(t, "vault-test", info.Data)
	require.EqualValues(t, 1, info.LastBlockHeight)
	require.Equal(t, commit.Data, info.LastBlockAppHash)

	res = app.Query(abci.RequestQuery{Path: "/values", Data: []byte("alpha")})
	require.EqualValues(t, errors.SuccessABCICode, res.Code, res.Log)
	require.EqualValues(t, 1, res.Height)
	keys, err := DecodeResults(res.Key)
	require.NoError(t, err)
	values, err := DecodeResults(res.Value)
	require.NoError(t, err)
	models, err := JoinResults(keys, values)
	require.NoError(t, err)
	require.Equal(t, []vault.Model{vault.Pair([]byte("alpha"), []byte("one"))}, models)

	// a restarted app loads the chain id and the height from the database
	restarted := newTestStoreApp(db)
	require.Equal(t, "test-chain", restarted.GetChainID())
	height, ok := vault.GetHeight(restarted.BlockContext())
	require.True(t, ok)
	require.EqualValues(t, 1, height)
	require.Equal(t, "test-chain", vault.GetChainID(restarted.BlockContext()))
}

func TestStoreAppInitChainFailures(t *testing.T) {
	cases := map[string]struct {
		prepare func(app *StoreApp)
		req     abci.RequestInitChain
	}{
		"invalid chain id": {
			req: abci.RequestInitChain{ChainId: "x", AppStateBytes: []byte(`{}`)},
		},
		"missing app state": {
			req: abci.RequestInitChain{ChainId: "test-chain"},
		},
		"malformed app state": {
			req: abci.RequestInitChain{ChainId: "test-chain", AppStateBytes: []byte(`[1, 2]`)},
		},
		"initializer failure": {
			req: abci.RequestInitChain{ChainId: "test-chain", AppStateBytes: []byte(`{"values": 7}`)},
		},
		"second initialization": {
			prepare: func(app *StoreApp) {
				app.InitChain(abci.RequestInitChain{ChainId: "test-chain", AppStateBytes: []byte(`{}`)})
			},
			req: abci.RequestInitChain{ChainId: "test-chain", AppStateBytes: []byte(`{}`)},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			app := newTestStoreApp(dbm.NewMemDB())
			if tc.prepare != nil {
				tc.prepare(app)
			}
			require.Panics(t, func() { app.InitChain(tc.req) })
		})
	}
}

func TestStoreAppQueryErrors(t *testing.T) {
	app := newTestStoreApp(dbm.NewMemDB())

	cases := map[string]struct {
		path     string
		wantCode uint32
	}{
		"unknown path": {
			path:     "/unknown",
			wantCode: errors.ErrNotFound.ABCICode(),
		},
		"unsupported modifier": {
			path:     "/values?prefix",
			wantCode: errors.ErrInput.ABCICode(),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			res := app.Query(abci.RequestQuery{Path: tc.path, Data: []byte("alpha")})
			require.Equal(t, tc.wantCode, res.Code)
			require.NotEmpty(t, res.Log)
		})
	}
}

func TestStoreAppBeginBlock(t *testing.T) {
	app := newTestStoreApp(dbm.NewMemDB())
	now := time.Date(2019, 4, 1, 12, 0, 0, 0, time.UTC)

	app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{Height: 7, Time: now},
	})

	ctx := app.BlockContext()
	height, ok := vault.GetHeight(ctx)
	require.True(t, ok)
	require.EqualValues(t, 7, height)
	blockTime, err := vault.BlockTime(ctx)
	require.NoError(t, err)
	require.True(t, now.Equal(blockTime))
	header, ok := vault.GetHeader(ctx)
	require.True(t, ok)
	require.EqualValues(t, 7, header.Height)

	require.Equal(t, abci.ResponseEndBlock{}, app.EndBlock(abci.RequestEndBlock{Height: 7}))
}

func TestSplitPath(t *testing.T) {
	cases := map[string]struct {
		path, wantPath, wantMod string
	}{
		"no modifier":     {path: "/donation/stats", wantPath: "/donation/stats"},
		"prefix modifier": {path: "/donation/vaults?prefix", wantPath: "/donation/vaults", wantMod: "prefix"},
		"empty modifier":  {path: "/donation/vaults?", wantPath: "/donation/vaults"},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			path, mod := splitPath(tc.path)
			require.Equal(t, tc.wantPath, path)
			require.Equal(t, tc.wantMod, mod)
		})
	}
}
