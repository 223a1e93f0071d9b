package vault

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/iov-one/vault/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContextBlockValues(t *testing.T) {
	ctx := context.Background()

	_, ok := GetHeight(ctx)
	assert.False(t, ok)
	_, ok = GetHeader(ctx)
	assert.False(t, ok)
	assert.Panics(t, func() { GetChainID(ctx) })

	header := abci.Header{Height: 12, ChainID: "vault-ctx-test"}
	ctx = WithHeader(ctx, header)
	ctx = WithHeight(ctx, header.Height)
	ctx = WithChainID(ctx, header.ChainID)

	got, ok := GetHeader(ctx)
	assert.True(t, ok)
	assert.Equal(t, header, got)
	height, ok := GetHeight(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(12), height)
	assert.Equal(t, "vault-ctx-test", GetChainID(ctx))

	assert.Panics(t, func() { WithHeader(ctx, header) })
	assert.Panics(t, func() { WithHeight(ctx, 13) })
	assert.Panics(t, func() { WithChainID(ctx, "vault-other") })
	assert.Panics(t, func() { WithChainID(context.Background(), "bad id") })
}

func TestContextLogger(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, DefaultLogger, GetLogger(ctx))

	logger := log.NewTMLogger(os.Stdout)
	ctx = WithLogger(ctx, logger)
	assert.Equal(t, logger, GetLogger(ctx))

	tagged := WithLogInfo(ctx, "vault", "main")
	assert.NotEqual(t, GetLogger(ctx), GetLogger(tagged))
}

func TestIsValidChainID(t *testing.T) {
	cases := map[string]bool{
		"":                        false,
		"short":                   false,
		"vault1":                  true,
		"vault_main-2019":         true,
		"vault main":              false,
		"vault;main":              false,
		"vault-chain-id-too-long": false,
	}
	for id, want := range cases {
		assert.Equal(t, want, IsValidChainID(id), id)
	}
}

func TestBlockTime(t *testing.T) {
	_, err := BlockTime(context.Background())
	assert.True(t, errors.ErrHuman.Is(err))
	_, err = BlockTime(WithBlockTime(context.Background(), time.Time{}))
	assert.True(t, errors.ErrHuman.Is(err))

	local := time.Date(2023, 11, 15, 0, 13, 20, 0, time.FixedZone("EET", 7200))
	got, err := BlockTime(WithBlockTime(context.Background(), local))
	require.NoError(t, err)
	assert.True(t, got.Equal(local))
	assert.Equal(t, time.UTC, got.Location())
}
