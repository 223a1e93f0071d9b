package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestLogging(t *testing.T) {
	cases := map[string]struct {
		handler  *vaulttest.Handler
		check    bool
		wantErr  bool
		wantLine string
	}{
		"deliver success is logged at info": {
			handler:  &vaulttest.Handler{DeliverResult: vault.DeliverResult{Log: "delivered"}},
			wantLine: "I[",
		},
		"check success is logged at debug": {
			handler:  &vaulttest.Handler{CheckResult: vault.CheckResult{Log: "checked"}},
			check:    true,
			wantLine: "D[",
		},
		"failure is logged at error": {
			handler:  &vaulttest.Handler{DeliverErr: errors.ErrHuman},
			wantErr:  true,
			wantLine: "E[",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := vault.WithLogger(context.Background(), log.NewTMLogger(&buf))
			tx := &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "donation/pause"}}

			var err error
			if tc.check {
				_, err = NewLogging().Check(ctx, store.MemStore(), tx, tc.handler)
			} else {
				_, err = NewLogging().Deliver(ctx, store.MemStore(), tx, tc.handler)
			}
			assert.Equal(t, tc.wantErr, err != nil)

			out := buf.String()
			assert.True(t, strings.HasPrefix(out, tc.wantLine), out)
			assert.Contains(t, out, "path=donation/pause")
			assert.Contains(t, out, "duration=")
		})
	}
}
