package app

import (
	"context"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestRouterDispatch(t *testing.T) {
	var (
		contribute = &vaulttest.Handler{DeliverResult: vault.DeliverResult{Data: []byte("c")}}
		withdraw   = &vaulttest.Handler{DeliverErr: errors.ErrUnauthorized}
	)
	r := NewRouter()
	r.Handle("donation/contribute", contribute)
	r.Handle("donation/withdraw", withdraw)

	cases := map[string]struct {
		tx         vault.Tx
		wantErr    *errors.Error
		wantData   []byte
		wantCalled *vaulttest.Handler
	}{
		"registered path": {
			tx:         &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "donation/contribute"}},
			wantData:   []byte("c"),
			wantCalled: contribute,
		},
		"handler error is returned": {
			tx:         &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "donation/withdraw"}},
			wantErr:    errors.ErrUnauthorized,
			wantCalled: withdraw,
		},
		"unknown path": {
			tx:      &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "donation/unknown"}},
			wantErr: errors.ErrNotFound,
		},
		"broken transaction": {
			tx:      &vaulttest.Tx{Err: errors.ErrInput},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var before int
			if tc.wantCalled != nil {
				before = tc.wantCalled.CallCount()
			}

			db := store.MemStore()
			_, err := r.Check(context.Background(), db, tc.tx)
			if tc.wantCalled == nil {
				assert.IsErr(t, tc.wantErr, err)
			}
			res, err := r.Deliver(context.Background(), db, tc.tx)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.wantData, res.Data)
			}
			if tc.wantCalled != nil {
				assert.Equal(t, before+2, tc.wantCalled.CallCount())
			}
		})
	}
}

func TestRouterRegistration(t *testing.T) {
	cases := map[string]func(r *Router){
		"duplicated path": func(r *Router) {
			r.Handle("donation/pause", &vaulttest.Handler{})
			r.Handle("donation/pause", &vaulttest.Handler{})
		},
		"path with a dash": func(r *Router) {
			r.Handle("donation/emergency-withdraw", &vaulttest.Handler{})
		},
		"empty path": func(r *Router) {
			r.Handle("", &vaulttest.Handler{})
		},
		"query modifier": func(r *Router) {
			r.Handle("donation/stats?prefix", &vaulttest.Handler{})
		},
	}

	for testName, register := range cases {
		t.Run(testName, func(t *testing.T) {
			r := NewRouter()
			assert.Panics(t, func() { register(r) })
		})
	}
}
