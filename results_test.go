package vault

import (
	"fmt"
	"testing"

	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest/assert"
	"github.com/tendermint/tendermint/libs/common"
)

func TestFailedResponse(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"registered error": {
			err:      errors.Wrap(errors.ErrUnauthorized, "not the vault admin"),
			wantCode: 2,
			wantLog:  "not the vault admin: unauthorized",
		},
		"internal error is redacted": {
			err:      fmt.Errorf("disk on fire"),
			wantCode: 1,
			wantLog:  "internal error",
		},
		"internal error in debug mode": {
			err:      fmt.Errorf("disk on fire"),
			debug:    true,
			wantCode: 1,
			wantLog:  "disk on fire",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			res := DeliverResponse(&DeliverResult{Data: []byte("ignored")}, tc.err, tc.debug)
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, "cannot deliver tx: "+tc.wantLog, res.Log)
			assert.Equal(t, 0, len(res.Data))

			check := CheckResponse(nil, tc.err, tc.debug)
			assert.Equal(t, tc.wantCode, check.Code)
			assert.Equal(t, "cannot check tx: "+tc.wantLog, check.Log)
		})
	}
}

func TestDeliverResponseCarriesTags(t *testing.T) {
	res := &DeliverResult{Data: []byte("event"), Log: "contributed"}
	res.Tag("vault", "main")
	res.Tag("action", "donation/contribute")

	got := DeliverResponse(res, nil, false)
	assert.Equal(t, uint32(0), got.Code)
	assert.Equal(t, []byte("event"), got.Data)
	assert.Equal(t, "contributed", got.Log)
	assert.Equal(t, []common.KVPair{
		{Key: []byte("vault"), Value: []byte("main")},
		{Key: []byte("action"), Value: []byte("donation/contribute")},
	}, got.Tags)

	assert.Equal(t, uint32(0), DeliverResponse(nil, nil, false).Code)
}

func TestCheckResponse(t *testing.T) {
	res := CheckResponse(&CheckResult{GasAllocated: 42, GasPayment: 7, Log: "ok"}, nil, false)
	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, int64(42), res.GasWanted)
	assert.Equal(t, "ok", res.Log)
}
