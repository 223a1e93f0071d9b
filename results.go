package vault

import (
	"fmt"

	"github.com/iov-one/vault/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// CheckResult is returned by a successful Check. Failures are reported
// through the error only.
type CheckResult struct {
	Data []byte
	Log  string
	// GasAllocated is the upper limit of work the transaction may do.
	GasAllocated int64
	// GasPayment is what the decorators charged, signature checks for
	// example.
	GasPayment int64
}

// DeliverResult is returned by a successful Deliver.
type DeliverResult struct {
	// Data is the serialized outcome. Donation operations put the emitted
	// event here.
	Data []byte
	Log  string
	// Tags are indexed by tendermint, transactions can be searched by them.
	Tags    []common.KVPair
	GasUsed int64
}

// Tag appends a key value pair to the indexed tags.
func (d *DeliverResult) Tag(key, value string) {
	d.Tags = append(d.Tags, common.KVPair{Key: []byte(key), Value: []byte(value)})
}

// CheckResponse builds the CheckTx response from what the handler
// returned. Internal error messages are redacted unless debug is set.
func CheckResponse(res *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil {
		code, log := failure("check", err, debug)
		return abci.ResponseCheckTx{Code: code, Log: log}
	}
	if res == nil {
		return abci.ResponseCheckTx{}
	}
	return abci.ResponseCheckTx{
		Data:      res.Data,
		Log:       res.Log,
		GasWanted: res.GasAllocated,
	}
}

// DeliverResponse builds the DeliverTx response from what the handler
// returned. Internal error messages are redacted unless debug is set.
func DeliverResponse(res *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	if err != nil {
		code, log := failure("deliver", err, debug)
		return abci.ResponseDeliverTx{Code: code, Log: log}
	}
	if res == nil {
		return abci.ResponseDeliverTx{}
	}
	return abci.ResponseDeliverTx{
		Data:    res.Data,
		Log:     res.Log,
		Tags:    res.Tags,
		GasUsed: res.GasUsed,
	}
}

func failure(call string, err error, debug bool) (uint32, string) {
	code, log := errors.ABCIInfo(err, debug)
	if code != errors.SuccessABCICode {
		log = fmt.Sprintf("cannot %s tx: %s", call, log)
	}
	return code, log
}
