package errors

import (
	"errors"
	"fmt"
)

const (
	// SuccessABCICode is reported for a nil error.
	SuccessABCICode = 0

	// Errors without a registered kind are reported with this code and,
	// outside of debug mode, with a generic log.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and log to put into an ABCI response for err.
// In debug mode the log carries the full error, including a stack trace
// when one is attached.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	if debug {
		return code, fmt.Sprintf("%+v", err)
	}
	return code, Redact(err, false).Error()
}

// Redact replaces errors that do not belong to a registered kind, and
// recovered panics, with a generic internal error. In debug mode err is
// returned unchanged.
func Redact(err error, debug bool) error {
	if debug || isNilErr(err) {
		return err
	}
	if ErrPanic.Is(err) || abciCode(err) == internalABCICode {
		return errors.New(internalABCILog)
	}
	return err
}

// ABCIError rebuilds an error from an ABCI response so that clients can
// test it with Is. Unknown codes give an error that matches no kind.
func ABCIError(code uint32, log string) error {
	if kind, ok := registry[code]; ok && code != internalABCICode {
		return Wrap(kind, log)
	}
	return Wrap(&Error{code: code, desc: "unknown"}, log)
}

// abciCode returns the code of the first error in the chain that has one.
func abciCode(err error) uint32 {
	if isNilErr(err) {
		return SuccessABCICode
	}
	for {
		if c, ok := err.(interface{ ABCICode() uint32 }); ok {
			return c.ABCICode()
		}
		next, ok := err.(causer)
		if !ok {
			return internalABCICode
		}
		err = next.Cause()
	}
}
