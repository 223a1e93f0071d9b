package errors

import (
	stdlib "errors"
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestKindIs(t *testing.T) {
	cases := map[string]struct {
		kind *Error
		err  error
		want bool
	}{
		"same kind":                    {kind: ErrNotFound, err: ErrNotFound, want: true},
		"other kind":                   {kind: ErrNotFound, err: ErrState, want: false},
		"wrapped by this package":      {kind: ErrAmount, err: Wrap(Wrap(ErrAmount, "donate"), "vault main"), want: true},
		"wrapped by pkg/errors":        {kind: ErrAmount, err: errors.Wrap(ErrAmount, "donate"), want: true},
		"wrapped other kind":           {kind: ErrAmount, err: Wrap(ErrOverflow, "donate"), want: false},
		"stdlib error":                 {kind: ErrInput, err: fmt.Errorf("bad input"), want: false},
		"field error":                  {kind: ErrEmpty, err: Field("ID", ErrEmpty, "required"), want: true},
		"group member":                 {kind: ErrInput, err: Append(ErrState, Wrap(ErrInput, "id")), want: true},
		"group without member":         {kind: ErrInput, err: Append(ErrState, ErrAmount), want: false},
		"nil kind and nil error":       {kind: nil, err: nil, want: true},
		"nil kind and typed nil error": {kind: nil, err: (*Error)(nil), want: true},
		"nil kind and error":           {kind: nil, err: ErrState, want: false},
		"kind and nil error":           {kind: ErrState, err: nil, want: false},
		"nil kind and empty group":     {kind: nil, err: Append(nil, nil), want: true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "nothing") != nil {
		t.Fatal("wrapping nil must give nil")
	}
	if Wrapf(nil, "nothing %d", 1) != nil {
		t.Fatal("wrapping nil must give nil")
	}

	std := stdlib.New("disk full")
	err := Wrapf(Wrap(std, "write"), "vault %s", "main")
	if got, want := err.Error(), "vault main: write: disk full"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	if errors.Cause(err) != std {
		t.Fatal("cause must be the original error")
	}
	if !hasStack(err) {
		t.Fatal("wrapped error must carry a stack trace")
	}
}

func TestNew(t *testing.T) {
	err := errFixture.Newf("want %d", 2)
	if !errFixture.Is(err) {
		t.Fatalf("want fixture kind, got %+v", err)
	}
	if got, want := err.Error(), "want 2: fixture"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

var errFixture = Register(9999, "fixture")

func TestRegisterDuplicateCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("want a panic")
		}
	}()
	Register(ErrNotFound.code, "lost")
}

func TestRecover(t *testing.T) {
	explode := func() (err error) {
		defer Recover(&err)
		panic("boom")
	}

	err := explode()
	if !ErrPanic.Is(err) {
		t.Fatalf("want panic error, got %+v", err)
	}
	code, log := ABCIInfo(err, false)
	if code != ErrPanic.code || log != internalABCILog {
		t.Fatalf("panic details must be hidden, got %d %q", code, log)
	}
}
