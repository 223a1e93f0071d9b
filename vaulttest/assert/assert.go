/*
Package assert holds the small set of test assertions used across the
repository. Every assertion stops the test on failure.
*/
package assert

import (
	"reflect"
	"testing"

	"github.com/iov-one/vault/errors"
)

// Nil fails unless value is nil or a nil pointer, slice, map or similar.
func Nil(t testing.TB, value interface{}) {
	t.Helper()
	if value == nil {
		return
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		if v.IsNil() {
			return
		}
	}
	// %+v prints the stack of wrapped errors.
	t.Fatalf("want nil, got %+v", value)
}

// Equal fails unless want and got are deeply equal.
func Equal(t testing.TB, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("not equal\nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// Panics fails unless fn panics.
func Panics(t testing.TB, fn func()) {
	t.Helper()
	if !panics(fn) {
		t.Fatal("want a panic")
	}
}

func panics(fn func()) (ok bool) {
	defer func() {
		ok = recover() != nil
	}()
	fn()
	return false
}

// IsErr fails unless got is of the same kind as want. Kinds are matched
// with the Is method when want provides one.
func IsErr(t testing.TB, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	if is, ok := want.(interface{ Is(error) bool }); ok && is.Is(got) {
		return
	}
	t.Fatalf("want %q error, got %+v", want, got)
}

// FieldError checks the errors err carries for the given field. A nil
// want requires that there are none, otherwise exactly one error of the
// wanted kind must be present.
func FieldError(t testing.TB, err error, field string, want *errors.Error) {
	t.Helper()

	found := errors.FieldErrors(err, field)
	if want == nil {
		if len(found) != 0 {
			t.Fatalf("want no %q field error, got %q", field, found)
		}
		return
	}

	switch len(found) {
	case 0:
		t.Fatalf("want %q field error, got none", field)
	case 1:
		if !want.Is(found[0]) {
			t.Fatalf("want %q field error %q, got %q", field, want, found[0])
		}
	default:
		t.Fatalf("want one %q field error, got %d: %q", field, len(found), found)
	}
}
