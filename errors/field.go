package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field marks err as caused by the named field. Nested fields use dot
// notation and list elements their index, for example "Vaults.0.ID".
// A nil err gives nil.
func Field(name string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if len(args) != 0 {
		description = fmt.Sprintf(description, args...)
	}
	if !hasStack(err) {
		err = errors.WithStack(err)
	}
	return &fieldError{field: name, desc: description, parent: err}
}

// AppendField adds a field error for fieldErr to errs. Nil values are
// skipped, so a chain of validations can be collected without checks.
func AppendField(errs error, name string, fieldErr error) error {
	return Append(errs, Field(name, fieldErr, ""))
}

type fieldError struct {
	field  string
	desc   string
	parent error
}

func (e *fieldError) Error() string {
	if e.desc == "" {
		return fmt.Sprintf("field %q: %s", e.field, e.parent)
	}
	return fmt.Sprintf("field %q: %s: %s", e.field, e.desc, e.parent)
}

func (e *fieldError) Cause() error {
	return e.parent
}

func (e *fieldError) Field() string {
	return e.field
}

// FieldErrors returns all errors in err that were created for the named
// field. Groups are searched member by member. The search along a chain
// stops at the first field error with a matching name.
func FieldErrors(err error, name string) []error {
	var found []error
	for !isNilErr(err) {
		if f, ok := err.(interface{ Field() string }); ok && f.Field() == name {
			return append(found, err)
		}
		if group, ok := err.(unpacker); ok {
			for _, member := range group.Unpack() {
				found = append(found, FieldErrors(member, name)...)
			}
			return found
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return found
}
