package vault

import (
	"reflect"

	"github.com/iov-one/vault/errors"
)

// Marshaller serializes a value. Implementations may validate first.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent values round trip through bytes. Unmarshal needs a pointer
// receiver, which is why it is split from Marshaller.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Msg is the state transition a transaction asks for.
type Msg interface {
	Persistent

	// Path selects the handler, for example "donation/deposit". Only
	// [0-9A-Za-z_\-/] are used.
	Path() string

	// Validate runs the checks that need no state.
	Validate() error
}

// Tx is what a client submits: a message plus whatever the decorators
// need to authenticate it.
type Tx interface {
	GetMsg() (Msg, error)
}

// TxDecoder parses raw transaction bytes.
type TxDecoder func(txBytes []byte) (Tx, error)

// GetPath is the message path of tx, "(missing)" when it carries none.
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err != nil || msg == nil {
		return "(missing)"
	}
	return msg.Path()
}

// LoadMsg copies the message of tx into destination and validates it.
// Destination must point to the concrete message type.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	switch {
	case err != nil:
		return errors.Wrap(err, "cannot get transaction message")
	case msg == nil:
		return errors.Wrap(errors.ErrEmpty, "transaction has no message")
	}

	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr || dest.IsNil() {
		return errors.Wrapf(errors.ErrHuman, "destination must be a non nil pointer, got %T", destination)
	}
	src := reflect.Indirect(reflect.ValueOf(msg))
	if !src.Type().AssignableTo(dest.Elem().Type()) {
		return errors.Wrapf(errors.ErrType, "want %T message, got %T", destination, msg)
	}
	dest.Elem().Set(src)

	return errors.Wrap(msg.Validate(), "invalid message")
}

// ExtractMsgFromSum unpacks the message held by a protobuf oneof wrapper,
// for example a Tx_ContributeMsg. The wrapper must be a pointer to a
// struct with a single field holding a Msg.
func ExtractMsgFromSum(sum interface{}) (Msg, error) {
	if sum == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "message container is nil")
	}
	val := reflect.ValueOf(sum)
	if val.Kind() != reflect.Ptr {
		return nil, errors.Wrapf(errors.ErrType, "invalid message container %T", sum)
	}
	if val.IsNil() {
		return nil, errors.Wrap(errors.ErrEmpty, "message container is nil")
	}
	container := val.Elem()
	if container.Kind() != reflect.Struct || container.NumField() != 1 {
		return nil, errors.Wrapf(errors.ErrType, "invalid message container %T", sum)
	}
	field := container.Field(0)
	if field.Kind() == reflect.Ptr && field.IsNil() {
		return nil, errors.Wrapf(errors.ErrEmpty, "%T holds no message", sum)
	}
	if !field.CanInterface() {
		return nil, errors.Wrapf(errors.ErrType, "invalid message container %T", sum)
	}
	msg, ok := field.Interface().(Msg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T does not hold a message", sum)
	}
	return msg, nil
}
