package gconf

import (
	"reflect"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x"
)

// OwnedConfig is a configuration that only its owner may change.
type OwnedConfig interface {
	Configuration
	GetOwner() vault.Address
}

// PatchMsg carries a partial configuration. Zero fields of the patch keep
// the stored value.
type PatchMsg interface {
	vault.Msg
	ConfigPatch() OwnedConfig
}

// UpdateConfigurationHandler applies PatchMsg to the configuration of one
// package. The transaction must be signed by the current owner.
type UpdateConfigurationHandler struct {
	pkg      string
	confType reflect.Type
	auth     x.Authenticator
}

var _ vault.Handler = UpdateConfigurationHandler{}

// NewUpdateConfigurationHandler returns a handler for configurations of
// the same type as proto, which must be a pointer to a struct.
func NewUpdateConfigurationHandler(pkg string, proto OwnedConfig, auth x.Authenticator) UpdateConfigurationHandler {
	return UpdateConfigurationHandler{
		pkg:      pkg,
		confType: reflect.TypeOf(proto).Elem(),
		auth:     auth,
	}
}

func (h UpdateConfigurationHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	if err := h.update(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{}, nil
}

func (h UpdateConfigurationHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	if err := h.update(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{}, nil
}

func (h UpdateConfigurationHandler) update(ctx vault.Context, db vault.KVStore, tx vault.Tx) error {
	conf := reflect.New(h.confType).Interface().(OwnedConfig)
	if err := Load(db, h.pkg, conf); err != nil {
		return err
	}
	owner := conf.GetOwner()
	if owner == nil || !h.auth.HasAddress(ctx, owner) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s configuration owner must sign", h.pkg)
	}

	msg, err := tx.GetMsg()
	if err != nil {
		return err
	}
	pmsg, ok := msg.(PatchMsg)
	if !ok {
		return errors.Wrapf(errors.ErrType, "%T is not a configuration patch", msg)
	}
	if err := pmsg.Validate(); err != nil {
		return err
	}
	p := pmsg.ConfigPatch()
	if p == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	if err := applyPatch(conf, p); err != nil {
		return err
	}
	return Save(db, h.pkg, conf)
}

// applyPatch copies every non zero field of p into conf.
func applyPatch(conf, p OwnedConfig) error {
	if reflect.TypeOf(conf) != reflect.TypeOf(p) {
		return errors.Wrapf(errors.ErrType, "patch %T for %T", p, conf)
	}
	dst := reflect.ValueOf(conf).Elem()
	src := reflect.ValueOf(p).Elem()
	for i := 0; i < src.NumField(); i++ {
		f := src.Field(i)
		if reflect.DeepEqual(f.Interface(), reflect.Zero(f.Type()).Interface()) {
			continue
		}
		dst.Field(i).Set(f)
	}
	return nil
}
