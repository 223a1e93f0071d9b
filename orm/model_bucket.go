package orm

import (
	"reflect"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
)

// Model is an entity that a ModelBucket can store.
type Model interface {
	vault.Persistent
	Validate() error
}

// ModelBucket stores models of a single type. Keys passed in and returned
// never include the bucket prefix.
type ModelBucket interface {
	// One loads the entity stored under key into dest. A missing entity
	// is ErrNotFound, a dest of another type is ErrType.
	One(db vault.ReadOnlyKVStore, key []byte, dest Model) error

	// Has is One without reading the value. It returns nil or
	// ErrNotFound.
	Has(db vault.ReadOnlyKVStore, key []byte) error

	// Put validates m and stores it under key, replacing any previous
	// value. An empty key is taken from the id sequence of the bucket.
	// The key used is returned.
	Put(db vault.KVStore, key []byte, m Model) ([]byte, error)

	// Delete fails with ErrNotFound when there is nothing to delete.
	Delete(db vault.KVStore, key []byte) error

	// PrefixScan iterates over all entities whose key starts with prefix.
	PrefixScan(db vault.ReadOnlyKVStore, prefix []byte, reverse bool) (ModelIterator, error)

	// Register serves the raw bucket content to queries under name.
	Register(name string, r vault.QueryRouter)
}

// NewModelBucket panics unless m is a pointer. Every entity of the bucket
// has the type m points to.
func NewModelBucket(name string, m Model) ModelBucket {
	b := NewBucket(name)

	tp := reflect.TypeOf(m)
	if tp.Kind() != reflect.Ptr {
		panic("model must be a pointer")
	}

	return &modelBucket{
		b:     b,
		idSeq: b.Sequence("id"),
		model: tp.Elem(),
	}
}

type modelBucket struct {
	b     Bucket
	idSeq Sequence
	model reflect.Type
}

func (mb *modelBucket) Register(name string, r vault.QueryRouter) {
	mb.b.Register(name, r)
}

func (mb *modelBucket) One(db vault.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := db.Get(mb.b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot get from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s not in the store", mb.b.Name())
	}
	if err := mb.assignable(dest); err != nil {
		return err
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "cannot unmarshal %T", dest)
	}
	return nil
}

func (mb *modelBucket) assignable(dest Model) error {
	tp := reflect.TypeOf(dest)
	if tp == nil || tp.Kind() != reflect.Ptr || tp.Elem() != mb.model {
		return errors.Wrapf(errors.ErrType, "%T cannot be represented as %s", dest, mb.model)
	}
	return nil
}

func (mb *modelBucket) Has(db vault.ReadOnlyKVStore, key []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrNotFound, "nil key")
	}

	ok, err := db.Has(mb.b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot query the database")
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s not in the store", mb.b.Name())
	}
	return nil
}

func (mb *modelBucket) Put(db vault.KVStore, key []byte, m Model) ([]byte, error) {
	if err := mb.assignable(m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid model")
	}

	if len(key) == 0 {
		var err error
		key, err = mb.idSeq.NextVal(db)
		if err != nil {
			return nil, errors.Wrap(err, "ID sequence")
		}
	}

	raw, err := m.Marshal()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot marshal %T", m)
	}
	if err := db.Set(mb.b.DBKey(key), raw); err != nil {
		return nil, errors.Wrap(err, "cannot store in the database")
	}
	return key, nil
}

func (mb *modelBucket) Delete(db vault.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	if err := db.Delete(mb.b.DBKey(key)); err != nil {
		return errors.Wrap(err, "cannot delete from the database")
	}
	return nil
}

func (mb *modelBucket) PrefixScan(db vault.ReadOnlyKVStore, prefix []byte, reverse bool) (ModelIterator, error) {
	start, end := store.PrefixRange(mb.b.DBKey(prefix))
	var (
		iter vault.Iterator
		err  error
	)
	if reverse {
		iter, err = db.ReverseIterator(start, end)
	} else {
		iter, err = db.Iterator(start, end)
	}
	if err != nil {
		return nil, errors.Wrap(err, "cannot create iterator")
	}
	return &modelIterator{
		iterator:     iter,
		bucketPrefix: mb.b.DBKey(nil),
		model:        mb.model,
	}, nil
}

var _ ModelBucket = (*modelBucket)(nil)
