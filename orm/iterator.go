package orm

import (
	"bytes"
	"reflect"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// ModelIterator iterates over models stored in a ModelBucket.
type ModelIterator interface {
	// Next moves the iterator to the next entity and loads it into given
	// destination. It returns the key of the entity, without the bucket
	// prefix.
	//
	// Returns ErrIteratorDone if there are no more entities.
	Next(dest Model) ([]byte, error)

	// Release releases the Iterator.
	Release()
}

type modelIterator struct {
	// this is the raw KVStoreIterator
	iterator vault.Iterator
	// this is the bucketPrefix to strip from each key
	bucketPrefix []byte
	model        reflect.Type
}

var _ ModelIterator = (*modelIterator)(nil)

func (i *modelIterator) Next(dest Model) ([]byte, error) {
	key, value, err := i.iterator.Next()
	if err != nil {
		return nil, err
	}
	if tp := reflect.TypeOf(dest); tp == nil || tp.Kind() != reflect.Ptr || tp.Elem() != i.model {
		return nil, errors.Wrapf(errors.ErrType, "%T cannot be represented as %s", dest, i.model)
	}
	if err := dest.Unmarshal(value); err != nil {
		return nil, errors.Wrapf(err, "cannot unmarshal %T", dest)
	}
	if !bytes.HasPrefix(key, i.bucketPrefix) {
		return nil, errors.Wrapf(errors.ErrDatabase, "no bucket prefix: %X", key)
	}
	return key[len(i.bucketPrefix):], nil
}

func (i *modelIterator) Release() {
	i.iterator.Release()
}
