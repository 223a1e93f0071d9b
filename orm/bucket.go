/*
Package orm stores typed models under prefixed key spaces.

A Bucket owns every key starting with "<name>:". A ModelBucket adds
(de)serialization of one model type on top of it, and a Sequence hands
out increasing keys. Buckets register with the query router so clients
can read their content by key or by key prefix.

Everything is typed at compile time. Reflection is only used to create
fresh instances of the model type.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket is the raw key space of one model type.
type Bucket struct {
	name   string
	prefix []byte
}

var _ vault.QueryHandler = Bucket{}

// NewBucket panics unless name is 3 to 10 characters of [a-z_].
func NewBucket(name string) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("invalid bucket name %q", name))
	}
	return Bucket{name: name, prefix: []byte(name + ":")}
}

func (b Bucket) Name() string {
	return b.name
}

// Register serves the bucket under /path. An empty path uses the bucket
// name.
func (b Bucket) Register(path string, r vault.QueryRouter) {
	if path == "" {
		path = b.name
	}
	r.Register("/"+path, b)
}

// Query reads one key or every key with the given prefix. Both return
// full database keys.
func (b Bucket) Query(db vault.ReadOnlyKVStore, mod string, data []byte) ([]vault.Model, error) {
	switch mod {
	case vault.KeyQueryMod:
		key := b.DBKey(data)
		value, err := db.Get(key)
		if err != nil || value == nil {
			return nil, err
		}
		return []vault.Model{vault.Pair(key, value)}, nil
	case vault.PrefixQueryMod:
		return scanPrefix(db, b.DBKey(data))
	}
	return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
}

// DBKey prepends the bucket prefix. The result never shares memory with
// key or with another DBKey result.
func (b Bucket) DBKey(key []byte) []byte {
	out := make([]byte, 0, len(b.prefix)+len(key))
	out = append(out, b.prefix...)
	return append(out, key...)
}

// Sequence returns the named counter of this bucket.
func (b Bucket) Sequence(name string) Sequence {
	return NewSequence(b.name, name)
}

func scanPrefix(db vault.ReadOnlyKVStore, prefix []byte) ([]vault.Model, error) {
	start, end := store.PrefixRange(prefix)
	it, err := db.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	defer it.Release()

	var res []vault.Model
	for {
		switch key, value, err := it.Next(); {
		case errors.ErrIteratorDone.Is(err):
			return res, nil
		case err != nil:
			return nil, err
		default:
			res = append(res, vault.Pair(key, value))
		}
	}
}
