package store

import (
	"bytes"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest/assert"
)

// StoreFactory builds a fresh store for one conformance run. The returned
// function releases any resources held by the store.
type StoreFactory func() (CacheableKVStore, func())

// Conformance runs the behaviour every CacheableKVStore implementation
// must share against a store built by the factory. It lives outside of
// the _test files so that backends in other packages can reuse it.
type Conformance struct {
	factory StoreFactory
}

func NewConformance(f StoreFactory) *Conformance {
	return &Conformance{factory: f}
}

// Run executes all conformance checks as subtests.
func (c *Conformance) Run(t *testing.T) {
	t.Run("read write", c.ReadWrite)
	t.Run("cache layers", c.CacheLayers)
	t.Run("random iteration", c.RandomIteration)
	t.Run("shadowed iteration", c.ShadowedIteration)
}

// ReadWrite ensures that values written through a cache wrap are only
// visible to the parent after Write.
func (c *Conformance) ReadWrite(t *testing.T) {
	kv, cleanup := c.factory()
	defer cleanup()

	mustHave(t, kv, "vault:main", "")
	assert.Nil(t, kv.Set([]byte("vault:main"), []byte("open")))
	mustHave(t, kv, "vault:main", "open")

	cache := kv.CacheWrap()
	mustHave(t, cache, "vault:main", "open")
	assert.Nil(t, cache.Set([]byte("vault:side"), []byte("paused")))
	assert.Nil(t, cache.Delete([]byte("vault:main")))
	mustHave(t, cache, "vault:side", "paused")
	mustHave(t, cache, "vault:main", "")
	mustHave(t, kv, "vault:side", "")
	mustHave(t, kv, "vault:main", "open")

	assert.Nil(t, cache.Write())
	mustHave(t, kv, "vault:side", "paused")
	mustHave(t, kv, "vault:main", "")
}

// CacheLayers stacks cache wraps and checks that discarding one layer
// drops only the changes made in that layer.
func (c *Conformance) CacheLayers(t *testing.T) {
	kv, cleanup := c.factory()
	defer cleanup()

	assert.Nil(t, kv.Set([]byte("a"), []byte("1")))
	assert.Nil(t, kv.Set([]byte("b"), []byte("1")))

	outer := kv.CacheWrap()
	assert.Nil(t, outer.Set([]byte("a"), []byte("2")))

	dropped := outer.CacheWrap()
	assert.Nil(t, dropped.Set([]byte("b"), []byte("3")))
	assert.Nil(t, dropped.Delete([]byte("a")))
	mustHave(t, dropped, "a", "")
	dropped.Discard()

	kept := outer.CacheWrap()
	assert.Nil(t, kept.Set([]byte("c"), []byte("4")))
	assert.Nil(t, kept.Write())

	mustHave(t, outer, "a", "2")
	mustHave(t, outer, "b", "1")
	mustHave(t, outer, "c", "4")
	mustHave(t, kv, "a", "1")
	mustHave(t, kv, "c", "")

	assert.Nil(t, outer.Write())
	mustHave(t, kv, "a", "2")
	mustHave(t, kv, "b", "1")
	mustHave(t, kv, "c", "4")
}

// RandomIteration writes random data into the store and compares range
// scans in both directions with a sorted in-memory copy.
func (c *Conformance) RandomIteration(t *testing.T) {
	kv, cleanup := c.factory()
	defer cleanup()

	rnd := rand.New(rand.NewSource(42))
	ref := make(map[string]string)
	for i := 0; i < 200; i++ {
		key := fmt.Sprintf("%04x", rnd.Intn(1<<12))
		val := fmt.Sprintf("v%d", i)
		ref[key] = val
		assert.Nil(t, kv.Set([]byte(key), []byte(val)))
	}
	for i := 0; i < 20; i++ {
		key := fmt.Sprintf("%04x", rnd.Intn(1<<12))
		delete(ref, key)
		assert.Nil(t, kv.Delete([]byte(key)))
	}

	ranges := map[string]struct {
		start, end []byte
	}{
		"everything": {nil, nil},
		"lower half": {nil, []byte("0800")},
		"upper half": {[]byte("0800"), nil},
		"middle":     {[]byte("0400"), []byte("0c00")},
	}
	for name, r := range ranges {
		t.Run(name, func(t *testing.T) {
			want := expectRange(ref, r.start, r.end)
			it, err := kv.Iterator(r.start, r.end)
			assert.Nil(t, err)
			assert.Equal(t, want, drain(t, it))

			rit, err := kv.ReverseIterator(r.start, r.end)
			assert.Nil(t, err)
			assert.Equal(t, reversed(want), drain(t, rit))
		})
	}
}

// ShadowedIteration iterates over a cache wrap whose changes overwrite
// and delete entries of the parent store.
func (c *Conformance) ShadowedIteration(t *testing.T) {
	kv, cleanup := c.factory()
	defer cleanup()

	for _, k := range []string{"b", "d", "f", "h"} {
		assert.Nil(t, kv.Set([]byte(k), []byte("parent")))
	}

	cache := kv.CacheWrap()
	assert.Nil(t, cache.Set([]byte("a"), []byte("cache")))
	assert.Nil(t, cache.Set([]byte("d"), []byte("cache")))
	assert.Nil(t, cache.Delete([]byte("f")))
	assert.Nil(t, cache.Set([]byte("g"), []byte("cache")))
	assert.Nil(t, cache.Delete([]byte("g")))
	assert.Nil(t, cache.Delete([]byte("z")))

	want := []Model{
		Pair([]byte("a"), []byte("cache")),
		Pair([]byte("b"), []byte("parent")),
		Pair([]byte("d"), []byte("cache")),
		Pair([]byte("h"), []byte("parent")),
	}

	it, err := cache.Iterator(nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, want, drain(t, it))

	rit, err := cache.ReverseIterator(nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, reversed(want), drain(t, rit))

	it, err = cache.Iterator([]byte("c"), []byte("h"))
	assert.Nil(t, err)
	assert.Equal(t, want[2:3], drain(t, it))

	// Parent is not affected until the cache is written.
	it, err = kv.Iterator(nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, 4, len(drain(t, it)))

	assert.Nil(t, cache.Write())
	it, err = kv.Iterator(nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, want, drain(t, it))
}

// mustHave checks Get and Has for a key. An empty want means the key must
// be absent.
func mustHave(t testing.TB, kv ReadOnlyKVStore, key, want string) {
	t.Helper()

	got, err := kv.Get([]byte(key))
	assert.Nil(t, err)
	has, err := kv.Has([]byte(key))
	assert.Nil(t, err)

	if want == "" {
		if got != nil || has {
			t.Fatalf("key %q: want absent, got %q", key, got)
		}
		return
	}
	if !has || !bytes.Equal(got, []byte(want)) {
		t.Fatalf("key %q: want %q, got %q (has %v)", key, want, got, has)
	}
}

func drain(t testing.TB, it Iterator) []Model {
	t.Helper()
	defer it.Release()

	var res []Model
	for {
		key, value, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res
		}
		assert.Nil(t, err)
		res = append(res, Pair(key, value))
	}
}

func expectRange(ref map[string]string, start, end []byte) []Model {
	keys := make([]string, 0, len(ref))
	for k := range ref {
		if start != nil && k < string(start) {
			continue
		}
		if end != nil && k >= string(end) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var res []Model
	for _, k := range keys {
		res = append(res, Pair([]byte(k), []byte(ref[k])))
	}
	return res
}

func reversed(models []Model) []Model {
	if models == nil {
		return nil
	}
	res := make([]Model, len(models))
	for i, m := range models {
		res[len(models)-1-i] = m
	}
	return res
}
