package orm

import (
	"testing"

	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestSequence(t *testing.T) {
	db := store.MemStore()

	a := NewSequence("bucket", "a")
	b := NewSequence("bucket", "b")

	latest, err := a.Latest(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), latest)

	for want := int64(1); want <= 3; want++ {
		got, err := a.NextInt(db)
		assert.Nil(t, err)
		assert.Equal(t, want, got)
	}

	// Sequences with different names are independent.
	val, err := b.NextVal(db)
	assert.Nil(t, err)
	assert.Equal(t, EncodeSequence(1), val)

	latest, err = a.Latest(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(3), latest)
}

func TestSequenceEncoding(t *testing.T) {
	cases := map[string]int64{
		"zero":  0,
		"one":   1,
		"large": 1 << 40,
	}
	for testName, n := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, n, DecodeSequence(EncodeSequence(n)))
		})
	}
	assert.Equal(t, int64(0), DecodeSequence(nil))
}
