package app

import (
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestResultSetEncoding(t *testing.T) {
	models := []vault.Model{
		vault.Pair([]byte("main"), []byte("first")),
		vault.Pair([]byte("side"), []byte("second")),
	}

	keySet, valueSet := SplitModels(models)
	rawKeys, err := EncodeResults(keySet)
	assert.Nil(t, err)
	rawValues, err := EncodeResults(valueSet)
	assert.Nil(t, err)

	keys, err := DecodeResults(rawKeys)
	assert.Nil(t, err)
	values, err := DecodeResults(rawValues)
	assert.Nil(t, err)

	got, err := JoinResults(keys, values)
	assert.Nil(t, err)
	assert.Equal(t, models, got)
}

func TestJoinResultsSizeMismatch(t *testing.T) {
	keys := &ResultSet{Results: [][]byte{[]byte("a"), []byte("b")}}
	values := &ResultSet{Results: [][]byte{[]byte("a")}}
	_, err := JoinResults(keys, values)
	assert.IsErr(t, errors.ErrState, err)
}

func TestUnmarshalOneResult(t *testing.T) {
	empty, err := EncodeResults(&ResultSet{})
	assert.Nil(t, err)
	var v rawValue
	assert.IsErr(t, errors.ErrNotFound, UnmarshalOneResult(empty, &v))

	assert.IsErr(t, errors.ErrInput, UnmarshalOneResult([]byte{0xff, 0xff}, &v))
}
