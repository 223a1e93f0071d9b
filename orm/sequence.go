package orm

import (
	"encoding/binary"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Sequence is a persistent counter. Its encoded values sort in the same
// order as the numbers, so they can be used as keys directly.
type Sequence struct {
	key []byte
}

// NewSequence returns the counter stored under "_s.<bucket>:<name>".
func NewSequence(bucket, name string) Sequence {
	return Sequence{key: []byte("_s." + bucket + ":" + name)}
}

// NextVal advances the counter and returns the new value encoded.
func (s Sequence) NextVal(db vault.KVStore) ([]byte, error) {
	_, raw, err := s.advance(db)
	return raw, err
}

// NextInt advances the counter and returns the new value.
func (s Sequence) NextInt(db vault.KVStore) (int64, error) {
	n, _, err := s.advance(db)
	return n, err
}

// Latest is the last value handed out, zero for a fresh counter.
func (s Sequence) Latest(db vault.ReadOnlyKVStore) (int64, error) {
	raw, err := db.Get(s.key)
	if err != nil {
		return 0, errors.Wrap(err, "load sequence")
	}
	return DecodeSequence(raw), nil
}

func (s Sequence) advance(db vault.KVStore) (int64, []byte, error) {
	n, err := s.Latest(db)
	if err != nil {
		return 0, nil, err
	}
	n++
	raw := EncodeSequence(n)
	if err := db.Set(s.key, raw); err != nil {
		return 0, nil, errors.Wrap(err, "save sequence")
	}
	return n, raw, nil
}

// DecodeSequence reads a big endian uint64. Nil is zero.
func DecodeSequence(raw []byte) int64 {
	if raw == nil {
		return 0
	}
	return int64(binary.BigEndian.Uint64(raw))
}

// EncodeSequence writes n as 8 big endian bytes.
func EncodeSequence(n int64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(n))
	return raw
}
