package sigs

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/crypto"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
)

// BucketName prefixes the signer records.
const BucketName = "sigs"

// maxSequence is Number.MAX_SAFE_INTEGER, the largest nonce a javascript
// client can hold without losing precision.
const maxSequence = 1<<53 - 1

var _ orm.Model = (*UserData)(nil)

func (u *UserData) Validate() error {
	var errs error
	if u.Pubkey == nil || len(u.Pubkey.Ed25519) == 0 {
		errs = errors.AppendField(errs, "Pubkey", errors.ErrEmpty)
	}
	if u.Sequence < 0 {
		errs = errors.AppendField(errs, "Sequence", ErrInvalidSequence)
	}
	return errs
}

// Consume accepts seq only when it equals the current sequence, and then
// advances the sequence by one. A sequence is never accepted twice.
func (u *UserData) Consume(seq int64) error {
	if seq != u.Sequence {
		return errors.Wrapf(ErrInvalidSequence, "want %d, got %d", u.Sequence, seq)
	}
	if u.Sequence >= maxSequence {
		return errors.Wrap(errors.ErrOverflow, "sequence exhausted")
	}
	u.Sequence++
	return nil
}

// Bucket keeps UserData by signer address.
type Bucket struct {
	orm.ModelBucket
}

func NewBucket() Bucket {
	return Bucket{ModelBucket: orm.NewModelBucket(BucketName, &UserData{})}
}

// Load returns the record of pubkey, or a fresh one at sequence zero when
// the key never signed before.
func (b Bucket) Load(db vault.ReadOnlyKVStore, pubkey *crypto.PublicKey) (*UserData, error) {
	var u UserData
	switch err := b.One(db, pubkey.Address(), &u); {
	case errors.ErrNotFound.Is(err):
		return &UserData{Pubkey: pubkey}, nil
	case err != nil:
		return nil, errors.Wrap(err, "load signer")
	}
	return &u, nil
}

func (b Bucket) Save(db vault.KVStore, u *UserData) error {
	if u.Pubkey == nil {
		return errors.Wrap(errors.ErrEmpty, "public key")
	}
	_, err := b.Put(db, u.Pubkey.Address(), u)
	return err
}
