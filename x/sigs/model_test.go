package sigs

import (
	"testing"

	"github.com/iov-one/vault/crypto"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketLoadSave(t *testing.T) {
	db := store.MemStore()
	b := NewBucket()
	pub := crypto.GenPrivKeyEd25519().PublicKey()

	fresh, err := b.Load(db, pub)
	require.NoError(t, err)
	assert.Equal(t, &UserData{Pubkey: pub}, fresh)

	var stored UserData
	assert.True(t, errors.ErrNotFound.Is(b.One(db, pub.Address(), &stored)), "load must not create")

	fresh.Sequence = 7
	require.NoError(t, b.Save(db, fresh))

	loaded, err := b.Load(db, pub)
	require.NoError(t, err)
	assert.Equal(t, int64(7), loaded.Sequence)
	assert.Equal(t, pub.Ed25519, loaded.Pubkey.Ed25519)

	assert.True(t, errors.ErrEmpty.Is(b.Save(db, &UserData{})))
}

func TestUserDataConsume(t *testing.T) {
	cases := map[string]struct {
		current int64
		seq     int64
		wantErr *errors.Error
		want    int64
	}{
		"first signature":    {current: 0, seq: 0, want: 1},
		"later signature":    {current: 41, seq: 41, want: 42},
		"replay":             {current: 3, seq: 2, wantErr: ErrInvalidSequence, want: 3},
		"from the future":    {current: 3, seq: 4, wantErr: ErrInvalidSequence, want: 3},
		"sequence exhausted": {current: maxSequence, seq: maxSequence, wantErr: errors.ErrOverflow, want: maxSequence},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			u := &UserData{Sequence: tc.current}
			err := u.Consume(tc.seq)
			assert.True(t, tc.wantErr.Is(err), "got %+v", err)
			assert.Equal(t, tc.want, u.Sequence)
		})
	}
}

func TestUserDataValidate(t *testing.T) {
	pub := crypto.GenPrivKeyEd25519().PublicKey()

	cases := map[string]struct {
		user  *UserData
		field string
		want  *errors.Error
	}{
		"valid":             {user: &UserData{Pubkey: pub, Sequence: 17}},
		"missing key":       {user: &UserData{}, field: "Pubkey", want: errors.ErrEmpty},
		"empty key":         {user: &UserData{Pubkey: &crypto.PublicKey{}}, field: "Pubkey", want: errors.ErrEmpty},
		"negative sequence": {user: &UserData{Pubkey: pub, Sequence: -30}, field: "Sequence", want: ErrInvalidSequence},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.user.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, tc.want.Is(err), "got %+v", err)
			assert.Len(t, errors.FieldErrors(err, tc.field), 1)
		})
	}
}
