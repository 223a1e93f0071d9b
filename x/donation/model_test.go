package donation

import (
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestStateValidate(t *testing.T) {
	admin := vaulttest.NewCondition().Address()

	cases := map[string]struct {
		State   State
		WantErr map[string]*errors.Error
	}{
		"valid": {
			State: State{
				Admin:              admin,
				TotalContributed:   10,
				TotalWithdrawn:     10,
				ContributionCount:  3,
				UniqueContributors: 2,
				MinAmount:          1,
				MaxAmount:          2,
			},
			WantErr: map[string]*errors.Error{
				"Admin":              nil,
				"MaxAmount":          nil,
				"TotalWithdrawn":     nil,
				"UniqueContributors": nil,
			},
		},
		"zero value": {
			State: State{},
			WantErr: map[string]*errors.Error{
				"Admin":              errors.ErrInput,
				"MaxAmount":          errors.ErrAmount,
				"TotalWithdrawn":     nil,
				"UniqueContributors": nil,
			},
		},
		"more withdrawn than contributed": {
			State: State{
				Admin:            admin,
				TotalContributed: 10,
				TotalWithdrawn:   11,
				MinAmount:        1,
				MaxAmount:        2,
			},
			WantErr: map[string]*errors.Error{
				"TotalWithdrawn": errors.ErrState,
			},
		},
		"more contributors than contributions": {
			State: State{
				Admin:              admin,
				ContributionCount:  1,
				UniqueContributors: 2,
				MinAmount:          1,
				MaxAmount:          2,
			},
			WantErr: map[string]*errors.Error{
				"UniqueContributors": errors.ErrState,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.State.Validate()
			for field, want := range tc.WantErr {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}

func TestContributorValidate(t *testing.T) {
	owner := vaulttest.NewCondition().Address()

	cases := map[string]struct {
		Contributor Contributor
		WantErr     map[string]*errors.Error
	}{
		"valid": {
			Contributor: Contributor{
				Owner:                owner,
				TotalContributed:     5,
				ContributionCount:    1,
				LastContributionTime: 1000,
				Tier:                 Bronze,
			},
			WantErr: map[string]*errors.Error{
				"Owner":                nil,
				"TotalContributed":     nil,
				"ContributionCount":    nil,
				"LastContributionTime": nil,
				"Tier":                 nil,
			},
		},
		"zero value": {
			Contributor: Contributor{},
			WantErr: map[string]*errors.Error{
				"Owner":                errors.ErrInput,
				"TotalContributed":     errors.ErrAmount,
				"ContributionCount":    errors.ErrState,
				"LastContributionTime": nil,
				"Tier":                 errors.ErrInput,
			},
		},
		"negative time": {
			Contributor: Contributor{
				Owner:                owner,
				TotalContributed:     5,
				ContributionCount:    1,
				LastContributionTime: -1,
				Tier:                 Gold,
			},
			WantErr: map[string]*errors.Error{
				"LastContributionTime": errors.ErrState,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.Contributor.Validate()
			for field, want := range tc.WantErr {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}

func TestContributorBucketByVault(t *testing.T) {
	db := store.MemStore()
	b := NewContributorBucket()

	entry := func(owner vault.Address, total uint64) *Contributor {
		return &Contributor{
			Owner:             owner,
			TotalContributed:  total,
			ContributionCount: 1,
			Tier:              Classify(total),
		}
	}

	alice := vaulttest.NewCondition().Address()
	bob := vaulttest.NewCondition().Address()
	assert.Nil(t, b.Save(db, "a", entry(alice, 1)))
	assert.Nil(t, b.Save(db, "a", entry(bob, 2)))
	assert.Nil(t, b.Save(db, "ab", entry(alice, 3)))

	got, err := b.ByVault(db, "a")
	assert.Nil(t, err)
	assert.Equal(t, 2, len(got))
	for _, c := range got {
		if c.TotalContributed > 2 {
			t.Fatalf("contributor of another vault returned: %+v", c)
		}
	}

	got, err = b.ByVault(db, "ab")
	assert.Nil(t, err)
	assert.Equal(t, 1, len(got))
	assert.Equal(t, uint64(3), got[0].TotalContributed)

	c, err := b.GetContributor(db, "ab", alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(3), c.TotalContributed)

	_, err = b.GetContributor(db, "ab", bob)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestCopy(t *testing.T) {
	s := &State{Admin: vaulttest.NewCondition().Address(), MinAmount: 1, MaxAmount: 2}
	cp := s.Copy()
	assert.Equal(t, s, cp)
	cp.Admin[0] ^= 0xff
	if s.Admin.Equals(cp.Admin) {
		t.Fatal("admin address is shared")
	}

	c := &Contributor{Owner: vaulttest.NewCondition().Address(), Tier: Gold}
	ccp := c.Copy()
	assert.Equal(t, c, ccp)
	ccp.Owner[0] ^= 0xff
	if c.Owner.Equals(ccp.Owner) {
		t.Fatal("owner address is shared")
	}
}
