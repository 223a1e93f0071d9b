package donation

import (
	"regexp"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
)

const (
	stateBucketName       = "vault"
	contributorBucketName = "contrib"
)

var isVaultID = regexp.MustCompile(`^[a-zA-Z0-9_.\-]{1,32}$`).MatchString

func validateVaultID(id string) error {
	if !isVaultID(id) {
		return errors.Wrapf(errors.ErrInput, "invalid vault id %q", id)
	}
	return nil
}

var _ orm.Model = (*State)(nil)

func (s *State) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Admin", s.Admin.Validate())
	errs = errors.AppendField(errs, "MaxAmount", validateLimits(s.MinAmount, s.MaxAmount))
	if s.TotalWithdrawn > s.TotalContributed {
		errs = errors.AppendField(errs, "TotalWithdrawn",
			errors.Wrap(errors.ErrState, "more withdrawn than contributed"))
	}
	if s.UniqueContributors > s.ContributionCount {
		errs = errors.AppendField(errs, "UniqueContributors",
			errors.Wrap(errors.ErrState, "more contributors than contributions"))
	}
	return errs
}

// Balance returns the amount held by the vault.
func (s *State) Balance() uint64 {
	return s.TotalContributed - s.TotalWithdrawn
}

// Copy returns a deep copy of the state.
func (s *State) Copy() *State {
	cp := *s
	cp.Admin = append(vault.Address(nil), s.Admin...)
	return &cp
}

// validateLimits ensures 0 < min < max.
func validateLimits(min, max uint64) error {
	if min == 0 {
		return errors.Wrap(errors.ErrAmount, "minimum amount must be greater than zero")
	}
	if max <= min {
		return errors.Wrapf(errors.ErrAmount, "maximum amount %d must be greater than minimum %d", max, min)
	}
	return nil
}

var _ orm.Model = (*Contributor)(nil)

func (c *Contributor) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	if c.TotalContributed == 0 {
		errs = errors.AppendField(errs, "TotalContributed", errors.ErrAmount)
	}
	if c.ContributionCount == 0 {
		errs = errors.AppendField(errs, "ContributionCount", errors.ErrState)
	}
	errs = errors.AppendField(errs, "FirstContributionTime", c.FirstContributionTime.Validate())
	errs = errors.AppendField(errs, "LastContributionTime", c.LastContributionTime.Validate())
	if c.LastContributionTime < c.FirstContributionTime {
		errs = errors.AppendField(errs, "LastContributionTime",
			errors.Wrap(errors.ErrState, "before first contribution"))
	}
	errs = errors.AppendField(errs, "Tier", c.Tier.Validate())
	return errs
}

// Copy returns a deep copy of the entry.
func (c *Contributor) Copy() *Contributor {
	cp := *c
	cp.Owner = append(vault.Address(nil), c.Owner...)
	return &cp
}

// StateBucket stores vault states by vault ID.
type StateBucket struct {
	orm.ModelBucket
}

// NewStateBucket returns a bucket for storing vault states.
func NewStateBucket() StateBucket {
	return StateBucket{
		ModelBucket: orm.NewModelBucket(stateBucketName, &State{}),
	}
}

// GetState loads the state of a vault. ErrNotInitialized is returned if
// the vault does not exist.
func (b StateBucket) GetState(db vault.ReadOnlyKVStore, vaultID string) (*State, error) {
	var s State
	switch err := b.One(db, []byte(vaultID), &s); {
	case err == nil:
		return &s, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrNotInitialized, "vault %q", vaultID)
	default:
		return nil, err
	}
}

// Save writes the state of a vault.
func (b StateBucket) Save(db vault.KVStore, vaultID string, s *State) error {
	_, err := b.Put(db, []byte(vaultID), s)
	return err
}

// ContributorBucket stores contributor entries. Each entry is keyed by the
// vault ID and the owner address so that all contributors of a vault can
// be listed with a prefix scan.
type ContributorBucket struct {
	orm.ModelBucket
}

// NewContributorBucket returns a bucket for storing contributor entries.
func NewContributorBucket() ContributorBucket {
	return ContributorBucket{
		ModelBucket: orm.NewModelBucket(contributorBucketName, &Contributor{}),
	}
}

// contributorKey returns "<vault id>:<owner>". A vault ID cannot contain a
// colon so the prefix of one vault never matches another.
func contributorKey(vaultID string, owner vault.Address) []byte {
	return append(vaultPrefix(vaultID), owner...)
}

func vaultPrefix(vaultID string) []byte {
	return []byte(vaultID + ":")
}

// GetContributor returns the entry of given owner or ErrNotFound.
func (b ContributorBucket) GetContributor(db vault.ReadOnlyKVStore, vaultID string, owner vault.Address) (*Contributor, error) {
	var c Contributor
	if err := b.One(db, contributorKey(vaultID, owner), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save writes the entry of its owner.
func (b ContributorBucket) Save(db vault.KVStore, vaultID string, c *Contributor) error {
	_, err := b.Put(db, contributorKey(vaultID, c.Owner), c)
	return err
}

// ByVault returns all contributors of a vault ordered by owner address.
func (b ContributorBucket) ByVault(db vault.ReadOnlyKVStore, vaultID string) ([]*Contributor, error) {
	it, err := b.PrefixScan(db, vaultPrefix(vaultID), false)
	if err != nil {
		return nil, errors.Wrap(err, "prefix scan")
	}
	defer it.Release()

	var res []*Contributor
	for {
		var c Contributor
		switch _, err := it.Next(&c); {
		case err == nil:
			res = append(res, &c)
		case errors.ErrIteratorDone.Is(err):
			return res, nil
		default:
			return nil, err
		}
	}
}
