package app

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// CommitStore keeps two savepoints over the persistent store. DeliverTx
// and genesis write to the deliver savepoint, which Commit persists.
// CheckTx writes to the check savepoint, which Commit drops so the
// mempool starts over from the new block.
type CommitStore struct {
	committed vault.CommitKVStore
	deliver   vault.KVCacheWrap
	check     vault.KVCacheWrap
}

// NewCommitStore panics when the latest version cannot be loaded. The
// node cannot run without its state.
func NewCommitStore(committed vault.CommitKVStore) *CommitStore {
	if err := committed.LoadLatestVersion(); err != nil {
		panic(errors.Wrap(errors.ErrDatabase, err.Error()))
	}
	cs := &CommitStore{committed: committed}
	cs.reset()
	return cs
}

func (cs *CommitStore) reset() {
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
}

func (cs *CommitStore) CommitInfo() (vault.CommitID, error) {
	return cs.committed.LatestVersion()
}

func (cs *CommitStore) Commit() (vault.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return vault.CommitID{}, errors.Wrap(err, "write deliver state")
	}
	cs.check.Discard()

	id, err := cs.committed.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	cs.reset()
	return id, nil
}

func (cs *CommitStore) CheckStore() vault.CacheableKVStore   { return cs.check }
func (cs *CommitStore) DeliverStore() vault.CacheableKVStore { return cs.deliver }

// ReadStore sees committed state only.
func (cs *CommitStore) ReadStore() vault.ReadOnlyKVStore {
	return cs.committed.CacheWrap()
}

// Keys under "_v:" belong to the application. Bucket names cannot start
// with an underscore, so there is no collision.
var chainIDKey = []byte("_v:chainID")

// loadChainID returns "" before genesis.
func loadChainID(db vault.ReadOnlyKVStore) (string, error) {
	raw, err := db.Get(chainIDKey)
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(raw), nil
}

// saveChainID refuses to overwrite an existing chain id.
func saveChainID(db vault.KVStore, chainID string) error {
	if !vault.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}
	switch exists, err := db.Has(chainIDKey); {
	case err != nil:
		return errors.Wrap(err, "load chain id")
	case exists:
		return errors.Wrap(errors.ErrImmutable, "chain id already set")
	}
	return errors.Wrap(db.Set(chainIDKey, []byte(chainID)), "save chain id")
}
