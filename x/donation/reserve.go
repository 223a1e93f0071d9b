package donation

import "github.com/iov-one/vault"

// Reserve computes the amount of a vault that can be withdrawn. Hosts that
// require part of the balance to stay locked (for example to pay for the
// storage of the vault) provide their own implementation.
type Reserve interface {
	Available(db vault.ReadOnlyKVStore, vaultID string, s *State) (uint64, error)
}

// NoReserve makes the whole balance available.
type NoReserve struct{}

var _ Reserve = NoReserve{}

func (NoReserve) Available(db vault.ReadOnlyKVStore, vaultID string, s *State) (uint64, error) {
	return s.Balance(), nil
}

// MinimumReserve keeps the given amount locked in every vault.
type MinimumReserve uint64

var _ Reserve = MinimumReserve(0)

func (m MinimumReserve) Available(db vault.ReadOnlyKVStore, vaultID string, s *State) (uint64, error) {
	b := s.Balance()
	if b <= uint64(m) {
		return 0, nil
	}
	return b - uint64(m), nil
}
