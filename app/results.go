package app

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

func EncodeResults(rs *ResultSet) ([]byte, error) {
	raw, err := rs.Marshal()
	return raw, errors.Wrap(asInput(err), "encode result set")
}

func DecodeResults(raw []byte) (*ResultSet, error) {
	var rs ResultSet
	if err := rs.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(asInput(err), "decode result set")
	}
	return &rs, nil
}

func asInput(err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(errors.ErrInput, err.Error())
}

// SplitModels turns models into a key set and a value set of the same
// length.
func SplitModels(models []vault.Model) (keys, values *ResultSet) {
	keys = &ResultSet{Results: make([][]byte, len(models))}
	values = &ResultSet{Results: make([][]byte, len(models))}
	for i, m := range models {
		keys.Results[i] = m.Key
		values.Results[i] = m.Value
	}
	return keys, values
}

// JoinResults is the inverse of SplitModels.
func JoinResults(keys, values *ResultSet) ([]vault.Model, error) {
	if len(keys.Results) != len(values.Results) {
		return nil, errors.Wrapf(errors.ErrState, "%d keys and %d values", len(keys.Results), len(values.Results))
	}
	models := make([]vault.Model, len(keys.Results))
	for i, k := range keys.Results {
		models[i] = vault.Pair(k, values.Results[i])
	}
	return models, nil
}

// UnmarshalOneResult loads the first entry of an encoded value set into o.
// An empty set is ErrNotFound.
func UnmarshalOneResult(raw []byte, o vault.Persistent) error {
	rs, err := DecodeResults(raw)
	if err != nil {
		return err
	}
	if len(rs.Results) == 0 {
		return errors.Wrap(errors.ErrNotFound, "empty result set")
	}
	return o.Unmarshal(rs.Results[0])
}
