package sigs

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/crypto"
	"github.com/iov-one/vault/errors"
)

// signPrefix versions the layout of the signed bytes.
var signPrefix = []byte{0x00, 0xCA, 0xFE, 0x00}

/*
BuildSignBytes returns the sha512 digest of

	prefix (4 bytes) | len(chainID) (1 byte) | chainID | seq (8 bytes, big endian) | payload

Binding the chain id and the sequence makes a signature valid for exactly
one transaction on one chain.
*/
func BuildSignBytes(payload []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrapf(ErrInvalidSequence, "negative sequence %d", seq)
	}
	if !vault.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}

	buf := make([]byte, 0, len(signPrefix)+1+len(chainID)+8+len(payload))
	buf = append(buf, signPrefix...)
	buf = append(buf, byte(len(chainID)))
	buf = append(buf, chainID...)
	var seqBytes [8]byte
	binary.BigEndian.PutUint64(seqBytes[:], uint64(seq))
	buf = append(buf, seqBytes[:]...)
	buf = append(buf, payload...)

	digest := sha512.Sum512(buf)
	return digest[:], nil
}

// SignTx signs tx with the given sequence of the signer.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "sign bytes")
	}
	digest, err := BuildSignBytes(payload, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(digest)
	if err != nil {
		return nil, errors.Wrap(err, "sign")
	}
	return &StdSignature{Sequence: seq, Pubkey: signer.PublicKey(), Signature: sig}, nil
}

// NextNonce returns the sequence the next signature of addr must carry.
// Unknown signers start at zero.
func NextNonce(db vault.ReadOnlyKVStore, addr vault.Address) (int64, error) {
	var u UserData
	err := NewBucket().One(db, addr, &u)
	switch {
	case errors.ErrNotFound.Is(err):
		return 0, nil
	case err != nil:
		return 0, errors.Wrap(err, "load signer")
	}
	return u.Sequence, nil
}

// verifySignatures checks every signature of tx and bumps the sequence of
// each signer. Signer conditions are returned in signature order.
func verifySignatures(db vault.KVStore, tx SignedTx, chainID string) ([]vault.Condition, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "sign bytes")
	}
	sigs := tx.GetSignatures()
	signers := make([]vault.Condition, 0, len(sigs))
	for i, sig := range sigs {
		cond, err := verifySignature(db, sig, payload, chainID)
		if err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		signers = append(signers, cond)
	}
	return signers, nil
}

func verifySignature(db vault.KVStore, sig *StdSignature, payload []byte, chainID string) (vault.Condition, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	digest, err := BuildSignBytes(payload, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}

	b := NewBucket()
	user, err := b.Load(db, sig.Pubkey)
	if err != nil {
		return nil, err
	}
	if !user.Pubkey.Verify(digest, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}
	if err := user.Consume(sig.Sequence); err != nil {
		return nil, err
	}
	if err := b.Save(db, user); err != nil {
		return nil, err
	}
	return user.Pubkey.Condition(), nil
}
