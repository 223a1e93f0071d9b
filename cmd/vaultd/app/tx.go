package app

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x/donation"
	"github.com/iov-one/vault/x/sigs"
)

// make sure tx fulfills all interfaces
var _ vault.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// NewTx wraps the given message in an unsigned transaction.
func NewTx(msg vault.Msg) (*Tx, error) {
	var tx Tx
	if err := tx.SetMsg(msg); err != nil {
		return nil, err
	}
	return &tx, nil
}

// SetMsg places msg in the matching case of the transaction sum.
func (tx *Tx) SetMsg(msg vault.Msg) error {
	switch m := msg.(type) {
	case nil:
		return errors.Wrap(errors.ErrEmpty, "message")
	case *donation.InitializeMsg:
		tx.Sum = &Tx_InitializeMsg{InitializeMsg: m}
	case *donation.ContributeMsg:
		tx.Sum = &Tx_ContributeMsg{ContributeMsg: m}
	case *donation.WithdrawMsg:
		tx.Sum = &Tx_WithdrawMsg{WithdrawMsg: m}
	case *donation.WithdrawPartialMsg:
		tx.Sum = &Tx_WithdrawPartialMsg{WithdrawPartialMsg: m}
	case *donation.EmergencyWithdrawMsg:
		tx.Sum = &Tx_EmergencyWithdrawMsg{EmergencyWithdrawMsg: m}
	case *donation.PauseMsg:
		tx.Sum = &Tx_PauseMsg{PauseMsg: m}
	case *donation.UnpauseMsg:
		tx.Sum = &Tx_UnpauseMsg{UnpauseMsg: m}
	case *donation.UpdateAdminMsg:
		tx.Sum = &Tx_UpdateAdminMsg{UpdateAdminMsg: m}
	case *donation.UpdateLimitsMsg:
		tx.Sum = &Tx_UpdateLimitsMsg{UpdateLimitsMsg: m}
	case *donation.UpdateConfigurationMsg:
		tx.Sum = &Tx_UpdateConfigurationMsg{UpdateConfigurationMsg: m}
	default:
		return errors.Wrapf(errors.ErrMsg, "%T is not accepted by this chain", msg)
	}
	return nil
}

// GetMsg switches over all types defined in the protobuf file
func (tx *Tx) GetMsg() (vault.Msg, error) {
	return vault.ExtractMsgFromSum(tx.GetSum())
}

// GetSignBytes returns the transaction without its signatures, so that
// adding a signature does not change what the other signers signed.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := Tx{Sum: tx.Sum}
	return unsigned.Marshal()
}

// EncodeTx serializes the transaction.
func EncodeTx(tx *Tx) ([]byte, error) {
	raw, err := tx.Marshal()
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return raw, nil
}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(raw []byte) (vault.Tx, error) {
	var tx Tx
	if err := tx.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return &tx, nil
}
