package app

import (
	"testing"
	"time"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/app"
	"github.com/iov-one/vault/crypto"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store/iavl"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/x/donation"
	"github.com/iov-one/vault/x/sigs"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"
)

const testChainID = "vault-test-chain"

type testNode struct {
	t   *testing.T
	app app.BaseApp
	now time.Time
}

func newTestNode(t *testing.T, c Config, admin vault.Address) *testNode {
	t.Helper()

	opts, err := GenInitOptions(admin, GenesisVault{
		ID:        "main",
		MinAmount: 1000000,
		MaxAmount: 100000000000,
	})
	require.NoError(t, err)

	kv := iavl.NewCommitStoreFromDB(dbm.NewMemDB(), 100)
	n := &testNode{
		t:   t,
		app: Application(c, kv, log.NewNopLogger()),
		now: time.Date(2019, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	n.app.InitChain(abci.RequestInitChain{ChainId: testChainID, AppStateBytes: opts})
	n.app.Commit()
	return n
}

// block delivers the transactions in a new block and commits it.
func (n *testNode) block(height int64, txs ...[]byte) []abci.ResponseDeliverTx {
	n.t.Helper()

	n.app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{ChainID: testChainID, Height: height, Time: n.now},
	})
	var res []abci.ResponseDeliverTx
	for _, tx := range txs {
		res = append(res, n.app.DeliverTx(tx))
	}
	n.app.EndBlock(abci.RequestEndBlock{Height: height})
	n.app.Commit()
	n.now = n.now.Add(5 * time.Second)
	return res
}

func (n *testNode) stats(vaultID string) *donation.Stats {
	n.t.Helper()

	res := n.app.Query(abci.RequestQuery{Path: "/donation/stats", Data: []byte(vaultID)})
	require.EqualValues(n.t, errors.SuccessABCICode, res.Code, res.Log)
	var s donation.Stats
	require.NoError(n.t, app.UnmarshalOneResult(res.Value, &s))
	return &s
}

func signedTx(t *testing.T, signer *crypto.PrivateKey, seq int64, msg vault.Msg) []byte {
	t.Helper()

	tx, err := NewTx(msg)
	require.NoError(t, err)
	if signer != nil {
		sig, err := sigs.SignTx(signer, tx, testChainID, seq)
		require.NoError(t, err)
		tx.Signatures = append(tx.Signatures, sig)
	}
	raw, err := EncodeTx(tx)
	require.NoError(t, err)
	return raw
}

func tag(res abci.ResponseDeliverTx, key string) string {
	for _, t := range res.Tags {
		if string(t.Key) == key {
			return string(t.Value)
		}
	}
	return ""
}

func TestDonationFlow(t *testing.T) {
	admin := crypto.GenPrivKeyEd25519()
	donor := crypto.GenPrivKeyEd25519()
	adminAddr := admin.PublicKey().Address()
	donorAddr := donor.PublicKey().Address()

	node := newTestNode(t, Config{}, adminAddr)

	contribute := signedTx(t, donor, 0, &donation.ContributeMsg{VaultID: "main", Amount: 500000000})
	res := node.block(2,
		contribute,
		// replayed transaction reuses the sequence
		contribute,
		signedTx(t, donor, 1, &donation.ContributeMsg{VaultID: "main", Amount: 10}),
		signedTx(t, donor, 2, &donation.WithdrawMsg{VaultID: "main"}),
		signedTx(t, nil, 0, &donation.PauseMsg{VaultID: "main"}),
	)

	require.EqualValues(t, errors.SuccessABCICode, res[0].Code, res[0].Log)
	require.Equal(t, "donation/contribute", tag(res[0], "action"))
	require.Equal(t, "main", tag(res[0], "vault"))
	require.Equal(t, donation.KindContributed, tag(res[0], "event"))
	var event donation.Event
	require.NoError(t, event.Unmarshal(res[0].Data))
	require.EqualValues(t, 2, event.Height)
	require.Equal(t, &donation.ContributedEvent{
		Contributor: donorAddr,
		Amount:      500000000,
		Total:       500000000,
		Tier:        donation.Silver,
	}, event.Payload())

	require.Equal(t, sigs.ErrInvalidSequence.ABCICode(), res[1].Code)
	require.Equal(t, donation.ErrTooSmall.ABCICode(), res[2].Code)
	require.Equal(t, errors.ErrUnauthorized.ABCICode(), res[3].Code)
	require.Equal(t, errors.ErrUnauthorized.ABCICode(), res[4].Code)

	res = node.block(3,
		signedTx(t, admin, 0, &donation.WithdrawPartialMsg{VaultID: "main", Amount: 200000000}),
		signedTx(t, admin, 1, &donation.PauseMsg{VaultID: "main"}),
		// failed messages still consumed the donor sequences 1 and 2
		signedTx(t, donor, 3, &donation.ContributeMsg{VaultID: "main", Amount: 2000000}),
	)
	require.EqualValues(t, errors.SuccessABCICode, res[0].Code, res[0].Log)
	require.EqualValues(t, errors.SuccessABCICode, res[1].Code, res[1].Log)
	require.Equal(t, donation.ErrPaused.ABCICode(), res[2].Code)

	stats := node.stats("main")
	require.Equal(t, &donation.Stats{
		VaultID:            "main",
		Admin:              adminAddr,
		TotalContributed:   500000000,
		TotalWithdrawn:     200000000,
		Balance:            300000000,
		Available:          300000000,
		ContributionCount:  1,
		UniqueContributors: 1,
		MinAmount:          1000000,
		MaxAmount:          100000000000,
		Paused:             true,
	}, stats)

	res = node.block(4,
		signedTx(t, admin, 2, &donation.EmergencyWithdrawMsg{VaultID: "main", Reason: "key rotation"}),
	)
	require.EqualValues(t, errors.SuccessABCICode, res[0].Code, res[0].Log)
	require.Equal(t, donation.KindEmergencyWithdrawn, tag(res[0], "event"))

	stats = node.stats("main")
	require.EqualValues(t, 0, stats.Balance)
	require.EqualValues(t, 500000000, stats.TotalWithdrawn)
}

func TestMinimumReserve(t *testing.T) {
	admin := crypto.GenPrivKeyEd25519()
	donor := crypto.GenPrivKeyEd25519()

	node := newTestNode(t, Config{MinReserve: 100000000}, admin.PublicKey().Address())
	res := node.block(2,
		signedTx(t, donor, 0, &donation.ContributeMsg{VaultID: "main", Amount: 300000000}),
		signedTx(t, admin, 0, &donation.WithdrawPartialMsg{VaultID: "main", Amount: 250000000}),
		signedTx(t, admin, 1, &donation.WithdrawMsg{VaultID: "main"}),
	)
	require.EqualValues(t, errors.SuccessABCICode, res[0].Code, res[0].Log)
	require.Equal(t, errors.ErrInsufficientAmount.ABCICode(), res[1].Code)
	require.EqualValues(t, errors.SuccessABCICode, res[2].Code, res[2].Log)

	stats := node.stats("main")
	require.EqualValues(t, 100000000, stats.Balance)
	require.EqualValues(t, 0, stats.Available)
}

func TestQueryUnknownVault(t *testing.T) {
	node := newTestNode(t, Config{}, crypto.GenPrivKeyEd25519().PublicKey().Address())

	res := node.app.Query(abci.RequestQuery{Path: "/donation/stats", Data: []byte("other")})
	require.EqualValues(t, errors.SuccessABCICode, res.Code, res.Log)
	var s donation.Stats
	require.True(t, errors.ErrNotFound.Is(app.UnmarshalOneResult(res.Value, &s)))
}

func TestCheckTxDoesNotChangeState(t *testing.T) {
	admin := crypto.GenPrivKeyEd25519()
	donor := crypto.GenPrivKeyEd25519()
	node := newTestNode(t, Config{}, admin.PublicKey().Address())

	node.app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{ChainID: testChainID, Height: 2, Time: node.now},
	})
	contribute := signedTx(t, donor, 0, &donation.ContributeMsg{VaultID: "main", Amount: 5000000})

	res := node.app.CheckTx(contribute)
	require.EqualValues(t, errors.SuccessABCICode, res.Code, res.Log)
	require.True(t, res.GasWanted > 0)

	// the check state remembers the used sequence
	res = node.app.CheckTx(contribute)
	require.Equal(t, sigs.ErrInvalidSequence.ABCICode(), res.Code)

	res = node.app.CheckTx(signedTx(t, donor, 1, &donation.ContributeMsg{VaultID: "main", Amount: 1}))
	require.Equal(t, donation.ErrTooSmall.ABCICode(), res.Code)

	node.app.EndBlock(abci.RequestEndBlock{Height: 2})
	node.app.Commit()
	require.EqualValues(t, 0, node.stats("main").TotalContributed)
}

func TestTxEncoding(t *testing.T) {
	msg := &donation.EmergencyWithdrawMsg{VaultID: "main", Amount: 7, Reason: "lost key"}
	tx, err := NewTx(msg)
	require.NoError(t, err)

	raw, err := EncodeTx(tx)
	require.NoError(t, err)
	decoded, err := TxDecoder(raw)
	require.NoError(t, err)
	got, err := decoded.GetMsg()
	require.NoError(t, err)
	require.Equal(t, msg, got)

	_, err = (&Tx{}).GetMsg()
	require.True(t, errors.ErrEmpty.Is(err))
	_, err = (&Tx{Sum: &Tx_PauseMsg{}}).GetMsg()
	require.True(t, errors.ErrEmpty.Is(err))
	_, err = NewTx(nil)
	require.True(t, errors.ErrEmpty.Is(err))
	_, err = NewTx(&vaulttest.Msg{RoutePath: "other/msg"})
	require.True(t, errors.ErrMsg.Is(err))
	_, err = TxDecoder([]byte{0xff, 0xff})
	require.True(t, errors.ErrInput.Is(err))
}
