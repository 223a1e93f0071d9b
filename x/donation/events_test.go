package donation

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/common"
)

func TestEventLogSequencePerVault(t *testing.T) {
	db := store.MemStore()
	log := NewEventLog()
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	ctx := vault.WithHeight(vault.WithBlockTime(context.Background(), now), 77)
	admin := vaulttest.NewCondition().Address()

	for i := 0; i < 3; i++ {
		e, err := log.Emit(ctx, db, "a", &PauseChangedEvent{Admin: admin, Paused: i%2 == 0})
		require.NoError(t, err)
		require.Equal(t, int64(i+1), e.Seq)
	}
	// A vault ID that is a prefix of another must not mix.
	e, err := log.Emit(ctx, db, "ab", &InitializedEvent{Admin: admin, MinAmount: 1, MaxAmount: 2})
	require.NoError(t, err)
	require.Equal(t, int64(1), e.Seq)
	require.Equal(t, int64(77), e.Height)
	require.Equal(t, vault.AsUnixTime(now), e.Time)

	events, err := log.List(db, "a", 0)
	require.NoError(t, err)
	require.Len(t, events, 3)
	for i, e := range events {
		require.Equal(t, int64(i+1), e.Seq)
		require.Equal(t, "a", e.VaultID)
		require.Equal(t, KindPauseChanged, e.Kind())
		require.Equal(t, &PauseChangedEvent{Admin: admin, Paused: i%2 == 0}, e.Payload())
	}

	events, err = log.List(db, "a", 2)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, int64(3), events[0].Seq)

	events, err = log.List(db, "ab", 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, &InitializedEvent{Admin: admin, MinAmount: 1, MaxAmount: 2}, events[0].Payload())

	latest, err := log.Latest(db, "a")
	require.NoError(t, err)
	require.Equal(t, int64(3), latest)

	latest, err = log.Latest(db, "unknown")
	require.NoError(t, err)
	require.Equal(t, int64(0), latest)
}

func TestEventLogIsRolledBackWithState(t *testing.T) {
	db := store.MemStore()
	log := NewEventLog()
	ctx := context.Background()
	admin := vaulttest.NewCondition().Address()

	_, err := log.Emit(ctx, db, "main", &PauseChangedEvent{Admin: admin, Paused: true})
	require.NoError(t, err)

	cache := db.CacheWrap()
	_, err = log.Emit(ctx, cache, "main", &PauseChangedEvent{Admin: admin, Paused: false})
	require.NoError(t, err)
	cache.Discard()

	events, err := log.List(db, "main", 0)
	require.NoError(t, err)
	require.Len(t, events, 1)

	// The discarded sequence value is reused.
	e, err := log.Emit(ctx, db, "main", &PauseChangedEvent{Admin: admin, Paused: false})
	require.NoError(t, err)
	require.Equal(t, int64(2), e.Seq)
}

func TestEventRoundTripKeepsPayloadType(t *testing.T) {
	admin := vaulttest.NewCondition().Address()
	payloads := []EventPayload{
		&InitializedEvent{Admin: admin, MinAmount: 1, MaxAmount: 2},
		&ContributedEvent{Contributor: admin, Amount: 5, Total: 10, Tier: Bronze},
		&WithdrawnEvent{Admin: admin, Recipient: admin, Amount: 3},
		&EmergencyWithdrawnEvent{Admin: admin, Recipient: admin, Amount: 3, Reason: "emergency"},
		&PauseChangedEvent{Admin: admin, Paused: true},
		&LimitsUpdatedEvent{Admin: admin, OldMinAmount: 1, OldMaxAmount: 2, NewMinAmount: 3, NewMaxAmount: 4},
	}
	for _, p := range payloads {
		e := Event{VaultID: "main", Seq: 1}
		require.NoError(t, e.SetPayload(p))
		raw, err := e.Marshal()
		require.NoError(t, err)
		var got Event
		require.NoError(t, got.Unmarshal(raw))
		require.Equal(t, p, got.Payload())
		require.Equal(t, p.Kind(), got.Kind())
	}
}

type unknownPayload struct{}

func (unknownPayload) Kind() string { return "unknown" }

func TestEventRejectsUnknownPayload(t *testing.T) {
	e := Event{VaultID: "main", Seq: 1}
	assert.IsErr(t, errors.ErrType, e.SetPayload(unknownPayload{}))
	assert.Nil(t, e.Payload())
	assert.Equal(t, "", e.Kind())
	assert.FieldError(t, e.Validate(), "Details", errors.ErrEmpty)
}

func TestTags(t *testing.T) {
	e := &Event{VaultID: "main", Seq: 12, Details: &Event_PauseChanged{PauseChanged: &PauseChangedEvent{Paused: true}}}
	assert.Equal(t, []common.KVPair{
		{Key: []byte("vault"), Value: []byte("main")},
		{Key: []byte("event"), Value: []byte(KindPauseChanged)},
		{Key: []byte("event.seq"), Value: []byte("12")},
	}, Tags(e))
	assert.Nil(t, Tags(nil))
}

func TestLogSink(t *testing.T) {
	db := store.MemStore()
	log := NewEventLog()
	sink := LogSink{Next: log}

	e, err := sink.Emit(context.Background(), db, "main", &PauseChangedEvent{Paused: true})
	require.NoError(t, err)
	require.Equal(t, int64(1), e.Seq)

	events, err := log.List(db, "main", 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
}
