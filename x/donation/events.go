package donation

import (
	"strconv"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
	"github.com/tendermint/tendermint/libs/common"
)

const eventBucketName = "events"

// Event kinds, also used as the value of the "event" tag.
const (
	KindInitialized        = "initialized"
	KindContributed        = "contributed"
	KindWithdrawn          = "withdrawn"
	KindEmergencyWithdrawn = "emergency_withdrawn"
	KindPauseChanged       = "pause_changed"
	KindLimitsUpdated      = "limits_updated"
)

// EventPayload is the kind specific content of an event.
type EventPayload interface {
	Kind() string
}

func (InitializedEvent) Kind() string        { return KindInitialized }
func (ContributedEvent) Kind() string        { return KindContributed }
func (WithdrawnEvent) Kind() string          { return KindWithdrawn }
func (EmergencyWithdrawnEvent) Kind() string { return KindEmergencyWithdrawn }
func (PauseChangedEvent) Kind() string       { return KindPauseChanged }
func (LimitsUpdatedEvent) Kind() string      { return KindLimitsUpdated }

var _ orm.Model = (*Event)(nil)

func (e *Event) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "VaultID", validateVaultID(e.VaultID))
	if e.Seq < 1 {
		errs = errors.AppendField(errs, "Seq", errors.ErrInput)
	}
	errs = errors.AppendField(errs, "Time", e.Time.Validate())
	if e.Payload() == nil {
		errs = errors.AppendField(errs, "Details", errors.ErrEmpty)
	}
	return errs
}

// Payload returns the content of the event, or nil when none is set.
func (e *Event) Payload() EventPayload {
	switch d := e.GetDetails().(type) {
	case *Event_Initialized:
		return d.Initialized
	case *Event_Contributed:
		return d.Contributed
	case *Event_Withdrawn:
		return d.Withdrawn
	case *Event_EmergencyWithdrawn:
		return d.EmergencyWithdrawn
	case *Event_PauseChanged:
		return d.PauseChanged
	case *Event_LimitsUpdated:
		return d.LimitsUpdated
	}
	return nil
}

// SetPayload stores p as the content of the event.
func (e *Event) SetPayload(p EventPayload) error {
	switch p := p.(type) {
	case *InitializedEvent:
		e.Details = &Event_Initialized{Initialized: p}
	case *ContributedEvent:
		e.Details = &Event_Contributed{Contributed: p}
	case *WithdrawnEvent:
		e.Details = &Event_Withdrawn{Withdrawn: p}
	case *EmergencyWithdrawnEvent:
		e.Details = &Event_EmergencyWithdrawn{EmergencyWithdrawn: p}
	case *PauseChangedEvent:
		e.Details = &Event_PauseChanged{PauseChanged: p}
	case *LimitsUpdatedEvent:
		e.Details = &Event_LimitsUpdated{LimitsUpdated: p}
	default:
		return errors.Wrapf(errors.ErrType, "unknown event payload %T", p)
	}
	return nil
}

// Kind returns the kind of the payload.
func (e *Event) Kind() string {
	if p := e.Payload(); p != nil {
		return p.Kind()
	}
	return ""
}

// Tags returns the transaction tags describing given event. Tendermint
// indexes them so that transactions can be searched by vault and kind.
func Tags(e *Event) []common.KVPair {
	if e == nil {
		return nil
	}
	return []common.KVPair{
		{Key: []byte("vault"), Value: []byte(e.VaultID)},
		{Key: []byte("event"), Value: []byte(e.Kind())},
		{Key: []byte("event.seq"), Value: []byte(strconv.FormatInt(e.Seq, 10))},
	}
}

// EventSink receives events of all state transitions.
type EventSink interface {
	Emit(ctx vault.Context, db vault.KVStore, vaultID string, p EventPayload) (*Event, error)
}

// EventLog is an EventSink that appends events to the store. Because it
// writes into the same store as the state change it belongs to, events are
// committed together with it and discarded on failure.
type EventLog struct {
	bucket orm.ModelBucket
}

var _ EventSink = (*EventLog)(nil)

// NewEventLog returns an event log persisting into the "events" bucket.
func NewEventLog() *EventLog {
	return &EventLog{
		bucket: orm.NewModelBucket(eventBucketName, &Event{}),
	}
}

func eventKey(vaultID string, seq int64) []byte {
	return append(vaultPrefix(vaultID), orm.EncodeSequence(seq)...)
}

func eventSequence(vaultID string) orm.Sequence {
	return orm.NewSequence(eventBucketName, vaultID)
}

// Emit stores a new event. Height and time are taken from the context when
// present.
func (l *EventLog) Emit(ctx vault.Context, db vault.KVStore, vaultID string, p EventPayload) (*Event, error) {
	seq := eventSequence(vaultID)
	n, err := seq.NextInt(db)
	if err != nil {
		return nil, errors.Wrap(err, "event sequence")
	}
	e := &Event{
		VaultID: vaultID,
		Seq:     n,
	}
	if err := e.SetPayload(p); err != nil {
		return nil, err
	}
	if height, ok := vault.GetHeight(ctx); ok {
		e.Height = height
	}
	if now, err := vault.BlockTime(ctx); err == nil {
		e.Time = vault.AsUnixTime(now)
	}
	if _, err := l.bucket.Put(db, eventKey(vaultID, n), e); err != nil {
		return nil, errors.Wrap(err, "store event")
	}
	return e, nil
}

// List returns events of a vault with a sequence greater than after, in
// the order they were emitted.
func (l *EventLog) List(db vault.ReadOnlyKVStore, vaultID string, after int64) ([]*Event, error) {
	it, err := l.bucket.PrefixScan(db, vaultPrefix(vaultID), false)
	if err != nil {
		return nil, errors.Wrap(err, "prefix scan")
	}
	defer it.Release()

	var res []*Event
	for {
		var e Event
		switch _, err := it.Next(&e); {
		case err == nil:
			if e.Seq > after {
				res = append(res, &e)
			}
		case errors.ErrIteratorDone.Is(err):
			return res, nil
		default:
			return nil, err
		}
	}
}

// Latest returns the sequence of the last event emitted for a vault, or
// zero.
func (l *EventLog) Latest(db vault.ReadOnlyKVStore, vaultID string) (int64, error) {
	seq := eventSequence(vaultID)
	return seq.Latest(db)
}

// LogSink passes every event to the next sink and logs it.
type LogSink struct {
	Next EventSink
}

var _ EventSink = LogSink{}

func (s LogSink) Emit(ctx vault.Context, db vault.KVStore, vaultID string, p EventPayload) (*Event, error) {
	e, err := s.Next.Emit(ctx, db, vaultID, p)
	if err != nil {
		return nil, err
	}
	vault.GetLogger(ctx).Debug("donation event",
		"vault", e.VaultID,
		"event", e.Kind(),
		"seq", e.Seq)
	return e, nil
}
