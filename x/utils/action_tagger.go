package utils

import "github.com/iov-one/vault"

// ActionKey is the tag key holding the message path.
const ActionKey = "action"

// ActionTagger tags every successful deliver with action=<message path>,
// letting clients subscribe to one kind of vault operation.
type ActionTagger struct{}

var _ vault.Decorator = ActionTagger{}

func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

func (ActionTagger) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (ActionTagger) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tag(ActionKey, msg.Path())
	return res, nil
}
