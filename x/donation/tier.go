package donation

import (
	"fmt"
	"strings"

	"github.com/iov-one/vault/errors"
)

// Tier is the rank of a contributor, derived from the total amount
// contributed. Tiers are ordered, a higher value is a better tier.
type Tier uint32

const (
	Bronze Tier = iota + 1
	Silver
	Gold
	Platinum
)

var tierNames = map[Tier]string{
	Bronze:   "bronze",
	Silver:   "silver",
	Gold:     "gold",
	Platinum: "platinum",
}

func (t Tier) String() string {
	if n, ok := tierNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Tier(%d)", uint32(t))
}

// Validate returns an error if this is not one of the declared tiers.
func (t Tier) Validate() error {
	if _, ok := tierNames[t]; !ok {
		return errors.Wrapf(errors.ErrInput, "unknown tier %d", uint32(t))
	}
	return nil
}

// MarshalText renders the tier name.
func (t Tier) MarshalText() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return []byte(t.String()), nil
}

// UnmarshalText accepts a tier name, case insensitive.
func (t *Tier) UnmarshalText(raw []byte) error {
	name := strings.ToLower(string(raw))
	for tier, n := range tierNames {
		if n == name {
			*t = tier
			return nil
		}
	}
	return errors.Wrapf(errors.ErrInput, "unknown tier %q", raw)
}

// DefaultThresholds are used when no configuration is present.
var DefaultThresholds = Thresholds{
	Bronze:   1000000,
	Silver:   100000000,
	Gold:     1000000000,
	Platinum: 10000000000,
}

// Classify returns the tier of given total using the default thresholds.
func Classify(total uint64) Tier {
	return DefaultThresholds.Classify(total)
}

// Classify returns the highest tier which threshold is not greater than
// total. Any total below all thresholds is ranked as Bronze.
func (t Thresholds) Classify(total uint64) Tier {
	switch {
	case total >= t.Platinum:
		return Platinum
	case total >= t.Gold:
		return Gold
	case total >= t.Silver:
		return Silver
	default:
		return Bronze
	}
}

// Validate ensures thresholds are positive and strictly ascending.
func (t Thresholds) Validate() error {
	var errs error
	if t.Bronze == 0 {
		errs = errors.AppendField(errs, "Bronze", errors.ErrInput)
	}
	if t.Silver <= t.Bronze {
		errs = errors.AppendField(errs, "Silver", errors.Wrap(errors.ErrInput, "must be greater than bronze"))
	}
	if t.Gold <= t.Silver {
		errs = errors.AppendField(errs, "Gold", errors.Wrap(errors.ErrInput, "must be greater than silver"))
	}
	if t.Platinum <= t.Gold {
		errs = errors.AppendField(errs, "Platinum", errors.Wrap(errors.ErrInput, "must be greater than gold"))
	}
	return errs
}
