package donation

import (
	"math/rand"
	"testing"

	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest/assert"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given the default thresholds", t, func() {
		Convey("amounts below the bronze threshold are bronze", func() {
			So(Classify(0), ShouldEqual, Bronze)
			So(Classify(1), ShouldEqual, Bronze)
			So(Classify(999999), ShouldEqual, Bronze)
		})

		Convey("every threshold is inclusive", func() {
			So(Classify(1000000), ShouldEqual, Bronze)
			So(Classify(100000000), ShouldEqual, Silver)
			So(Classify(1000000000), ShouldEqual, Gold)
			So(Classify(10000000000), ShouldEqual, Platinum)
		})

		Convey("amounts just below a threshold stay in the lower tier", func() {
			So(Classify(99999999), ShouldEqual, Bronze)
			So(Classify(999999999), ShouldEqual, Silver)
			So(Classify(9999999999), ShouldEqual, Gold)
		})

		Convey("platinum has no upper bound", func() {
			So(Classify(^uint64(0)), ShouldEqual, Platinum)
		})
	})

	Convey("Given custom thresholds", t, func() {
		th := Thresholds{Bronze: 10, Silver: 20, Gold: 30, Platinum: 40}
		So(th.Validate(), ShouldBeNil)

		Convey("classification follows them", func() {
			So(th.Classify(19), ShouldEqual, Bronze)
			So(th.Classify(20), ShouldEqual, Silver)
			So(th.Classify(35), ShouldEqual, Gold)
			So(th.Classify(40), ShouldEqual, Platinum)
		})
	})
}

func TestClassifyIsMonotonic(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		a := uint64(r.Int63n(20000000000))
		b := a + uint64(r.Int63n(2000000000))
		if Classify(a) > Classify(b) {
			t.Fatalf("classify(%d) = %s > classify(%d) = %s", a, Classify(a), b, Classify(b))
		}
	}
}

func TestThresholdsValidate(t *testing.T) {
	cases := map[string]struct {
		Thresholds Thresholds
		WantErr    map[string]*errors.Error
	}{
		"default thresholds are valid": {
			Thresholds: DefaultThresholds,
			WantErr: map[string]*errors.Error{
				"Bronze":   nil,
				"Silver":   nil,
				"Gold":     nil,
				"Platinum": nil,
			},
		},
		"zero value": {
			Thresholds: Thresholds{},
			WantErr: map[string]*errors.Error{
				"Bronze":   errors.ErrInput,
				"Silver":   errors.ErrInput,
				"Gold":     errors.ErrInput,
				"Platinum": errors.ErrInput,
			},
		},
		"thresholds must be strictly ascending": {
			Thresholds: Thresholds{Bronze: 1, Silver: 5, Gold: 5, Platinum: 7},
			WantErr: map[string]*errors.Error{
				"Bronze":   nil,
				"Silver":   nil,
				"Gold":     errors.ErrInput,
				"Platinum": nil,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.Thresholds.Validate()
			for field, want := range tc.WantErr {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}

func TestTierText(t *testing.T) {
	for _, tier := range []Tier{Bronze, Silver, Gold, Platinum} {
		raw, err := tier.MarshalText()
		assert.Nil(t, err)
		var got Tier
		assert.Nil(t, got.UnmarshalText(raw))
		assert.Equal(t, tier, got)
	}

	var got Tier
	assert.Nil(t, got.UnmarshalText([]byte("GOLD")))
	assert.Equal(t, Gold, got)

	assert.IsErr(t, errors.ErrInput, got.UnmarshalText([]byte("diamond")))
	assert.IsErr(t, errors.ErrInput, Tier(0).Validate())
	assert.Equal(t, "Tier(9)", Tier(9).String())
}
