package vault

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestReadOptions(t *testing.T) {
	type limits struct {
		MinAmount uint64 `json:"min_amount"`
		MaxAmount uint64 `json:"max_amount"`
	}

	cases := map[string]struct {
		raw     string
		key     string
		want    limits
		wantErr *errors.Error
	}{
		"key present": {
			raw:  `{"donation": {"min_amount": 1, "max_amount": 10}}`,
			key:  "donation",
			want: limits{MinAmount: 1, MaxAmount: 10},
		},
		"missing key is a noop": {
			raw:  `{"other": {"min_amount": 1}}`,
			key:  "donation",
			want: limits{},
		},
		"malformed value": {
			raw:     `{"donation": {"min_amount": "one"}}`,
			key:     "donation",
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts Options
			if err := json.Unmarshal([]byte(tc.raw), &opts); err != nil {
				t.Fatalf("cannot unmarshal options: %s", err)
			}
			var got limits
			err := opts.ReadOptions(tc.key, &got)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %v error, got %+v", tc.wantErr, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}
