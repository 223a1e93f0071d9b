package vault

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/iov-one/vault/errors"
)

func TestUnixTimeUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    UnixTime
		wantErr *errors.Error
	}{
		"seconds":               {raw: "1700000000", want: 1700000000},
		"epoch":                 {raw: "0", want: 0},
		"utc string":            {raw: `"2023-11-14T22:13:20Z"`, want: 1700000000},
		"string with offset":    {raw: `"2023-11-15T00:13:20+02:00"`, want: 1700000000},
		"fraction is truncated": {raw: `"2023-11-14T22:13:20.999Z"`, want: 1700000000},
		"negative seconds":      {raw: "-5", wantErr: errors.ErrInput},
		"string before epoch":   {raw: `"1969-12-31T23:59:00Z"`, wantErr: errors.ErrInput},
		"garbage":               {raw: `"yesterday"`, wantErr: errors.ErrInput},
		"boolean":               {raw: `true`, wantErr: errors.ErrInput},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var got UnixTime
			err := json.Unmarshal([]byte(tc.raw), &got)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %v error, got %+v", tc.wantErr, err)
			}
			if got != tc.want {
				t.Fatalf("want %d, got %d", tc.want, got)
			}
		})
	}
}

func TestUnixTime(t *testing.T) {
	block := time.Date(2023, 11, 14, 22, 13, 20, 500, time.UTC)
	ut := AsUnixTime(block)

	if got := ut.Add(90*time.Minute + 1500*time.Millisecond); got != ut+5401 {
		t.Fatalf("unexpected add result %d", got)
	}
	if !ut.Before(ut+1) || ut.Before(ut) {
		t.Fatal("before must be strict")
	}
	if s := ut.String(); s != "2023-11-14T22:13:20Z" {
		t.Fatalf("unexpected string %q", s)
	}
	if !ut.Time().Equal(block.Truncate(time.Second)) {
		t.Fatalf("unexpected time %s", ut.Time())
	}
	if UnixTime(-1).Validate() == nil {
		t.Fatal("negative time must be invalid")
	}
	if !UnixTime(0).IsZero() || ut.IsZero() {
		t.Fatal("only zero is zero")
	}
}
