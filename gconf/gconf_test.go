package gconf

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestSaveLoad(t *testing.T) {
	owner := vaulttest.RandomAddr(t)

	cases := map[string]struct {
		Conf        *myconfig
		WantSaveErr *errors.Error
	}{
		"all fields": {
			Conf: &myconfig{Owner: owner, Num: 852151421, Str: "foobar"},
		},
		"zero values": {
			Conf: &myconfig{Owner: owner},
		},
		"invalid address cannot be saved": {
			Conf:        &myconfig{Owner: vault.Address("too short")},
			WantSaveErr: errors.ErrInput,
		},
		"negative number cannot be saved": {
			Conf:        &myconfig{Owner: owner, Num: -1},
			WantSaveErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if err := Save(db, "mypkg", tc.Conf); !tc.WantSaveErr.Is(err) {
				t.Fatalf("unexpected save error: %s", err)
			}
			if tc.WantSaveErr != nil {
				var got myconfig
				assert.IsErr(t, errors.ErrNotFound, Load(db, "mypkg", &got))
				return
			}

			var got myconfig
			if err := Load(db, "mypkg", &got); err != nil {
				t.Fatalf("cannot load configuration: %s", err)
			}
			assert.Equal(t, tc.Conf, &got)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	db := store.MemStore()
	var c myconfig
	assert.IsErr(t, errors.ErrNotFound, Load(db, "nothing", &c))
}

func TestInitConfig(t *testing.T) {
	owner := vaulttest.RandomAddr(t)

	cases := map[string]struct {
		Genesis string
		WantErr *errors.Error
		Want    *myconfig
	}{
		"configuration is loaded": {
			Genesis: `{"conf": {"mypkg": {"owner": "` + owner.String() + `", "num": 4, "str": "x"}}}`,
			Want:    &myconfig{Owner: owner, Num: 4, Str: "x"},
		},
		"missing package configuration": {
			Genesis: `{"conf": {"other": {}}}`,
			WantErr: errors.ErrNotFound,
		},
		"invalid configuration": {
			Genesis: `{"conf": {"mypkg": {"owner": "` + owner.String() + `", "num": -4}}}`,
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts vault.Options
			if err := json.Unmarshal([]byte(tc.Genesis), &opts); err != nil {
				t.Fatalf("cannot unmarshal genesis: %s", err)
			}
			db := store.MemStore()

			var c myconfig
			if err := InitConfig(db, opts, "mypkg", &c); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.Want == nil {
				return
			}
			var got myconfig
			assert.Nil(t, Load(db, "mypkg", &got))
			assert.Equal(t, tc.Want, &got)
		})
	}
}

type myconfig struct {
	Owner vault.Address `json:"owner"`
	Num   int64         `json:"num"`
	Str   string        `json:"str"`
}

func (c *myconfig) GetOwner() vault.Address    { return c.Owner }
func (c *myconfig) Marshal() ([]byte, error)   { return json.Marshal(c) }
func (c *myconfig) Unmarshal(raw []byte) error { return json.Unmarshal(raw, c) }

func (c *myconfig) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if c.Num < 0 {
		return errors.Wrap(errors.ErrInput, "num must not be negative")
	}
	return nil
}

type myconfigMsg struct {
	Patch *myconfig
}

var _ PatchMsg = (*myconfigMsg)(nil)

func (msg *myconfigMsg) Marshal() ([]byte, error)   { return json.Marshal(msg) }
func (msg *myconfigMsg) Unmarshal(raw []byte) error { return json.Unmarshal(raw, msg) }
func (msg *myconfigMsg) Path() string               { return "myconfig" }
func (msg *myconfigMsg) Validate() error            { return nil }

func (msg *myconfigMsg) ConfigPatch() OwnedConfig {
	if msg.Patch == nil {
		return nil
	}
	return msg.Patch
}
