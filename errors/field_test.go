package errors

import (
	"reflect"
	"testing"
)

func TestFieldErrors(t *testing.T) {
	var (
		emptyID     = Field("ID", ErrEmpty, "required")
		badID       = Field("ID", ErrInput, "invalid characters")
		bigMax      = Field("MaxAmount", ErrAmount, "above %d", 10)
		nestedVault = Field("Vaults.0", Append(emptyID, bigMax), "vault")
	)

	cases := map[string]struct {
		err   error
		field string
		want  []error
	}{
		"nil": {
			err:   nil,
			field: "ID",
			want:  nil,
		},
		"single match": {
			err:   emptyID,
			field: "ID",
			want:  []error{emptyID},
		},
		"other field": {
			err:   emptyID,
			field: "Owner",
			want:  nil,
		},
		"plain kind has no field": {
			err:   ErrEmpty,
			field: "ID",
			want:  nil,
		},
		"all group members": {
			err:   Append(emptyID, bigMax, badID),
			field: "ID",
			want:  []error{emptyID, badID},
		},
		"outer field of a nested group": {
			err:   nestedVault,
			field: "Vaults.0",
			want:  []error{nestedVault},
		},
		"inner field of a nested group": {
			err:   Wrap(nestedVault, "genesis"),
			field: "MaxAmount",
			want:  []error{bigMax},
		},
		"outermost match wins": {
			err:   Field("ID", emptyID, "outer"),
			field: "ID",
			want:  []error{Field("ID", emptyID, "outer")},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := FieldErrors(tc.err, tc.field)
			if len(got) != len(tc.want) {
				t.Fatalf("want %d errors, got %d: %v", len(tc.want), len(got), got)
			}
			for i := range got {
				if got[i].Error() != tc.want[i].Error() {
					t.Errorf("%d: want %q, got %q", i, tc.want[i], got[i])
				}
			}
		})
	}
}

func TestFieldMessage(t *testing.T) {
	err := AppendField(nil, "MinAmount", ErrAmount)
	if got, want := err.Error(), `field "MinAmount": invalid amount`; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	if !ErrAmount.Is(err) {
		t.Fatal("field error must keep its kind")
	}

	err = Field("MaxAmount", ErrAmount, "below %s", "minimum")
	if got, want := err.Error(), `field "MaxAmount": below minimum: invalid amount`; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}

	if AppendField(nil, "ID", nil) != nil {
		t.Fatal("nil field error must be skipped")
	}
	if !reflect.DeepEqual(FieldErrors(Field("ID", nil, "x"), "ID"), []error(nil)) {
		t.Fatal("field of nil must be nil")
	}
}
