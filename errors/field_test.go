package errors

import (
	"testing"
)

func TestField(t *testing.T) {
	if Field("Owner", nil, "ignored") != nil {
		t.Fatal("a nil error must not be annotated")
	}

	err := Field("Owner", ErrEmpty, "")
	if got := err.Error(); got != `field "Owner": value is empty` {
		t.Fatalf("unexpected message: %q", got)
	}

	err = Field("Expiry", ErrInput, "must be %d seconds at least", 60)
	if got := err.Error(); got != `field "Expiry": must be 60 seconds at least: invalid input` {
		t.Fatalf("unexpected message: %q", got)
	}

	// annotation must not hide the category
	if !ErrInput.Is(err) {
		t.Fatal("the root must survive the annotation")
	}
}

func TestFieldErrors(t *testing.T) {
	owner := Field("Owner", ErrEmpty, "")
	amount := Field("Amount", ErrAmount, "")

	cases := map[string]struct {
		err       error
		fieldName string
		wantCount int
	}{
		"nil error": {
			err:       nil,
			fieldName: "Owner",
			wantCount: 0,
		},
		"single match": {
			err:       owner,
			fieldName: "Owner",
			wantCount: 1,
		},
		"single miss": {
			err:       owner,
			fieldName: "Amount",
			wantCount: 0,
		},
		"match inside a collection": {
			err:       Append(owner, amount),
			fieldName: "Amount",
			wantCount: 1,
		},
		"miss inside a collection": {
			err:       Append(owner, amount),
			fieldName: "Expiry",
			wantCount: 0,
		},
		"match under a wrap": {
			err:       Wrap(owner, "outer"),
			fieldName: "Owner",
			wantCount: 1,
		},
		"plain error has no field": {
			err:       ErrEmpty,
			fieldName: "Owner",
			wantCount: 0,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := FieldErrors(tc.err, tc.fieldName); len(got) != tc.wantCount {
				t.Fatalf("want %d errors, got %d: %v", tc.wantCount, len(got), got)
			}
		})
	}
}

func TestAppendField(t *testing.T) {
	var err error
	err = AppendField(err, "Owner", nil)
	if err != nil {
		t.Fatalf("no error expected, got %+v", err)
	}

	err = AppendField(err, "Owner", ErrEmpty)
	err = AppendField(err, "Amount", ErrAmount)
	if len(FieldErrors(err, "Owner")) != 1 {
		t.Fatal("missing the owner error")
	}
	if len(FieldErrors(err, "Amount")) != 1 {
		t.Fatal("missing the amount error")
	}
	if !ErrEmpty.Is(err) || !ErrAmount.Is(err) {
		t.Fatal("collected roots must be matchable")
	}
}
