package errors

import (
	"testing"
)

func TestAppend(t *testing.T) {
	if Append() != nil {
		t.Fatal("no errors must produce nil")
	}
	if Append(nil, (*Error)(nil), nil) != nil {
		t.Fatal("nil values must be ignored")
	}

	// a single error is returned as is, not wrapped
	single := Wrap(ErrState, "bad")
	if got := Append(nil, single, nil); got != single {
		t.Fatalf("single error must pass through: %+v", got)
	}

	err := Append(ErrNotFound, ErrState)
	if got := err.Error(); got != "not found; invalid state" {
		t.Fatalf("unexpected message: %q", got)
	}

	// appending collections flattens them
	flat := Append(err, ErrAmount)
	u, ok := flat.(unpacker)
	if !ok {
		t.Fatalf("expected a collection, got %T", flat)
	}
	if members := u.Unpack(); len(members) != 3 {
		t.Fatalf("want 3 members, got %d", len(members))
	}
}

func TestMultiErrorIs(t *testing.T) {
	err := Append(ErrNotFound, Wrap(ErrState, "bad"))

	if !ErrNotFound.Is(err) {
		t.Fatal("first member must match")
	}
	if !ErrState.Is(err) {
		t.Fatal("wrapped member must match")
	}
	if ErrAmount.Is(err) {
		t.Fatal("absent root must not match")
	}
}

func TestMultiErrorABCICode(t *testing.T) {
	// the first member decides, consistent with fail fast handlers
	err := Append(Wrap(ErrState, "bad"), ErrAmount)
	if got := abciCode(err); got != ErrState.code {
		t.Fatalf("unexpected code: %d", got)
	}
}
