package pawn

import (
	"testing"
)

type queryFn func(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)

func (f queryFn) Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error) {
	return f(db, mod, data)
}

func TestQueryRouter(t *testing.T) {
	var handler queryFn = func(ReadOnlyKVStore, string, []byte) ([]Model, error) {
		return nil, nil
	}

	qr := NewQueryRouter()
	qr.Register("/wallets", handler)

	if qr.Handler("/wallets") == nil {
		t.Fatal("registered handler not found")
	}
	if qr.Handler("/unknown") != nil {
		t.Fatal("expected nil for an unclaimed path")
	}

	// a path can only be claimed once
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	qr.Register("/wallets", handler)
}
