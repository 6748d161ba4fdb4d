package app

import (
	"testing"

	"github.com/qwerty-one/pawn"
	"github.com/qwerty-one/pawn/errors"
	"github.com/qwerty-one/pawn/pawntest"
	"github.com/qwerty-one/pawn/pawntest/assert"
)

// countingHandler counts how many times it was called and succeeds.
type countingHandler struct {
	count int
}

func (h *countingHandler) Check(ctx pawn.Context, store pawn.KVStore, tx pawn.Tx) (*pawn.CheckResult, error) {
	h.count++
	return &pawn.CheckResult{}, nil
}

func (h *countingHandler) Deliver(ctx pawn.Context, store pawn.KVStore, tx pawn.Tx) (*pawn.DeliverResult, error) {
	h.count++
	return &pawn.DeliverResult{}, nil
}

func TestRouter(t *testing.T) {
	r := NewRouter()

	var counter countingHandler
	r.Handle(&pawntest.Msg{RoutePath: "good"}, &counter)

	// make sure invalid registrations panic
	assert.Panics(t, func() { r.Handle(&pawntest.Msg{RoutePath: "good"}, &counter) })
	assert.Panics(t, func() { r.Handle(&pawntest.Msg{RoutePath: "l:7"}, &counter) })

	// check proper paths work
	tx := &pawntest.Tx{Msg: &pawntest.Msg{RoutePath: "good"}}
	if _, err := r.Check(nil, nil, tx); err != nil {
		t.Fatalf("check failed: %+v", err)
	}
	if _, err := r.Deliver(nil, nil, tx); err != nil {
		t.Fatalf("deliver failed: %+v", err)
	}
	assert.Equal(t, 2, counter.count)

	// an unclaimed path must be answered with not found
	missing := &pawntest.Tx{Msg: &pawntest.Msg{RoutePath: "missing"}}
	if _, err := r.Check(nil, nil, missing); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
	if _, err := r.Deliver(nil, nil, missing); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
	assert.Equal(t, 2, counter.count)

	// a transaction without a message cannot be routed
	empty := &pawntest.Tx{}
	if _, err := r.Deliver(nil, nil, empty); !errors.ErrState.Is(err) {
		t.Fatalf("want invalid state, got %+v", err)
	}
}
