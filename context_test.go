package pawn

import (
	"context"
	"io/ioutil"
	"testing"
	"time"

	"github.com/tendermint/tendermint/libs/log"
)

func TestContextHeight(t *testing.T) {
	ctx := context.Background()
	if _, ok := GetHeight(ctx); ok {
		t.Fatal("height must not be set on a fresh context")
	}

	ctx = WithHeight(ctx, 7)
	if h, ok := GetHeight(ctx); !ok || h != 7 {
		t.Fatalf("unexpected height: %d %v", h, ok)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("setting the height twice must panic")
		}
	}()
	WithHeight(ctx, 9)
}

func TestContextChainID(t *testing.T) {
	ctx := WithChainID(context.Background(), "my-chain-22")
	if got := GetChainID(ctx); got != "my-chain-22" {
		t.Fatalf("unexpected chain id: %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("invalid chain id must panic")
		}
	}()
	WithChainID(context.Background(), "?!")
}

func TestContextBlockTime(t *testing.T) {
	ctx := context.Background()
	if _, err := BlockTime(ctx); err == nil {
		t.Fatal("block time read must fail before it is set")
	}

	now := time.Unix(1500000000, 0)
	ctx = WithBlockTime(ctx, now)
	got, err := BlockTime(ctx)
	if err != nil {
		t.Fatalf("cannot read block time: %+v", err)
	}
	// the timezone is normalized away
	if !got.Equal(now) || got.Location() != time.UTC {
		t.Fatalf("unexpected block time: %v", got)
	}
}

func TestContextLogger(t *testing.T) {
	ctx := context.Background()
	if GetLogger(ctx) != DefaultLogger {
		t.Fatal("expected the default logger")
	}

	custom := log.NewTMLogger(ioutil.Discard)
	ctx = WithLogger(ctx, custom)
	if GetLogger(ctx) != custom {
		t.Fatal("custom logger not returned")
	}
}
