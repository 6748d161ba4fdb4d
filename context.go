package pawn

import (
	"context"
	"regexp"
	"time"

	"github.com/qwerty-one/pawn/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// IsValidChainID is the RegExp to ensure valid chain IDs
var IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString

// Context is just a reference to the standard implementation. Handlers must
// never rely on anything but the accessors defined below, so the host can
// swap the carrier at will.
type Context = context.Context

type contextKey int // local to the pawn module

const (
	contextKeyHeight contextKey = iota
	contextKeyChainID
	contextKeyLogger
	contextKeyTime
)

// DefaultLogger is used for all context that have not set anything themselves.
var DefaultLogger = log.NewNopLogger()

// WithHeight sets the block height for the Context.
// Must only be done once, and will panic on repeat.
func WithHeight(ctx Context, height int64) Context {
	return withNoDuplicates(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height,
// and a flag if it was set.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithChainID sets the chain id for the Context.
// Must only be done once, and will panic on repeat.
func WithChainID(ctx Context, chainID string) Context {
	if !IsValidChainID(chainID) {
		panic("invalid chain id: " + chainID)
	}
	return withNoDuplicates(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the current chain id.
// Panics if the chain id was not set, as this is a configuration error.
func GetChainID(ctx Context) string {
	val, ok := ctx.Value(contextKeyChainID).(string)
	if !ok {
		panic("chain id not set")
	}
	return val
}

// WithBlockTime sets the block time for the Context. The block time is always
// in UTC and the timezone information is dropped.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyTime, t.UTC())
}

// BlockTime returns the block time declared in the context. An error is
// returned if the block time is not present. This is a broken setup and every
// caller is expected to handle it the hard way.
func BlockTime(ctx Context) (time.Time, error) {
	val, ok := ctx.Value(contextKeyTime).(time.Time)
	if !ok {
		return time.Time{}, errors.Wrap(errors.ErrHuman, "block time not present in the context")
	}
	return val, nil
}

// WithLogger sets the logger for the Context.
// This can be changed many times, to add extra info to the logger.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the currently set logger, or DefaultLogger if none was
// set.
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}

// withNoDuplicates sets the value, but panics if it was already set.
func withNoDuplicates(ctx Context, key contextKey, value interface{}) Context {
	if ctx.Value(key) != nil {
		panic("context value already set")
	}
	return context.WithValue(ctx, key, value)
}

// IsExpired returns true if given time is in the past as compared to the
// "now" as declared for the block. A proposition whose expiry equals the
// current block time is not yet expired; only strictly older deadlines are.
//
// This function panics if the block time is not provided in the context. This
// must never happen. The panic is here to prevent a broken setup from
// processing data incorrectly.
func IsExpired(ctx Context, t UnixTime) bool {
	blockNow, err := BlockTime(ctx)
	if err != nil {
		panic("block time is not present")
	}
	return t.Time().Before(blockNow)
}
