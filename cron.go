package pawn

import (
	"github.com/tendermint/tendermint/libs/common"
)

// Ticker is an interface used to call background tasks scheduled for
// execution at the beginning of every block.
type Ticker interface {
	// Tick is a method called at the beginning of the block. It should be
	// used to execute any scheduled tasks.
	//
	// Because the beginning of the block does not allow for an error
	// response this method does not return one as well. It is the
	// implementation responsibility to handle all error situations.
	Tick(ctx Context, store CacheableKVStore) TickResult
}

// TickResult represents the result of a single tick run.
type TickResult struct {
	// Tags contains a list of tags that were produced during a single
	// tick execution. They should be included in the block that this tick
	// result was produced.
	// Empty tag list is a valid result.
	Tags []common.KVPair
}
