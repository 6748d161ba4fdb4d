package prop

import (
	"github.com/qwerty-one/pawn"
)

var _ pawn.Ticker = (*Ticker)(nil)

// Ticker fulfils the Ticker interface as the per block hook of this
// package. Propositions do not expire eagerly, expiry is checked on
// access, so there is nothing to do at the beginning of a block.
type Ticker struct{}

// Tick implements the pawn.Ticker interface.
func (Ticker) Tick(ctx pawn.Context, store pawn.CacheableKVStore) pawn.TickResult {
	return pawn.TickResult{}
}
