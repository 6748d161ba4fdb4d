package bank

import (
	"github.com/qwerty-one/pawn"
	"github.com/qwerty-one/pawn/coin"
)

// Recorder is a Ledger that keeps every queued intent in memory.
// Useful for tests and for applications that settle payouts in a
// later stage of the block.
type Recorder struct {
	intents []Intent
}

var _ Ledger = (*Recorder)(nil)

// NewRecorder returns an empty in-memory ledger
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Queue stores the intent.
func (r *Recorder) Queue(db pawn.KVStore, dest pawn.Address, amount coin.Coins) error {
	r.intents = append(r.intents, Intent{
		Destination: dest.Clone(),
		Amount:      amount.Clone(),
	})
	return nil
}

// Queued returns a copy of all intents queued so far, in order
func (r *Recorder) Queued() []Intent {
	res := make([]Intent, len(r.intents))
	copy(res, r.intents)
	return res
}

// Reset drops all recorded intents
func (r *Recorder) Reset() {
	r.intents = nil
}
