package bank

import (
	"github.com/qwerty-one/pawn"
	"github.com/qwerty-one/pawn/coin"
	"github.com/qwerty-one/pawn/errors"
)

// Intent is a single requested payout: send Amount to Destination.
// Intents carry no source, the queueing module is the implicit payer.
type Intent struct {
	Destination pawn.Address
	Amount      coin.Coins
}

// Validate ensures the intent could be settled
func (i Intent) Validate() error {
	var err error
	err = errors.AppendField(err, "Destination", i.Destination.Validate())
	if i.Amount.IsEmpty() {
		err = errors.AppendField(err, "Amount", errors.ErrEmpty)
	} else if !i.Amount.IsPositive() {
		err = errors.AppendField(err, "Amount", errors.ErrAmount)
	} else {
		err = errors.AppendField(err, "Amount", i.Amount.Validate())
	}
	return err
}

// Ledger accepts payout intents for settlement. Implementations must
// apply queued intents atomically with the rest of the transaction,
// so they write through the same KVStore.
type Ledger interface {
	Queue(db pawn.KVStore, dest pawn.Address, amount coin.Coins) error
}

// FundsTx is implemented by any transaction that carries coins
// alongside its message.
type FundsTx interface {
	pawn.Tx
	GetFunds() coin.Coins
}

// AttachedFunds extracts the normalized funds from the transaction.
// A transaction without funds support returns nil.
func AttachedFunds(tx pawn.Tx) (coin.Coins, error) {
	ftx, ok := tx.(FundsTx)
	if !ok {
		return nil, nil
	}
	funds, err := coin.NormalizeCoins(ftx.GetFunds())
	if err != nil {
		return nil, errors.Wrap(err, "attached funds")
	}
	if !funds.IsNonNegative() {
		return nil, errors.Wrap(errors.ErrAmount, "negative funds")
	}
	return funds, nil
}

// MergeIntents combines intents sharing a destination into one,
// keeping the order in which each destination was first seen.
// Empty intents are dropped.
func MergeIntents(intents []Intent) ([]Intent, error) {
	var (
		order  []string
		byDest = make(map[string]coin.Coins)
	)
	for _, in := range intents {
		key := string(in.Destination)
		sum, ok := byDest[key]
		if !ok {
			order = append(order, key)
		}
		sum, err := sum.Combine(in.Amount)
		if err != nil {
			return nil, err
		}
		byDest[key] = sum
	}

	var res []Intent
	for _, key := range order {
		amount := byDest[key]
		if amount.IsEmpty() {
			continue
		}
		res = append(res, Intent{
			Destination: pawn.Address(key),
			Amount:      amount,
		})
	}
	return res, nil
}

// QueueIntents merges the given intents and queues them on the ledger
func QueueIntents(db pawn.KVStore, l Ledger, intents []Intent) error {
	merged, err := MergeIntents(intents)
	if err != nil {
		return err
	}
	for _, in := range merged {
		if err := in.Validate(); err != nil {
			return err
		}
		if err := l.Queue(db, in.Destination, in.Amount); err != nil {
			return errors.Wrapf(err, "queue payout to %s", in.Destination)
		}
	}
	return nil
}
