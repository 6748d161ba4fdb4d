package prop

import (
	"github.com/qwerty-one/pawn"
	"github.com/qwerty-one/pawn/coin"
	"github.com/qwerty-one/pawn/errors"
)

var _ pawn.Initializer = (*Initializer)(nil)

// Initializer fulfils the Initializer interface to load data from the
// genesis file
type Initializer struct{}

// FromGenesis will parse initial proposition info from genesis and
// save it in the database. Seeded propositions start active, an empty
// genesis section is valid.
func (*Initializer) FromGenesis(opts pawn.Options, db pawn.KVStore) error {
	var props []struct {
		Owner      pawn.Address      `json:"owner"`
		Type       string            `json:"type"`
		Deposit    coin.Coin         `json:"deposit"`
		Assets     coin.Coin         `json:"assets"`
		Premium    coin.Coin         `json:"premium"`
		Period     pawn.UnixDuration `json:"period"`
		Expiry     pawn.UnixTime     `json:"expiry"`
		Contractor pawn.Address      `json:"contractor"`
	}

	if err := opts.ReadOptions("prop", &props); err != nil {
		return err
	}

	bucket := NewBucket()
	for i, p := range props {
		var t PropositionType
		switch p.Type {
		case "ask":
			t = PropositionAsk
		case "bid":
			t = PropositionBid
		default:
			return errors.Wrapf(errors.ErrInput, "proposition #%d: unknown type %q", i, p.Type)
		}

		prop := &Proposition{
			Owner:      p.Owner,
			Type:       t,
			State:      StateActive,
			Deposit:    p.Deposit.Clone(),
			Assets:     p.Assets.Clone(),
			Premium:    p.Premium.Clone(),
			Period:     p.Period,
			Expiry:     p.Expiry,
			Contractor: p.Contractor,
		}
		obj, err := bucket.Build(db, prop)
		if err != nil {
			return err
		}
		if err := bucket.Save(db, obj); err != nil {
			return errors.Wrapf(err, "proposition #%d", i)
		}
	}
	return nil
}
