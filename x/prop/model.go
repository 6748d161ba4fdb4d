package prop

import (
	"github.com/qwerty-one/pawn"
	"github.com/qwerty-one/pawn/coin"
	"github.com/qwerty-one/pawn/errors"
	"github.com/qwerty-one/pawn/orm"
)

var _ orm.CloneableData = (*Proposition)(nil)

// Validate ensures the Proposition is valid
func (p *Proposition) Validate() error {
	if err := p.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	switch p.Type {
	case PropositionAsk, PropositionBid:
		// ok
	default:
		return errors.Wrapf(errors.ErrType, "invalid proposition type %s", p.Type)
	}
	if err := validateAmount(p.Deposit); err != nil {
		return errors.Wrap(err, "deposit")
	}
	if err := validateAmount(p.Assets); err != nil {
		return errors.Wrap(err, "assets")
	}
	if err := validateAmount(p.Premium); err != nil {
		return errors.Wrap(err, "premium")
	}
	if p.Period <= 0 {
		return errors.Wrap(errors.ErrInput, "period is required")
	}
	if p.Expiry == 0 {
		return errors.Wrap(errors.ErrInput, "expiry is required")
	}
	if err := p.Expiry.Validate(); err != nil {
		return errors.Wrap(err, "expiry")
	}

	switch p.State {
	case StateAccepted, StateClosed:
		// A counterparty is fixed from the moment of acceptance.
		if err := p.Contractor.Validate(); err != nil {
			return errors.Wrap(err, "contractor")
		}
	case StateActive, StateRejected:
		// A contractor may be pre-assigned at creation to restrict who
		// can accept. Rejection does not clear it.
		if len(p.Contractor) != 0 {
			if err := p.Contractor.Validate(); err != nil {
				return errors.Wrap(err, "contractor")
			}
		}
	default:
		return errors.Wrapf(errors.ErrState, "invalid proposition state %s", p.State)
	}
	return nil
}

// validateAmount ensures a monetary attribute of a proposition is a
// present, well formed, non negative amount.
func validateAmount(c *coin.Coin) error {
	if c == nil {
		return errors.Wrap(errors.ErrEmpty, "amount missing")
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative amount")
	}
	return nil
}

// Copy produces a deep copy of this proposition
func (p *Proposition) Copy() orm.CloneableData {
	return &Proposition{
		Owner:      p.Owner.Clone(),
		Type:       p.Type,
		State:      p.State,
		Deposit:    p.Deposit.Clone(),
		Assets:     p.Assets.Clone(),
		Premium:    p.Premium.Clone(),
		Period:     p.Period,
		Expiry:     p.Expiry,
		Contractor: p.Contractor.Clone(),
	}
}

// Lender returns the account playing the lender role for this
// proposition. The lender resolves to the owner for an ask and to the
// contractor for a bid. The result is empty while no contractor is
// assigned on a bid.
func (p *Proposition) Lender() pawn.Address {
	if p.Type == PropositionAsk {
		return p.Owner
	}
	return p.Contractor
}

// Borrower returns the account playing the borrower role for this
// proposition, the counterpart of Lender.
func (p *Proposition) Borrower() pawn.Address {
	if p.Type == PropositionAsk {
		return p.Contractor
	}
	return p.Owner
}

// AsProposition extracts a *Proposition value or nil from the object
// Must be called on a Bucket result that is a *Proposition,
// will panic on bad type.
func AsProposition(obj orm.Object) *Proposition {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Proposition)
}

// Bucket is a type-safe wrapper around orm.Bucket that stores
// propositions under sequential ids.
type Bucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewBucket initializes a Bucket with default name
func NewBucket() Bucket {
	b := orm.NewBucket("prop", orm.NewSimpleObj(nil, &Proposition{}))
	return Bucket{
		Bucket: b,
		idSeq:  b.Sequence(orm.SeqID),
	}
}

// Build assigns an id to the given proposition and wraps it in an
// object. The proposition is not persisted until Save is called.
func (b Bucket) Build(db pawn.KVStore, p *Proposition) (orm.Object, error) {
	key, err := b.idSeq.NextVal(db)
	if err != nil {
		return nil, err
	}
	return orm.NewSimpleObj(key, p), nil
}

// Latest returns the value of the most recently assigned proposition
// id, zero when no proposition was ever created.
func (b Bucket) Latest(db pawn.ReadOnlyKVStore) (int64, error) {
	val, _, err := b.idSeq.Latest(db)
	return val, err
}
