package coin

import (
	"sort"

	"github.com/qwerty-one/pawn/errors"
)

//--------------------- Coins -------------------------

// Coins represents a set of coins. Most operations assume they are
// normalized: one instance per ticker, sorted alphabetically, no zero
// values.
type Coins []*Coin

// CombineCoins creates a Coins containing all given coins. It will
// sort them and combine duplicates to produce a normalized form,
// regardless of input.
func CombineCoins(cs ...Coin) (Coins, error) {
	var s Coins
	for _, c := range cs {
		var err error
		s, err = s.Add(c)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Clone returns a copy that can be safely modified.
func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// Add modifies the set, to increase the holdings by c.
func (cs Coins) Add(c Coin) (Coins, error) {
	if c.IsZero() {
		return cs, nil
	}
	if !IsCC(c.Ticker) {
		return nil, errors.Wrapf(errors.ErrCurrency, "invalid ticker: %s", c.Ticker)
	}

	has, idx := cs.findCoin(c.Ticker)
	// add to existing coin
	if has != nil {
		sum, err := has.Add(c)
		if err != nil {
			return nil, err
		}
		if sum.IsZero() {
			cs = append(cs[:idx], cs[idx+1:]...)
			return cs, nil
		}
		cs[idx] = &sum
		return cs, nil
	}

	// special case append to end
	if idx == len(cs) {
		return append(cs, &c), nil
	}

	// insert in beginning or middle (with one alloc)
	res := append(cs, nil)
	copy(res[idx+1:], res[idx:])
	res[idx] = &c
	return res, nil
}

// Subtract modifies the set, to decrease the holdings by c. The
// resulting set may contain negative amounts.
func (cs Coins) Subtract(c Coin) (Coins, error) {
	return cs.Add(c.Negative())
}

// Combine will create a new Coins adding all the coins
// of s and o together.
func (cs Coins) Combine(o Coins) (Coins, error) {
	res := cs.Clone()
	for _, c := range o {
		var err error
		res, err = res.Add(*c)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Contains returns true if there is at least that much
// coin in the set. If it returns true, then:
//   s.Remove(c).IsNonNegative() == true
func (cs Coins) Contains(c Coin) bool {
	has, _ := cs.findCoin(c.Ticker)
	if has == nil {
		return false
	}
	return has.IsGTE(c)
}

// findCoin returns a coin and its index in the set, or a nil coin and
// the index where it should be inserted.
func (cs Coins) findCoin(ticker string) (*Coin, int) {
	idx := sort.Search(len(cs), func(i int) bool {
		return cs[i].Ticker >= ticker
	})
	if idx == len(cs) || cs[idx].Ticker != ticker {
		return nil, idx
	}
	return cs[idx], idx
}

// IsEmpty returns if nothing is in the set
func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

// IsPositive returns true there is at least one coin
// and all coins are positive
func (cs Coins) IsPositive() bool {
	return !cs.IsEmpty() && cs.IsNonNegative()
}

// IsNonNegative returns true if all coins are positive,
// but also accepts an empty set
func (cs Coins) IsNonNegative() bool {
	for _, c := range cs {
		if !c.IsPositive() {
			return false
		}
	}
	return true
}

// Equals returns true if both sets contain same coins
func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Count returns the number of unique currencies in the Coins
func (cs Coins) Count() int {
	return len(cs)
}

// Validate requires that all coins are in alphabetical
// order and that each coin is valid in it's own right
//
// Zero amounts should not be present
func (cs Coins) Validate() error {
	last := ""
	for _, c := range cs {
		if c == nil {
			return errors.Wrap(errors.ErrState, "nil coin")
		}
		if err := c.Validate(); err != nil {
			return err
		}
		if c.IsZero() {
			return errors.Wrap(errors.ErrState, "zero coins")
		}
		if c.Ticker < last {
			return errors.Wrap(errors.ErrState, "not sorted")
		}
		if c.Ticker == last {
			return errors.Wrap(errors.ErrState, "duplicate ticker")
		}
		last = c.Ticker
	}
	return nil
}

// NormalizeCoins takes an unordered set of coins that may contain
// duplicates and zero values and produces the normalized form:
// sorted by ticker, one instance per ticker, no zero values.
func NormalizeCoins(cs Coins) (Coins, error) {
	var res Coins
	for _, c := range cs {
		if c == nil {
			return nil, errors.Wrap(errors.ErrState, "nil coin")
		}
		var err error
		res, err = res.Add(*c)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// isNormalized reports whether the set is already in normalized form.
func isNormalized(cs Coins) bool {
	return cs.Validate() == nil
}
