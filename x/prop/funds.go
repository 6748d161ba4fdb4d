package prop

import (
	"github.com/qwerty-one/pawn/coin"
	"github.com/qwerty-one/pawn/errors"
)

// deduct removes the given amount from the attached funds and returns
// the remainder. It fails when the funds do not hold at least the
// required amount in the required currency. The error names both what
// was expected and what was actually held.
func deduct(funds coin.Coins, amount coin.Coin) (coin.Coins, error) {
	if amount.IsZero() {
		return funds, nil
	}
	if !funds.Contains(amount) {
		held := coin.Coin{Ticker: amount.Ticker}
		for _, c := range funds {
			if c.Ticker == amount.Ticker {
				held = *c
				break
			}
		}
		return nil, errors.Wrapf(ErrInsufficientFunds,
			"expected %s, got %s", amount, held)
	}
	return funds.Subtract(amount)
}

// requireFunds ensures the attached funds cover every required amount,
// applied in order. Residual funds beyond what is required stay in the
// proposition's custody and are not refunded.
func requireFunds(funds coin.Coins, required ...coin.Coin) error {
	var err error
	for _, amount := range required {
		funds, err = deduct(funds, amount)
		if err != nil {
			return err
		}
	}
	return nil
}
