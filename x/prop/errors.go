package prop

import (
	"github.com/qwerty-one/pawn/errors"
)

var (
	// ErrWrongState is returned when an operation requires the
	// proposition to be in a different lifecycle state. Wrap it with the
	// expected and the current state.
	ErrWrongState = errors.Register(1200, "wrong proposition state")

	// ErrInsufficientFunds is returned when the funds attached to the
	// transaction do not cover what the operation requires.
	ErrInsufficientFunds = errors.Register(1201, "insufficient funds")
)
