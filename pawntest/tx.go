package pawntest

import (
	"encoding/binary"

	"github.com/qwerty-one/pawn"
	"github.com/qwerty-one/pawn/coin"
	"github.com/qwerty-one/pawn/x/bank"
)

// Tx represents a transaction.
// Transaction represents a single message that is to be processed within this
// transaction.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg pawn.Msg
	// Funds are the coins attached to this transaction. Extensions that
	// escrow value read them through the bank.FundsTx interface.
	Funds coin.Coins
	// Err if set is returned by any method call.
	Err error
}

var _ pawn.Tx = (*Tx)(nil)
var _ bank.FundsTx = (*Tx)(nil)

func (tx *Tx) GetMsg() (pawn.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) GetFunds() coin.Coins {
	return tx.Funds
}

func (tx *Tx) Unmarshal([]byte) error {
	panic("not implemented")
}

func (tx *Tx) Marshal() ([]byte, error) {
	panic("not implemented")
}

// Msg represents a message.
// Message is a request processed within a single transaction.
type Msg struct {
	// RoutePath is returned by the Path method, consumed by the router.
	RoutePath string
	// Serialized represents the serialized form of this message.
	Serialized []byte
	// Err if set is returned by any method call.
	Err error
}

var _ pawn.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Unmarshal(b []byte) error {
	m.Serialized = b
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}

// SequenceID returns an ID encoded as if it were generated by an orm
// sequence, the raw 8-byte big endian representation.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
