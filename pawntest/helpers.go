package pawntest

import (
	"crypto/rand"

	"github.com/qwerty-one/pawn"
)

// NewCondition returns a random condition. Each call returns a
// different value, so two conditions created this way never share an
// address.
func NewCondition() pawn.Condition {
	data := make([]byte, 32)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return pawn.NewCondition("test", "rnd", data)
}
