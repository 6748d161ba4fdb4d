/*
Package pawn defines all common interfaces that tie the module together:
the key-value store abstraction, transactions and messages, handlers,
addresses and time.

The actual business logic lives in the x/... subpackages, most notably
x/prop, which implements the collateralized proposition state machine.
The root package carries no state of its own; it is the vocabulary the
extensions speak.
*/
package pawn
