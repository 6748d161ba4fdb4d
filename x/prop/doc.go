/*
Package prop implements a two party collateralized escrow.

One account creates a proposition, offering to either borrow (ask) or
lend (bid) a quantity of assets against a deposit and a premium, for a
bounded period. A second account may accept it. From then on the
package governs exactly which party may withdraw which escrowed funds,
and when.

The package never moves money itself. Funds enter custody because the
caller attaches them to the transaction, and leave custody as payout
intents queued on a bank.Ledger after a successful state transition.
*/
package prop
