/*
Package bank defines how value leaves and enters the state machine.

Handlers do not settle balances themselves. They describe the payouts
they require as intents and queue them on a Ledger. The Ledger
implementation is injected by the application and may settle with a
native token module, an external custodian, or a test recorder.

Incoming value rides on the transaction itself: any Tx that carries
funds implements FundsTx and the handlers read it with AttachedFunds.
*/
package bank
