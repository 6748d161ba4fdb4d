package prop

import (
	"github.com/qwerty-one/pawn"
	"github.com/qwerty-one/pawn/coin"
	"github.com/qwerty-one/pawn/errors"
	"github.com/qwerty-one/pawn/orm"
	"github.com/qwerty-one/pawn/x"
	"github.com/qwerty-one/pawn/x/bank"
)

const (
	// pay proposition cost up-front
	createPropositionCost int64 = 300
	acceptPropositionCost int64 = 100
	rejectPropositionCost int64 = 0
	closePropositionCost  int64 = 0
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r pawn.Registry, auth x.Authenticator, ledger bank.Ledger) {
	bucket := NewBucket()

	r.Handle(&CreatePropositionMsg{}, CreatePropositionHandler{auth, bucket})
	r.Handle(&AcceptPropositionMsg{}, AcceptPropositionHandler{auth, bucket, ledger})
	r.Handle(&RejectPropositionMsg{}, RejectPropositionHandler{auth, bucket, ledger})
	r.Handle(&ClosePropositionMsg{}, ClosePropositionHandler{auth, bucket, ledger})
}

// escrowed returns the amounts the owner put in custody at creation:
// deposit and premium for an ask, the assets for a bid.
func escrowed(p *Proposition) []coin.Coin {
	if p.Type == PropositionAsk {
		return []coin.Coin{*p.Deposit, *p.Premium}
	}
	return []coin.Coin{*p.Assets}
}

// counterEscrowed returns the amounts the accepting party must attach:
// the mirror image of escrowed.
func counterEscrowed(p *Proposition) []coin.Coin {
	if p.Type == PropositionAsk {
		return []coin.Coin{*p.Assets}
	}
	return []coin.Coin{*p.Deposit, *p.Premium}
}

// payout builds a single transfer intent from a list of amounts.
// Amounts sharing a currency are summed and zero values dropped.
func payout(dest pawn.Address, amounts ...coin.Coin) (bank.Intent, error) {
	sum, err := coin.CombineCoins(amounts...)
	if err != nil {
		return bank.Intent{}, err
	}
	return bank.Intent{Destination: dest, Amount: sum}, nil
}

// loadProposition returns the proposition with given id or ErrNotFound.
func loadProposition(bucket Bucket, db pawn.ReadOnlyKVStore, id []byte) (*Proposition, error) {
	obj, err := bucket.Get(db, id)
	if err != nil {
		return nil, err
	}
	p := AsProposition(obj)
	if p == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "proposition %d", orm.DecodeSequence(id))
	}
	return p, nil
}

//---- create

// CreatePropositionHandler opens a new proposition. The escrow itself
// is the funds the caller attached to the transaction, the handler
// only verifies that they cover what the orientation requires.
type CreatePropositionHandler struct {
	auth   x.Authenticator
	bucket Bucket
}

var _ pawn.Handler = CreatePropositionHandler{}

// Check does the validation and sets the cost of the transaction
func (h CreatePropositionHandler) Check(ctx pawn.Context, db pawn.KVStore, tx pawn.Tx) (*pawn.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &pawn.CheckResult{GasAllocated: createPropositionCost}, nil
}

// Deliver stores the new proposition and returns its id.
func (h CreatePropositionHandler) Deliver(ctx pawn.Context, db pawn.KVStore, tx pawn.Tx) (*pawn.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	prop := &Proposition{
		Owner:      owner,
		Type:       msg.Type,
		State:      StateActive,
		Deposit:    msg.Deposit,
		Assets:     msg.Assets,
		Premium:    msg.Premium,
		Period:     msg.Period,
		Expiry:     msg.Expiry,
		Contractor: msg.Contractor,
	}
	obj, err := h.bucket.Build(db, prop)
	if err != nil {
		return nil, err
	}
	if err := h.bucket.Save(db, obj); err != nil {
		return nil, err
	}

	// return id of the proposition to use in future calls
	return &pawn.DeliverResult{Data: obj.Key()}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CreatePropositionHandler) validate(ctx pawn.Context, db pawn.KVStore, tx pawn.Tx) (*CreatePropositionMsg, pawn.Address, error) {
	var msg CreatePropositionMsg
	if err := pawn.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}

	funds, err := bank.AttachedFunds(tx)
	if err != nil {
		return nil, nil, err
	}
	var required []coin.Coin
	if msg.Type == PropositionAsk {
		required = []coin.Coin{*msg.Deposit, *msg.Premium}
	} else {
		required = []coin.Coin{*msg.Assets}
	}
	if err := requireFunds(funds, required...); err != nil {
		return nil, nil, err
	}

	return &msg, signer.Address(), nil
}

//---- accept

// AcceptPropositionHandler binds the caller as contractor of an active
// proposition and settles the acceptance money flow.
type AcceptPropositionHandler struct {
	auth   x.Authenticator
	bucket Bucket
	ledger bank.Ledger
}

var _ pawn.Handler = AcceptPropositionHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h AcceptPropositionHandler) Check(ctx pawn.Context, db pawn.KVStore, tx pawn.Tx) (*pawn.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &pawn.CheckResult{GasAllocated: acceptPropositionCost}, nil
}

// Deliver fixes the contractor, restarts the expiry clock and queues
// the assets to the lender and the premium to the borrower. The
// deposit remains in custody until close.
func (h AcceptPropositionHandler) Deliver(ctx pawn.Context, db pawn.KVStore, tx pawn.Tx) (*pawn.DeliverResult, error) {
	propID, prop, caller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	now, err := pawn.BlockTime(ctx)
	if err != nil {
		return nil, err
	}

	prop.Contractor = caller
	prop.Expiry = pawn.AsUnixTime(now).Add(prop.Period.Duration())
	prop.State = StateAccepted
	if err := h.bucket.Save(db, orm.NewSimpleObj(propID, prop)); err != nil {
		return nil, err
	}

	toLender, err := payout(prop.Lender(), *prop.Assets)
	if err != nil {
		return nil, err
	}
	toBorrower, err := payout(prop.Borrower(), *prop.Premium)
	if err != nil {
		return nil, err
	}
	if err := bank.QueueIntents(db, h.ledger, []bank.Intent{toLender, toBorrower}); err != nil {
		return nil, err
	}

	return &pawn.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h AcceptPropositionHandler) validate(ctx pawn.Context, db pawn.KVStore, tx pawn.Tx) ([]byte, *Proposition, pawn.Address, error) {
	var msg AcceptPropositionMsg
	if err := pawn.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}

	prop, err := loadProposition(h.bucket, db, msg.PropositionId)
	if err != nil {
		return nil, nil, nil, err
	}

	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	caller := signer.Address()

	if h.auth.HasAddress(ctx, prop.Owner) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner cannot accept own proposition")
	}
	// resubmitted accept from the assigned contractor, checked before
	// the generic state guard
	if prop.State == StateAccepted && caller.Equals(prop.Contractor) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "proposition already accepted")
	}
	if prop.State != StateActive {
		return nil, nil, nil, errors.Wrapf(ErrWrongState, "expected %s, current %s", StateActive, prop.State)
	}
	if pawn.IsExpired(ctx, prop.Expiry) {
		return nil, nil, nil, errors.Wrap(errors.ErrExpired, "proposition expired")
	}
	if len(prop.Contractor) != 0 && !caller.Equals(prop.Contractor) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "proposition reserved for another contractor")
	}

	funds, err := bank.AttachedFunds(tx)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := requireFunds(funds, counterEscrowed(prop)...); err != nil {
		return nil, nil, nil, err
	}

	return msg.PropositionId, prop, caller, nil
}

//---- reject

// RejectPropositionHandler withdraws an active proposition and returns
// the full escrow to the owner.
type RejectPropositionHandler struct {
	auth   x.Authenticator
	bucket Bucket
	ledger bank.Ledger
}

var _ pawn.Handler = RejectPropositionHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h RejectPropositionHandler) Check(ctx pawn.Context, db pawn.KVStore, tx pawn.Tx) (*pawn.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &pawn.CheckResult{GasAllocated: rejectPropositionCost}, nil
}

// Deliver marks the proposition rejected and queues the original
// escrow back to the owner.
func (h RejectPropositionHandler) Deliver(ctx pawn.Context, db pawn.KVStore, tx pawn.Tx) (*pawn.DeliverResult, error) {
	propID, prop, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	prop.State = StateRejected
	if err := h.bucket.Save(db, orm.NewSimpleObj(propID, prop)); err != nil {
		return nil, err
	}

	refund, err := payout(prop.Owner, escrowed(prop)...)
	if err != nil {
		return nil, err
	}
	if err := bank.QueueIntents(db, h.ledger, []bank.Intent{refund}); err != nil {
		return nil, err
	}

	return &pawn.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h RejectPropositionHandler) validate(ctx pawn.Context, db pawn.KVStore, tx pawn.Tx) ([]byte, *Proposition, error) {
	var msg RejectPropositionMsg
	if err := pawn.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	prop, err := loadProposition(h.bucket, db, msg.PropositionId)
	if err != nil {
		return nil, nil, err
	}

	if !h.auth.HasAddress(ctx, prop.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the owner can reject")
	}
	if prop.State != StateActive {
		return nil, nil, errors.Wrapf(ErrWrongState, "expected %s, current %s", StateActive, prop.State)
	}

	return msg.PropositionId, prop, nil
}

//---- close

// ClosePropositionHandler settles an accepted proposition. Before the
// expiry the lender returns the assets and recovers the deposit. Past
// the expiry the borrower collects the deposit and keeps the assets.
type ClosePropositionHandler struct {
	auth   x.Authenticator
	bucket Bucket
	ledger bank.Ledger
}

var _ pawn.Handler = ClosePropositionHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h ClosePropositionHandler) Check(ctx pawn.Context, db pawn.KVStore, tx pawn.Tx) (*pawn.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &pawn.CheckResult{GasAllocated: closePropositionCost}, nil
}

// Deliver marks the proposition closed and queues the settlement
// transfers of the branch taken.
func (h ClosePropositionHandler) Deliver(ctx pawn.Context, db pawn.KVStore, tx pawn.Tx) (*pawn.DeliverResult, error) {
	propID, prop, expired, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	prop.State = StateClosed
	if err := h.bucket.Save(db, orm.NewSimpleObj(propID, prop)); err != nil {
		return nil, err
	}

	var intents []bank.Intent
	if expired {
		// The lender forfeits timely settlement. The assets were
		// already paid out at acceptance, only the deposit moves.
		toBorrower, err := payout(prop.Borrower(), *prop.Deposit)
		if err != nil {
			return nil, err
		}
		intents = []bank.Intent{toBorrower}
	} else {
		toBorrower, err := payout(prop.Borrower(), *prop.Assets)
		if err != nil {
			return nil, err
		}
		toLender, err := payout(prop.Lender(), *prop.Deposit)
		if err != nil {
			return nil, err
		}
		intents = []bank.Intent{toBorrower, toLender}
	}
	if err := bank.QueueIntents(db, h.ledger, intents); err != nil {
		return nil, err
	}

	return &pawn.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
// The returned flag tells whether the expired settlement branch
// applies.
func (h ClosePropositionHandler) validate(ctx pawn.Context, db pawn.KVStore, tx pawn.Tx) ([]byte, *Proposition, bool, error) {
	var msg ClosePropositionMsg
	if err := pawn.LoadMsg(tx, &msg); err != nil {
		return nil, nil, false, errors.Wrap(err, "load msg")
	}

	prop, err := loadProposition(h.bucket, db, msg.PropositionId)
	if err != nil {
		return nil, nil, false, err
	}

	if prop.State != StateAccepted {
		return nil, nil, false, errors.Wrapf(ErrWrongState, "expected %s, current %s", StateAccepted, prop.State)
	}

	expired := pawn.IsExpired(ctx, prop.Expiry)
	if expired {
		if !h.auth.HasAddress(ctx, prop.Borrower()) {
			return nil, nil, false, errors.Wrap(errors.ErrUnauthorized, "only the borrower can close an expired proposition")
		}
		return msg.PropositionId, prop, true, nil
	}

	if !h.auth.HasAddress(ctx, prop.Lender()) {
		return nil, nil, false, errors.Wrap(errors.ErrUnauthorized, "only the lender can close before the expiry")
	}
	funds, err := bank.AttachedFunds(tx)
	if err != nil {
		return nil, nil, false, err
	}
	if err := requireFunds(funds, *prop.Assets); err != nil {
		return nil, nil, false, err
	}

	return msg.PropositionId, prop, false, nil
}
