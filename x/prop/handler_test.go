package prop_test

import (
	"context"
	"testing"
	"time"

	"github.com/qwerty-one/pawn"
	"github.com/qwerty-one/pawn/app"
	"github.com/qwerty-one/pawn/coin"
	"github.com/qwerty-one/pawn/errors"
	"github.com/qwerty-one/pawn/pawntest"
	"github.com/qwerty-one/pawn/pawntest/assert"
	"github.com/qwerty-one/pawn/store"
	"github.com/qwerty-one/pawn/x"
	"github.com/qwerty-one/pawn/x/bank"
	"github.com/qwerty-one/pawn/x/prop"
)

var (
	blockNow = time.Unix(1500000000, 0).UTC()

	deposit = coin.NewCoin(100, 0, "IOV")
	assets  = coin.NewCoin(100, 0, "BTC")
	premium = coin.NewCoin(100, 0, "ETH")

	period = pawn.AsUnixDuration(time.Hour)
)

func mustCoins(t testing.TB, cs ...coin.Coin) coin.Coins {
	t.Helper()
	res, err := coin.CombineCoins(cs...)
	if err != nil {
		t.Fatalf("cannot combine coins: %+v", err)
	}
	return res
}

// fixture wires the handlers of this package with in-memory collaborators.
type fixture struct {
	router *app.Router
	auth   *pawntest.CtxAuth
	ledger *bank.Recorder
	bucket prop.Bucket
	db     pawn.CacheableKVStore
}

func newFixture() *fixture {
	r := app.NewRouter()
	authenticator := &pawntest.CtxAuth{Key: "auth"}
	ledger := bank.NewRecorder()
	prop.RegisterRoutes(r, x.ChainAuth(authenticator), ledger)
	return &fixture{
		router: r,
		auth:   authenticator,
		ledger: ledger,
		bucket: prop.NewBucket(),
		db:     store.MemStore(),
	}
}

func (f *fixture) ctx(at time.Time, signers ...pawn.Condition) pawn.Context {
	ctx := pawn.WithHeight(context.Background(), 100)
	ctx = pawn.WithBlockTime(ctx, at)
	return f.auth.SetConditions(ctx, signers...)
}

func (f *fixture) deliver(ctx pawn.Context, msg pawn.Msg, funds coin.Coins) (*pawn.DeliverResult, error) {
	return f.router.Deliver(ctx, f.db, &pawntest.Tx{Msg: msg, Funds: funds})
}

func (f *fixture) check(ctx pawn.Context, msg pawn.Msg, funds coin.Coins) (*pawn.CheckResult, error) {
	return f.router.Check(ctx, f.db, &pawntest.Tx{Msg: msg, Funds: funds})
}

func (f *fixture) proposition(t testing.TB, id []byte) *prop.Proposition {
	t.Helper()
	obj, err := f.bucket.Get(f.db, id)
	assert.Nil(t, err)
	p := prop.AsProposition(obj)
	if p == nil {
		t.Fatalf("proposition %x not found", id)
	}
	return p
}

func createMsg(t prop.PropositionType) *prop.CreatePropositionMsg {
	return &prop.CreatePropositionMsg{
		Type:    t,
		Deposit: deposit.Clone(),
		Assets:  assets.Clone(),
		Premium: premium.Clone(),
		Period:  period,
		Expiry:  pawn.AsUnixTime(blockNow.Add(2 * time.Hour)),
	}
}

func TestCreatePropositionHandler(t *testing.T) {
	alice := pawntest.NewCondition()

	cases := map[string]struct {
		signers        []pawn.Condition
		funds          coin.Coins
		mutate         func(msg *prop.CreatePropositionMsg)
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
	}{
		"happy path ask": {
			signers: []pawn.Condition{alice},
			funds:   mustCoins(t, deposit, premium),
		},
		"happy path bid": {
			signers: []pawn.Condition{alice},
			funds:   mustCoins(t, assets),
			mutate: func(msg *prop.CreatePropositionMsg) {
				msg.Type = prop.PropositionBid
			},
		},
		"residual funds are accepted": {
			signers: []pawn.Condition{alice},
			funds:   mustCoins(t, deposit, premium, assets),
		},
		"ask short of premium": {
			signers:        []pawn.Condition{alice},
			funds:          mustCoins(t, deposit, coin.NewCoin(99, 0, "ETH")),
			wantCheckErr:   prop.ErrInsufficientFunds,
			wantDeliverErr: prop.ErrInsufficientFunds,
		},
		"bid without funds": {
			signers: []pawn.Condition{alice},
			mutate: func(msg *prop.CreatePropositionMsg) {
				msg.Type = prop.PropositionBid
			},
			wantCheckErr:   prop.ErrInsufficientFunds,
			wantDeliverErr: prop.ErrInsufficientFunds,
		},
		"wrong currency": {
			signers:        []pawn.Condition{alice},
			funds:          mustCoins(t, coin.NewCoin(200, 0, "DOGE")),
			wantCheckErr:   prop.ErrInsufficientFunds,
			wantDeliverErr: prop.ErrInsufficientFunds,
		},
		"no signer": {
			funds:          mustCoins(t, deposit, premium),
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"invalid message": {
			signers: []pawn.Condition{alice},
			funds:   mustCoins(t, deposit, premium),
			mutate: func(msg *prop.CreatePropositionMsg) {
				msg.Period = 0
			},
			wantCheckErr:   errors.ErrInput,
			wantDeliverErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			msg := createMsg(prop.PropositionAsk)
			if tc.mutate != nil {
				tc.mutate(msg)
			}
			ctx := f.ctx(blockNow, tc.signers...)

			if _, err := f.check(ctx, msg, tc.funds); !tc.wantCheckErr.Is(err) {
				t.Fatalf("check: want %v, got %+v", tc.wantCheckErr, err)
			}
			res, err := f.deliver(ctx, msg, tc.funds)
			if !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver: want %v, got %+v", tc.wantDeliverErr, err)
			}
			if tc.wantDeliverErr != nil {
				return
			}

			assert.Equal(t, pawntest.SequenceID(1), res.Data)
			p := f.proposition(t, res.Data)
			assert.Equal(t, prop.StateActive, p.State)
			if !p.Owner.Equals(alice.Address()) {
				t.Fatalf("unexpected owner %s", p.Owner)
			}
			assert.Equal(t, msg.Expiry, p.Expiry)
			if len(f.ledger.Queued()) != 0 {
				t.Fatal("create must not queue transfers")
			}
		})
	}
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	f := newFixture()
	alice := pawntest.NewCondition()
	ctx := f.ctx(blockNow, alice)

	for i := uint64(1); i <= 3; i++ {
		res, err := f.deliver(ctx, createMsg(prop.PropositionAsk), mustCoins(t, deposit, premium))
		assert.Nil(t, err)
		assert.Equal(t, pawntest.SequenceID(i), res.Data)
	}
	latest, err := f.bucket.Latest(f.db)
	assert.Nil(t, err)
	assert.Equal(t, int64(3), latest)
}

func TestAcceptPropositionHandler(t *testing.T) {
	alice := pawntest.NewCondition()
	bob := pawntest.NewCondition()
	carol := pawntest.NewCondition()

	cases := map[string]struct {
		contractor     pawn.Address
		accepted       bool
		signers        []pawn.Condition
		funds          coin.Coins
		propID         []byte
		at             time.Time
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
	}{
		"happy path": {
			signers: []pawn.Condition{bob},
			funds:   mustCoins(t, assets),
		},
		"happy path pre-assigned contractor": {
			contractor: bob.Address(),
			signers:    []pawn.Condition{bob},
			funds:      mustCoins(t, assets),
		},
		"owner cannot accept": {
			signers:        []pawn.Condition{alice},
			funds:          mustCoins(t, assets),
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"unknown proposition": {
			signers:        []pawn.Condition{bob},
			funds:          mustCoins(t, assets),
			propID:         pawntest.SequenceID(42),
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
		"already accepted by someone else": {
			accepted:       true,
			signers:        []pawn.Condition{carol},
			funds:          mustCoins(t, assets),
			wantCheckErr:   prop.ErrWrongState,
			wantDeliverErr: prop.ErrWrongState,
		},
		"contractor accepting twice": {
			accepted:       true,
			signers:        []pawn.Condition{bob},
			funds:          mustCoins(t, assets),
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"expired proposition": {
			signers:        []pawn.Condition{bob},
			funds:          mustCoins(t, assets),
			at:             blockNow.Add(2*time.Hour + time.Second),
			wantCheckErr:   errors.ErrExpired,
			wantDeliverErr: errors.ErrExpired,
		},
		"reserved for another contractor": {
			contractor:     carol.Address(),
			signers:        []pawn.Condition{bob},
			funds:          mustCoins(t, assets),
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"insufficient funds": {
			signers:        []pawn.Condition{bob},
			funds:          mustCoins(t, coin.NewCoin(99, 0, "BTC")),
			wantCheckErr:   prop.ErrInsufficientFunds,
			wantDeliverErr: prop.ErrInsufficientFunds,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture()

			create := createMsg(prop.PropositionAsk)
			create.Contractor = tc.contractor
			res, err := f.deliver(f.ctx(blockNow, alice), create, mustCoins(t, deposit, premium))
			assert.Nil(t, err)
			propID := res.Data
			if tc.accepted {
				_, err := f.deliver(f.ctx(blockNow, bob), &prop.AcceptPropositionMsg{PropositionId: propID}, mustCoins(t, assets))
				assert.Nil(t, err)
			}
			f.ledger.Reset()

			at := tc.at
			if at.IsZero() {
				at = blockNow
			}
			ctx := f.ctx(at, tc.signers...)
			msg := &prop.AcceptPropositionMsg{PropositionId: propID}
			if tc.propID != nil {
				msg.PropositionId = tc.propID
			}

			if _, err := f.check(ctx, msg, tc.funds); !tc.wantCheckErr.Is(err) {
				t.Fatalf("check: want %v, got %+v", tc.wantCheckErr, err)
			}
			if _, err := f.deliver(ctx, msg, tc.funds); !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver: want %v, got %+v", tc.wantDeliverErr, err)
			}
			if tc.wantDeliverErr != nil {
				return
			}

			p := f.proposition(t, propID)
			assert.Equal(t, prop.StateAccepted, p.State)
			if !p.Contractor.Equals(bob.Address()) {
				t.Fatalf("unexpected contractor %s", p.Contractor)
			}
			// the expiry clock restarts at acceptance
			assert.Equal(t, pawn.AsUnixTime(blockNow).Add(time.Hour), p.Expiry)

			intents := f.ledger.Queued()
			if len(intents) != 2 {
				t.Fatalf("want 2 intents, got %d", len(intents))
			}
			// assets flow to the lender (the ask owner), premium to the
			// borrower (the contractor)
			if !intents[0].Destination.Equals(alice.Address()) {
				t.Fatalf("unexpected assets destination %s", intents[0].Destination)
			}
			assert.Equal(t, mustCoins(t, assets), intents[0].Amount)
			if !intents[1].Destination.Equals(bob.Address()) {
				t.Fatalf("unexpected premium destination %s", intents[1].Destination)
			}
			assert.Equal(t, mustCoins(t, premium), intents[1].Amount)
		})
	}
}

func TestRejectPropositionHandler(t *testing.T) {
	alice := pawntest.NewCondition()
	bob := pawntest.NewCondition()

	cases := map[string]struct {
		propType   prop.PropositionType
		accepted   bool
		signers    []pawn.Condition
		propID     []byte
		wantErr    *errors.Error
		wantRefund coin.Coins
	}{
		"happy path ask": {
			propType:   prop.PropositionAsk,
			signers:    []pawn.Condition{alice},
			wantRefund: mustCoins(t, deposit, premium),
		},
		"happy path bid": {
			propType:   prop.PropositionBid,
			signers:    []pawn.Condition{alice},
			wantRefund: mustCoins(t, assets),
		},
		"only the owner can reject": {
			propType: prop.PropositionAsk,
			signers:  []pawn.Condition{bob},
			wantErr:  errors.ErrUnauthorized,
		},
		"unknown proposition": {
			propType: prop.PropositionAsk,
			signers:  []pawn.Condition{alice},
			propID:   pawntest.SequenceID(42),
			wantErr:  errors.ErrNotFound,
		},
		"reject an accepted proposition": {
			propType: prop.PropositionAsk,
			accepted: true,
			signers:  []pawn.Condition{alice},
			wantErr:  prop.ErrWrongState,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture()

			var escrow coin.Coins
			if tc.propType == prop.PropositionAsk {
				escrow = mustCoins(t, deposit, premium)
			} else {
				escrow = mustCoins(t, assets)
			}
			res, err := f.deliver(f.ctx(blockNow, alice), createMsg(tc.propType), escrow)
			assert.Nil(t, err)
			propID := res.Data
			if tc.accepted {
				_, err := f.deliver(f.ctx(blockNow, bob), &prop.AcceptPropositionMsg{PropositionId: propID}, mustCoins(t, deposit, assets, premium))
				assert.Nil(t, err)
			}
			f.ledger.Reset()

			msg := &prop.RejectPropositionMsg{PropositionId: propID}
			if tc.propID != nil {
				msg.PropositionId = tc.propID
			}
			ctx := f.ctx(blockNow, tc.signers...)

			if _, err := f.check(ctx, msg, nil); !tc.wantErr.Is(err) {
				t.Fatalf("check: want %v, got %+v", tc.wantErr, err)
			}
			if _, err := f.deliver(ctx, msg, nil); !tc.wantErr.Is(err) {
				t.Fatalf("deliver: want %v, got %+v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				return
			}

			p := f.proposition(t, propID)
			assert.Equal(t, prop.StateRejected, p.State)

			intents := f.ledger.Queued()
			if len(intents) != 1 {
				t.Fatalf("want 1 intent, got %d", len(intents))
			}
			if !intents[0].Destination.Equals(alice.Address()) {
				t.Fatalf("refund must go to the owner, got %s", intents[0].Destination)
			}
			assert.Equal(t, tc.wantRefund, intents[0].Amount)
		})
	}
}

func TestClosePropositionHandler(t *testing.T) {
	alice := pawntest.NewCondition()
	bob := pawntest.NewCondition()

	// After acceptance at blockNow the expiry is blockNow plus the one
	// hour period.
	newExpiry := blockNow.Add(time.Hour)

	cases := map[string]struct {
		accepted    bool
		signers     []pawn.Condition
		funds       coin.Coins
		propID      []byte
		at          time.Time
		wantErr     *errors.Error
		wantIntents func(t *testing.T, intents []bank.Intent)
	}{
		"timely close by the lender": {
			accepted: true,
			signers:  []pawn.Condition{alice},
			funds:    mustCoins(t, assets),
			at:       blockNow.Add(30 * time.Minute),
			wantIntents: func(t *testing.T, intents []bank.Intent) {
				if len(intents) != 2 {
					t.Fatalf("want 2 intents, got %d", len(intents))
				}
				if !intents[0].Destination.Equals(bob.Address()) {
					t.Fatalf("assets must return to the borrower, got %s", intents[0].Destination)
				}
				assert.Equal(t, mustCoins(t, assets), intents[0].Amount)
				if !intents[1].Destination.Equals(alice.Address()) {
					t.Fatalf("deposit must return to the lender, got %s", intents[1].Destination)
				}
				assert.Equal(t, mustCoins(t, deposit), intents[1].Amount)
			},
		},
		"close exactly at the expiry is timely": {
			accepted: true,
			signers:  []pawn.Condition{alice},
			funds:    mustCoins(t, assets),
			at:       newExpiry,
			wantIntents: func(t *testing.T, intents []bank.Intent) {
				if len(intents) != 2 {
					t.Fatalf("want 2 intents, got %d", len(intents))
				}
			},
		},
		"expired close by the borrower": {
			accepted: true,
			signers:  []pawn.Condition{bob},
			at:       newExpiry.Add(time.Second),
			wantIntents: func(t *testing.T, intents []bank.Intent) {
				if len(intents) != 1 {
					t.Fatalf("want 1 intent, got %d", len(intents))
				}
				if !intents[0].Destination.Equals(bob.Address()) {
					t.Fatalf("deposit must go to the borrower, got %s", intents[0].Destination)
				}
				assert.Equal(t, mustCoins(t, deposit), intents[0].Amount)
			},
		},
		"timely close by the borrower": {
			accepted: true,
			signers:  []pawn.Condition{bob},
			funds:    mustCoins(t, assets),
			at:       blockNow.Add(30 * time.Minute),
			wantErr:  errors.ErrUnauthorized,
		},
		"expired close by the lender": {
			accepted: true,
			signers:  []pawn.Condition{alice},
			funds:    mustCoins(t, assets),
			at:       newExpiry.Add(time.Second),
			wantErr:  errors.ErrUnauthorized,
		},
		"timely close without funds": {
			accepted: true,
			signers:  []pawn.Condition{alice},
			at:       blockNow.Add(30 * time.Minute),
			wantErr:  prop.ErrInsufficientFunds,
		},
		"close an active proposition": {
			signers: []pawn.Condition{alice},
			funds:   mustCoins(t, assets),
			at:      blockNow,
			wantErr: prop.ErrWrongState,
		},
		"unknown proposition": {
			accepted: true,
			signers:  []pawn.Condition{alice},
			funds:    mustCoins(t, assets),
			propID:   pawntest.SequenceID(42),
			at:       blockNow,
			wantErr:  errors.ErrNotFound,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture()

			res, err := f.deliver(f.ctx(blockNow, alice), createMsg(prop.PropositionAsk), mustCoins(t, deposit, premium))
			assert.Nil(t, err)
			propID := res.Data
			if tc.accepted {
				_, err := f.deliver(f.ctx(blockNow, bob), &prop.AcceptPropositionMsg{PropositionId: propID}, mustCoins(t, assets))
				assert.Nil(t, err)
			}
			f.ledger.Reset()

			msg := &prop.ClosePropositionMsg{PropositionId: propID}
			if tc.propID != nil {
				msg.PropositionId = tc.propID
			}
			ctx := f.ctx(tc.at, tc.signers...)

			if _, err := f.check(ctx, msg, tc.funds); !tc.wantErr.Is(err) {
				t.Fatalf("check: want %v, got %+v", tc.wantErr, err)
			}
			if _, err := f.deliver(ctx, msg, tc.funds); !tc.wantErr.Is(err) {
				t.Fatalf("deliver: want %v, got %+v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				// failed calls must not modify the record
				p := f.proposition(t, propID)
				if tc.accepted {
					assert.Equal(t, prop.StateAccepted, p.State)
				} else {
					assert.Equal(t, prop.StateActive, p.State)
				}
				return
			}

			p := f.proposition(t, propID)
			assert.Equal(t, prop.StateClosed, p.State)
			tc.wantIntents(t, f.ledger.Queued())
		})
	}
}

// TestFundsConservation walks every terminal path of both orientations
// and verifies that all coins attached over the lifecycle leave custody
// again through queued transfers.
func TestFundsConservation(t *testing.T) {
	alice := pawntest.NewCondition()
	bob := pawntest.NewCondition()

	paths := map[string]struct {
		propType prop.PropositionType
		run      func(t *testing.T, f *fixture, propID []byte) coin.Coins
	}{
		"ask rejected": {
			propType: prop.PropositionAsk,
			run: func(t *testing.T, f *fixture, propID []byte) coin.Coins {
				_, err := f.deliver(f.ctx(blockNow, alice), &prop.RejectPropositionMsg{PropositionId: propID}, nil)
				assert.Nil(t, err)
				return nil
			},
		},
		"ask closed timely": {
			propType: prop.PropositionAsk,
			run: func(t *testing.T, f *fixture, propID []byte) coin.Coins {
				_, err := f.deliver(f.ctx(blockNow, bob), &prop.AcceptPropositionMsg{PropositionId: propID}, mustCoins(t, assets))
				assert.Nil(t, err)
				_, err = f.deliver(f.ctx(blockNow, alice), &prop.ClosePropositionMsg{PropositionId: propID}, mustCoins(t, assets))
				assert.Nil(t, err)
				return mustCoins(t, assets, assets)
			},
		},
		"ask closed expired": {
			propType: prop.PropositionAsk,
			run: func(t *testing.T, f *fixture, propID []byte) coin.Coins {
				_, err := f.deliver(f.ctx(blockNow, bob), &prop.AcceptPropositionMsg{PropositionId: propID}, mustCoins(t, assets))
				assert.Nil(t, err)
				late := blockNow.Add(time.Hour + time.Second)
				_, err = f.deliver(f.ctx(late, bob), &prop.ClosePropositionMsg{PropositionId: propID}, nil)
				assert.Nil(t, err)
				return mustCoins(t, assets)
			},
		},
		"bid rejected": {
			propType: prop.PropositionBid,
			run: func(t *testing.T, f *fixture, propID []byte) coin.Coins {
				_, err := f.deliver(f.ctx(blockNow, alice), &prop.RejectPropositionMsg{PropositionId: propID}, nil)
				assert.Nil(t, err)
				return nil
			},
		},
		"bid closed timely": {
			propType: prop.PropositionBid,
			run: func(t *testing.T, f *fixture, propID []byte) coin.Coins {
				_, err := f.deliver(f.ctx(blockNow, bob), &prop.AcceptPropositionMsg{PropositionId: propID}, mustCoins(t, deposit, premium))
				assert.Nil(t, err)
				// for a bid the contractor is the lender
				_, err = f.deliver(f.ctx(blockNow, bob), &prop.ClosePropositionMsg{PropositionId: propID}, mustCoins(t, assets))
				assert.Nil(t, err)
				return mustCoins(t, deposit, premium, assets)
			},
		},
		"bid closed expired": {
			propType: prop.PropositionBid,
			run: func(t *testing.T, f *fixture, propID []byte) coin.Coins {
				_, err := f.deliver(f.ctx(blockNow, bob), &prop.AcceptPropositionMsg{PropositionId: propID}, mustCoins(t, deposit, premium))
				assert.Nil(t, err)
				late := blockNow.Add(time.Hour + time.Second)
				// for a bid the owner is the borrower
				_, err = f.deliver(f.ctx(late, alice), &prop.ClosePropositionMsg{PropositionId: propID}, nil)
				assert.Nil(t, err)
				return mustCoins(t, deposit, premium)
			},
		},
	}

	for name, tc := range paths {
		t.Run(name, func(t *testing.T) {
			f := newFixture()

			var escrow coin.Coins
			if tc.propType == prop.PropositionAsk {
				escrow = mustCoins(t, deposit, premium)
			} else {
				escrow = mustCoins(t, assets)
			}
			res, err := f.deliver(f.ctx(blockNow, alice), createMsg(tc.propType), escrow)
			assert.Nil(t, err)

			attachedLater := tc.run(t, f, res.Data)
			attached, err := escrow.Combine(attachedLater)
			assert.Nil(t, err)

			var out coin.Coins
			for _, in := range f.ledger.Queued() {
				out, err = out.Combine(in.Amount)
				assert.Nil(t, err)
			}
			if !attached.Equals(out) {
				t.Fatalf("funds not conserved: attached %v, transferred out %v", attached, out)
			}
		})
	}
}
