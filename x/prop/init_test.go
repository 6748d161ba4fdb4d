package prop_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/qwerty-one/pawn"
	"github.com/qwerty-one/pawn/pawntest"
	"github.com/qwerty-one/pawn/pawntest/assert"
	"github.com/qwerty-one/pawn/store"
	"github.com/qwerty-one/pawn/x/prop"
)

func TestFromGenesis(t *testing.T) {
	owner := pawntest.NewCondition().Address()

	genesis := fmt.Sprintf(`{
		"prop": [
			{
				"owner": %q,
				"type": "ask",
				"deposit": {"whole": 100, "ticker": "IOV"},
				"assets": {"whole": 100, "ticker": "BTC"},
				"premium": {"whole": 5, "ticker": "ETH"},
				"period": "1h",
				"expiry": 1500003600
			},
			{
				"owner": %q,
				"type": "bid",
				"deposit": {"whole": 1, "ticker": "IOV"},
				"assets": {"whole": 2, "ticker": "BTC"},
				"premium": {"whole": 3, "ticker": "ETH"},
				"period": 600,
				"expiry": 1500000600
			}
		]
	}`, owner, owner)

	var opts pawn.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	var ini prop.Initializer
	assert.Nil(t, ini.FromGenesis(opts, db))

	bucket := prop.NewBucket()
	latest, err := bucket.Latest(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), latest)

	obj, err := bucket.Get(db, pawntest.SequenceID(1))
	assert.Nil(t, err)
	p := prop.AsProposition(obj)
	assert.Equal(t, prop.PropositionAsk, p.Type)
	assert.Equal(t, prop.StateActive, p.State)
	if !p.Owner.Equals(owner) {
		t.Fatalf("unexpected owner %s", p.Owner)
	}
	assert.Equal(t, int64(100), p.Deposit.Whole)
	assert.Equal(t, pawn.UnixTime(1500003600), p.Expiry)

	obj, err = bucket.Get(db, pawntest.SequenceID(2))
	assert.Nil(t, err)
	assert.Equal(t, prop.PropositionBid, prop.AsProposition(obj).Type)
}

func TestFromGenesisEmpty(t *testing.T) {
	db := store.MemStore()
	var ini prop.Initializer
	assert.Nil(t, ini.FromGenesis(pawn.Options{}, db))

	latest, err := prop.NewBucket().Latest(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), latest)
}

func TestFromGenesisRejectsUnknownType(t *testing.T) {
	owner := pawntest.NewCondition().Address()
	genesis := fmt.Sprintf(`{
		"prop": [
			{
				"owner": %q,
				"type": "loan",
				"deposit": {"whole": 100, "ticker": "IOV"},
				"assets": {"whole": 100, "ticker": "BTC"},
				"premium": {"whole": 5, "ticker": "ETH"},
				"period": "1h",
				"expiry": 1500003600
			}
		]
	}`, owner)

	var opts pawn.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	var ini prop.Initializer
	if err := ini.FromGenesis(opts, store.MemStore()); err == nil {
		t.Fatal("unknown proposition type must be rejected")
	}
}
