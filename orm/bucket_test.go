package orm

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/qwerty-one/pawn/errors"
	"github.com/qwerty-one/pawn/store"
)

// counter is a minimal CloneableData to test the bucket machinery
type counter struct {
	Count int64
}

var _ CloneableData = (*counter)(nil)

func (c *counter) Marshal() ([]byte, error) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(c.Count))
	return bz, nil
}

func (c *counter) Unmarshal(bz []byte) error {
	if len(bz) != 8 {
		return errors.Wrap(errors.ErrInput, "expected 8 bytes")
	}
	c.Count = int64(binary.BigEndian.Uint64(bz))
	return nil
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative count")
	}
	return nil
}

func (c *counter) Copy() CloneableData {
	return &counter{Count: c.Count}
}

func newCounterBucket() Bucket {
	return NewBucket("cnts", NewSimpleObj(nil, new(counter)))
}

func TestBucketSaveGet(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	key := []byte("accountx")

	// empty read returns nil without error
	got, err := b.Get(db, key)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if got != nil {
		t.Fatalf("expected no object, got %v", got)
	}

	obj := NewSimpleObj(key, &counter{Count: 55})
	if err := b.Save(db, obj); err != nil {
		t.Fatalf("cannot save: %+v", err)
	}

	got, err = b.Get(db, key)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if got == nil {
		t.Fatal("expected object")
	}
	if !bytes.Equal(got.Key(), key) {
		t.Fatalf("unexpected key: %X", got.Key())
	}
	if c := got.Value().(*counter).Count; c != 55 {
		t.Fatalf("unexpected count: %d", c)
	}

	// a second bucket with a different prefix cannot see it
	other := NewBucket("other", NewSimpleObj(nil, new(counter)))
	got, err = other.Get(db, key)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if got != nil {
		t.Fatal("value must not leak across buckets")
	}

	// and we can delete it
	if err := b.Delete(db, key); err != nil {
		t.Fatalf("cannot delete: %+v", err)
	}
	got, err = b.Get(db, key)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if got != nil {
		t.Fatal("expected object gone after delete")
	}
}

func TestBucketRejectsInvalid(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	obj := NewSimpleObj([]byte("bad"), &counter{Count: -5})
	if err := b.Save(db, obj); !errors.ErrState.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}

	obj = NewSimpleObj(nil, &counter{Count: 1})
	if err := b.Save(db, obj); !errors.ErrEmpty.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}

func TestBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	keys := [][]byte{[]byte("aaa"), []byte("bbb"), []byte("ccc")}
	for i, key := range keys {
		obj := NewSimpleObj(key, &counter{Count: int64(i + 1)})
		if err := b.Save(db, obj); err != nil {
			t.Fatalf("cannot save: %+v", err)
		}
	}

	t.Run("key query", func(t *testing.T) {
		models, err := b.Query(db, "", []byte("bbb"))
		if err != nil {
			t.Fatalf("cannot query: %+v", err)
		}
		if len(models) != 1 {
			t.Fatalf("unexpected result count: %d", len(models))
		}
	})

	t.Run("key query miss", func(t *testing.T) {
		models, err := b.Query(db, "", []byte("zzz"))
		if err != nil {
			t.Fatalf("cannot query: %+v", err)
		}
		if len(models) != 0 {
			t.Fatalf("unexpected result count: %d", len(models))
		}
	})

	t.Run("prefix query", func(t *testing.T) {
		models, err := b.Query(db, "prefix", nil)
		if err != nil {
			t.Fatalf("cannot query: %+v", err)
		}
		if len(models) != 3 {
			t.Fatalf("unexpected result count: %d", len(models))
		}
	})

	t.Run("unknown mod", func(t *testing.T) {
		if _, err := b.Query(db, "magic", nil); !errors.ErrInput.Is(err) {
			t.Fatalf("unexpected error: %+v", err)
		}
	})
}
