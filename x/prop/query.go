package prop

import (
	"github.com/qwerty-one/pawn"
	"github.com/qwerty-one/pawn/orm"
)

const (
	// defaultPageSize is used when a list call does not request a limit.
	defaultPageSize = 10
	// maxPageSize caps how many propositions a single list call returns.
	maxPageSize = 30
)

// RegisterQuery will register this bucket as "/propositions"
func RegisterQuery(qr pawn.QueryRouter) {
	NewBucket().Register("propositions", qr)
}

// List returns up to limit propositions in descending id order. When
// beforeID is given, only propositions with a strictly smaller id are
// returned, which makes paging through the set a matter of passing the
// last seen id. A non positive limit requests the default page size.
func (b Bucket) List(db pawn.ReadOnlyKVStore, beforeID []byte, limit int) ([]orm.Object, error) {
	switch {
	case limit <= 0:
		limit = defaultPageSize
	case limit > maxPageSize:
		limit = maxPageSize
	}

	itr, err := b.DescendRange(db, beforeID)
	if err != nil {
		return nil, err
	}
	defer itr.Release()

	var res []orm.Object
	for len(res) < limit && itr.Valid() {
		key := itr.Key()
		// strip the bucket prefix, ids are the trailing 8 bytes
		obj, err := b.Parse(key[len(key)-8:], itr.Value())
		if err != nil {
			return nil, err
		}
		res = append(res, obj)
		if err := itr.Next(); err != nil {
			return nil, err
		}
	}
	return res, nil
}
