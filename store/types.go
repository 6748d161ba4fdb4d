package store

import "github.com/qwerty-one/pawn"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = pawn.ReadOnlyKVStore
type SetDeleter = pawn.SetDeleter
type KVStore = pawn.KVStore
type Batch = pawn.Batch
type Iterator = pawn.Iterator
type CacheableKVStore = pawn.CacheableKVStore
type KVCacheWrap = pawn.KVCacheWrap
type Model = pawn.Model
