package orm

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/qwerty-one/pawn/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	cases := []struct {
		bucket     string
		name       string
		increments int64
	}{
		0: {"pawn", "id", 22},
		1: {"pawn", "other", 11},
		2: {"cash", "id", 77},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			db := store.MemStore()
			s := NewSequence(tc.bucket, tc.name)

			latest, orig, err := s.Latest(db)
			require.NoError(t, err)
			assert.Equal(t, int64(0), latest)
			assert.Nil(t, orig)

			var val []byte
			for i := int64(0); i < tc.increments; i++ {
				val, err = s.NextVal(db)
				require.NoError(t, err)
			}
			assert.Equal(t, tc.increments, DecodeSequence(val))

			// raw bytes must sort after the original value so the
			// sequence can be used to build ordered keys
			latest, last, err := s.Latest(db)
			require.NoError(t, err)
			assert.Equal(t, tc.increments, latest)
			assert.Equal(t, 1, bytes.Compare(last, orig))
		})
	}
}

func TestSequenceIndependence(t *testing.T) {
	db := store.MemStore()

	s := NewSequence("pawn", "id")
	other := NewSequence("pawn", "other")

	for i := 0; i < 5; i++ {
		_, err := s.NextVal(db)
		require.NoError(t, err)
	}

	n, err := other.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestEncodeDecodeSequence(t *testing.T) {
	assert.Equal(t, int64(0), DecodeSequence(nil))
	for _, val := range []int64{0, 1, 255, 256, 1 << 40} {
		assert.Equal(t, val, DecodeSequence(EncodeSequence(val)))
	}
}
