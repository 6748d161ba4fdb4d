package pawn

import (
	"testing"

	"github.com/qwerty-one/pawn/errors"
)

type mockMsg struct {
	path string
	err  error
}

var _ Msg = (*mockMsg)(nil)

func (m *mockMsg) Marshal() ([]byte, error) { return []byte(m.path), nil }
func (m *mockMsg) Unmarshal(b []byte) error { m.path = string(b); return nil }
func (m *mockMsg) Path() string             { return m.path }
func (m *mockMsg) Validate() error          { return m.err }

type mockTx struct {
	msg Msg
	err error
}

var _ Tx = (*mockTx)(nil)

func (tx *mockTx) GetMsg() (Msg, error)     { return tx.msg, tx.err }
func (tx *mockTx) Marshal() ([]byte, error) { return nil, nil }
func (tx *mockTx) Unmarshal([]byte) error   { return nil }

func TestLoadMsg(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tx := &mockTx{msg: &mockMsg{path: "test/msg"}}
		var dest mockMsg
		if err := LoadMsg(tx, &dest); err != nil {
			t.Fatalf("cannot load message: %+v", err)
		}
		if dest.path != "test/msg" {
			t.Fatalf("unexpected content: %q", dest.path)
		}
	})

	t.Run("message validation failure", func(t *testing.T) {
		tx := &mockTx{msg: &mockMsg{path: "test/msg", err: errors.ErrInput}}
		var dest mockMsg
		if err := LoadMsg(tx, &dest); !errors.ErrInput.Is(err) {
			t.Fatalf("want invalid input, got %+v", err)
		}
	})

	t.Run("transaction failure", func(t *testing.T) {
		tx := &mockTx{err: errors.ErrState}
		var dest mockMsg
		if err := LoadMsg(tx, &dest); !errors.ErrState.Is(err) {
			t.Fatalf("want invalid state, got %+v", err)
		}
	})

	t.Run("wrong destination type", func(t *testing.T) {
		tx := &mockTx{msg: &mockMsg{path: "test/msg"}}
		var dest otherMsg
		if err := LoadMsg(tx, &dest); !errors.ErrType.Is(err) {
			t.Fatalf("want invalid type, got %+v", err)
		}
	})
}

type otherMsg struct{ mockMsg }

func TestGetPath(t *testing.T) {
	if got := GetPath(&mockTx{msg: &mockMsg{path: "test/msg"}}); got != "test/msg" {
		t.Fatalf("unexpected path %q", got)
	}
	if got := GetPath(&mockTx{err: errors.ErrState}); got != "(missing)" {
		t.Fatalf("unexpected path %q", got)
	}
}
