package app

import (
	"fmt"
	"regexp"

	"github.com/qwerty-one/pawn"
	"github.com/qwerty-one/pawn/errors"
)

var isPath = regexp.MustCompile(`^[a-z0-9_/]+$`).MatchString

// Router maps message paths to handlers and dispatches
// transactions to whichever handler claimed their message.
type Router struct {
	handlers map[string]pawn.Handler
}

var _ pawn.Registry = (*Router)(nil)
var _ pawn.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]pawn.Handler),
	}
}

// Handle implements Registry interface.
// Panics on invalid path or duplicate registration.
func (r *Router) Handle(m pawn.Msg, h pawn.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.handlers[path]; ok {
		panic(fmt.Sprintf("re-registering route: %q", path))
	}
	r.handlers[path] = h
}

// handler returns the registered Handler for this message.
// Always returns a non-nil Handler.
func (r *Router) handler(m pawn.Msg) pawn.Handler {
	if h, ok := r.handlers[m.Path()]; ok {
		return h
	}
	return notFoundHandler(m.Path())
}

// Check dispatches to the proper handler based on the message path
func (r *Router) Check(ctx pawn.Context, store pawn.KVStore, tx pawn.Tx) (*pawn.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrState, "transaction without a message")
	}
	return r.handler(msg).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on the message path
func (r *Router) Deliver(ctx pawn.Context, store pawn.KVStore, tx pawn.Tx) (*pawn.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrState, "transaction without a message")
	}
	return r.handler(msg).Deliver(ctx, store, tx)
}

// notFoundHandler always returns ErrNotFound with the path it
// was created for
type notFoundHandler string

var _ pawn.Handler = notFoundHandler("")

func (h notFoundHandler) Check(ctx pawn.Context, store pawn.KVStore, tx pawn.Tx) (*pawn.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(h))
}

func (h notFoundHandler) Deliver(ctx pawn.Context, store pawn.KVStore, tx pawn.Tx) (*pawn.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(h))
}
