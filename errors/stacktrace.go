package errors

import (
	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the stack trace information attached to the deepest
// error of the chain. Nil is returned if no error of the chain carries a
// stack trace.
func stackTrace(err error) errors.StackTrace {
	var trace errors.StackTrace
	for {
		if st, ok := err.(stackTracer); ok {
			trace = st.StackTrace()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return trace
		}
	}
}
