package errors

import (
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// When a single error instance is passed (or all but one are nil), it is
// returned directly to avoid any wrapping overhead. Appending two multi
// errors flattens them into a single collection.
func Append(errs ...error) error {
	var res multiError
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if m, ok := e.(multiError); ok {
			res = append(res, m...)
		} else {
			res = append(res, e)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// multiError represents a group of errors. It is usually the result of
// validation of a structure where more than one field can be invalid.
type multiError []error

var _ error = (multiError)(nil)
var _ unpacker = (multiError)(nil)
var _ coder = (multiError)(nil)

func (e multiError) Error() string {
	switch len(e) {
	case 0:
		return "<nil>"
	case 1:
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unpack implements the unpacker interface and allows to inspect each member
// of this collection separately.
func (e multiError) Unpack() []error {
	return e
}

// ABCICode returns the code of the first member, consistent with the
// fail-fast approach of the handlers.
func (e multiError) ABCICode() uint32 {
	if len(e) == 0 {
		return SuccessABCICode
	}
	return abciCode(e[0])
}
