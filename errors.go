// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pio

import "errors"

// ErrorKind is a closed enumeration of I/O error categories.
//
// The set is deliberately fixed: contract-level logic in this package
// switches on kinds and assumes no open extensibility. Endpoints that need
// a category outside this list use KindOther with a message.
type ErrorKind uint8

const (
	// KindNotFound means an entity was not found.
	KindNotFound ErrorKind = iota

	// KindPermissionDenied means the operation lacked the necessary
	// privileges to complete.
	KindPermissionDenied

	// KindConnectionReset means the connection was reset by the peer.
	KindConnectionReset

	// KindBrokenPipe means the operation failed because a pipe was closed.
	KindBrokenPipe

	// KindAlreadyExists means an entity already exists.
	KindAlreadyExists

	// KindInvalidInput means a parameter was incorrect, e.g. seeking to a
	// negative position.
	KindInvalidInput

	// KindInvalidData means the operation parameters were valid but the
	// input data was malformed, e.g. a byte stream that is not valid UTF-8
	// where text was required.
	KindInvalidData

	// KindTimedOut means the operation's timeout expired.
	KindTimedOut

	// KindWriteZero means an operation could not be completed because a
	// write returned 0 for a non-empty buffer. It is synthesized by
	// WriteAll-style loops, never by an endpoint primitive.
	KindWriteZero

	// KindInterrupted means the operation was interrupted and can be
	// retried. It is the one transient kind: derived operations catch it
	// internally and retry the same primitive call.
	KindInterrupted

	// KindUnexpectedEOF means end-of-stream was reached before an
	// operation could deliver what it promised. It is synthesized by
	// ReadExact-style loops, never by an endpoint primitive.
	KindUnexpectedEOF

	// KindOutOfMemory means the operation failed to allocate enough memory.
	KindOutOfMemory

	// KindUnsupported means the operation can never succeed on this
	// endpoint, e.g. seeking a non-seekable source.
	KindUnsupported

	// KindOther is any error that does not fall under another kind.
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "entity not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindConnectionReset:
		return "connection reset"
	case KindBrokenPipe:
		return "broken pipe"
	case KindAlreadyExists:
		return "entity already exists"
	case KindInvalidInput:
		return "invalid input parameter"
	case KindInvalidData:
		return "invalid data"
	case KindTimedOut:
		return "timed out"
	case KindWriteZero:
		return "write zero"
	case KindInterrupted:
		return "operation interrupted"
	case KindUnexpectedEOF:
		return "unexpected end of file"
	case KindOutOfMemory:
		return "out of memory"
	case KindUnsupported:
		return "unsupported"
	default:
		return "other error"
	}
}

// Error is the error value for all operations in this package: one
// enumerated kind plus an optional human-readable message. It carries no
// further structured payload and is immutable once constructed.
type Error struct {
	kind ErrorKind
	msg  string
}

// NewError returns an Error of the given kind with an optional message.
// An empty msg falls back to the kind's description.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Kind returns the error's category.
func (e *Error) Kind() ErrorKind { return e.kind }

func (e *Error) Error() string {
	if e.msg == "" {
		return e.kind.String()
	}
	return e.msg
}

// Prebuilt errors for the conditions synthesized by derived operations.
var (
	errUnexpectedEOF = NewError(KindUnexpectedEOF, "failed to fill whole buffer")
	errWriteZero     = NewError(KindWriteZero, "failed to write whole buffer")
	errNegativeSeek  = NewError(KindInvalidInput, "seek to a negative position")
)

// Kind classifies err: it returns the kind of the first *Error in err's
// chain, or KindOther for nil-kindless foreign errors. A nil err maps to
// KindOther as well; callers should test err == nil first.
func Kind(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindOther
}

// IsInterrupted reports whether err carries the transient interrupted
// signal. Derived operations use this to decide whether to retry the same
// primitive call; it returns true for wrapped forms via errors.As.
func IsInterrupted(err error) bool { return err != nil && Kind(err) == KindInterrupted }

// IsUnexpectedEOF reports whether err is a synthesized premature
// end-of-stream condition.
func IsUnexpectedEOF(err error) bool { return err != nil && Kind(err) == KindUnexpectedEOF }

// IsWriteZero reports whether err is a synthesized zero-progress write
// condition.
func IsWriteZero(err error) bool { return err != nil && Kind(err) == KindWriteZero }
