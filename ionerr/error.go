// Package ionerr defines the shared failure model for the ionum codec.
//
// Every fallible operation in varint, binfloat, decimal, and timestamp
// returns a tagged *Error rather than panicking across a package boundary;
// the one exception is decimal.WriteBinary, which has no error result and
// panics on a NaN or infinite value.
// Recovery from an Error is strictly local to the caller: there is no
// global error state and no process-wide mutable flag to inspect.
package ionerr

import "fmt"

// Kind identifies the category of failure a codec operation can report.
type Kind uint8

const (
	// UnexpectedEof means the byte source was exhausted before a value
	// could be fully decoded.
	UnexpectedEof Kind = iota
	// InvalidBinary means the bytes present do not form a valid encoding
	// for the type being decoded (e.g. a float body of length other than
	// 0 or 8).
	InvalidBinary
	// InvalidArg means a caller-supplied argument violates a precondition
	// (e.g. malformed decimal text).
	InvalidArg
	// InvalidTimestamp means the decoded or parsed fields do not form a
	// valid timestamp (bad calendar date, out-of-range offset, year
	// outside 0001-9999, ...).
	InvalidTimestamp
	// NumericOverflow means a value could not be represented without loss
	// of precision or exceeded the target integer width.
	NumericOverflow
	// BufferTooSmall means a sink could not accept all the bytes a write
	// produced.
	BufferTooSmall
	// NoMemory means an allocation (arena or heap) could not be satisfied.
	NoMemory
)

func (k Kind) String() string {
	switch k {
	case UnexpectedEof:
		return "UnexpectedEof"
	case InvalidBinary:
		return "InvalidBinary"
	case InvalidArg:
		return "InvalidArg"
	case InvalidTimestamp:
		return "InvalidTimestamp"
	case NumericOverflow:
		return "NumericOverflow"
	case BufferTooSmall:
		return "BufferTooSmall"
	case NoMemory:
		return "NoMemory"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Error is the tagged result returned by every fallible codec operation.
//
// Offset is the byte position that was current in the source or sink when
// the failure occurred; readers and writers that have no meaningful
// position (e.g. a pure in-memory conversion) leave it at -1.
type Error struct {
	Kind   Kind
	Offset int64
	msg    string
	err    error
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("ionum: %s at offset %d: %s", e.Kind, e.Offset, e.msg)
	}
	return fmt.Sprintf("ionum: %s: %s", e.Kind, e.msg)
}

// Unwrap exposes a wrapped cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error with the same Kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

// New constructs an Error of the given kind with no known byte offset.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: -1, msg: fmt.Sprintf(format, args...)}
}

// At constructs an Error of the given kind at a known byte offset.
func At(kind Kind, offset int64, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: offset, msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to an Error constructed with New or At.
func (e *Error) Wrap(cause error) *Error {
	e.err = cause
	return e
}

// UnexpectedEOF builds an UnexpectedEof error at the given offset.
func UnexpectedEOF(offset int64) *Error {
	return At(UnexpectedEof, offset, "unexpected end of input")
}

// Overflowf builds a NumericOverflow error.
func Overflowf(format string, args ...any) *Error {
	return New(NumericOverflow, format, args...)
}

// InvalidBinaryf builds an InvalidBinary error at the given offset.
func InvalidBinaryf(offset int64, format string, args ...any) *Error {
	return At(InvalidBinary, offset, format, args...)
}

// InvalidTimestampf builds an InvalidTimestamp error at the given offset.
func InvalidTimestampf(offset int64, format string, args ...any) *Error {
	return At(InvalidTimestamp, offset, format, args...)
}

// InvalidArgf builds an InvalidArg error with no offset (argument checks
// happen before any byte is consumed or produced).
func InvalidArgf(format string, args ...any) *Error {
	return New(InvalidArg, format, args...)
}

// BufferTooSmallf builds a BufferTooSmall error for a short write.
func BufferTooSmallf(offset int64, format string, args ...any) *Error {
	return At(BufferTooSmall, offset, format, args...)
}
