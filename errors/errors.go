package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConstruct Phase = "construct" // building a sequence from values
	PhaseTransform Phase = "transform" // append, prepend, pop, split, concat
	PhaseRelocate  Phase = "relocate"  // moving a sequence in or out of linear memory
	PhaseLayout    Phase = "layout"    // size and alignment calculation
	PhaseProve     Phase = "prove"     // establishing a length relation
)

// Kind categorizes the error
type Kind string

const (
	KindLengthMismatch Kind = "length_mismatch"
	KindConsumed       Kind = "consumed"
	KindNotInitialized Kind = "not_initialized"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindMisaligned     Kind = "misaligned"
	KindOverflow       Kind = "overflow"
	KindDoubleWrite    Kind = "double_write"
	KindUnwritten      Kind = "unwritten"
	KindInvalidLength  Kind = "invalid_length"
)

// Error is the structured error type used throughout the module.
// Contract violations are raised as panics carrying an *Error.
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Op       string
	Detail   string
	Expected int
	Actual   int
	lengths  bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}

	if e.lengths {
		b.WriteString(": expected length ")
		b.WriteString(strconv.Itoa(e.Expected))
		b.WriteString(", got ")
		b.WriteString(strconv.Itoa(e.Actual))
	}

	if e.Detail != "" {
		if e.lengths {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// HasLengths reports whether Expected and Actual were set.
func (e *Error) HasLengths() bool {
	return e.lengths
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Op sets the operation name
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

// Lengths records the expected and actual lengths
func (b *Builder) Lengths(expected, actual int) *Builder {
	b.err.Expected = expected
	b.err.Actual = actual
	b.err.lengths = true
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// LengthMismatch creates an error for a length relation that does not hold
func LengthMismatch(phase Phase, op string, expected, actual int) *Error {
	return New(phase, KindLengthMismatch).Op(op).Lengths(expected, actual).Build()
}

// InvalidLength creates an error for a natural that reports a negative length
func InvalidLength(typeName string, length int) *Error {
	return &Error{
		Phase:  PhaseProve,
		Kind:   KindInvalidLength,
		Detail: fmt.Sprintf("%s reports length %d", typeName, length),
		Value:  length,
	}
}

// Consumed creates an error for use of a sequence after it was moved out
func Consumed(op, consumedBy string) *Error {
	return &Error{
		Phase:  PhaseTransform,
		Kind:   KindConsumed,
		Op:     op,
		Detail: fmt.Sprintf("sequence already consumed by %s", consumedBy),
	}
}

// NotInitialized creates an error for use of a zero-value sequence
func NotInitialized(op string) *Error {
	return &Error{
		Phase:  PhaseTransform,
		Kind:   KindNotInitialized,
		Op:     op,
		Detail: "zero-value sequence",
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, op string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Op:     op,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// RegionOutOfBounds creates an error for a byte range outside linear memory
func RegionOutOfBounds(op string, offset, size, memSize uint32) *Error {
	return &Error{
		Phase:  PhaseRelocate,
		Kind:   KindOutOfBounds,
		Op:     op,
		Detail: fmt.Sprintf("range [%d, %d) exceeds memory size %d", offset, uint64(offset)+uint64(size), memSize),
		Value:  offset,
	}
}

// Misaligned creates an error for an offset not aligned to the element alignment
func Misaligned(op string, offset, align uint32) *Error {
	return &Error{
		Phase:  PhaseRelocate,
		Kind:   KindMisaligned,
		Op:     op,
		Detail: fmt.Sprintf("offset %d is not aligned to %d", offset, align),
		Value:  offset,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, op string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Op:     op,
		Detail: detail,
	}
}

// DoubleWrite creates an error for a buffer slot written more than once
func DoubleWrite(op string, index int) *Error {
	return &Error{
		Phase:  PhaseTransform,
		Kind:   KindDoubleWrite,
		Op:     op,
		Detail: fmt.Sprintf("slot %d written twice", index),
		Value:  index,
	}
}

// Unwritten creates an error for a buffer finished before every slot was written
func Unwritten(op string, written, length int) *Error {
	return New(PhaseTransform, KindUnwritten).
		Op(op).
		Lengths(length, written).
		Detail("buffer finished with unwritten slots").
		Build()
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Recover converts a panic carrying an *Error into a returned error.
// Other panics are re-raised. Use as: defer errors.Recover(&err).
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(*Error); ok {
		*err = e
		return
	}
	panic(r)
}
