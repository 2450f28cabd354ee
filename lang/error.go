package lang

import (
	"log/slog"
	"strings"
)

// Errors reported while loading rule sources or generating output. Each is a
// sentinel usable with errors.Is; instances carry positional detail as slog
// attributes via With.
var (
	ErrNoSources    = NewError("no rule sources found")
	ErrReadSource   = NewError("cannot read rule source")
	ErrMissingName  = NewError("declaration is missing a variable name")
	ErrReservedLine = NewError("lines starting with ## are reserved")
	ErrBadNameStart = NewError("variable name must start with a letter")
	ErrBadNameChar  = NewError("character not allowed in a variable name")
	ErrTruncated    = NewError("rule block is missing a track line")
	ErrBadProperty  = NewError("unknown declaration property")
	ErrNoWeight     = NewError("weight property requires a value")
	ErrBadWeight    = NewError("weight must be a non-negative integer")
	ErrHugeWeight   = NewError("weight does not fit in 64 bits")
	ErrTotalWeight  = NewError("total weight of variable overflows")
	ErrEmptyRef     = NewError("reference is missing a variable name")
	ErrUndefined    = NewError("variable has not been defined")
	ErrNoRoot       = NewError("root variable is not defined")
	ErrEmptyVar     = NewError("variable has no alternatives")
	ErrSealed       = NewError("variable is sealed")
	ErrNotReady     = NewError("lexicon is not ready")
	ErrDepth        = NewError("recursion depth limit exceeded")
)

// Error is an immutable error value with structured context. Wrap and With
// return copies, leaving the receiver (typically a package sentinel) intact.
type Error struct {
	msg  string
	err  error
	attr []slog.Attr
}

func NewError(msg string) *Error { return &Error{msg: msg} }

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.msg)
	for _, a := range e.attr {
		sb.WriteString(" ")
		sb.WriteString(a.Key)
		sb.WriteString("=")
		sb.WriteString(a.Value.String())
	}
	if e.err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the same sentinel this error was derived
// from, comparing by message so that copies made with Wrap or With still
// match their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.msg == e.msg
}

// Wrap returns a copy of e recording err as its cause.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.err = err
	return &c
}

// With returns a copy of e carrying the given attributes in addition to any
// it already holds.
func (e *Error) With(attr ...slog.Attr) *Error {
	c := *e
	c.attr = append(append([]slog.Attr{}, e.attr...), attr...)
	return &c
}

func (e *Error) LogValue() slog.Value {
	attr := make([]slog.Attr, 0, len(e.attr)+2)
	attr = append(attr, slog.String("msg", e.msg))
	attr = append(attr, e.attr...)
	if e.err != nil {
		attr = append(attr, slog.String("cause", e.err.Error()))
	}
	return slog.GroupValue(attr...)
}
