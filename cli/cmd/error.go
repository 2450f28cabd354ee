package cmd

import (
	"log/slog"
	"strings"
)

// Errors reported by CLI commands.
var (
	ErrLoadRules    = NewError("load rules")
	ErrNoSuchName   = NewError("no such variable")
	ErrBadFilter    = NewError("compile filter expression")
	ErrFilterValue  = NewError("filter expression did not yield a boolean")
	ErrExhausted    = NewError("no pair produced within the attempt budget")
	ErrWriteOutput  = NewError("write output")
	ErrWriteRules   = NewError("write rules file")
	ErrWriteConfig  = NewError("write configuration file")
	ErrTargetExists = NewError("target exists (use --force to overwrite)")
)

// Error is a command error carrying attributes for structured logging.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

func NewError(msg string) *Error { return &Error{msg: msg} }

func (e *Error) Error() string {
	part := make([]string, 0, 2)
	if e.msg != "" {
		part = append(part, e.msg)
	}
	if e.err != nil {
		part = append(part, e.err.Error())
	}
	return strings.Join(part, ": ")
}

func (e *Error) Unwrap() error { return e.err }

// Is matches derived copies against their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.msg == e.msg
}

// Wrap returns a copy of e recording err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err, attrs: e.attrs}
}

// With returns a copy of e carrying additional attributes.
func (e *Error) With(attrs ...slog.Attr) *Error {
	all := make([]slog.Attr, 0, len(e.attrs)+len(attrs))
	all = append(all, e.attrs...)
	all = append(all, attrs...)
	return &Error{msg: e.msg, err: e.err, attrs: all}
}

func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)
	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}
	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}
	return slog.GroupValue(append(attrs, e.attrs...)...)
}
