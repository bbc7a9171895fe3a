// Package zxerr defines the structured error taxonomy shared by every
// core subsystem. Every error surfaced to a user carries exactly one Kind
// plus a human-readable message, per the console's propagation policy:
// verbs return synchronous errors before any side effect, or deliver
// asynchronous errors through their completion callback with the
// active-entity context attached.
package zxerr

import (
	"errors"
	"fmt"
)

// Kind is the closed taxonomy of error categories the core can produce.
type Kind int

const (
	// Unknown is never constructed directly; it is the zero value returned
	// by KindOf for errors that did not originate in this package.
	Unknown Kind = iota
	// Input means a user-provided string did not parse, or a noun/verb
	// combination or required argument was invalid.
	Input
	// NoConnection means the operation requires a connected agent and
	// there is none.
	NoConnection
	// NotRunning means the operation requires a running Process/Thread
	// that does not exist.
	NotRunning
	// WrongState means a Thread (or all threads) must be stopped and is not.
	WrongState
	// NotFound means an id refers to no live entity, or a location could
	// not be resolved to any address.
	NotFound
	// Ambiguous means a location or symbol resolved to multiple candidates
	// and the verb demanded a unique one.
	Ambiguous
	// Agent means the agent refused or returned a failure status.
	Agent
	// IO means the transport closed unexpectedly.
	IO
	// Symbol means the symbol database could not answer, or returned
	// malformed data.
	Symbol
	// ObjectDigestMismatch means a protocol-layer integrity check failed.
	ObjectDigestMismatch
	// FormatError means protocol-layer data failed to decode.
	FormatError
)

func (k Kind) String() string {
	switch k {
	case Input:
		return "Input"
	case NoConnection:
		return "NoConnection"
	case NotRunning:
		return "NotRunning"
	case WrongState:
		return "WrongState"
	case NotFound:
		return "NotFound"
	case Ambiguous:
		return "Ambiguous"
	case Agent:
		return "Agent"
	case IO:
		return "IO"
	case Symbol:
		return "Symbol"
	case ObjectDigestMismatch:
		return "ObjectDigestMismatch"
	case FormatError:
		return "FormatError"
	default:
		return "Unknown"
	}
}

// Error is the structured error type every core subsystem returns.
type Error struct {
	Kind    Kind
	Message string
	Context string // e.g. "Process 2" — prefixed onto the message when set.
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Context != "" {
		msg = e.Context + ": " + msg
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

func new(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// New constructs an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error { return new(kind, format, args...) }

// Wrap constructs an *Error of the given kind that wraps cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	e := new(kind, format, args...)
	e.Cause = cause
	return e
}

func InputErr(format string, args ...any) *Error        { return new(Input, format, args...) }
func NoConnectionErr(format string, args ...any) *Error  { return new(NoConnection, format, args...) }
func NotRunningErr(format string, args ...any) *Error    { return new(NotRunning, format, args...) }
func WrongStateErr(format string, args ...any) *Error    { return new(WrongState, format, args...) }
func NotFoundErr(format string, args ...any) *Error      { return new(NotFound, format, args...) }
func AmbiguousErr(format string, args ...any) *Error     { return new(Ambiguous, format, args...) }
func AgentErr(format string, args ...any) *Error         { return new(Agent, format, args...) }
func IOErr(format string, args ...any) *Error            { return new(IO, format, args...) }
func SymbolErr(format string, args ...any) *Error        { return new(Symbol, format, args...) }

// WithContext returns a copy of err with ctx attached as the active-entity
// context (e.g. "Process 2"), so formatting produces "Process 2: <message>".
// If err is not a *Error, it is wrapped as an Unknown-kind error.
func WithContext(err error, ctx string) error {
	if err == nil {
		return nil
	}
	var ze *Error
	if errors.As(err, &ze) {
		cp := *ze
		cp.Context = ctx
		return &cp
	}
	return &Error{Kind: Unknown, Message: err.Error(), Context: ctx}
}

// KindOf extracts the Kind of err, or Unknown if err did not originate
// from this package.
func KindOf(err error) Kind {
	var ze *Error
	if errors.As(err, &ze) {
		return ze.Kind
	}
	return Unknown
}

// Is reports whether err has the given Kind.
func Is(err error, kind Kind) bool { return KindOf(err) == kind }
