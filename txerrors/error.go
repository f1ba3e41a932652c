package txerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error is the transition's tagged outcome: a failure Kind plus the
// underlying cause, wrapped with github.com/pkg/errors so the original
// stack trace survives up to the caller.
type Error struct {
	Kind    Kind
	cause   error
	Context map[string]interface{}
}

// New builds an *Error of the given Kind from a format string.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, cause: errors.Errorf(format, args...)}
}

// Wrap attaches a Kind to an existing error, preserving its stack trace.
func Wrap(kind Kind, cause error, msg string) *Error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, cause: errors.Wrap(cause, msg)}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(kind Kind, cause error, format string, args ...interface{}) *Error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, cause: errors.Wrapf(cause, format, args...)}
}

// WithContext attaches structured key/value pairs for log correlation and
// returns the same *Error for chaining.
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.cause)
}

// Unwrap exposes the wrapped cause so errors.Is/errors.As keep working
// against whatever sentinel the cause itself carries.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is lets errors.Is(err, txerrors.Of(SomeKind)) match any *Error sharing
// that Kind, regardless of the wrapped cause.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind && other.cause == nil
}

// Of builds a bare sentinel of the given Kind, suitable only as an
// errors.Is comparison target (its cause is always nil).
func Of(kind Kind) *Error {
	return &Error{Kind: kind}
}

// KindOf extracts the Kind from err if it (or something it wraps) is an
// *Error, and Unknown otherwise.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return Unknown
}

// Bug is a panic payload for broken-internal-invariant conditions that a
// well-formed state makes unreachable (design note §9): accessors panic
// with this instead of returning an error.
type Bug struct {
	Kind   Kind
	Reason string
}

func (b Bug) Error() string {
	return fmt.Sprintf("bug: %s: %s", b.Kind, b.Reason)
}

// PanicBug panics with a Bug built from the given Kind and reason. Used by
// accessors whose preconditions a correctly-constructed BeaconState
// guarantees, per spec §7's accessor-panics-on-broken-invariant policy
// (e.g. compute_proposer_index's empty-index-set case).
func PanicBug(kind Kind, format string, args ...interface{}) {
	panic(Bug{Kind: kind, Reason: fmt.Sprintf(format, args...)})
}
