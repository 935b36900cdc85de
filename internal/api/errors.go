package api

import "errors"

// Kind classifies a normalized gateway failure. Every failing operation
// returns exactly one *Error, so callers switch on Kind instead of probing
// response internals.
type Kind int

const (
	// KindTransport means no usable response arrived: connection failure,
	// timeout, or an unreadable body.
	KindTransport Kind = iota + 1

	// KindAuth means the backend rejected the request as unauthenticated or
	// forbidden. The client does not detect token expiry on its own; this is
	// the backend's verdict.
	KindAuth

	// KindAPI is an application-level failure reported by the backend.
	KindAPI
)

// Error is the single failure shape every gateway operation produces.
// Message is always human-readable: a server-supplied detail when one was
// sent, otherwise the operation's fixed fallback.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the underlying transport or decode error, if any.
func (e *Error) Unwrap() error { return e.cause }

// Is lets errors.Is match against sentinel *Error values by kind and message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Message == e.Message
}

// ErrNoBusiness is returned by BusinessProfile when the account has no
// business attached. The backend models the profile as a list; an empty list
// is surfaced explicitly rather than dereferenced.
var ErrNoBusiness = &Error{Kind: KindAPI, Message: "no business associated with this account"}

func transportErr(message string, cause error) *Error {
	return &Error{Kind: KindTransport, Message: message, cause: cause}
}

// IsKind reports whether err is a gateway error of the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == k
}
