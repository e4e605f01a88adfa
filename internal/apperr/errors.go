package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates that a resource is in a state that forbids the operation.
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrForbidden indicates that the caller may not access the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnavailable indicates that a collaborator could not be reached.
var ErrUnavailable = errors.New("service unavailable")

// ErrUpstream indicates that a collaborator call failed mid-operation.
var ErrUpstream = errors.New("upstream failure")

// ErrStale indicates a write against an outdated revision.
var ErrStale = errors.New("stale write")

// Reason is a named failure with a public message and a kind sentinel.
// errors.Is(r, r.Kind()) holds for every Reason.
type Reason struct {
	kind error
	msg  string
}

// New returns a Reason of the given kind.
func New(kind error, msg string) *Reason {
	return &Reason{kind: kind, msg: msg}
}

func (r *Reason) Error() string { return r.msg }

// Unwrap exposes the kind sentinel.
func (r *Reason) Unwrap() error { return r.kind }

// Kind returns the kind sentinel.
func (r *Reason) Kind() error { return r.kind }

// Message returns the public message.
func (r *Reason) Message() string { return r.msg }

// Wrap joins a reason with its cause so both remain visible to errors.Is.
func Wrap(reason *Reason, cause error) error {
	if cause == nil {
		return reason
	}
	return &wrapped{reason: reason, cause: cause}
}

type wrapped struct {
	reason *Reason
	cause  error
}

func (w *wrapped) Error() string { return w.reason.msg + ": " + w.cause.Error() }

func (w *wrapped) Unwrap() []error { return []error{w.reason, w.cause} }

// MessageOf returns the public message of the first Reason in err's chain.
func MessageOf(err error) (string, bool) {
	var r *Reason
	if errors.As(err, &r) {
		return r.msg, true
	}
	return "", false
}
