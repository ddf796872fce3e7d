package registry

import "strconv"

// ErrKind classifies store errors so callers can branch on intent rather
// than on message text.
type ErrKind int

const (
	KindNotFound         ErrKind = iota // missing key or value
	KindPermissionDenied                // access rights insufficient
	KindInvalid                         // malformed path, closed handle, bad argument
	KindUnknown                         // unclassified store failure
)

func (k ErrKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindInvalid:
		return "invalid argument"
	default:
		return "registry error"
	}
}

// Error is a typed store error carrying the key path or value name
// involved and an optional underlying cause.
type Error struct {
	Kind ErrKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := "registry: " + e.Kind.String()
	if e.Path != "" {
		msg += ": " + strconv.Quote(e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match against the kind sentinels below regardless of
// path and cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Path != "" && t.Path != e.Path {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is matching.
var (
	// ErrNotFound indicates a missing key or value.
	ErrNotFound = &Error{Kind: KindNotFound}
	// ErrPermissionDenied indicates the handle lacks the required access rights.
	ErrPermissionDenied = &Error{Kind: KindPermissionDenied}
	// ErrInvalid indicates a malformed path, a closed handle or a bad argument.
	ErrInvalid = &Error{Kind: KindInvalid}
	// ErrUnknown indicates an unclassified store failure.
	ErrUnknown = &Error{Kind: KindUnknown}
)
