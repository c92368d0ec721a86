package whois

import (
	"domainchecker/pkg/serrors"
	"errors"
	"fmt"
)

// FailureKind is the closed set of reasons a WHOIS lookup can fail with.
type FailureKind uint8

const (
	// FailureUnknown covers every failure that does not fit another kind.
	FailureUnknown FailureKind = iota
	// FailureTimeout means the server did not answer within the deadline.
	FailureTimeout
	// FailureNotFound means the server explicitly reported that no registration matches.
	FailureNotFound
	// FailureRateLimited means the server refused the query because of query limits.
	FailureRateLimited
	// FailureNetwork means the connection could not be established or broke.
	FailureNetwork
)

// String implements fmt.Stringer.
func (k FailureKind) String() string {
	switch k {
	case FailureTimeout:
		return "timeout"
	case FailureNotFound:
		return "not_found"
	case FailureRateLimited:
		return "rate_limited"
	case FailureNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Transient reports whether retrying the same lookup later may succeed.
func (k FailureKind) Transient() bool {
	return k == FailureTimeout || k == FailureRateLimited || k == FailureNetwork
}

// serrorsKind maps the failure to the application wide semantic error kind.
func (k FailureKind) serrorsKind() serrors.Kind {
	switch k {
	case FailureTimeout:
		return serrors.ErrTimeout
	case FailureNotFound:
		return serrors.ErrNotFound
	case FailureRateLimited:
		return serrors.ErrRateLimited
	case FailureNetwork:
		return serrors.ErrNetwork
	default:
		return serrors.ErrInternal
	}
}

// LookupError is returned by Client implementations for every failed lookup.
// errors.Is matches both the wrapped cause and the serrors kind of the failure,
// so callers can test for serrors.ErrTimeout without knowing this type.
type LookupError struct {
	Kind   FailureKind
	FQDN   string
	Server string
	Err    error
}

// NewLookupError builds a LookupError for fqdn.
func NewLookupError(kind FailureKind, fqdn, server string, err error) *LookupError {
	return &LookupError{Kind: kind, FQDN: fqdn, Server: server, Err: err}
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	msg := fmt.Sprintf("whois lookup %s for %s", e.Kind, e.FQDN)
	if e.Server != "" {
		msg += " at " + e.Server
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the underlying cause.
func (e *LookupError) Unwrap() error { return e.Err }

// Is matches the serrors kind corresponding to e.Kind.
func (e *LookupError) Is(target error) bool {
	k, ok := target.(serrors.Kind)

	return ok && k == e.Kind.serrorsKind()
}

// FailureOf extracts the failure kind from err. The second return value is false
// when err is not a *LookupError.
func FailureOf(err error) (FailureKind, bool) {
	var lerr *LookupError
	if errors.As(err, &lerr) {
		return lerr.Kind, true
	}

	return FailureUnknown, false
}
