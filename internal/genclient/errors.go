package genclient

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a generation failure so callers can decide whether to
// retry, surface a policy message, or fail the whole run.
type Kind string

const (
	KindContentPolicyBlocked  Kind = "content_policy_blocked"
	KindGenerationInterrupted Kind = "generation_interrupted"
	KindNoImageProduced       Kind = "no_image_produced"
	KindQuotaExceeded         Kind = "quota_exceeded"
	KindServiceUnavailable    Kind = "service_unavailable"
	KindMalformedInput        Kind = "malformed_input"
	KindBackendProxy          Kind = "backend_proxy_error"
)

// Error is the typed failure returned by all client operations.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.cause }

// Retryable reports whether another attempt could plausibly succeed.
// Only quota pressure and upstream overload qualify.
func (e *Error) Retryable() bool {
	return e.Kind == KindQuotaExceeded || e.Kind == KindServiceUnavailable
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// AsError extracts a typed *Error from err, if any.
func AsError(err error) (*Error, bool) {
	var ge *Error
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// IsKind reports whether err carries the given failure kind.
func IsKind(err error, kind Kind) bool {
	ge, ok := AsError(err)
	return ok && ge.Kind == kind
}

// classifyMessage maps a raw upstream error string onto a failure kind
// by the markers the proxy and the model service are known to emit.
func classifyMessage(status int, msg string) Kind {
	switch {
	case status == 429,
		strings.Contains(msg, "429"),
		strings.Contains(msg, "RESOURCE_EXHAUSTED"),
		strings.Contains(msg, "QUOTA"),
		strings.Contains(strings.ToLower(msg), "quota"):
		return KindQuotaExceeded
	case status == 503,
		strings.Contains(msg, "503"),
		strings.Contains(strings.ToLower(msg), "overloaded"):
		return KindServiceUnavailable
	}
	return KindBackendProxy
}

// truncateMessage keeps operator-facing proxy errors readable.
func truncateMessage(msg string) string {
	msg = strings.TrimSpace(msg)
	if len(msg) > 100 {
		return msg[:100] + "..."
	}
	return msg
}
