package types

import (
	"errors"
	"fmt"
	"strings"
)

// Validation issue codes carried by ValidationError issues.
const (
	CodeRequired       = "required"
	CodeInvalidType    = "invalid_type"
	CodeUnknownKey     = "unknown_key"
	CodeNotNullable    = "not_nullable"
	CodeTooShort       = "too_short"
	CodeTooSmall       = "too_small"
	CodeTooBig         = "too_big"
	CodeInvalidPayload = "invalid_payload"
)

// Issue is a single schema violation: the field it concerns, a stable
// machine code, and a human-readable reason.
type Issue struct {
	Field  string // Offending field name; empty for document-level issues.
	Code   string // One of the Code constants.
	Reason string // Human-readable explanation.
}

func (i Issue) String() string {
	if i.Field == "" {
		return fmt.Sprintf("%s: %s", i.Code, i.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", i.Field, i.Code, i.Reason)
}

// ValidationError reports that outbound data or an inbound payload failed
// schema validation. For request data it is returned before any network
// call; for response data it is returned immediately after receipt.
type ValidationError struct {
	Schema string  // Name of the violated schema, e.g. "log.create.body".
	Issues []Issue // At least one.
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, iss := range e.Issues {
		parts[i] = iss.String()
	}
	return fmt.Sprintf("schema %s: %s", e.Schema, strings.Join(parts, "; "))
}

// APIError reports a non-2xx response from the service. Message carries
// the server-provided error text when the error envelope parses, and the
// HTTP status text otherwise.
type APIError struct {
	StatusCode int    // HTTP status code.
	Code       string // Machine code from the error envelope, if any.
	Message    string // Server-provided message, or the HTTP status text.
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Sentinel errors shared across the client and handle layers.
var (
	ErrTokenEmpty     = errors.New("token must not be empty")
	ErrAlreadyDeleted = errors.New("already deleted")
	ErrUnsetField     = errors.New("cannot encode an unset field")
)
