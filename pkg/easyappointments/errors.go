package easyappointments

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorKind identifies the failure class of an API call.
type ErrorKind string

const (
	// ErrorKindAuthentication indicates the API key was missing or rejected (401).
	ErrorKindAuthentication ErrorKind = "authentication"

	// ErrorKindNotFound indicates the requested resource does not exist (404).
	ErrorKindNotFound ErrorKind = "not_found"

	// ErrorKindValidation indicates the request payload was rejected (400).
	ErrorKindValidation ErrorKind = "validation"

	// ErrorKindRateLimited indicates the server throttled the request (429).
	ErrorKindRateLimited ErrorKind = "rate_limited"

	// ErrorKindServerError indicates a 5xx response.
	ErrorKindServerError ErrorKind = "server_error"

	// ErrorKindTransport indicates the request never produced an HTTP
	// response (connection refused, timeout, DNS failure).
	ErrorKindTransport ErrorKind = "transport"

	// ErrorKindUnknown covers every other non-2xx status and protocol
	// violations such as unparseable success bodies.
	ErrorKindUnknown ErrorKind = "unknown"
)

// Error is the single error type surfaced by the client. Kind is derived
// from the HTTP status code (or the absence of a response) and is never set
// ad hoc; switch on Kind rather than on concrete error identity.
type Error struct {
	Kind       ErrorKind
	StatusCode int    // 0 when no HTTP response was received
	Message    string
	Body       []byte // raw response body, nil when none was received
	RequestID  string // X-Request-ID response header, empty when absent

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	parts := []string{e.Message}
	if e.StatusCode != 0 {
		parts = append(parts, fmt.Sprintf("status code: %d", e.StatusCode))
	}

	if e.RequestID != "" {
		parts = append(parts, "request id: "+e.RequestID)
	}

	return strings.Join(parts, " | ")
}

// Unwrap exposes the underlying transport error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewTransportError builds an Error for a failure that produced no HTTP
// response. The original error remains reachable through errors.Unwrap.
func NewTransportError(method, url string, cause error) *Error {
	return &Error{
		Kind:    ErrorKindTransport,
		Message: fmt.Sprintf("%s %s: %v", method, url, cause),
		cause:   cause,
	}
}

// Classify maps a non-2xx HTTP response to an Error. It is deterministic
// and side-effect free: the kind is a pure function of the status code, and
// the message is extracted from the body following a fixed priority.
func Classify(statusCode int, body []byte, requestID string) *Error {
	return &Error{
		Kind:       kindForStatus(statusCode),
		StatusCode: statusCode,
		Message:    extractMessage(statusCode, body),
		Body:       body,
		RequestID:  requestID,
	}
}

func kindForStatus(statusCode int) ErrorKind {
	switch {
	case statusCode == 401:
		return ErrorKindAuthentication
	case statusCode == 404:
		return ErrorKindNotFound
	case statusCode == 400:
		return ErrorKindValidation
	case statusCode == 429:
		return ErrorKindRateLimited
	case statusCode >= 500 && statusCode < 600:
		return ErrorKindServerError
	default:
		return ErrorKindUnknown
	}
}

// extractMessage pulls a human readable message out of an error body.
// Priority: non-empty array; "message" key; "error" key; field-level error
// lists; the body itself; finally the raw text or a generic fallback.
func extractMessage(statusCode int, body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return fmt.Sprintf("HTTP error %d", statusCode)
	}

	var decoded interface{}

	err := json.Unmarshal(body, &decoded)
	if err != nil {
		return trimmed
	}

	switch value := decoded.(type) {
	case []interface{}:
		if len(value) > 0 {
			items := make([]string, 0, len(value))
			for _, item := range value {
				items = append(items, stringifyValue(item))
			}

			return strings.Join(items, "; ")
		}

	case map[string]interface{}:
		if msg, ok := value["message"]; ok {
			return stringifyValue(msg)
		}

		if msg, ok := value["error"]; ok {
			return stringifyValue(msg)
		}

		if fieldErrors := formatFieldErrors(value); fieldErrors != "" {
			return fieldErrors
		}
	}

	return trimmed
}

// formatFieldErrors renders validation bodies shaped like
// {"field": ["err1", "err2"], ...} as "field: err1, err2; ...". It returns
// "" unless at least one value is an array. Fields are sorted so the
// message is stable across calls.
func formatFieldErrors(body map[string]interface{}) string {
	hasList := false

	for _, value := range body {
		if _, ok := value.([]interface{}); ok {
			hasList = true

			break
		}
	}

	if !hasList {
		return ""
	}

	fields := make([]string, 0, len(body))
	for field := range body {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	parts := make([]string, 0, len(fields))

	for _, field := range fields {
		if list, ok := body[field].([]interface{}); ok {
			items := make([]string, 0, len(list))
			for _, item := range list {
				items = append(items, stringifyValue(item))
			}

			parts = append(parts, field+": "+strings.Join(items, ", "))
		} else {
			parts = append(parts, field+": "+stringifyValue(body[field]))
		}
	}

	return strings.Join(parts, "; ")
}

func stringifyValue(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return string(encoded)
}

// AsError extracts an *Error from an error chain.
func AsError(err error) (*Error, bool) {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasKind(err, ErrorKindNotFound)
}

// IsAuthentication checks if the error is an authentication error.
func IsAuthentication(err error) bool {
	return hasKind(err, ErrorKindAuthentication)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return hasKind(err, ErrorKindValidation)
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	return hasKind(err, ErrorKindRateLimited)
}

// IsServerError checks if the error is a 5xx server error.
func IsServerError(err error) bool {
	return hasKind(err, ErrorKindServerError)
}

// IsTransport checks if the error is a transport-level failure.
func IsTransport(err error) bool {
	return hasKind(err, ErrorKindTransport)
}

// IsRetryable reports whether the failure class is transient. Only rate
// limits, server errors, and transport failures qualify.
func IsRetryable(err error) bool {
	apiErr, ok := AsError(err)
	if !ok {
		return false
	}

	switch apiErr.Kind {
	case ErrorKindRateLimited, ErrorKindServerError, ErrorKindTransport:
		return true
	case ErrorKindAuthentication, ErrorKindNotFound, ErrorKindValidation, ErrorKindUnknown:
		return false
	default:
		return false
	}
}

func hasKind(err error, kind ErrorKind) bool {
	apiErr, ok := AsError(err)

	return ok && apiErr.Kind == kind
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIKeyRequired      = errors.New("API key is required")
	ErrBaseURLRequired     = errors.New("base URL is required")
	ErrClientClosed        = errors.New("client is closed")
	ErrProviderIDRequired  = errors.New("provider ID is required")
	ErrAppointmentRequired = errors.New("appointment is required")
	ErrCustomerRequired    = errors.New("customer is required")
	ErrProviderRequired    = errors.New("provider is required")
	ErrAdminRequired       = errors.New("admin is required")

	// ErrAppointmentRefsRequired is returned by Appointment.Validate when a
	// customer, provider, or service reference is missing.
	ErrAppointmentRefsRequired = errors.New("customerId, providerId and serviceId are required")
)
