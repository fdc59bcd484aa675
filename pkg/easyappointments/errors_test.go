package easyappointments

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "message only",
			err:      &Error{Kind: ErrorKindTransport, Message: "connection refused"},
			expected: "connection refused",
		},
		{
			name:     "with status code",
			err:      &Error{Kind: ErrorKindNotFound, StatusCode: 404, Message: "not found"},
			expected: "not found | status code: 404",
		},
		{
			name: "with status code and request id",
			err: &Error{
				Kind:       ErrorKindServerError,
				StatusCode: 500,
				Message:    "boom",
				RequestID:  "req-7",
			},
			expected: "boom | status code: 500 | request id: req-7",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestClassify_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		kind   ErrorKind
	}{
		{status: 401, kind: ErrorKindAuthentication},
		{status: 404, kind: ErrorKindNotFound},
		{status: 400, kind: ErrorKindValidation},
		{status: 429, kind: ErrorKindRateLimited},
		{status: 500, kind: ErrorKindServerError},
		{status: 502, kind: ErrorKindServerError},
		{status: 599, kind: ErrorKindServerError},
		{status: 403, kind: ErrorKindUnknown},
		{status: 418, kind: ErrorKindUnknown},
		{status: 301, kind: ErrorKindUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			t.Parallel()

			err := Classify(tt.status, nil, "")
			assert.Equal(t, tt.kind, err.Kind)
			assert.Equal(t, tt.status, err.StatusCode)
		})
	}
}

func TestClassify_MessageExtraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "empty body falls back to generic message",
			body:     "",
			expected: "HTTP error 400",
		},
		{
			name:     "whitespace body falls back to generic message",
			body:     "  \n ",
			expected: "HTTP error 400",
		},
		{
			name:     "array of strings is joined",
			body:     `["first error", "second error"]`,
			expected: "first error; second error",
		},
		{
			name:     "array of mixed values stringifies non-strings",
			body:     `["bad field", 42]`,
			expected: "bad field; 42",
		},
		{
			name:     "message key wins",
			body:     `{"message": "Invalid appointment", "error": "ignored"}`,
			expected: "Invalid appointment",
		},
		{
			name:     "error key is second",
			body:     `{"error": "Something failed"}`,
			expected: "Something failed",
		},
		{
			name:     "non-string message is stringified",
			body:     `{"message": {"code": 5}}`,
			expected: `{"code":5}`,
		},
		{
			name:     "field errors are joined and sorted",
			body:     `{"start": ["required"], "email": ["invalid format", "too long"]}`,
			expected: "email: invalid format, too long; start: required",
		},
		{
			name:     "field errors include scalar siblings",
			body:     `{"email": ["invalid"], "context": "signup"}`,
			expected: "context: signup; email: invalid",
		},
		{
			name:     "object without known keys or lists falls back to raw text",
			body:     `{"detail": "whatever"}`,
			expected: `{"detail": "whatever"}`,
		},
		{
			name:     "empty array falls back to raw text",
			body:     `[]`,
			expected: `[]`,
		},
		{
			name:     "non-JSON body is returned trimmed",
			body:     "  plain text error \n",
			expected: "plain text error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Classify(400, []byte(tt.body), "")
			assert.Equal(t, tt.expected, err.Message)
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	t.Parallel()

	body := []byte(`{"zeta": ["z"], "alpha": ["a"], "mid": ["m"]}`)

	first := Classify(400, body, "")
	for i := 0; i < 20; i++ {
		assert.Equal(t, first.Message, Classify(400, body, "").Message)
	}
}

func TestNewTransportError(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	err := NewTransportError("GET", "https://example.com/appointments", cause)

	assert.Equal(t, ErrorKindTransport, err.Kind)
	assert.Equal(t, 0, err.StatusCode)
	assert.Contains(t, err.Error(), "connection refused")
	require.ErrorIs(t, err, cause)
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		checker func(error) bool
	}{
		{name: "IsNotFound", err: Classify(404, nil, ""), checker: IsNotFound},
		{name: "IsAuthentication", err: Classify(401, nil, ""), checker: IsAuthentication},
		{name: "IsValidation", err: Classify(400, nil, ""), checker: IsValidation},
		{name: "IsRateLimited", err: Classify(429, nil, ""), checker: IsRateLimited},
		{name: "IsServerError", err: Classify(503, nil, ""), checker: IsServerError},
		{name: "IsTransport", err: NewTransportError("GET", "u", errors.New("x")), checker: IsTransport},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.True(t, tt.checker(tt.err))
			assert.False(t, tt.checker(errors.New("plain error")))
			assert.False(t, tt.checker(nil))
		})
	}
}

func TestErrorHelpers_Wrapped(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("getting appointment: %w", Classify(404, nil, ""))

	assert.True(t, IsNotFound(wrapped))

	apiErr, ok := AsError(wrapped)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.StatusCode)
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	assert.True(t, IsRetryable(Classify(429, nil, "")))
	assert.True(t, IsRetryable(Classify(500, nil, "")))
	assert.True(t, IsRetryable(NewTransportError("GET", "u", errors.New("x"))))

	assert.False(t, IsRetryable(Classify(400, nil, "")))
	assert.False(t, IsRetryable(Classify(401, nil, "")))
	assert.False(t, IsRetryable(Classify(404, nil, "")))
	assert.False(t, IsRetryable(Classify(418, nil, "")))
	assert.False(t, IsRetryable(errors.New("plain error")))
	assert.False(t, IsRetryable(nil))
}
