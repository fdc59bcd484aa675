package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default per-attempt timeout for API requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry behavior.
const (
	// DefaultMaxAttempts is the total attempt budget per logical call,
	// including the first attempt.
	DefaultMaxAttempts = 3

	// DefaultRetryBaseDelay seeds the exponential backoff between attempts.
	DefaultRetryBaseDelay = 1 * time.Second

	// BackoffCapMultiplier caps the backoff at base delay times this factor.
	BackoffCapMultiplier = 10
)

// Request and response handling.
const (
	// RequestIDHeader is the response header carrying the server's
	// correlation id.
	RequestIDHeader = "X-Request-ID"

	// BodyExcerptLength bounds raw-text excerpts quoted in error messages.
	BodyExcerptLength = 100

	// SensitiveMask replaces sensitive field values in logged request bodies.
	SensitiveMask = "*****"

	// MaxResponseBody bounds how much of a response body is read.
	MaxResponseBody = 10 << 20
)

// Caching.
const (
	// DefaultCacheTTL is the lifetime of cached GET responses.
	DefaultCacheTTL = 1 * time.Minute

	// DefaultCacheSize bounds the in-memory response cache.
	DefaultCacheSize = 256
)

// Pagination defaults, matching the server's.
const (
	// DefaultPageSize is the default list page length.
	DefaultPageSize = 10

	// MaxPageSize is the largest page length the server accepts.
	MaxPageSize = 100
)
