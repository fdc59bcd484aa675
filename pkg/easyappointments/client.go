package easyappointments

import (
	"context"
	"net/http"
	"time"
)

// AdminsClient manages administrator accounts.
type AdminsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Admin], error)
	Get(ctx context.Context, adminID int) (*Admin, error)
	Create(ctx context.Context, admin *Admin) (*Admin, error)
	Update(ctx context.Context, adminID int, admin *Admin) (*Admin, error)
	Delete(ctx context.Context, adminID int) error
}

// ProvidersClient manages service providers.
type ProvidersClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Provider], error)
	Get(ctx context.Context, providerID int) (*Provider, error)
	Create(ctx context.Context, provider *Provider) (*Provider, error)
	Update(ctx context.Context, providerID int, provider *Provider) (*Provider, error)
	Delete(ctx context.Context, providerID int) error
}

// CustomersClient manages customer records.
type CustomersClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Customer], error)
	Get(ctx context.Context, customerID int) (*Customer, error)
	Create(ctx context.Context, customer *Customer) (*Customer, error)
	Update(ctx context.Context, customerID int, customer *Customer) (*Customer, error)
	Delete(ctx context.Context, customerID int) error
}

// AppointmentsClient manages appointments. Get returns (nil, nil) when the
// appointment does not exist; mutating operations always propagate errors.
type AppointmentsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Appointment], error)
	Get(ctx context.Context, appointmentID int) (*Appointment, error)
	Create(ctx context.Context, appointment *Appointment) (*Appointment, error)
	Update(ctx context.Context, appointmentID int, appointment *Appointment) (*Appointment, error)
	Delete(ctx context.Context, appointmentID int) error
}

// AvailabilitiesClient reads open time slots.
type AvailabilitiesClient interface {
	Get(ctx context.Context, query *AvailabilityQuery) (*Availability, error)
}

// AvailabilityQuery identifies the provider, service, and date to check.
// Date is "YYYY-MM-DD"; when empty the server assumes today. ServiceID
// defaults to 1 when zero, matching the server.
type AvailabilityQuery struct {
	ProviderID int
	ServiceID  int
	Date       string
}

// Client is the entry point to the Easy!Appointments API. All resource
// clients share one pooled transport and an immutable configuration
// snapshot, so a single Client is safe for concurrent use.
type Client interface {
	Admins() AdminsClient
	Providers() ProvidersClient
	Customers() CustomersClient
	Appointments() AppointmentsClient
	Availabilities() AvailabilitiesClient

	// Close releases the pooled transport. In-flight calls complete;
	// subsequent calls fail with ErrClientClosed.
	Close() error
}

// Logger is the structured logging interface used by the HTTP layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config configures a Client. The zero values of the optional fields fall
// back to the documented defaults.
//
// # Timeouts and retries
//
// HTTPTimeout (default 30s) bounds each individual attempt, not the whole
// retry sequence. A caller that wants an overall deadline across retries
// must pass a context with one; the client checks it between attempts but
// does not impose its own. RetryMax is the total number of attempts
// including the first (default 3); RetryBaseDelay (default 1s) seeds the
// exponential backoff, which is capped at ten times the base.
type Config struct {
	// APIKey authenticates every request as a Bearer token. Required.
	APIKey string

	// BaseURL is the API root, e.g. "https://booking.example.com/index.php/api/v1".
	// A trailing slash is stripped; "https://" is assumed when no scheme is
	// present. Required.
	BaseURL string

	// HTTPTimeout is the per-attempt timeout. Zero means the default.
	HTTPTimeout time.Duration

	// RetryMax is the total attempt budget, including the first attempt.
	RetryMax int

	// RetryBaseDelay seeds the exponential backoff between attempts.
	RetryBaseDelay time.Duration

	// Debug enables request/response logging through Logger. Request
	// bodies are redacted before they are logged.
	Debug bool

	// Logger receives structured log output. Nil disables logging.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Cache, when set, serves repeated GET requests from a local store.
	Cache Cache

	// HTTPClient overrides the pooled default transport. Mostly for tests.
	HTTPClient *http.Client
}
