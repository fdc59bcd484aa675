// Package client implements the easyappointments.Client interface on top
// of the shared request executor.
package client

import (
	"github.com/voctra-ai/easy-appointments-client/internal/http"
	"github.com/voctra-ai/easy-appointments-client/pkg/easyappointments"
)

// Client implements the easyappointments.Client interface. All resource
// clients hold a reference to the same request executor, which owns the
// pooled transport.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     easyappointments.Logger

	admins         easyappointments.AdminsClient
	providers      easyappointments.ProvidersClient
	customers      easyappointments.CustomersClient
	appointments   easyappointments.AppointmentsClient
	availabilities easyappointments.AvailabilitiesClient
}

// buildHTTPOptions translates the public config into executor options.
func buildHTTPOptions(config *easyappointments.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 || config.RetryBaseDelay > 0 {
		opts = append(opts, http.WithRetryConfig(config.RetryMax, config.RetryBaseDelay))
	}

	if config.Cache != nil {
		opts = append(opts, http.WithCache(config.Cache, 0))
	}

	if config.HTTPClient != nil {
		opts = append(opts, http.WithHTTPClient(config.HTTPClient))
	}

	return opts
}

// New creates a client from an already normalized configuration. Callers
// normally go through eaclient.New, which validates and normalizes first.
func New(config *easyappointments.Config) (*Client, error) {
	if config == nil {
		return nil, easyappointments.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, easyappointments.ErrBaseURLRequired
	}

	if config.APIKey == "" {
		return nil, easyappointments.ErrAPIKeyRequired
	}

	httpClient := http.NewClient(config.BaseURL, config.APIKey, buildHTTPOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// Admins implements easyappointments.Client.Admins.
func (c *Client) Admins() easyappointments.AdminsClient {
	return c.admins
}

// Providers implements easyappointments.Client.Providers.
func (c *Client) Providers() easyappointments.ProvidersClient {
	return c.providers
}

// Customers implements easyappointments.Client.Customers.
func (c *Client) Customers() easyappointments.CustomersClient {
	return c.customers
}

// Appointments implements easyappointments.Client.Appointments.
func (c *Client) Appointments() easyappointments.AppointmentsClient {
	return c.appointments
}

// Availabilities implements easyappointments.Client.Availabilities.
func (c *Client) Availabilities() easyappointments.AvailabilitiesClient {
	return c.availabilities
}

// Close implements easyappointments.Client.Close.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

func (c *Client) initializeResourceClients() {
	c.admins = NewAdminsClient(c.httpClient, c.logger)
	c.providers = NewProvidersClient(c.httpClient, c.logger)
	c.customers = NewCustomersClient(c.httpClient, c.logger)
	c.appointments = NewAppointmentsClient(c.httpClient, c.logger)
	c.availabilities = NewAvailabilitiesClient(c.httpClient)
}
