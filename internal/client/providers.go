package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/voctra-ai/easy-appointments-client/internal/http"
	"github.com/voctra-ai/easy-appointments-client/pkg/easyappointments"
)

// ProvidersClient implements easyappointments.ProvidersClient.
type ProvidersClient struct {
	httpClient *http.Client
	logger     easyappointments.Logger
}

// NewProvidersClient creates a new providers client.
func NewProvidersClient(httpClient *http.Client, logger easyappointments.Logger) *ProvidersClient {
	return &ProvidersClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// List implements easyappointments.ProvidersClient.List.
func (c *ProvidersClient) List(ctx context.Context, opts *easyappointments.ListOptions) (*easyappointments.Page[easyappointments.Provider], error) {
	if opts == nil {
		opts = easyappointments.NewListOptions()
	}

	resp, err := c.httpClient.Get(ctx, "/providers", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing providers: %w", err)
	}

	page := easyappointments.DecodePage[easyappointments.Provider](resp.Body, c.logger)

	return &page, nil
}

// Get implements easyappointments.ProvidersClient.Get.
func (c *ProvidersClient) Get(ctx context.Context, providerID int) (*easyappointments.Provider, error) {
	path := "/providers/" + strconv.Itoa(providerID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting provider: %w", err)
	}

	var provider easyappointments.Provider

	err = json.Unmarshal(resp.Body, &provider)
	if err != nil {
		return nil, fmt.Errorf("parsing provider: %w", err)
	}

	return &provider, nil
}

// Create implements easyappointments.ProvidersClient.Create. The working
// plan, when present, is validated locally before the request is sent so
// obviously malformed plans fail fast.
func (c *ProvidersClient) Create(ctx context.Context, provider *easyappointments.Provider) (*easyappointments.Provider, error) {
	if provider == nil {
		return nil, easyappointments.ErrProviderRequired
	}

	err := validateProviderPlan(provider)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/providers", provider)
	if err != nil {
		return nil, fmt.Errorf("creating provider: %w", err)
	}

	var created easyappointments.Provider

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing provider response: %w", err)
	}

	return &created, nil
}

// Update implements easyappointments.ProvidersClient.Update.
func (c *ProvidersClient) Update(ctx context.Context, providerID int, provider *easyappointments.Provider) (*easyappointments.Provider, error) {
	if provider == nil {
		return nil, easyappointments.ErrProviderRequired
	}

	err := validateProviderPlan(provider)
	if err != nil {
		return nil, err
	}

	path := "/providers/" + strconv.Itoa(providerID)

	resp, err := c.httpClient.Put(ctx, path, provider)
	if err != nil {
		return nil, fmt.Errorf("updating provider: %w", err)
	}

	var updated easyappointments.Provider

	err = json.Unmarshal(resp.Body, &updated)
	if err != nil {
		return nil, fmt.Errorf("parsing provider response: %w", err)
	}

	return &updated, nil
}

// Delete implements easyappointments.ProvidersClient.Delete.
func (c *ProvidersClient) Delete(ctx context.Context, providerID int) error {
	path := "/providers/" + strconv.Itoa(providerID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting provider: %w", err)
	}

	return nil
}

func validateProviderPlan(provider *easyappointments.Provider) error {
	if provider.Settings == nil || provider.Settings.WorkingPlan == nil {
		return nil
	}

	err := provider.Settings.WorkingPlan.Validate()
	if err != nil {
		return fmt.Errorf("validating working plan: %w", err)
	}

	return nil
}
