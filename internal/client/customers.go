package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/voctra-ai/easy-appointments-client/internal/http"
	"github.com/voctra-ai/easy-appointments-client/pkg/easyappointments"
)

// CustomersClient implements easyappointments.CustomersClient.
type CustomersClient struct {
	httpClient *http.Client
	logger     easyappointments.Logger
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(httpClient *http.Client, logger easyappointments.Logger) *CustomersClient {
	return &CustomersClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// List implements easyappointments.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, opts *easyappointments.ListOptions) (*easyappointments.Page[easyappointments.Customer], error) {
	if opts == nil {
		opts = easyappointments.NewListOptions()
	}

	resp, err := c.httpClient.Get(ctx, "/customers", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	page := easyappointments.DecodePage[easyappointments.Customer](resp.Body, c.logger)

	return &page, nil
}

// Get implements easyappointments.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, customerID int) (*easyappointments.Customer, error) {
	path := "/customers/" + strconv.Itoa(customerID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", err)
	}

	var customer easyappointments.Customer

	err = json.Unmarshal(resp.Body, &customer)
	if err != nil {
		return nil, fmt.Errorf("parsing customer: %w", err)
	}

	return &customer, nil
}

// Create implements easyappointments.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, customer *easyappointments.Customer) (*easyappointments.Customer, error) {
	if customer == nil {
		return nil, easyappointments.ErrCustomerRequired
	}

	resp, err := c.httpClient.Post(ctx, "/customers", customer)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	var created easyappointments.Customer

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing customer response: %w", err)
	}

	return &created, nil
}

// Update implements easyappointments.CustomersClient.Update.
func (c *CustomersClient) Update(ctx context.Context, customerID int, customer *easyappointments.Customer) (*easyappointments.Customer, error) {
	if customer == nil {
		return nil, easyappointments.ErrCustomerRequired
	}

	path := "/customers/" + strconv.Itoa(customerID)

	resp, err := c.httpClient.Put(ctx, path, customer)
	if err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}

	var updated easyappointments.Customer

	err = json.Unmarshal(resp.Body, &updated)
	if err != nil {
		return nil, fmt.Errorf("parsing customer response: %w", err)
	}

	return &updated, nil
}

// Delete implements easyappointments.CustomersClient.Delete.
func (c *CustomersClient) Delete(ctx context.Context, customerID int) error {
	path := "/customers/" + strconv.Itoa(customerID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting customer: %w", err)
	}

	return nil
}
