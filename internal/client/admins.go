package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/voctra-ai/easy-appointments-client/internal/http"
	"github.com/voctra-ai/easy-appointments-client/pkg/easyappointments"
)

// AdminsClient implements easyappointments.AdminsClient.
type AdminsClient struct {
	httpClient *http.Client
	logger     easyappointments.Logger
}

// NewAdminsClient creates a new admins client.
func NewAdminsClient(httpClient *http.Client, logger easyappointments.Logger) *AdminsClient {
	return &AdminsClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// List implements easyappointments.AdminsClient.List.
func (c *AdminsClient) List(ctx context.Context, opts *easyappointments.ListOptions) (*easyappointments.Page[easyappointments.Admin], error) {
	if opts == nil {
		opts = easyappointments.NewListOptions()
	}

	resp, err := c.httpClient.Get(ctx, "/admins", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing admins: %w", err)
	}

	page := easyappointments.DecodePage[easyappointments.Admin](resp.Body, c.logger)

	return &page, nil
}

// Get implements easyappointments.AdminsClient.Get.
func (c *AdminsClient) Get(ctx context.Context, adminID int) (*easyappointments.Admin, error) {
	path := "/admins/" + strconv.Itoa(adminID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting admin: %w", err)
	}

	var admin easyappointments.Admin

	err = json.Unmarshal(resp.Body, &admin)
	if err != nil {
		return nil, fmt.Errorf("parsing admin: %w", err)
	}

	return &admin, nil
}

// Create implements easyappointments.AdminsClient.Create.
func (c *AdminsClient) Create(ctx context.Context, admin *easyappointments.Admin) (*easyappointments.Admin, error) {
	if admin == nil {
		return nil, easyappointments.ErrAdminRequired
	}

	resp, err := c.httpClient.Post(ctx, "/admins", admin)
	if err != nil {
		return nil, fmt.Errorf("creating admin: %w", err)
	}

	var created easyappointments.Admin

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing admin response: %w", err)
	}

	return &created, nil
}

// Update implements easyappointments.AdminsClient.Update.
func (c *AdminsClient) Update(ctx context.Context, adminID int, admin *easyappointments.Admin) (*easyappointments.Admin, error) {
	if admin == nil {
		return nil, easyappointments.ErrAdminRequired
	}

	path := "/admins/" + strconv.Itoa(adminID)

	resp, err := c.httpClient.Put(ctx, path, admin)
	if err != nil {
		return nil, fmt.Errorf("updating admin: %w", err)
	}

	var updated easyappointments.Admin

	err = json.Unmarshal(resp.Body, &updated)
	if err != nil {
		return nil, fmt.Errorf("parsing admin response: %w", err)
	}

	return &updated, nil
}

// Delete implements easyappointments.AdminsClient.Delete.
func (c *AdminsClient) Delete(ctx context.Context, adminID int) error {
	path := "/admins/" + strconv.Itoa(adminID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting admin: %w", err)
	}

	return nil
}
