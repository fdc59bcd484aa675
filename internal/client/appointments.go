package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/voctra-ai/easy-appointments-client/internal/http"
	"github.com/voctra-ai/easy-appointments-client/pkg/easyappointments"
)

// AppointmentsClient implements easyappointments.AppointmentsClient.
type AppointmentsClient struct {
	httpClient *http.Client
	logger     easyappointments.Logger
}

// NewAppointmentsClient creates a new appointments client.
func NewAppointmentsClient(httpClient *http.Client, logger easyappointments.Logger) *AppointmentsClient {
	return &AppointmentsClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// List implements easyappointments.AppointmentsClient.List.
func (c *AppointmentsClient) List(ctx context.Context, opts *easyappointments.ListOptions) (*easyappointments.Page[easyappointments.Appointment], error) {
	if opts == nil {
		opts = easyappointments.NewListOptions()
	}

	resp, err := c.httpClient.Get(ctx, "/appointments", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}

	page := easyappointments.DecodePage[easyappointments.Appointment](resp.Body, c.logger)

	return &page, nil
}

// Get implements easyappointments.AppointmentsClient.Get. A missing
// appointment is reported as (nil, nil): the lookup is idempotent, so
// absence is a result, not a failure. Mutating operations never do this.
func (c *AppointmentsClient) Get(ctx context.Context, appointmentID int) (*easyappointments.Appointment, error) {
	path := "/appointments/" + strconv.Itoa(appointmentID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		if easyappointments.IsNotFound(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting appointment: %w", err)
	}

	var appointment easyappointments.Appointment

	err = json.Unmarshal(resp.Body, &appointment)
	if err != nil {
		return nil, fmt.Errorf("parsing appointment: %w", err)
	}

	return &appointment, nil
}

// Create implements easyappointments.AppointmentsClient.Create. The
// appointment is validated locally before the request is sent.
func (c *AppointmentsClient) Create(ctx context.Context, appointment *easyappointments.Appointment) (*easyappointments.Appointment, error) {
	if appointment == nil {
		return nil, easyappointments.ErrAppointmentRequired
	}

	err := appointment.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating appointment: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, "/appointments", appointment)
	if err != nil {
		return nil, fmt.Errorf("creating appointment: %w", err)
	}

	var created easyappointments.Appointment

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing appointment response: %w", err)
	}

	return &created, nil
}

// Update implements easyappointments.AppointmentsClient.Update.
func (c *AppointmentsClient) Update(ctx context.Context, appointmentID int, appointment *easyappointments.Appointment) (*easyappointments.Appointment, error) {
	if appointment == nil {
		return nil, easyappointments.ErrAppointmentRequired
	}

	path := "/appointments/" + strconv.Itoa(appointmentID)

	resp, err := c.httpClient.Put(ctx, path, appointment)
	if err != nil {
		return nil, fmt.Errorf("updating appointment: %w", err)
	}

	var updated easyappointments.Appointment

	err = json.Unmarshal(resp.Body, &updated)
	if err != nil {
		return nil, fmt.Errorf("parsing appointment response: %w", err)
	}

	return &updated, nil
}

// Delete implements easyappointments.AppointmentsClient.Delete.
func (c *AppointmentsClient) Delete(ctx context.Context, appointmentID int) error {
	path := "/appointments/" + strconv.Itoa(appointmentID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting appointment: %w", err)
	}

	return nil
}
