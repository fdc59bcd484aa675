package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/voctra-ai/easy-appointments-client/internal/http"
	"github.com/voctra-ai/easy-appointments-client/pkg/easyappointments"
)

// AvailabilitiesClient implements easyappointments.AvailabilitiesClient.
type AvailabilitiesClient struct {
	httpClient *http.Client
}

// NewAvailabilitiesClient creates a new availabilities client.
func NewAvailabilitiesClient(httpClient *http.Client) *AvailabilitiesClient {
	return &AvailabilitiesClient{
		httpClient: httpClient,
	}
}

// Get implements easyappointments.AvailabilitiesClient.Get.
//
// The endpoint's wire format is a bare JSON array of "HH:MM" slot boundary
// strings; consecutive boundaries are paired into slots, so N boundaries
// yield N-1 slots. Any other payload shape yields an empty Availability.
func (c *AvailabilitiesClient) Get(ctx context.Context, query *easyappointments.AvailabilityQuery) (*easyappointments.Availability, error) {
	if query == nil || query.ProviderID == 0 {
		return nil, easyappointments.ErrProviderIDRequired
	}

	serviceID := query.ServiceID
	if serviceID == 0 {
		serviceID = 1
	}

	values := url.Values{}
	values.Set("providerId", strconv.Itoa(query.ProviderID))
	values.Set("serviceId", strconv.Itoa(serviceID))

	if query.Date != "" {
		values.Set("date", query.Date)
	}

	resp, err := c.httpClient.Get(ctx, "/availabilities", values)
	if err != nil {
		return nil, fmt.Errorf("getting availability: %w", err)
	}

	return parseSlotBoundaries(resp.Body), nil
}

func parseSlotBoundaries(body []byte) *easyappointments.Availability {
	availability := &easyappointments.Availability{Available: []easyappointments.TimeSlot{}}

	var boundaries []string

	err := json.Unmarshal(body, &boundaries)
	if err != nil {
		return availability
	}

	for i := 0; i+1 < len(boundaries); i++ {
		availability.Available = append(availability.Available, easyappointments.TimeSlot{
			Start: boundaries[i],
			End:   boundaries[i+1],
		})
	}

	return availability
}
