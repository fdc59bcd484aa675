package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voctra-ai/easy-appointments-client/pkg/easyappointments"
)

func TestAvailabilitiesClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/availabilities", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("providerId"))
		assert.Equal(t, "2", r.URL.Query().Get("serviceId"))
		assert.Equal(t, "2026-09-01", r.URL.Query().Get("date"))

		_, _ = w.Write([]byte(`["09:00", "09:30", "10:00", "11:00"]`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	availability, err := client.Availabilities().Get(context.Background(), &easyappointments.AvailabilityQuery{
		ProviderID: 3,
		ServiceID:  2,
		Date:       "2026-09-01",
	})
	require.NoError(t, err)
	require.Len(t, availability.Available, 3)

	assert.Equal(t, easyappointments.TimeSlot{Start: "09:00", End: "09:30"}, availability.Available[0])
	assert.Equal(t, easyappointments.TimeSlot{Start: "09:30", End: "10:00"}, availability.Available[1])
	assert.Equal(t, easyappointments.TimeSlot{Start: "10:00", End: "11:00"}, availability.Available[2])
	assert.False(t, availability.IsEmpty())
}

func TestAvailabilitiesClient_Get_Defaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The service defaults to 1 and the date stays unset.
		assert.Equal(t, "1", r.URL.Query().Get("serviceId"))
		assert.False(t, r.URL.Query().Has("date"))

		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	availability, err := client.Availabilities().Get(context.Background(), &easyappointments.AvailabilityQuery{
		ProviderID: 3,
	})
	require.NoError(t, err)
	assert.True(t, availability.IsEmpty())
}

func TestAvailabilitiesClient_Get_RequiresProvider(t *testing.T) {
	client := NewTestClient("http://localhost:1")

	_, err := client.Availabilities().Get(context.Background(), nil)
	require.ErrorIs(t, err, easyappointments.ErrProviderIDRequired)

	_, err = client.Availabilities().Get(context.Background(), &easyappointments.AvailabilityQuery{})
	require.ErrorIs(t, err, easyappointments.ErrProviderIDRequired)
}

func TestAvailabilitiesClient_Get_UnexpectedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"slots": ["09:00"]}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	availability, err := client.Availabilities().Get(context.Background(), &easyappointments.AvailabilityQuery{
		ProviderID: 3,
	})
	require.NoError(t, err)
	assert.True(t, availability.IsEmpty())
}

func TestAvailabilitiesClient_Get_SingleBoundary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`["09:00"]`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	availability, err := client.Availabilities().Get(context.Background(), &easyappointments.AvailabilityQuery{
		ProviderID: 3,
	})
	require.NoError(t, err)
	assert.True(t, availability.IsEmpty())
}
