package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voctra-ai/easy-appointments-client/pkg/easyappointments"
)

func TestAppointmentsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appointments", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		appointments := []easyappointments.Appointment{
			{ID: 1, Start: "2026-09-01 10:00:00", End: "2026-09-01 10:30:00"},
		}
		_ = json.NewEncoder(w).Encode(appointments)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	page, err := client.Appointments().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Items[0].ID)
}

func TestAppointmentsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appointments/5", r.URL.Path)

		_ = json.NewEncoder(w).Encode(easyappointments.Appointment{
			ID:         5,
			Start:      "2026-09-01 10:00:00",
			End:        "2026-09-01 10:30:00",
			CustomerID: 1,
			ProviderID: 2,
			ServiceID:  3,
			Status:     easyappointments.StatusBooked,
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	appointment, err := client.Appointments().Get(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, appointment)
	assert.Equal(t, 5, appointment.ID)
	assert.Equal(t, easyappointments.StatusBooked, appointment.Status)
}

func TestAppointmentsClient_Get_MissingIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Appointment not found"}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	appointment, err := client.Appointments().Get(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, appointment)
}

func TestAppointmentsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appointments", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var req easyappointments.Appointment

		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, 1, req.CustomerID)

		req.ID = 20
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(req)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	created, err := client.Appointments().Create(context.Background(), &easyappointments.Appointment{
		Start:      "2026-09-01 10:00:00",
		End:        "2026-09-01 10:30:00",
		CustomerID: 1,
		ProviderID: 2,
		ServiceID:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, created.ID)
}

func TestAppointmentsClient_Create_Invalid(t *testing.T) {
	client := NewTestClient("http://localhost:1")

	t.Run("nil appointment", func(t *testing.T) {
		_, err := client.Appointments().Create(context.Background(), nil)
		require.ErrorIs(t, err, easyappointments.ErrAppointmentRequired)
	})

	t.Run("bad timestamp", func(t *testing.T) {
		_, err := client.Appointments().Create(context.Background(), &easyappointments.Appointment{
			Start:      "next tuesday",
			End:        "2026-09-01 10:30:00",
			CustomerID: 1,
			ProviderID: 2,
			ServiceID:  3,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "start")
	})

	t.Run("missing references", func(t *testing.T) {
		_, err := client.Appointments().Create(context.Background(), &easyappointments.Appointment{
			Start: "2026-09-01 10:00:00",
			End:   "2026-09-01 10:30:00",
		})
		require.ErrorIs(t, err, easyappointments.ErrAppointmentRefsRequired)
	})
}

func TestAppointmentsClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appointments/5", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var req easyappointments.Appointment

		_ = json.NewDecoder(r.Body).Decode(&req)
		req.ID = 5
		_ = json.NewEncoder(w).Encode(req)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	updated, err := client.Appointments().Update(context.Background(), 5, &easyappointments.Appointment{
		Notes: "moved to the afternoon",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.ID)
	assert.Equal(t, "moved to the afternoon", updated.Notes)
}

func TestAppointmentsClient_Update_NotFoundPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Appointment not found"}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Appointments().Update(context.Background(), 999, &easyappointments.Appointment{})
	require.Error(t, err)
	assert.True(t, easyappointments.IsNotFound(err))
}

func TestAppointmentsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appointments/5", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Appointments().Delete(context.Background(), 5)
	require.NoError(t, err)
}

func TestAppointmentsClient_Delete_NotFoundPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Appointment not found"}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Appointments().Delete(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, easyappointments.IsNotFound(err))
}
