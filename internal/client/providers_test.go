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

func TestProvidersClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/providers", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		providers := []easyappointments.Provider{
			{ID: 1, First: "Chloe", Services: []int{1, 2}},
		}
		_ = json.NewEncoder(w).Encode(providers)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	page, err := client.Providers().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, []int{1, 2}, page.Items[0].Services)
}

func TestProvidersClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/providers/3", r.URL.Path)

		_ = json.NewEncoder(w).Encode(easyappointments.Provider{
			ID:    3,
			First: "Chloe",
			Settings: &easyappointments.ProviderSettings{
				Username: "chloe",
				WorkingPlan: &easyappointments.WorkingPlan{
					Monday: &easyappointments.WorkingDay{Start: "09:00", End: "17:00"},
				},
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	provider, err := client.Providers().Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, provider.ID)
	require.NotNil(t, provider.Settings)
	require.NotNil(t, provider.Settings.WorkingPlan)
	assert.Equal(t, "09:00", provider.Settings.WorkingPlan.Monday.Start)
}

func TestProvidersClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/providers", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var req easyappointments.Provider

		_ = json.NewDecoder(r.Body).Decode(&req)
		req.ID = 4
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(req)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	created, err := client.Providers().Create(context.Background(), &easyappointments.Provider{
		First:    "Chloe",
		Email:    "chloe@example.com",
		Services: []int{1},
		Settings: &easyappointments.ProviderSettings{
			Username: "chloe",
			WorkingPlan: &easyappointments.WorkingPlan{
				Monday: &easyappointments.WorkingDay{Start: "09:00", End: "17:00"},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
}

func TestProvidersClient_Create_InvalidPlan(t *testing.T) {
	client := NewTestClient("http://localhost:1")

	_, err := client.Providers().Create(context.Background(), &easyappointments.Provider{
		First: "Chloe",
		Settings: &easyappointments.ProviderSettings{
			WorkingPlan: &easyappointments.WorkingPlan{
				Monday: &easyappointments.WorkingDay{Start: "morning", End: "17:00"},
			},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "monday")
}

func TestProvidersClient_Create_Nil(t *testing.T) {
	client := NewTestClient("http://localhost:1")

	_, err := client.Providers().Create(context.Background(), nil)
	require.ErrorIs(t, err, easyappointments.ErrProviderRequired)
}

func TestProvidersClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/providers/3", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var req easyappointments.Provider

		_ = json.NewDecoder(r.Body).Decode(&req)
		req.ID = 3
		_ = json.NewEncoder(w).Encode(req)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	updated, err := client.Providers().Update(context.Background(), 3, &easyappointments.Provider{
		First: "Chloe",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.ID)
}

func TestProvidersClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/providers/3", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Providers().Delete(context.Background(), 3)
	require.NoError(t, err)
}
