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

func TestAdminsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admins", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		admins := []easyappointments.Admin{
			{ID: 1, First: "Ada", Last: "Root"},
		}
		_ = json.NewEncoder(w).Encode(admins)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	page, err := client.Admins().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, "Ada", page.Items[0].First)
}

func TestAdminsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admins/1", r.URL.Path)

		_ = json.NewEncoder(w).Encode(easyappointments.Admin{
			ID:    1,
			First: "Ada",
			Settings: &easyappointments.AdminSettings{
				Username:     "ada",
				CalendarView: "default",
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	admin, err := client.Admins().Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, admin.ID)
	require.NotNil(t, admin.Settings)
	assert.Equal(t, "ada", admin.Settings.Username)
}

func TestAdminsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admins", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var req easyappointments.Admin

		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "Ada", req.First)

		req.ID = 2
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(req)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	created, err := client.Admins().Create(context.Background(), &easyappointments.Admin{
		First: "Ada",
		Last:  "Root",
		Email: "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)
}

func TestAdminsClient_Create_Nil(t *testing.T) {
	client := NewTestClient("http://localhost:1")

	_, err := client.Admins().Create(context.Background(), nil)
	require.ErrorIs(t, err, easyappointments.ErrAdminRequired)
}

func TestAdminsClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admins/1", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var req easyappointments.Admin

		_ = json.NewDecoder(r.Body).Decode(&req)
		req.ID = 1
		_ = json.NewEncoder(w).Encode(req)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	updated, err := client.Admins().Update(context.Background(), 1, &easyappointments.Admin{
		First: "Ada",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ID)
}

func TestAdminsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admins/1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Admins().Delete(context.Background(), 1)
	require.NoError(t, err)
}
