package client

import (
	internalhttp "github.com/voctra-ai/easy-appointments-client/internal/http"
)

// NewTestClient creates a client pointed at a test server, with retries
// effectively disabled so error cases resolve in one attempt.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, "test-key",
		internalhttp.WithRetryConfig(1, 0))

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}
