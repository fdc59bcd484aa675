package eaclient

import (
	"fmt"
	"strings"

	"github.com/voctra-ai/easy-appointments-client/internal/client"
	"github.com/voctra-ai/easy-appointments-client/pkg/easyappointments"
)

// New creates a new Easy!Appointments API client.
//
// The base URL is normalized: a trailing slash is stripped and "https://"
// is assumed when no scheme is present. The returned client is safe for
// concurrent use and should be closed when no longer needed.
func New(config *easyappointments.Config) (easyappointments.Client, error) {
	if config == nil {
		return nil, easyappointments.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, easyappointments.ErrBaseURLRequired
	}

	if config.APIKey == "" {
		return nil, easyappointments.ErrAPIKeyRequired
	}

	normalized := *config
	normalized.BaseURL = NormalizeBaseURL(config.BaseURL)

	apiClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithAPIKey creates a client from a base URL and API key with default
// settings.
func NewWithAPIKey(baseURL, apiKey string) (easyappointments.Client, error) {
	return New(&easyappointments.Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
	})
}

// NormalizeBaseURL strips a trailing slash and defaults the scheme to
// https.
func NormalizeBaseURL(baseURL string) string {
	normalized := strings.TrimSuffix(baseURL, "/")

	if !strings.HasPrefix(normalized, "http://") && !strings.HasPrefix(normalized, "https://") {
		normalized = "https://" + normalized
	}

	return normalized
}
