package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig carries the settings applied once to a new [HTTPClient].
type HTTPClientConfig struct {
	// BaseURL is prepended to every relative request path.
	BaseURL string

	// Timeout bounds every request issued by the client. Zero disables it.
	Timeout time.Duration

	// Headers are sent with every request unless overridden per request.
	Headers map[string]string
}

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientConfig{BaseURL: "https://example.com"})
//	resp, err := client.R().Get("/posts/1")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient configured from cfg.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. Retries are disabled: a failed
// request is reported to the caller exactly once.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientConfig{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 10 * time.Second,
//	    Headers: map[string]string{"Accept": "application/json"},
//	})
//	resp, err := client.R().Get("/users/1")
func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetTimeout(cfg.Timeout)

	if cfg.BaseURL != "" {
		client.SetBaseURL(cfg.BaseURL)
	}
	if len(cfg.Headers) > 0 {
		client.SetHeaders(cfg.Headers)
	}

	return &HTTPClient{Client: client}
}
