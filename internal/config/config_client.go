package config

import (
	"fmt"
	"maps"
	"time"
)

// ClientAdapter holds the settings used by the resource client transport.
type ClientAdapter struct {
	// BaseURL is the endpoint of the remote resource service.
	BaseURL string
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration
	// Headers are extra default headers.
	Headers map[string]string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the resource client settings.
	Adapter ClientAdapter
	// Log contains logging settings.
	Log Log
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. overrides carries values taken from the
// command line and may be nil.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Headers:        maps.Clone(cfg.Adapter.Headers),
		},
		Log: cfg.Log,
	}

	return clientCfg, clientCfg.validate()
}
