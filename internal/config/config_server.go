package config

import (
	"fmt"
)

// ServerConfig is the fixture server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// Server contains the listen address and timeouts.
	Server Server
	// Storage contains the backend DSN and seed file.
	Storage Storage
	// Log contains logging settings.
	Log Log
}

// GetServerConfig parses args as command-line flags (see [ParseFlags]),
// merges them with the other sources and validates the server view.
func GetServerConfig(args []string) (*ServerConfig, error) {
	flags, err := ParseFlags(args)
	if err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Server:  cfg.Server,
		Storage: cfg.Storage,
		Log:     cfg.Log,
	}

	return serverCfg, serverCfg.validate()
}
