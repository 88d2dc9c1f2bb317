package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.addr.String()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedHost string
		expectedPort int
	}{
		{name: "localhost", input: "localhost:8080", expectedHost: "localhost", expectedPort: 8080},
		{name: "ipv4", input: "127.0.0.1:9000", expectedHost: "127.0.0.1", expectedPort: 9000},
		{name: "all interfaces", input: ":8080", expectedHost: "", expectedPort: 8080},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "hostname that is not an IP", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedHost, addr.Host)
			assert.Equal(t, tt.expectedPort, addr.Port)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:9999",
		"-d", "memory",
		"-seed", "seed.yaml",
		"-config", "cfg.json",
		"-request-timeout", "15s",
		"-log-level", "warn",
	})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "memory", cfg.Storage.DB.DSN)
	assert.Equal(t, "seed.yaml", cfg.Storage.SeedFile)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := ParseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "short.json"})

	require.NoError(t, err)
	assert.Equal(t, "short.json", cfg.JSONFilePath)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nowhere"})
	require.Error(t, err)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-grpc-address", "localhost:9090"})
	require.Error(t, err)
}
