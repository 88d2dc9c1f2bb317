package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.False(t, b.hasDefaults)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceOverrides verifies that a non-zero field of a later
// config wins while zero fields keep the earlier value.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{BaseURL: "http://first", RequestTimeout: time.Second}},
		&StructuredConfig{Adapter: Adapter{BaseURL: "http://second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://second", cfg.Adapter.BaseURL)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

// TestBuild_InvalidLogLevel verifies that the merged config is validated.
func TestBuild_InvalidLogLevel(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Log: Log{Level: "shouting"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsEverything(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultServerRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestWithDefaults_AlwaysLowestPriority(t *testing.T) {
	cfg, err := newConfigBuilder().
		withFlags(&StructuredConfig{Adapter: Adapter{BaseURL: "http://flag"}}).
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "http://flag", cfg.Adapter.BaseURL)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_NilIsIgnored(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPath verifies that withJSON is a no-op without a path.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_SitsBelowFlags verifies that JSON values override defaults but
// are themselves overridden by flags.
func TestWithJSON_SitsBelowFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{
			"base_url":        "http://from-json",
			"request_timeout": "3s",
		},
		"log": map[string]any{"level": "error"},
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags(&StructuredConfig{JSONFilePath: path, Log: Log{Level: "debug"}}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "http://from-json", cfg.Adapter.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// TestWithJSON_MissingFile verifies that an unreadable file is reported.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder().
		withFlags(&StructuredConfig{JSONFilePath: "/definitely/not/here.json"}).
		withJSON()

	require.Error(t, b.err)

	_, err := b.build()
	assert.Error(t, err)
}

// ── GetClientConfig / GetServerConfig ─────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_EnvThenOverrides(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_BASE_URL":        "http://from-env",
		"ADAPTER_REQUEST_TIMEOUT": "2s",
	})

	cfg, err := GetClientConfig(&StructuredConfig{Adapter: Adapter{BaseURL: "http://from-flag"}})
	require.NoError(t, err)

	assert.Equal(t, "http://from-flag", cfg.Adapter.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_NegativeTimeout(t *testing.T) {
	_, err := GetClientConfig(&StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestGetServerConfig_FromArgs(t *testing.T) {
	cfg, err := GetServerConfig([]string{"-a", "127.0.0.1:8181", "-d", "memory"})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8181", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultServerRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, "memory", cfg.Storage.DB.DSN)
}

func TestGetServerConfig_MissingSeedFile(t *testing.T) {
	_, err := GetServerConfig([]string{"-seed", "/no/such/seed.yaml"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestGetServerConfig_BadFlag(t *testing.T) {
	_, err := GetServerConfig([]string{"-a", "bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}
