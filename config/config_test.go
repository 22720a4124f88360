package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/effective-security/transend-mcp/config"
	"github.com/effective-security/xlog"
	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(context.Background(), "", envconfig.MapLookuper(nil))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultServerName, cfg.Server.Name)
	assert.Equal(t, config.Version, cfg.Server.Version)
	assert.Equal(t, config.PlaceholderAPIKey, cfg.Transend.APIKey)
	assert.Equal(t, config.PlaceholderAPIToken, cfg.Transend.APIToken)
	assert.Empty(t, cfg.Transend.BaseURL)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, xlog.INFO, cfg.Level())

	cc := cfg.ClientConfig()
	assert.Equal(t, config.PlaceholderAPIKey, cc.APIKey)
	assert.Zero(t, cc.Timeout)
	assert.Zero(t, cc.RetryMax)
}

func TestLoad_File(t *testing.T) {
	cfg, err := config.Load(context.Background(), "testdata/transend-mcp.yaml", envconfig.MapLookuper(nil))
	require.NoError(t, err)

	assert.Equal(t, "transend", cfg.Server.Name)
	assert.Equal(t, "Tools for the Transend business API.", cfg.Server.Instructions)
	assert.Equal(t, "https://staging.transend.us", cfg.Transend.BaseURL)
	assert.Equal(t, "file-key", cfg.Transend.APIKey)
	// not in the file
	assert.Equal(t, config.PlaceholderAPIToken, cfg.Transend.APIToken)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, xlog.DEBUG, cfg.Level())

	cc := cfg.ClientConfig()
	assert.Equal(t, 30*time.Second, cc.Timeout)
	assert.Equal(t, 2, cc.RetryMax)
}

func TestLoad_Env(t *testing.T) {
	env := envconfig.MapLookuper(map[string]string{
		"TRANSEND_API_KEY":   "env-key",
		"TRANSEND_API_TOKEN": "env-token",
		"TRANSEND_BASE_URL":  "http://localhost:8080",
		"TRANSEND_LOG_LEVEL": "warning",
		"TRANSEND_TIMEOUT":   "5",
		"TRANSEND_RETRY_MAX": "3",
	})
	cfg, err := config.Load(context.Background(), "testdata/transend-mcp.yaml", env)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Transend.APIKey)
	assert.Equal(t, "env-token", cfg.Transend.APIToken)
	assert.Equal(t, "http://localhost:8080", cfg.Transend.BaseURL)
	assert.Equal(t, xlog.WARNING, cfg.Level())
	assert.Equal(t, config.Duration(5*time.Second), cfg.Transend.Timeout)
	assert.Equal(t, 3, cfg.Transend.RetryMax)
	// from the file
	assert.Equal(t, "transend", cfg.Server.Name)
}

func TestLoad_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := config.Load(ctx, "testdata/non-existent.yaml", envconfig.MapLookuper(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config testdata/non-existent.yaml")

	_, err = config.Load(ctx, "testdata/invalid.yaml", envconfig.MapLookuper(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "BaseURL")
	assert.Contains(t, err.Error(), "RetryMax")

	_, err = config.Load(ctx, "", envconfig.MapLookuper(map[string]string{"TRANSEND_LOG_LEVEL": "LOUD"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LogLevel")

	_, err = config.Load(ctx, "", envconfig.MapLookuper(map[string]string{"TRANSEND_TIMEOUT": "soon"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to process environment")
}

func TestDuration(t *testing.T) {
	var d config.Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, "1m30s", d.String())
	require.NoError(t, d.UnmarshalText([]byte("10")))
	assert.Equal(t, config.Duration(10*time.Second), d)
	require.NoError(t, d.UnmarshalText(nil))
	assert.Zero(t, d)
	assert.EqualError(t, d.UnmarshalText([]byte("soon")), `invalid duration: "soon"`)

	txt, err := config.Duration(time.Minute).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m0s", string(txt))
}
