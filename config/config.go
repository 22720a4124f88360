// Package config loads the server configuration
// from an optional YAML file and the environment.
package config

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/transend-mcp/transend"
	"github.com/effective-security/x/configloader"
	"github.com/effective-security/xlog"
	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
)

const (
	// DefaultServerName is reported to MCP clients
	DefaultServerName = "transend-mcp"
	// PlaceholderAPIKey is used when TRANSEND_API_KEY is not set,
	// the API rejects it on the first call.
	PlaceholderAPIKey = "your_api_key_here"
	// PlaceholderAPIToken is used when TRANSEND_API_TOKEN is not set
	PlaceholderAPIToken = "your_api_token_here"
)

// Version is set at build time
var Version = "dev"

// Config of the server
type Config struct {
	Server   Server   `json:"server" yaml:"server"`
	Transend Transend `json:"transend" yaml:"transend"`
	// LogLevel is one of TRACE, DEBUG, INFO, NOTICE, WARNING, ERROR, CRITICAL
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty" env:"TRANSEND_LOG_LEVEL, default=INFO" validate:"oneof=TRACE DEBUG INFO NOTICE WARNING ERROR CRITICAL"`
}

// Server specifies the MCP server identity
type Server struct {
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
	Version      string `json:"version,omitempty" yaml:"version,omitempty"`
	Instructions string `json:"instructions,omitempty" yaml:"instructions,omitempty"`
}

// Transend specifies the API endpoint and credentials
type Transend struct {
	BaseURL  string `json:"base_url,omitempty" yaml:"base_url,omitempty" env:"TRANSEND_BASE_URL" validate:"omitempty,url"`
	APIKey   string `json:"api_key,omitempty" yaml:"api_key,omitempty" env:"TRANSEND_API_KEY, default=your_api_key_here"`
	APIToken string `json:"api_token,omitempty" yaml:"api_token,omitempty" env:"TRANSEND_API_TOKEN, default=your_api_token_here"`
	// Timeout of one HTTP attempt, zero means no timeout
	Timeout  Duration `json:"timeout,omitempty" yaml:"timeout,omitempty" env:"TRANSEND_TIMEOUT" validate:"gte=0"`
	RetryMax int      `json:"retry_max,omitempty" yaml:"retry_max,omitempty" env:"TRANSEND_RETRY_MAX" validate:"gte=0,lte=10"`
}

// Load returns the configuration from the file, if provided,
// with values from the environment taking precedence.
// Lookuper defaults to the process environment.
func Load(ctx context.Context, file string, lookuper envconfig.Lookuper) (*Config, error) {
	cfg := new(Config)
	if file != "" {
		if err := configloader.UnmarshalAndExpand(file, cfg); err != nil {
			return nil, errors.WithMessagef(err, "failed to load config %s", file)
		}
	}

	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:           cfg,
		Lookuper:         lookuper,
		DefaultOverwrite: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to process environment")
	}

	if cfg.Server.Name == "" {
		cfg.Server.Name = DefaultServerName
	}
	if cfg.Server.Version == "" {
		cfg.Server.Version = Version
	}
	cfg.LogLevel = strings.ToUpper(cfg.LogLevel)

	if err = validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// ClientConfig returns the API client configuration
func (c *Config) ClientConfig() transend.Config {
	return transend.Config{
		BaseURL:  c.Transend.BaseURL,
		APIKey:   c.Transend.APIKey,
		APIToken: c.Transend.APIToken,
		Timeout:  time.Duration(c.Transend.Timeout),
		RetryMax: c.Transend.RetryMax,
	}
}

var levels = map[string]xlog.LogLevel{
	"TRACE":    xlog.TRACE,
	"DEBUG":    xlog.DEBUG,
	"INFO":     xlog.INFO,
	"NOTICE":   xlog.NOTICE,
	"WARNING":  xlog.WARNING,
	"ERROR":    xlog.ERROR,
	"CRITICAL": xlog.CRITICAL,
}

// Level returns the log level, INFO if not set
func (c *Config) Level() xlog.LogLevel {
	if l, ok := levels[strings.ToUpper(c.LogLevel)]; ok {
		return l
	}
	return xlog.INFO
}
