// Package config loads the confform settings from defaults, an optional YAML
// file, CONFFORM_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/goliatone/go-confform/pkg/client"
	"github.com/goliatone/go-confform/pkg/theming"
)

// EnvPrefix namespaces environment overrides, e.g. CONFFORM_API_BASE_URL.
const EnvPrefix = "CONFFORM"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	API     APIConfig     `mapstructure:"api"`
	Log     LogConfig     `mapstructure:"log"`
	Session SessionConfig `mapstructure:"session"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	MockAPI MockAPIConfig `mapstructure:"mockapi"`
}

type ServerConfig struct {
	Addr          string        `mapstructure:"addr"`
	ShutdownGrace time.Duration `mapstructure:"shutdown_grace"`
	FormPath      string        `mapstructure:"form_path"`
}

// APIConfig points at the external creation endpoint.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Path    string        `mapstructure:"path"`
	Timeout time.Duration `mapstructure:"timeout"`
	// Contract enables the outbound OpenAPI request check.
	Contract bool `mapstructure:"contract"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Human bool   `mapstructure:"human"`
}

// SessionConfig controls the per-browser form instances of the web UI.
type SessionConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	CookieName      string        `mapstructure:"cookie_name"`
	SecureCookie    bool          `mapstructure:"secure_cookie"`
}

type ThemeConfig struct {
	File    string `mapstructure:"file"`
	Name    string `mapstructure:"name"`
	Variant string `mapstructure:"variant"`
}

// MockAPIConfig configures the development stand-in for the endpoint.
type MockAPIConfig struct {
	Addr       string        `mapstructure:"addr"`
	Latency    time.Duration `mapstructure:"latency"`
	FailStatus int           `mapstructure:"fail_status"`
	FailReason string        `mapstructure:"fail_reason"`
}

var defaults = map[string]any{
	"server.addr":              ":8080",
	"server.shutdown_grace":    "10s",
	"server.form_path":         "/conferences/new",
	"api.base_url":             "http://localhost:8080",
	"api.path":                 client.DefaultPath,
	"api.timeout":              client.DefaultTimeout.String(),
	"api.contract":             false,
	"log.level":                "info",
	"log.human":                false,
	"session.ttl":              "30m",
	"session.cleanup_interval": "5m",
	"session.cookie_name":      "confform_session",
	"session.secure_cookie":    false,
	"theme.file":               "",
	"theme.name":               "",
	"theme.variant":            "",
	"mockapi.addr":             ":8081",
	"mockapi.latency":          "0s",
	"mockapi.fail_status":      0,
	"mockapi.fail_reason":      "",
}

// New returns a viper instance with defaults and environment lookups set up.
// Callers may bind flags to it before Load.
func New() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path when non-empty, then decodes and validates the settings.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = New()
	}
	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if !strings.HasPrefix(c.Server.FormPath, "/") {
		errs = append(errs, errors.New("server.form_path must start with /"))
	}
	if c.Server.ShutdownGrace < 0 {
		errs = append(errs, errors.New("server.shutdown_grace must not be negative"))
	}

	if u, err := url.Parse(c.API.BaseURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, fmt.Errorf("api.base_url %q must be an absolute http(s) URL", c.API.BaseURL))
	}
	if c.API.Timeout <= 0 {
		errs = append(errs, errors.New("api.timeout must be positive"))
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("session.ttl must be positive"))
	}
	if strings.TrimSpace(c.Session.CookieName) == "" {
		errs = append(errs, errors.New("session.cookie_name is required"))
	}

	if c.MockAPI.FailStatus != 0 && (c.MockAPI.FailStatus < 400 || c.MockAPI.FailStatus > 599) {
		errs = append(errs, fmt.Errorf("mockapi.fail_status %d is not an error status", c.MockAPI.FailStatus))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Resolve builds the renderer theme. A configured manifest file is registered
// next to the embedded theme and selected when no name is given.
func (t ThemeConfig) Resolve() (*theme.RendererConfig, error) {
	catalog := theming.NewCatalog()
	name := t.Name
	if t.File != "" {
		manifest, err := theming.LoadManifestFile(t.File)
		if err != nil {
			return nil, fmt.Errorf("config: theme: %w", err)
		}
		if err := catalog.Register(manifest); err != nil {
			return nil, fmt.Errorf("config: theme: %w", err)
		}
		if name == "" {
			name = manifest.Name
		}
	}
	cfg, err := catalog.Resolve(name, t.Variant)
	if err != nil {
		return nil, fmt.Errorf("config: theme: %w", err)
	}
	return cfg, nil
}
