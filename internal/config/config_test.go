package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "/conferences/new", cfg.Server.FormPath)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownGrace)
	assert.Equal(t, "/api/conferences", cfg.API.Path)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "confform_session", cfg.Session.CookieName)
	assert.Zero(t, cfg.MockAPI.FailStatus)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := writeFile(t, "confform.yaml", `
server:
  addr: ":9090"
api:
  base_url: https://api.example.com
  timeout: 3s
  contract: true
log:
  level: debug
  human: true
mockapi:
  fail_status: 409
  fail_reason: Conference already exists
`)

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "https://api.example.com", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.API.Contract)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Human)
	assert.Equal(t, 409, cfg.MockAPI.FailStatus)
	assert.Equal(t, "Conference already exists", cfg.MockAPI.FailReason)
	assert.Equal(t, "/api/conferences", cfg.API.Path, "unset keys keep defaults")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFFORM_API_BASE_URL", "http://backend:3000")
	t.Setenv("CONFFORM_SESSION_TTL", "1h")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "http://backend:3000", cfg.API.BaseURL)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base, err := Load(New(), "")
	require.NoError(t, err)

	cases := map[string]func(*Config){
		"relative base url": func(c *Config) { c.API.BaseURL = "/api" },
		"zero timeout":      func(c *Config) { c.API.Timeout = 0 },
		"bad level":         func(c *Config) { c.Log.Level = "loud" },
		"empty addr":        func(c *Config) { c.Server.Addr = "" },
		"form path":         func(c *Config) { c.Server.FormPath = "conferences" },
		"ttl":               func(c *Config) { c.Session.TTL = 0 },
		"cookie":            func(c *Config) { c.Session.CookieName = " " },
		"fail status":       func(c *Config) { c.MockAPI.FailStatus = 200 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestThemeConfig_Resolve(t *testing.T) {
	cfg, err := ThemeConfig{Variant: "dark"}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "confform", cfg.Theme)
	assert.Equal(t, "#60a5fa", cfg.CSSVars["--primary"])

	path := writeFile(t, "theme.yaml", `
name: acme
version: 1.0.0
tokens:
  primary: "#ff0000"
`)
	cfg, err = ThemeConfig{File: path}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "acme", cfg.Theme)
	assert.Equal(t, "#ff0000", cfg.CSSVars["--primary"])

	_, err = ThemeConfig{Name: "missing"}.Resolve()
	assert.Error(t, err)
}
