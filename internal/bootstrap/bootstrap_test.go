package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casernelab/firequiz/config"
)

func TestValidateServiceConfig(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		require.Error(t, ValidateServiceConfig(nil))
	})

	t.Run("valid password mode", func(t *testing.T) {
		cfg := &config.AppConfig{Services: "http,reaper"}
		cfg.Auth.Mode = config.AuthModePassword
		require.NoError(t, ValidateServiceConfig(cfg))
	})

	t.Run("unknown service name", func(t *testing.T) {
		cfg := &config.AppConfig{Services: "http,scheduler"}
		err := ValidateServiceConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid service configuration")
	})

	t.Run("empty service list", func(t *testing.T) {
		cfg := &config.AppConfig{Services: ""}
		require.Error(t, ValidateServiceConfig(cfg))
	})

	t.Run("oidc mode requires issuer settings", func(t *testing.T) {
		cfg := &config.AppConfig{Services: "http"}
		cfg.Auth.Mode = config.AuthModeOIDC
		err := ValidateServiceConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid auth configuration")
	})
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("SERVICES", "http")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("AUTH_SESSION_TTL", "-5m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http", cfg.Services)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	// Sanitize clamps nonsense TTLs back to the default.
	assert.Positive(t, cfg.Auth.SessionTTL)
}

func TestNewServices(t *testing.T) {
	t.Run("nil deps", func(t *testing.T) {
		_, err := NewServices(nil)
		require.Error(t, err)
	})

	t.Run("password mode skips the sso stack", func(t *testing.T) {
		cfg := &config.AppConfig{}
		cfg.Auth.Mode = config.AuthModePassword

		container, err := NewServices(&ServiceDeps{Config: cfg})
		require.NoError(t, err)

		assert.NotNil(t, container.Auth)
		assert.NotNil(t, container.Users)
		assert.NotNil(t, container.Quizzes)
		assert.NotNil(t, container.GameSessions)
		assert.Nil(t, container.SSO)
	})
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.AppConfig{}
	container, err := NewServices(&ServiceDeps{Config: cfg})
	require.NoError(t, err)

	t.Run("default addr", func(t *testing.T) {
		server := NewHTTPServer(&HTTPServerConfig{Config: cfg, Services: container})
		require.NotNil(t, server)
		assert.Equal(t, ":8080", server.Addr)
		assert.NotNil(t, server.Handler)
	})

	t.Run("configured addr", func(t *testing.T) {
		custom := &config.AppConfig{}
		custom.HTTP.Addr = ":3000"
		server := NewHTTPServer(&HTTPServerConfig{Config: custom, Services: container})
		assert.Equal(t, ":3000", server.Addr)
	})
}

func TestShutdownHTTPServer_NilServer(t *testing.T) {
	require.NoError(t, ShutdownHTTPServer(ShutdownConfig{}))
}
