package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.False(t, cfg.IsDev)
	assert.Equal(t, AuthModePassword, cfg.Auth.Mode)
	assert.Equal(t, 168*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 168*time.Hour, cfg.Auth.RememberTTL)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "firequiz", cfg.Postgres.Name)
	assert.True(t, cfg.Postgres.RunMigrationsOnStart)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, time.Hour, cfg.Reaper.Interval)

	assert.True(t, cfg.IsHTTPServerEnabled())
	assert.True(t, cfg.IsReaperEnabled())
}

func TestAppConfig_EnvOverrides(t *testing.T) {
	t.Setenv("AUTH_MODE", "oidc")
	t.Setenv("AUTH_SESSION_TTL", "24h")
	t.Setenv("OIDC_CLIENT_ID", "firequiz")
	t.Setenv("OIDC_ADMIN_GROUP", "quiz-admins")
	t.Setenv("DB_PORT", "55432")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("SERVICES", "http")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, AuthModeOIDC, cfg.Auth.Mode)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "firequiz", cfg.Auth.OIDC.ClientID)
	assert.Equal(t, "quiz-admins", cfg.Auth.OIDC.AdminGroup)
	assert.Equal(t, 55432, cfg.Postgres.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.True(t, cfg.IsHTTPServerEnabled())
	assert.False(t, cfg.IsReaperEnabled())
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.True(t, cfg.IsDev)
}

func TestAuthMode_UnmarshalText(t *testing.T) {
	var m AuthMode
	require.NoError(t, m.UnmarshalText([]byte("OIDC")))
	assert.Equal(t, AuthModeOIDC, m)

	assert.Error(t, m.UnmarshalText([]byte("ldap")))
}

func TestAuthConfig_SanitizeClampsTTLs(t *testing.T) {
	a := AuthConfig{SessionTTL: -time.Hour, RememberTTL: 0}
	a.Sanitize()
	assert.Equal(t, 168*time.Hour, a.SessionTTL)
	assert.Equal(t, 168*time.Hour, a.RememberTTL)
}

func TestOIDCConfig_Validate(t *testing.T) {
	cfg := OIDCConfig{ClientID: "id", ClientSecret: "secret", IssuerURL: "https://idp.example.com"}
	assert.NoError(t, cfg.Validate())

	for _, clear := range []func(*OIDCConfig){
		func(c *OIDCConfig) { c.ClientID = "" },
		func(c *OIDCConfig) { c.ClientSecret = "" },
		func(c *OIDCConfig) { c.IssuerURL = "" },
	} {
		broken := cfg
		clear(&broken)
		assert.Error(t, broken.Validate())
	}
}

func TestParseServices(t *testing.T) {
	services, err := ParseServices("http, reaper")
	require.NoError(t, err)
	assert.True(t, services[ServiceModeHTTP])
	assert.True(t, services[ServiceModeReaper])

	_, err = ParseServices("")
	assert.Error(t, err)

	_, err = ParseServices("http,scheduler")
	assert.Error(t, err)

	_, err = ParseServices(" , ")
	assert.Error(t, err)
}
