package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPListenAddr)
	assert.Equal(t, ":9090", cfg.MetricsListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "accountdesk", cfg.ServiceName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_LISTEN_ADDR", ":3000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATABASE_URL", "postgres://localhost/accounts")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.HTTPListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "postgres://localhost/accounts", cfg.DatabaseURL)
}

func TestValidate_MissingDatabaseURL(t *testing.T) {
	cfg := &Config{SessionSecret: "s"}
	assert.ErrorContains(t, cfg.Validate(), "DATABASE_URL")
}

func TestValidate_MissingSessionSecret(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://localhost/accounts"}
	assert.ErrorContains(t, cfg.Validate(), "SESSION_SECRET")
}

func TestValidate_OK(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://localhost/accounts", SessionSecret: "s"}
	assert.NoError(t, cfg.Validate())
}
