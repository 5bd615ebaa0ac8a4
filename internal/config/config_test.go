package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "travel_planner", cfg.Database.Name)
	assert.Equal(t, "gpt-4", cfg.LLM.Model)
	assert.Equal(t, 0.7, cfg.LLM.Temperature)
	assert.Equal(t, "https://api.mapbox.com", cfg.Mapbox.BaseURL)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.AccessTokenTTL)

	assert.False(t, cfg.IsLLMConfigured())
	assert.False(t, cfg.IsGoogleOAuthConfigured())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsLLMConfigured())
	assert.Equal(t, 0.2, cfg.LLM.Temperature)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestValidateRequiresDBPassword(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())
}

func TestGetDSN(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_USER", "planner")
	t.Setenv("DB_NAME", "plans")

	cfg, err := Load()
	require.NoError(t, err)

	dsn := cfg.GetDSN()
	assert.Contains(t, dsn, "postgres://planner:secret@")
	assert.Contains(t, dsn, "/plans?")
}
