package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("PORT", "")

	// Clear PORT so the default applies
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "tradecenter", cfg.DBName)
	assert.Equal(t, "test-key", cfg.APIKey)
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{
		DBUser:     "u",
		DBPassword: "p",
		DBHost:     "db",
		DBPort:     "5432",
		DBName:     "tradecenter",
	}

	assert.Equal(t, "postgres://u:p@db:5432/tradecenter", cfg.DatabaseURL())
}
