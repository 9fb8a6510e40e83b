package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		StorageBucket:    "devfolio",
		StoragePublicURL: "https://cdn.example.com/storage/v1/object/public/devfolio",
		AdminPassKey:     "open-sesame",
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	c := validConfig()
	c.StorageBucket = ""
	assert.Error(t, c.Validate())

	c = validConfig()
	c.StoragePublicURL = ""
	assert.Error(t, c.Validate())

	c = validConfig()
	c.AdminPassKey = ""
	assert.Error(t, c.Validate())

	// a hash alone is enough
	c.AdminPassKeyHash = "$2a$10$abcdefghijklmnopqrstuv"
	assert.NoError(t, c.Validate())
}

func TestDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "admin-token", cfg.AdminCookieName)
	assert.Equal(t, 7*24*time.Hour, cfg.AdminTokenDuration)
	assert.Equal(t, 6, cfg.BlogPageSize)
	assert.Equal(t, 12, cfg.PortfolioPageSize)
	assert.Equal(t, int64(30*1024*1024), cfg.UploadMaxFileSize)
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("TEST_ORIGINS", "https://a.example.com,https://b.example.com")
	assert.Equal(t,
		[]string{"https://a.example.com", "https://b.example.com"},
		getEnvAsSlice("TEST_ORIGINS", nil))

	assert.Equal(t, []string{"fallback"}, getEnvAsSlice("TEST_ORIGINS_UNSET", []string{"fallback"}))
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "30m")
	assert.Equal(t, 30*time.Minute, getEnvAsDuration("TEST_DURATION", "1h"))

	t.Setenv("TEST_DURATION_BAD", "soon")
	assert.Equal(t, time.Hour, getEnvAsDuration("TEST_DURATION_BAD", "1h"))
}
