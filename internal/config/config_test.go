package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SWEEP_INTERVAL", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, time.Minute, cfg.SweepInterval)
	assert.Equal(t, 100, cfg.RateLimitMaxRequests)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", ":9090")
	t.Setenv("SWEEP_INTERVAL", "30s")
	t.Setenv("TWILIO_NUMBER", "+15005550006")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.ServerPort)
	assert.Equal(t, 30*time.Second, cfg.SweepInterval)
	assert.Equal(t, "+15005550006", cfg.TwilioNumber)
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("SWEEP_INTERVAL", "not-a-duration")

	cfg := Load()

	assert.Equal(t, time.Minute, cfg.SweepInterval)
}
