package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)

	assert.Equal(t, 6, cfg.OTP.Length)
	assert.Equal(t, 5, cfg.OTP.TTLMinutes)
	assert.Equal(t, 5, cfg.OTP.MaxAttempts)
	assert.Equal(t, 60, cfg.JWT.TTL)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxSize)
	assert.Equal(t, "./uploads", cfg.Storage.BasePath)
	// The default must match the static mount the router serves uploads
	// from, or every stored upload URL would 404.
	assert.Equal(t, "/files", cfg.Storage.BaseURL)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	var cfg Config
	cfg.OTP.Length = 4
	cfg.Storage.BaseURL = "https://cdn.haatbazarjobs.com/uploads"
	applyDefaults(&cfg)

	assert.Equal(t, 4, cfg.OTP.Length)
	assert.Equal(t, "https://cdn.haatbazarjobs.com/uploads", cfg.Storage.BaseURL)
}
