package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("CLMS_API_URL", "http://clms.example.com:3001/api")
	t.Setenv("CLMS_UI_URL", "http://clms.example.com:3000")
	t.Setenv("CLMS_USERNAME", "librarian")
	t.Setenv("CLMS_PASSWORD", "secret")
	t.Setenv("CLMS_REQUEST_TIMEOUT", "5s")
	t.Setenv("CLMS_STARTUP_TIMEOUT", "1m")
	t.Setenv("CLMS_HEADLESS", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://clms.example.com:3001/api", cfg.APIBaseURL)
	assert.Equal(t, "http://clms.example.com:3000", cfg.UIBaseURL)
	assert.Equal(t, "librarian", cfg.Username)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, time.Second*5, cfg.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.StartupTimeout)
	assert.False(t, cfg.Headless)
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("CLMS_API_URL", "http://localhost:3001/api")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "admin", cfg.Username)
	assert.Equal(t, time.Second*10, cfg.RequestTimeout)
	assert.Equal(t, time.Second*30, cfg.StartupTimeout)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("non-http API URL", func(t *testing.T) {
		t.Setenv("CLMS_API_URL", "ftp://clms.example.com/api")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CLMS_API_URL")
	})

	t.Run("non-http UI URL", func(t *testing.T) {
		t.Setenv("CLMS_UI_URL", "localhost:3000")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CLMS_UI_URL")
	})

	t.Run("zero request timeout", func(t *testing.T) {
		t.Setenv("CLMS_REQUEST_TIMEOUT", "0s")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CLMS_REQUEST_TIMEOUT")
	})
}
