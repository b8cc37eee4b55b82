package env

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var chatEnv = []string{
	"POLL_INTERVAL",
	"SCROLL_THRESHOLD",
	"VIEWPORT_HEIGHT",
	"REGISTER_REDIRECT_DELAY",
	"HTTP_TIMEOUT",
	"SESSION_FILE",
}

// unsetEnv removes keys for the duration of the test and restores them after.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestNewChatConfig(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("POLL_INTERVAL", "5s")
		t.Setenv("SESSION_FILE", "/elsewhere")
		unsetEnv(t, chatEnv...)

		cfg, err := NewChatConfig()
		req.NoError(err)

		req.Equal(time.Second, cfg.PollInterval())
		req.Equal(3, cfg.ScrollThreshold())
		req.Equal(20, cfg.ViewportHeight())
		req.Equal(2*time.Second, cfg.RegisterRedirectDelay())
		req.Equal(10*time.Second, cfg.HTTPTimeout())
		req.Equal(".vupp-session", cfg.SessionFile())
	})

	t.Run("should read overrides", func(t *testing.T) {
		req := require.New(t)
		unsetEnv(t, chatEnv...)
		t.Setenv("POLL_INTERVAL", "250ms")
		t.Setenv("SESSION_FILE", "/tmp/s")

		cfg, err := NewChatConfig()
		req.NoError(err)
		req.Equal(250*time.Millisecond, cfg.PollInterval())
		req.Equal("/tmp/s", cfg.SessionFile())
	})

	t.Run("should reject a zero poll interval", func(t *testing.T) {
		unsetEnv(t, chatEnv...)
		t.Setenv("POLL_INTERVAL", "0s")

		_, err := NewChatConfig()
		require.Error(t, err)
	})
}

func TestAddresses(t *testing.T) {
	t.Run("should default to the local services", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("API_HOST", "")
		t.Setenv("ENCRYPT_PORT", "")

		api, err := NewAPIClientConfig()
		req.NoError(err)
		req.Equal("localhost:8080", api.Address())

		enc, err := NewEncryptionClientConfig()
		req.NoError(err)
		req.Equal("localhost:8000", enc.Address())
	})

	t.Run("should leave jaeger off when unset", func(t *testing.T) {
		t.Setenv("JAEGER_HOST", "")

		_, err := NewJaegerConfig()
		require.ErrorIs(t, err, ErrJaegerNotConfigured)
	})
}
