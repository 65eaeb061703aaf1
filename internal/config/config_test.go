package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scribekit/scribe/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 0, cfg.Server.WriteTimeout)
		require.Equal(t, 1000, cfg.Quota.Floor)
		require.Equal(t, 25000, cfg.Quota.TrialLimit)
		require.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenAI.BaseURL)
		require.Equal(t, "moonshotai/kimi-k2-thinking", cfg.OpenAI.Model)
		require.InEpsilon(t, 0.7, cfg.OpenAI.Temperature, 0.0001)
		require.Equal(t, 300, cfg.OpenAI.Timeout)
		require.Equal(t, 3, cfg.OpenAI.MaxRetries)
		require.Empty(t, cfg.OpenAI.APIKey)
		require.Equal(t, "localhost:6379", cfg.Redis.Addr)
		require.Equal(t, 0, cfg.Redis.DB)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("SERVER_READ_TIMEOUT", "60")
		t.Setenv("QUOTA_FLOOR", "500")
		t.Setenv("QUOTA_TRIAL_LIMIT", "50000")
		t.Setenv("OPENAI_API_KEY", "sk-test-key")
		t.Setenv("OPENAI_BASE_URL", "https://api.openai.com/v1")
		t.Setenv("OPENAI_MODEL", "gpt-4")
		t.Setenv("OPENAI_TEMPERATURE", "0.2")
		t.Setenv("REDIS_ADDR", "redis:6379")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, 60, cfg.Server.ReadTimeout)
		require.Equal(t, 500, cfg.Quota.Floor)
		require.Equal(t, 50000, cfg.Quota.TrialLimit)
		require.Equal(t, "sk-test-key", cfg.OpenAI.APIKey)
		require.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
		require.Equal(t, "gpt-4", cfg.OpenAI.Model)
		require.InEpsilon(t, 0.2, cfg.OpenAI.Temperature, 0.0001)
		require.Equal(t, "redis:6379", cfg.Redis.Addr)
	})
}
