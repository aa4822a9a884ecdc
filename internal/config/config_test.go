package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Empty path yields empty config", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, &Config{}, cfg)
	})

	t.Run("Valid JSON file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		content := `{"gemini_api_key":"key123","database_url":"postgres://localhost/hirelens","port":9000}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "key123", cfg.GeminiAPIKey)
		assert.Equal(t, "postgres://localhost/hirelens", cfg.DatabaseURL)
		assert.Equal(t, 9000, cfg.Port)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/config.json")
		assert.Error(t, err)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env/hirelens")
	t.Setenv("PORT", "7070")

	cfg := &Config{GeminiAPIKey: "file-key"}
	cfg.ApplyEnv()

	assert.Equal(t, "env-key", cfg.GeminiAPIKey, "environment should win over file")
	assert.Equal(t, "postgres://env/hirelens", cfg.DatabaseURL)
	assert.Equal(t, 7070, cfg.Port)
}

func TestValidate(t *testing.T) {
	t.Run("Missing API key is a configuration error", func(t *testing.T) {
		cfg := &Config{DatabaseURL: "postgres://localhost/hirelens"}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gemini API key")
	})

	t.Run("Missing database URL", func(t *testing.T) {
		cfg := &Config{GeminiAPIKey: "key"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("Defaults are filled", func(t *testing.T) {
		cfg := &Config{GeminiAPIKey: "key", DatabaseURL: "postgres://localhost/hirelens"}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, DefaultPort, cfg.Port)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
		assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	})

	t.Run("Port out of range", func(t *testing.T) {
		cfg := &Config{GeminiAPIKey: "key", DatabaseURL: "postgres://x", Port: 70000}
		assert.Error(t, cfg.Validate())
	})
}
