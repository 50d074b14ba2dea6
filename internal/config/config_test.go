package config_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartcarbon/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "tesseract", cfg.OCR.Provider)
	assert.Equal(t, "eng", cfg.OCR.Lang)
	assert.Equal(t, "gemini", cfg.Insights.PrimaryConfig().Provider)
	assert.Nil(t, cfg.Insights.SecondaryConfig())
	assert.Nil(t, cfg.Insights.TertiaryConfig())
	assert.Equal(t, "noop", cfg.Storage.Provider)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes())
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SMARTCARBON_SERVER_PORT", ":9090")
	t.Setenv("PORT", "7000")
	t.Setenv("SMARTCARBON_INSIGHTS_SECONDARY_PROVIDER", "openai")
	t.Setenv("SMARTCARBON_INSIGHTS_SECONDARY_API_KEY", "sk-test")
	t.Setenv("SMARTCARBON_CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("SMARTCARBON_OCR_PROVIDER", "noop")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	secondary := cfg.Insights.SecondaryConfig()
	require.NotNil(t, secondary)
	assert.Equal(t, "openai", secondary.Provider)
	assert.Equal(t, "sk-test", secondary.APIKey)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "noop", cfg.OCR.Provider)
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("SMARTCARBON_SERVER_PORT", "")
	t.Setenv("PORT", "7000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Port)
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer

	logger := config.NewLogger(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	logger.Info().Msg("hidden")
	logger.Warn().Str("component", "test").Msg("shown")

	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"component":"test"`)
}

func TestNewLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	logger := config.NewLogger(config.LogConfig{Level: "loud"}, &bytes.Buffer{})
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}
