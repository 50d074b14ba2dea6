package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	CORS     CORSConfig
	Upload   UploadConfig
	OCR      OCRConfig
	Insights InsightsConfig
	Storage  StorageConfig
	S3       S3Config
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig limits bill images accepted for extraction.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxBytes returns the upload limit in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB << 20
}

// OCRConfig selects and tunes the text recognizer.
type OCRConfig struct {
	Provider    string `mapstructure:"provider"`
	Binary      string `mapstructure:"binary"`
	Lang        string `mapstructure:"lang"`
	TessdataDir string `mapstructure:"tessdata_dir"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// InsightProviderConfig holds settings for a single language model provider.
type InsightProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	BaseURL      string `mapstructure:"base_url"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// InsightsConfig holds the ordered provider chain for AI insights.
type InsightsConfig struct {
	Primary   InsightProviderConfig `mapstructure:"primary"`
	Secondary InsightProviderConfig `mapstructure:"secondary"`
	Tertiary  InsightProviderConfig `mapstructure:"tertiary"`
}

// PrimaryConfig returns the primary provider config.
func (c *InsightsConfig) PrimaryConfig() *InsightProviderConfig {
	return &c.Primary
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (c *InsightsConfig) SecondaryConfig() *InsightProviderConfig {
	if c.Secondary.Provider != "" {
		return &c.Secondary
	}
	return nil
}

// TertiaryConfig returns the tertiary provider config, or nil if not configured.
func (c *InsightsConfig) TertiaryConfig() *InsightProviderConfig {
	if c.Tertiary.Provider != "" {
		return &c.Tertiary
	}
	return nil
}

// StorageConfig selects where uploaded bill images are archived.
type StorageConfig struct {
	Provider string `mapstructure:"provider"`
	Prefix   string `mapstructure:"prefix"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

var envBindings = map[string]string{
	"server.port":                      "SMARTCARBON_SERVER_PORT",
	"server.read_timeout":              "SMARTCARBON_SERVER_READ_TIMEOUT",
	"server.write_timeout":             "SMARTCARBON_SERVER_WRITE_TIMEOUT",
	"server.environment":               "SMARTCARBON_SERVER_ENVIRONMENT",
	"log.level":                        "SMARTCARBON_LOG_LEVEL",
	"log.format":                       "SMARTCARBON_LOG_FORMAT",
	"cors.allowed_origins":             "SMARTCARBON_CORS_ALLOWED_ORIGINS",
	"upload.max_file_size_mb":          "SMARTCARBON_UPLOAD_MAX_FILE_SIZE_MB",
	"ocr.provider":                     "SMARTCARBON_OCR_PROVIDER",
	"ocr.binary":                       "SMARTCARBON_OCR_BINARY",
	"ocr.lang":                         "SMARTCARBON_OCR_LANG",
	"ocr.tessdata_dir":                 "SMARTCARBON_OCR_TESSDATA_DIR",
	"ocr.timeout_secs":                 "SMARTCARBON_OCR_TIMEOUT_SECS",
	"insights.primary.provider":        "SMARTCARBON_INSIGHTS_PRIMARY_PROVIDER",
	"insights.primary.api_key":         "SMARTCARBON_INSIGHTS_PRIMARY_API_KEY",
	"insights.primary.default_model":   "SMARTCARBON_INSIGHTS_PRIMARY_DEFAULT_MODEL",
	"insights.primary.base_url":        "SMARTCARBON_INSIGHTS_PRIMARY_BASE_URL",
	"insights.primary.timeout_secs":    "SMARTCARBON_INSIGHTS_PRIMARY_TIMEOUT_SECS",
	"insights.secondary.provider":      "SMARTCARBON_INSIGHTS_SECONDARY_PROVIDER",
	"insights.secondary.api_key":       "SMARTCARBON_INSIGHTS_SECONDARY_API_KEY",
	"insights.secondary.default_model": "SMARTCARBON_INSIGHTS_SECONDARY_DEFAULT_MODEL",
	"insights.secondary.base_url":      "SMARTCARBON_INSIGHTS_SECONDARY_BASE_URL",
	"insights.secondary.timeout_secs":  "SMARTCARBON_INSIGHTS_SECONDARY_TIMEOUT_SECS",
	"insights.tertiary.provider":       "SMARTCARBON_INSIGHTS_TERTIARY_PROVIDER",
	"insights.tertiary.api_key":        "SMARTCARBON_INSIGHTS_TERTIARY_API_KEY",
	"insights.tertiary.default_model":  "SMARTCARBON_INSIGHTS_TERTIARY_DEFAULT_MODEL",
	"insights.tertiary.base_url":       "SMARTCARBON_INSIGHTS_TERTIARY_BASE_URL",
	"insights.tertiary.timeout_secs":   "SMARTCARBON_INSIGHTS_TERTIARY_TIMEOUT_SECS",
	"storage.provider":                 "SMARTCARBON_STORAGE_PROVIDER",
	"storage.prefix":                   "SMARTCARBON_STORAGE_PREFIX",
	"s3.region":                        "SMARTCARBON_S3_REGION",
	"s3.bucket":                        "SMARTCARBON_S3_BUCKET",
	"s3.endpoint":                      "SMARTCARBON_S3_ENDPOINT",
	"s3.access_key":                    "SMARTCARBON_S3_ACCESS_KEY",
	"s3.secret_key":                    "SMARTCARBON_S3_SECRET_KEY",
}

// Load reads configuration from environment variables with the SMARTCARBON_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SMARTCARBON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:8501")

	v.SetDefault("upload.max_file_size_mb", 10)

	// OCR defaults
	v.SetDefault("ocr.provider", "tesseract")
	v.SetDefault("ocr.binary", "tesseract")
	v.SetDefault("ocr.lang", "eng")
	v.SetDefault("ocr.tessdata_dir", "")
	v.SetDefault("ocr.timeout_secs", 30)

	// Insight provider defaults
	v.SetDefault("insights.primary.provider", "gemini")
	v.SetDefault("insights.primary.api_key", "")
	v.SetDefault("insights.primary.default_model", "gemini-2.5-flash")
	v.SetDefault("insights.primary.base_url", "")
	v.SetDefault("insights.primary.timeout_secs", 60)
	v.SetDefault("insights.secondary.provider", "")
	v.SetDefault("insights.secondary.api_key", "")
	v.SetDefault("insights.secondary.default_model", "")
	v.SetDefault("insights.secondary.base_url", "")
	v.SetDefault("insights.secondary.timeout_secs", 60)
	v.SetDefault("insights.tertiary.provider", "")
	v.SetDefault("insights.tertiary.api_key", "")
	v.SetDefault("insights.tertiary.default_model", "")
	v.SetDefault("insights.tertiary.base_url", "")
	v.SetDefault("insights.tertiary.timeout_secs", 60)

	// Storage defaults
	v.SetDefault("storage.provider", "noop")
	v.SetDefault("storage.prefix", "smartcarbon")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "smartcarbon-uploads")
	v.SetDefault("s3.endpoint", "")

	// Bind environment variables explicitly for nested keys
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SMARTCARBON_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SMARTCARBON_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.OCR = OCRConfig{
		Provider:    v.GetString("ocr.provider"),
		Binary:      v.GetString("ocr.binary"),
		Lang:        v.GetString("ocr.lang"),
		TessdataDir: v.GetString("ocr.tessdata_dir"),
		TimeoutSecs: v.GetInt("ocr.timeout_secs"),
	}
	cfg.Insights = InsightsConfig{
		Primary:   providerConfig(v, "insights.primary"),
		Secondary: providerConfig(v, "insights.secondary"),
		Tertiary:  providerConfig(v, "insights.tertiary"),
	}
	cfg.Storage = StorageConfig{
		Provider: v.GetString("storage.provider"),
		Prefix:   v.GetString("storage.prefix"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}

	return cfg, nil
}

func providerConfig(v *viper.Viper, prefix string) InsightProviderConfig {
	return InsightProviderConfig{
		Provider:     v.GetString(prefix + ".provider"),
		APIKey:       v.GetString(prefix + ".api_key"),
		DefaultModel: v.GetString(prefix + ".default_model"),
		BaseURL:      v.GetString(prefix + ".base_url"),
		TimeoutSecs:  v.GetInt(prefix + ".timeout_secs"),
	}
}

// splitList parses a comma-separated string, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
