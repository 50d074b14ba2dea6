package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewLogger builds a zerolog logger writing to w. The level defaults to info
// when it cannot be parsed. Format "console" produces human-readable output;
// anything else is JSON.
func NewLogger(cfg LogConfig, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	out := w
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// InitLogger installs the configured logger as the global log.Logger.
func InitLogger(cfg LogConfig) {
	log.Logger = NewLogger(cfg, os.Stderr)
	zerolog.SetGlobalLevel(log.Logger.GetLevel())
}
