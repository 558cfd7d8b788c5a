// Package logger owns the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the shared logger. It is usable before Init and logs at info to stderr.
var Log = logrus.New()

// Config controls level, format and destination of log output.
type Config struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	FilePath   string `yaml:"file_path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// DefaultConfig logs text at info level to stderr.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "text",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

// Init configures Log. LOG_LEVEL and LOG_FORMAT override the config values.
// When FilePath is set, output goes to a size-rotated file instead of stderr.
// The returned closer releases the file and is a no-op otherwise.
func Init(cfg Config) io.Closer {
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		cfg.Level = v
	}
	if v, ok := os.LookupEnv("LOG_FORMAT"); ok && v != "" {
		cfg.Format = v
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: cfg.FilePath != "",
		})
	}

	if cfg.FilePath == "" {
		Log.SetOutput(os.Stderr)
		return nopCloser{}
	}
	file := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	Log.SetOutput(file)
	return file
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
