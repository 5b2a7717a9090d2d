package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath      = "config.yaml"
	defaultBaseURL         = "http://localhost:8000"
	defaultCountry         = "us"
	defaultNewsCategory    = "general"
	defaultPlatform        = "tiktok"
	defaultStyle           = "informative"
	defaultExportDir       = "./output"
	defaultGCSExportPrefix = "exports"
)

type Config struct {
	Backend BackendConfig `yaml:"backend"`
	News    NewsConfig    `yaml:"news"`
	Content ContentConfig `yaml:"content"`
	Export  ExportConfig  `yaml:"export"`
}

type BackendConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	// MaxRetries of 0 sends every request once.
	MaxRetries int `yaml:"max_retries"`
}

type NewsConfig struct {
	Country         string `yaml:"country"`
	DefaultCategory string `yaml:"default_category"`
}

type ContentConfig struct {
	Platform string `yaml:"platform"`
	Style    string `yaml:"style"`
}

type ExportConfig struct {
	Dir string    `yaml:"dir"`
	GCS GCSConfig `yaml:"gcs"`
}

type GCSConfig struct {
	Enabled         bool   `yaml:"enabled"`
	Bucket          string `yaml:"bucket"`
	Prefix          string `yaml:"prefix"`
	CredentialsFile string `yaml:"credentials_file"`
}

// Load reads .env and config.yaml from the working directory. Both files are
// optional; a config.yaml that does not parse is an error.
func Load(_ context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on environment variables")
	}

	cfg := &Config{}
	if err := loadYAMLConfig(cfg, defaultConfigPath); err != nil {
		return nil, err
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	return cfg, nil
}

func loadYAMLConfig(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("No config.yaml found, using defaults")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("TRENDCLIP_BACKEND_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("TRENDCLIP_COUNTRY"); v != "" {
		cfg.News.Country = v
	}
	if v := os.Getenv("TRENDCLIP_MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TRENDCLIP_MAX_RETRIES: %w", err)
		}
		cfg.Backend.MaxRetries = n
	}
	if v := os.Getenv("GCS_BUCKET"); v != "" {
		cfg.Export.GCS.Bucket = v
		cfg.Export.GCS.Enabled = true
	}
	if v := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); v != "" && cfg.Export.GCS.CredentialsFile == "" {
		cfg.Export.GCS.CredentialsFile = v
	}
	return nil
}

func applyDefaults(cfg *Config) {
	applyBackendDefaults(cfg)
	applyNewsDefaults(cfg)
	applyContentDefaults(cfg)
	applyExportDefaults(cfg)
}

func applyBackendDefaults(cfg *Config) {
	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = defaultBaseURL
	}
	if cfg.Backend.MaxRetries < 0 {
		cfg.Backend.MaxRetries = 0
	}
}

func applyNewsDefaults(cfg *Config) {
	if cfg.News.Country == "" {
		cfg.News.Country = defaultCountry
	}
	if cfg.News.DefaultCategory == "" {
		cfg.News.DefaultCategory = defaultNewsCategory
	}
}

func applyContentDefaults(cfg *Config) {
	if cfg.Content.Platform == "" {
		cfg.Content.Platform = defaultPlatform
	}
	if cfg.Content.Style == "" {
		cfg.Content.Style = defaultStyle
	}
}

func applyExportDefaults(cfg *Config) {
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = defaultExportDir
	}
	if cfg.Export.GCS.Prefix == "" {
		cfg.Export.GCS.Prefix = defaultGCSExportPrefix
	}
}
