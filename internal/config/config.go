package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultUserAgent = "SocialApp/1.0"
	// ChromeUserAgent and ChromeSecChUa must match the azuretls Chrome fingerprint.
	ChromeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
	ChromeSecChUa   = `"Google Chrome";v="131", "Chromium";v="131", "Not_A Brand";v="24"`
	// DefaultImageURLTemplate serves a stable 100px placeholder per post.
	DefaultImageURLTemplate = "https://picsum.photos/seed/{id}/100"
)

const (
	StoreSQLite = "sqlite"
	StoreBolt   = "bolt"
)

const (
	defaultAddr           = ":8080"
	defaultDataDir        = "data"
	defaultAPIBaseURL     = "https://jsonplaceholder.typicode.com"
	defaultPageSize       = 5
	defaultImageCacheKeys = 1000
)

type Config struct {
	Addr             string
	DataDir          string
	DBPath           string
	Store            string
	LogLevel         string
	APIBaseURL       string
	ImageURLTemplate string
	PageSize         int
	ImageCacheKeys   int
	ImageConcurrency int
	// ImageRate is image requests per second; 0 disables pacing.
	ImageRate       float64
	RefreshInterval time.Duration
	ProxyURL        string
}

// fileConfig mirrors the optional TOML file. Zero values leave defaults untouched.
type fileConfig struct {
	Addr             string  `toml:"addr"`
	DataDir          string  `toml:"data_dir"`
	DBPath           string  `toml:"db_path"`
	Store            string  `toml:"store"`
	LogLevel         string  `toml:"log_level"`
	APIBaseURL       string  `toml:"api_base_url"`
	ImageURLTemplate string  `toml:"image_url_template"`
	PageSize         int     `toml:"page_size"`
	ImageCacheKeys   int     `toml:"image_cache_keys"`
	ImageConcurrency int     `toml:"image_concurrency"`
	ImageRate        float64 `toml:"image_rate"`
	RefreshInterval  string  `toml:"refresh_interval"`
	ProxyURL         string  `toml:"proxy_url"`
}

// Load builds the configuration from defaults, the optional TOML file named by
// SOCIALFEED_CONFIG, then SOCIALFEED_* environment variables, in that order.
func Load() (Config, error) {
	cfg := Config{
		Addr:             defaultAddr,
		DataDir:          defaultDataDir,
		Store:            StoreSQLite,
		LogLevel:         "info",
		APIBaseURL:       defaultAPIBaseURL,
		ImageURLTemplate: DefaultImageURLTemplate,
		PageSize:         defaultPageSize,
		ImageCacheKeys:   defaultImageCacheKeys,
	}

	if path := strings.TrimSpace(os.Getenv("SOCIALFEED_CONFIG")); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, dbFileName(cfg.Store))
	}
	cfg.DataDir = filepath.Clean(cfg.DataDir)
	cfg.DBPath = filepath.Clean(cfg.DBPath)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	setString(&cfg.Addr, raw.Addr)
	setString(&cfg.DataDir, raw.DataDir)
	setString(&cfg.DBPath, raw.DBPath)
	setString(&cfg.Store, raw.Store)
	setString(&cfg.LogLevel, raw.LogLevel)
	setString(&cfg.APIBaseURL, raw.APIBaseURL)
	setString(&cfg.ImageURLTemplate, raw.ImageURLTemplate)
	setString(&cfg.ProxyURL, raw.ProxyURL)
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.ImageCacheKeys > 0 {
		cfg.ImageCacheKeys = raw.ImageCacheKeys
	}
	if raw.ImageConcurrency > 0 {
		cfg.ImageConcurrency = raw.ImageConcurrency
	}
	if raw.ImageRate > 0 {
		cfg.ImageRate = raw.ImageRate
	}
	if strings.TrimSpace(raw.RefreshInterval) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(raw.RefreshInterval))
		if err != nil {
			return fmt.Errorf("parse refresh_interval: %w", err)
		}
		cfg.RefreshInterval = d
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Addr, os.Getenv("SOCIALFEED_ADDR"))
	setString(&cfg.DataDir, os.Getenv("SOCIALFEED_DATA_DIR"))
	setString(&cfg.DBPath, os.Getenv("SOCIALFEED_DB_PATH"))
	setString(&cfg.Store, os.Getenv("SOCIALFEED_STORE"))
	setString(&cfg.LogLevel, os.Getenv("SOCIALFEED_LOG_LEVEL"))
	setString(&cfg.APIBaseURL, os.Getenv("SOCIALFEED_API_BASE_URL"))
	setString(&cfg.ImageURLTemplate, os.Getenv("SOCIALFEED_IMAGE_URL_TEMPLATE"))
	setString(&cfg.ProxyURL, os.Getenv("SOCIALFEED_PROXY_URL"))

	if err := setInt(&cfg.PageSize, "SOCIALFEED_PAGE_SIZE"); err != nil {
		return err
	}
	if err := setInt(&cfg.ImageCacheKeys, "SOCIALFEED_IMAGE_CACHE_KEYS"); err != nil {
		return err
	}
	if err := setInt(&cfg.ImageConcurrency, "SOCIALFEED_IMAGE_CONCURRENCY"); err != nil {
		return err
	}
	if raw := strings.TrimSpace(os.Getenv("SOCIALFEED_IMAGE_RATE")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("parse SOCIALFEED_IMAGE_RATE: %w", err)
		}
		cfg.ImageRate = v
	}
	if raw := strings.TrimSpace(os.Getenv("SOCIALFEED_REFRESH_INTERVAL")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("parse SOCIALFEED_REFRESH_INTERVAL: %w", err)
		}
		cfg.RefreshInterval = d
	}
	return nil
}

func (c Config) validate() error {
	if c.Store != StoreSQLite && c.Store != StoreBolt {
		return fmt.Errorf("unknown store %q", c.Store)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	if c.ImageCacheKeys <= 0 {
		return fmt.Errorf("image cache keys must be positive, got %d", c.ImageCacheKeys)
	}
	if c.ImageConcurrency < 0 || c.ImageRate < 0 || c.RefreshInterval < 0 {
		return errors.New("image concurrency, image rate and refresh interval must not be negative")
	}
	return nil
}

func dbFileName(store string) string {
	if store == StoreBolt {
		return "socialfeed.bdb"
	}
	return "socialfeed.db"
}

func setString(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	*dst = v
	return nil
}
