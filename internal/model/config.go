package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the full runtime configuration. Conversion itself needs none of
// it; these settings drive the Scryfall fetcher, batch concurrency, and
// output verbosity.
type Config struct {
	HTTP         HTTPConfig         `yaml:"http"`
	Cache        CacheConfig        `yaml:"cache"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting"`
	Output       OutputConfig       `yaml:"output"`
}

// HTTPConfig controls the Scryfall API client
type HTTPConfig struct {
	BaseURL      string        `yaml:"base_url"`
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
}

// CacheConfig controls the fetch response cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig controls batch conversion workers
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"` // 1 means strictly sequential processing
}

// RateLimitingConfig controls per-host request pacing for fetches
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size"`
}

// OutputConfig controls progress reporting
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults. The rate ceiling and cache
// TTL follow Scryfall's published API guidance.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			BaseURL:      "https://api.scryfall.com",
			Timeout:      30 * time.Second,
			UserAgent:    "cardir/0.1 (+https://github.com/karnai/cardir)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 1,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 10,
			BurstSize:         1,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}

// defaultCacheDir resolves to ~/.cardir/cache, falling back to a relative
// directory when the home directory is unknown
func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cardir-cache"
	}
	return filepath.Join(home, ".cardir", "cache")
}
