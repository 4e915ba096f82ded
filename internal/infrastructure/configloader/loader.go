package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIURL     = "https://api.enterl2.com"
	DefaultNodeRPCURL = "https://rpc.enterl2.com"
	DefaultPort       = "8080"
)

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port                   string   `yaml:"port"`
	ReadTimeoutSeconds     int      `yaml:"readTimeoutSeconds"`
	WriteTimeoutSeconds    int      `yaml:"writeTimeoutSeconds"`
	IdleTimeoutSeconds     int      `yaml:"idleTimeoutSeconds"`
	ShutdownTimeoutSeconds int      `yaml:"shutdownTimeoutSeconds"`
	AllowedOrigins         []string `yaml:"allowedOrigins"`
}

// UpstreamConfig points at the explorer REST API and the L2 node.
type UpstreamConfig struct {
	APIURL     string `yaml:"apiURL"`
	NodeRPCURL string `yaml:"nodeRPCURL"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// CacheConfig holds the page cache TTLs.
type CacheConfig struct {
	StatsTTLSeconds        int `yaml:"statsTTLSeconds"`
	ListTTLSeconds         int `yaml:"listTTLSeconds"`
	CleanupIntervalSeconds int `yaml:"cleanupIntervalSeconds"`
}

// PagesConfig controls page orchestration.
type PagesConfig struct {
	LatestLimit          int   `yaml:"latestLimit"`
	AddressPageSize      int   `yaml:"addressPageSize"`
	RequestTimeoutMillis int64 `yaml:"requestTimeoutMillis"`
	// SurfaceLookupErrors renders an error page instead of "not found" when a detail lookup fails.
	SurfaceLookupErrors bool `yaml:"surfaceLookupErrors"`
}

// RateLimitConfig limits inbound requests per client IP. RequestsPerSecond <= 0 disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	Burst             int     `yaml:"burst"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Upstream  UpstreamConfig  `yaml:"upstream"`
	Logging   LoggingConfig   `yaml:"logging"`
	Cache     CacheConfig     `yaml:"cache"`
	Pages     PagesConfig     `yaml:"pages"`
	RateLimit RateLimitConfig `yaml:"rateLimit"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// Load reads the YAML configuration file from the given path and unmarshals it.
// A missing file is not an error: the defaults are used instead.
func Load(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Warnf("Config file %s not found, using defaults", path)
		return Default(), nil
	}
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

// ApplyDefaults fills every unset field.
func (c *Config) ApplyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = DefaultPort
	}
	if c.Server.ReadTimeoutSeconds <= 0 {
		c.Server.ReadTimeoutSeconds = 15
	}
	if c.Server.WriteTimeoutSeconds <= 0 {
		c.Server.WriteTimeoutSeconds = 30
	}
	if c.Server.IdleTimeoutSeconds <= 0 {
		c.Server.IdleTimeoutSeconds = 60
	}
	if c.Server.ShutdownTimeoutSeconds <= 0 {
		c.Server.ShutdownTimeoutSeconds = 10
	}

	if c.Upstream.APIURL == "" {
		c.Upstream.APIURL = DefaultAPIURL
		logrus.Infof("Upstream.APIURL not set, defaulting to %s", c.Upstream.APIURL)
	}
	if c.Upstream.NodeRPCURL == "" {
		c.Upstream.NodeRPCURL = DefaultNodeRPCURL
		logrus.Infof("Upstream.NodeRPCURL not set, defaulting to %s", c.Upstream.NodeRPCURL)
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	// the home page refetched stats every 30 seconds
	if c.Cache.StatsTTLSeconds <= 0 {
		c.Cache.StatsTTLSeconds = 30
	}
	if c.Cache.ListTTLSeconds <= 0 {
		c.Cache.ListTTLSeconds = 10
	}
	if c.Cache.CleanupIntervalSeconds < 0 {
		c.Cache.CleanupIntervalSeconds = 0
	}

	if c.Pages.LatestLimit <= 0 {
		c.Pages.LatestLimit = 10
	}
	if c.Pages.AddressPageSize <= 0 {
		c.Pages.AddressPageSize = 20
	}
	if c.Pages.RequestTimeoutMillis <= 0 {
		c.Pages.RequestTimeoutMillis = 10000
	}

	if c.RateLimit.RequestsPerSecond > 0 && c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = int(c.RateLimit.RequestsPerSecond) * 2
		if c.RateLimit.Burst == 0 {
			c.RateLimit.Burst = 1
		}
	}
}

// StatsTTL is the cache lifetime of the network stats snapshot.
func (c CacheConfig) StatsTTL() time.Duration {
	return time.Duration(c.StatsTTLSeconds) * time.Second
}

// ListTTL is the cache lifetime of the latest blocks, transactions and batches.
func (c CacheConfig) ListTTL() time.Duration {
	return time.Duration(c.ListTTLSeconds) * time.Second
}

// CleanupInterval is how often expired entries are purged. Zero disables the janitor.
func (c CacheConfig) CleanupInterval() time.Duration {
	return time.Duration(c.CleanupIntervalSeconds) * time.Second
}

// RequestTimeout bounds the upstream calls of a single page render.
func (c PagesConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMillis) * time.Millisecond
}
