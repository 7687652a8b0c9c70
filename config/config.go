package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Property listing specifics
	Remote    RemoteConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RemoteConfig describes the upstream listing data service.
type RemoteConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// DefectStatusCode is the status code the upstream is known to
	// return from its defective search endpoint. Searches falling on
	// this code degrade to local filtering over the cached snapshot.
	DefectStatusCode int
}

// CacheConfig controls the in-process bulk snapshot caches.
type CacheConfig struct {
	Size int
	// TTL of zero disables expiry; eviction then happens only through
	// explicit invalidation after mutations.
	TTL time.Duration
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Remote listing data service
	cfg.Remote.BaseURL = viper.GetString("remote.base_url")
	cfg.Remote.APIKey = viper.GetString("remote.api_key")
	cfg.Remote.Timeout = viper.GetDuration("remote.timeout")
	cfg.Remote.DefectStatusCode = viper.GetInt("remote.defect_status_code")
	if baseURL := viper.GetString("remote_base_url"); baseURL != "" {
		cfg.Remote.BaseURL = baseURL
	}
	if apiKey := viper.GetString("remote_api_key"); apiKey != "" {
		cfg.Remote.APIKey = apiKey
	}

	if cfg.Remote.BaseURL == "" {
		return nil, fmt.Errorf("remote.base_url is required")
	}

	// Cache
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")

	// Rate limiting for mutation endpoints
	cfg.RateLimit.PerMin = viper.GetInt("ratelimit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("remote.timeout", "10s")
	viper.SetDefault("remote.defect_status_code", 500)

	viper.SetDefault("cache.size", 16)
	viper.SetDefault("cache.ttl", "0s")

	viper.SetDefault("ratelimit.per_min", 60)
}
