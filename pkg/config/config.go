package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/eugenechae/podcast-index-mcp/pkg/errors"
	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system.
// This should be called once at application startup. Missing upstream
// credentials are a fatal configuration error here, not a per-call error.
func Init() error {
	once.Do(func() {
		setDefaults()

		// Env var overrides, e.g. PODCAST_INDEX_SERVER_PORT
		viper.SetEnvPrefix("PODCAST_INDEX")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// The upstream credentials are read from exactly these two
		// environment variables, matching the upstream's onboarding docs.
		_ = viper.BindEnv("podcast_index.api_key", "API_KEY")
		_ = viper.BindEnv("podcast_index.api_secret", "API_SECRET")

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// Config file is optional; defaults and env vars suffice.
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		initErr = validate()
	})

	return initErr
}

// GetConfig returns the current configuration as a struct.
// Init() must be called before using this.
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate checks the configuration once at startup so that a missing
// credential fails fast before any request is attempted.
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return errors.ConfigError("server.port", fmt.Sprintf("invalid port: %d", port))
	}

	if viper.GetString("podcast_index.api_key") == "" {
		return errors.ConfigError("API_KEY", "Podcast Index API key is required")
	}
	if viper.GetString("podcast_index.api_secret") == "" {
		return errors.ConfigError("API_SECRET", "Podcast Index API secret is required")
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.ConfigError("server.port", fmt.Sprintf("invalid port: %d", c.Server.Port))
	}
	if c.PodcastIndex.APIKey == "" {
		return errors.ConfigError("API_KEY", "Podcast Index API key is required")
	}
	if c.PodcastIndex.APISecret == "" {
		return errors.ConfigError("API_SECRET", "Podcast Index API secret is required")
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Podcast Index defaults
	viper.SetDefault("podcast_index.base_url", "https://api.podcastindex.org/api/1.0")
	viper.SetDefault("podcast_index.timeout", 10*time.Second)
	viper.SetDefault("podcast_index.user_agent", "podcast-index-mcp/1.0")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}
