package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "ispdesk/internal/shared/config"
)

type Config struct {
	Server      sharedConfig.ServerConfig      `mapstructure:"server"`
	Database    sharedConfig.DatabaseConfig    `mapstructure:"database"`
	Logger      sharedConfig.LoggerConfig      `mapstructure:"logger"`
	Redis       sharedConfig.RedisConfig       `mapstructure:"redis"`
	Session     sharedConfig.SessionConfig     `mapstructure:"session"`
	Router      sharedConfig.RouterConfig      `mapstructure:"router"`
	Persistence sharedConfig.PersistenceConfig `mapstructure:"persistence"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from an optional config file and ISPDESK_* environment variables.
// configPath overrides the default search locations when non-empty.
func Load(env string, configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("ISPDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing file is fine: defaults plus environment are a complete configuration.
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("server.static_dir", "")
	v.SetDefault("server.read_timeout_seconds", 15)
	v.SetDefault("server.write_timeout_seconds", 15)
	v.SetDefault("server.idle_timeout_seconds", 60)
	v.SetDefault("server.request_timeout_seconds", 15)
	v.SetDefault("server.timezone", "UTC")

	// Database defaults
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "ispdesk_dev")
	v.SetDefault("database.sqlite_path", "ispdesk.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Redis defaults
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "ispdesk:gate:")

	// Session defaults
	v.SetDefault("session.jwt_secret", "change-me-in-production")
	v.SetDefault("session.ttl_hours", 0)
	v.SetDefault("session.credential_key", "change-me-in-production")
	v.SetDefault("session.connect_attempts_per_minute", 10)
	v.SetDefault("session.cookie.name", "ispdesk_session")
	v.SetDefault("session.cookie.domain", "")
	v.SetDefault("session.cookie.path", "/")
	v.SetDefault("session.cookie.secure", false)
	v.SetDefault("session.cookie.same_site", "Lax")

	// Router defaults
	v.SetDefault("router.mode", "simulated")
	v.SetDefault("router.connect_timeout_seconds", 10)
	v.SetDefault("router.simulated_delay_millis", 2000)
	v.SetDefault("router.connect_retries", 2)
	v.SetDefault("router.breaker_max_failures", 5)
	v.SetDefault("router.breaker_cooldown_seconds", 30)
	v.SetDefault("router.monitor_interval_seconds", 30)
	v.SetDefault("router.monitor_address", "")
	v.SetDefault("router.monitor_username", "")
	v.SetDefault("router.monitor_password", "")

	// Persistence defaults
	v.SetDefault("persistence.retry_attempts", 3)
	v.SetDefault("persistence.retry_base_millis", 50)
}
