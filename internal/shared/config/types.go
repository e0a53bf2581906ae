package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host                  string   `mapstructure:"host"`
	Port                  int      `mapstructure:"port"`
	Mode                  string   `mapstructure:"mode"`
	AllowedOrigins        []string `mapstructure:"allowed_origins"`
	StaticDir             string   `mapstructure:"static_dir"`
	ReadTimeoutSeconds    int      `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds   int      `mapstructure:"write_timeout_seconds"`
	IdleTimeoutSeconds    int      `mapstructure:"idle_timeout_seconds"`
	RequestTimeoutSeconds int      `mapstructure:"request_timeout_seconds"`
	Timezone              string   `mapstructure:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RequestTimeout returns the per-request deadline applied by the timeout middleware.
func (s *ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SQLitePath      string `mapstructure:"sqlite_path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

// IsSQLite reports whether the embedded sqlite driver is selected.
func (d *DatabaseConfig) IsSQLite() bool {
	return d.Driver == "sqlite"
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
	Enabled   bool   `mapstructure:"enabled"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type CookieConfig struct {
	Name     string `mapstructure:"name"`
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

// SessionConfig controls the gate session token and how stored state is protected.
type SessionConfig struct {
	JWTSecret                string       `mapstructure:"jwt_secret"`
	TTLHours                 int          `mapstructure:"ttl_hours"`
	CredentialKey            string       `mapstructure:"credential_key"`
	ConnectAttemptsPerMinute int          `mapstructure:"connect_attempts_per_minute"`
	Cookie                   CookieConfig `mapstructure:"cookie"`
}

// TTL returns zero when sessions should live until an explicit disconnect.
func (s *SessionConfig) TTL() time.Duration {
	return time.Duration(s.TTLHours) * time.Hour
}

// RouterConfig selects how the gate reaches the network-management device and
// how the status monitor samples it.
type RouterConfig struct {
	Mode                  string `mapstructure:"mode"`
	ConnectTimeoutSeconds int    `mapstructure:"connect_timeout_seconds"`
	SimulatedDelayMillis  int    `mapstructure:"simulated_delay_millis"`
	ConnectRetries        uint64 `mapstructure:"connect_retries"`
	BreakerMaxFailures    int    `mapstructure:"breaker_max_failures"`
	BreakerCooldownSecs   int    `mapstructure:"breaker_cooldown_seconds"`
	MonitorIntervalSecs   int    `mapstructure:"monitor_interval_seconds"`
	MonitorAddress        string `mapstructure:"monitor_address"`
	MonitorUsername       string `mapstructure:"monitor_username"`
	MonitorPassword       string `mapstructure:"monitor_password"`
}

func (r *RouterConfig) ConnectTimeout() time.Duration {
	return time.Duration(r.ConnectTimeoutSeconds) * time.Second
}

func (r *RouterConfig) SimulatedDelay() time.Duration {
	return time.Duration(r.SimulatedDelayMillis) * time.Millisecond
}

func (r *RouterConfig) BreakerCooldown() time.Duration {
	return time.Duration(r.BreakerCooldownSecs) * time.Second
}

func (r *RouterConfig) MonitorInterval() time.Duration {
	return time.Duration(r.MonitorIntervalSecs) * time.Second
}

// PersistenceConfig bounds the retry policy applied around database calls.
type PersistenceConfig struct {
	RetryAttempts   uint64 `mapstructure:"retry_attempts"`
	RetryBaseMillis int    `mapstructure:"retry_base_millis"`
}

func (p *PersistenceConfig) RetryBase() time.Duration {
	return time.Duration(p.RetryBaseMillis) * time.Millisecond
}
