package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Драйверы хранилища
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Переменные окружения с секретами, перекрывающие значения из файла
const (
	EnvDBPassword        = "DB_PASSWORD"
	EnvAdminPasswordHash = "ADMIN_PASSWORD_HASH"
	EnvSessionSecret     = "SESSION_SECRET"
	EnvDiscordToken      = "DISCORD_TOKEN"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Restaurant RestaurantConfig `toml:"restaurant"`
	Admin      AdminConfig      `toml:"admin"`
	Discord    DiscordConfig    `toml:"discord"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки хранилища
type DatabaseConfig struct {
	Driver          string `toml:"driver"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RestaurantConfig настройки ресторана
type RestaurantConfig struct {
	Timezone string `toml:"timezone"`
}

// AdminConfig настройки входа администратора
type AdminConfig struct {
	PasswordHash   string `toml:"password_hash"`
	SessionSecret  string `toml:"session_secret"`
	SessionTTLDays int    `toml:"session_ttl_days"`
	CookieSecure   bool   `toml:"cookie_secure"`
}

// SessionTTL время жизни сессии администратора
func (c AdminConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLDays) * 24 * time.Hour
}

// DiscordConfig настройки уведомлений персонала
type DiscordConfig struct {
	Enabled   bool   `toml:"enabled"`
	Token     string `toml:"token"`
	ChannelID string `toml:"channel_id"`
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "restaurant_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "restaurant-booking-service",
		},
		Restaurant: RestaurantConfig{
			Timezone: "Europe/Rome",
		},
		Admin: AdminConfig{
			SessionTTLDays: 7,
			CookieSecure:   true,
		},
	}
}

// Load читает конфигурацию из TOML файла, применяет переменные окружения и проверяет результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvDBPassword); ok {
		c.Database.Password = v
	}
	if v, ok := lookup(EnvAdminPasswordHash); ok {
		c.Admin.PasswordHash = v
	}
	if v, ok := lookup(EnvSessionSecret); ok {
		c.Admin.SessionSecret = v
	}
	if v, ok := lookup(EnvDiscordToken); ok {
		c.Discord.Token = v
	}
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}

	switch c.Database.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			problems = append(problems, "database.host and database.dbname are required for postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("database.driver %q is not supported", c.Database.Driver))
	}

	if _, err := c.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("restaurant.timezone: %v", err))
	}

	if c.Admin.PasswordHash == "" {
		problems = append(problems, "admin.password_hash is required")
	}
	if len(c.Admin.SessionSecret) < 32 {
		problems = append(problems, "admin.session_secret must be at least 32 bytes")
	}
	if c.Admin.SessionTTLDays <= 0 {
		problems = append(problems, "admin.session_ttl_days must be positive")
	}

	if c.Discord.Enabled && (c.Discord.Token == "" || c.Discord.ChannelID == "") {
		problems = append(problems, "discord.token and discord.channel_id are required when discord is enabled")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Location часовой пояс ресторана
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Restaurant.Timezone)
}
