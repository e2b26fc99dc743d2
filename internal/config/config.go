package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "PETCARE"

var ErrInvalidConfig = errors.New("invalid config")

// Drivers aceptados en database.driver.
const (
	DriverMemory = "memory"
	DriverPgx    = "pgx"
	DriverSQLite = "sqlite"
)

type Server struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func (s Server) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type Database struct {
	Driver string
	DSN    string
}

type Log struct {
	Level  string
	Format string
}

type Identity struct {
	BaseURL      string
	APIKey       string
	APIKeyHeader string
}

type Health struct {
	Timezone     string
	UpcomingDays int
}

type Config struct {
	AppName  string
	Server   Server
	Database Database
	Log      Log
	Identity Identity

	// CatalogPath vacío => catálogo embebido.
	CatalogPath string
	Health      Health
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "petcare-hub")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "5s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("database.dsn", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("identity.base_url", "")
	v.SetDefault("identity.api_key", "")
	v.SetDefault("identity.api_key_header", "")
	v.SetDefault("catalog.path", "")
	v.SetDefault("health.timezone", "UTC")
	v.SetDefault("health.upcoming_days", 30)
}

// New arma el viper con defaults y env (PETCARE_SERVER_PORT, ...).
// Las variables heredadas PORT, DB_DSN y LOG_LEVEL también se respetan.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT")
	_ = v.BindEnv("database.dsn", EnvPrefix+"_DATABASE_DSN", "DB_DSN")
	_ = v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("log.format", EnvPrefix+"_LOG_FORMAT", "LOG_FORMAT")
	return v
}

// Load lee el archivo opcional (path vacío = solo defaults + env) y valida.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = New()
	}
	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		AppName: v.GetString("app.name"),
		Server: Server{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		Database: Database{
			Driver: strings.ToLower(strings.TrimSpace(v.GetString("database.driver"))),
			DSN:    strings.TrimSpace(v.GetString("database.dsn")),
		},
		Log: Log{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Identity: Identity{
			BaseURL:      strings.TrimSpace(v.GetString("identity.base_url")),
			APIKey:       strings.TrimSpace(v.GetString("identity.api_key")),
			APIKeyHeader: strings.TrimSpace(v.GetString("identity.api_key_header")),
		},
		CatalogPath: strings.TrimSpace(v.GetString("catalog.path")),
		Health: Health{
			Timezone:     strings.TrimSpace(v.GetString("health.timezone")),
			UpcomingDays: v.GetInt("health.upcoming_days"),
		},
	}

	// Sin driver explícito: con DSN es Postgres (comportamiento heredado de DB_DSN), sin DSN memoria.
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverMemory
		if cfg.Database.DSN != "" {
			cfg.Database.Driver = DriverPgx
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d", ErrInvalidConfig, c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("%w: server timeouts must be positive", ErrInvalidConfig)
	}

	switch c.Database.Driver {
	case DriverMemory:
	case DriverPgx, DriverSQLite:
		if c.Database.DSN == "" {
			return fmt.Errorf("%w: database.dsn required for driver %s", ErrInvalidConfig, c.Database.Driver)
		}
	default:
		return fmt.Errorf("%w: database.driver %q", ErrInvalidConfig, c.Database.Driver)
	}

	if c.Identity.BaseURL != "" && c.Identity.APIKey == "" {
		return fmt.Errorf("%w: identity.api_key required with identity.base_url", ErrInvalidConfig)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: health.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Health.UpcomingDays <= 0 {
		return fmt.Errorf("%w: health.upcoming_days must be positive", ErrInvalidConfig)
	}
	return nil
}

// Location resuelve health.timezone; vacío => UTC.
func (c Config) Location() (*time.Location, error) {
	if c.Health.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Health.Timezone)
}
