package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	"github.com/tadbeer-it/TDB-FieldService/pkg/types"
)

// Config full service configuration, loaded from config.toml with optional
// environment overrides for secrets (.env is honoured when present)
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        DatabaseConfig        `toml:"database"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	Booking         BookingConfig         `toml:"booking"`
	IdentityService IdentityServiceConfig `toml:"identity_service"`
}

// ServerConfig HTTP server settings (seconds for all timeouts)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig PostgreSQL connection settings
type DatabaseConfig struct {
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

// DSN builds the lib/pq connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig logging settings
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig Prometheus settings
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// BookingConfig booking business settings
type BookingConfig struct {
	// SlotCatalog ordered daily visit slots in "HH:MM AM/PM" form
	SlotCatalog []string `toml:"slot_catalog"`
	// EditWindowHours hours before the appointment after which clients may
	// no longer edit or cancel
	EditWindowHours int `toml:"edit_window_hours"`
	// StrictFullDay when true, a day counts as fully booked only when every
	// catalog slot is literally taken; when false (default) the count of
	// non-cancelled bookings against the catalog size is used
	StrictFullDay bool `toml:"strict_full_day"`
}

// IdentityServiceConfig settings for the staff identity service client
type IdentityServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// Load reads and validates the configuration file
func Load(path string) (*Config, error) {
	// .env overrides are optional; absence is not an error
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TDB_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("TDB_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("TDB_IDENTITY_URL"); v != "" {
		cfg.IdentityService.URL = v
	}
}

func applyDefaults(cfg *Config) {
	if len(cfg.Booking.SlotCatalog) == 0 {
		cfg.Booking.SlotCatalog = domain.DefaultSlotCatalog
	}
	if cfg.Booking.EditWindowHours == 0 {
		cfg.Booking.EditWindowHours = domain.DefaultEditWindowHours
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	for _, slot := range c.Booking.SlotCatalog {
		if _, err := types.NewTimeStringFromString(slot); err != nil {
			return fmt.Errorf("config: booking.slot_catalog entry %q: %w", slot, err)
		}
	}
	if c.Booking.EditWindowHours < 0 {
		return fmt.Errorf("config: booking.edit_window_hours must not be negative")
	}
	return nil
}

// SlotCatalog returns the configured catalog as validated time strings
func (c *Config) SlotCatalog() []types.TimeString {
	catalog := make([]types.TimeString, len(c.Booking.SlotCatalog))
	for i, s := range c.Booking.SlotCatalog {
		catalog[i] = types.TimeString(s)
	}
	return catalog
}
