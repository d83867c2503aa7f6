package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"alafaq/internal/models"
)

type Config struct {
	App        AppConfig        `yaml:"app"`
	Storage    StorageConfig    `yaml:"storage"`
	Redis      RedisConfig      `yaml:"redis"`
	Database   DatabaseConfig   `yaml:"database"`
	Booking    BookingConfig    `yaml:"booking"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
	Exports    ExportConfig     `yaml:"exports"`
	Doctors    []models.Doctor  `yaml:"doctors"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

// StorageConfig locates the file-backed key-value store.
type StorageConfig struct {
	Dir string `yaml:"dir" validate:"required"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// DatabaseConfig locates the sqlite mirror the admin tools read.
type DatabaseConfig struct {
	Path string `yaml:"path" validate:"required"`
}

type BookingConfig struct {
	// WindowMonths bounds how far ahead a booking may be made.
	WindowMonths int `yaml:"window_months" validate:"gte=0,lte=12"`
	// AlertTTLSeconds is how long transient alerts stay visible.
	AlertTTLSeconds int `yaml:"alert_ttl_seconds" validate:"gte=0,lte=60"`
}

type MonitoringConfig struct {
	PrometheusEnabled bool `yaml:"prometheus_enabled"`
	PrometheusPort    int  `yaml:"prometheus_port" validate:"gte=0,lte=65535"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

type ExportConfig struct {
	Path string `yaml:"path"`
}

var validate = validator.New()

// Load reads the YAML config, expanding ${VAR} references from the
// environment (a .env file is honored when present).
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load(".env")

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	expanded := []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(expanded, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	return ValidateDoctors(c.Doctors)
}

// ValidateDoctors rejects rosters with blank or duplicate doctor names.
func ValidateDoctors(doctors []models.Doctor) error {
	seen := make(map[string]bool)
	for _, d := range doctors {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			return errors.New("doctor with empty name")
		}
		if seen[name] {
			return fmt.Errorf("duplicate doctor: %s", name)
		}
		seen[name] = true
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "alafaq"
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = "data/localstore"
	}
	if c.Database.Path == "" {
		c.Database.Path = "data/admin.db"
	}
	if c.Exports.Path == "" {
		c.Exports.Path = "exports"
	}
	if c.Booking.WindowMonths == 0 {
		c.Booking.WindowMonths = models.DefaultBookingWindowMonths
	}
	if c.Booking.AlertTTLSeconds == 0 {
		c.Booking.AlertTTLSeconds = int(models.DefaultAlertTTL.Seconds())
	}
	if c.Monitoring.PrometheusEnabled && c.Monitoring.PrometheusPort == 0 {
		c.Monitoring.PrometheusPort = 9090
	}
}
