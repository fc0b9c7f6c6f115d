package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Ledgerline"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"ledgerline"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		// Secret signs API bearer tokens. Leaving it empty disables auth.
		Secret string `envconfig:"AUTH_SECRET"`
	}

	Calendar struct {
		WeekStart string `envconfig:"CALENDAR_WEEK_START" default:"monday"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// StartOfWeek maps the configured week-start name onto a weekday.
// Unrecognized values fall back to Monday.
func (c *Config) StartOfWeek() time.Weekday {
	switch strings.ToLower(c.Calendar.WeekStart) {
	case "sunday":
		return time.Sunday
	case "saturday":
		return time.Saturday
	default:
		return time.Monday
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
