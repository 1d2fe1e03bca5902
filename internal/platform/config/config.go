package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "config/config.yaml"

type TLS struct {
	Cert string `yaml:"cert" env:"TLS_CERT"`
	Key  string `yaml:"key" env:"TLS_KEY"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr" env:"SERVER_ADDR"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`
	TLS          TLS           `yaml:"tls"`
}

type DatabaseConfig struct {
	Driver          string        `yaml:"driver" env:"DB_DRIVER"` // mysql | postgres
	Host            string        `yaml:"host" env:"DB_HOST"`
	Port            int           `yaml:"port" env:"DB_PORT"`
	Username        string        `yaml:"user" env:"DB_USER"`
	Password        string        `yaml:"password" env:"DB_PASSWORD"`
	DBName          string        `yaml:"dbname" env:"DB_NAME"`
	SSLMode         string        `yaml:"sslmode" env:"DB_SSLMODE"`
	MaxOpenConns    int           `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" env:"DB_CONN_MAX_IDLE_TIME"`
	Migrate         bool          `yaml:"migrate" env:"DB_MIGRATE"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"` // json | text
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

type Config struct {
	Version string         `yaml:"version"`
	Mode    string         `yaml:"mode" env:"APP_MODE"` // dev | release
	Server  ServerConfig   `yaml:"server"`
	DB      DatabaseConfig `yaml:"database"`
	Logging LoggingConfig  `yaml:"logging"`
	CORS    CORSConfig     `yaml:"cors"`
}

// Load reads path when it exists, then applies environment overrides and validates.
// A missing file is not an error: defaults plus environment are enough to boot.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	buf, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := processStructFields(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(c *Config) {
	c.Version = "1"
	c.Mode = "dev"

	c.Server.Addr = ":8080"
	c.Server.ReadTimeout = 10 * time.Second
	c.Server.WriteTimeout = 10 * time.Second
	c.Server.IdleTimeout = 120 * time.Second

	c.DB.Driver = "mysql"
	c.DB.Host = "localhost"
	c.DB.Port = 3306
	c.DB.Username = "root"
	c.DB.DBName = "biblioteca"
	c.DB.SSLMode = "disable"
	c.DB.MaxOpenConns = 80
	c.DB.MaxIdleConns = 20
	c.DB.ConnMaxLifetime = 30 * time.Minute
	c.DB.ConnMaxIdleTime = 5 * time.Minute
	c.DB.Migrate = true

	c.Logging.Level = "info"
	c.Logging.Format = "json"

	c.CORS.AllowOrigins = []string{"http://localhost:3000"}
}

func (c *Config) validate() error {
	if c.Mode != "dev" && c.Mode != "release" {
		return fmt.Errorf("mode must be dev or release, got %q", c.Mode)
	}
	if c.DB.Driver != "mysql" && c.DB.Driver != "postgres" {
		return fmt.Errorf("database driver must be mysql or postgres, got %q", c.DB.Driver)
	}
	if c.DB.Host == "" {
		return errors.New("database host is required")
	}
	if c.DB.DBName == "" {
		return errors.New("database name is required")
	}
	if (c.Server.TLS.Cert == "") != (c.Server.TLS.Key == "") {
		return errors.New("tls cert and key must be set together")
	}
	return nil
}

func (c *Config) IsDev() bool { return c.Mode == "dev" }
