// Package config provides configuration management for the portfolio site.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the site configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Site    SiteConfig    `mapstructure:"site"`
	Publish PublishConfig `mapstructure:"publish"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Address      string        `mapstructure:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// SiteConfig holds rendering settings.
type SiteConfig struct {
	// BaseURL is the public origin used for canonical links, e.g.
	// https://hasib.dev. Empty disables canonical tags.
	BaseURL string `mapstructure:"base_url"`
}

// PublishConfig holds static export and bucket upload settings.
type PublishConfig struct {
	OutputDir  string `mapstructure:"output_dir"`
	Bucket     string `mapstructure:"bucket"`
	Prefix     string `mapstructure:"prefix"`
	Region     string `mapstructure:"region"`
	Endpoint   string `mapstructure:"endpoint"`
	AccessKey  string `mapstructure:"access_key"`
	SecretKey  string `mapstructure:"secret_key"`
	ManifestDB string `mapstructure:"manifest_db"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         8080,
			Address:      "0.0.0.0",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Publish: PublishConfig{
			OutputDir:  "./dist",
			Region:     "us-east-1",
			ManifestDB: "./dist/.publish.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads configuration from a .env file, environment variables and an
// optional config file.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/portfolio")
	v.AddConfigPath("$HOME/.portfolio")

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return unmarshal(v)
}

// LoadFromFile reads configuration from a specific file. Environment
// variables still override values from the file.
func LoadFromFile(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	return unmarshal(v)
}

func newViper() *viper.Viper {
	cfg := DefaultConfig()
	v := viper.New()

	v.SetDefault("server.port", cfg.Server.Port)
	v.SetDefault("server.address", cfg.Server.Address)
	v.SetDefault("server.read_timeout", cfg.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", cfg.Server.WriteTimeout)
	v.SetDefault("server.idle_timeout", cfg.Server.IdleTimeout)
	v.SetDefault("site.base_url", cfg.Site.BaseURL)
	v.SetDefault("publish.output_dir", cfg.Publish.OutputDir)
	v.SetDefault("publish.bucket", cfg.Publish.Bucket)
	v.SetDefault("publish.prefix", cfg.Publish.Prefix)
	v.SetDefault("publish.region", cfg.Publish.Region)
	v.SetDefault("publish.endpoint", cfg.Publish.Endpoint)
	v.SetDefault("publish.access_key", cfg.Publish.AccessKey)
	v.SetDefault("publish.secret_key", cfg.Publish.SecretKey)
	v.SetDefault("publish.manifest_db", cfg.Publish.ManifestDB)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDotEnv loads path into the process environment when it exists.
// Variables already set are left untouched.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}
