package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "CITYINFO"

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Log        LogConfig        `mapstructure:"log"`
	Mail       MailConfig       `mapstructure:"mail"`
	Pagination PaginationConfig `mapstructure:"pagination"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	Mode string `mapstructure:"mode" validate:"oneof=debug release test"`
}

type DatabaseConfig struct {
	Driver       string `mapstructure:"driver" validate:"required,oneof=sqlite3 postgres"`
	DSN          string `mapstructure:"dsn" validate:"required"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=0"`
}

// AuthConfig drives token issuing and validation. PolicyCity is the city
// every points-of-interest caller must belong to; empty disables the policy.
type AuthConfig struct {
	Secret        string        `mapstructure:"secret" validate:"required,min=32"`
	Issuer        string        `mapstructure:"issuer" validate:"required"`
	Audience      string        `mapstructure:"audience" validate:"required"`
	TokenLifetime time.Duration `mapstructure:"token_lifetime" validate:"gt=0"`
	PolicyCity    string        `mapstructure:"policy_city"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File  string `mapstructure:"file"`
}

type MailConfig struct {
	Provider string `mapstructure:"provider" validate:"oneof=local smtp"`
	From     string `mapstructure:"from" validate:"required"`
	To       string `mapstructure:"to" validate:"required"`
	Host     string `mapstructure:"host" validate:"required_if=Provider smtp"`
	Port     int    `mapstructure:"port" validate:"gte=0,lt=65536"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type PaginationConfig struct {
	DefaultPageSize int `mapstructure:"default_page_size" validate:"gt=0,ltefield=MaxPageSize"`
	MaxPageSize     int `mapstructure:"max_page_size" validate:"gt=0"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.dsn", "file:cityinfo.db?_pragma=foreign_keys(1)")
	v.SetDefault("database.max_open_conns", 0)

	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.issuer", "https://localhost:7169")
	v.SetDefault("auth.audience", "cityinfoapi")
	v.SetDefault("auth.token_lifetime", "1h")
	v.SetDefault("auth.policy_city", "Antwerp")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("mail.provider", "local")
	v.SetDefault("mail.from", "noreply@cityinfo.com")
	v.SetDefault("mail.to", "admin@cityinfo.com")
	v.SetDefault("mail.host", "")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")

	v.SetDefault("pagination.default_page_size", 10)
	v.SetDefault("pagination.max_page_size", 20)
}

// Load reads configuration from an optional .env file, the environment
// (CITYINFO_ prefix) and an optional cityinfo.yaml in the working directory.
// Environment variables win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("cityinfo")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if path := os.Getenv(envPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
	}
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every struct tag rule and reports the first failing field
// by its config key.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid config %s: failed %q rule", configKey(fe.Namespace()), fe.Tag())
	}
	return fmt.Errorf("invalid config: %w", err)
}

// configKey turns "Config.Auth.TokenLifetime" into "auth.tokenlifetime",
// close enough to the env name to find the culprit.
func configKey(namespace string) string {
	namespace = strings.TrimPrefix(namespace, "Config.")
	return strings.ToLower(namespace)
}
