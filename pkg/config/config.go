package config

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration loaded from environment variables or config files.
type Config struct {
	AppEnv          string        `mapstructure:"APP_ENV" validate:"required,oneof=development staging production test"`
	HTTPAddr        string        `mapstructure:"HTTP_ADDR" validate:"required,hostname_port"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" validate:"required"`

	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"required,oneof=debug info warn error dpanic panic fatal"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"required,oneof=json console"`

	DatabaseDriver string `mapstructure:"DATABASE_DRIVER" validate:"required,oneof=postgres sqlite"`
	DatabaseURL    string `mapstructure:"DATABASE_URL" validate:"required"`
	AutoMigrate    bool   `mapstructure:"AUTO_MIGRATE"`

	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS" validate:"gt=0"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST" validate:"gte=1"`
	TrustProxy     bool    `mapstructure:"TRUST_PROXY"`

	GoMaxProcs int `mapstructure:"GOMAXPROCS" validate:"gte=0,lte=4096"`
}

var (
	cfg      *Config
	validate = validator.New(validator.WithRequiredStructEnabled())
)

var keys = []string{
	"APP_ENV",
	"HTTP_ADDR",
	"SHUTDOWN_TIMEOUT",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"DATABASE_DRIVER",
	"DATABASE_URL",
	"AUTO_MIGRATE",
	"RATE_LIMIT_RPS",
	"RATE_LIMIT_BURST",
	"TRUST_PROXY",
	"GOMAXPROCS",
}

// Load initializes configuration using Viper. It loads from .env if present,
// applies defaults, binds env vars, and validates the result.
func Load() (*Config, error) {
	// .env files are optional
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_ADDR", "0.0.0.0:8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("AUTO_MIGRATE", false)
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("TRUST_PROXY", false)
	v.SetDefault("GOMAXPROCS", 0)

	_ = v.ReadInConfig()

	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}

	if s := v.GetString("SHUTDOWN_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		c.ShutdownTimeout = d
	}

	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if c.GoMaxProcs > 0 {
		runtime.GOMAXPROCS(c.GoMaxProcs)
	}

	cfg = &c
	return cfg, nil
}

// MustLoad loads configuration or exits the process on failure.
func MustLoad() *Config {
	c, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	return c
}

// Get returns the loaded configuration. Panics if not loaded.
func Get() *Config {
	if cfg == nil {
		panic("config not loaded: call config.Load or config.MustLoad first")
	}
	return cfg
}

// IsDevelopment reports whether the service runs in a non-production environment
// where verbose query logging is wanted.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development" || c.AppEnv == "test"
}
