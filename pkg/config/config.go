package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"
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
	DBMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS" validate:"gte=1,lte=1000"`
	AutoMigrate    bool   `mapstructure:"AUTO_MIGRATE"`

	AdminName        string `mapstructure:"ADMIN_NAME" validate:"required"`
	AdminPassword    string `mapstructure:"ADMIN_PASSWORD" validate:"required"`
	AdminAuthEnabled bool   `mapstructure:"ADMIN_AUTH_ENABLED"`

	StorageDriver      string `mapstructure:"STORAGE_DRIVER" validate:"required,oneof=local s3"`
	UploadDir          string `mapstructure:"UPLOAD_DIR" validate:"required_if=StorageDriver local"`
	UploadPublicPrefix string `mapstructure:"UPLOAD_PUBLIC_PREFIX" validate:"required,startswith=/"`
	MaxUploadBytes     int64  `mapstructure:"MAX_UPLOAD_BYTES" validate:"gte=1024"`
	S3Bucket           string `mapstructure:"S3_BUCKET" validate:"required_if=StorageDriver s3"`
	S3Region           string `mapstructure:"S3_REGION"`
	S3Endpoint         string `mapstructure:"S3_ENDPOINT" validate:"omitempty,url"`
	S3AccessKey        string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey        string `mapstructure:"S3_SECRET_KEY"`
	S3PublicURL        string `mapstructure:"S3_PUBLIC_URL" validate:"omitempty,url"`

	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RateLimitRPS       float64  `mapstructure:"RATE_LIMIT_RPS" validate:"gt=0"`
	RateLimitBurst     int      `mapstructure:"RATE_LIMIT_BURST" validate:"gte=1"`
	TrustProxyHeaders  bool     `mapstructure:"TRUST_PROXY_HEADERS"`

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
	"DB_MAX_OPEN_CONNS",
	"AUTO_MIGRATE",
	"ADMIN_NAME",
	"ADMIN_PASSWORD",
	"ADMIN_AUTH_ENABLED",
	"TRUST_PROXY_HEADERS",
	"STORAGE_DRIVER",
	"UPLOAD_DIR",
	"UPLOAD_PUBLIC_PREFIX",
	"MAX_UPLOAD_BYTES",
	"S3_BUCKET",
	"S3_REGION",
	"S3_ENDPOINT",
	"S3_ACCESS_KEY",
	"S3_SECRET_KEY",
	"S3_PUBLIC_URL",
	"CORS_ALLOWED_ORIGINS",
	"RATE_LIMIT_RPS",
	"RATE_LIMIT_BURST",
	"GOMAXPROCS",
}

// Load initializes configuration using Viper. It loads from .env if present,
// applies defaults, binds env vars, and validates the result.
func Load() (*Config, error) {
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
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_URL", "skill_swap.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("ADMIN_NAME", "Admin User")
	v.SetDefault("ADMIN_PASSWORD", "Adminpass")
	v.SetDefault("ADMIN_AUTH_ENABLED", false)
	v.SetDefault("STORAGE_DRIVER", "local")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("UPLOAD_PUBLIC_PREFIX", "/uploads")
	v.SetDefault("MAX_UPLOAD_BYTES", 5<<20)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("TRUST_PROXY_HEADERS", false)
	v.SetDefault("GOMAXPROCS", 0)

	// Optional config file
	_ = v.ReadInConfig()

	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}

	// Parse duration types that may come as string
	if s := v.GetString("SHUTDOWN_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		c.ShutdownTimeout = d
	}
	c.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

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

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
