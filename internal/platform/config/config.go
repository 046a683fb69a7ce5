package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ReportStoreLocal = "local"
	ReportStoreS3    = "s3"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// ReportStoreConfig selects where exported reports are archived.
type ReportStoreConfig struct {
	Kind      string // "local" or "s3"
	Dir       string // local only
	Bucket    string
	Endpoint  string // S3-compatible endpoint; empty means AWS
	Region    string
	AccessKey string
	SecretKey string
	PublicURL string // base URL objects are served from, optional
}

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	JWTSecret          string
	RateLimit          string
	CORSAllowedOrigins []string
	MigrationsPath     string
	ReportStore        ReportStoreConfig
	PosthogAPIKey      string // empty disables product analytics
	PosthogEndpoint    string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("RATE_LIMIT", "20-S")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("REPORT_STORE", ReportStoreLocal)
	viper.SetDefault("REPORT_DIR", "reports")
	viper.SetDefault("REPORT_BUCKET", "")
	viper.SetDefault("REPORT_ENDPOINT", "")
	viper.SetDefault("REPORT_REGION", "auto")
	viper.SetDefault("REPORT_ACCESS_KEY", "")
	viper.SetDefault("REPORT_SECRET_KEY", "")
	viper.SetDefault("REPORT_PUBLIC_URL", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	// Environment variables override .env values and defaults.
	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     viper.GetString("PGSQL_URL"),
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
		RateLimit:       viper.GetString("RATE_LIMIT"),
		MigrationsPath:  viper.GetString("MIGRATIONS_PATH"),
		PosthogAPIKey:   viper.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint: viper.GetString("POSTHOG_ENDPOINT"),
		ReportStore: ReportStoreConfig{
			Kind:      strings.ToLower(strings.TrimSpace(viper.GetString("REPORT_STORE"))),
			Dir:       viper.GetString("REPORT_DIR"),
			Bucket:    viper.GetString("REPORT_BUCKET"),
			Endpoint:  viper.GetString("REPORT_ENDPOINT"),
			Region:    viper.GetString("REPORT_REGION"),
			AccessKey: viper.GetString("REPORT_ACCESS_KEY"),
			SecretKey: viper.GetString("REPORT_SECRET_KEY"),
			PublicURL: viper.GetString("REPORT_PUBLIC_URL"),
		},
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	switch cfg.ReportStore.Kind {
	case ReportStoreLocal:
		if cfg.ReportStore.Dir == "" {
			return nil, fmt.Errorf("REPORT_DIR must be set when REPORT_STORE is %q", ReportStoreLocal)
		}
	case ReportStoreS3:
		if cfg.ReportStore.Bucket == "" {
			return nil, fmt.Errorf("REPORT_BUCKET must be set when REPORT_STORE is %q", ReportStoreS3)
		}
	default:
		return nil, fmt.Errorf("unknown REPORT_STORE %q (want %q or %q)", cfg.ReportStore.Kind, ReportStoreLocal, ReportStoreS3)
	}

	return cfg, nil
}
