package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	// Ledger engine
	SourceTimeout     time.Duration
	ReportConcurrency int
	CashAccountID     string // empty: lowest-id CASH account of the chart

	// Hierarchy cache (disabled when RedisAddr is empty)
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	HierarchyCacheTTL time.Duration

	// Account change events (disabled when KafkaBrokers is empty)
	KafkaBrokers      []string
	KafkaAccountTopic string
	KafkaGroupID      string

	// HTTP surface
	RateLimit          string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string
	PosthogAPIKey      string
	PosthogEndpoint    string
}

// SetDefaults registers the default value of every configuration key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("SOURCE_TIMEOUT", "10s")
	v.SetDefault("REPORT_CONCURRENCY", 4)
	v.SetDefault("CASH_ACCOUNT_ID", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("HIERARCHY_CACHE_TTL", "15m")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_ACCOUNT_TOPIC", "accounts.changed")
	v.SetDefault("KAFKA_GROUP_ID", "papermill-ledger")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://us.i.posthog.com")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	return Load(viper.GetViper())
}

// Load reads configuration from v. Values bound on v (for example command-line flags)
// take precedence over the environment, which takes precedence over defaults.
func Load(v *viper.Viper) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	SetDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	cfg.SourceTimeout = durationOr(v, "SOURCE_TIMEOUT", 10*time.Second)
	cfg.ReportConcurrency = v.GetInt("REPORT_CONCURRENCY")
	if cfg.ReportConcurrency <= 0 {
		log.Printf("Warning: Invalid value for REPORT_CONCURRENCY (%d). Defaulting to 4.\n", cfg.ReportConcurrency)
		cfg.ReportConcurrency = 4
	}
	cfg.CashAccountID = v.GetString("CASH_ACCOUNT_ID")

	cfg.RedisAddr = v.GetString("REDIS_ADDR")
	cfg.RedisPassword = v.GetString("REDIS_PASSWORD")
	cfg.RedisDB = v.GetInt("REDIS_DB")
	cfg.HierarchyCacheTTL = durationOr(v, "HIERARCHY_CACHE_TTL", 15*time.Minute)

	cfg.KafkaBrokers = splitList(v.GetString("KAFKA_BROKERS"))
	cfg.KafkaAccountTopic = v.GetString("KAFKA_ACCOUNT_TOPIC")
	cfg.KafkaGroupID = v.GetString("KAFKA_GROUP_ID")

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = v.GetString("POSTHOG_ENDPOINT")

	if cfg.RedisAddr == "" {
		log.Println("Warning: REDIS_ADDR not set. Account hierarchies will not be cached.")
	}
	if len(cfg.KafkaBrokers) > 0 && cfg.RedisAddr == "" {
		log.Println("Warning: KAFKA_BROKERS set without REDIS_ADDR. Account events have no cache to invalidate.")
	}

	return cfg, nil
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
