package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores all service settings.
type Config struct {
	Port      int
	DB        DB
	SMTP      SMTP
	Admin     Admin
	Kafka     Kafka
	RateLimit RateLimit
	Pprof     Pprof
}

// DB stores database connection settings.
type DB struct {
	Host    string
	Port    string
	User    string
	Pass    string
	Name    string
	SSLMode string
}

// DSN builds a postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Pass, d.Host, d.Port, d.Name, d.SSLMode)
}

// SMTP stores outbound mail transport settings. An empty Host disables
// direct mail sending.
type SMTP struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Admin stores access gate settings.
type Admin struct {
	Password   string
	SessionTTL time.Duration
}

// Kafka stores notification pipeline settings. Empty Brokers means
// notifications are dispatched in-process instead of through the worker.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Pprof stores basic auth credentials for the profiling endpoints. Loopback
// requests are let through without auth.
type Pprof struct {
	User string
	Pass string
}

// RateLimit stores public endpoint rate limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		DB:        DefaultDB(),
		SMTP:      DefaultSMTP(),
		Admin:     DefaultAdmin(),
		Kafka:     DefaultKafka(),
		RateLimit: DefaultRateLimit(),
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}

	readEnv("POSTGRES_HOST", &cfg.DB.Host)
	readEnv("POSTGRES_PORT", &cfg.DB.Port)
	readEnv("POSTGRES_USER", &cfg.DB.User)
	readEnv("POSTGRES_PASSWORD", &cfg.DB.Pass)
	readEnv("POSTGRES_DB", &cfg.DB.Name)
	readEnv("POSTGRES_SSLMODE", &cfg.DB.SSLMode)

	readEnv("SMTP_HOST", &cfg.SMTP.Host)
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.SMTP.Port = p
		}
	}
	readEnv("SMTP_USER", &cfg.SMTP.User)
	readEnv("SMTP_PASS", &cfg.SMTP.Pass)
	readEnv("MAIL_FROM", &cfg.SMTP.From)
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.User
	}

	readEnv("ADMIN_PASSWORD", &cfg.Admin.Password)
	readDuration("ADMIN_SESSION_TTL", &cfg.Admin.SessionTTL)

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	readEnv("KAFKA_TOPIC", &cfg.Kafka.Topic)
	readEnv("KAFKA_GROUP_ID", &cfg.Kafka.GroupID)

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		cfg.RateLimit.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("RATE_LIMIT_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RateLimit.Rate = f
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimit.Burst = n
		}
	}

	readEnv("PPROF_USER", &cfg.Pprof.User)
	readEnv("PPROF_PASS", &cfg.Pprof.Pass)

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Admin.Password == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is required")
	}
	return cfg, nil
}

func readEnv(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func readDuration(key string, dst *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			*dst = d
		}
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
