package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host:    "127.0.0.1",
	Port:    "5432",
	User:    "parcelpoint",
	Pass:    "parcelpoint",
	Name:    "parcelpoint",
	SSLMode: "disable",
}

var defaultSMTP = SMTP{
	Host: "",
	Port: 587,
}

var defaultAdmin = Admin{
	Password:   "",
	SessionTTL: 8 * time.Hour,
}

var defaultKafka = Kafka{
	Brokers: nil,
	Topic:   "parcelpoint.notifications",
	GroupID: "parcelpoint-notifier",
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       5,
	Burst:      10,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

// DefaultPort returns the default HTTP port.
func DefaultPort() int { return defaultPort }

// DefaultDB returns the default database settings.
func DefaultDB() DB { return defaultDB }

// DefaultSMTP returns the default mail transport settings.
func DefaultSMTP() SMTP { return defaultSMTP }

// DefaultAdmin returns the default access gate settings.
func DefaultAdmin() Admin { return defaultAdmin }

// DefaultKafka returns the default notification pipeline settings.
func DefaultKafka() Kafka { return defaultKafka }

// DefaultRateLimit returns the default rate limiter settings.
func DefaultRateLimit() RateLimit { return defaultRateLimit }
