// Package config provides configuration structures and validation for the
// application. It handles environment-based configuration for the HTTP
// server, SMTP dispatch, the party catalog, and operational parameters.
package config

import (
	"errors"
	"strings"
	"time"
)

// Dataset source selectors for the party catalog.
const (
	DatasetSourceStatic   = "static"
	DatasetSourcePostgres = "postgres"
)

// Config holds the complete application configuration. Each field represents
// a subsystem's configuration and is validated during application startup.
type Config struct {
	Application  ApplicationConfig
	Logging      LoggingConfig
	Server       ServerConfig
	SMTP         SMTPConfig
	Statement    StatementConfig
	Archive      ArchiveConfig
	Dataset      DatasetConfig
	Postgres     PostgresConfig
	Kafka        KafkaConfig
	DispatchPool DispatchPoolConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Port            int           // Port to listen on
	ShutdownTimeout time.Duration // Grace period for server shutdown
	ReadTimeout     time.Duration // Maximum duration for reading entire request
	WriteTimeout    time.Duration // Maximum duration for writing response
	IdleTimeout     time.Duration // Maximum duration to wait for next request
}

// SMTPConfig contains outgoing mail configuration. Host, port, and the from
// address are mandatory: an incomplete SMTP setup fails at startup, not per
// request.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Secure    bool // Implicit TLS
	FromEmail string
}

// StatementConfig contains presentation settings for rendered statements
type StatementConfig struct {
	CompanyName string
}

// ArchiveConfig contains local persistence settings for rendered statements.
// An empty OutputDir selects a platform-dependent default.
type ArchiveConfig struct {
	OutputDir string
}

// DatasetConfig selects the party catalog backing store
type DatasetConfig struct {
	Source string // "static" or "postgres"
}

// PostgresConfig contains PostgreSQL configuration, used when the dataset
// source is "postgres"
type PostgresConfig struct {
	URL             string        // Database connection string
	MaxConns        int32         // Maximum number of open connections
	MinConns        int32         // Minimum number of idle connections
	ConnMaxLifetime time.Duration // Maximum lifetime of a connection
	ConnMaxIdleTime time.Duration // Maximum idle time of a connection
	MigrationsPath  string        // Path to migration files
}

// KafkaConfig contains dispatch-event publishing configuration. Publishing is
// optional and disabled by default.
type KafkaConfig struct {
	Enabled           bool
	Brokers           string
	DispatchTopic     string
	NumPartitions     int
	ReplicationFactor int
	WriteTimeout      time.Duration
}

// DispatchPoolConfig contains worker pool configuration for bulk dispatch
type DispatchPoolConfig struct {
	Size int
}

// validate performs comprehensive validation of all configuration values,
// ensuring they meet minimum requirements and logical constraints
func (c *Config) validate() error {
	var validationErrors []string

	// Validate Server config
	if c.Server.Port <= 0 {
		validationErrors = append(validationErrors, "SERVER_PORT must be greater than 0")
	}
	if c.Server.ShutdownTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_SHUTDOWN_TIMEOUT must be greater than 0")
	}
	if c.Server.ReadTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_READ_TIMEOUT must be greater than 0")
	}
	if c.Server.WriteTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_WRITE_TIMEOUT must be greater than 0")
	}
	if c.Server.IdleTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_IDLE_TIMEOUT must be greater than 0")
	}

	// Validate SMTP config: completeness is a startup-time requirement
	if c.SMTP.Host == "" {
		validationErrors = append(validationErrors, "SMTP_HOST is required")
	}
	if c.SMTP.Port <= 0 {
		validationErrors = append(validationErrors, "SMTP_PORT must be greater than 0")
	}
	if c.SMTP.FromEmail == "" {
		validationErrors = append(validationErrors, "SMTP_FROM_EMAIL is required")
	}

	if c.Statement.CompanyName == "" {
		validationErrors = append(validationErrors, "COMPANY_NAME is required")
	}

	// Validate Dataset config
	switch c.Dataset.Source {
	case DatasetSourceStatic:
	case DatasetSourcePostgres:
		if c.Postgres.URL == "" {
			validationErrors = append(validationErrors, "POSTGRES_URL is required when DATASET_SOURCE is postgres")
		}
		if c.Postgres.MaxConns <= 0 {
			validationErrors = append(validationErrors, "POSTGRES_MAX_CONNS must be greater than 0")
		}
		if c.Postgres.MinConns <= 0 {
			validationErrors = append(validationErrors, "POSTGRES_MIN_CONNS must be greater than 0")
		}
		if c.Postgres.ConnMaxLifetime <= 0 {
			validationErrors = append(validationErrors, "POSTGRES_MAX_CONN_LIFETIME must be greater than 0")
		}
		if c.Postgres.ConnMaxIdleTime <= 0 {
			validationErrors = append(validationErrors, "POSTGRES_MAX_CONN_IDLE_TIME must be greater than 0")
		}
	default:
		validationErrors = append(validationErrors, "DATASET_SOURCE must be either static or postgres")
	}

	// Validate Kafka config only when dispatch events are enabled
	if c.Kafka.Enabled {
		if c.Kafka.Brokers == "" {
			validationErrors = append(validationErrors, "KAFKA_BROKERS is required when KAFKA_ENABLED is true")
		}
		if c.Kafka.DispatchTopic == "" {
			validationErrors = append(validationErrors, "KAFKA_DISPATCH_TOPIC is required when KAFKA_ENABLED is true")
		}
		if c.Kafka.WriteTimeout <= 0 {
			validationErrors = append(validationErrors, "KAFKA_WRITE_TIMEOUT must be greater than 0")
		}
	}

	// Validate DispatchPool config
	if c.DispatchPool.Size <= 0 {
		validationErrors = append(validationErrors, "DISPATCH_POOL_SIZE must be greater than 0")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
