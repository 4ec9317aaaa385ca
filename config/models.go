package config

import (
	"errors"
	"fmt"
	"time"
)

// Storage backends.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Mentor assignment policies.
const (
	PolicyLowestID = "lowest_id"
	PolicyRandom   = "random"
)

// Config holds application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Postgres   PostgresConfig   `mapstructure:"postgres"`
	SQLite     SQLiteConfig     `mapstructure:"sqlite"`
	Assignment AssignmentConfig `mapstructure:"assignment"`
	Mail       MailConfig       `mapstructure:"mail"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	switch c.Storage.Backend {
	case BackendPostgres:
		if c.Postgres.User == "" || c.Postgres.Password == "" || c.Postgres.DBName == "" {
			return errors.New("postgres credentials are required")
		}
		if c.Postgres.Host == "" {
			return errors.New("postgres.host is required")
		}
	case BackendSQLite:
		if c.SQLite.Path == "" {
			return errors.New("sqlite.path is required")
		}
	default:
		return fmt.Errorf("unknown storage.backend %q", c.Storage.Backend)
	}
	switch c.Assignment.Policy {
	case PolicyLowestID, PolicyRandom:
	default:
		return fmt.Errorf("unknown assignment.policy %q", c.Assignment.Policy)
	}
	if c.Mail.Enabled {
		if c.Mail.Service == "" && c.Mail.Host == "" {
			return errors.New("mail.service or mail.host is required when mail is enabled")
		}
		if c.Mail.Sender() == "" {
			return errors.New("mail.from or mail.username is required when mail is enabled")
		}
	}
	if c.Mail.Workers < 1 {
		return errors.New("mail.workers must be positive")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	CORSOrigins    string        `mapstructure:"cors_origins"`
	BodyLimit      int           `mapstructure:"body_limit"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// StorageConfig selects the repository backend.
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
}

// PostgresConfig describes database connection parameters.
type PostgresConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	DBName         string        `mapstructure:"db_name"`
	SSLMode        string        `mapstructure:"ssl_mode"`
	MigrationsDir  string        `mapstructure:"migrations_dir"`
	MigrateTimeout time.Duration `mapstructure:"migrate_timeout"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	MaxConns       int32         `mapstructure:"max_conns"`
	MinConns       int32         `mapstructure:"min_conns"`
}

// DSN returns a Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

// SQLiteConfig describes the embedded store. Path ":memory:" keeps everything in process.
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// AssignmentConfig controls how a mentor is picked for a new appointment.
type AssignmentConfig struct {
	Policy string `mapstructure:"policy"`
}

// MailConfig describes the confirmation mail transport.
type MailConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Service       string        `mapstructure:"service"`
	Host          string        `mapstructure:"host"`
	Port          int           `mapstructure:"port"`
	Username      string        `mapstructure:"username"`
	Password      string        `mapstructure:"password"`
	From          string        `mapstructure:"from"`
	Subject       string        `mapstructure:"subject"`
	Workers       int           `mapstructure:"workers"`
	QueueSize     int           `mapstructure:"queue_size"`
	RatePerSecond float64       `mapstructure:"rate_per_second"`
	SendTimeout   time.Duration `mapstructure:"send_timeout"`
}

// Sender returns the envelope sender, falling back to the SMTP username.
func (m MailConfig) Sender() string {
	if m.From != "" {
		return m.From
	}
	return m.Username
}
