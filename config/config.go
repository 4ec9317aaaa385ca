// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	return load(envFile)
}

func load(path string) (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(path); err == nil {
		for k, val := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, val)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("http.request_timeout", 5*time.Second)
	v.SetDefault("http.cors_origins", "*")
	v.SetDefault("http.body_limit", 64*1024)

	v.SetDefault("storage.backend", BackendPostgres)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.db_name", "mentorias")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("postgres.migrations_dir", "db/migrations")
	v.SetDefault("postgres.migrate_timeout", 10*time.Second)
	v.SetDefault("postgres.query_timeout", 2*time.Second)
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 2)

	v.SetDefault("sqlite.path", "mentorias.db")

	v.SetDefault("assignment.policy", PolicyLowestID)

	v.SetDefault("mail.enabled", true)
	v.SetDefault("mail.service", "")
	v.SetDefault("mail.host", "")
	v.SetDefault("mail.port", 0)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.from", "")
	v.SetDefault("mail.subject", "Your English mentoring session is booked")
	v.SetDefault("mail.workers", 2)
	v.SetDefault("mail.queue_size", 128)
	v.SetDefault("mail.rate_per_second", 5.0)
	v.SetDefault("mail.send_timeout", 15*time.Second)
}

// envAliases keeps the legacy deployment variable names working next to the
// canonical SECTION_KEY form produced by the key replacer.
var envAliases = map[string][]string{
	"server.port":       {"PORT"},
	"postgres.host":     {"DB_HOST"},
	"postgres.port":     {"DB_PORT"},
	"postgres.user":     {"DB_USER"},
	"postgres.password": {"DB_PASSWORD"},
	"postgres.db_name":  {"DB_DATABASE"},
	"mail.service":      {"EMAIL_SERVICE"},
	"mail.username":     {"EMAIL_USER"},
	"mail.password":     {"EMAIL_PASS"},
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"http.cors_origins",
		"http.body_limit",
		"storage.backend",
		"postgres.host",
		"postgres.port",
		"postgres.user",
		"postgres.password",
		"postgres.db_name",
		"postgres.ssl_mode",
		"postgres.migrations_dir",
		"postgres.migrate_timeout",
		"postgres.query_timeout",
		"postgres.max_conns",
		"postgres.min_conns",
		"sqlite.path",
		"assignment.policy",
		"mail.enabled",
		"mail.service",
		"mail.host",
		"mail.port",
		"mail.username",
		"mail.password",
		"mail.from",
		"mail.subject",
		"mail.workers",
		"mail.queue_size",
		"mail.rate_per_second",
		"mail.send_timeout",
	}

	for _, k := range keys {
		names := append([]string{strings.ToUpper(strings.ReplaceAll(k, ".", "_"))}, envAliases[k]...)
		_ = v.BindEnv(append([]string{k}, names...)...)
	}
}
