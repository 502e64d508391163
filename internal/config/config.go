// Package config provides configuration management for the subgraph services.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

// Driver is the dialect prefix every composed connection string carries.
const Driver = "postgresql+asyncpg"

// Config holds all configuration for a subgraph service.
type Config struct {
	// Server settings
	Port string

	// Database settings
	Postgres Postgres

	// Bootstrap settings
	DropTables   bool
	CreateTables bool

	// ORM statement logging: silent, error, warn or info
	LogLevel string
}

// Postgres holds the parts a connection string is composed from.
type Postgres struct {
	User     string
	Password string
	Database string
	Host     string // host:port

	// Optional, appended as query parameters only when set.
	SSLMode string
	Schema  string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8000"),

		Postgres: Postgres{
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", "example"),
			Database: getEnv("POSTGRES_DB", "data"),
			Host:     getEnv("POSTGRES_HOST", "postgres:5432"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", ""),
			Schema:   getEnv("POSTGRES_SCHEMA", ""),
		},

		DropTables:   getEnvBool("DB_DROP", false),
		CreateTables: getEnvBool("DB_CREATE", true),

		LogLevel: getEnv("GORM_LOG_LEVEL", "warn"),
	}
}

// ConnectionString renders p as
// postgresql+asyncpg://{user}:{password}@{host}/{database}.
// Values are substituted verbatim.
func (p Postgres) ConnectionString() string {
	connStr := fmt.Sprintf("%s://%s:%s@%s/%s", Driver, p.User, p.Password, p.Host, p.Database)

	params := url.Values{}
	if p.SSLMode != "" {
		params.Set("sslmode", p.SSLMode)
	}
	if p.Schema != "" {
		params.Set("search_path", p.Schema)
	}
	if len(params) > 0 {
		connStr += "?" + params.Encode()
	}
	return connStr
}

// ComposeConnectionString derives the connection string from the POSTGRES_*
// environment variables.
func ComposeConnectionString() string {
	return Load().Postgres.ConnectionString()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
