package config

import (
	"github.com/maxviazov/football-stats-service/internal/logger"
)

// Config aggregates every runtime setting of the service.
type Config struct {
	Server   ServerConfig        `mapstructure:"server"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	Mockaroo MockarooConfig      `mapstructure:"mockaroo"`
	Logger   logger.LoggerConfig `mapstructure:"logger"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ReadTimeout     int `mapstructure:"readTimeout"`     // seconds
	WriteTimeout    int `mapstructure:"writeTimeout"`    // seconds
	ShutdownTimeout int `mapstructure:"shutdownTimeout"` // seconds
}

// PostgresConfig controls the connection pool. Durations are seconds.
type PostgresConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"dbname"`
	SSLMode           string `mapstructure:"sslmode"`
	MaxConns          int32  `mapstructure:"maxConns"`
	MinConns          int32  `mapstructure:"minConns"`
	MaxConnLifetime   int    `mapstructure:"maxConnLifetime"`
	MaxConnIdleTime   int    `mapstructure:"maxConnIdleTime"`
	HealthCheckPeriod int    `mapstructure:"healthCheckPeriod"`
}

// MockarooConfig points at the external stat generator.
type MockarooConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
	APIKey  string `mapstructure:"apiKey"`
	Timeout int    `mapstructure:"timeout"` // seconds
}
