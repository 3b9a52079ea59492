package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int   `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP  `envPrefix:"HTTP_"`
	Mongo    Mongo `envPrefix:"MONGODB_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"8080"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Mongo contains document store connection parameters. URI has no
// default: a missing MONGODB_URI is a fatal startup condition.
type Mongo struct {
	URI      string `env:"URI,required"`
	Database string `env:"DATABASE" envDefault:"tracker"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
