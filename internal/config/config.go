// Package config loads server, JWT and password configuration from the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ServerConfig holds the settings the API server and the CLI need to run.
type ServerConfig struct {
	DatabaseURL string
	Port        int
	DataDir     string
}

// NewServerConfig reads DATABASE_URL (required), PORT (default 8080) and
// DATA_DIR (default "data") from the environment.
func NewServerConfig() (*ServerConfig, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("PORT out of range: %d", port)
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	return &ServerConfig{
		DatabaseURL: databaseURL,
		Port:        port,
		DataDir:     dataDir,
	}, nil
}

// Addr returns the listen address for the configured port
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
