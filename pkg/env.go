package pkg

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultSSHAddr    = ":2222"
	DefaultViewer     = "xchess"
	ServerIdleTimeout = 5 * time.Minute
)

// ServerConfig holds the ssh server settings
type ServerConfig struct {
	Addr        string
	HostKeyPath string
	Viewer      string
	IdleTimeout time.Duration
}

// LoadServerConfig reads the XCHESS_* variables. Files are loaded with
// godotenv first and never override variables already set; missing files are
// ignored.
func LoadServerConfig(files ...string) (ServerConfig, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return ServerConfig{}, fmt.Errorf("env: %s: %w", f, err)
		}
	}

	cfg := ServerConfig{
		Addr:        DefaultSSHAddr,
		Viewer:      DefaultViewer,
		IdleTimeout: ServerIdleTimeout,
	}
	if v, ok := os.LookupEnv("XCHESS_SSH_ADDR"); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := os.LookupEnv("XCHESS_HOST_KEY"); ok {
		cfg.HostKeyPath = v
	}
	if v, ok := os.LookupEnv("XCHESS_VIEWER"); ok && v != "" {
		cfg.Viewer = v
	}
	if v, ok := os.LookupEnv("XCHESS_IDLE_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("env: XCHESS_IDLE_TIMEOUT: %w", err)
		}
		cfg.IdleTimeout = d
	}
	return cfg, nil
}
