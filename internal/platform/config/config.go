package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName  string
	HTTPPort     string
	StoreBackend string
	PostgresDSN  string
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "tally"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	backend := strings.TrimSpace(strings.ToLower(os.Getenv("STORE_BACKEND")))
	if backend == "" {
		backend = StoreBackendMemory
	}
	switch backend {
	case StoreBackendMemory, StoreBackendPostgres:
	default:
		return Config{}, fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}

	return Config{
		ServiceName:  service,
		HTTPPort:     port,
		StoreBackend: backend,
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
	}, nil
}
