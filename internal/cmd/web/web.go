// Package web parses web service flags and launches the HTTP server.
package web

import (
	"context"
	"flag"
	"fmt"

	"github.com/mergington/activities/internal/activities"
	entrypoint "github.com/mergington/activities/internal/platform/cmd"
	webservice "github.com/mergington/activities/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"MERGINGTON_WEB_HTTP_ADDR" envDefault:"localhost:8000"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run seeds the registry and serves the activities HTTP API until the
// context ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		registry, err := activities.NewRegistry(activities.SeedCatalog())
		if err != nil {
			return fmt.Errorf("seed registry: %w", err)
		}
		server, err := webservice.NewServer(webservice.Config{HTTPAddr: cfg.HTTPAddr}, registry)
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
