// Package mcp parses MCP command flags and launches the stdio bridge.
package mcp

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/mergington/activities/internal/platform/cmd"
	mcpservice "github.com/mergington/activities/internal/services/mcp"
)

// TransportStdio is the only transport the bridge currently speaks.
const TransportStdio = "stdio"

// Config holds MCP command configuration.
type Config struct {
	Transport string `env:"MERGINGTON_MCP_TRANSPORT" envDefault:"stdio"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport != TransportStdio && cfg.Transport != "" {
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return mcpservice.RunStdio(ctx)
	})
}
