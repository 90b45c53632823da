// Package mcp exposes the activity registry to agent tooling over the Model
// Context Protocol. It reuses the same registry the web surface serves, so
// tool calls observe and produce the same state transitions.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mergington/activities/internal/activities"
	"github.com/mergington/activities/internal/platform/branding"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// serverVersion identifies the MCP server version.
const serverVersion = "0.1.0"

// Server hosts the MCP server over a shared activity registry.
type Server struct {
	mcpServer *mcp.Server
	registry  *activities.Registry
}

// New creates a configured MCP server with catalog and signup tools bound to
// the given registry.
func New(registry *activities.Registry) (*Server, error) {
	if registry == nil {
		return nil, errors.New("activity registry is required")
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: branding.AppName, Version: serverVersion}, &mcp.ServerOptions{
		Instructions: "Browse the extracurricular activity catalog and sign students up by email.",
	})
	mcp.AddTool(mcpServer, listActivitiesTool(), listActivitiesHandler(registry))
	mcp.AddTool(mcpServer, signupStudentTool(), signupStudentHandler(registry))

	return &Server{mcpServer: mcpServer, registry: registry}, nil
}

// Run serves MCP over the given transport until the context ends.
// Context cancellation is the normal shutdown path, not a failure.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return errors.New("mcp server is not configured")
	}
	if err := s.mcpServer.Run(ctx, transport); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("serve mcp: %w", err)
	}
	return nil
}

// RunStdio builds a registry from the seed catalog and serves it on stdio.
func RunStdio(ctx context.Context) error {
	registry, err := activities.NewRegistry(activities.SeedCatalog())
	if err != nil {
		return fmt.Errorf("seed registry: %w", err)
	}
	server, err := New(registry)
	if err != nil {
		return err
	}
	return server.Run(ctx, &mcp.StdioTransport{})
}
