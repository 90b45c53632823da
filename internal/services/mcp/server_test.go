package mcp

import (
	"context"
	"testing"
)

func TestNewRequiresRegistry(t *testing.T) {
	t.Parallel()

	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil registry")
	}
}

func TestNewBuildsServer(t *testing.T) {
	t.Parallel()

	server, err := New(newTestRegistry(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if server.mcpServer == nil {
		t.Fatal("expected configured mcp server")
	}
}

func TestRunRequiresConfiguredServer(t *testing.T) {
	t.Parallel()

	var server *Server
	if err := server.Run(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil server")
	}
}
