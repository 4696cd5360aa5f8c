// ABOUTME: MCP server setup for the habit tracker store.
// ABOUTME: Wraps MCP server with storage Repository connection.
package mcp

import (
	"context"

	"github.com/harperreed/habits/internal/engine"
	"github.com/harperreed/habits/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	stats     *engine.StatsService
}

// NewServer creates a new MCP server with the given storage.
func NewServer(repo storage.Repository) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "habits",
			Version: "1.0.0",
		},
		nil,
	)

	// The stats service subscribes to repo change notifications, so
	// tool mutations keep the snapshot current for the whole session.
	stats, err := engine.NewStatsService(repo)
	if err != nil {
		return nil, err
	}

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		stats:     stats,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
