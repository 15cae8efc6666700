// ABOUTME: MCP server initialization and configuration
// ABOUTME: Exposes the workout log to AI agents over stdio

package mcp

import (
	"context"
	"fmt"

	"github.com/harper/workout/internal/app"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with the workout app.
type Server struct {
	mcp *mcp.Server
	app *app.App
}

// NewServer creates an MCP server with all workout tools registered.
func NewServer(a *app.App) (*Server, error) {
	if a == nil {
		return nil, fmt.Errorf("workout app is required")
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "workout",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp: mcpServer,
		app: a,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
