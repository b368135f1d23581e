package mcp

import (
	"context"
	"io"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/mcp-resource-tool/internal/logging"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// ToolProvider is a tool that can describe itself and serve calls.
type ToolProvider interface {
	ToolAdapter
	Definition() mcp.Tool
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
	// Upstream is closed together with the server when set.
	Upstream io.Closer
	log      logging.Logger
}

func New(cfg Config) *Server {
	log := cfg.Logger.WithName("mcp")
	mcpServer := server.NewMCPServer(
		"mcp-resource-tool",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	for _, tool := range cfg.Tools {
		adapter := tool
		def := adapter.Definition()
		log.Info("registering tool", "name", def.Name)
		mcpServer.AddTool(def, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:      mcpServer,
		HTTP:     httpServer,
		Handler:  httpServer,
		Upstream: cfg.Upstream,
		log:      log,
	}
}

// ListenAndServe listens on addr until the server is shut down.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("serving streamable http", "addr", addr)
	return s.HTTP.Start(addr)
}

// Shutdown stops the HTTP listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.HTTP.Shutdown(ctx)
}

// ServeStdio serves the same tools over stdin/stdout.
func (s *Server) ServeStdio() error {
	s.log.Info("serving stdio")
	return server.ServeStdio(s.MCP)
}

func (s *Server) Close() {
	if s.Upstream != nil {
		if err := s.Upstream.Close(); err != nil {
			s.log.Error(err, "error closing upstream session")
		}
	}
}
