package mcp

import (
	"context"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/mcp-resource-tool/internal/logging"
	"github.com/roivaz/mcp-resource-tool/internal/resources"
	"github.com/roivaz/mcp-resource-tool/internal/upstream"
)

type Config struct {
	Tools    []ToolProvider
	Options  []server.StreamableHTTPOption
	Upstream io.Closer
	Logger   logging.Logger
}

// DefaultConfig connects to the upstream and builds the resource tool from
// its catalog. The returned config owns the upstream session.
func DefaultConfig(ctx context.Context, upstreamCfg upstream.Config, log logging.Logger) (Config, error) {
	session, err := upstream.Connect(ctx, upstreamCfg, log)
	if err != nil {
		return Config{}, err
	}

	tool, err := resources.New(log).BuildTool(ctx, session)
	if err != nil {
		if cerr := session.Close(); cerr != nil {
			log.Error(cerr, "closing upstream after failed tool build")
		}
		return Config{}, fmt.Errorf("build resource tool: %w", err)
	}

	return Config{
		Tools: []ToolProvider{tool},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
		Upstream: session,
		Logger:   log,
	}, nil
}
