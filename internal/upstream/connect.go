// Package upstream opens MCP client sessions to the server whose resources
// are exposed as a tool.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
	"golang.org/x/oauth2"

	"github.com/roivaz/mcp-resource-tool/internal/logging"
)

const (
	clientName    = "mcp-resource-tool"
	clientVersion = "1.0.0"
)

// ErrNoUpstream is returned when neither a command nor a URL is configured.
var ErrNoUpstream = errors.New("no upstream configured: set upstream_command or upstream_url")

type Config struct {
	// Command launches a stdio MCP server. It takes precedence over URL.
	Command string
	Args    []string
	Env     []string
	// URL points at a streamable HTTP MCP endpoint.
	URL string
	// Token is sent as a bearer token on HTTP connections.
	Token       string
	InitTimeout time.Duration
}

// Connect opens and initializes a session. The caller owns the returned
// client and must Close it.
func Connect(ctx context.Context, cfg Config, log logging.Logger) (*client.Client, error) {
	log = log.WithName("upstream")

	c, err := newClient(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	initCtx, cancel := withTimeout(ctx, cfg.InitTimeout)
	defer cancel()
	info, err := Initialize(initCtx, c)
	if err != nil {
		if cerr := c.Close(); cerr != nil {
			log.Error(cerr, "closing upstream after failed initialize")
		}
		return nil, annotateError(err, cfg.InitTimeout)
	}
	log.Info("upstream session initialized",
		"server", info.ServerInfo.Name,
		"version", info.ServerInfo.Version,
		"protocol", info.ProtocolVersion,
		"resources", info.Capabilities.Resources != nil,
	)
	return c, nil
}

func newClient(ctx context.Context, cfg Config, log logging.Logger) (*client.Client, error) {
	switch {
	case strings.TrimSpace(cfg.Command) != "":
		log.Debug("starting stdio upstream", "command", cfg.Command, "args", cfg.Args)
		c, err := client.NewStdioMCPClient(cfg.Command, cfg.Env, cfg.Args...)
		if err != nil {
			return nil, fmt.Errorf("start stdio upstream %q: %w", cfg.Command, err)
		}
		return c, nil
	case strings.TrimSpace(cfg.URL) != "":
		log.Debug("connecting http upstream", "url", cfg.URL, "auth", cfg.Token != "")
		var opts []transport.StreamableHTTPCOption
		if cfg.Token != "" {
			opts = append(opts, transport.WithHTTPBasicClient(bearerClient(ctx, cfg.Token)))
		}
		c, err := client.NewStreamableHttpClient(cfg.URL, opts...)
		if err != nil {
			return nil, fmt.Errorf("create http upstream %q: %w", cfg.URL, err)
		}
		if err := startOrClose(ctx, c, log); err != nil {
			return nil, fmt.Errorf("start http upstream %q: %w", cfg.URL, err)
		}
		return c, nil
	default:
		return nil, ErrNoUpstream
	}
}

type startCloser interface {
	Start(ctx context.Context) error
	Close() error
}

// startOrClose starts c and closes it again when starting fails.
func startOrClose(ctx context.Context, c startCloser, log logging.Logger) error {
	if err := c.Start(ctx); err != nil {
		if cerr := c.Close(); cerr != nil {
			log.Error(cerr, "closing upstream after failed start")
		}
		return err
	}
	return nil
}

func bearerClient(ctx context.Context, token string) *http.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return oauth2.NewClient(ctx, ts)
}

// Initializer is implemented by *client.Client.
type Initializer interface {
	Initialize(ctx context.Context, request mcp.InitializeRequest) (*mcp.InitializeResult, error)
}

// Initialize performs the MCP handshake as this tool.
func Initialize(ctx context.Context, c Initializer) (*mcp.InitializeResult, error) {
	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{Name: clientName, Version: clientVersion}
	result, err := c.Initialize(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("initialize upstream: %w", err)
	}
	return result, nil
}

func withTimeout(ctx context.Context, to time.Duration) (context.Context, context.CancelFunc) {
	if to <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, to)
}

func annotateError(err error, to time.Duration) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("upstream initialize timed out after %s: %w", to, err)
	}
	return err
}
