package resources

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/require"

	"github.com/roivaz/mcp-resource-tool/internal/upstream"
)

func newInProcessSession(t *testing.T) *client.Client {
	t.Helper()

	srv := server.NewMCPServer("resources-test", "0.0.1", server.WithResourceCapabilities(false, false))
	srv.AddResource(testResource(), func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{URI: req.Params.URI, MIMEType: "text/plain", Text: "resource body"},
		}, nil
	})
	srv.AddResourceTemplate(testTemplate(), func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		param := strings.TrimPrefix(req.Params.URI, "test://template/")
		return []mcp.ResourceContents{
			mcp.TextResourceContents{URI: req.Params.URI, MIMEType: "text/plain", Text: "first " + param},
			mcp.TextResourceContents{URI: req.Params.URI, MIMEType: "text/plain", Text: "second " + param},
			mcp.BlobResourceContents{URI: req.Params.URI, MIMEType: "image/png", Blob: "iVBORw0KGgo="},
		}, nil
	})

	c, err := client.NewInProcessClient(srv)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	require.NoError(t, c.Start(ctx))
	_, err = upstream.Initialize(ctx, c)
	require.NoError(t, err)
	return c
}

func TestInProcessSessionEndToEnd(t *testing.T) {
	ctx := context.Background()
	session := newInProcessSession(t)

	tool, err := newTestAdapter().BuildTool(ctx, session)
	require.NoError(t, err)
	require.Equal(t, "get_mcp_resource", tool.Name())
	require.Contains(t, tool.Description(), "Test Resource")
	require.Contains(t, tool.Description(), "Test Template")

	result, err := tool.Invoke(ctx, Request{ResourceURI: "test://resource"})
	require.NoError(t, err)
	require.Equal(t, "resource body", result.Content.Value())
	require.Nil(t, result.Artifacts)

	result, err = tool.Invoke(ctx, Request{ResourceURI: "test://template/abc"})
	require.NoError(t, err)
	require.Equal(t, []string{"first abc", "second abc"}, result.Content.Value())
	require.Len(t, result.Artifacts, 1)
	require.IsType(t, mcp.ImageContent{}, result.Artifacts[0])
}

func TestInProcessUnknownResource(t *testing.T) {
	ctx := context.Background()
	tool, err := newTestAdapter().BuildTool(ctx, newInProcessSession(t))
	require.NoError(t, err)

	_, err = tool.Invoke(ctx, Request{ResourceURI: "nope://missing"})
	require.Error(t, err)

	_, err = tool.Invoke(ctx, Request{ResourceURI: "test://resource"})
	require.NoError(t, err)
}
