// Package resources turns the resource catalog of an MCP server into a single
// callable tool. The tool lists every resource and resource template in its
// description and, when invoked with a resource URI, reads that resource
// through the session it was built from.
package resources

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Session is the subset of an MCP client session the adapter needs.
// *client.Client from mcp-go satisfies it.
type Session interface {
	ListResources(ctx context.Context, request mcp.ListResourcesRequest) (*mcp.ListResourcesResult, error)
	ListResourceTemplates(ctx context.Context, request mcp.ListResourceTemplatesRequest) (*mcp.ListResourceTemplatesResult, error)
	ReadResource(ctx context.Context, request mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error)
}
