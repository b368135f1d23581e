package resources

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/roivaz/mcp-resource-tool/internal/logging"
)

// Adapter builds resource tools from MCP sessions. It keeps no state between
// calls; every BuildTool lists the catalog again.
type Adapter struct {
	log logging.Logger
}

// New constructs an Adapter.
func New(log logging.Logger) *Adapter {
	return &Adapter{log: log.WithName("resources")}
}

// ListResources returns the resources advertised by the session, unchanged.
func (a *Adapter) ListResources(ctx context.Context, session Session) ([]mcp.Resource, error) {
	result, err := session.ListResources(ctx, mcp.ListResourcesRequest{})
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return result.Resources, nil
}

// ListResourceTemplates returns the resource templates advertised by the session, unchanged.
func (a *Adapter) ListResourceTemplates(ctx context.Context, session Session) ([]mcp.ResourceTemplate, error) {
	result, err := session.ListResourceTemplates(ctx, mcp.ListResourceTemplatesRequest{})
	if err != nil {
		return nil, fmt.Errorf("list resource templates: %w", err)
	}
	return result.ResourceTemplates, nil
}

// BuildTool lists the session's catalog and returns a tool bound to the session.
// Any listing failure aborts the build.
func (a *Adapter) BuildTool(ctx context.Context, session Session) (*Tool, error) {
	var (
		resourceList []mcp.Resource
		templateList []mcp.ResourceTemplate
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resourceList, err = a.ListResources(gctx, session)
		return err
	})
	g.Go(func() error {
		var err error
		templateList, err = a.ListResourceTemplates(gctx, session)
		return err
	})
	if err := g.Wait(); err != nil {
		a.log.Error(err, "catalog listing failed")
		return nil, err
	}

	entries, err := buildCatalog(resourceList, templateList)
	if err != nil {
		return nil, err
	}
	a.log.Debug("catalog built", "resources", len(resourceList), "templates", len(templateList))

	return &Tool{
		description: renderDescription(entries),
		session:     session,
		log:         a.log.WithName("tool"),
	}, nil
}
