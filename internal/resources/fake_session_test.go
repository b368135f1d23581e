package resources

import (
	"context"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
)

type fakeSession struct {
	resources   []mcp.Resource
	templates   []mcp.ResourceTemplate
	contents    map[string][]mcp.ResourceContents
	listErr     error
	templateErr error
	readErr     error

	mu       sync.Mutex
	readURIs []string
}

func (s *fakeSession) ListResources(ctx context.Context, _ mcp.ListResourcesRequest) (*mcp.ListResourcesResult, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return &mcp.ListResourcesResult{Resources: s.resources}, nil
}

func (s *fakeSession) ListResourceTemplates(ctx context.Context, _ mcp.ListResourceTemplatesRequest) (*mcp.ListResourceTemplatesResult, error) {
	if s.templateErr != nil {
		return nil, s.templateErr
	}
	return &mcp.ListResourceTemplatesResult{ResourceTemplates: s.templates}, nil
}

func (s *fakeSession) ReadResource(ctx context.Context, req mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	s.mu.Lock()
	s.readURIs = append(s.readURIs, req.Params.URI)
	s.mu.Unlock()
	if s.readErr != nil {
		return nil, s.readErr
	}
	return &mcp.ReadResourceResult{Contents: s.contents[req.Params.URI]}, nil
}

func (s *fakeSession) reads() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.readURIs...)
}

func testResource() mcp.Resource {
	return mcp.NewResource("test://resource", "Test Resource",
		mcp.WithResourceDescription("Test Description"),
		mcp.WithMIMEType("text/plain"),
	)
}

func testTemplate() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate("test://template/{param}", "Test Template",
		mcp.WithTemplateDescription("Test Template Description"),
		mcp.WithTemplateMIMEType("text/plain"),
	)
}
