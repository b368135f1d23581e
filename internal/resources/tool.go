package resources

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tmc/langchaingo/tools"

	"github.com/roivaz/mcp-resource-tool/internal/logging"
)

const (
	// ToolName is the fixed name of the resource tool.
	ToolName = "get_mcp_resource"
	// ResponseFormat marks results as text content paired with optional artifacts.
	ResponseFormat = "content_and_artifact"
)

var _ tools.Tool = (*Tool)(nil)

// Tool reads resources from the session it was built from. It is safe to
// reuse after a failed invocation.
type Tool struct {
	description string
	session     Session
	log         logging.Logger
}

// Name returns ToolName.
func (t *Tool) Name() string { return ToolName }

// Description lists the catalog the tool was built from.
func (t *Tool) Description() string { return t.description }

// ResponseFormat returns "content_and_artifact".
func (t *Tool) ResponseFormat() string { return ResponseFormat }

// Invoke reads the requested resource and normalizes the result.
func (t *Tool) Invoke(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	read := mcp.ReadResourceRequest{}
	read.Params.URI = req.ResourceURI
	t.log.Debug("reading resource", "uri", req.ResourceURI)
	resp, err := t.session.ReadResource(ctx, read)
	if err != nil {
		t.log.Error(err, "resource read failed", "uri", req.ResourceURI)
		return Result{}, fmt.Errorf("read resource %q: %w", req.ResourceURI, err)
	}
	return NormalizeResult(resp.Contents)
}

// InvokeArguments decodes an argument map and invokes the tool.
func (t *Tool) InvokeArguments(ctx context.Context, args map[string]any) (Result, error) {
	req, err := RequestFromArguments(args)
	if err != nil {
		return Result{}, err
	}
	return t.Invoke(ctx, req)
}

// Call implements tools.Tool. Only the text content is returned; artifacts
// are available through Invoke.
func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	req, err := RequestFromInput(input)
	if err != nil {
		return "", err
	}
	result, err := t.Invoke(ctx, req)
	if err != nil {
		return "", err
	}
	return result.Content.String(), nil
}

// Definition returns the MCP tool definition, including the argument schema.
func (t *Tool) Definition() mcp.Tool {
	return mcp.NewTool(ToolName,
		mcp.WithDescription(t.description),
		mcp.WithString(ArgResourceURI,
			mcp.Required(),
			mcp.Description("URI of the resource to read, taken from the list of available resources. Template parameters must be filled in."),
		),
	)
}

// Schema returns the argument schema.
func (t *Tool) Schema() mcp.ToolInputSchema {
	return t.Definition().InputSchema
}

// ToolAdapter serves the tool as an MCP tool call. Bad arguments produce a
// tool error result; session failures are returned as errors.
func (t *Tool) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	request, err := RequestFromArguments(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := t.Invoke(ctx, request)
	if err != nil {
		return nil, err
	}

	parts := result.Content.Parts()
	content := make([]mcp.Content, 0, len(parts)+len(result.Artifacts))
	for _, text := range parts {
		content = append(content, mcp.NewTextContent(text))
	}
	content = append(content, result.Artifacts...)
	return &mcp.CallToolResult{Content: content}, nil
}
