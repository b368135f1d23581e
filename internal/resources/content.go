package resources

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// Content is the textual part of a resource read. A single text part is a
// scalar; any other count, including zero, is an ordered sequence.
type Content struct {
	parts []string
}

// NewContent returns Content over the given text parts.
func NewContent(parts ...string) Content {
	if parts == nil {
		parts = []string{}
	}
	return Content{parts: parts}
}

// Scalar returns the single text value and true when exactly one part exists.
func (c Content) Scalar() (string, bool) {
	if len(c.parts) == 1 {
		return c.parts[0], true
	}
	return "", false
}

// Parts returns a copy of the text parts in read order.
func (c Content) Parts() []string {
	out := make([]string, len(c.parts))
	copy(out, c.parts)
	return out
}

// Value returns a string for a scalar and a []string otherwise.
func (c Content) Value() any {
	if s, ok := c.Scalar(); ok {
		return s
	}
	return c.Parts()
}

// String renders scalars verbatim and sequences as a JSON array.
func (c Content) String() string {
	if s, ok := c.Scalar(); ok {
		return s
	}
	return string(mustMarshal(c.Parts()))
}

// MarshalJSON encodes the scalar or sequence form returned by Value.
func (c Content) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Value())
}

// Result is the normalized outcome of reading one resource.
type Result struct {
	Content Content `json:"content"`
	// Artifacts holds non-text parts in read order. It is nil, never empty,
	// when the read produced none.
	Artifacts []mcp.Content `json:"artifacts,omitempty"`
}

// NormalizeResult partitions read contents into text and artifacts,
// preserving relative order within each group.
func NormalizeResult(contents []mcp.ResourceContents) (Result, error) {
	texts := []string{}
	var artifacts []mcp.Content
	for i, part := range contents {
		switch p := part.(type) {
		case mcp.TextResourceContents:
			texts = append(texts, p.Text)
		case *mcp.TextResourceContents:
			texts = append(texts, p.Text)
		case mcp.BlobResourceContents:
			artifacts = append(artifacts, blobArtifact(p))
		case *mcp.BlobResourceContents:
			artifacts = append(artifacts, blobArtifact(*p))
		default:
			return Result{}, fmt.Errorf("%w: part %d has type %T", ErrUnsupportedContent, i, part)
		}
	}
	return Result{Content: NewContent(texts...), Artifacts: artifacts}, nil
}

// Image blobs become image content; any other blob is passed on as an
// embedded resource.
func blobArtifact(b mcp.BlobResourceContents) mcp.Content {
	if strings.HasPrefix(strings.ToLower(b.MIMEType), "image/") {
		return mcp.NewImageContent(b.Blob, b.MIMEType)
	}
	return mcp.NewEmbeddedResource(b)
}
