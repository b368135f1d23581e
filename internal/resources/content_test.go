package resources

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func text(s string) mcp.TextResourceContents {
	return mcp.TextResourceContents{URI: "test://resource", MIMEType: "text/plain", Text: s}
}

func TestNormalizeSingleTextIsScalar(t *testing.T) {
	result, err := NormalizeResult([]mcp.ResourceContents{text("hello")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := result.Content.Value().(string); !ok || v != "hello" {
		t.Fatalf("expected scalar hello, got %#v", result.Content.Value())
	}
	if result.Artifacts != nil {
		t.Fatalf("expected nil artifacts, got %#v", result.Artifacts)
	}
}

func TestNormalizeMultipleTextsIsSequence(t *testing.T) {
	result, err := NormalizeResult([]mcp.ResourceContents{text("a"), &mcp.TextResourceContents{Text: "b"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(result.Content.Value(), []string{"a", "b"}) {
		t.Fatalf("expected [a b], got %#v", result.Content.Value())
	}
	if result.Content.String() != `["a","b"]` {
		t.Fatalf("unexpected rendering %s", result.Content.String())
	}
}

func TestNormalizeImageBecomesArtifact(t *testing.T) {
	image := mcp.BlobResourceContents{URI: "test://img", MIMEType: "image/png", Blob: "aGVsbG8="}
	result, err := NormalizeResult([]mcp.ResourceContents{text("caption"), image})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, ok := result.Content.Scalar(); !ok || s != "caption" {
		t.Fatalf("expected scalar caption, got %#v", result.Content.Value())
	}
	if len(result.Artifacts) != 1 {
		t.Fatalf("expected 1 artifact, got %d", len(result.Artifacts))
	}
	img, ok := result.Artifacts[0].(mcp.ImageContent)
	if !ok {
		t.Fatalf("expected image content, got %T", result.Artifacts[0])
	}
	if img.Data != "aGVsbG8=" || img.MIMEType != "image/png" {
		t.Fatalf("unexpected image %+v", img)
	}
}

func TestNormalizeBinaryBlobBecomesEmbeddedResource(t *testing.T) {
	blob := &mcp.BlobResourceContents{URI: "test://bin", MIMEType: "application/octet-stream", Blob: "AAE="}
	first := mcp.BlobResourceContents{URI: "test://first", MIMEType: "image/jpeg", Blob: "AA=="}
	result, err := NormalizeResult([]mcp.ResourceContents{first, blob})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Artifacts) != 2 {
		t.Fatalf("expected 2 artifacts, got %d", len(result.Artifacts))
	}
	if _, ok := result.Artifacts[0].(mcp.ImageContent); !ok {
		t.Fatalf("expected order preserved, got %T first", result.Artifacts[0])
	}
	embedded, ok := result.Artifacts[1].(mcp.EmbeddedResource)
	if !ok {
		t.Fatalf("expected embedded resource, got %T", result.Artifacts[1])
	}
	inner, ok := embedded.Resource.(mcp.BlobResourceContents)
	if !ok || inner.URI != "test://bin" {
		t.Fatalf("unexpected embedded resource %#v", embedded.Resource)
	}
}

func TestNormalizeNoTextIsEmptySequence(t *testing.T) {
	image := mcp.BlobResourceContents{MIMEType: "image/png", Blob: "AA=="}
	result, err := NormalizeResult([]mcp.ResourceContents{image})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parts, ok := result.Content.Value().([]string)
	if !ok || parts == nil || len(parts) != 0 {
		t.Fatalf("expected empty sequence, got %#v", result.Content.Value())
	}
	if result.Content.String() != "[]" {
		t.Fatalf("unexpected rendering %q", result.Content.String())
	}
}

func TestNormalizeEmptyRead(t *testing.T) {
	result, err := NormalizeResult(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Artifacts != nil {
		t.Fatalf("expected nil artifacts")
	}
	if len(result.Content.Parts()) != 0 {
		t.Fatalf("expected no text parts")
	}
}

func TestNormalizeRejectsUnknownContent(t *testing.T) {
	_, err := NormalizeResult([]mcp.ResourceContents{nil})
	if !errors.Is(err, ErrUnsupportedContent) {
		t.Fatalf("expected ErrUnsupportedContent, got %v", err)
	}
}

func TestContentPartsIsACopy(t *testing.T) {
	c := NewContent("a", "b")
	parts := c.Parts()
	parts[0] = "changed"
	if c.Parts()[0] != "a" {
		t.Fatalf("content mutated through Parts")
	}
}
