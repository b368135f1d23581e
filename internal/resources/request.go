package resources

import (
	"strings"

	"github.com/tidwall/gjson"
)

// ArgResourceURI is the tool's only argument.
const ArgResourceURI = "resource_uri"

// Request is the argument set of a tool invocation.
type Request struct {
	ResourceURI string `json:"resource_uri"`
}

// Validate rejects requests without a non-blank resource URI.
func (r Request) Validate() error {
	if strings.TrimSpace(r.ResourceURI) == "" {
		return ErrMissingResourceURI
	}
	return nil
}

// RequestFromArguments decodes a framework argument map. Keys other than
// resource_uri are ignored.
func RequestFromArguments(args map[string]any) (Request, error) {
	raw, ok := args[ArgResourceURI]
	if !ok || raw == nil {
		return Request{}, ErrMissingResourceURI
	}
	uri, ok := raw.(string)
	if !ok {
		return Request{}, ErrInvalidResourceURI
	}
	req := Request{ResourceURI: uri}
	return req, req.Validate()
}

// RequestFromInput decodes free-form tool input as produced by an agent: a
// JSON object carrying resource_uri, a JSON string, or a bare URI.
func RequestFromInput(input string) (Request, error) {
	trimmed := strings.TrimSpace(input)
	if gjson.Valid(trimmed) {
		parsed := gjson.Parse(trimmed)
		switch {
		case parsed.IsObject():
			field := parsed.Get(ArgResourceURI)
			if !field.Exists() || field.Type == gjson.Null {
				return Request{}, ErrMissingResourceURI
			}
			if field.Type != gjson.String {
				return Request{}, ErrInvalidResourceURI
			}
			trimmed = field.Str
		case parsed.Type == gjson.String:
			trimmed = parsed.Str
		}
	}
	req := Request{ResourceURI: strings.TrimSpace(trimmed)}
	return req, req.Validate()
}
