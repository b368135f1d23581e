package resources

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"
)

const descriptionHeader = `This tool returns the contents of a MCP resource, from a list of available resources.
The list of available resources are:
`

// CatalogEntry is the display record for one resource or resource template.
// Concrete resources carry their URI in URITemplate so both kinds render alike.
type CatalogEntry struct {
	URITemplate string          `json:"uriTemplate"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	MIMEType    string          `json:"mimeType,omitempty"`
	Size        *int64          `json:"size,omitempty"`
	Annotations json.RawMessage `json:"annotations,omitempty"`
}

// String renders the entry as one line of compact JSON. Names and other
// strings are written without HTML escaping so they appear verbatim.
func (e CatalogEntry) String() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e); err != nil {
		panic(err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

// Entries are read from the wire encoding of each descriptor so optional
// fields are picked up the same way for both kinds.

func resourceEntry(r mcp.Resource) (CatalogEntry, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return CatalogEntry{}, fmt.Errorf("encode resource %q: %w", r.URI, err)
	}
	entry := entryFromJSON(raw, "uri")
	if size := gjson.GetBytes(raw, "size"); size.Exists() {
		n := size.Int()
		entry.Size = &n
	}
	return entry, nil
}

func templateEntry(t mcp.ResourceTemplate) (CatalogEntry, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return CatalogEntry{}, fmt.Errorf("encode resource template %q: %w", t.Name, err)
	}
	return entryFromJSON(raw, "uriTemplate"), nil
}

func entryFromJSON(raw []byte, uriKey string) CatalogEntry {
	fields := gjson.GetManyBytes(raw, uriKey, "name", "description", "mimeType", "annotations")
	entry := CatalogEntry{
		URITemplate: fields[0].String(),
		Name:        fields[1].String(),
		Description: fields[2].String(),
		MIMEType:    fields[3].String(),
	}
	if fields[4].IsObject() {
		entry.Annotations = json.RawMessage(fields[4].Raw)
	}
	return entry
}

// buildCatalog projects resources followed by templates into one ordered list.
func buildCatalog(resourceList []mcp.Resource, templateList []mcp.ResourceTemplate) ([]CatalogEntry, error) {
	entries := make([]CatalogEntry, 0, len(resourceList)+len(templateList))
	for _, r := range resourceList {
		entry, err := resourceEntry(r)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	for _, t := range templateList {
		entry, err := templateEntry(t)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func renderDescription(entries []CatalogEntry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return descriptionHeader + strings.Join(lines, "\n")
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
