// Package export serializes a loaded guideline store into portable formats.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/guidekb/store"
	"github.com/c360studio/guidekb/vocabulary/guideline"
)

// Format identifies an export serialization.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatJSON: {
		Name:        FormatJSON,
		MIMEType:    "application/json",
		Extension:   ".json",
		Description: "JSON document grouped by category",
	},
	FormatYAML: {
		Name:        FormatYAML,
		MIMEType:    "application/yaml",
		Extension:   ".yaml",
		Description: "YAML document grouped by category",
	},
	FormatMarkdown: {
		Name:        FormatMarkdown,
		MIMEType:    "text/markdown",
		Extension:   ".md",
		Description: "Markdown in the source corpus layout",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// ParseFormat validates a format name from user input.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if _, ok := FormatRegistry[f]; !ok {
		return "", fmt.Errorf("unsupported export format %q (supported: json, yaml, markdown)", s)
	}
	return f, nil
}

// Document is the serialized shape of a loaded store.
type Document struct {
	Categories []CategoryGroup `json:"categories" yaml:"categories"`
}

// CategoryGroup holds one category's entries in document order.
type CategoryGroup struct {
	Category guideline.Category `json:"category" yaml:"category"`
	Entries  []Entry            `json:"entries" yaml:"entries"`
}

// Entry is the serialized form of a store entry.
type Entry struct {
	ID       string    `json:"id" yaml:"id"`
	Title    string    `json:"title" yaml:"title"`
	Body     []string  `json:"body,omitempty" yaml:"body,omitempty"`
	Examples []Example `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// Example is the serialized form of a worked example.
type Example struct {
	Kind     string `json:"kind" yaml:"kind"`
	Prompt   string `json:"prompt" yaml:"prompt"`
	Response string `json:"response" yaml:"response"`
}

// Build converts a store into the export document shape. Categories keep
// their corpus order, entries keep document order within each category.
func Build(s *store.Store) (*Document, error) {
	doc := &Document{}
	for _, category := range s.Categories() {
		entries, err := s.GetByCategory(category)
		if err != nil {
			return nil, err
		}

		group := CategoryGroup{Category: category}
		for _, entry := range entries {
			out := Entry{
				ID:    entry.ID,
				Title: entry.Title,
				Body:  entry.Body,
			}
			for _, example := range entry.Examples {
				out.Examples = append(out.Examples, Example{
					Kind:     string(example.Kind),
					Prompt:   example.Prompt,
					Response: example.Response,
				})
			}
			group.Entries = append(group.Entries, out)
		}
		doc.Categories = append(doc.Categories, group)
	}
	return doc, nil
}

// Export writes the store to w in the given format.
func Export(w io.Writer, s *store.Store, format Format) error {
	doc, err := Build(s)
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatMarkdown:
		return writeMarkdown(w, doc)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}
