package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetByExtension(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		filename string
		mimeType string
	}{
		{"guide.md", "text/markdown"},
		{"guide.markdown", "text/markdown"},
		{"guide.txt", "text/markdown"}, // plain text handled by markdown parser
		{"guide.html", "text/html"},
		{"guide.htm", "text/html"},
	}

	for _, tt := range tests {
		p := r.GetByExtension(tt.filename)
		require.NotNil(t, p, "expected parser for %s", tt.filename)
		assert.Equal(t, tt.mimeType, p.MimeType(), "wrong parser for %s", tt.filename)
	}
}

func TestRegistry_Parse_UnknownType(t *testing.T) {
	r := NewRegistry()

	_, err := r.Parse("guide.pdf", []byte("%PDF-1.4"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no parser for file type")
}

func TestRegistry_Parse_RoutesByExtension(t *testing.T) {
	r := NewRegistry()

	doc, err := r.Parse("guide.md", []byte("## Code Quality\n\nText.\n"))
	require.NoError(t, err)
	assert.Contains(t, doc.Body, "## Code Quality")

	doc, err = r.Parse("guide.html", []byte("<html><body><h2>Code Quality</h2><p>Text.</p></body></html>"))
	require.NoError(t, err)
	assert.Contains(t, doc.Body, "## Code Quality")
}

func TestRegistry_ListMimeTypes(t *testing.T) {
	r := NewRegistry()

	types := r.ListMimeTypes()
	assert.Contains(t, types, "text/markdown")
	assert.Contains(t, types, "text/html")
}

func TestMimeTypeFromExtension(t *testing.T) {
	assert.Equal(t, "text/markdown", MimeTypeFromExtension(".MD"))
	assert.Equal(t, "text/plain", MimeTypeFromExtension(".txt"))
	assert.Equal(t, "application/octet-stream", MimeTypeFromExtension(".xyz"))
}
