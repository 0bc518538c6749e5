package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownParser_Parse_NoFrontmatter(t *testing.T) {
	p := NewMarkdownParser()

	content := []byte("# Guidelines\n\nSome guidance text.\n")
	doc, err := p.Parse("guidelines.md", content)
	require.NoError(t, err)

	assert.Equal(t, "guidelines.md", doc.Filename)
	assert.Equal(t, string(content), doc.Content)
	assert.Equal(t, string(content), doc.Body)
	assert.False(t, doc.HasFrontmatter())
	assert.Contains(t, doc.ID, "doc.guidelines.")
}

func TestMarkdownParser_Parse_WithFrontmatter(t *testing.T) {
	p := NewMarkdownParser()

	content := []byte(`---
title: Engineering Guidelines
version: 2
---

# Guidelines

Body text.
`)
	doc, err := p.Parse("guide.md", content)
	require.NoError(t, err)

	require.True(t, doc.HasFrontmatter())
	assert.Equal(t, "Engineering Guidelines", doc.Frontmatter["title"])
	assert.Equal(t, 2, doc.Frontmatter["version"])
	assert.NotContains(t, doc.Body, "title:")
	assert.Contains(t, doc.Body, "# Guidelines")
}

func TestMarkdownParser_Parse_UnclosedFrontmatter(t *testing.T) {
	p := NewMarkdownParser()

	content := []byte("---\ntitle: broken\n\n# Heading\n")
	doc, err := p.Parse("guide.md", content)
	require.NoError(t, err)

	// Unparseable frontmatter falls back to whole content as body
	assert.False(t, doc.HasFrontmatter())
	assert.Equal(t, string(content), doc.Body)
}

func TestMarkdownParser_IDStability(t *testing.T) {
	p := NewMarkdownParser()
	content := []byte("# Same content\n")

	a, err := p.Parse("guide.md", content)
	require.NoError(t, err)
	b, err := p.Parse("guide.md", content)
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID, "same file and content should produce the same ID")

	c, err := p.Parse("guide.md", []byte("# Different content\n"))
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, c.ID)
}

func TestMarkdownParser_CanParse(t *testing.T) {
	p := NewMarkdownParser()

	assert.True(t, p.CanParse("text/markdown"))
	assert.True(t, p.CanParse("text/plain"))
	assert.False(t, p.CanParse("text/html"))
	assert.False(t, p.CanParse("application/pdf"))
}

func TestSanitizeID(t *testing.T) {
	assert.Equal(t, "coding-guidelines", SanitizeID("Coding Guidelines"))
	assert.Equal(t, "v2-final", SanitizeID("V2_Final!"))
	assert.Equal(t, "", SanitizeID("日本語"))
}
