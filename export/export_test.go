package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/guidekb/corpus"
	"github.com/c360studio/guidekb/source"
	"github.com/c360studio/guidekb/source/parser"
	"github.com/c360studio/guidekb/store"
	"github.com/c360studio/guidekb/vocabulary/guideline"
)

func loadCorpus(t *testing.T) *store.Store {
	t.Helper()

	doc, err := parser.NewMarkdownParser().Parse(corpus.Filename, corpus.Default())
	require.NoError(t, err)

	s, err := store.Load([]*source.Document{doc})
	require.NoError(t, err)
	return s
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestGetFormatInfo(t *testing.T) {
	info, ok := GetFormatInfo(FormatMarkdown)
	require.True(t, ok)
	assert.Equal(t, ".md", info.Extension)
	assert.Equal(t, "text/markdown", info.MIMEType)

	_, ok = GetFormatInfo(Format("csv"))
	assert.False(t, ok)
}

func TestBuild_PreservesOrder(t *testing.T) {
	s := loadCorpus(t)

	doc, err := Build(s)
	require.NoError(t, err)
	require.Len(t, doc.Categories, len(guideline.All))
	for i, group := range doc.Categories {
		assert.Equal(t, guideline.All[i], group.Category)
		assert.NotEmpty(t, group.Entries)
	}
}

func TestExport_JSON(t *testing.T) {
	s := loadCorpus(t)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, s, FormatJSON))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Len(t, doc.Categories, len(guideline.All))
}

func TestExport_YAML(t *testing.T) {
	s := loadCorpus(t)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, s, FormatYAML))

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Len(t, doc.Categories, len(guideline.All))
}

func TestExport_MarkdownRoundTrips(t *testing.T) {
	s := loadCorpus(t)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, s, FormatMarkdown))

	// The markdown export is itself a loadable corpus.
	doc, err := parser.NewMarkdownParser().Parse("export.md", buf.Bytes())
	require.NoError(t, err)
	reloaded, err := store.Load([]*source.Document{doc})
	require.NoError(t, err)

	assert.Equal(t, s.Len(), reloaded.Len())
	assert.Equal(t, s.Categories(), reloaded.Categories())

	orig := s.Entries()
	round := reloaded.Entries()
	for i := range orig {
		assert.Equal(t, orig[i].Title, round[i].Title)
		assert.Equal(t, orig[i].Category, round[i].Category)
	}
}

func TestExport_MultiLineExamplePartRoundTrips(t *testing.T) {
	corpusText := `## Example Responses

### Flag the race

Q: Is this helper safe to call from two goroutines?
A:
It reads shared state.
Concurrent writers would race.
`
	doc, err := parser.NewMarkdownParser().Parse("test.md", []byte(corpusText))
	require.NoError(t, err)
	s, err := store.Load([]*source.Document{doc})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, s, FormatMarkdown))

	reDoc, err := parser.NewMarkdownParser().Parse("export.md", buf.Bytes())
	require.NoError(t, err)
	reloaded, err := store.Load([]*source.Document{reDoc})
	require.NoError(t, err)

	entries := reloaded.Entries()
	require.Len(t, entries, 1)
	require.Len(t, entries[0].Examples, 1)

	example := entries[0].Examples[0]
	assert.Equal(t, "Is this helper safe to call from two goroutines?", example.Prompt)
	assert.Equal(t, "It reads shared state.\nConcurrent writers would race.", example.Response,
		"a multi-line unfenced part must reload without synthetic fences")
}

func TestExport_UnknownFormat(t *testing.T) {
	s := loadCorpus(t)
	assert.Error(t, Export(&bytes.Buffer{}, s, Format("csv")))
}
