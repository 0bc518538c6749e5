package store

import (
	"strings"

	"github.com/c360studio/guidekb/vocabulary/guideline"
)

// ExampleKind discriminates example pair shapes.
type ExampleKind string

const (
	// ExampleQuestionResponse is a worked question with its expected response.
	ExampleQuestionResponse ExampleKind = "question-response"

	// ExampleBeforeAfter is an illustrative before/after rewrite.
	ExampleBeforeAfter ExampleKind = "before-after"
)

// Example is one illustrative pair attached to an entry.
type Example struct {
	// Kind is the pair shape.
	Kind ExampleKind `json:"kind"`

	// Prompt is the question or the "before" text.
	Prompt string `json:"prompt"`

	// Response is the answer or the "after" text.
	Response string `json:"response"`
}

// Entry is one discrete piece of advisory content under a category.
// Entries are read-only once loaded; later entries never override earlier
// ones; all guidance in a category applies simultaneously.
type Entry struct {
	// ID is the stable load-time identifier (zero-padded ordinal + title slug).
	ID string `json:"id"`

	// Category is the fixed classification bucket.
	Category guideline.Category `json:"category"`

	// Title is the short entry label.
	Title string `json:"title"`

	// Body is the advisory content as ordered lines.
	Body []string `json:"body,omitempty"`

	// Examples are optional illustrative pairs in document order.
	Examples []Example `json:"examples,omitempty"`

	// Source is the filename the entry was loaded from.
	Source string `json:"source,omitempty"`
}

// BodyText returns the body joined into a single string.
func (e Entry) BodyText() string {
	return strings.Join(e.Body, "\n")
}

// matches reports whether the lowercased keyword occurs in the entry title
// or body. An empty keyword matches everything.
func (e Entry) matches(keyword string) bool {
	if keyword == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.Title), keyword) {
		return true
	}
	for _, line := range e.Body {
		if strings.Contains(strings.ToLower(line), keyword) {
			return true
		}
	}
	return false
}
