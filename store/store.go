package store

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/c360studio/guidekb/source"
	"github.com/c360studio/guidekb/source/parser"
	"github.com/c360studio/guidekb/vocabulary/guideline"
)

// Store is the immutable in-memory index over all parsed guidance entries.
// All query results are returned in document order.
type Store struct {
	entries    []Entry
	byCategory map[guideline.Category][]int
	categories []guideline.Category // first-appearance order
	logger     *slog.Logger
	metrics    *Metrics
}

// Option configures a Store at load time.
type Option func(*Store)

// WithLogger sets the logger used during load. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics attaches load and query instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// Load builds a Store from parsed source documents in a single pass.
// Document order is the order given; entry order within a document follows
// the source text. Any structural mismatch fails the whole load; there is
// no partial store.
func Load(docs []*source.Document, opts ...Option) (*Store, error) {
	s := &Store{
		byCategory: make(map[guideline.Category][]int),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if len(docs) == 0 {
		s.metrics.loadFailure()
		return nil, errors.New("no source documents")
	}

	seq := 0
	for _, doc := range docs {
		raw, err := scanDocument(doc)
		if err != nil {
			s.metrics.loadFailure()
			return nil, err
		}

		for _, r := range raw {
			seq++
			entry := Entry{
				ID:       entryID(seq, r.title),
				Category: r.category,
				Title:    r.title,
				Body:     r.body,
				Examples: r.examples,
				Source:   doc.Filename,
			}

			idx := len(s.entries)
			s.entries = append(s.entries, entry)
			if _, seen := s.byCategory[entry.Category]; !seen {
				s.categories = append(s.categories, entry.Category)
			}
			s.byCategory[entry.Category] = append(s.byCategory[entry.Category], idx)
		}

		s.logger.Debug("Loaded guidance document",
			slog.String("document", doc.Filename),
			slog.Int("entries", len(raw)),
		)
	}

	s.metrics.loaded(len(s.entries))
	return s, nil
}

// Entries returns the full entry set in document order.
func (s *Store) Entries() []Entry {
	s.metrics.query("entries")
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of loaded entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// GetByCategory returns all entries for a category in document order.
// A valid category with no entries yields an empty slice, not an error.
// A string outside the fixed enumeration yields an InvalidCategoryError.
func (s *Store) GetByCategory(c guideline.Category) ([]Entry, error) {
	s.metrics.query("get_by_category")

	if !c.Valid() {
		return nil, &InvalidCategoryError{Category: string(c)}
	}

	indices := s.byCategory[c]
	out := make([]Entry, 0, len(indices))
	for _, idx := range indices {
		out = append(out, s.entries[idx])
	}
	return out, nil
}

// Search returns entries whose title or body contains the keyword,
// case-insensitively, in document order. An empty keyword returns all
// entries. Results use stable document order only, not relevance ranked.
func (s *Store) Search(keyword string) []Entry {
	s.metrics.query("search")

	needle := strings.ToLower(keyword)
	var out []Entry
	for _, entry := range s.entries {
		if entry.matches(needle) {
			out = append(out, entry)
		}
	}
	return out
}

// Categories returns the categories actually present in the loaded content,
// in first-appearance order.
func (s *Store) Categories() []guideline.Category {
	s.metrics.query("categories")
	out := make([]guideline.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// entryID builds the stable order-preserving entry identifier.
func entryID(seq int, title string) string {
	slug := parser.SanitizeID(title)
	if slug == "" {
		return fmt.Sprintf("%03d", seq)
	}
	return fmt.Sprintf("%03d.%s", seq, slug)
}
