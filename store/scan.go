package store

import (
	"strconv"
	"strings"

	"github.com/c360studio/guidekb/source"
	"github.com/c360studio/guidekb/vocabulary/guideline"
)

// rawEntry is a scanned entry before ID assignment.
type rawEntry struct {
	category guideline.Category
	title    string
	body     []string
	examples []Example
	line     int
}

// exampleMarker describes one recognized example marker prefix.
type exampleMarker struct {
	prefix string
	kind   ExampleKind
	opens  bool // true when the marker opens a pair, false when it closes one
}

var exampleMarkers = []exampleMarker{
	{"Q:", ExampleQuestionResponse, true},
	{"A:", ExampleQuestionResponse, false},
	{"Before:", ExampleBeforeAfter, true},
	{"After:", ExampleBeforeAfter, false},
}

// scanDocument partitions a document body into entries in a single linear
// pass, tracking the current category as a cursor updated on heading
// boundaries. Any structural mismatch is fatal.
func scanDocument(doc *source.Document) ([]rawEntry, error) {
	lines := strings.Split(doc.Body, "\n")

	var (
		entries     []rawEntry
		current     *rawEntry
		category    guideline.Category
		haveCateg   bool
		inCodeBlock bool
		pendingKind ExampleKind
		pendingText string
		havePending bool
	)

	malformed := func(line int, reason string) error {
		return &MalformedSourceError{File: doc.Filename, Line: line, Reason: reason}
	}

	closeEntry := func(line int) error {
		if havePending {
			return malformed(line, "unpaired example marker "+openMarker(pendingKind))
		}
		if current != nil {
			current.body = trimTrailingBlanks(current.body)
			entries = append(entries, *current)
			current = nil
		}
		return nil
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		lineNo := i + 1

		if isCodeFence(trimmed) {
			inCodeBlock = !inCodeBlock
			if current != nil {
				current.body = append(current.body, line)
			}
			continue
		}

		if inCodeBlock {
			if current != nil {
				current.body = append(current.body, line)
			}
			continue
		}

		if isHeading(trimmed) {
			level, text := parseHeading(trimmed)
			switch level {
			case 1:
				// Document title; only valid in the preamble
				if haveCateg {
					return nil, malformed(lineNo, "unexpected document title after category content")
				}
			case 2:
				if err := closeEntry(lineNo); err != nil {
					return nil, err
				}
				c, ok := guideline.HeadingCategory(text)
				if !ok {
					return nil, malformed(lineNo, "heading "+strconv.Quote(text)+" does not map to a known category")
				}
				category = c
				haveCateg = true
			default:
				if level == 3 {
					if !haveCateg {
						return nil, malformed(lineNo, "entry "+strconv.Quote(text)+" appears before any category heading")
					}
					if err := closeEntry(lineNo); err != nil {
						return nil, err
					}
					current = &rawEntry{category: category, title: text, line: lineNo}
				} else {
					// Deeper headings are sub-points of the current entry
					if current == nil {
						return nil, malformed(lineNo, "sub-heading outside any entry")
					}
					current.body = append(current.body, trimmed)
				}
			}
			continue
		}

		if marker, rest, ok := matchExampleMarker(trimmed); ok {
			if current == nil {
				return nil, malformed(lineNo, "example marker outside any entry")
			}
			text, next := collectExamplePart(lines, i, rest)
			i = next
			if marker.opens {
				if havePending {
					return nil, malformed(lineNo, "unpaired example marker "+openMarker(pendingKind))
				}
				pendingKind = marker.kind
				pendingText = text
				havePending = true
			} else {
				if !havePending || pendingKind != marker.kind {
					return nil, malformed(lineNo, "example marker "+marker.prefix+" without matching "+openMarker(marker.kind))
				}
				current.examples = append(current.examples, Example{
					Kind:     marker.kind,
					Prompt:   pendingText,
					Response: text,
				})
				havePending = false
				pendingText = ""
			}
			continue
		}

		if trimmed == "" {
			// Preserve paragraph breaks inside an entry, collapse runs
			if current != nil && len(current.body) > 0 && current.body[len(current.body)-1] != "" {
				current.body = append(current.body, "")
			}
			continue
		}

		if current != nil {
			current.body = append(current.body, strings.TrimRight(line, " \t"))
			continue
		}
		if haveCateg {
			return nil, malformed(lineNo, "content outside any entry")
		}
		// Document preamble before the first category heading is ignored
	}

	if inCodeBlock {
		return nil, malformed(len(lines), "unterminated code fence")
	}
	if err := closeEntry(len(lines)); err != nil {
		return nil, err
	}
	if !haveCateg {
		return nil, malformed(0, "no recognized category headings")
	}

	return entries, nil
}

// matchExampleMarker checks a line against the example marker prefixes.
func matchExampleMarker(line string) (exampleMarker, string, bool) {
	for _, marker := range exampleMarkers {
		if strings.HasPrefix(line, marker.prefix) {
			return marker, strings.TrimSpace(line[len(marker.prefix):]), true
		}
	}
	return exampleMarker{}, "", false
}

// collectExamplePart returns the text of one example part and the index of
// the last consumed line. When the marker line itself carries text, that is
// the part. Otherwise the part is the following fenced code block, or the
// following lines up to a blank line, marker, or heading.
func collectExamplePart(lines []string, markerIdx int, rest string) (string, int) {
	if rest != "" {
		return rest, markerIdx
	}

	i := markerIdx + 1
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i >= len(lines) {
		return "", len(lines) - 1
	}

	if isCodeFence(strings.TrimSpace(lines[i])) {
		var collected []string
		collected = append(collected, lines[i])
		i++
		for i < len(lines) {
			collected = append(collected, lines[i])
			if isCodeFence(strings.TrimSpace(lines[i])) {
				break
			}
			i++
		}
		return strings.Join(collected, "\n"), i
	}

	var collected []string
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || isHeading(trimmed) {
			break
		}
		if _, _, ok := matchExampleMarker(trimmed); ok {
			break
		}
		collected = append(collected, trimmed)
		i++
	}
	return strings.Join(collected, "\n"), i - 1
}

// openMarker returns the opening marker prefix for an example kind.
func openMarker(kind ExampleKind) string {
	if kind == ExampleBeforeAfter {
		return "Before:"
	}
	return "Q:"
}

// trimTrailingBlanks drops trailing empty body lines.
func trimTrailingBlanks(body []string) []string {
	for len(body) > 0 && body[len(body)-1] == "" {
		body = body[:len(body)-1]
	}
	return body
}

// isCodeFence checks if a line is a code fence (``` or ~~~).
func isCodeFence(line string) bool {
	return strings.HasPrefix(line, "```") || strings.HasPrefix(line, "~~~")
}

// isHeading checks if a line is a markdown heading: one to six hashes
// followed by a space. Lines like "#tag" or "#!/usr/bin/env" are body text.
func isHeading(line string) bool {
	i := 0
	for i < len(line) && line[i] == '#' {
		i++
	}
	return i > 0 && i <= 6 && i < len(line) && line[i] == ' '
}

// parseHeading extracts the level and text from a heading line.
func parseHeading(line string) (int, string) {
	level := 0
	for _, ch := range line {
		if ch == '#' {
			level++
		} else {
			break
		}
	}

	text := strings.TrimSpace(strings.TrimLeft(line, "#"))
	return level, text
}
