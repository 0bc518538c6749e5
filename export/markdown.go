package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/c360studio/guidekb/vocabulary/guideline"
)

// categoryHeadings maps each category to its canonical corpus heading.
// Every heading here parses back to the same category, so a markdown
// export is itself a loadable corpus.
var categoryHeadings = map[guideline.Category]string{
	guideline.CategoryDecisionFramework:       "Decision Framework",
	guideline.CategoryCriticalThinking:        "Critical Thinking",
	guideline.CategoryPythonStandards:         "Python Project Standards",
	guideline.CategoryCodeQuality:             "Code Quality",
	guideline.CategoryUnitTestStyle:           "Unit-Test Styles",
	guideline.CategoryDocumentation:           "Documentation Guidelines",
	guideline.CategoryExampleResponse:         "Example Responses",
	guideline.CategoryIntegrationTestPractice: "Integration Test Practices",
}

// markdownWriter accumulates a corpus-shaped markdown document.
type markdownWriter struct {
	sb strings.Builder
}

func (w *markdownWriter) writeCategory(group CategoryGroup) {
	heading, ok := categoryHeadings[group.Category]
	if !ok {
		heading = string(group.Category)
	}
	fmt.Fprintf(&w.sb, "## %s\n", heading)

	for _, entry := range group.Entries {
		w.writeEntry(entry)
	}
}

func (w *markdownWriter) writeEntry(entry Entry) {
	fmt.Fprintf(&w.sb, "\n### %s\n", entry.Title)

	if len(entry.Body) > 0 {
		w.sb.WriteString("\n")
		for _, line := range entry.Body {
			w.sb.WriteString(line)
			w.sb.WriteString("\n")
		}
	}

	for _, example := range entry.Examples {
		w.writeExample(example)
	}
}

func (w *markdownWriter) writeExample(example Example) {
	switch example.Kind {
	case "question-response":
		w.sb.WriteString("\n")
		w.writeMarkedPart("Q:", example.Prompt)
		w.writeMarkedPart("A:", example.Response)
	case "before-after":
		w.sb.WriteString("\nBefore:\n")
		w.writeExamplePart(example.Prompt)
		w.sb.WriteString("\nAfter:\n")
		w.writeExamplePart(example.Response)
	}
}

// writeMarkedPart emits a single-line part inline on its marker line and a
// multi-line part beneath a bare marker, matching what the corpus scanner
// accepts.
func (w *markdownWriter) writeMarkedPart(marker, part string) {
	if !strings.Contains(part, "\n") {
		fmt.Fprintf(&w.sb, "%s %s\n", marker, part)
		return
	}
	w.sb.WriteString(marker)
	w.sb.WriteString("\n")
	w.writeExamplePart(part)
}

// writeExamplePart emits one example part verbatim. Parts captured as a
// fenced block carry their own fences; unfenced parts never contain blank
// lines, so plain lines reload identically (they end at the next blank
// line, marker, or heading).
func (w *markdownWriter) writeExamplePart(part string) {
	w.sb.WriteString(part)
	if !strings.HasSuffix(part, "\n") {
		w.sb.WriteString("\n")
	}
}

func writeMarkdown(w io.Writer, doc *Document) error {
	mw := &markdownWriter{}
	for i, group := range doc.Categories {
		if i > 0 {
			mw.sb.WriteString("\n")
		}
		mw.writeCategory(group)
	}
	_, err := io.WriteString(w, mw.sb.String())
	return err
}
