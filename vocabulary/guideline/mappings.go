package guideline

import "strings"

// headingCategories maps normalized source document headings to categories.
// Keys are lowercased heading text with surrounding whitespace removed.
var headingCategories = map[string]Category{
	"decision framework":         CategoryDecisionFramework,
	"critical thinking":          CategoryCriticalThinking,
	"critical thinking checklist": CategoryCriticalThinking,
	"python project standards":   CategoryPythonStandards,
	"code quality":               CategoryCodeQuality,
	"unit-test styles":           CategoryUnitTestStyle,
	"unit test styles":           CategoryUnitTestStyle,
	"documentation guidelines":   CategoryDocumentation,
	"example responses":          CategoryExampleResponse,
	"integration test practices": CategoryIntegrationTestPractice,
}

// HeadingCategory maps a source document heading to its category.
// Matching is case-insensitive on trimmed heading text. Returns false when the
// heading is outside the recognized set; callers treat that as fatal rather
// than guessing.
func HeadingCategory(heading string) (Category, bool) {
	key := strings.ToLower(strings.TrimSpace(heading))
	c, ok := headingCategories[key]
	return c, ok
}
