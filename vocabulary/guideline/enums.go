package guideline

// Category classifies a guidance entry.
type Category string

const (
	// CategoryDecisionFramework covers heuristics for choosing between
	// implementation options and when to ask versus proceed.
	CategoryDecisionFramework Category = "decision-framework"

	// CategoryCriticalThinking covers checklist items applied before
	// accepting a request or an existing pattern at face value.
	CategoryCriticalThinking Category = "critical-thinking"

	// CategoryPythonStandards covers Python project conventions such as
	// package management and interpreter invocation.
	CategoryPythonStandards Category = "python-standards"

	// CategoryCodeQuality covers general code construction and review rules.
	CategoryCodeQuality Category = "code-quality"

	// CategoryUnitTestStyle covers unit test structure, naming, and fixtures.
	CategoryUnitTestStyle Category = "unit-test-style"

	// CategoryDocumentation covers documentation and comment style rules.
	CategoryDocumentation Category = "documentation"

	// CategoryExampleResponse covers worked question/response pairs that
	// illustrate the expected assistant behavior.
	CategoryExampleResponse Category = "example-response"

	// CategoryIntegrationTestPractice covers conventions for writing and
	// updating integration tests.
	CategoryIntegrationTestPractice Category = "integration-test-practice"
)

// All lists every category in canonical document order.
var All = []Category{
	CategoryDecisionFramework,
	CategoryCriticalThinking,
	CategoryPythonStandards,
	CategoryCodeQuality,
	CategoryUnitTestStyle,
	CategoryDocumentation,
	CategoryExampleResponse,
	CategoryIntegrationTestPractice,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range All {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the category identifier.
func (c Category) String() string {
	return string(c)
}

// Parse converts a string to a Category.
// Returns false if the string is outside the fixed enumeration.
func Parse(s string) (Category, bool) {
	c := Category(s)
	if !c.Valid() {
		return "", false
	}
	return c, true
}
