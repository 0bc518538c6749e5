package guideline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_Valid(t *testing.T) {
	for _, c := range All {
		assert.True(t, c.Valid(), "category %q should be valid", c)
	}

	assert.False(t, Category("").Valid())
	assert.False(t, Category("testing").Valid())
	assert.False(t, Category("Unit-Test-Style").Valid(), "identifiers are case-sensitive")
}

func TestParse(t *testing.T) {
	c, ok := Parse("unit-test-style")
	require.True(t, ok)
	assert.Equal(t, CategoryUnitTestStyle, c)

	_, ok = Parse("sop")
	assert.False(t, ok)
}

func TestAll_CoversEnumeration(t *testing.T) {
	assert.Len(t, All, 8)

	seen := make(map[Category]bool)
	for _, c := range All {
		assert.False(t, seen[c], "duplicate category %q", c)
		seen[c] = true
	}
}

func TestHeadingCategory(t *testing.T) {
	tests := []struct {
		heading string
		want    Category
	}{
		{"Decision Framework", CategoryDecisionFramework},
		{"Critical Thinking", CategoryCriticalThinking},
		{"Python Project Standards", CategoryPythonStandards},
		{"Code Quality", CategoryCodeQuality},
		{"Unit-test Styles", CategoryUnitTestStyle},
		{"UNIT-TEST STYLES", CategoryUnitTestStyle},
		{"  Documentation Guidelines  ", CategoryDocumentation},
		{"Example Responses", CategoryExampleResponse},
		{"Integration Test Practices", CategoryIntegrationTestPractice},
	}

	for _, tt := range tests {
		got, ok := HeadingCategory(tt.heading)
		require.True(t, ok, "heading %q should map", tt.heading)
		assert.Equal(t, tt.want, got)
	}

	_, ok := HeadingCategory("Deployment Checklist")
	assert.False(t, ok)

	_, ok = HeadingCategory("")
	assert.False(t, ok)
}
