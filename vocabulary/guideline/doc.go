// Package guideline provides the fixed category vocabulary for guidance entries.
//
// Guidance documents are partitioned into a closed set of categories. The set
// is deliberately fixed: category boundaries are inferred from heading text in
// free-text source documents, and an unmappable heading is a fatal load error
// rather than something to classify heuristically. When the source document's
// heading wording changes, HeadingCategory must be updated by hand.
//
// # Categories
//
//   - decision-framework: heuristics for choosing between implementation options
//   - critical-thinking: checklist items applied before accepting a request at face value
//   - python-standards: Python project conventions (tooling, layout, interpreters)
//   - code-quality: general code construction and review rules
//   - unit-test-style: unit test structure and naming conventions
//   - documentation: documentation and comment style rules
//   - example-response: worked question/response pairs illustrating expected behavior
//   - integration-test-practice: conventions for writing and updating integration tests
package guideline
