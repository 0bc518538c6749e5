// Package store provides the immutable in-memory index over guidance entries.
//
// A Store is built once from parsed source documents and never mutates
// afterward, so it is safe for concurrent readers without locking. Reloading
// a changed corpus means building a new Store and swapping the reference.
//
// # Source format
//
// The corpus is free-text markdown with one level of structure:
//
//	## <category heading>     level-2 headings open a category
//	### <entry title>         level-3 headings open an entry
//	<prose>                   body lines of the current entry
//	Q: / A:                   question/response example pair
//	Before: / After:          before/after example pair
//
// Category headings must map to the fixed enumeration in
// vocabulary/guideline; anything else fails the load. Free text has no
// schema, so a heading mismatch is treated as fatal rather than recovered
// heuristically; silent misclassification of guidance is worse than a
// refused load.
package store
