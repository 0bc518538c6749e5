package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExtensions lists the file extensions considered guidance sources.
var DefaultExtensions = []string{".md", ".markdown", ".txt", ".html", ".htm"}

// Discover expands glob patterns to concrete source files.
// Supports both single-level wildcards (*) and recursive wildcards (**).
// Non-glob patterns may name a file directly or a directory, in which case all
// files with a matching extension directly under it are used.
//
// Matches within a pattern are returned in lexical order; pattern order is
// preserved across patterns. Duplicates are dropped. Document order of the
// loaded corpus follows this ordering.
func Discover(patterns []string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	var resolved []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		paths, err := resolvePattern(pattern, extensions)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}

		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				resolved = append(resolved, p)
			}
		}
	}

	return resolved, nil
}

// resolvePattern expands a single pattern to source files.
func resolvePattern(pattern string, extensions []string) ([]string, error) {
	if !containsGlob(pattern) {
		absPath, err := filepath.Abs(pattern)
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			return []string{absPath}, nil
		}

		// Directory: take matching files directly under it
		entries, err := os.ReadDir(absPath)
		if err != nil {
			return nil, err
		}

		var files []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := filepath.Join(absPath, entry.Name())
			if hasExtension(name, extensions) {
				files = append(files, name)
			}
		}
		sort.Strings(files)
		return files, nil
	}

	absPattern := pattern
	if !filepath.IsAbs(pattern) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		absPattern = filepath.Join(cwd, pattern)
	}

	// Use doublestar for ** support
	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if hasExtension(m, extensions) {
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

// containsGlob checks if a pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// hasExtension checks a filename against the allowed extension list.
func hasExtension(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range extensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}
