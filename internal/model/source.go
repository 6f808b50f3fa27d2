// Package model defines the data structures shared by the scan coordinator.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// PathsToStrings converts a slice of Path into plain strings.
func PathsToStrings(paths []Path) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, string(p))
	}

	return out
}

// SourceExtensions lists the file suffixes treated as PHP source, lower-cased
// and without the leading dot.
var SourceExtensions = []string{"php", "php3", "php4", "php5", "phtml", "inc"}

// IsSourceFile reports whether path carries one of SourceExtensions.
// Matching is case-insensitive.
func IsSourceFile(path Path) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(string(path))), ".")
	if ext == "" {
		return false
	}

	for _, candidate := range SourceExtensions {
		if ext == candidate {
			return true
		}
	}

	return false
}
