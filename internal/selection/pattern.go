package selection

import "strings"

// Wildcard matches the entire catalog when used as a whole pattern, and any
// nested suffix when used as the trailing segment of a dotted pattern.
const Wildcard = "*"

// Match returns the catalog entries selected by pattern, preserving catalog
// order. A pattern without a wildcard is an exact name and yields at most one
// entry. A trailing ".*" selects the prefix itself plus everything nested
// under it. "*" anywhere other than a full trailing segment is not a
// wildcard, so such patterns behave as exact names and match nothing.
func Match(pattern string, catalog []string) []string {
	if pattern == "" {
		return nil
	}
	if pattern == Wildcard {
		return append([]string{}, catalog...)
	}
	if prefix, ok := strings.CutSuffix(pattern, "."+Wildcard); ok && prefix != "" {
		var matched []string
		for _, name := range catalog {
			if name == prefix || strings.HasPrefix(name, prefix+".") {
				matched = append(matched, name)
			}
		}
		return matched
	}
	for _, name := range catalog {
		if name == pattern {
			return []string{name}
		}
	}
	return nil
}
