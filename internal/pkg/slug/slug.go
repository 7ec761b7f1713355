// Package slug derives URL-safe identifiers from human-readable titles.
package slug

import (
	"fmt"
	"strings"
)

// Make lowercases s, collapses every run of characters outside [a-z0-9]
// into a single hyphen, and strips leading/trailing hyphens.
//
//	Make("Organic Farming & Co.") == "organic-farming-co"
func Make(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// Exists reports whether a candidate slug is already taken. The excluded ID
// (may be empty) lets updates keep their own slug.
type Exists func(candidate, excludeID string) (bool, error)

// EnsureUnique returns base if free, otherwise probes base-2, base-3, ...
// An empty base falls back to "untitled".
func EnsureUnique(base, excludeID string, exists Exists) (string, error) {
	if base == "" {
		base = "untitled"
	}
	candidate := base
	for i := 2; ; i++ {
		taken, err := exists(candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
