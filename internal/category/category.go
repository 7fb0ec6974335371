// Package category models product categories as ordered paths of one to
// three segments (most general first) and resolves URL slugs to the path
// prefixes used to filter products.
//
// Products store their category as a single delimited string; the path
// structure exists only in memory. Conversion happens at this boundary.
package category

import (
	"strings"
)

// Separator joins path segments in the stored string form,
// e.g. "Crystals & Spiritual > Anklets > Crystal Clocks".
const Separator = " > "

// MaxDepth is the deepest category nesting the catalog supports.
const MaxDepth = 3

// Path is an ordered sequence of 1 to MaxDepth non-empty category segments,
// most general first.
type Path []string

// ParsePath splits a stored category string into a Path. It reports false
// when the value does not yield between 1 and MaxDepth non-empty segments.
func ParsePath(raw string) (Path, bool) {
	parts := strings.Split(raw, Separator)
	path := make(Path, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, false
		}
		path = append(path, part)
	}
	if len(path) == 0 || len(path) > MaxDepth {
		return nil, false
	}
	return path, true
}

// String returns the canonical stored form of the path.
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// HasPrefix reports whether the path's leading segments equal prefix.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) == 0 || len(prefix) > len(p) {
		return false
	}
	for i, segment := range prefix {
		if p[i] != segment {
			return false
		}
	}
	return true
}

// Leaf returns the most specific segment of the path.
func (p Path) Leaf() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Title formats a slug as a human-readable heading when no product data is
// available to format from: hyphens become spaces and each word is
// title-cased, so "thakur-ji-dresses" becomes "Thakur Ji Dresses".
func Title(slug string) string {
	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
