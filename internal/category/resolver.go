package category

import (
	"strings"
)

// Resolver translates a (section, slug) pair from a browse URL into the set
// of path prefixes to filter products by. Tables are static and maintained
// per top-level section; an unknown slug resolves to nothing, which callers
// must treat as an empty result set, never as "show everything".
type Resolver struct {
	sections map[string]map[string][]Path
}

// NewResolver returns a resolver seeded with the catalog's section tables.
func NewResolver() *Resolver {
	return &Resolver{sections: defaultSections}
}

// ResolveSlug returns the path prefixes mapped to the slug within the given
// section, or nil when either the section or the slug is unknown.
func (r *Resolver) ResolveSlug(section, slug string) []Path {
	table, ok := r.sections[section]
	if !ok {
		return nil
	}
	return table[slug]
}

// Sections lists the known top-level section identifiers.
func (r *Resolver) Sections() []string {
	sections := make([]string, 0, len(r.sections))
	for section := range r.sections {
		sections = append(sections, section)
	}
	return sections
}

// MatchesAny reports whether the stored category string, parsed as a path,
// starts with any of the given prefixes.
func MatchesAny(rawCategory string, prefixes []Path) bool {
	path, ok := ParsePath(rawCategory)
	if !ok {
		return false
	}
	for _, prefix := range prefixes {
		if path.HasPrefix(prefix) {
			return true
		}
	}
	return false
}

// FallbackMatches reports whether the slug's space-separated form appears
// anywhere in the raw category string, case-insensitively. This tolerates
// inconsistently tagged legacy data; it is only consulted when a strict
// prefix pass over the whole result set found nothing.
func FallbackMatches(rawCategory, slug string) bool {
	needle := strings.ToLower(strings.ReplaceAll(slug, "-", " "))
	return strings.Contains(strings.ToLower(rawCategory), needle)
}

// Filter selects the items whose category matches the resolved prefixes.
// rawCategory extracts the stored category string from an item. The strict
// prefix pass runs first; the substring fallback applies only when that
// pass selects nothing.
func Filter[T any](items []T, rawCategory func(T) string, prefixes []Path, slug string) []T {
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if MatchesAny(rawCategory(item), prefixes) {
			matched = append(matched, item)
		}
	}
	if len(matched) > 0 || slug == "" {
		return matched
	}

	for _, item := range items {
		if FallbackMatches(rawCategory(item), slug) {
			matched = append(matched, item)
		}
	}
	return matched
}

// defaultSections maps each top-level section to its slug table. An "all-X"
// slug maps to the prefix of that subtree's root and matches every deeper
// path; leaf slugs map to exact paths. A slug may list several prefixes when
// the same goods are tagged under more than one branch.
var defaultSections = map[string]map[string][]Path{
	"crystals": {
		"all-crystals":     {{"Crystals & Spiritual"}},
		"all-anklets":      {{"Crystals & Spiritual", "Anklets"}},
		"crystal-anklets":  {{"Crystals & Spiritual", "Anklets", "Crystal Anklets"}},
		"crystal-clocks":   {{"Crystals & Spiritual", "Anklets", "Crystal Clocks"}},
		"crystal-trees":    {{"Crystals & Spiritual", "Crystal Trees"}},
		"rudraksh":         {{"Crystals & Spiritual", "Rudraksh"}},
		"healing-bracelets": {{"Crystals & Spiritual", "Bracelets", "Healing Bracelets"}},
		"pyramids":         {{"Crystals & Spiritual", "Pyramids"}},
	},
	"creative": {
		"all-creative":   {{"Creative & Handcrafted"}},
		"dry-flowers":    {{"Creative & Handcrafted", "Coir Products", "Dry Flowers"}, {"Dry Flowers"}},
		"wall-hangings":  {{"Creative & Handcrafted", "Wall Hangings"}},
		"handmade-diyas": {{"Creative & Handcrafted", "Diyas", "Handmade Diyas"}},
		"toran":          {{"Creative & Handcrafted", "Toran"}},
	},
	"coir": {
		"all-coir":     {{"Coir Products"}},
		"coir-planters": {{"Coir Products", "Planters"}},
		"coir-mats":    {{"Coir Products", "Mats"}},
		"coir-baskets": {{"Coir Products", "Baskets"}},
	},
	"remedies": {
		"all-remedies":    {{"Remedies"}},
		"vastu-remedies":  {{"Remedies", "Vastu"}},
		"grah-shanti":     {{"Remedies", "Grah Shanti"}},
		"evil-eye":        {{"Remedies", "Evil Eye"}},
	},
	"thakur-ji-dresses": {
		"all-dresses":     {{"Thakur Ji Dresses"}},
		"poshak":          {{"Thakur Ji Dresses", "Poshak"}},
		"winter-dresses":  {{"Thakur Ji Dresses", "Winter Dresses"}},
		"pagdi-mukut":     {{"Thakur Ji Dresses", "Pagdi & Mukut"}},
	},
}
