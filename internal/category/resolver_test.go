package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Path
		ok   bool
	}{
		{
			name: "single segment",
			raw:  "Dry Flowers",
			want: Path{"Dry Flowers"},
			ok:   true,
		},
		{
			name: "two segments",
			raw:  "Crystals & Spiritual > Rudraksh",
			want: Path{"Crystals & Spiritual", "Rudraksh"},
			ok:   true,
		},
		{
			name: "three segments",
			raw:  "Crystals & Spiritual > Anklets > Crystal Clocks",
			want: Path{"Crystals & Spiritual", "Anklets", "Crystal Clocks"},
			ok:   true,
		},
		{
			name: "four segments rejected",
			raw:  "A > B > C > D",
			ok:   false,
		},
		{
			name: "empty segment rejected",
			raw:  "A >  > C",
			ok:   false,
		},
		{
			name: "empty string rejected",
			raw:  "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePath(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPathRoundTrip(t *testing.T) {
	raw := "Crystals & Spiritual > Anklets > Crystal Clocks"
	path, ok := ParsePath(raw)
	require.True(t, ok)
	assert.Equal(t, raw, path.String())
	assert.Equal(t, "Crystal Clocks", path.Leaf())
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Dry Flowers", Title("dry-flowers"))
	assert.Equal(t, "Thakur Ji Dresses", Title("thakur-ji-dresses"))
	assert.Equal(t, "Rudraksh", Title("rudraksh"))
}

func TestResolveSlug_SubtreePrefix(t *testing.T) {
	r := NewResolver()

	prefixes := r.ResolveSlug("crystals", "all-anklets")
	require.NotEmpty(t, prefixes)

	// Everything under the Anklets branch matches, siblings do not.
	assert.True(t, MatchesAny("Crystals & Spiritual > Anklets > Crystal Clocks", prefixes))
	assert.True(t, MatchesAny("Crystals & Spiritual > Anklets", prefixes))
	assert.False(t, MatchesAny("Crystals & Spiritual > Rudraksh", prefixes))
	assert.False(t, MatchesAny("Crystals & Spiritual", prefixes))
}

func TestResolveSlug_UnknownIsEmpty(t *testing.T) {
	r := NewResolver()

	assert.Empty(t, r.ResolveSlug("crystals", "no-such-slug"))
	assert.Empty(t, r.ResolveSlug("no-such-section", "all-anklets"))
}

func TestResolveSlug_DisjunctivePrefixes(t *testing.T) {
	r := NewResolver()

	prefixes := r.ResolveSlug("creative", "dry-flowers")
	require.Len(t, prefixes, 2)

	// Product tagged exactly "Dry Flowers" matches via the second alternative.
	assert.True(t, MatchesAny("Dry Flowers", prefixes))
	assert.True(t, MatchesAny("Creative & Handcrafted > Coir Products > Dry Flowers", prefixes))
	assert.False(t, MatchesAny("Creative & Handcrafted > Coir Products", prefixes))
}

func TestFallbackMatches(t *testing.T) {
	assert.True(t, FallbackMatches("Handmade DRY FLOWERS bouquet", "dry-flowers"))
	assert.True(t, FallbackMatches("dry flowers", "dry-flowers"))
	assert.False(t, FallbackMatches("Crystal Trees", "dry-flowers"))
}

func TestFilter_StrictFirstThenFallback(t *testing.T) {
	r := NewResolver()

	type product struct {
		name     string
		category string
	}
	raw := func(p product) string { return p.category }

	products := []product{
		{"Clock", "Crystals & Spiritual > Anklets > Crystal Clocks"},
		{"Mala", "Crystals & Spiritual > Rudraksh"},
		{"Legacy", "assorted anklets lot"},
	}

	// Strict pass finds the clock, so the legacy row is not pulled in.
	prefixes := r.ResolveSlug("crystals", "all-anklets")
	got := Filter(products, raw, prefixes, "all-anklets")
	require.Len(t, got, 1)
	assert.Equal(t, "Clock", got[0].name)

	// With no strict matches the substring fallback kicks in.
	legacyOnly := []product{
		{"Mala", "Crystals & Spiritual > Rudraksh"},
		{"Legacy", "assorted anklets lot"},
	}
	got = Filter(legacyOnly, raw, r.ResolveSlug("crystals", "anklets"), "anklets")
	require.Len(t, got, 1)
	assert.Equal(t, "Legacy", got[0].name)
}

func TestFilter_UnknownSlugYieldsFallbackNotEverything(t *testing.T) {
	type product struct{ category string }
	raw := func(p product) string { return p.category }

	products := []product{
		{"Crystals & Spiritual > Rudraksh"},
		{"Coir Products > Mats"},
	}

	r := NewResolver()
	got := Filter(products, raw, r.ResolveSlug("crystals", "no-such-slug"), "no-such-slug")
	assert.Empty(t, got, "an unmatched slug must yield an empty result set")
}
