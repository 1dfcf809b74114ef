package threat

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chaincheck/internal/catalog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load(context.Background(), testLogger())
	require.NoError(t, err)
	return cat
}

func TestParseLevel(t *testing.T) {
	for _, l := range Levels() {
		parsed, ok := ParseLevel(string(l))
		assert.True(t, ok)
		assert.Equal(t, l, parsed)
	}

	parsed, ok := ParseLevel("paranoid")
	assert.False(t, ok)
	assert.Equal(t, LevelAll, parsed, "invalid tags fall back to the universal profile")
}

func TestItemsForLevelAll(t *testing.T) {
	f := NewFilter(testLogger(), nil)
	ids := f.ItemsForLevel("wallet", LevelAll)
	assert.Empty(t, ids, `"all" returns an empty list meaning no filtering`)
}

func TestRelevantItemsAllSuperset(t *testing.T) {
	cat := loadCatalog(t)
	f := NewFilter(testLogger(), nil)

	for _, c := range cat.Categories() {
		items := f.RelevantItems(c, LevelAll)
		assert.Len(t, items, len(c.Items), "category %s", c.ID)
	}
}

func TestRelevantItemsConcreteSubset(t *testing.T) {
	cat := loadCatalog(t)
	f := NewFilter(testLogger(), nil)

	wallet, ok := cat.Category("wallet")
	require.True(t, ok)

	basics := f.RelevantItems(wallet, LevelBasic)
	require.NotEmpty(t, basics)
	assert.Less(t, len(basics), len(wallet.Items))

	all := make(map[string]bool, len(wallet.Items))
	for _, item := range wallet.Items {
		all[item.ID] = true
	}
	for _, item := range basics {
		assert.True(t, all[item.ID], "filtered item %s must come from the category", item.ID)
	}
}

func TestMissingMappingFallsBackToAllItems(t *testing.T) {
	cat := loadCatalog(t)
	f := NewFilter(testLogger(), nil)

	// These category/level pairs are known gaps in the mapping table; the
	// fallback must behave exactly like the universal profile.
	for _, tc := range []struct {
		categoryID string
		level      Level
	}{
		{"jobs", LevelPrivacy},
		{"social", LevelInstitution},
	} {
		c, ok := cat.Category(tc.categoryID)
		require.True(t, ok)

		got := f.RelevantItems(c, tc.level)
		want := f.RelevantItems(c, LevelAll)
		assert.Equal(t, want, got, "%s/%s", tc.categoryID, tc.level)
	}
}

func TestEmptyMappingFallsBackToAllItems(t *testing.T) {
	c := catalog.SecurityCategory{
		ID: "fixture",
		Items: []catalog.SecurityItem{
			{ID: "fixture-1", Level: catalog.LevelEssential},
			{ID: "fixture-2", Level: catalog.LevelOptional},
		},
	}
	f := NewFilterWithMappings(testLogger(), nil, map[string]Mapping{
		"fixture": {LevelBasic: {}},
	})

	got := f.RelevantItems(c, LevelBasic)
	assert.Len(t, got, 2, "an explicitly empty list falls back to all items")
}

func TestDanglingMappingIDsAreDropped(t *testing.T) {
	c := catalog.SecurityCategory{
		ID: "fixture",
		Items: []catalog.SecurityItem{
			{ID: "fixture-1", Level: catalog.LevelEssential},
			{ID: "fixture-2", Level: catalog.LevelOptional},
		},
	}
	f := NewFilterWithMappings(testLogger(), nil, map[string]Mapping{
		"fixture": {LevelBasic: {"fixture-1", "fixture-ghost"}},
	})

	got := f.RelevantItems(c, LevelBasic)
	require.Len(t, got, 1)
	assert.Equal(t, "fixture-1", got[0].ID)
}

func TestValidateMappings(t *testing.T) {
	t.Run("built-in table is clean against the real catalog", func(t *testing.T) {
		cat := loadCatalog(t)
		assert.Empty(t, ValidateMappings(cat))
	})
}
