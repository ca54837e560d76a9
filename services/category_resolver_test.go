package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mummysboy/furnishandgo/models"
)

func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }

func testTree() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Sofas"},
		{ID: 2, Name: "Armchairs"},
		{ID: 3, Name: "Recliners", ParentID: uintPtr(2), ParentName: strPtr("Armchairs")},
		{ID: 4, Name: "Tables"},
		{ID: 5, Name: "Coffee Tables", ParentID: uintPtr(4), ParentName: strPtr("Tables")},
	}
}

func TestBuildParentMap(t *testing.T) {
	pm := BuildParentMap(testTree())

	assert.Equal(t, "Sofas", pm["Sofas"])
	assert.Equal(t, "Armchairs", pm["Armchairs"])
	assert.Equal(t, "Armchairs", pm["Recliners"])
	assert.Equal(t, "Tables", pm["Coffee Tables"])
}

func TestBuildParentMapIdempotent(t *testing.T) {
	first := BuildParentMap(testTree())
	second := BuildParentMap(testTree())

	require.Equal(t, first, second)

	// Every top-level category maps to itself.
	for _, cat := range testTree() {
		if cat.ParentID == nil {
			assert.Equal(t, cat.Name, first[cat.Name])
		}
	}
}

func TestBuildParentMapFallsBackToParentName(t *testing.T) {
	// Child row whose parent is missing from the snapshot but carries the
	// denormalized parent_name.
	pm := BuildParentMap([]models.Category{
		{ID: 9, Name: "Recliners", ParentID: uintPtr(99), ParentName: strPtr("Armchairs")},
	})

	assert.Equal(t, "Armchairs", pm["Recliners"])
}

func TestResolveEffectiveCategory(t *testing.T) {
	pm := BuildParentMap(testTree())

	tests := []struct {
		name string
		item models.FurnitureItem
		want string
	}{
		{
			name: "explicit subcategory resolves to its parent",
			item: models.FurnitureItem{Category: "Armchairs", Subcategory: strPtr("Recliners")},
			want: "Armchairs",
		},
		{
			name: "unknown subcategory falls back to the raw value",
			item: models.FurnitureItem{Category: "Armchairs", Subcategory: strPtr("Chesterfields")},
			want: "Chesterfields",
		},
		{
			name: "legacy subcategory name stored in category",
			item: models.FurnitureItem{Category: "Recliners"},
			want: "Armchairs",
		},
		{
			name: "top-level category used directly",
			item: models.FurnitureItem{Category: "Sofas"},
			want: "Sofas",
		},
		{
			name: "category the map never heard of is taken as-is",
			item: models.FurnitureItem{Category: "Outdoor"},
			want: "Outdoor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveEffectiveCategory(tt.item, pm))
		})
	}
}

func TestMatchesCategory(t *testing.T) {
	pm := BuildParentMap(testTree())

	tests := []struct {
		name   string
		item   models.FurnitureItem
		target string
		want   bool
	}{
		{"direct category match", models.FurnitureItem{Category: "Sofas"}, "Sofas", true},
		{"legacy subcategory rolls up to parent target", models.FurnitureItem{Category: "Recliners"}, "Armchairs", true},
		{"explicit subcategory rolls up to parent target", models.FurnitureItem{Category: "Armchairs", Subcategory: strPtr("Recliners")}, "Armchairs", true},
		{"subcategory target matches its own items", models.FurnitureItem{Category: "Recliners"}, "Recliners", true},
		{"unrelated category does not match", models.FurnitureItem{Category: "Sofas"}, "Tables", false},
		{"sibling subcategory does not match", models.FurnitureItem{Category: "Coffee Tables"}, "Armchairs", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesCategory(tt.item, tt.target, pm))
		})
	}
}

func TestNormalizeCategoryFields(t *testing.T) {
	pm := BuildParentMap(testTree())

	t.Run("legacy subcategory in category moves to its own column", func(t *testing.T) {
		category, subcategory := NormalizeCategoryFields("Recliners", nil, pm)
		assert.Equal(t, "Armchairs", category)
		require.NotNil(t, subcategory)
		assert.Equal(t, "Recliners", *subcategory)
	})

	t.Run("explicit subcategory forces the parent into category", func(t *testing.T) {
		category, subcategory := NormalizeCategoryFields("Sofas", strPtr("Recliners"), pm)
		assert.Equal(t, "Armchairs", category)
		require.NotNil(t, subcategory)
		assert.Equal(t, "Recliners", *subcategory)
	})

	t.Run("top-level category passes through untouched", func(t *testing.T) {
		category, subcategory := NormalizeCategoryFields("Sofas", nil, pm)
		assert.Equal(t, "Sofas", category)
		assert.Nil(t, subcategory)
	})
}
