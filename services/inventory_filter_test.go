package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mummysboy/furnishandgo/models"
)

func noRestriction() models.FilterCriteria {
	return models.FilterCriteria{
		PriceRange: models.PriceRangeData{Min: 0, Max: 1_000_000},
	}
}

func itemIDs(items []models.FurnitureItem) []uint {
	ids := make([]uint, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func TestMembershipFilterSpansLegacyEncodings(t *testing.T) {
	pm := BuildParentMap([]models.Category{
		{ID: 1, Name: "Sofas"},
		{ID: 2, Name: "Armchairs"},
		{ID: 3, Name: "Recliners", ParentID: uintPtr(2), ParentName: strPtr("Armchairs")},
	})

	items := []models.FurnitureItem{
		{ID: 1, Name: "Leather Recliner", Category: "Recliners", Price: 300},
		{ID: 2, Name: "Club Armchair", Category: "Armchairs", Subcategory: strPtr("Recliners"), Price: 450},
		{ID: 3, Name: "Two-Seater Sofa", Category: "Sofas", Price: 700},
	}

	t.Run("parent view catches both encodings", func(t *testing.T) {
		matched := MembershipFilter(items, "Armchairs", pm)
		assert.Equal(t, []uint{1, 2}, itemIDs(matched))
	})

	t.Run("subcategory view catches both encodings", func(t *testing.T) {
		matched := MembershipFilter(items, "Recliners", pm)
		assert.Equal(t, []uint{1, 2}, itemIDs(matched))
	})

	t.Run("unrelated view stays empty of them", func(t *testing.T) {
		matched := MembershipFilter(items, "Sofas", pm)
		assert.Equal(t, []uint{3}, itemIDs(matched))
	})
}

func TestFilterFurnitureEndToEnd(t *testing.T) {
	pm := BuildParentMap([]models.Category{
		{ID: 1, Name: "Sofas"},
		{ID: 2, Name: "Armchairs"},
		{ID: 3, Name: "Recliners", ParentID: uintPtr(2), ParentName: strPtr("Armchairs")},
	})

	items := []models.FurnitureItem{
		{ID: 2, Name: "Wingback Recliner", Category: "Armchairs", Subcategory: strPtr("Recliners"), Price: 450},
		{ID: 1, Name: "Leather Recliner", Category: "Recliners", Price: 300},
	}

	criteria := noRestriction()
	criteria.SortKey = models.SortPriceAsc

	result := FilterFurniture(items, "Armchairs", pm, criteria)
	assert.Equal(t, []uint{1, 2}, itemIDs(result))
}

func TestApplyCriteria(t *testing.T) {
	items := []models.FurnitureItem{
		{ID: 1, Category: "Recliners", Price: 300},
		{ID: 2, Category: "Armchairs", Subcategory: strPtr("Recliners"), Price: 450},
		{ID: 3, Category: "Armchairs", Subcategory: strPtr("Accent Chairs"), Price: 120},
	}

	tests := []struct {
		name     string
		criteria models.FilterCriteria
		want     []uint
	}{
		{
			name:     "no restriction keeps everything",
			criteria: noRestriction(),
			want:     []uint{1, 2, 3},
		},
		{
			name: "subcategory selection checks both columns",
			criteria: models.FilterCriteria{
				SelectedSubcategories: map[string]struct{}{"Recliners": {}},
				PriceRange:            models.PriceRangeData{Min: 0, Max: 1000},
			},
			want: []uint{1, 2},
		},
		{
			name: "price range is inclusive at both ends",
			criteria: models.FilterCriteria{
				PriceRange: models.PriceRangeData{Min: 120, Max: 300},
			},
			want: []uint{1, 3},
		},
		{
			name: "narrow range excludes everything",
			criteria: models.FilterCriteria{
				PriceRange: models.PriceRangeData{Min: 500, Max: 600},
			},
			want: []uint{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, itemIDs(ApplyCriteria(items, tt.criteria)))
		})
	}
}

func TestSortFurniture(t *testing.T) {
	items := []models.FurnitureItem{
		{ID: 1, Name: "banana lamp", Price: 30},
		{ID: 2, Name: "Apple stand", Price: 10},
		{ID: 3, Name: "apple stool", Price: 20},
	}

	t.Run("price ascending", func(t *testing.T) {
		sorted := SortFurniture(items, models.SortPriceAsc)
		assert.Equal(t, []uint{2, 3, 1}, itemIDs(sorted))
	})

	t.Run("price descending", func(t *testing.T) {
		sorted := SortFurniture(items, models.SortPriceDesc)
		assert.Equal(t, []uint{1, 3, 2}, itemIDs(sorted))
	})

	t.Run("name sort is case-insensitive so Apple and apple stay adjacent", func(t *testing.T) {
		sorted := SortFurniture(items, models.SortNameAsc)
		assert.Equal(t, []uint{2, 3, 1}, itemIDs(sorted))
	})

	t.Run("unknown key leaves input order", func(t *testing.T) {
		sorted := SortFurniture(items, models.SortKey("newest"))
		assert.Equal(t, []uint{1, 2, 3}, itemIDs(sorted))
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		_ = SortFurniture(items, models.SortPriceAsc)
		assert.Equal(t, []uint{1, 2, 3}, itemIDs(items))
	})
}

func TestSortFurnitureIsStable(t *testing.T) {
	items := []models.FurnitureItem{
		{ID: 1, Name: "A", Price: 100},
		{ID: 2, Name: "B", Price: 100},
		{ID: 3, Name: "C", Price: 100},
		{ID: 4, Name: "D", Price: 50},
	}

	sorted := SortFurniture(items, models.SortPriceAsc)
	require.Equal(t, []uint{4, 1, 2, 3}, itemIDs(sorted))

	// Resorting the already-sorted list changes nothing.
	again := SortFurniture(sorted, models.SortPriceAsc)
	assert.Equal(t, itemIDs(sorted), itemIDs(again))
}

func TestComputeBounds(t *testing.T) {
	tests := []struct {
		name  string
		items []models.FurnitureItem
		want  models.PriceRangeData
	}{
		{
			name:  "empty set yields the zero sentinel",
			items: nil,
			want:  models.PriceRangeData{},
		},
		{
			name:  "single item collapses to one point",
			items: []models.FurnitureItem{{Price: 249.99}},
			want:  models.PriceRangeData{Min: 249.99, Max: 249.99},
		},
		{
			name: "min and max found regardless of order",
			items: []models.FurnitureItem{
				{Price: 450}, {Price: 120}, {Price: 899.50}, {Price: 300},
			},
			want: models.PriceRangeData{Min: 120, Max: 899.50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeBounds(tt.items))
		})
	}
}
