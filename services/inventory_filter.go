package services

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mummysboy/furnishandgo/models"
)

// MembershipFilter returns the items belonging to the view for target,
// resilient to the legacy category encodings (see MatchesCategory). The
// result preserves input order and never aliases the input slice.
func MembershipFilter(items []models.FurnitureItem, target string, parentMap map[string]string) []models.FurnitureItem {
	matched := make([]models.FurnitureItem, 0, len(items))
	for _, item := range items {
		if MatchesCategory(item, target, parentMap) {
			matched = append(matched, item)
		}
	}
	return matched
}

// ApplyCriteria narrows an already membership-filtered set by subcategory
// selection and inclusive price range.
func ApplyCriteria(items []models.FurnitureItem, criteria models.FilterCriteria) []models.FurnitureItem {
	kept := make([]models.FurnitureItem, 0, len(items))
	for _, item := range items {
		if len(criteria.SelectedSubcategories) > 0 && !inSelectedSubcategories(item, criteria.SelectedSubcategories) {
			continue
		}
		if item.Price < criteria.PriceRange.Min || item.Price > criteria.PriceRange.Max {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

func inSelectedSubcategories(item models.FurnitureItem, selected map[string]struct{}) bool {
	if _, ok := selected[item.Category]; ok {
		return true
	}
	if item.Subcategory != nil {
		if _, ok := selected[*item.Subcategory]; ok {
			return true
		}
	}
	return false
}

// SortFurniture orders items by the requested key. The sort is stable so
// repeated renders of the same list are deterministic; name comparisons are
// locale-aware and case-insensitive (en-GB storefront).
func SortFurniture(items []models.FurnitureItem, key models.SortKey) []models.FurnitureItem {
	sorted := make([]models.FurnitureItem, len(items))
	copy(sorted, items)

	switch key {
	case models.SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case models.SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case models.SortNameAsc:
		col := nameCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return col.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case models.SortNameDesc:
		col := nameCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return col.CompareString(sorted[i].Name, sorted[j].Name) > 0
		})
	}

	return sorted
}

// nameCollator is built per sort: collators carry internal buffers and are
// not safe for concurrent use.
func nameCollator() *collate.Collator {
	return collate.New(language.BritishEnglish, collate.IgnoreCase)
}

// FilterFurniture runs the full pipeline: category membership, subcategory
// subset, inclusive price range, then a stable sort.
func FilterFurniture(items []models.FurnitureItem, target string, parentMap map[string]string, criteria models.FilterCriteria) []models.FurnitureItem {
	matched := MembershipFilter(items, target, parentMap)
	narrowed := ApplyCriteria(matched, criteria)
	return SortFurniture(narrowed, criteria.SortKey)
}

// ComputeBounds returns the inclusive min/max price over the given set,
// normally the membership-filtered set before subcategory or price narrowing
// (it sizes the storefront range control). An empty set yields the {0, 0}
// sentinel: an empty category is a valid state, not an error.
func ComputeBounds(items []models.FurnitureItem) models.PriceRangeData {
	if len(items) == 0 {
		return models.PriceRangeData{}
	}

	bounds := models.PriceRangeData{Min: items[0].Price, Max: items[0].Price}
	for _, item := range items[1:] {
		if item.Price < bounds.Min {
			bounds.Min = item.Price
		}
		if item.Price > bounds.Max {
			bounds.Max = item.Price
		}
	}
	return bounds
}
