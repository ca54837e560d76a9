package services

import (
	"github.com/mummysboy/furnishandgo/models"
)

// BuildParentMap maps every category and subcategory name to its top-level
// category name. Top-level categories map to themselves; subcategories map to
// their parent (the tree is exactly two levels deep, so one hop resolves
// everything).
func BuildParentMap(categories []models.Category) map[string]string {
	parentMap := make(map[string]string, len(categories))

	byID := make(map[uint]string, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat.Name
	}

	for _, cat := range categories {
		if cat.ParentID == nil {
			parentMap[cat.Name] = cat.Name
			continue
		}
		if parent, ok := byID[*cat.ParentID]; ok {
			parentMap[cat.Name] = parent
		} else if cat.ParentName != nil {
			// Parent row missing from the snapshot but the denormalized
			// parent_name column still knows the answer.
			parentMap[cat.Name] = *cat.ParentName
		}
	}

	return parentMap
}

// ResolveEffectiveCategory returns the top-level category an item belongs to.
//
// The three-step chain exists for backward compatibility with records written
// before subcategory support: the category column historically could hold
// either a parent name or a subcategory name.
//
//  1. An explicit subcategory resolves through the parent map (falling back
//     to the raw value if the map has never heard of it).
//  2. A category value the map resolves to a *different* name is a legacy
//     stored subcategory; use the mapped parent.
//  3. Otherwise the category value is already a top-level name.
func ResolveEffectiveCategory(item models.FurnitureItem, parentMap map[string]string) string {
	if item.Subcategory != nil && *item.Subcategory != "" {
		if parent, ok := parentMap[*item.Subcategory]; ok {
			return parent
		}
		return *item.Subcategory
	}

	if parent, ok := parentMap[item.Category]; ok && parent != item.Category {
		return parent
	}

	return item.Category
}

// matchRule is one membership predicate of the category view. Rules are
// ordered and first match wins, so adding or removing a fallback never
// touches call sites.
type matchRule struct {
	name    string
	matches func(item models.FurnitureItem, target string, parentMap map[string]string) bool
}

var matchRules = []matchRule{
	{
		// Item's literal category column names the target directly.
		name: "direct-category",
		matches: func(item models.FurnitureItem, target string, _ map[string]string) bool {
			return item.Category == target
		},
	},
	{
		// Item resolves to the target through subcategory or legacy encoding.
		name: "effective-category",
		matches: func(item models.FurnitureItem, target string, parentMap map[string]string) bool {
			return ResolveEffectiveCategory(item, parentMap) == target
		},
	},
	{
		// Item's category column holds a subcategory whose parent is the
		// target (legacy rows written before the subcategory column existed).
		name: "legacy-parent",
		matches: func(item models.FurnitureItem, target string, parentMap map[string]string) bool {
			return parentMap[item.Category] == target
		},
	},
}

// MatchesCategory reports whether an item belongs to the view for target.
// Target may be a top-level category or a subcategory name.
func MatchesCategory(item models.FurnitureItem, target string, parentMap map[string]string) bool {
	for _, rule := range matchRules {
		if rule.matches(item, target, parentMap) {
			return true
		}
	}
	return false
}

// NormalizeCategoryFields rewrites the legacy dual encoding at write time:
// if the category column names a subcategory and no explicit subcategory is
// set, the subcategory moves to its own column and category becomes the
// parent. Records written after subcategory support never carry the legacy
// encoding forward.
func NormalizeCategoryFields(category string, subcategory *string, parentMap map[string]string) (string, *string) {
	if subcategory != nil && *subcategory != "" {
		if parent, ok := parentMap[*subcategory]; ok && parent != *subcategory {
			return parent, subcategory
		}
		return category, subcategory
	}

	if parent, ok := parentMap[category]; ok && parent != category {
		sub := category
		return parent, &sub
	}

	return category, nil
}
