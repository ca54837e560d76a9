package catalog_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mummysboy/furnishandgo/models"
)

// parseCriteria reads the filter query params, defaulting the price range to
// the supplied bounds (the bounds of the category view before narrowing).
func parseCriteria(c *gin.Context, bounds models.PriceRangeData) models.FilterCriteria {
	criteria := models.FilterCriteria{
		SelectedSubcategories: make(map[string]struct{}),
		PriceRange:            bounds,
		SortKey:               models.SortPriceAsc,
	}

	for _, sub := range c.QueryArray("subcategory") {
		if sub != "" {
			criteria.SelectedSubcategories[sub] = struct{}{}
		}
	}

	if raw := c.Query("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.PriceRange.Min = v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.PriceRange.Max = v
		}
	}

	switch models.SortKey(c.DefaultQuery("sort", string(models.SortPriceAsc))) {
	case models.SortPriceDesc:
		criteria.SortKey = models.SortPriceDesc
	case models.SortNameAsc:
		criteria.SortKey = models.SortNameAsc
	case models.SortNameDesc:
		criteria.SortKey = models.SortNameDesc
	default:
		criteria.SortKey = models.SortPriceAsc
	}

	return criteria
}

// findCategory locates a category by name among parents and their children.
func findCategory(parents []models.Category, name string) (*models.Category, *models.Category) {
	for i := range parents {
		if parents[i].Name == name {
			return &parents[i], nil
		}
		for _, child := range parents[i].Children {
			if child.Name == name {
				return child, &parents[i]
			}
		}
	}
	return nil, nil
}
