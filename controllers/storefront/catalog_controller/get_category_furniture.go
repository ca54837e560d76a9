package catalog_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mummysboy/furnishandgo/config"
	"github.com/mummysboy/furnishandgo/models"
	"github.com/mummysboy/furnishandgo/services"
)

// categoryViewResponse is one category page: the filtered items plus
// everything the sidebar needs.
type categoryViewResponse struct {
	Category      string                 `json:"category"`
	Items         []models.FurnitureItem `json:"items"`
	Total         int                    `json:"total"`
	PriceBounds   models.PriceRangeData  `json:"price_bounds"`
	Subcategories []string               `json:"subcategories"`
}

// GetCategoryFurniture godoc
// @Summary Browse a category
// @Description Retrieve the furniture belonging to a category (parent or subcategory), narrowed by subcategory selection and price range, sorted. price_bounds covers the category view before narrowing, for sizing the range control.
// @Tags Storefront - Catalog
// @Produce json
// @Param name path string true "Category name"
// @Param subcategory query []string false "Subcategory names (repeatable)"
// @Param min_price query number false "Minimum price (inclusive)"
// @Param max_price query number false "Maximum price (inclusive)"
// @Param sort query string false "Sort key (price-asc | price-desc | name-asc | name-desc)" default(price-asc)
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Unknown category"
// @Failure 503 {object} models.ApiResponse
// @Router /store/categories/{name}/furniture [get]
func GetCategoryFurniture(c *gin.Context) {
	target := c.Param("name")

	ctx, cancel := config.WithTimeout()
	defer cancel()
	db := config.Gorm.WithContext(ctx)

	parents, err := services.LoadCategoryTree(db)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
		return
	}

	category, parent := findCategory(parents, target)
	if category == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}

	parentMap, err := services.LoadParentMap(db)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
		return
	}

	var items []models.FurnitureItem
	if err := db.Find(&items).Error; err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
		return
	}

	// Membership first: bounds are computed before subcategory/price
	// narrowing so the range control keeps its full span.
	view := services.MembershipFilter(items, target, parentMap)
	bounds := services.ComputeBounds(view)

	criteria := parseCriteria(c, bounds)
	narrowed := services.ApplyCriteria(view, criteria)
	sorted := services.SortFurniture(narrowed, criteria.SortKey)

	// Sidebar subcategories: the target's own children when it is a parent,
	// its siblings' scope otherwise.
	scope := category
	if parent != nil {
		scope = parent
	}
	subcategories := make([]string, 0, len(scope.Children))
	for _, child := range scope.Children {
		subcategories = append(subcategories, child.Name)
	}

	response := categoryViewResponse{
		Category:      category.Name,
		Items:         sorted,
		Total:         len(sorted),
		PriceBounds:   bounds,
		Subcategories: subcategories,
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category furniture fetched successfully", response))
}
