package catalog_controller

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/mummysboy/furnishandgo/config"
	"github.com/mummysboy/furnishandgo/models"
	"github.com/mummysboy/furnishandgo/services"
)

// collectionGroup is one top-level category and its furniture, for the
// collection landing page.
type collectionGroup struct {
	Category string                 `json:"category"`
	Items    []models.FurnitureItem `json:"items"`
}

// GetCollection godoc
// @Summary Browse the whole collection
// @Description Retrieve the catalog grouped by effective top-level category, each group sorted price-ascending
// @Tags Storefront - Catalog
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /store/collection [get]
func GetCollection(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()
	db := config.Gorm.WithContext(ctx)

	parents, err := services.LoadCategoryTree(db)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
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

	grouped := make(map[string][]models.FurnitureItem)
	for _, item := range items {
		effective := services.ResolveEffectiveCategory(item, parentMap)
		grouped[effective] = append(grouped[effective], item)
	}

	// Groups follow the category tree's own ordering; items resolving to a
	// category that no longer exists trail at the end.
	groups := make([]collectionGroup, 0, len(grouped))
	for _, parent := range parents {
		if members, ok := grouped[parent.Name]; ok {
			groups = append(groups, collectionGroup{
				Category: parent.Name,
				Items:    services.SortFurniture(members, models.SortPriceAsc),
			})
			delete(grouped, parent.Name)
		}
	}
	leftovers := make([]string, 0, len(grouped))
	for name := range grouped {
		leftovers = append(leftovers, name)
	}
	sort.Strings(leftovers)
	for _, name := range leftovers {
		groups = append(groups, collectionGroup{
			Category: name,
			Items:    services.SortFurniture(grouped[name], models.SortPriceAsc),
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Collection fetched successfully", groups))
}
