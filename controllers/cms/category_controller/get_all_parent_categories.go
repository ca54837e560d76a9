package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/mummysboy/furnishandgo/cache"
	"github.com/mummysboy/furnishandgo/config"
	"github.com/mummysboy/furnishandgo/models"
)

// GetAllParentCategories godoc
// @Summary Get all parent categories
// @Description Retrieve every top-level category (no pagination), for dropdowns
// @Tags CMS - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /admin/categories/parents [get]
func GetAllParentCategories(c *gin.Context) {
	if parents, _, ok := catalog_cache.GetTree(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Parent categories fetched successfully", stripChildren(parents)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var parents []models.Category
	if err := config.Gorm.WithContext(ctx).
		Where("parent_id IS NULL").
		Order("name ASC").
		Find(&parents).Error; err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Parent categories fetched successfully", parents))
}

func stripChildren(parents []models.Category) []models.Category {
	out := make([]models.Category, len(parents))
	for i, p := range parents {
		p.Children = nil
		out[i] = p
	}
	return out
}
