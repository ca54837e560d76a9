package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mummysboy/furnishandgo/config"
	"github.com/mummysboy/furnishandgo/models"
)

// GetAllSubCategories godoc
// @Summary Get all subcategories
// @Description Retrieve every subcategory across all parents, for dropdowns
// @Tags CMS - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /admin/categories/children [get]
func GetAllSubCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var subs []models.Category
	if err := config.Gorm.WithContext(ctx).
		Where("parent_id IS NOT NULL").
		Order("parent_name ASC, name ASC").
		Find(&subs).Error; err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Subcategories fetched successfully", subs))
}
