package furniture_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/mummysboy/furnishandgo/cache"
	"github.com/mummysboy/furnishandgo/config"
	"github.com/mummysboy/furnishandgo/models"
	"github.com/mummysboy/furnishandgo/services"
)

// CreateFurniture godoc
// @Summary Create a furniture item
// @Description Create a new furniture item. The category/subcategory pair is normalized and in_stock is derived from quantity.
// @Tags CMS - Furniture
// @Accept json
// @Produce json
// @Param furniture body models.FurnitureRequest true "Furniture details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/furniture [post]
func CreateFurniture(c *gin.Context) {
	var req models.FurnitureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	parentMap, err := services.LoadParentMap(config.Gorm.WithContext(ctx))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
		return
	}

	item := itemFromRequest(req, parentMap)

	if err := config.Gorm.WithContext(ctx).Create(&item).Error; err != nil {
		log.Printf("[furniture.create] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create furniture item"))
		return
	}

	// Counts in the cached tree are stale now.
	catalog_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Furniture item created successfully", item))
}
