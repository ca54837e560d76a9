package furniture_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalog_cache "github.com/mummysboy/furnishandgo/cache"
	"github.com/mummysboy/furnishandgo/config"
	"github.com/mummysboy/furnishandgo/models"
	"github.com/mummysboy/furnishandgo/services"
)

// UpdateFurniture godoc
// @Summary Replace a furniture item
// @Description Full-record replace; there are no partial updates. in_stock is recomputed from the submitted quantity.
// @Tags CMS - Furniture
// @Accept json
// @Produce json
// @Param id path int true "Furniture ID"
// @Param furniture body models.FurnitureRequest true "Furniture details"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/furniture/{id} [put]
func UpdateFurniture(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid furniture ID"))
		return
	}

	var req models.FurnitureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing models.FurnitureItem
	if err := config.Gorm.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Furniture item not found"))
		} else {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
		}
		return
	}

	parentMap, err := services.LoadParentMap(config.Gorm.WithContext(ctx))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
		return
	}

	item := itemFromRequest(req, parentMap)
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt

	// Save writes every column: the request replaces the whole record.
	if err := config.Gorm.WithContext(ctx).Save(&item).Error; err != nil {
		log.Printf("[furniture.update] save failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update furniture item"))
		return
	}

	catalog_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Furniture item updated successfully", item))
}
