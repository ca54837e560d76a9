package furniture_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/mummysboy/furnishandgo/cache"
	"github.com/mummysboy/furnishandgo/config"
	"github.com/mummysboy/furnishandgo/models"
)

// DeleteFurniture godoc
// @Summary Delete a furniture item
// @Tags CMS - Furniture
// @Produce json
// @Param id path int true "Furniture ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/furniture/{id} [delete]
func DeleteFurniture(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid furniture ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	res := config.Gorm.WithContext(ctx).Delete(&models.FurnitureItem{}, "id = ?", id)
	if res.Error != nil {
		log.Printf("[furniture.delete] delete failed: %v", res.Error)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Furniture item not found"))
		return
	}

	catalog_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Furniture item deleted successfully", nil))
}
