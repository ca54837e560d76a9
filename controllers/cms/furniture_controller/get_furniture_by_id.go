package furniture_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mummysboy/furnishandgo/config"
	"github.com/mummysboy/furnishandgo/models"
)

// GetFurnitureByID godoc
// @Summary Get a single furniture item
// @Tags CMS - Furniture
// @Produce json
// @Param id path int true "Furniture ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/furniture/{id} [get]
func GetFurnitureByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid furniture ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var item models.FurnitureItem
	if err := config.Gorm.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Furniture item not found"))
		} else {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Furniture item fetched successfully", item))
}
