package furniture_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mummysboy/furnishandgo/config"
	"github.com/mummysboy/furnishandgo/models"
)

// GetFurnitureStats godoc
// @Summary Get catalog statistics
// @Description Item counts, stock totals and price spread for the admin dashboard
// @Tags CMS - Furniture
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FurnitureStats}
// @Failure 503 {object} models.ApiResponse
// @Router /admin/furniture/stats [get]
func GetFurnitureStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var stats models.FurnitureStats
	if err := config.Gorm.WithContext(ctx).Raw(`
		SELECT
			COUNT(*)::int                                 AS total_items,
			COUNT(*) FILTER (WHERE in_stock)::int         AS in_stock_items,
			COUNT(*) FILTER (WHERE NOT in_stock)::int     AS out_of_stock,
			COALESCE(SUM(quantity), 0)::int               AS total_stock,
			COALESCE(AVG(price), 0)::float8               AS average_price,
			COALESCE(MAX(price), 0)::float8               AS highest_price,
			COALESCE(MIN(price), 0)::float8               AS cheapest_price
		FROM furniture_items
	`).Scan(&stats).Error; err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Furniture stats fetched successfully", stats))
}
