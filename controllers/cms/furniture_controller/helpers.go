package furniture_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mummysboy/furnishandgo/models"
	"github.com/mummysboy/furnishandgo/services"
)

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// itemFromRequest builds the full record a write replaces. The category pair
// is normalized (legacy subcategory-in-category encoding never survives a
// write) and in_stock is derived from quantity so the two cannot diverge.
func itemFromRequest(req models.FurnitureRequest, parentMap map[string]string) models.FurnitureItem {
	category, subcategory := services.NormalizeCategoryFields(req.Category, req.Subcategory, parentMap)

	return models.FurnitureItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    category,
		Subcategory: subcategory,
		Image:       req.Image,
		Images:      models.ImageList(req.Images),
		Quantity:    req.Quantity,
		InStock:     req.Quantity > 0,
	}
}
