package category_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalog_cache "github.com/mummysboy/furnishandgo/cache"
	"github.com/mummysboy/furnishandgo/config"
	"github.com/mummysboy/furnishandgo/models"
)

// DeleteCategory godoc
// @Summary Delete a category
// @Description Delete a category; deleting a parent always cascades to its subcategories. Furniture referencing the deleted names blocks the delete unless cascade_products=true, in which case it is deleted too and counted.
// @Tags CMS - Categories
// @Produce json
// @Param id path int true "Category ID"
// @Param cascade_products query bool false "Also delete furniture referencing the category" default(false)
// @Success 200 {object} models.ApiResponse{data=models.DeleteCategoryResult}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Dependent furniture exists and cascade_products is false"
// @Router /admin/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}
	cascadeProducts, _ := strconv.ParseBool(c.DefaultQuery("cascade_products", "false"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category models.Category
	if err := config.Gorm.WithContext(ctx).
		Preload("Children").
		First(&category, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		} else {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
		}
		return
	}

	// Every name about to disappear: the category itself plus its children.
	doomedNames := []string{category.Name}
	for _, child := range category.Children {
		doomedNames = append(doomedNames, child.Name)
	}

	var dependents int64
	if err := config.Gorm.WithContext(ctx).Model(&models.FurnitureItem{}).
		Where("category IN ? OR subcategory IN ?", doomedNames, doomedNames).
		Count(&dependents).Error; err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
		return
	}

	// Guard against accidental silent data loss: the caller must re-invoke
	// with explicit cascade consent. No mutation happens on this path.
	if dependents > 0 && !cascadeProducts {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, models.ErrHasDependents.Error()))
		return
	}

	result := models.DeleteCategoryResult{DeletedSubcategories: len(category.Children)}

	err = config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if dependents > 0 {
			del := tx.Where("category IN ? OR subcategory IN ?", doomedNames, doomedNames).
				Delete(&models.FurnitureItem{})
			if del.Error != nil {
				return del.Error
			}
			result.DeletedProductCount = int(del.RowsAffected)
		}

		if err := tx.Where("parent_id = ?", category.ID).Delete(&models.Category{}).Error; err != nil {
			return err
		}

		return tx.Delete(&category).Error
	})
	if err != nil {
		log.Printf("[category.delete] transaction failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		return
	}

	catalog_cache.Invalidate()

	message := "Category deleted successfully"
	if len(category.Children) > 0 {
		message = "Category and its subcategories deleted successfully"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, result))
}
