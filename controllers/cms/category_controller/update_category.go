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

// RenameCategory godoc
// @Summary Rename a category
// @Description Rename a category in place; id and relationships are preserved and children's parent_name stays in sync
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param body body models.RenameCategoryRequest true "New name"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "New name collides with a sibling"
// @Router /admin/categories/{id} [patch]
func RenameCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	var req models.RenameCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category models.Category
	if err := config.Gorm.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		} else {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
		}
		return
	}

	if req.Name == category.Name {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Category name unchanged", category))
		return
	}

	// Sibling-scope collision check
	scope := config.Gorm.WithContext(ctx).Model(&models.Category{}).
		Where("name = ? AND id <> ?", req.Name, category.ID)
	if category.ParentID == nil {
		scope = scope.Where("parent_id IS NULL")
	} else {
		scope = scope.Where("parent_id = ?", *category.ParentID)
	}
	var collisions int64
	if err := scope.Count(&collisions).Error; err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
		return
	}
	if collisions > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, models.ErrDuplicateName.Error()))
		return
	}

	// The rename must land everywhere the name is denormalized: children's
	// parent_name and furniture rows referencing the old name in either
	// column. One transaction so a partial rename can never strand items
	// under a dead name.
	oldName := category.Name
	err = config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Category{}).
			Where("id = ?", category.ID).
			Update("name", req.Name).Error; err != nil {
			return err
		}
		if category.IsParent() {
			if err := tx.Model(&models.Category{}).
				Where("parent_id = ?", category.ID).
				Update("parent_name", req.Name).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&models.FurnitureItem{}).
			Where("category = ?", oldName).
			Update("category", req.Name).Error; err != nil {
			return err
		}
		return tx.Model(&models.FurnitureItem{}).
			Where("subcategory = ?", oldName).
			Update("subcategory", req.Name).Error
	})
	if err != nil {
		log.Printf("[category.rename] transaction failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to rename category"))
		return
	}

	catalog_cache.Invalidate()

	category.Name = req.Name
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category renamed successfully", category))
}
