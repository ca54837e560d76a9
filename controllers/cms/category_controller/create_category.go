package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalog_cache "github.com/mummysboy/furnishandgo/cache"
	"github.com/mummysboy/furnishandgo/config"
	"github.com/mummysboy/furnishandgo/models"
)

// CreateCategory godoc
// @Summary Create a category or subcategory
// @Description Create a top-level category, or a subcategory when parent_id is set. Top-level names are globally unique; subcategory names are unique within their parent.
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param category body models.CategoryRequest true "Category details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Duplicate name in sibling scope"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	category := models.Category{Name: req.Name, ParentID: req.ParentID}

	// Subcategories must hang off a top-level category: the tree is exactly
	// two levels deep.
	if req.ParentID != nil {
		var parent models.Category
		if err := config.Gorm.WithContext(ctx).First(&parent, "id = ?", *req.ParentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Parent category not found"))
			} else {
				c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
			}
			return
		}
		if !parent.IsParent() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Parent must be a top-level category"))
			return
		}
		category.ParentName = &parent.Name
	}

	// Sibling-scope uniqueness check
	scope := config.Gorm.WithContext(ctx).Model(&models.Category{}).Where("name = ?", req.Name)
	if req.ParentID == nil {
		scope = scope.Where("parent_id IS NULL")
	} else {
		scope = scope.Where("parent_id = ?", *req.ParentID)
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

	if err := config.Gorm.WithContext(ctx).Create(&category).Error; err != nil {
		log.Printf("[category.create] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}

	catalog_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
