package category_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalog_cache "github.com/mummysboy/furnishandgo/cache"
	"github.com/mummysboy/furnishandgo/config"
	"github.com/mummysboy/furnishandgo/models"
)

// GetCategories godoc
// @Summary Get paginated categories with subcategories
// @Description Retrieve parent categories and their subcategories with pagination and furniture counts
// @Tags CMS - Categories
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse
// @Router /admin/categories [get]
func GetCategories(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	// Try cache first
	parents, productCounts, ok := catalog_cache.GetTree()
	if !ok {
		var err error
		parents, productCounts, err = loadTree()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
			return
		}
		catalog_cache.SetTree(parents, productCounts)
	}

	// Apply pagination in-memory (data is already cached)
	total := int64(len(parents))
	start := offset
	end := offset + limit
	if start > len(parents) {
		start = len(parents)
	}
	if end > len(parents) {
		end = len(parents)
	}
	paginated := parents[start:end]

	response := make([]models.CategoryWithProducts, len(paginated))
	for i, parent := range paginated {
		parentProductCount := productCounts[parent.ID]
		children := make([]models.CategoryWithProducts, len(parent.Children))
		for j, child := range parent.Children {
			childCount := productCounts[child.ID]
			parentProductCount += childCount
			children[j] = models.CategoryWithProducts{
				ID:         child.ID,
				Name:       child.Name,
				ParentID:   child.ParentID,
				ParentName: child.ParentName,
				CreatedAt:  child.CreatedAt,
				UpdatedAt:  child.UpdatedAt,
				Products:   childCount,
			}
		}
		response[i] = models.CategoryWithProducts{
			ID:        parent.ID,
			Name:      parent.Name,
			ParentID:  parent.ParentID,
			CreatedAt: parent.CreatedAt,
			UpdatedAt: parent.UpdatedAt,
			Products:  parentProductCount,
			Children:  children,
		}
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Categories fetched successfully", response, meta))
}

// loadTree fetches parents with children preloaded plus furniture counts per
// category. Each item counts exactly once: under its subcategory when it has
// one (normalized rows, and legacy rows whose category column holds the
// subcategory name), otherwise under its category. Parent totals are child
// sums plus direct items, added up in GetCategories.
func loadTree() ([]models.Category, map[uint]int, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var parents []models.Category
	if err := config.Gorm.WithContext(ctx).
		Where("parent_id IS NULL").
		Order("created_at ASC").
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Find(&parents).Error; err != nil {
		return nil, nil, err
	}

	type countResult struct {
		CategoryID uint `gorm:"column:category_id"`
		Count      int  `gorm:"column:count"`
	}
	var counts []countResult
	if err := config.Gorm.WithContext(ctx).Raw(`
		SELECT c.id AS category_id, COUNT(f.id) AS count
		FROM categories c
		JOIN furniture_items f
		  ON f.subcategory = c.name
		  OR (f.category = c.name AND f.subcategory IS NULL)
		GROUP BY c.id
	`).Scan(&counts).Error; err != nil {
		return nil, nil, err
	}

	productCounts := make(map[uint]int, len(counts))
	for _, cr := range counts {
		productCounts[cr.CategoryID] = cr.Count
	}

	return parents, productCounts, nil
}
