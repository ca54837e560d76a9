package catalog_controller

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mummysboy/furnishandgo/config"
	"github.com/mummysboy/furnishandgo/models"
	"github.com/mummysboy/furnishandgo/services"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns availability counts, the category tree, and the store-wide price range for storefront filters
// @Tags Storefront - Catalog
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 503 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	db := config.Gorm

	// Run the three independent fetches concurrently
	var wg sync.WaitGroup
	var mu sync.Mutex

	metadata := &models.FilterMetadata{}
	var errs []error

	wg.Add(1)
	go func() {
		defer wg.Done()
		availability, err := getAvailabilityCounts(db)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.Availability = availability
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		categories, err := getCategoryTreeData(db)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.Categories = categories
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		priceRange, err := getPriceRange(db)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.PriceRange = priceRange
		}
	}()

	wg.Wait()

	if len(errs) > 0 {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}

func getAvailabilityCounts(db *gorm.DB) (*models.AvailabilityData, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			COUNT(*) FILTER (WHERE in_stock AND quantity > 0)::int       AS in_stock,
			COUNT(*) FILTER (WHERE NOT in_stock OR quantity = 0)::int    AS out_of_stock
		FROM furniture_items
	`

	var data models.AvailabilityData
	if err := db.WithContext(ctx).Raw(query).Scan(&data).Error; err != nil {
		return nil, err
	}
	return &data, nil
}

func getCategoryTreeData(db *gorm.DB) ([]models.CategoryData, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	parents, err := services.LoadCategoryTree(db.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	data := make([]models.CategoryData, 0, len(parents))
	for _, parent := range parents {
		node := models.CategoryData{ID: parent.ID, Name: parent.Name}
		for _, child := range parent.Children {
			node.Subcategories = append(node.Subcategories, models.CategoryData{
				ID:       child.ID,
				Name:     child.Name,
				ParentID: child.ParentID,
			})
		}
		data = append(data, node)
	}
	return data, nil
}

func getPriceRange(db *gorm.DB) (*models.PriceRangeData, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT COALESCE(MIN(price), 0)::float8 AS min,
		       COALESCE(MAX(price), 0)::float8 AS max
		FROM furniture_items
	`

	var data models.PriceRangeData
	if err := db.WithContext(ctx).Raw(query).Scan(&data).Error; err != nil {
		return nil, err
	}
	return &data, nil
}
