package services

import (
	"fmt"

	"gorm.io/gorm"

	catalog_cache "github.com/mummysboy/furnishandgo/cache"
	"github.com/mummysboy/furnishandgo/models"
)

// LoadParentMap returns the name → top-level-name map, served from the
// catalog cache when fresh. Every storefront request and every write-time
// normalization resolves through this map.
func LoadParentMap(db *gorm.DB) (map[string]string, error) {
	if pm, ok := catalog_cache.GetParentMap(); ok {
		return pm, nil
	}

	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}

	pm := BuildParentMap(categories)
	catalog_cache.SetParentMap(pm)
	return pm, nil
}

// LoadCategoryTree returns parents with children preloaded, ordered by name.
func LoadCategoryTree(db *gorm.DB) ([]models.Category, error) {
	var parents []models.Category
	if err := db.
		Where("parent_id IS NULL").
		Order("name ASC").
		Preload("Children", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("name ASC")
		}).
		Find(&parents).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return parents, nil
}
