package models

// SortKey selects the storefront ordering.
type SortKey string

const (
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// FilterCriteria narrows a category view. An empty subcategory set means no
// restriction; the price range is inclusive on both ends.
type FilterCriteria struct {
	SelectedSubcategories map[string]struct{}
	PriceRange            PriceRangeData
	SortKey               SortKey
}

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	Availability *AvailabilityData `json:"availability"`
	Categories   []CategoryData    `json:"categories"`
	PriceRange   *PriceRangeData   `json:"priceRange"`
}

// AvailabilityData represents product availability counts
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// CategoryData represents a category with optional subcategories
type CategoryData struct {
	ID            uint           `json:"id"`
	Name          string         `json:"name"`
	ParentID      *uint          `json:"parentId,omitempty"`
	Subcategories []CategoryData `json:"subcategories,omitempty"`
}

// PriceRangeData represents inclusive min/max price bounds. The zero value
// {0, 0} is the sentinel for an empty item set.
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
