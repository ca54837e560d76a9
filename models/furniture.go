package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ImageList stores gallery image URLs as a JSONB column.
type ImageList []string

func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = make(ImageList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ImageList")
	}
	return json.Unmarshal(bytes, l)
}

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// FurnitureItem is one sellable catalog record.
//
// Category historically could hold either a parent category name or a
// subcategory name; Subcategory names a subcategory explicitly. All reads of
// the pair must go through services.ResolveEffectiveCategory. InStock is
// derived from Quantity and the two are recomputed together on every write.
type FurnitureItem struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement" db:"id"`
	Name        string    `json:"name" gorm:"not null;index" db:"name"`
	Description string    `json:"description" gorm:"not null" db:"description"`
	Price       float64   `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0" db:"price"`
	Category    string    `json:"category" gorm:"not null;index" db:"category"`
	Subcategory *string   `json:"subcategory" gorm:"index" db:"subcategory"`
	Image       string    `json:"image" db:"image"`
	Images      ImageList `json:"images" gorm:"type:jsonb;default:'[]'" db:"images"`
	InStock     bool      `json:"in_stock" gorm:"not null;default:true" db:"in_stock"`
	Quantity    int       `json:"quantity" gorm:"not null;default:0;check:quantity >= 0" db:"quantity"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime" db:"updated_at"`
}

func (FurnitureItem) TableName() string {
	return "furniture_items"
}

// FurnitureRequest is used for create and full-record replace. There is no
// partial update: a write replaces the whole record.
type FurnitureRequest struct {
	Name        string   `json:"name" binding:"required" example:"Harrogate Recliner"`
	Description string   `json:"description" binding:"required" example:"Leather recliner with walnut frame"`
	Price       float64  `json:"price" binding:"required,min=0" example:"449.99"`
	Category    string   `json:"category" binding:"required" example:"Armchairs"`
	Subcategory *string  `json:"subcategory,omitempty" example:"Recliners"`
	Image       string   `json:"image" example:"https://cdn.example.com/recliner.jpg"`
	Images      []string `json:"images,omitempty"`
	Quantity    int      `json:"quantity" binding:"min=0" example:"12"`
}

// FurnitureStats summarises the catalog for the admin dashboard
type FurnitureStats struct {
	TotalItems    int     `json:"total_items"`
	InStockItems  int     `json:"in_stock_items"`
	OutOfStock    int     `json:"out_of_stock_items"`
	TotalStock    int     `json:"total_stock_units"`
	AveragePrice  float64 `json:"average_price"`
	HighestPrice  float64 `json:"highest_price"`
	CheapestPrice float64 `json:"cheapest_price"`
}
