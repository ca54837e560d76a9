package models

import (
	"time"
)

// Category is one node of the two-level catalog tree: a parent category has
// ParentID nil, a subcategory points at a parent category. A subcategory can
// never itself be a parent.
type Category struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement" db:"id"`
	Name       string    `json:"name" gorm:"not null;index" db:"name"`
	ParentID   *uint     `json:"parent_id" gorm:"index" db:"parent_id"`
	ParentName *string   `json:"parent_name" gorm:"type:text" db:"parent_name"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime" db:"updated_at"`

	Parent   *Category   `json:"parent,omitempty" gorm:"foreignKey:ParentID;references:ID"`
	Children []*Category `json:"children,omitempty" gorm:"foreignKey:ParentID"`
}

// IsParent reports whether the category is a top-level one.
func (c *Category) IsParent() bool {
	return c.ParentID == nil
}

func (Category) TableName() string {
	return "categories"
}

// CategoryWithProducts extends Category with a furniture count, used by the
// admin tree view.
type CategoryWithProducts struct {
	ID         uint                   `json:"id"`
	Name       string                 `json:"name"`
	ParentID   *uint                  `json:"parent_id"`
	ParentName *string                `json:"parent_name"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
	Products   int                    `json:"products"`
	Children   []CategoryWithProducts `json:"children,omitempty"`
}

// CategoryRequest is used when creating a category or subcategory
type CategoryRequest struct {
	Name     string `json:"name" binding:"required" example:"Armchairs"`
	ParentID *uint  `json:"parent_id,omitempty" example:"null"`
}

// RenameCategoryRequest is used when renaming a category in place
type RenameCategoryRequest struct {
	Name string `json:"name" binding:"required" example:"Recliners"`
}

// DeleteCategoryResult reports what a cascade delete removed
type DeleteCategoryResult struct {
	DeletedSubcategories int `json:"deleted_subcategories"`
	DeletedProductCount  int `json:"deleted_product_count"`
}
