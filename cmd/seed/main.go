package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/mummysboy/furnishandgo/config"
	"github.com/mummysboy/furnishandgo/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

type seedCategory struct {
	name     string
	children []string
}

var seedTree = []seedCategory{
	{name: "Sofas", children: []string{"Corner Sofas", "Sofa Beds"}},
	{name: "Armchairs", children: []string{"Recliners", "Accent Chairs"}},
	{name: "Tables", children: []string{"Coffee Tables", "Dining Tables"}},
	{name: "Storage", children: []string{"Bookcases", "Sideboards"}},
	{name: "Beds", children: nil},
}

type seedItem struct {
	name        string
	description string
	price       float64
	category    string
	subcategory string
	quantity    int
}

var seedItems = []seedItem{
	{"Hartley Three-Seater", "Deep-cushioned three-seater in slate grey weave", 899.00, "Sofas", "", 8},
	{"Kendal Corner Sofa", "L-shaped corner sofa with oak feet", 1249.00, "Sofas", "Corner Sofas", 4},
	{"Fenwick Sofa Bed", "Click-clack sofa bed with storage drawer", 679.00, "Sofas", "Sofa Beds", 6},
	{"Harrogate Recliner", "Leather recliner with walnut frame", 449.00, "Armchairs", "Recliners", 12},
	{"Marlow Accent Chair", "Velvet accent chair in forest green", 289.00, "Armchairs", "Accent Chairs", 15},
	{"Ashby Coffee Table", "Round coffee table in smoked oak", 189.00, "Tables", "Coffee Tables", 20},
	{"Welburn Dining Table", "Extending dining table, seats eight", 749.00, "Tables", "Dining Tables", 5},
	{"Thornton Bookcase", "Five-shelf bookcase in solid pine", 229.00, "Storage", "Bookcases", 10},
	{"Ripon Sideboard", "Two-door sideboard with brass handles", 399.00, "Storage", "Sideboards", 7},
	{"Aldwick King Bed", "Upholstered king bed frame in oatmeal", 599.00, "Beds", "", 9},
}

// main seeds the category tree and a starter catalog.
// Usage: go run cmd/seed/main.go
// Idempotent: existing names are left untouched.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("FURNISH & GO - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.Gorm.AutoMigrate(
		&models.Category{},
		&models.FurnitureItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	created := 0
	for _, seed := range seedTree {
		parent, madeParent, err := ensureCategory(seed.name, nil, nil)
		if err != nil {
			log.Fatalf("Failed to seed category %q: %v", seed.name, err)
		}
		if madeParent {
			created++
		}
		for _, childName := range seed.children {
			_, made, err := ensureCategory(childName, &parent.ID, &parent.Name)
			if err != nil {
				log.Fatalf("Failed to seed subcategory %q: %v", childName, err)
			}
			if made {
				created++
			}
		}
	}
	log.Printf("✓ Categories seeded (%d created)", created)

	created = 0
	for _, seed := range seedItems {
		made, err := ensureItem(seed)
		if err != nil {
			log.Fatalf("Failed to seed furniture %q: %v", seed.name, err)
		}
		if made {
			created++
		}
	}
	log.Printf("✓ Furniture seeded (%d created)", created)

	fmt.Println()
	fmt.Println("Done.")
}

func ensureCategory(name string, parentID *uint, parentName *string) (*models.Category, bool, error) {
	var existing models.Category
	err := config.Gorm.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	category := models.Category{Name: name, ParentID: parentID, ParentName: parentName}
	if err := config.Gorm.Create(&category).Error; err != nil {
		return nil, false, err
	}
	return &category, true, nil
}

func ensureItem(seed seedItem) (bool, error) {
	var count int64
	if err := config.Gorm.Model(&models.FurnitureItem{}).
		Where("name = ?", seed.name).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	item := models.FurnitureItem{
		Name:        seed.name,
		Description: seed.description,
		Price:       seed.price,
		Category:    seed.category,
		Quantity:    seed.quantity,
		InStock:     seed.quantity > 0,
		Images:      models.ImageList{},
	}
	if seed.subcategory != "" {
		sub := seed.subcategory
		item.Subcategory = &sub
	}
	return true, config.Gorm.Create(&item).Error
}
