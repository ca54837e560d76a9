//go:build integration
// +build integration

package category_controller

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	catalog_cache "github.com/mummysboy/furnishandgo/cache"
	"github.com/mummysboy/furnishandgo/config"
	"github.com/mummysboy/furnishandgo/models"
	"github.com/mummysboy/furnishandgo/services"
)

func setupCategoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpg.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.FurnitureItem{}))

	config.Gorm = db
	catalog_cache.Invalidate()
	t.Cleanup(catalog_cache.Invalidate)

	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string, parent *models.Category) models.Category {
	t.Helper()
	cat := models.Category{Name: name}
	if parent != nil {
		cat.ParentID = &parent.ID
		cat.ParentName = &parent.Name
	}
	require.NoError(t, db.Create(&cat).Error)
	return cat
}

func seedItem(t *testing.T, db *gorm.DB, name, category string, subcategory *string) models.FurnitureItem {
	t.Helper()
	item := models.FurnitureItem{
		Name:        name,
		Description: name,
		Category:    category,
		Subcategory: subcategory,
		Quantity:    1,
		InStock:     true,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func renameRequest(t *testing.T, id uint, newName string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := bytes.NewBufferString(fmt.Sprintf(`{"name":%q}`, newName))
	c.Request = httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/admin/categories/%d", id), body)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(id)}}
	return c, w
}

func TestRenameParentPropagatesEverywhere(t *testing.T) {
	db := setupCategoryDB(t)

	armchairs := seedCategory(t, db, "Armchairs", nil)
	recliners := seedCategory(t, db, "Recliners", &armchairs)
	direct := seedItem(t, db, "Club Armchair", "Armchairs", nil)
	sub := "Recliners"
	normalized := seedItem(t, db, "Wingback Recliner", "Armchairs", &sub)

	c, w := renameRequest(t, armchairs.ID, "Easy Chairs")
	RenameCategory(c)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var renamed models.Category
	require.NoError(t, db.First(&renamed, armchairs.ID).Error)
	assert.Equal(t, "Easy Chairs", renamed.Name)

	var child models.Category
	require.NoError(t, db.First(&child, recliners.ID).Error)
	require.NotNil(t, child.ParentName)
	assert.Equal(t, "Easy Chairs", *child.ParentName)

	var items []models.FurnitureItem
	require.NoError(t, db.Find(&items, []uint{direct.ID, normalized.ID}).Error)
	for _, item := range items {
		assert.Equal(t, "Easy Chairs", item.Category, "item %q still references the old name", item.Name)
	}

	// The renamed category's view must still contain every item it had.
	var categories []models.Category
	require.NoError(t, db.Find(&categories).Error)
	pm := services.BuildParentMap(categories)
	for _, item := range items {
		assert.True(t, services.MatchesCategory(item, "Easy Chairs", pm),
			"item %q dropped from the renamed view", item.Name)
	}
}

func TestRenameSubcategoryFollowsFurnitureColumns(t *testing.T) {
	db := setupCategoryDB(t)

	armchairs := seedCategory(t, db, "Armchairs", nil)
	recliners := seedCategory(t, db, "Recliners", &armchairs)
	sub := "Recliners"
	normalized := seedItem(t, db, "Wingback Recliner", "Armchairs", &sub)
	legacy := seedItem(t, db, "Leather Recliner", "Recliners", nil)

	c, w := renameRequest(t, recliners.ID, "Rocking Chairs")
	RenameCategory(c)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got models.FurnitureItem
	require.NoError(t, db.First(&got, normalized.ID).Error)
	require.NotNil(t, got.Subcategory)
	assert.Equal(t, "Rocking Chairs", *got.Subcategory)

	require.NoError(t, db.First(&got, legacy.ID).Error)
	assert.Equal(t, "Rocking Chairs", got.Category)
}

func TestRenameSiblingCollisionLeavesEverythingUntouched(t *testing.T) {
	db := setupCategoryDB(t)

	armchairs := seedCategory(t, db, "Armchairs", nil)
	seedCategory(t, db, "Sofas", nil)
	seedItem(t, db, "Club Armchair", "Armchairs", nil)

	c, w := renameRequest(t, armchairs.ID, "Sofas")
	RenameCategory(c)
	require.Equal(t, http.StatusConflict, w.Code)

	var unchanged models.Category
	require.NoError(t, db.First(&unchanged, armchairs.ID).Error)
	assert.Equal(t, "Armchairs", unchanged.Name)
}

func TestLoadTreeCountsEachItemOnce(t *testing.T) {
	db := setupCategoryDB(t)

	armchairs := seedCategory(t, db, "Armchairs", nil)
	recliners := seedCategory(t, db, "Recliners", &armchairs)
	sofas := seedCategory(t, db, "Sofas", nil)

	sub := "Recliners"
	seedItem(t, db, "Club Armchair", "Armchairs", nil)
	seedItem(t, db, "Wingback Recliner", "Armchairs", &sub)
	seedItem(t, db, "Leather Recliner", "Recliners", nil)
	seedItem(t, db, "Two-Seater Sofa", "Sofas", nil)

	parents, productCounts, err := loadTree()
	require.NoError(t, err)
	require.Len(t, parents, 2)

	// A normalized row counts under its subcategory only; the parent's
	// displayed total adds child counts on top of direct items.
	assert.Equal(t, 1, productCounts[armchairs.ID])
	assert.Equal(t, 2, productCounts[recliners.ID])
	assert.Equal(t, 1, productCounts[sofas.ID])
}
