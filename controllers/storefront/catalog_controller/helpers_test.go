package catalog_controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mummysboy/furnishandgo/models"
)

func ginContextForQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/store/categories/Armchairs/furniture?"+rawQuery, nil)
	return c
}

func TestParseCriteria(t *testing.T) {
	bounds := models.PriceRangeData{Min: 50, Max: 900}

	t.Run("defaults to the view bounds and price-asc", func(t *testing.T) {
		criteria := parseCriteria(ginContextForQuery(t, ""), bounds)

		assert.Empty(t, criteria.SelectedSubcategories)
		assert.Equal(t, bounds, criteria.PriceRange)
		assert.Equal(t, models.SortPriceAsc, criteria.SortKey)
	})

	t.Run("reads repeated subcategory params", func(t *testing.T) {
		criteria := parseCriteria(ginContextForQuery(t, "subcategory=Recliners&subcategory=Accent+Chairs"), bounds)

		assert.Len(t, criteria.SelectedSubcategories, 2)
		assert.Contains(t, criteria.SelectedSubcategories, "Recliners")
		assert.Contains(t, criteria.SelectedSubcategories, "Accent Chairs")
	})

	t.Run("explicit price range overrides the bounds", func(t *testing.T) {
		criteria := parseCriteria(ginContextForQuery(t, "min_price=100&max_price=400"), bounds)

		assert.Equal(t, models.PriceRangeData{Min: 100, Max: 400}, criteria.PriceRange)
	})

	t.Run("unparseable price falls back to the bound", func(t *testing.T) {
		criteria := parseCriteria(ginContextForQuery(t, "min_price=cheap"), bounds)

		assert.Equal(t, bounds.Min, criteria.PriceRange.Min)
	})

	t.Run("sort keys parse and unknown ones fall back", func(t *testing.T) {
		assert.Equal(t, models.SortNameDesc, parseCriteria(ginContextForQuery(t, "sort=name-desc"), bounds).SortKey)
		assert.Equal(t, models.SortPriceAsc, parseCriteria(ginContextForQuery(t, "sort=popularity"), bounds).SortKey)
	})
}

func TestFindCategory(t *testing.T) {
	parents := []models.Category{
		{ID: 1, Name: "Sofas"},
		{ID: 2, Name: "Armchairs", Children: []*models.Category{
			{ID: 3, Name: "Recliners"},
		}},
	}

	t.Run("finds a parent", func(t *testing.T) {
		cat, parent := findCategory(parents, "Armchairs")
		require.NotNil(t, cat)
		assert.Equal(t, uint(2), cat.ID)
		assert.Nil(t, parent)
	})

	t.Run("finds a subcategory with its parent", func(t *testing.T) {
		cat, parent := findCategory(parents, "Recliners")
		require.NotNil(t, cat)
		assert.Equal(t, uint(3), cat.ID)
		require.NotNil(t, parent)
		assert.Equal(t, "Armchairs", parent.Name)
	})

	t.Run("missing name yields nil", func(t *testing.T) {
		cat, parent := findCategory(parents, "Wardrobes")
		assert.Nil(t, cat)
		assert.Nil(t, parent)
	})
}
