package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mummysboy/furnishandgo/controllers/cms/category_controller"
)

func SetupCategoryRoutes(rg *gin.RouterGroup) {
	category := rg.Group("/categories")

	category.GET("", category_controller.GetCategories)
	category.GET("/parents", category_controller.GetAllParentCategories)
	category.GET("/children", category_controller.GetAllSubCategories)
	category.GET("/:id", category_controller.GetCategoryByID)

	category.POST("", category_controller.CreateCategory)
	category.PATCH("/:id", category_controller.RenameCategory)
	category.DELETE("/:id", category_controller.DeleteCategory)
}
