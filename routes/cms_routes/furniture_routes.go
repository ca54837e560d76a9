package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mummysboy/furnishandgo/controllers/cms/furniture_controller"
)

func SetupFurnitureRoutes(rg *gin.RouterGroup) {
	furniture := rg.Group("/furniture")

	furniture.GET("", furniture_controller.GetFurniture)
	furniture.GET("/stats", furniture_controller.GetFurnitureStats)
	furniture.GET("/:id", furniture_controller.GetFurnitureByID)

	furniture.POST("", furniture_controller.CreateFurniture)
	furniture.PUT("/:id", furniture_controller.UpdateFurniture)
	furniture.DELETE("/:id", furniture_controller.DeleteFurniture)
}
