package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mummysboy/furnishandgo/controllers/storefront/cart_controller"
	"github.com/mummysboy/furnishandgo/controllers/storefront/catalog_controller"
	"github.com/mummysboy/furnishandgo/controllers/storefront/checkout_controller"
)

// SetupStorefrontRoutes registers the public storefront surface.
func SetupStorefrontRoutes(rg *gin.RouterGroup) {
	store := rg.Group("/store")

	// Catalog browsing
	store.GET("/collection", catalog_controller.GetCollection)
	store.GET("/categories/:name/furniture", catalog_controller.GetCategoryFurniture)
	store.GET("/filters/metadata", catalog_controller.GetFilterMetadata)

	// Cart + checkout
	store.POST("/cart/check", cart_controller.CheckCart)
	store.POST("/checkout", checkout_controller.CreateCheckout)
}
