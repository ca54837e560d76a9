package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mummysboy/furnishandgo/config"
	"github.com/mummysboy/furnishandgo/models"
	"github.com/mummysboy/furnishandgo/services"
)

// cartCheckResponse reports whether the cart is fulfillable right now.
// Unsatisfiable lines are a normal outcome, not an error: the endpoint always
// answers 200 and lets the client strip the offending lines.
type cartCheckResponse struct {
	Available bool                          `json:"available"`
	Reports   []models.UnavailabilityReport `json:"reports"`
}

// CheckCart godoc
// @Summary Check cart availability
// @Description Check every cart line against current stock. Returns only the unsatisfiable lines, in cart order. Stock can change at any moment, so checkout re-checks atomically before committing.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param cart body models.CartCheckRequest true "Cart lines"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /store/cart/check [post]
func CheckCart(c *gin.Context) {
	var req models.CartCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	ids := make([]uint, 0, len(req.Lines))
	for _, line := range req.Lines {
		ids = append(ids, line.ProductID)
	}

	var items []models.FurnitureItem
	if err := config.Gorm.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
		return
	}

	reports := services.CheckAvailability(req.Lines, items)
	if reports == nil {
		reports = []models.UnavailabilityReport{}
	}

	response := cartCheckResponse{Available: len(reports) == 0, Reports: reports}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart availability checked", response))
}
