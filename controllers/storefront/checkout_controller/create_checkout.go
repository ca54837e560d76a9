package checkout_controller

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	catalog_cache "github.com/mummysboy/furnishandgo/cache"
	"github.com/mummysboy/furnishandgo/config"
	"github.com/mummysboy/furnishandgo/models"
	"github.com/mummysboy/furnishandgo/services"
)

var paymentClient *services.PaymentClient

// InitPaymentClient wires the gateway client; called once from main.
func InitPaymentClient(gatewayURL, apiKey string) {
	paymentClient = services.NewPaymentClient(gatewayURL, apiKey)
}

// CreateCheckout godoc
// @Summary Check out the cart
// @Description Availability-check the cart, authorize payment, then decrement stock atomically and record the order. Stock decrements are conditional: a concurrent purchase of the same units fails this checkout instead of driving quantity negative.
// @Tags Storefront - Checkout
// @Accept json
// @Produce json
// @Param checkout body models.CheckoutRequest true "Cart lines and billing details"
// @Success 201 {object} models.ApiResponse{data=models.CheckoutResponse} "Order confirmed"
// @Failure 400 {object} models.ApiResponse "Invalid request or empty cart"
// @Failure 402 {object} models.ApiResponse "Payment declined"
// @Failure 409 {object} models.ApiResponse "One or more lines unavailable"
// @Failure 503 {object} models.ApiResponse
// @Router /store/checkout [post]
func CreateCheckout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	if len(req.Lines) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart cannot be empty"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: load the lines' furniture and gate on availability. This check
	// is advisory; the decrement below re-validates atomically.
	ids := make([]uint, 0, len(req.Lines))
	for _, line := range req.Lines {
		ids = append(ids, line.ProductID)
	}
	var items []models.FurnitureItem
	if err := config.Gorm.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
		return
	}

	if reports := services.CheckAvailability(req.Lines, items); len(reports) > 0 {
		c.JSON(http.StatusConflict, models.ApiResponse{
			Message: "Some items are unavailable",
			Error:   true,
			Data:    gin.H{"reports": reports},
		})
		return
	}

	// Step 2: totals
	byID := make(map[uint]models.FurnitureItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	subtotal, tax, total := cartTotals(req.Lines, byID, req.Billing.Country)
	taxLabel := services.TaxLabelFor(req.Billing.Country)

	// Step 3: authorize payment. Stock only moves after a successful
	// authorization.
	auth, err := paymentClient.Authorize(ctx, total, "GBP", req.Billing)
	if err != nil {
		log.Printf("[checkout] payment gateway failure: %v", err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Payment gateway unavailable"))
		return
	}
	if !auth.Success {
		c.JSON(http.StatusPaymentRequired, models.ErrorResponse(c, "Payment declined: "+auth.Reason))
		return
	}

	// Step 4: decrement stock, the final atomic gate. A report here means a
	// concurrent purchase won the race since step 1; nothing was committed.
	reports, skipped, err := services.DecrementStock(ctx, config.DB, req.Lines)
	if err != nil {
		log.Printf("[checkout] stock decrement failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, models.ErrStoreUnavailable.Error()))
		return
	}
	if len(reports) > 0 {
		log.Printf("[checkout] stock moved since availability check, rolled back (payment ref %s left for void)", auth.Reference)
		c.JSON(http.StatusConflict, models.ApiResponse{
			Message: "Stock changed during checkout",
			Error:   true,
			Data: gin.H{
				"reports":           reports,
				"payment_reference": auth.Reference,
			},
		})
		return
	}

	catalog_cache.Invalidate()

	// Lines whose furniture vanished mid-checkout were skipped by the
	// decrement; the order and its totals must cover only what was actually
	// fulfilled, not what the gateway authorized.
	fulfilled := req.Lines
	if len(skipped) > 0 {
		fulfilled = excludeLines(req.Lines, skipped)
		authorized := total
		subtotal, tax, total = cartTotals(fulfilled, byID, req.Billing.Country)
		log.Printf("[checkout] %d cart line(s) vanished during checkout: authorized %.2f, fulfilling %.2f (ref %s flagged for partial refund)",
			len(skipped), authorized, total, auth.Reference)
	}
	if len(fulfilled) == 0 {
		log.Printf("[checkout] every cart line vanished during checkout (ref %s flagged for void)", auth.Reference)
		c.JSON(http.StatusConflict, models.ApiResponse{
			Message: "Items are no longer available",
			Error:   true,
			Data:    gin.H{"payment_reference": auth.Reference},
		})
		return
	}

	// Step 5: record the order
	orderID := uuid.Must(uuid.NewV7())
	order := models.Order{
		ID:               orderID,
		OrderNumber:      orderNumber(orderID),
		CustomerName:     req.Billing.Name,
		CustomerEmail:    req.Billing.Email,
		ShippingAddress:  fmt.Sprintf("%s, %s, %s", req.Billing.Address, req.Billing.City, req.Billing.Postcode),
		Country:          req.Billing.Country,
		Subtotal:         subtotal,
		Tax:              tax,
		TaxLabel:         taxLabel,
		Total:            total,
		Currency:         "GBP",
		PaymentReference: auth.Reference,
	}

	err = config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, line := range fulfilled {
			item := byID[line.ProductID]
			orderItem := models.OrderItem{
				ID:        uuid.Must(uuid.NewV7()),
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Name:      item.Name,
				UnitPrice: item.Price,
				Quantity:  line.RequestedQuantity,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[checkout] order insert failed after decrement (payment ref %s): %v", auth.Reference, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to record order"))
		return
	}

	log.Printf("[checkout] order %s confirmed: %.2f GBP, %d lines", order.OrderNumber, total, len(fulfilled))

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order confirmed", models.CheckoutResponse{
		OrderID:          order.ID,
		OrderNumber:      order.OrderNumber,
		Subtotal:         subtotal,
		Tax:              tax,
		TaxLabel:         taxLabel,
		Total:            total,
		Currency:         "GBP",
		PaymentReference: auth.Reference,
	}))
}

// cartTotals computes the money lines over the given cart lines.
func cartTotals(lines []models.CartLine, byID map[uint]models.FurnitureItem, country string) (subtotal, tax, total float64) {
	for _, line := range lines {
		subtotal += byID[line.ProductID].Price * float64(line.RequestedQuantity)
	}
	tax = services.ComputeTax(subtotal, country)
	return subtotal, tax, subtotal + tax
}

// excludeLines returns lines minus those naming an omitted product id.
func excludeLines(lines []models.CartLine, omit []uint) []models.CartLine {
	omitted := make(map[uint]struct{}, len(omit))
	for _, id := range omit {
		omitted[id] = struct{}{}
	}
	kept := make([]models.CartLine, 0, len(lines))
	for _, line := range lines {
		if _, ok := omitted[line.ProductID]; !ok {
			kept = append(kept, line)
		}
	}
	return kept
}

// orderNumber derives a short human-facing reference from the order id.
func orderNumber(id uuid.UUID) string {
	compact := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return "FG-" + compact[:12]
}
