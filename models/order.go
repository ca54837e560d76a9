package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is a confirmed checkout. Orders are new surface relative to the
// legacy storefront, so they carry uuid v7 ids rather than serial ones.
type Order struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderNumber      string    `json:"order_number" gorm:"uniqueIndex;not null"`
	CustomerName     string    `json:"customer_name" gorm:"not null"`
	CustomerEmail    string    `json:"customer_email" gorm:"not null;index"`
	ShippingAddress  string    `json:"shipping_address" gorm:"not null"`
	Country          string    `json:"country" gorm:"not null"`
	Subtotal         float64   `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	Tax              float64   `json:"tax" gorm:"type:numeric(12,2);not null"`
	TaxLabel         string    `json:"tax_label" gorm:"not null"`
	Total            float64   `json:"total" gorm:"type:numeric(12,2);not null"`
	Currency         string    `json:"currency" gorm:"type:varchar(3);not null;default:'GBP'"`
	PaymentReference string    `json:"payment_reference" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots one cart line at purchase time. Name and unit price are
// copied from the furniture record so later catalog edits do not rewrite
// history.
type OrderItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;index;not null"`
	ProductID uint      `json:"product_id" gorm:"not null"`
	Name      string    `json:"name" gorm:"not null"`
	UnitPrice float64   `json:"unit_price" gorm:"type:numeric(12,2);not null"`
	Quantity  int       `json:"quantity" gorm:"not null;check:quantity > 0"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// BillingDetails is what the payment gateway needs to authorize a charge.
type BillingDetails struct {
	Name     string `json:"name" binding:"required" example:"Ada Price"`
	Email    string `json:"email" binding:"required,email" example:"ada@example.com"`
	Address  string `json:"address" binding:"required" example:"4 Mill Lane"`
	City     string `json:"city" binding:"required" example:"Leeds"`
	Postcode string `json:"postcode" binding:"required" example:"LS1 4AB"`
	Country  string `json:"country" binding:"required" example:"United Kingdom"`
}

// CheckoutRequest is the full checkout payload: the cart plus billing details.
type CheckoutRequest struct {
	Lines   []CartLine     `json:"lines" binding:"required,dive"`
	Billing BillingDetails `json:"billing" binding:"required"`
}

// CheckoutResponse is returned after a successful checkout.
type CheckoutResponse struct {
	OrderID          uuid.UUID `json:"order_id"`
	OrderNumber      string    `json:"order_number"`
	Subtotal         float64   `json:"subtotal"`
	Tax              float64   `json:"tax"`
	TaxLabel         string    `json:"tax_label"`
	Total            float64   `json:"total"`
	Currency         string    `json:"currency"`
	PaymentReference string    `json:"payment_reference"`
}
