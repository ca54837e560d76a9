package models

// CartLine is one product/quantity pair of an in-progress order. Carts live
// in the client session; lines only exist server-side for the duration of an
// availability check or checkout attempt.
type CartLine struct {
	ProductID         uint `json:"product_id" binding:"required"`
	RequestedQuantity int  `json:"requested_quantity" binding:"required,min=1"`
}

// UnavailabilityKind classifies why a cart line cannot be fulfilled.
type UnavailabilityKind string

const (
	UnavailableOutOfStock   UnavailabilityKind = "out_of_stock"
	UnavailableInsufficient UnavailabilityKind = "insufficient_quantity"
)

// UnavailabilityReport describes one unsatisfiable cart line. It is a normal
// data result, not an error: carts with stale quantities are expected.
type UnavailabilityReport struct {
	ProductID         uint               `json:"product_id"`
	ProductName       string             `json:"product_name,omitempty"`
	Kind              UnavailabilityKind `json:"kind"`
	RequestedQuantity int                `json:"requested_quantity"`
	AvailableQuantity int                `json:"available_quantity"`
}

// CartCheckRequest is the payload of the pre-emptive availability check.
type CartCheckRequest struct {
	Lines []CartLine `json:"lines" binding:"required,dive"`
}
