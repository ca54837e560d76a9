package services

import (
	"github.com/mummysboy/furnishandgo/models"
)

// CheckAvailability reports which cart lines cannot be satisfied against the
// given catalog snapshot. Only unsatisfiable lines are returned, in cart
// order. The check performs no mutation: it runs both while the cart is open
// and as a final gate before committing an order, because stock can change
// between the two points.
func CheckAvailability(lines []models.CartLine, items []models.FurnitureItem) []models.UnavailabilityReport {
	byID := make(map[uint]models.FurnitureItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	var reports []models.UnavailabilityReport
	for _, line := range lines {
		item, ok := byID[line.ProductID]

		switch {
		case !ok:
			reports = append(reports, models.UnavailabilityReport{
				ProductID:         line.ProductID,
				Kind:              models.UnavailableOutOfStock,
				RequestedQuantity: line.RequestedQuantity,
				AvailableQuantity: 0,
			})

		case !item.InStock || item.Quantity == 0:
			// The in_stock flag wins even when quantity disagrees: a record
			// with a stale positive quantity is still not sellable.
			reports = append(reports, models.UnavailabilityReport{
				ProductID:         line.ProductID,
				ProductName:       item.Name,
				Kind:              models.UnavailableOutOfStock,
				RequestedQuantity: line.RequestedQuantity,
				AvailableQuantity: 0,
			})

		case item.Quantity < line.RequestedQuantity:
			reports = append(reports, models.UnavailabilityReport{
				ProductID:         line.ProductID,
				ProductName:       item.Name,
				Kind:              models.UnavailableInsufficient,
				RequestedQuantity: line.RequestedQuantity,
				AvailableQuantity: item.Quantity,
			})
		}
	}

	return reports
}
