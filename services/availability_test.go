package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mummysboy/furnishandgo/models"
)

func catalogSnapshot() []models.FurnitureItem {
	return []models.FurnitureItem{
		{ID: 1, Name: "Oak Sideboard", InStock: true, Quantity: 5},
		{ID: 2, Name: "Velvet Sofa", InStock: true, Quantity: 2},
		{ID: 3, Name: "Walnut Desk", InStock: false, Quantity: 0},
		{ID: 4, Name: "Rattan Chair", InStock: false, Quantity: 3},
	}
}

func TestCheckAvailability(t *testing.T) {
	tests := []struct {
		name  string
		lines []models.CartLine
		want  []models.UnavailabilityReport
	}{
		{
			name:  "satisfiable cart yields no reports",
			lines: []models.CartLine{{ProductID: 1, RequestedQuantity: 3}, {ProductID: 2, RequestedQuantity: 2}},
			want:  nil,
		},
		{
			name:  "requesting the exact remaining quantity is fine",
			lines: []models.CartLine{{ProductID: 1, RequestedQuantity: 5}},
			want:  nil,
		},
		{
			name:  "one more than remaining is insufficient",
			lines: []models.CartLine{{ProductID: 1, RequestedQuantity: 6}},
			want: []models.UnavailabilityReport{
				{ProductID: 1, ProductName: "Oak Sideboard", Kind: models.UnavailableInsufficient, RequestedQuantity: 6, AvailableQuantity: 5},
			},
		},
		{
			name:  "zero quantity is out of stock",
			lines: []models.CartLine{{ProductID: 3, RequestedQuantity: 1}},
			want: []models.UnavailabilityReport{
				{ProductID: 3, ProductName: "Walnut Desk", Kind: models.UnavailableOutOfStock, RequestedQuantity: 1, AvailableQuantity: 0},
			},
		},
		{
			name:  "cleared in_stock flag wins over a positive quantity",
			lines: []models.CartLine{{ProductID: 4, RequestedQuantity: 1}},
			want: []models.UnavailabilityReport{
				{ProductID: 4, ProductName: "Rattan Chair", Kind: models.UnavailableOutOfStock, RequestedQuantity: 1, AvailableQuantity: 0},
			},
		},
		{
			name:  "unknown product reads as out of stock",
			lines: []models.CartLine{{ProductID: 99, RequestedQuantity: 2}},
			want: []models.UnavailabilityReport{
				{ProductID: 99, Kind: models.UnavailableOutOfStock, RequestedQuantity: 2, AvailableQuantity: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckAvailability(tt.lines, catalogSnapshot())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckAvailabilityPreservesCartOrder(t *testing.T) {
	lines := []models.CartLine{
		{ProductID: 3, RequestedQuantity: 1},
		{ProductID: 1, RequestedQuantity: 2},
		{ProductID: 2, RequestedQuantity: 9},
		{ProductID: 4, RequestedQuantity: 1},
	}

	reports := CheckAvailability(lines, catalogSnapshot())
	require.Len(t, reports, 3)

	assert.Equal(t, uint(3), reports[0].ProductID)
	assert.Equal(t, uint(2), reports[1].ProductID)
	assert.Equal(t, uint(4), reports[2].ProductID)

	assert.Equal(t, models.UnavailableOutOfStock, reports[0].Kind)
	assert.Equal(t, models.UnavailableInsufficient, reports[1].Kind)
	assert.Equal(t, int(2), reports[1].AvailableQuantity)
	assert.Equal(t, models.UnavailableOutOfStock, reports[2].Kind)
}
