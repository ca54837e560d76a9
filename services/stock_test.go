package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mummysboy/furnishandgo/models"
)

func TestApplyDecrement(t *testing.T) {
	tests := []struct {
		name         string
		item         models.FurnitureItem
		requested    int
		wantQuantity int
		wantInStock  bool
	}{
		{
			name:         "partial decrement keeps item in stock",
			item:         models.FurnitureItem{Quantity: 5, InStock: true},
			requested:    3,
			wantQuantity: 2,
			wantInStock:  true,
		},
		{
			name:         "exact decrement lands on zero and clears in_stock",
			item:         models.FurnitureItem{Quantity: 5, InStock: true},
			requested:    5,
			wantQuantity: 0,
			wantInStock:  false,
		},
		{
			name:         "over-decrement floors at zero",
			item:         models.FurnitureItem{Quantity: 2, InStock: true},
			requested:    5,
			wantQuantity: 0,
			wantInStock:  false,
		},
		{
			name:         "decrement on an already empty record stays at zero",
			item:         models.FurnitureItem{Quantity: 0, InStock: false},
			requested:    1,
			wantQuantity: 0,
			wantInStock:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ApplyDecrement(&tt.item, tt.requested)
			assert.Equal(t, tt.wantQuantity, tt.item.Quantity)
			assert.Equal(t, tt.wantInStock, tt.item.InStock)
		})
	}
}
