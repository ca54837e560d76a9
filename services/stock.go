package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mummysboy/furnishandgo/models"
)

// ApplyDecrement applies one line's decrement to an in-memory record:
// quantity floors at zero and in_stock is recomputed so the two fields never
// diverge.
func ApplyDecrement(item *models.FurnitureItem, requested int) {
	newQuantity := item.Quantity - requested
	if newQuantity < 0 {
		newQuantity = 0
	}
	item.Quantity = newQuantity
	item.InStock = newQuantity > 0
}

// DecrementStock applies all cart line decrements in one transaction.
//
// Each line is a conditional update guarded by `quantity >= requested`, so a
// concurrent checkout racing for the same units loses cleanly at the store
// layer instead of driving quantity negative: the availability check alone
// cannot close that window. A guard miss on an existing row means the stock
// moved since the caller's check; the whole batch rolls back and the stale
// lines come back as availability reports. A guard miss on a missing row is
// an orphaned line (furniture deleted mid-checkout): logged, skipped, and
// returned so the caller can drop it from the order and its totals.
func DecrementStock(ctx context.Context, pool *pgxpool.Pool, lines []models.CartLine) (reports []models.UnavailabilityReport, skipped []uint, err error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin stock transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, line := range lines {
		tag, err := tx.Exec(ctx, `
			UPDATE furniture_items
			SET quantity = quantity - $2,
			    in_stock = quantity - $2 > 0,
			    updated_at = now()
			WHERE id = $1 AND quantity >= $2
		`, line.ProductID, line.RequestedQuantity)
		if err != nil {
			return nil, nil, fmt.Errorf("decrement furniture %d: %w", line.ProductID, err)
		}
		if tag.RowsAffected() > 0 {
			continue
		}

		// Guard missed: either the row is gone or stock moved under us.
		var name string
		var available int
		err = tx.QueryRow(ctx,
			`SELECT name, quantity FROM furniture_items WHERE id = $1`,
			line.ProductID,
		).Scan(&name, &available)
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("[stock.decrement] cart line references missing furniture %d, skipping", line.ProductID)
			skipped = append(skipped, line.ProductID)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("inspect furniture %d: %w", line.ProductID, err)
		}

		kind := models.UnavailableInsufficient
		if available == 0 {
			kind = models.UnavailableOutOfStock
		}
		reports = append(reports, models.UnavailabilityReport{
			ProductID:         line.ProductID,
			ProductName:       name,
			Kind:              kind,
			RequestedQuantity: line.RequestedQuantity,
			AvailableQuantity: available,
		})
	}

	if len(reports) > 0 {
		// Deliberate rollback: no line commits unless every line can.
		return reports, nil, nil
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit stock transaction: %w", err)
	}
	return nil, skipped, nil
}
