package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sahelretail/hr-backend-go/internal/domain/sales"
	"github.com/sahelretail/hr-backend-go/internal/pkg/database"
)

type salesRepository struct {
	db *database.DB
}

func NewSalesRepository(db *database.DB) sales.SalesRepository {
	return &salesRepository{db: db}
}

func (r *salesRepository) SumInRange(ctx context.Context, employeeIDs []int64, start, end time.Time) (map[int64]sales.Totals, error) {
	query := `
		SELECT employee_id,
		       COALESCE(SUM(quantity_sold), 0) AS total_qty,
		       COALESCE(SUM(total_revenue), 0) AS total_rev
		FROM sales_summaries
		WHERE employee_id = ANY($1)
		  AND date BETWEEN $2 AND $3
		GROUP BY employee_id
	`

	rows, err := r.db.Query(ctx, query, employeeIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum sales: %w", err)
	}
	defer rows.Close()

	totals := make(map[int64]sales.Totals)
	for rows.Next() {
		var employeeID int64
		var t sales.Totals
		if err := rows.Scan(&employeeID, &t.Quantity, &t.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan sales totals: %w", err)
		}
		totals[employeeID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to sum sales: %w", err)
	}

	return totals, nil
}
