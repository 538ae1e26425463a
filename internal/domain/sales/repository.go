package sales

import (
	"context"
	"time"
)

type SalesRepository interface {
	// SumInRange sums quantity sold and revenue per employee over daily
	// sales summaries dated inside [start, end].
	SumInRange(ctx context.Context, employeeIDs []int64, start, end time.Time) (map[int64]Totals, error)
}
