package advance

import (
	"context"
	"time"
)

type AdvanceRepository interface {
	// ListInRange returns advances for the given employees dated inside
	// [start, end], ordered by date.
	ListInRange(ctx context.Context, employeeIDs []int64, start, end time.Time) ([]Advance, error)
}
