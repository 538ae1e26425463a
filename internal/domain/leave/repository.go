package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	// ListStartingInRange returns leaves whose start date falls inside
	// [start, end]. A leave that began before the window and extends into it
	// is deliberately not returned; the pay calculator clamps the spans it
	// does receive to the reporting period.
	ListStartingInRange(ctx context.Context, employeeIDs []int64, start, end time.Time) ([]Leave, error)
}
