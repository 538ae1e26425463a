package pay

import (
	"context"
	"time"
)

type PayRepository interface {
	// ListInRange returns payments of one type for an employee dated inside
	// [start, end], ordered by date.
	ListInRange(ctx context.Context, employeeID int64, start, end time.Time, paymentType Type) ([]Payment, error)
}
