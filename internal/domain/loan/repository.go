package loan

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type LoanScheduleRepository interface {
	// SumDueInRange sums (due_total - paid_total) per employee over schedule
	// entries with status pending or partial and a due date inside
	// [start, end]. The sum is signed: an overpaid installment contributes a
	// negative amount and is not clamped.
	SumDueInRange(ctx context.Context, employeeIDs []int64, start, end time.Time) (map[int64]decimal.Decimal, error)
}
