package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleEntry is one installment due on an employee loan.
type ScheduleEntry struct {
	ID        int64
	LoanID    int64
	DueDate   time.Time
	DueTotal  decimal.Decimal
	PaidTotal decimal.Decimal
	Status    ScheduleStatus

	// Joined from the parent loan
	EmployeeID int64
}

type ScheduleStatus string

const (
	StatusPending ScheduleStatus = "pending"
	StatusPartial ScheduleStatus = "partial"
	StatusPaid    ScheduleStatus = "paid"
	StatusActive  ScheduleStatus = "active"
)
