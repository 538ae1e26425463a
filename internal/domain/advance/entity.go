package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advance is a cash advance (deposit) handed to an employee, deducted from
// the next pay.
type Advance struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Amount     decimal.Decimal
	Note       *string
	CreatedAt  time.Time
}
