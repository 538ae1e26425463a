package leave

import "time"

// Leave is an approved leave span, start and end dates inclusive.
type Leave struct {
	ID         int64
	EmployeeID int64
	StartDate  time.Time
	EndDate    time.Time
	Type       Type
	CreatedAt  time.Time
}

type Type string

const (
	TypePaid       Type = "paid"
	TypeUnpaid     Type = "unpaid"
	TypeSick       Type = "sick"
	TypeSickUnpaid Type = "sick_unpaid"
)

// Deductible reports whether days of this leave type are withheld from pay.
// Paid and covered sick leave never generate deduction days.
func (t Type) Deductible() bool {
	return t == TypeUnpaid || t == TypeSickUnpaid
}
