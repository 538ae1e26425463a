package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	CIN       *string
	Position  string
	BranchID  int64
	Active    bool
	// Salary is always the monthly-equivalent contractual amount, even for
	// weekly-paid employees.
	Salary          decimal.Decimal
	SalaryFrequency SalaryFrequency
	// WorkDays is the stored work-schedule spec: comma-separated weekday
	// indices, 0=Monday..6=Sunday (e.g. "0,1,2,3,4,5").
	WorkDays  string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	BranchName *string
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type SalaryFrequency string

const (
	FrequencyMonthly SalaryFrequency = "monthly"
	FrequencyWeekly  SalaryFrequency = "weekly"
)
