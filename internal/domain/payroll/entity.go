package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sahelretail/hr-backend-go/internal/domain/advance"
	"github.com/sahelretail/hr-backend-go/internal/domain/attendance"
	"github.com/sahelretail/hr-backend-go/internal/domain/employee"
	"github.com/sahelretail/hr-backend-go/internal/domain/leave"
	"github.com/sahelretail/hr-backend-go/internal/domain/sales"
)

// Period is an inclusive date range over which payroll is computed.
type Period struct {
	Start time.Time
	End   time.Time
}

// Result is one employee's payroll line for a resolved period. It is computed
// fresh on every invocation, never mutated afterwards and never persisted.
// The underlying absence, advance and leave records are carried along so the
// worksheet exporter can render itemized detail, not just totals.
type Result struct {
	Employee employee.Employee
	Period   Period

	ScheduledWorkDays int

	Absences        []attendance.Absence
	AbsenceDays     int
	UnpaidLeaveDays int
	DeductionDays   int

	DailyRate       decimal.Decimal
	DeductionAmount decimal.Decimal
	GrossPay        decimal.Decimal

	Advances      []advance.Advance
	AdvancesTotal decimal.Decimal

	LoansDueTotal decimal.Decimal

	Leaves []leave.Leave

	Sales sales.Totals

	// NetEstimated = gross - deduction - advances - loans due. Negative
	// values are meaningful (over-advanced employee) and never clamped.
	NetEstimated decimal.Decimal
}

// EmployeeSummary is the live period snapshot for one employee: the current
// calendar month for monthly-paid staff, the current calendar week for
// weekly-paid staff.
type EmployeeSummary struct {
	Employee employee.Employee
	Period   Period

	Advances      []advance.Advance
	AdvancesTotal decimal.Decimal
	AbsenceDays   int

	SalaryPaid bool
	PaidAmount decimal.Decimal

	PrimesTotal decimal.Decimal
}
