package payroll

import (
	"context"
	"time"
)

type PayrollService interface {
	// ComputePayroll computes one Result per active employee. Monthly-paid
	// employees are evaluated over the requested range, weekly-paid
	// employees over the calendar week containing the reference date. The
	// returned list is sorted by (branch id, first name). Any store failure
	// fails the whole batch; no partial output is ever returned.
	ComputePayroll(ctx context.Context, req ReportRequest) ([]Result, error)

	// EmployeeSummary resolves the employee's live period from their salary
	// frequency and returns the advances, absences, salary-payment state and
	// performance bonuses inside it.
	EmployeeSummary(ctx context.Context, employeeID int64, referenceDate time.Time) (EmployeeSummary, error)
}
