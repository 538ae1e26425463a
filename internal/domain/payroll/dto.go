package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// ReportRequest describes one payroll computation batch. ReferenceDate is
// "today" in the business timezone; it pins the weekly pay window so that a
// batch is reproducible without reading the clock.
type ReportRequest struct {
	Start         time.Time
	End           time.Time
	BranchID      *int64
	ReferenceDate time.Time
}

func (r ReportRequest) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return ErrInvalidPeriod
	}
	if r.ReferenceDate.IsZero() {
		return ErrInvalidReferenceDate
	}
	return nil
}

type AdvanceDetail struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

type LeaveDetail struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Type      string `json:"type"`
}

type ResultResponse struct {
	EmployeeID      int64   `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	CIN             *string `json:"cin,omitempty"`
	Position        string  `json:"position"`
	BranchID        int64   `json:"branch_id"`
	BranchName      *string `json:"branch_name,omitempty"`
	SalaryFrequency string  `json:"salary_frequency"`

	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	BaseSalary        decimal.Decimal `json:"base_salary"`
	ScheduledWorkDays int             `json:"scheduled_work_days"`
	AbsenceDays       int             `json:"absence_days"`
	AbsenceDates      []string        `json:"absence_dates"`
	UnpaidLeaveDays   int             `json:"unpaid_leave_days"`
	DeductionDays     int             `json:"deduction_days"`
	DailyRate         decimal.Decimal `json:"daily_rate"`
	DeductionAmount   decimal.Decimal `json:"deduction_amount"`
	GrossPay          decimal.Decimal `json:"gross_pay"`
	AdvancesTotal     decimal.Decimal `json:"advances_total"`
	Advances          []AdvanceDetail `json:"advances"`
	LoansDueTotal     decimal.Decimal `json:"loans_due_total"`
	Leaves            []LeaveDetail   `json:"leaves"`
	SalesQuantity     int64           `json:"sales_quantity"`
	SalesRevenue      decimal.Decimal `json:"sales_revenue"`
	NetEstimated      decimal.Decimal `json:"net_estimated"`
}

func NewResultResponse(r Result) ResultResponse {
	absenceDates := make([]string, 0, len(r.Absences))
	for _, a := range r.Absences {
		absenceDates = append(absenceDates, a.Date.Format(dateLayout))
	}

	advances := make([]AdvanceDetail, 0, len(r.Advances))
	for _, a := range r.Advances {
		advances = append(advances, AdvanceDetail{
			Date:   a.Date.Format(dateLayout),
			Amount: a.Amount,
		})
	}

	leaves := make([]LeaveDetail, 0, len(r.Leaves))
	for _, l := range r.Leaves {
		leaves = append(leaves, LeaveDetail{
			StartDate: l.StartDate.Format(dateLayout),
			EndDate:   l.EndDate.Format(dateLayout),
			Type:      string(l.Type),
		})
	}

	return ResultResponse{
		EmployeeID:        r.Employee.ID,
		EmployeeName:      r.Employee.FullName(),
		CIN:               r.Employee.CIN,
		Position:          r.Employee.Position,
		BranchID:          r.Employee.BranchID,
		BranchName:        r.Employee.BranchName,
		SalaryFrequency:   string(r.Employee.SalaryFrequency),
		PeriodStart:       r.Period.Start.Format(dateLayout),
		PeriodEnd:         r.Period.End.Format(dateLayout),
		BaseSalary:        r.Employee.Salary,
		ScheduledWorkDays: r.ScheduledWorkDays,
		AbsenceDays:       r.AbsenceDays,
		AbsenceDates:      absenceDates,
		UnpaidLeaveDays:   r.UnpaidLeaveDays,
		DeductionDays:     r.DeductionDays,
		DailyRate:         r.DailyRate,
		DeductionAmount:   r.DeductionAmount,
		GrossPay:          r.GrossPay,
		AdvancesTotal:     r.AdvancesTotal,
		Advances:          advances,
		LoansDueTotal:     r.LoansDueTotal,
		Leaves:            leaves,
		SalesQuantity:     r.Sales.Quantity,
		SalesRevenue:      r.Sales.Revenue,
		NetEstimated:      r.NetEstimated,
	}
}

type EmployeeSummaryResponse struct {
	EmployeeID      int64  `json:"employee_id"`
	EmployeeName    string `json:"employee_name"`
	SalaryFrequency string `json:"salary_frequency"`

	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	AdvancesTotal decimal.Decimal `json:"advances_total"`
	Advances      []AdvanceDetail `json:"advances"`
	AbsenceDays   int             `json:"absence_days"`
	SalaryPaid    bool            `json:"salary_paid"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PrimesTotal   decimal.Decimal `json:"primes_total"`
}

func NewEmployeeSummaryResponse(s EmployeeSummary) EmployeeSummaryResponse {
	advances := make([]AdvanceDetail, 0, len(s.Advances))
	for _, a := range s.Advances {
		advances = append(advances, AdvanceDetail{
			Date:   a.Date.Format(dateLayout),
			Amount: a.Amount,
		})
	}

	return EmployeeSummaryResponse{
		EmployeeID:      s.Employee.ID,
		EmployeeName:    s.Employee.FullName(),
		SalaryFrequency: string(s.Employee.SalaryFrequency),
		PeriodStart:     s.Period.Start.Format(dateLayout),
		PeriodEnd:       s.Period.End.Format(dateLayout),
		AdvancesTotal:   s.AdvancesTotal,
		Advances:        advances,
		AbsenceDays:     s.AbsenceDays,
		SalaryPaid:      s.SalaryPaid,
		PaidAmount:      s.PaidAmount,
		PrimesTotal:     s.PrimesTotal,
	}
}
