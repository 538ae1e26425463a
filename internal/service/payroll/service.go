package payroll

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sahelretail/hr-backend-go/internal/domain/advance"
	"github.com/sahelretail/hr-backend-go/internal/domain/attendance"
	"github.com/sahelretail/hr-backend-go/internal/domain/employee"
	"github.com/sahelretail/hr-backend-go/internal/domain/leave"
	"github.com/sahelretail/hr-backend-go/internal/domain/loan"
	"github.com/sahelretail/hr-backend-go/internal/domain/pay"
	"github.com/sahelretail/hr-backend-go/internal/domain/payroll"
	"github.com/sahelretail/hr-backend-go/internal/domain/sales"
)

type PayrollServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	absenceRepo  attendance.AbsenceRepository
	advanceRepo  advance.AdvanceRepository
	leaveRepo    leave.LeaveRepository
	loanRepo     loan.LoanScheduleRepository
	salesRepo    sales.SalesRepository
	payRepo      pay.PayRepository
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	absenceRepo attendance.AbsenceRepository,
	advanceRepo advance.AdvanceRepository,
	leaveRepo leave.LeaveRepository,
	loanRepo loan.LoanScheduleRepository,
	salesRepo sales.SalesRepository,
	payRepo pay.PayRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo: employeeRepo,
		absenceRepo:  absenceRepo,
		advanceRepo:  advanceRepo,
		leaveRepo:    leaveRepo,
		loanRepo:     loanRepo,
		salesRepo:    salesRepo,
		payRepo:      payRepo,
	}
}

func (s *PayrollServiceImpl) ComputePayroll(ctx context.Context, req payroll.ReportRequest) ([]payroll.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListActive(ctx, req.BranchID)
	if err != nil {
		return nil, fmt.Errorf("list active employees: %w", err)
	}
	if len(employees) == 0 {
		return []payroll.Result{}, nil
	}

	var monthlyGroup, weeklyGroup []employee.Employee
	for _, emp := range employees {
		if emp.SalaryFrequency == employee.FrequencyWeekly {
			weeklyGroup = append(weeklyGroup, emp)
		} else {
			monthlyGroup = append(monthlyGroup, emp)
		}
	}

	results := make([]payroll.Result, 0, len(employees))

	// Monthly staff are evaluated over the caller's range.
	monthlyPeriod := payroll.Period{
		Start: truncateToDay(req.Start),
		End:   truncateToDay(req.End),
	}
	batch, err := s.computeGroup(ctx, monthlyGroup, monthlyPeriod)
	if err != nil {
		return nil, err
	}
	results = append(results, batch...)

	// Weekly staff are always evaluated against the live calendar week
	// (Monday-Sunday) containing the reference date, whatever range the
	// caller asked for.
	weekStart, weekEnd := currentWeek(req.ReferenceDate)
	batch, err = s.computeGroup(ctx, weeklyGroup, payroll.Period{Start: weekStart, End: weekEnd})
	if err != nil {
		return nil, err
	}
	results = append(results, batch...)

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].Employee, results[j].Employee
		if a.BranchID != b.BranchID {
			return a.BranchID < b.BranchID
		}
		return a.FirstName < b.FirstName
	})

	return results, nil
}

func (s *PayrollServiceImpl) computeGroup(ctx context.Context, group []employee.Employee, period payroll.Period) ([]payroll.Result, error) {
	if len(group) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(group))
	for _, emp := range group {
		ids = append(ids, emp.ID)
	}

	agg, err := s.aggregatePeriod(ctx, ids, period.Start, period.End)
	if err != nil {
		return nil, err
	}

	results := make([]payroll.Result, 0, len(group))
	for _, emp := range group {
		results = append(results, calculateResult(
			emp,
			period,
			agg.Absences[emp.ID],
			agg.Advances[emp.ID],
			agg.Leaves[emp.ID],
			agg.LoansDue[emp.ID],
			agg.Sales[emp.ID],
		))
	}

	return results, nil
}

func (s *PayrollServiceImpl) EmployeeSummary(ctx context.Context, employeeID int64, referenceDate time.Time) (payroll.EmployeeSummary, error) {
	if referenceDate.IsZero() {
		return payroll.EmployeeSummary{}, payroll.ErrInvalidReferenceDate
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.EmployeeSummary{}, err
	}

	var period payroll.Period
	var salaryPayType pay.Type
	switch emp.SalaryFrequency {
	case employee.FrequencyWeekly:
		period.Start, period.End = currentWeek(referenceDate)
		salaryPayType = pay.TypeWeeklySalary
	default:
		period.Start, period.End = currentMonth(referenceDate)
		salaryPayType = pay.TypeMonthlySalary
	}

	advances, err := s.advanceRepo.ListInRange(ctx, []int64{employeeID}, period.Start, period.End)
	if err != nil {
		return payroll.EmployeeSummary{}, fmt.Errorf("summary advances: %w", err)
	}
	advancesTotal := decimal.Zero
	for _, a := range advances {
		advancesTotal = advancesTotal.Add(a.Amount)
	}

	absences, err := s.absenceRepo.ListAbsent(ctx, []int64{employeeID}, period.Start, period.End)
	if err != nil {
		return payroll.EmployeeSummary{}, fmt.Errorf("summary absences: %w", err)
	}

	salaryPayments, err := s.payRepo.ListInRange(ctx, employeeID, period.Start, period.End, salaryPayType)
	if err != nil {
		return payroll.EmployeeSummary{}, fmt.Errorf("summary salary payments: %w", err)
	}
	paidAmount := decimal.Zero
	for _, p := range salaryPayments {
		paidAmount = paidAmount.Add(p.Amount)
	}

	primes, err := s.payRepo.ListInRange(ctx, employeeID, period.Start, period.End, pay.TypePerformanceBonus)
	if err != nil {
		return payroll.EmployeeSummary{}, fmt.Errorf("summary primes: %w", err)
	}
	primesTotal := decimal.Zero
	for _, p := range primes {
		primesTotal = primesTotal.Add(p.Amount)
	}

	return payroll.EmployeeSummary{
		Employee:      emp,
		Period:        period,
		Advances:      advances,
		AdvancesTotal: advancesTotal,
		AbsenceDays:   len(absences),
		SalaryPaid:    len(salaryPayments) > 0,
		PaidAmount:    paidAmount,
		PrimesTotal:   primesTotal,
	}, nil
}
