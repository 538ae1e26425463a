package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sahelretail/hr-backend-go/internal/domain/advance"
	"github.com/sahelretail/hr-backend-go/internal/domain/attendance"
	"github.com/sahelretail/hr-backend-go/internal/domain/leave"
	"github.com/sahelretail/hr-backend-go/internal/domain/sales"
)

// periodAggregate groups the five transactional sources per employee id for
// one resolved period. Every roster id is initialized up front so lookups
// are total: an employee with no records gets empty lists and zero totals,
// never a missing key.
type periodAggregate struct {
	Absences map[int64][]attendance.Absence
	Advances map[int64][]advance.Advance
	Leaves   map[int64][]leave.Leave
	LoansDue map[int64]decimal.Decimal
	Sales    map[int64]sales.Totals
}

func (s *PayrollServiceImpl) aggregatePeriod(ctx context.Context, employeeIDs []int64, start, end time.Time) (periodAggregate, error) {
	agg := periodAggregate{
		Absences: make(map[int64][]attendance.Absence, len(employeeIDs)),
		Advances: make(map[int64][]advance.Advance, len(employeeIDs)),
		Leaves:   make(map[int64][]leave.Leave, len(employeeIDs)),
		LoansDue: make(map[int64]decimal.Decimal, len(employeeIDs)),
		Sales:    make(map[int64]sales.Totals, len(employeeIDs)),
	}
	for _, id := range employeeIDs {
		agg.Absences[id] = []attendance.Absence{}
		agg.Advances[id] = []advance.Advance{}
		agg.Leaves[id] = []leave.Leave{}
		agg.LoansDue[id] = decimal.Zero
		agg.Sales[id] = sales.Totals{Revenue: decimal.Zero}
	}

	// Any store failure fails the whole aggregation: payroll output must be
	// all-or-nothing, never silently incomplete.
	absences, err := s.absenceRepo.ListAbsent(ctx, employeeIDs, start, end)
	if err != nil {
		return periodAggregate{}, fmt.Errorf("aggregate absences: %w", err)
	}
	for _, a := range absences {
		agg.Absences[a.EmployeeID] = append(agg.Absences[a.EmployeeID], a)
	}

	advances, err := s.advanceRepo.ListInRange(ctx, employeeIDs, start, end)
	if err != nil {
		return periodAggregate{}, fmt.Errorf("aggregate advances: %w", err)
	}
	for _, a := range advances {
		agg.Advances[a.EmployeeID] = append(agg.Advances[a.EmployeeID], a)
	}

	leaves, err := s.leaveRepo.ListStartingInRange(ctx, employeeIDs, start, end)
	if err != nil {
		return periodAggregate{}, fmt.Errorf("aggregate leaves: %w", err)
	}
	for _, l := range leaves {
		agg.Leaves[l.EmployeeID] = append(agg.Leaves[l.EmployeeID], l)
	}

	loansDue, err := s.loanRepo.SumDueInRange(ctx, employeeIDs, start, end)
	if err != nil {
		return periodAggregate{}, fmt.Errorf("aggregate loan dues: %w", err)
	}
	for id, due := range loansDue {
		agg.LoansDue[id] = due
	}

	salesTotals, err := s.salesRepo.SumInRange(ctx, employeeIDs, start, end)
	if err != nil {
		return periodAggregate{}, fmt.Errorf("aggregate sales: %w", err)
	}
	for id, totals := range salesTotals {
		agg.Sales[id] = totals
	}

	return agg, nil
}
