package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/sahelretail/hr-backend-go/internal/domain/advance"
	"github.com/sahelretail/hr-backend-go/internal/domain/attendance"
	"github.com/sahelretail/hr-backend-go/internal/domain/employee"
	"github.com/sahelretail/hr-backend-go/internal/domain/leave"
	"github.com/sahelretail/hr-backend-go/internal/domain/payroll"
	"github.com/sahelretail/hr-backend-go/internal/domain/sales"
)

// Monetary amounts are rounded to 3 decimal places (TND millimes).
const moneyPlaces = 3

var (
	four = decimal.NewFromInt(4)
)

// calculateResult computes one employee's payroll line for a resolved
// period. Pure function of its inputs: no clock, no I/O.
func calculateResult(
	emp employee.Employee,
	period payroll.Period,
	absences []attendance.Absence,
	advances []advance.Advance,
	leaves []leave.Leave,
	loansDue decimal.Decimal,
	salesTotals sales.Totals,
) payroll.Result {
	workDays := parseWorkDays(emp.WorkDays)
	scheduledDays := countScheduledDays(period.Start, period.End, workDays)

	// Each calendar day of an unpaid leave counts only if it is a scheduled
	// work day and falls inside the period; spans are clamped first.
	unpaidLeaveDays := 0
	for _, l := range leaves {
		if !l.Type.Deductible() {
			continue
		}
		from := maxDate(truncateToDay(l.StartDate), period.Start)
		to := minDate(truncateToDay(l.EndDate), period.End)
		unpaidLeaveDays += countScheduledDays(from, to, workDays)
	}

	absenceDays := len(absences)
	deductionDays := absenceDays + unpaidLeaveDays

	var dailyRate, gross decimal.Decimal
	switch emp.SalaryFrequency {
	case employee.FrequencyWeekly:
		// The stored salary is a monthly-equivalent figure even for weekly
		// staff; the weekly base is a quarter of it.
		weeklyBase := emp.Salary.Div(four)
		daysPerWeek := len(workDays)
		if daysPerWeek == 0 {
			daysPerWeek = 6
		}
		dailyRate = weeklyBase.Div(decimal.NewFromInt(int64(daysPerWeek)))
		// Weekly gross is the earnable amount for exactly the scheduled days
		// of the resolved week, not the raw monthly/4 figure.
		gross = dailyRate.Mul(decimal.NewFromInt(int64(scheduledDays))).Round(moneyPlaces)
	default:
		if scheduledDays > 0 && emp.Salary.IsPositive() {
			dailyRate = emp.Salary.Div(decimal.NewFromInt(int64(scheduledDays)))
		} else {
			dailyRate = decimal.Zero
		}
		gross = emp.Salary
	}

	deduction := dailyRate.Mul(decimal.NewFromInt(int64(deductionDays))).Round(moneyPlaces)

	advancesTotal := decimal.Zero
	for _, a := range advances {
		advancesTotal = advancesTotal.Add(a.Amount)
	}

	// Not floored at zero: a negative net flags an over-advanced employee.
	net := gross.Sub(deduction).Sub(advancesTotal).Sub(loansDue)

	return payroll.Result{
		Employee:          emp,
		Period:            period,
		ScheduledWorkDays: scheduledDays,
		Absences:          absences,
		AbsenceDays:       absenceDays,
		UnpaidLeaveDays:   unpaidLeaveDays,
		DeductionDays:     deductionDays,
		DailyRate:         dailyRate,
		DeductionAmount:   deduction,
		GrossPay:          gross,
		Advances:          advances,
		AdvancesTotal:     advancesTotal,
		LoansDueTotal:     loansDue,
		Leaves:            leaves,
		Sales:             salesTotals,
		NetEstimated:      net,
	}
}
