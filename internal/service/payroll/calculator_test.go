package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sahelretail/hr-backend-go/internal/domain/advance"
	"github.com/sahelretail/hr-backend-go/internal/domain/attendance"
	"github.com/sahelretail/hr-backend-go/internal/domain/employee"
	"github.com/sahelretail/hr-backend-go/internal/domain/leave"
	"github.com/sahelretail/hr-backend-go/internal/domain/payroll"
	"github.com/sahelretail/hr-backend-go/internal/domain/sales"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// August 2025: 31 days, 5 Sundays, so 26 scheduled Mon-Sat days.
func augustPeriod() payroll.Period {
	return payroll.Period{Start: day(2025, 8, 1), End: day(2025, 8, 31)}
}

func monthlyEmployee(salary int64) employee.Employee {
	return employee.Employee{
		ID:              1,
		FirstName:       "Amine",
		LastName:        "Ben Salah",
		Position:        "Vendeur",
		BranchID:        1,
		Active:          true,
		Salary:          decimal.NewFromInt(salary),
		SalaryFrequency: employee.FrequencyMonthly,
		WorkDays:        "0,1,2,3,4,5",
	}
}

func weeklyEmployee(salary int64) employee.Employee {
	emp := monthlyEmployee(salary)
	emp.ID = 2
	emp.SalaryFrequency = employee.FrequencyWeekly
	return emp
}

func TestCalculateResultMonthly(t *testing.T) {
	t.Run("no deductions", func(t *testing.T) {
		res := calculateResult(monthlyEmployee(1300), augustPeriod(),
			nil, nil, nil, decimal.Zero, sales.Totals{Revenue: decimal.Zero})

		assert.Equal(t, 26, res.ScheduledWorkDays)
		assert.True(t, res.DailyRate.Equal(decimal.NewFromInt(50)), res.DailyRate.String())
		assert.True(t, res.GrossPay.Equal(decimal.NewFromInt(1300)))
		assert.True(t, res.DeductionAmount.IsZero())
		assert.True(t, res.NetEstimated.Equal(decimal.NewFromInt(1300)))
	})

	t.Run("two absences", func(t *testing.T) {
		absences := []attendance.Absence{
			{ID: 1, EmployeeID: 1, Date: day(2025, 8, 5)},
			{ID: 2, EmployeeID: 1, Date: day(2025, 8, 6)},
		}
		res := calculateResult(monthlyEmployee(1300), augustPeriod(),
			absences, nil, nil, decimal.Zero, sales.Totals{Revenue: decimal.Zero})

		assert.Equal(t, 2, res.AbsenceDays)
		assert.Equal(t, 2, res.DeductionDays)
		assert.True(t, res.DeductionAmount.Equal(decimal.NewFromInt(100)), res.DeductionAmount.String())
		assert.True(t, res.NetEstimated.Equal(decimal.NewFromInt(1200)), res.NetEstimated.String())
	})

	t.Run("advances and loans reduce net", func(t *testing.T) {
		advances := []advance.Advance{
			{ID: 1, EmployeeID: 1, Date: day(2025, 8, 10), Amount: decimal.NewFromInt(200)},
			{ID: 2, EmployeeID: 1, Date: day(2025, 8, 20), Amount: decimal.NewFromInt(100)},
		}
		res := calculateResult(monthlyEmployee(1300), augustPeriod(),
			nil, advances, nil, decimal.NewFromInt(150), sales.Totals{Revenue: decimal.Zero})

		assert.True(t, res.AdvancesTotal.Equal(decimal.NewFromInt(300)))
		assert.True(t, res.LoansDueTotal.Equal(decimal.NewFromInt(150)))
		assert.True(t, res.NetEstimated.Equal(decimal.NewFromInt(850)), res.NetEstimated.String())
	})

	t.Run("net goes negative when over-advanced", func(t *testing.T) {
		advances := []advance.Advance{
			{ID: 1, EmployeeID: 1, Date: day(2025, 8, 10), Amount: decimal.NewFromInt(1500)},
		}
		res := calculateResult(monthlyEmployee(1300), augustPeriod(),
			nil, advances, nil, decimal.Zero, sales.Totals{Revenue: decimal.Zero})

		assert.True(t, res.NetEstimated.IsNegative())
		assert.True(t, res.NetEstimated.Equal(decimal.NewFromInt(-200)), res.NetEstimated.String())
	})

	t.Run("zero scheduled days", func(t *testing.T) {
		// A Sunday-only period against a Mon-Sat schedule.
		period := payroll.Period{Start: day(2025, 8, 3), End: day(2025, 8, 3)}
		res := calculateResult(monthlyEmployee(1300), period,
			nil, nil, nil, decimal.Zero, sales.Totals{Revenue: decimal.Zero})

		assert.Equal(t, 0, res.ScheduledWorkDays)
		assert.True(t, res.DailyRate.IsZero())
		assert.True(t, res.GrossPay.Equal(decimal.NewFromInt(1300)))
		assert.True(t, res.DeductionAmount.IsZero())
	})
}

func TestCalculateResultWeekly(t *testing.T) {
	// Mon Aug 4 through Sun Aug 10 2025, 6 scheduled Mon-Sat days.
	week := payroll.Period{Start: day(2025, 8, 4), End: day(2025, 8, 10)}

	t.Run("full week", func(t *testing.T) {
		res := calculateResult(weeklyEmployee(1000), week,
			nil, nil, nil, decimal.Zero, sales.Totals{Revenue: decimal.Zero})

		assert.Equal(t, 6, res.ScheduledWorkDays)
		// 1000/4 = 250 per week, spread over 6 scheduled days.
		assert.Equal(t, "41.667", res.DailyRate.Round(moneyPlaces).StringFixed(3))
		assert.True(t, res.GrossPay.Equal(decimal.NewFromInt(250)), res.GrossPay.String())
		assert.True(t, res.NetEstimated.Equal(decimal.NewFromInt(250)))
	})

	t.Run("one absence", func(t *testing.T) {
		absences := []attendance.Absence{{ID: 1, EmployeeID: 2, Date: day(2025, 8, 5)}}
		res := calculateResult(weeklyEmployee(1000), week,
			absences, nil, nil, decimal.Zero, sales.Totals{Revenue: decimal.Zero})

		assert.Equal(t, "41.667", res.DeductionAmount.StringFixed(3))
		assert.Equal(t, "208.333", res.NetEstimated.StringFixed(3))
	})

	t.Run("five day schedule", func(t *testing.T) {
		emp := weeklyEmployee(1000)
		emp.WorkDays = "0,1,2,3,4"
		res := calculateResult(emp, week,
			nil, nil, nil, decimal.Zero, sales.Totals{Revenue: decimal.Zero})

		assert.Equal(t, 5, res.ScheduledWorkDays)
		assert.True(t, res.DailyRate.Equal(decimal.NewFromInt(50)), res.DailyRate.String())
		assert.True(t, res.GrossPay.Equal(decimal.NewFromInt(250)))
	})
}

func TestCalculateResultLeaves(t *testing.T) {
	t.Run("unpaid leave deducts scheduled days only", func(t *testing.T) {
		// Thu Aug 7 through Mon Aug 11 spans a Sunday: 4 scheduled days.
		leaves := []leave.Leave{{
			ID: 1, EmployeeID: 1, Type: leave.TypeUnpaid,
			StartDate: day(2025, 8, 7), EndDate: day(2025, 8, 11),
		}}
		res := calculateResult(monthlyEmployee(1300), augustPeriod(),
			nil, nil, leaves, decimal.Zero, sales.Totals{Revenue: decimal.Zero})

		assert.Equal(t, 4, res.UnpaidLeaveDays)
		assert.Equal(t, 4, res.DeductionDays)
		assert.True(t, res.DeductionAmount.Equal(decimal.NewFromInt(200)), res.DeductionAmount.String())
	})

	t.Run("leave extending past the period is clamped", func(t *testing.T) {
		leaves := []leave.Leave{{
			ID: 1, EmployeeID: 1, Type: leave.TypeSickUnpaid,
			StartDate: day(2025, 8, 29), EndDate: day(2025, 9, 5),
		}}
		res := calculateResult(monthlyEmployee(1300), augustPeriod(),
			nil, nil, leaves, decimal.Zero, sales.Totals{Revenue: decimal.Zero})

		// Fri 29 and Sat 30 count; Sun 31 is off and September is outside.
		assert.Equal(t, 2, res.UnpaidLeaveDays)
	})

	t.Run("paid and sick leaves deduct nothing", func(t *testing.T) {
		leaves := []leave.Leave{
			{ID: 1, EmployeeID: 1, Type: leave.TypePaid, StartDate: day(2025, 8, 4), EndDate: day(2025, 8, 9)},
			{ID: 2, EmployeeID: 1, Type: leave.TypeSick, StartDate: day(2025, 8, 11), EndDate: day(2025, 8, 12)},
		}
		res := calculateResult(monthlyEmployee(1300), augustPeriod(),
			nil, nil, leaves, decimal.Zero, sales.Totals{Revenue: decimal.Zero})

		assert.Equal(t, 0, res.UnpaidLeaveDays)
		assert.True(t, res.DeductionAmount.IsZero())
		assert.Len(t, res.Leaves, 2)
	})
}

func TestCalculateResultSalesPassthrough(t *testing.T) {
	totals := sales.Totals{Quantity: 42, Revenue: decimal.NewFromInt(3150)}
	res := calculateResult(monthlyEmployee(1300), augustPeriod(),
		nil, nil, nil, decimal.Zero, totals)

	assert.Equal(t, int64(42), res.Sales.Quantity)
	assert.True(t, res.Sales.Revenue.Equal(decimal.NewFromInt(3150)))
	// Sales never feed the pay math.
	assert.True(t, res.NetEstimated.Equal(decimal.NewFromInt(1300)))
}
