package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sahelretail/hr-backend-go/internal/domain/loan"
	"github.com/sahelretail/hr-backend-go/internal/pkg/database"
)

type loanScheduleRepository struct {
	db *database.DB
}

func NewLoanScheduleRepository(db *database.DB) loan.LoanScheduleRepository {
	return &loanScheduleRepository{db: db}
}

func (r *loanScheduleRepository) SumDueInRange(ctx context.Context, employeeIDs []int64, start, end time.Time) (map[int64]decimal.Decimal, error) {
	query := `
		SELECT l.employee_id, COALESCE(SUM(ls.due_total - ls.paid_total), 0) AS due_amount
		FROM loan_schedules ls
		JOIN loans l ON l.id = ls.loan_id
		WHERE l.employee_id = ANY($1)
		  AND ls.due_date BETWEEN $2 AND $3
		  AND ls.status = ANY($4)
		GROUP BY l.employee_id
	`

	statuses := []string{string(loan.StatusPending), string(loan.StatusPartial)}

	rows, err := r.db.Query(ctx, query, employeeIDs, start, end, statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to sum loan dues: %w", err)
	}
	defer rows.Close()

	dues := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var employeeID int64
		var due decimal.Decimal
		if err := rows.Scan(&employeeID, &due); err != nil {
			return nil, fmt.Errorf("failed to scan loan due: %w", err)
		}
		dues[employeeID] = due
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to sum loan dues: %w", err)
	}

	return dues, nil
}
