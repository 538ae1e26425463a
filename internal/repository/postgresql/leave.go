package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sahelretail/hr-backend-go/internal/domain/leave"
	"github.com/sahelretail/hr-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// ListStartingInRange filters on the leave's start date only; the calculator
// clamps the returned spans to the reporting period.
func (r *leaveRepository) ListStartingInRange(ctx context.Context, employeeIDs []int64, start, end time.Time) ([]leave.Leave, error) {
	query := `
		SELECT id, employee_id, start_date, end_date, ltype, created_at
		FROM leaves
		WHERE employee_id = ANY($1)
		  AND start_date BETWEEN $2 AND $3
		ORDER BY start_date
	`

	rows, err := r.db.Query(ctx, query, employeeIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var l leave.Leave
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.Type, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}

	return leaves, nil
}
