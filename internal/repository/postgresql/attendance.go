package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sahelretail/hr-backend-go/internal/domain/attendance"
	"github.com/sahelretail/hr-backend-go/internal/pkg/database"
)

type absenceRepository struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) attendance.AbsenceRepository {
	return &absenceRepository{db: db}
}

func (r *absenceRepository) ListAbsent(ctx context.Context, employeeIDs []int64, start, end time.Time) ([]attendance.Absence, error) {
	query := `
		SELECT id, employee_id, date, atype, created_at
		FROM attendances
		WHERE employee_id = ANY($1)
		  AND atype = $2
		  AND date BETWEEN $3 AND $4
		ORDER BY date
	`

	rows, err := r.db.Query(ctx, query, employeeIDs, attendance.KindAbsent, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}
	defer rows.Close()

	var absences []attendance.Absence
	for rows.Next() {
		var a attendance.Absence
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.Kind, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		absences = append(absences, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}

	return absences, nil
}
