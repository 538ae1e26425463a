package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sahelretail/hr-backend-go/internal/domain/advance"
	"github.com/sahelretail/hr-backend-go/internal/pkg/database"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

func (r *advanceRepository) ListInRange(ctx context.Context, employeeIDs []int64, start, end time.Time) ([]advance.Advance, error) {
	query := `
		SELECT id, employee_id, date, amount, note, created_at
		FROM deposits
		WHERE employee_id = ANY($1)
		  AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := r.db.Query(ctx, query, employeeIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		var a advance.Advance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.Amount, &a.Note, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}

	return advances, nil
}
