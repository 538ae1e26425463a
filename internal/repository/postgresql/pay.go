package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sahelretail/hr-backend-go/internal/domain/pay"
	"github.com/sahelretail/hr-backend-go/internal/pkg/database"
)

type payRepository struct {
	db *database.DB
}

func NewPayRepository(db *database.DB) pay.PayRepository {
	return &payRepository{db: db}
}

func (r *payRepository) ListInRange(ctx context.Context, employeeID int64, start, end time.Time, paymentType pay.Type) ([]pay.Payment, error) {
	query := `
		SELECT id, employee_id, date, amount, pay_type, note, created_at
		FROM pays
		WHERE employee_id = $1
		  AND pay_type = $2
		  AND date BETWEEN $3 AND $4
		ORDER BY date
	`

	rows, err := r.db.Query(ctx, query, employeeID, paymentType, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []pay.Payment
	for rows.Next() {
		var p pay.Payment
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.Date, &p.Amount, &p.Type, &p.Note, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return payments, nil
}
