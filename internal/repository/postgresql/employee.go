package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sahelretail/hr-backend-go/internal/domain/employee"
	"github.com/sahelretail/hr-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.first_name, e.last_name, e.cin, e.position, e.branch_id, e.active,
	e.salary, e.salary_frequency, e.work_days, e.created_at, e.updated_at,
	b.name AS branch_name
`

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN branches b ON b.id = e.branch_id
		WHERE e.id = $1
	`

	emp, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) ListActive(ctx context.Context, branchID *int64) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN branches b ON b.id = e.branch_id
		WHERE e.active = true
	`
	args := []interface{}{}
	if branchID != nil {
		query += " AND e.branch_id = $1"
		args = append(args, *branchID)
	}
	query += " ORDER BY e.first_name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	return employees, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.CIN, &emp.Position,
		&emp.BranchID, &emp.Active, &emp.Salary, &emp.SalaryFrequency,
		&emp.WorkDays, &emp.CreatedAt, &emp.UpdatedAt, &emp.BranchName,
	)
	return emp, err
}
