package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (Employee, error)
	// ListActive returns active employees ordered by first name, optionally
	// restricted to one branch.
	ListActive(ctx context.Context, branchID *int64) ([]Employee, error)
}
